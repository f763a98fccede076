package routes

import (
	"github.com/accordchat/accord-backend/internal/handler"
	"github.com/gin-gonic/gin"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	userHandler *handler.UserHandler,
	channelHandler *handler.ChannelHandler,
	chatHandler *handler.ChatHandler,
	dmHandler *handler.DirectMessageHandler,
	wsHandler *handler.WSHandler,
) {
	api := router.Group("/api")

	// User directory
	users := api.Group("/users")
	users.POST("/login", userHandler.Login)
	users.GET("/check/:username", userHandler.CheckUsername)

	// Channels
	channels := api.Group("/channels")
	channels.GET("", channelHandler.ListChannels)
	channels.GET("/:id", channelHandler.GetChannel)
	channels.POST("", channelHandler.CreateChannel)
	channels.GET("/:id/messages", chatHandler.ListByChannel)

	// Broadcast chat messages
	messages := api.Group("/messages")
	messages.GET("", chatHandler.ListRecent)
	messages.POST("", chatHandler.SendMessage)
	messages.POST("/join", chatHandler.Join)

	// Direct messages
	dm := api.Group("/dm")
	dm.POST("/send", dmHandler.SendMessage)
	dm.GET("/conversation", dmHandler.GetConversation)
	dm.POST("/read/conversation", dmHandler.MarkConversationAsRead)
	dm.POST("/read/:messageId", dmHandler.MarkAsRead)
	dm.GET("/unread", dmHandler.GetUnreadCount)
	dm.GET("/unread/from", dmHandler.GetUnreadCountFromSender)
	dm.GET("/partners", dmHandler.GetConversationPartners)

	// Live sessions
	router.GET("/ws", wsHandler.Connect)
}
