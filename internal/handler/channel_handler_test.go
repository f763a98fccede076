package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/accordchat/accord-backend/internal/common"
	"github.com/accordchat/accord-backend/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockChannelService struct {
	mock.Mock
}

func (m *mockChannelService) CreateChannel(name, description, createdBy string) (*domain.Channel, error) {
	args := m.Called(name, description, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Channel), args.Error(1)
}

func (m *mockChannelService) GetAllChannels() ([]*domain.Channel, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Channel), args.Error(1)
}

func (m *mockChannelService) GetChannelByID(id int64) (*domain.Channel, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Channel), args.Error(1)
}

func (m *mockChannelService) GetOrCreateDefaultChannel() (*domain.Channel, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Channel), args.Error(1)
}

func setupChannelRouter(svc *mockChannelService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewChannelHandler(svc)
	router := gin.New()
	channels := router.Group("/api/channels")
	channels.GET("", h.ListChannels)
	channels.GET("/:id", h.GetChannel)
	channels.POST("", h.CreateChannel)
	return router
}

func TestListChannelsEndpoint(t *testing.T) {
	svc := new(mockChannelService)
	router := setupChannelRouter(svc)

	svc.On("GetAllChannels").Return([]*domain.Channel{
		{ID: 1, Name: "general"},
		{ID: 2, Name: "random"},
	}, nil)

	w := getPath(router, "/api/channels")

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "general", resp[0]["name"])
}

func TestGetChannelEndpoint_NotFound(t *testing.T) {
	svc := new(mockChannelService)
	router := setupChannelRouter(svc)

	svc.On("GetChannelByID", int64(99)).Return(nil, nil)

	w := getPath(router, "/api/channels/99")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Channel not found", resp["error"])
}

func TestGetChannelEndpoint_InvalidID(t *testing.T) {
	svc := new(mockChannelService)
	router := setupChannelRouter(svc)

	w := getPath(router, "/api/channels/abc")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "GetChannelByID", mock.Anything)
}

func TestCreateChannelEndpoint(t *testing.T) {
	svc := new(mockChannelService)
	router := setupChannelRouter(svc)

	svc.On("CreateChannel", "random", "Off-topic", "alice").
		Return(&domain.Channel{ID: 2, Name: "random", CreatedBy: "alice"}, nil)

	w := postJSON(router, "/api/channels", gin.H{
		"name":        "random",
		"description": "Off-topic",
		"createdBy":   "alice",
	})

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "random", resp["name"])
	assert.Equal(t, "alice", resp["createdBy"])
}

func TestCreateChannelEndpoint_ValidationError(t *testing.T) {
	svc := new(mockChannelService)
	router := setupChannelRouter(svc)

	svc.On("CreateChannel", "ab", "", "alice").
		Return(nil, common.NewValidationError("Channel name must be between 3 and 50 characters"))

	w := postJSON(router, "/api/channels", gin.H{
		"name":      "ab",
		"createdBy": "alice",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Channel name must be between 3 and 50 characters", resp["error"])
}
