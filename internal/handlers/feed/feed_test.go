package feed

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/GlebRadaev/lottoshop/internal/domain"
)

func NewMock(t *testing.T) (*FeedHandler, *MockService, *MockHub) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	hub := NewMockHub(ctrl)
	return New(service, hub), service, hub
}

func TestGetFeedHandler(t *testing.T) {
	handler, service, _ := NewMock(t)

	service.EXPECT().List(gomock.Any()).Return([]domain.RecentPurchase{
		{ID: "pur_1", UserName: "Rahul K.", BundleSize: 5, DrawTime: "8 PM", Timestamp: time.UnixMilli(1722163200000)},
	}, nil)

	w := httptest.NewRecorder()
	handler.GetFeed(w, httptest.NewRequest(http.MethodGet, "/api/feed", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":"pur_1","userName":"Rahul K.","bundleSize":5,"drawTime":"8 PM","timestamp":1722163200000}]`, w.Body.String())
}

func TestSubscribeHandler(t *testing.T) {
	handler, service, hub := NewMock(t)

	service.EXPECT().Snapshot(gomock.Any()).Return([]byte(`[]`), nil)
	hub.EXPECT().ServeWS(gomock.Any(), gomock.Any(), []byte(`[]`)).Return(nil)
	handler.Subscribe(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/feed/ws", nil))

	service.EXPECT().Snapshot(gomock.Any()).Return(nil, errors.New("error"))
	w := httptest.NewRecorder()
	handler.Subscribe(w, httptest.NewRequest(http.MethodGet, "/api/feed/ws", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
