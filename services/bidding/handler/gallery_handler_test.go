package handler

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"gallery-assistant/internal/biddingerrors"
	"gallery-assistant/internal/reply"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func newGalleryRouter(t *testing.T) (*gin.Engine, *MockGalleryServiceInterface) {
	ctrl := gomock.NewController(t)
	mockService := NewMockGalleryServiceInterface(ctrl)
	handler := NewGalleryHandler(mockService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/auction/schedule", handler.AuctionScheduleHandler)
	router.GET("/bids", handler.BidListHandler)
	router.GET("/artworks/:artwork_id", handler.ArtworkInfoHandler)
	router.GET("/artworks/:artwork_id/minimum-bid", handler.MinimumBidHandler)
	router.GET("/artworks/:artwork_id/bids/count", handler.BidCountHandler)
	return router, mockService
}

func TestAuctionScheduleHandler(t *testing.T) {
	router, mockService := newGalleryRouter(t)
	mockService.EXPECT().AuctionSchedule().Return(reply.Display{Text: "The next auction is on Tuesday, 20 Oct 2026"})

	status, resp := doJSON(t, router, http.MethodGet, "/auction/schedule", nil)
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, resp["data"].(map[string]any)["text"], "20 Oct 2026")
}

func TestBidListHandler(t *testing.T) {
	router, mockService := newGalleryRouter(t)
	mockService.EXPECT().BidList(gomock.Any()).Return(reply.Display{
		Text: "You have submitted a bid for the following artwork:",
		Buttons: []reply.Button{
			{Title: "ABC123 ($1100)", Payload: reply.InfoCardPayload("ABC123")},
		},
	}, nil)

	status, resp := doJSON(t, router, http.MethodGet, "/bids", nil)
	require.Equal(t, http.StatusOK, status)
	buttons := resp["data"].(map[string]any)["buttons"].([]any)
	require.Len(t, buttons, 1)
	require.Equal(t, `/ask_artwork_info_card{"artwork_id": "ABC123"}`, buttons[0].(map[string]any)["payload"])

	router, mockService = newGalleryRouter(t)
	mockService.EXPECT().BidList(gomock.Any()).Return(reply.Display{}, errors.New("database failure"))

	status, resp = doJSON(t, router, http.MethodGet, "/bids", nil)
	require.Equal(t, http.StatusInternalServerError, status)
	require.Equal(t, "internal server error", resp["message"])
}

func TestArtworkLookupHandlers(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		mockSetup      func(m *MockGalleryServiceInterface)
		expectedStatus int
		expectedMsg    string
		expectedText   string
	}{
		{
			name: "info_card",
			path: "/artworks/abc123",
			mockSetup: func(m *MockGalleryServiceInterface) {
				m.EXPECT().InfoCard(gomock.Any(), "abc123").Return(reply.Display{Text: "Title: Cloud"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "artwork retrieved successfully",
			expectedText:   "Title: Cloud",
		},
		{
			name: "minimum_bid",
			path: "/artworks/DEF871/minimum-bid",
			mockSetup: func(m *MockGalleryServiceInterface) {
				m.EXPECT().MinimumBid(gomock.Any(), "DEF871").Return(reply.Display{Text: "The minimum bid is $500."}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "minimum bid retrieved successfully",
			expectedText:   "The minimum bid is $500.",
		},
		{
			name: "bid_count",
			path: "/artworks/TED837/bids/count",
			mockSetup: func(m *MockGalleryServiceInterface) {
				m.EXPECT().BidCount(gomock.Any(), "TED837").Return(reply.Display{Text: "In total, 3 users have bid on TED837"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "bid count retrieved successfully",
			expectedText:   "In total, 3 users have bid on TED837",
		},
		{
			name: "invalid_id_keeps_reply",
			path: "/artworks/AB12",
			mockSetup: func(m *MockGalleryServiceInterface) {
				m.EXPECT().InfoCard(gomock.Any(), "AB12").Return(reply.Display{Text: "AB12 is not a valid ID code"},
					fmt.Errorf("service: %w", biddingerrors.ErrInvalidFormat))
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid artwork id",
			expectedText:   "AB12 is not a valid ID code",
		},
		{
			name: "unknown_artwork_keeps_reply",
			path: "/artworks/ZZZ999/minimum-bid",
			mockSetup: func(m *MockGalleryServiceInterface) {
				m.EXPECT().MinimumBid(gomock.Any(), "ZZZ999").Return(reply.Display{Text: "Sorry, there is no artwork with ID code ZZZ999."},
					fmt.Errorf("service: %w", biddingerrors.ErrArtworkNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "artwork not found",
			expectedText:   "Sorry, there is no artwork with ID code ZZZ999.",
		},
		{
			name: "store_failure",
			path: "/artworks/ABC123/bids/count",
			mockSetup: func(m *MockGalleryServiceInterface) {
				m.EXPECT().BidCount(gomock.Any(), "ABC123").Return(reply.Display{}, errors.New("database failure"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "internal server error",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router, mockService := newGalleryRouter(t)
			tc.mockSetup(mockService)

			status, resp := doJSON(t, router, http.MethodGet, tc.path, nil)
			require.Equal(t, tc.expectedStatus, status)
			require.Equal(t, tc.expectedMsg, resp["message"])

			if tc.expectedText != "" {
				require.Equal(t, tc.expectedText, resp["data"].(map[string]any)["text"])
			}
		})
	}
}
