package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"glass-connect-backend/internal/api/handlers"
	"glass-connect-backend/internal/auth"
	apperrors "glass-connect-backend/internal/errors"
	"glass-connect-backend/internal/mocks"
	"glass-connect-backend/internal/patents"
	"glass-connect-backend/internal/service"
	"glass-connect-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestContactHandler_ContactLab(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockContactServiceInterface(ctrl)
	h := testutils.SetupHTTPTest(t)
	h.Router.POST("/labs/:id/contact", handlers.NewContactHandler(svc).ContactLab)

	body := map[string]interface{}{
		"kind":    service.ContactInvestment,
		"name":    "Ada Lovelace",
		"email":   "ada@example.org",
		"message": "Interested in funding your imaging platform.",
	}

	t.Run("accepted", func(t *testing.T) {
		svc.EXPECT().Send(gomock.Any(), nil, int64(4), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *auth.Principal, _ int64, req *service.ContactRequest) error {
				assert.Equal(t, service.ContactInvestment, req.Kind)
				return nil
			})

		w := h.MakeRequest(http.MethodPost, "/labs/4/contact", body)

		assert.Equal(t, http.StatusAccepted, w.Code)
	})

	t.Run("mailer not configured", func(t *testing.T) {
		svc.EXPECT().Send(gomock.Any(), nil, int64(4), gomock.Any()).Return(apperrors.ErrMailerNotConfigured)

		w := h.MakeRequest(http.MethodPost, "/labs/4/contact", body)

		testutils.AssertErrorResponse(t, w, http.StatusServiceUnavailable, "mail provider is not configured")
	})

	t.Run("no contact email", func(t *testing.T) {
		svc.EXPECT().Send(gomock.Any(), nil, int64(4), gomock.Any()).Return(apperrors.ErrLabContactEmailNotDefined)

		w := h.MakeRequest(http.MethodPost, "/labs/4/contact", body)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPatentHandler_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockPatentServiceInterface(ctrl)
	h := testutils.SetupHTTPTest(t)
	h.Router.GET("/patents/search", handlers.NewPatentHandler(svc).Search)

	t.Run("success", func(t *testing.T) {
		svc.EXPECT().Search(gomock.Any(), "microfluidics", 5).
			Return(&patents.SearchResult{Query: "microfluidics", Total: 1, Patents: []patents.Patent{{PublicationNumber: "EP1234567"}}}, nil)

		w := h.MakeRequest(http.MethodGet, "/patents/search?q=microfluidics&limit=5", nil)

		var got patents.SearchResult
		testutils.AssertJSONResponse(t, w, http.StatusOK, &got)
		assert.Equal(t, 1, got.Total)
	})

	t.Run("gateway failure", func(t *testing.T) {
		svc.EXPECT().Search(gomock.Any(), "chip", 10).Return(nil, apperrors.NewUpstreamError("patent gateway", 503, "maintenance"))

		w := h.MakeRequest(http.MethodGet, "/patents/search?q=chip", nil)

		testutils.AssertErrorResponse(t, w, http.StatusBadGateway, "patent gateway")
	})

	t.Run("not configured", func(t *testing.T) {
		svc.EXPECT().Search(gomock.Any(), "chip", 10).Return(nil, apperrors.ErrPatentGatewayNotConfigured)

		w := h.MakeRequest(http.MethodGet, "/patents/search?q=chip", nil)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
