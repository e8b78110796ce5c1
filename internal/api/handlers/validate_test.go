package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"glass-connect-backend/internal/api/handlers"
	"glass-connect-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateHandler(t *testing.T) {
	h := testutils.SetupHTTPTest(t)
	h.Router.POST("/validate/:kind", handlers.NewValidateHandler().Validate)

	post := func(url, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, url, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		h.Router.ServeHTTP(w, req)
		return w
	}
	decode := func(t *testing.T, w *httptest.ResponseRecorder) handlers.ValidateResponse {
		var resp handlers.ValidateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		return resp
	}

	t.Run("inverted price range reports both ends", func(t *testing.T) {
		w := post("/validate/lab-offer-profile", `{"operationalStatus":"opening_future","expectedOpeningYear":2025,"priceFrom":100,"priceTo":50}`)

		require.Equal(t, http.StatusOK, w.Code)
		resp := decode(t, w)
		assert.False(t, resp.Valid)
		require.Len(t, resp.Issues, 2)
		assert.Equal(t, "priceFrom", resp.Issues[0].Path)
		assert.Equal(t, "priceTo", resp.Issues[1].Path)
	})

	t.Run("valid lab", func(t *testing.T) {
		w := post("/validate/lab", `{"name":"Protein Lab","website":"lab.example"}`)

		resp := decode(t, w)
		assert.True(t, resp.Valid)
		assert.NotNil(t, resp.Issues)
		assert.Contains(t, w.Body.String(), `"issues":[]`)
	})

	t.Run("empty partial update", func(t *testing.T) {
		w := post("/validate/team?partial=true", `{}`)

		resp := decode(t, w)
		assert.False(t, resp.Valid)
		require.Len(t, resp.Issues, 1)
		assert.Equal(t, "", resp.Issues[0].Path)
	})

	t.Run("coercion failure is an issue", func(t *testing.T) {
		w := post("/validate/lab-offer-profile", `{"priceFrom":"cheap"}`)

		resp := decode(t, w)
		require.Len(t, resp.Issues, 1)
		assert.Equal(t, "priceFrom", resp.Issues[0].Path)
	})

	t.Run("unknown kind", func(t *testing.T) {
		w := post("/validate/invoice", `{}`)
		testutils.AssertErrorResponse(t, w, http.StatusNotFound, "unknown validation kind")
	})

	t.Run("unparseable partial flag", func(t *testing.T) {
		w := post("/validate/lab?partial=yes", `{"name":"Protein Lab"}`)
		testutils.AssertErrorResponse(t, w, http.StatusBadRequest, "partial must be true or false")
	})

	t.Run("offer profile type mismatch keeps the member path", func(t *testing.T) {
		w := post("/validate/lab-offer-profile?partial=true", `{"expectedOpeningYear":"soon"}`)

		resp := decode(t, w)
		require.Len(t, resp.Issues, 1)
		assert.Equal(t, "expectedOpeningYear", resp.Issues[0].Path)
		assert.Equal(t, "expected number, received string", resp.Issues[0].Message)
	})

	t.Run("no partial shape", func(t *testing.T) {
		w := post("/validate/erc-discipline?partial=true", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		w := post("/validate/lab", `{"name":`)
		testutils.AssertErrorResponse(t, w, http.StatusBadRequest, "invalid request body")
	})
}
