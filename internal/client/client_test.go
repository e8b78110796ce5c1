package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"sync/atomic"
	"testing"

	apperrors "glass-connect-backend/internal/errors"
	"glass-connect-backend/internal/schema"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	resp := &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

func newTestClient(t *testing.T, rt roundTripFunc, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithHTTPClient(&http.Client{Transport: rt})}, opts...)
	c, err := NewClient("https://api.example.org/api/v1/", opts...)
	require.NoError(t, err)
	return c
}

type staticSession struct {
	SessionProvider
	token *oauth2.Token
}

func (s staticSession) Token() (*oauth2.Token, error) {
	if s.token == nil {
		return nil, ErrNotSignedIn
	}
	return s.token, nil
}

const (
	optionsBody     = `[{"optionGroup":"offer_format","code":"shell_space","labelEn":"Shell space","labelFr":"Espace nu"}]`
	disciplinesBody = `[{"code":"LS1","domain":"LS","title":"Molecules of Life"}]`
	labBody         = `{"id":3,"name":"Protein Lab","labStatus":"listed","isVisible":true}`
	profileBody     = `{"labId":3,"operationalStatus":"open","pricingModel":"range","priceFrom":100,"priceTo":250,"currency":"EUR"}`
)

func TestNewClient_BlankURL(t *testing.T) {
	_, err := NewClient("  ")
	assert.Error(t, err)
}

func TestListOfferTaxonomy(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, "/api/v1/taxonomy/lab-offer", r.URL.Path)
		assert.Equal(t, "offer_format", r.URL.Query().Get("group"))
		return jsonResponse(http.StatusOK, optionsBody), nil
	})

	options, err := c.ListOfferTaxonomy(context.Background(), schema.GroupOfferFormat)

	require.NoError(t, err)
	require.Len(t, options, 1)
	assert.Equal(t, "shell_space", options[0].Code)
	assert.True(t, options[0].IsActive)
	assert.Equal(t, schema.DefaultSortOrder, options[0].SortOrder)
}

func TestListOfferTaxonomy_MalformedResponse(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `[{"optionGroup":"offer_format","code":"ok","labelEn":"OK","labelFr":"OK"},{"optionGroup":"colour","code":"red","labelEn":"Red","labelFr":"Rouge"}]`), nil
	})

	_, err := c.ListOfferTaxonomy(context.Background(), "")

	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Equal(t, []string{"[1].optionGroup"}, schema.Issues(apperrors.IssuesOf(err)).Paths())
}

func TestListOfferTaxonomy_FixedErrorMessage(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, `{"error":"database down"}`), nil
	})

	_, err := c.ListOfferTaxonomy(context.Background(), "")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Equal(t, "Failed to fetch lab offer taxonomy", apiErr.Message)
}

func TestAPIError_ServerMessage(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusConflict, `{"message":"Lab is archived"}`), nil
	})

	_, err := c.GetLab(context.Background(), 3)

	assert.EqualError(t, err, "Lab is archived")
	assert.False(t, IsNotFound(err))
}

func TestNetworkFailure_NoRetry(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		calls.Add(1)
		return nil, errors.New("connection refused")
	})

	_, err := c.ListErcDisciplines(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to fetch ERC disciplines")
	assert.Equal(t, int32(1), calls.Load())
}

func TestFetchReferenceData(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		switch r.URL.Path {
		case "/api/v1/taxonomy/lab-offer":
			return jsonResponse(http.StatusOK, optionsBody), nil
		case "/api/v1/taxonomy/erc-disciplines":
			return jsonResponse(http.StatusOK, disciplinesBody), nil
		}
		return jsonResponse(http.StatusNotFound, `{}`), nil
	})

	data, err := c.FetchReferenceData(context.Background())

	require.NoError(t, err)
	assert.Len(t, data.OfferOptions, 1)
	require.Len(t, data.ErcDisciplines, 1)
	assert.Equal(t, schema.ErcLifeSciences, data.ErcDisciplines[0].Domain)
}

func TestFetchReferenceData_OneFails(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		if r.URL.Path == "/api/v1/taxonomy/erc-disciplines" {
			return jsonResponse(http.StatusBadGateway, ``), nil
		}
		return jsonResponse(http.StatusOK, optionsBody), nil
	})

	data, err := c.FetchReferenceData(context.Background())

	assert.Nil(t, data)
	assert.EqualError(t, err, "Failed to fetch ERC disciplines")
}

func TestGetOfferProfile(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		if r.URL.Path == "/api/v1/labs/3/offer-profile" {
			return jsonResponse(http.StatusOK, profileBody), nil
		}
		return jsonResponse(http.StatusNotFound, `{"error":"offer profile not found"}`), nil
	})

	profile, err := c.GetOfferProfile(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), profile.LabID)
	assert.Equal(t, 250.0, *profile.PriceTo)

	missing, err := c.GetOfferProfile(context.Background(), 4)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetOfferProfile_InvertedRange(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"labId":3,"operationalStatus":"open","pricingModel":"range","priceFrom":100,"priceTo":50}`), nil
	})

	_, err := c.GetOfferProfile(context.Background(), 3)

	require.Error(t, err)
	assert.Equal(t, []string{"priceFrom", "priceTo"}, schema.Issues(apperrors.IssuesOf(err)).Paths())
}

func TestSaveOfferProfile(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		var sent map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&sent))
		assert.Equal(t, "EUR", sent["currency"])
		return jsonResponse(http.StatusOK, profileBody), nil
	}, WithSession(staticSession{token: &oauth2.Token{AccessToken: "secret"}}))

	in := &schema.LabOfferProfileInput{Currency: ptr("eur"), PriceFrom: ptr(100.0), PriceTo: ptr(250.0)}
	profile, err := c.SaveOfferProfile(context.Background(), 3, in)

	require.NoError(t, err)
	assert.Equal(t, "EUR", *profile.Currency)
}

func TestSaveOfferProfile_InvalidNotSent(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		t.Fatal("request must not be sent")
		return nil, nil
	})

	in := &schema.LabOfferProfileInput{PriceFrom: ptr(100.0), PriceTo: ptr(50.0)}
	_, err := c.SaveOfferProfile(context.Background(), 3, in)

	assert.True(t, apperrors.IsValidation(err))
}

func TestListLabs(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		q := r.URL.Query()
		assert.Equal(t, "protein", q.Get("q"))
		assert.Equal(t, "premier", q.Get("status"))
		assert.Equal(t, "LS1", q.Get("erc"))
		assert.Equal(t, "2", q.Get("page"))
		assert.Equal(t, "", q.Get("page_size"))
		assert.Empty(t, r.Header.Get("Authorization"))
		return jsonResponse(http.StatusOK, `{"labs":[`+labBody+`,{"id":4,"name":" ","labStatus":"listed"}],"total":2,"page":2,"pageSize":20}`), nil
	}, WithSession(staticSession{}))

	_, err := c.ListLabs(context.Background(), LabListParams{Query: "protein", Status: schema.LabStatusPremier, ErcCode: "LS1", Page: 2})

	require.Error(t, err)
	assert.Equal(t, []string{"labs[1].name"}, schema.Issues(apperrors.IssuesOf(err)).Paths())
}

func TestGetTeam(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		assert.Equal(t, "/api/v1/teams/9", r.URL.Path)
		return jsonResponse(http.StatusOK, `{"id":9,"name":"Imaging","labs":[{"id":3,"name":"Protein Lab"}]}`), nil
	})

	team, err := c.GetTeam(context.Background(), 9)

	require.NoError(t, err)
	assert.Equal(t, "Imaging", team.Name)
	require.Len(t, team.Labs, 1)
}

func TestDecodeFailure(t *testing.T) {
	c := newTestClient(t, func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"id":"three"}`), nil
	})

	_, err := c.GetTeam(context.Background(), 9)
	assert.True(t, apperrors.IsValidation(err))
}

func ptr[T any](v T) *T { return &v }
