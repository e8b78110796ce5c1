// Package client is a typed HTTP client for the glass connect API. Every
// successful response is validated again before it is returned, so a
// malformed server answer surfaces as a validation error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "glass-connect-backend/internal/errors"
	"glass-connect-backend/internal/schema"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultTimeout bounds every request of a client built without WithHTTPClient.
	DefaultTimeout = 30 * time.Second

	maxErrorBody = 64 << 10
)

// Client calls the /api/v1 endpoints
type Client struct {
	baseURL    string
	httpClient *http.Client
	session    SessionProvider
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the default http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithSession attaches the bearer token of the signed-in user to requests
func WithSession(session SessionProvider) Option {
	return func(c *Client) {
		c.session = session
	}
}

// NewClient creates a client for the API rooted at baseURL, e.g.
// https://api.example.org/api/v1.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("client: base URL is required")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("client: invalid base URL: %w", err)
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// LabListParams filters ListLabs
type LabListParams struct {
	Query    string
	Status   schema.LabStatus
	ErcCode  string
	Page     int
	PageSize int
}

// LabPage is one page of labs
type LabPage struct {
	Labs     []schema.Lab `json:"labs"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"pageSize"`
}

// ReferenceData holds the vocabularies a lab form needs
type ReferenceData struct {
	OfferOptions   []schema.LabOfferTaxonomyOption `json:"offerOptions"`
	ErcDisciplines []schema.ErcDisciplineOption    `json:"ercDisciplines"`
}

// ListOfferTaxonomy returns the active offer options, optionally for one group
func (c *Client) ListOfferTaxonomy(ctx context.Context, group schema.OptionGroup) ([]schema.LabOfferTaxonomyOption, error) {
	query := url.Values{}
	if group != "" {
		query.Set("group", string(group))
	}
	var options []schema.LabOfferTaxonomyOption
	if err := c.do(ctx, http.MethodGet, "/taxonomy/lab-offer", query, nil, &options, "Failed to fetch lab offer taxonomy"); err != nil {
		return nil, err
	}
	var issues schema.Issues
	for i := range options {
		issues = append(issues, indexed(i, options[i].Validate())...)
	}
	if err := issues.Err(); err != nil {
		return nil, err
	}
	return options, nil
}

// ListErcDisciplines returns the ERC panels
func (c *Client) ListErcDisciplines(ctx context.Context) ([]schema.ErcDisciplineOption, error) {
	var disciplines []schema.ErcDisciplineOption
	if err := c.do(ctx, http.MethodGet, "/taxonomy/erc-disciplines", nil, nil, &disciplines, "Failed to fetch ERC disciplines"); err != nil {
		return nil, err
	}
	var issues schema.Issues
	for i := range disciplines {
		issues = append(issues, indexed(i, disciplines[i].Validate())...)
	}
	if err := issues.Err(); err != nil {
		return nil, err
	}
	return disciplines, nil
}

// FetchReferenceData loads both vocabularies concurrently. The first failure
// cancels the other request.
func (c *Client) FetchReferenceData(ctx context.Context) (*ReferenceData, error) {
	var data ReferenceData
	errg, ctx := errgroup.WithContext(ctx)
	errg.Go(func() error {
		options, err := c.ListOfferTaxonomy(ctx, "")
		data.OfferOptions = options
		return err
	})
	errg.Go(func() error {
		disciplines, err := c.ListErcDisciplines(ctx)
		data.ErcDisciplines = disciplines
		return err
	})
	if err := errg.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}

// GetOfferProfile returns the offer profile of a lab, or nil when the lab has none
func (c *Client) GetOfferProfile(ctx context.Context, labID int64) (*schema.LabOfferProfile, error) {
	var profile schema.LabOfferProfile
	err := c.do(ctx, http.MethodGet, labPath(labID)+"/offer-profile", nil, nil, &profile, "Failed to fetch lab offer profile")
	if IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := profile.Validate().Err(); err != nil {
		return nil, err
	}
	return &profile, nil
}

// SaveOfferProfile creates or replaces the offer profile of a lab. The input
// is validated locally first and nothing is sent when it is invalid.
func (c *Client) SaveOfferProfile(ctx context.Context, labID int64, in *schema.LabOfferProfileInput) (*schema.LabOfferProfile, error) {
	if err := in.Prepare().Err(); err != nil {
		return nil, err
	}
	var profile schema.LabOfferProfile
	if err := c.do(ctx, http.MethodPut, labPath(labID)+"/offer-profile", nil, in, &profile, "Failed to save lab offer profile"); err != nil {
		return nil, err
	}
	if err := profile.Validate().Err(); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetLab returns a visible lab
func (c *Client) GetLab(ctx context.Context, id int64) (*schema.Lab, error) {
	var lab schema.Lab
	if err := c.do(ctx, http.MethodGet, labPath(id), nil, nil, &lab, "Failed to fetch lab"); err != nil {
		return nil, err
	}
	if err := lab.Validate().Err(); err != nil {
		return nil, err
	}
	return &lab, nil
}

// ListLabs returns one page of visible labs
func (c *Client) ListLabs(ctx context.Context, params LabListParams) (*LabPage, error) {
	query := url.Values{}
	if params.Query != "" {
		query.Set("q", params.Query)
	}
	if params.Status != "" {
		query.Set("status", string(params.Status))
	}
	if params.ErcCode != "" {
		query.Set("erc", params.ErcCode)
	}
	if params.Page > 0 {
		query.Set("page", strconv.Itoa(params.Page))
	}
	if params.PageSize > 0 {
		query.Set("page_size", strconv.Itoa(params.PageSize))
	}

	var page LabPage
	if err := c.do(ctx, http.MethodGet, "/labs", query, nil, &page, "Failed to fetch labs"); err != nil {
		return nil, err
	}
	var issues schema.Issues
	for i := range page.Labs {
		issues = append(issues, prefixed(fmt.Sprintf("labs[%d]", i), page.Labs[i].Validate())...)
	}
	if err := issues.Err(); err != nil {
		return nil, err
	}
	return &page, nil
}

// GetTeam returns a team with its lab summaries
func (c *Client) GetTeam(ctx context.Context, id int64) (*schema.Team, error) {
	var team schema.Team
	if err := c.do(ctx, http.MethodGet, "/teams/"+strconv.FormatInt(id, 10), nil, nil, &team, "Failed to fetch team"); err != nil {
		return nil, err
	}
	if err := team.Validate().Err(); err != nil {
		return nil, err
	}
	return &team, nil
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, failure string) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.session != nil {
		// Anonymous calls are allowed; a signed-out session just sends no header.
		if token, err := c.session.Token(); err == nil {
			token.SetAuthHeader(req)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return networkError(failure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return apiError(resp, failure)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewIssuesError("malformed response", []apperrors.FieldIssue{{Message: err.Error()}})
	}
	return nil
}

func apiError(resp *http.Response, failure string) error {
	apiErr := &APIError{StatusCode: resp.StatusCode, Message: failure}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return apiErr
	}
	var body struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(data, &body) == nil && strings.TrimSpace(body.Message) != "" {
		apiErr.Message = body.Message
	}
	return apiErr
}

func labPath(id int64) string {
	return "/labs/" + strconv.FormatInt(id, 10)
}

func indexed(i int, issues schema.Issues) schema.Issues {
	return prefixed(fmt.Sprintf("[%d]", i), issues)
}

func prefixed(prefix string, issues schema.Issues) schema.Issues {
	for i := range issues {
		if issues[i].Path == "" {
			issues[i].Path = prefix
			continue
		}
		issues[i].Path = prefix + "." + issues[i].Path
	}
	return issues
}
