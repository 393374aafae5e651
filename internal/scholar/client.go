// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package scholar is a client for the ai4scholar.net academic graph API, a
// Semantic Scholar compatible service authenticated with a bearer token.
// Each method maps to one GET endpoint; callers choose the field list.
package scholar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/pdiddy/scholar-tools/internal/httputil"
	"github.com/pdiddy/scholar-tools/pkg/types"
)

// DefaultBaseURL is the production API host.
var DefaultBaseURL = "https://ai4scholar.net"

const (
	paperSearchPath     = "/graph/v1/paper/search"
	paperPath           = "/graph/v1/paper/"
	authorSearchPath    = "/graph/v1/author/search"
	authorPath          = "/graph/v1/author/"
	recommendationsPath = "/recommendations/v1/papers/forpaper/"

	// maxErrorBody bounds how much of a failed response is kept for logs.
	maxErrorBody = 512
)

// Client issues authenticated GET requests against the graph API.
type Client struct {
	BaseURL    string
	APIKey     string
	UserAgent  string
	HTTP       *http.Client
	MaxRetries int
	Log        zerolog.Logger
}

// NewClient builds a Client from configuration. The HTTP client timeout is
// cfg.Timeout; an empty base URL falls back to DefaultBaseURL.
func NewClient(cfg types.APIConfig, log zerolog.Logger) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	return &Client{
		BaseURL:    strings.TrimRight(base, "/"),
		APIKey:     cfg.Key,
		UserAgent:  cfg.UserAgent,
		HTTP:       &http.Client{Timeout: cfg.Timeout},
		MaxRetries: cfg.RateLimitRetries,
		Log:        log,
	}
}

// SearchPapers runs a relevance search over papers.
func (c *Client) SearchPapers(ctx context.Context, s PaperSearch, fields string) (*PaperPage, error) {
	params := url.Values{
		"query":  {s.Query},
		"limit":  {strconv.Itoa(s.Limit)},
		"fields": {fields},
	}
	if s.Year != "" {
		params.Set("year", s.Year)
	}
	if s.FieldsOfStudy != "" {
		params.Set("fieldsOfStudy", s.FieldsOfStudy)
	}
	if s.OpenAccessOnly {
		params.Set("openAccessPdf", "")
	}

	var page PaperPage
	if err := c.get(ctx, paperSearchPath, params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Paper fetches a single paper by any identifier the API accepts
// (S2 paper ID, "DOI:...", "ARXIV:...", "CorpusId:...").
func (c *Client) Paper(ctx context.Context, id, fields string) (*Paper, error) {
	var p Paper
	if err := c.get(ctx, paperPath+id, url.Values{"fields": {fields}}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// Citations lists papers that cite id.
func (c *Client) Citations(ctx context.Context, id string, limit int, fields string) (*CitationPage, error) {
	var page CitationPage
	if err := c.get(ctx, paperPath+id+"/citations", listParams(limit, fields), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// References lists papers cited by id.
func (c *Client) References(ctx context.Context, id string, limit int, fields string) (*ReferencePage, error) {
	var page ReferencePage
	if err := c.get(ctx, paperPath+id+"/references", listParams(limit, fields), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Recommendations returns papers similar to id.
func (c *Client) Recommendations(ctx context.Context, id string, limit int, fields string) ([]Paper, error) {
	var resp recommendationResponse
	if err := c.get(ctx, recommendationsPath+id, listParams(limit, fields), &resp); err != nil {
		return nil, err
	}
	return resp.RecommendedPapers, nil
}

// SearchAuthors searches authors by name.
func (c *Client) SearchAuthors(ctx context.Context, query string, limit int, fields string) (*AuthorPage, error) {
	params := listParams(limit, fields)
	params.Set("query", query)

	var page AuthorPage
	if err := c.get(ctx, authorSearchPath, params, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Author fetches a single author profile.
func (c *Client) Author(ctx context.Context, id, fields string) (*Author, error) {
	var a Author
	if err := c.get(ctx, authorPath+id, url.Values{"fields": {fields}}, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

// AuthorPapers lists papers written by the author id.
func (c *Client) AuthorPapers(ctx context.Context, id string, limit int, fields string) (*PaperPage, error) {
	var page PaperPage
	if err := c.get(ctx, authorPath+id+"/papers", listParams(limit, fields), &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Ping issues the cheapest authenticated request (a one-result search) and
// reports whether the API accepted the credential. The response body is
// discarded.
func (c *Client) Ping(ctx context.Context) error {
	params := url.Values{"query": {"test"}, "limit": {"1"}}
	return c.get(ctx, paperSearchPath, params, nil)
}

func listParams(limit int, fields string) url.Values {
	return url.Values{
		"fields": {fields},
		"limit":  {strconv.Itoa(limit)},
	}
}

// get performs one authenticated GET and decodes a 200 response into out.
// A nil out discards the body.
func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}

	reqURL, err := c.endpoint(path, params)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	start := time.Now()
	resp, err := httputil.DoWithRetry(ctx, httpClient, req, c.MaxRetries, c.Log)
	if err != nil {
		c.Log.Debug().Str("path", path).Err(err).Dur("elapsed", time.Since(start)).Msg("request failed")
		return &TransportError{Path: path, Err: err}
	}
	defer resp.Body.Close()

	c.Log.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &APIError{StatusCode: resp.StatusCode, Path: path, Body: string(body)}
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing response from %s: %w", path, err)
	}
	return nil
}

// endpoint joins the base URL, an unescaped path and the query string.
// Identifiers such as "DOI:10.1145/3292500.3330701" keep their slashes and
// colons; characters invalid in a path are percent-encoded.
func (c *Client) endpoint(path string, params url.Values) (string, error) {
	base := c.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parsing base URL %q: %w", base, err)
	}
	u.Path = strings.TrimRight(u.Path, "/") + path
	u.RawPath = ""
	u.RawQuery = params.Encode()
	return u.String(), nil
}
