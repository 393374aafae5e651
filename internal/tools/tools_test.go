// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/scholar-tools/internal/history"
	"github.com/pdiddy/scholar-tools/internal/scholar"
	"github.com/pdiddy/scholar-tools/pkg/types"
)

// --- test helpers ---

// fakeAPI serves canned responses keyed by URL path and records requests.
type fakeAPI struct {
	mu       sync.Mutex
	routes   map[string]response
	requests []*http.Request
}

type response struct {
	status int
	body   string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests = append(f.requests, r)
	resp, ok := f.routes[r.URL.Path]
	f.mu.Unlock()

	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if resp.status != 0 && resp.status != http.StatusOK {
		w.WriteHeader(resp.status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprint(w, resp.body)
}

func (f *fakeAPI) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeAPI) last() *http.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests[len(f.requests)-1]
}

func newFake(t *testing.T, routes map[string]response) (*fakeAPI, *scholar.Client) {
	t.Helper()
	f := &fakeAPI{routes: routes}
	ts := httptest.NewServer(f)
	t.Cleanup(ts.Close)

	cfg := types.DefaultConfig().API
	cfg.BaseURL = ts.URL
	cfg.Key = "sk-test"
	cfg.RateLimitRetries = 0
	return f, scholar.NewClient(cfg, zerolog.Nop())
}

func ok(body string) response { return response{body: body} }

func status(code int) response { return response{status: code} }

func failureMessage(t *testing.T, err error) string {
	t.Helper()
	var f *Failure
	require.ErrorAs(t, err, &f)
	return f.Message
}

// --- args ---

func TestArgsInt(t *testing.T) {
	args := Args{
		"float":  float64(42),
		"int":    7,
		"string": " 12 ",
		"bad":    "many",
		"bool":   true,
	}
	assert.Equal(t, 42, args.Int("float", 0))
	assert.Equal(t, 7, args.Int("int", 0))
	assert.Equal(t, 12, args.Int("string", 0))
	assert.Equal(t, 3, args.Int("bad", 3))
	assert.Equal(t, 3, args.Int("bool", 3))
	assert.Equal(t, 3, args.Int("missing", 3))
}

func TestArgsStringAndBool(t *testing.T) {
	args := Args{"s": "  padded ", "n": float64(2020), "t": true, "ts": "TRUE", "f": "no"}
	assert.Equal(t, "padded", args.String("s"))
	assert.Equal(t, "2020", args.String("n"))
	assert.Equal(t, "", args.String("missing"))
	assert.True(t, args.Bool("t"))
	assert.True(t, args.Bool("ts"))
	assert.False(t, args.Bool("f"))
	assert.False(t, args.Bool("missing"))
}

func TestLimitClamping(t *testing.T) {
	tests := []struct {
		name string
		in   any
		def  int
		lo   int
		hi   int
		want int
	}{
		{"default", nil, 10, 1, 100, 10},
		{"within", float64(50), 10, 1, 100, 50},
		{"zero", float64(0), 10, 1, 100, 1},
		{"negative", float64(-5), 10, 1, 100, 1},
		{"above", float64(500), 10, 1, 100, 100},
		{"author cap", float64(50), 5, 1, 20, 20},
		{"string", "30", 20, 1, 100, 30},
		{"huge", 1e20, 10, 1, 100, 100},
		{"huge negative", -1e20, 10, 1, 100, 1},
		{"infinite", math.Inf(1), 10, 1, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := Args{}
			if tt.in != nil {
				args["limit"] = tt.in
			}
			assert.Equal(t, tt.want, args.limit("limit", tt.def, tt.lo, tt.hi))
		})
	}
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, splitList(" a ,b\n\n,c,", ",\n"))
	assert.Equal(t, []string{"graph nets", "llm"}, splitList("graph nets; ;llm\n", "\n;"))
	assert.Empty(t, splitList(" ; \n ", "\n;"))
}

// --- required parameters ---

func TestRequiredParameters(t *testing.T) {
	f, c := newFake(t, nil)
	tests := []struct {
		tool Tool
		want string
	}{
		{NewPaperSearch(c), "Error: Search query is required"},
		{NewTitleSearch(c), "Error: Paper title is required"},
		{NewPaperDetail(c), "Error: Paper ID is required"},
		{NewPapersDetail(c, 1), "Error: Paper IDs are required"},
		{NewCitations(c), "Error: Paper ID is required"},
		{NewReferences(c), "Error: Paper ID is required"},
		{NewRecommendations(c), "Error: Paper ID is required"},
		{NewAuthorSearch(c), "Error: Author name is required"},
		{NewAuthorDetail(c), "Error: Author ID is required"},
		{NewAuthorPapers(c), "Error: Author ID is required"},
		{NewBulkSearch(c, 1), "Error: Search queries are required"},
	}
	for _, tt := range tests {
		t.Run(tt.tool.Name(), func(t *testing.T) {
			_, err := tt.tool.Run(context.Background(), Args{})
			assert.Equal(t, tt.want, failureMessage(t, err))

			_, err = tt.tool.Run(context.Background(), Args{"query": "  ", "title": "", "paper_id": " "})
			assert.Error(t, err)
		})
	}
	assert.Zero(t, f.count(), "no request is sent without required input")
}

func TestMissingAPIKey(t *testing.T) {
	f, c := newFake(t, nil)
	c.APIKey = ""

	_, err := NewPaperSearch(c).Run(context.Background(), Args{"query": "x"})
	assert.Equal(t, "Error: API key is required", failureMessage(t, err))

	_, err = NewBulkSearch(c, 1).Run(context.Background(), Args{"queries": "a;b"})
	assert.Equal(t, "Error: API key is required", failureMessage(t, err))

	assert.Zero(t, f.count())
}

// --- paper tools ---

func TestPaperSearch(t *testing.T) {
	f, c := newFake(t, map[string]response{
		"/graph/v1/paper/search": ok(`{"total":1,"data":[{"paperId":"p1","title":"Graph Networks","year":2020}]}`),
	})

	out, err := NewPaperSearch(c).Run(context.Background(), Args{
		"query":            "graph networks",
		"limit":            float64(500),
		"year":             "2018-2022",
		"fields_of_study":  "Computer Science",
		"open_access_only": true,
	})
	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 papers for query: \"graph networks\" (showing 1)")

	q := f.last().URL.Query()
	assert.Equal(t, "graph networks", q.Get("query"))
	assert.Equal(t, "100", q.Get("limit"))
	assert.Equal(t, "2018-2022", q.Get("year"))
	assert.Equal(t, "Computer Science", q.Get("fieldsOfStudy"))
	assert.True(t, q.Has("openAccessPdf"))
	assert.Equal(t, searchFields, q.Get("fields"))
}

func TestPaperSearchStatusErrors(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{http.StatusUnauthorized, "Error: Invalid API key"},
		{http.StatusPaymentRequired, "Error: Insufficient credits. Please recharge at ai4scholar.net"},
		{http.StatusNotFound, "Error: API returned status 404"},
		{http.StatusInternalServerError, "Error: API returned status 500"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			_, c := newFake(t, map[string]response{"/graph/v1/paper/search": status(tt.code)})
			_, err := NewPaperSearch(c).Run(context.Background(), Args{"query": "x"})
			assert.Equal(t, tt.want, failureMessage(t, err))
		})
	}
}

func TestTitleSearch(t *testing.T) {
	f, c := newFake(t, map[string]response{
		"/graph/v1/paper/search": ok(`{"data":[{"paperId":"a","title":"Attention Is All You Need"},{"title":"Other"}]}`),
	})

	out, err := NewTitleSearch(c).Run(context.Background(), Args{"title": "attention is all you need", "year": float64(2017)})
	require.NoError(t, err)
	assert.Contains(t, out, "## Attention Is All You Need")
	assert.Contains(t, out, "- Other (N/A)")

	q := f.last().URL.Query()
	assert.Equal(t, "5", q.Get("limit"))
	assert.Equal(t, "2017", q.Get("year"))
}

func TestTitleSearchNoYear(t *testing.T) {
	f, c := newFake(t, map[string]response{"/graph/v1/paper/search": ok(`{"data":[]}`)})

	out, err := NewTitleSearch(c).Run(context.Background(), Args{"title": "nothing"})
	require.NoError(t, err)
	assert.Equal(t, "No papers found with title: nothing", out)
	assert.False(t, f.last().URL.Query().Has("year"))
}

func TestPaperDetail(t *testing.T) {
	f, c := newFake(t, map[string]response{
		"/graph/v1/paper/DOI:10.1/abc": ok(`{"paperId":"p9","title":"Found","citations":[{"title":"C","year":2021,"citationCount":3}]}`),
	})

	out, err := NewPaperDetail(c).Run(context.Background(), Args{"paper_id": "DOI:10.1/abc", "include_citations": true})
	require.NoError(t, err)
	assert.Contains(t, out, "# Found")
	assert.Contains(t, out, "## Recent Citations (1 shown)")
	assert.Equal(t, detailFields+detailCitationFields, f.last().URL.Query().Get("fields"))
}

func TestPaperDetailFieldSelection(t *testing.T) {
	f, c := newFake(t, map[string]response{"/graph/v1/paper/p": ok(`{"paperId":"p"}`)})
	tool := NewPaperDetail(c)

	tests := []struct {
		name string
		args Args
		want string
	}{
		{"plain", Args{"paper_id": "p"}, detailFields},
		{"references", Args{"paper_id": "p", "include_references": true}, detailFields + detailReferenceFields},
		{"both", Args{"paper_id": "p", "include_citations": true, "include_references": true}, detailFields + detailCitationFields + detailReferenceFields},
		{"bibtex skips nested", Args{"paper_id": "p", "include_citations": true, "format": "bibtex"}, detailFields},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tool.Run(context.Background(), tt.args)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.last().URL.Query().Get("fields"))
		})
	}
}

func TestPaperDetailBibTeX(t *testing.T) {
	_, c := newFake(t, map[string]response{
		"/graph/v1/paper/p": ok(`{"paperId":"p","title":"Deep Learning","year":2015,"venue":"Nature","authors":[{"name":"Yann LeCun"}],"publicationTypes":["JournalArticle"]}`),
	})

	out, err := NewPaperDetail(c).Run(context.Background(), Args{"paper_id": "p", "format": "bibtex"})
	require.NoError(t, err)
	assert.Contains(t, out, "@article{lecun2015deep,")
	assert.Contains(t, out, "Nature")
}

func TestPaperDetailCSL(t *testing.T) {
	f, c := newFake(t, map[string]response{
		"/graph/v1/paper/p": ok(`{"paperId":"p","title":"Deep Learning","publicationDate":"2015-05-27","authors":[{"name":"Yann LeCun"}]}`),
	})

	out, err := NewPaperDetail(c).Run(context.Background(), Args{"paper_id": "p", "format": "CSL", "include_references": true})
	require.NoError(t, err)
	assert.Contains(t, out, "family: LeCun")
	assert.Contains(t, out, "date-parts:")
	assert.Equal(t, detailFields, f.last().URL.Query().Get("fields"))
}

func TestPaperNotFound(t *testing.T) {
	_, c := newFake(t, nil)
	tests := []struct {
		tool Tool
		args Args
		want string
	}{
		{NewPaperDetail(c), Args{"paper_id": "zz"}, "Error: Paper not found with ID: zz"},
		{NewCitations(c), Args{"paper_id": "zz"}, "Error: Paper not found with ID: zz"},
		{NewReferences(c), Args{"paper_id": "zz"}, "Error: Paper not found with ID: zz"},
		{NewRecommendations(c), Args{"paper_id": "zz"}, "Error: Paper not found or no recommendations available for: zz"},
		{NewAuthorDetail(c), Args{"author_id": "zz"}, "Error: Author not found with ID: zz"},
		{NewAuthorPapers(c), Args{"author_id": "zz"}, "Error: Author not found with ID: zz"},
	}
	for _, tt := range tests {
		t.Run(tt.tool.Name(), func(t *testing.T) {
			_, err := tt.tool.Run(context.Background(), tt.args)
			assert.Equal(t, tt.want, failureMessage(t, err))
		})
	}
}

func TestCitationsAndReferences(t *testing.T) {
	f, c := newFake(t, map[string]response{
		"/graph/v1/paper/p/citations":  ok(`{"data":[{"citingPaper":{"paperId":"c1","title":"Citer"}}]}`),
		"/graph/v1/paper/p/references": ok(`{"data":[{"citedPaper":{"paperId":"r1","title":"Cited"}}]}`),
	})

	out, err := NewCitations(c).Run(context.Background(), Args{"paper_id": "p"})
	require.NoError(t, err)
	assert.Contains(t, out, "### 1. Citer")
	assert.Equal(t, "20", f.last().URL.Query().Get("limit"))
	assert.Equal(t, linkedFields, f.last().URL.Query().Get("fields"))

	out, err = NewReferences(c).Run(context.Background(), Args{"paper_id": "p", "limit": float64(0)})
	require.NoError(t, err)
	assert.Contains(t, out, "### 1. Cited")
	assert.Equal(t, "1", f.last().URL.Query().Get("limit"))
}

func TestRecommendations(t *testing.T) {
	f, c := newFake(t, map[string]response{
		"/recommendations/v1/papers/forpaper/p": ok(`{"recommendedPapers":[{"paperId":"r","title":"Similar"}]}`),
	})

	out, err := NewRecommendations(c).Run(context.Background(), Args{"paper_id": "p"})
	require.NoError(t, err)
	assert.Contains(t, out, "**Based on:** p | **Found:** 1 recommendations")
	assert.Equal(t, "10", f.last().URL.Query().Get("limit"))
}

// --- author tools ---

func TestAuthorSearch(t *testing.T) {
	f, c := newFake(t, map[string]response{
		"/graph/v1/author/search": ok(`{"total":1,"data":[{"authorId":"1","name":"Hinton","hIndex":180}]}`),
	})

	out, err := NewAuthorSearch(c).Run(context.Background(), Args{"query": "hinton", "limit": float64(99)})
	require.NoError(t, err)
	assert.Contains(t, out, "## 1. Hinton")
	assert.Equal(t, "20", f.last().URL.Query().Get("limit"))
	assert.Equal(t, authorSearchFields, f.last().URL.Query().Get("fields"))
}

func TestAuthorPapers(t *testing.T) {
	f, c := newFake(t, map[string]response{
		"/graph/v1/author/7/papers": ok(`{"data":[{"paperId":"a","title":"Open","openAccessPdf":{"url":"u"}}]}`),
	})

	out, err := NewAuthorPapers(c).Run(context.Background(), Args{"author_id": "7"})
	require.NoError(t, err)
	assert.Contains(t, out, "### 1. 📄 Open")
	assert.Equal(t, "20", f.last().URL.Query().Get("limit"))
}

// --- batch tools ---

func TestPapersDetailMixedResults(t *testing.T) {
	_, c := newFake(t, map[string]response{
		"/graph/v1/paper/a": ok(`{"paperId":"a","title":"First"}`),
		"/graph/v1/paper/c": status(http.StatusInternalServerError),
		"/graph/v1/paper/d": ok(`{"paperId":"d","title":"Fourth"}`),
	})

	for _, concurrency := range []int{1, 4} {
		t.Run(fmt.Sprintf("concurrency %d", concurrency), func(t *testing.T) {
			out, err := NewPapersDetail(c, concurrency).Run(context.Background(), Args{"paper_ids": "a, b\nc,d"})
			require.NoError(t, err)

			assert.True(t, strings.HasPrefix(out, "# Multiple Papers Detail\n**Requesting:** 4 papers\n"))
			first := strings.Index(out, "## 1. First")
			second := strings.Index(out, "## Paper 2: Not Found\nID: b")
			third := strings.Index(out, "## Paper 3: Error\nAPI returned status 500")
			fourth := strings.Index(out, "## 4. Fourth")
			require.True(t, first >= 0 && second >= 0 && third >= 0 && fourth >= 0, out)
			assert.True(t, first < second && second < third && third < fourth, "sections keep input order")
		})
	}
}

func TestPapersDetailCapsIDs(t *testing.T) {
	routes := map[string]response{}
	ids := make([]string, 25)
	for i := range ids {
		ids[i] = fmt.Sprintf("id%d", i)
		routes["/graph/v1/paper/"+ids[i]] = ok(`{"title":"T"}`)
	}
	f, c := newFake(t, routes)

	out, err := NewPapersDetail(c, 1).Run(context.Background(), Args{"paper_ids": strings.Join(ids, ",")})
	require.NoError(t, err)
	assert.Contains(t, out, "**Requesting:** 20 papers")
	assert.Equal(t, 20, f.count())
}

func TestPapersDetailNoValidIDs(t *testing.T) {
	_, c := newFake(t, nil)
	_, err := NewPapersDetail(c, 1).Run(context.Background(), Args{"paper_ids": " , \n "})
	assert.Equal(t, "Error: No valid paper IDs found", failureMessage(t, err))
}

func TestPapersDetailAbortsOnAuth(t *testing.T) {
	f, c := newFake(t, map[string]response{
		"/graph/v1/paper/a": ok(`{"title":"A"}`),
		"/graph/v1/paper/b": status(http.StatusUnauthorized),
		"/graph/v1/paper/c": ok(`{"title":"C"}`),
	})

	_, err := NewPapersDetail(c, 1).Run(context.Background(), Args{"paper_ids": "a,b,c"})
	assert.Equal(t, "Error: Invalid API key", failureMessage(t, err))
	assert.Equal(t, 2, f.count(), "sequential run stops at the rejected key")
}

func TestBulkSearch(t *testing.T) {
	f, c := newFake(t, map[string]response{
		"/graph/v1/paper/search": ok(`{"total":3,"data":[{"paperId":"x","title":"Hit","authors":[{"name":"A"},{"name":"B"},{"name":"C"}],"year":2024}]}`),
	})

	out, err := NewBulkSearch(c, 2).Run(context.Background(), Args{"queries": "llm agents;\ngraph nets", "limit_per_query": float64(50)})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "# Bulk Search Results\n**Queries:** 2 | **Results per query:** 20\n"))
	assert.Contains(t, out, "## Query 1: \"llm agents\"\nFound 3 papers (showing 1)\n")
	assert.Contains(t, out, "1. **Hit**\n   A, B et al. (2024) | Citations: 0\n   ID: x")
	assert.Less(t, strings.Index(out, "Query 1"), strings.Index(out, "Query 2"))
	assert.NotContains(t, out, "Limited to first 10")
	assert.Equal(t, 2, f.count())
	assert.Equal(t, "20", f.last().URL.Query().Get("limit"))
	assert.Equal(t, bulkFields, f.last().URL.Query().Get("fields"))
}

func TestBulkSearchCapsQueries(t *testing.T) {
	f, c := newFake(t, map[string]response{"/graph/v1/paper/search": ok(`{"total":0,"data":[]}`)})
	queries := make([]string, 12)
	for i := range queries {
		queries[i] = fmt.Sprintf("q%d", i)
	}

	out, err := NewBulkSearch(c, 1).Run(context.Background(), Args{"queries": strings.Join(queries, ";")})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Note: Limited to first 10 queries\n\n# Bulk Search Results\n**Queries:** 10 | **Results per query:** 5"))
	assert.Contains(t, out, "No papers found.")
	assert.NotContains(t, out, "q10")
	assert.Equal(t, 10, f.count())
}

func TestBulkSearchPerQueryError(t *testing.T) {
	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		fmt.Fprint(w, `{"total":0,"data":[]}`)
	}))
	t.Cleanup(ts.Close)
	cfg := types.DefaultConfig().API
	cfg.BaseURL, cfg.Key, cfg.RateLimitRetries = ts.URL, "k", 0
	c := scholar.NewClient(cfg, zerolog.Nop())

	out, err := NewBulkSearch(c, 1).Run(context.Background(), Args{"queries": "first;second"})
	require.NoError(t, err)
	assert.Contains(t, out, "## Query 1: \"first\"\nError: API returned status 503")
	assert.Contains(t, out, "## Query 2: \"second\"\nFound 0 papers")
}

func TestBulkSearchAbortsOnCredits(t *testing.T) {
	_, c := newFake(t, map[string]response{"/graph/v1/paper/search": status(http.StatusPaymentRequired)})
	_, err := NewBulkSearch(c, 3).Run(context.Background(), Args{"queries": "a;b;c"})
	assert.Equal(t, "Error: Insufficient credits. Please recharge at ai4scholar.net", failureMessage(t, err))
}

func TestFanOutCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := fanOut(ctx, 1, []string{"a"}, func(ctx context.Context, s string) (string, error) {
		return s, ctx.Err()
	})
	assert.ErrorIs(t, err, context.Canceled)
}

// --- validator ---

func TestValidator(t *testing.T) {
	tests := []struct {
		name string
		key  string
		code int
		want string
	}{
		{"accepted", "good", http.StatusOK, ""},
		{"missing", "", http.StatusOK, "API key is required"},
		{"rejected", "bad", http.StatusUnauthorized, "Invalid API key"},
		{"no credits", "poor", http.StatusPaymentRequired, "Insufficient credits. Please recharge at ai4scholar.net"},
		{"server error", "k", http.StatusBadGateway, "API error: 502"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, c := newFake(t, map[string]response{"/graph/v1/paper/search": {status: tt.code, body: `{"data":[]}`}})
			err := NewValidator(c, time.Second).Validate(context.Background(), tt.key)
			if tt.want == "" {
				require.NoError(t, err)
				assert.Equal(t, "Bearer good", f.last().Header.Get("Authorization"))
				assert.Equal(t, "test", f.last().URL.Query().Get("query"))
				assert.Equal(t, "1", f.last().URL.Query().Get("limit"))
				return
			}
			require.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestValidatorTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	t.Cleanup(ts.Close)
	cfg := types.DefaultConfig().API
	cfg.BaseURL = ts.URL
	c := scholar.NewClient(cfg, zerolog.Nop())

	err := NewValidator(c, 50*time.Millisecond).Validate(context.Background(), "k")
	require.Error(t, err)
	assert.Equal(t, "API request timeout", err.Error())
}

// --- registry ---

type fakeRecorder struct {
	mu      sync.Mutex
	entries []history.Entry
	err     error
}

func (r *fakeRecorder) Record(_ context.Context, e history.Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, e)
	return r.err
}

func TestRegistryCatalogue(t *testing.T) {
	_, c := newFake(t, nil)
	reg := NewRegistry(c, Options{Log: zerolog.Nop()})

	var names []string
	for _, tool := range reg.Tools() {
		names = append(names, tool.Name())
		assert.Equal(t, tool.Name(), tool.Definition().Name)
	}
	assert.Equal(t, []string{
		"paper_search", "paper_title_search", "paper_detail", "papers_detail",
		"paper_citations", "paper_references", "paper_recommendations",
		"author_search", "author_detail", "author_papers", "bulk_search",
	}, names)

	tool, found := reg.Lookup("author_detail")
	require.True(t, found)
	assert.Equal(t, "author_detail", tool.Name())
	_, found = reg.Lookup("nope")
	assert.False(t, found)
}

func TestRegistryInvokeRecords(t *testing.T) {
	_, c := newFake(t, map[string]response{
		"/graph/v1/author/1": ok(`{"authorId":"1","name":"Ada"}`),
	})
	rec := &fakeRecorder{}
	reg := NewRegistry(c, Options{Recorder: rec, Log: zerolog.Nop()})
	detail, _ := reg.Lookup("author_detail")

	out, err := reg.Invoke(context.Background(), detail, Args{"author_id": "1"})
	require.NoError(t, err)
	assert.Contains(t, out, "# Ada")

	_, err = reg.Invoke(context.Background(), detail, Args{"author_id": "2"})
	require.Error(t, err)

	require.Len(t, rec.entries, 2)
	assert.Equal(t, "author_detail", rec.entries[0].Tool)
	assert.JSONEq(t, `{"author_id":"1"}`, rec.entries[0].Arguments)
	assert.True(t, rec.entries[0].OK)
	assert.Equal(t, "# Ada", rec.entries[0].Summary)
	assert.False(t, rec.entries[1].OK)
	assert.Equal(t, "Error: Author not found with ID: 2", rec.entries[1].Summary)
}

func TestRegistryRecorderFailureIgnored(t *testing.T) {
	_, c := newFake(t, map[string]response{"/graph/v1/author/1": ok(`{"name":"Ada"}`)})
	rec := &fakeRecorder{err: errors.New("disk full")}
	reg := NewRegistry(c, Options{Recorder: rec, Log: zerolog.Nop()})
	detail, _ := reg.Lookup("author_detail")

	out, err := reg.Invoke(context.Background(), detail, Args{"author_id": "1"})
	require.NoError(t, err)
	assert.Contains(t, out, "# Ada")
}

func TestHandler(t *testing.T) {
	_, c := newFake(t, map[string]response{"/graph/v1/author/1": ok(`{"name":"Ada"}`)})
	reg := NewRegistry(c, Options{Log: zerolog.Nop()})
	detail, _ := reg.Lookup("author_detail")
	handle := reg.Handler(detail)

	req := mcp.CallToolRequest{}
	req.Params.Arguments = map[string]any{"author_id": "1"}
	res, err := handle(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, resultText(res), "# Ada")

	req.Params.Arguments = map[string]any{}
	res, err = handle(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, res.IsError)
	assert.Equal(t, "Error: Author ID is required", resultText(res))
}

func resultText(r *mcp.CallToolResult) string {
	for _, c := range r.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}
