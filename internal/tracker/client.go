package tracker

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

// Issue is one issue as returned by the tracker's search endpoint,
// flattened out of the nested wire shape.
type Issue struct {
	Key        string
	Type       string
	Summary    string
	StatusName string
	StartDate  *time.Time
	DueDate    *time.Time
}

// SearchResult is one page of search results plus the reported total
// across all pages.
type SearchResult struct {
	Issues     []Issue
	StartAt    int
	MaxResults int
	Total      int
}

// Client provides access to the external issue tracker.
type Client interface {
	// SearchIssues runs a JQL query, returning one page of results.
	SearchIssues(ctx context.Context, jql string, startAt, maxResults int) (*SearchResult, error)

	// SearchChildIssues returns all issues whose parent is the given key.
	SearchChildIssues(ctx context.Context, parentKey string) (*SearchResult, error)

	// TestConnection checks whether the credentials are accepted.
	TestConnection(ctx context.Context) bool
}

// httpClient implements Client against the tracker's REST API.
type httpClient struct {
	cfg  Config
	http *http.Client
}

// NewClient creates a Client for the given connection settings.
func NewClient(cfg Config) Client {
	return &httpClient{
		cfg: cfg,
		http: &http.Client{
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout: 5 * time.Second,
				}).DialContext,
			},
		},
	}
}

// Wire shapes for GET /rest/api/3/search.
type searchResponse struct {
	StartAt    int        `json:"startAt"`
	MaxResults int        `json:"maxResults"`
	Total      int        `json:"total"`
	Issues     []apiIssue `json:"issues"`
}

type apiIssue struct {
	Key    string `json:"key"`
	Fields struct {
		Summary   string `json:"summary"`
		IssueType struct {
			Name string `json:"name"`
		} `json:"issuetype"`
		Status struct {
			Name string `json:"name"`
		} `json:"status"`
		DueDate *string `json:"duedate"`
		// The tracker exposes the start date through a configurable
		// custom field; 10015 is the common default.
		StartDate *string `json:"customfield_10015"`
	} `json:"fields"`
}

func (c *httpClient) SearchIssues(ctx context.Context, jql string, startAt, maxResults int) (*SearchResult, error) {
	endpoint := fmt.Sprintf("%s/rest/api/3/search?jql=%s&startAt=%d&maxResults=%d",
		c.cfg.BaseURL, url.QueryEscape(jql), startAt, maxResults)
	return c.doSearch(ctx, endpoint)
}

func (c *httpClient) SearchChildIssues(ctx context.Context, parentKey string) (*SearchResult, error) {
	jql := fmt.Sprintf("parent = %q", parentKey)
	endpoint := fmt.Sprintf("%s/rest/api/3/search?jql=%s",
		c.cfg.BaseURL, url.QueryEscape(jql))
	return c.doSearch(ctx, endpoint)
}

func (c *httpClient) TestConnection(ctx context.Context) bool {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.cfg.BaseURL+"/rest/api/3/myself", nil)
	if err != nil {
		return false
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (c *httpClient) doSearch(ctx context.Context, endpoint string) (*SearchResult, error) {
	ctx, cancel := c.callContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ErrTimeout
		}
		if isConnectionError(err) {
			return nil, ErrUnavailable
		}
		return nil, fmt.Errorf("tracker request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, ErrAuthFailed
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("tracker returned status %d: %s", resp.StatusCode, string(body))
	}

	var decoded searchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}

	result := &SearchResult{
		StartAt:    decoded.StartAt,
		MaxResults: decoded.MaxResults,
		Total:      decoded.Total,
		Issues:     make([]Issue, 0, len(decoded.Issues)),
	}
	for _, raw := range decoded.Issues {
		result.Issues = append(result.Issues, Issue{
			Key:        raw.Key,
			Type:       raw.Fields.IssueType.Name,
			Summary:    raw.Fields.Summary,
			StatusName: raw.Fields.Status.Name,
			StartDate:  parseAPIDate(raw.Fields.StartDate),
			DueDate:    parseAPIDate(raw.Fields.DueDate),
		})
	}
	return result, nil
}

func (c *httpClient) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	timeout := time.Duration(c.cfg.TimeoutMs) * time.Millisecond
	if timeout <= 0 {
		timeout = time.Duration(DefaultConfig().TimeoutMs) * time.Millisecond
	}
	return context.WithTimeout(ctx, timeout)
}

func (c *httpClient) setHeaders(req *http.Request) {
	req.SetBasicAuth(c.cfg.Email, c.cfg.APIToken)
	req.Header.Set("Accept", "application/json")
}

// parseAPIDate parses the tracker's YYYY-MM-DD date strings; absent or
// malformed values come back nil.
func parseAPIDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}

func isConnectionError(err error) bool {
	if err == nil {
		return false
	}
	var netErr *net.OpError
	return errors.As(err, &netErr)
}
