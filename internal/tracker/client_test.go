package tracker

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) Config {
	cfg := DefaultConfig()
	cfg.BaseURL = baseURL
	cfg.Email = "pm@example.com"
	cfg.APIToken = "secret-token"
	return cfg
}

func TestClient_SearchIssues_SendsAuthAndPagination(t *testing.T) {
	var gotAuth, gotJQL string
	var gotStartAt, gotMaxResults string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		q := r.URL.Query()
		gotJQL = q.Get("jql")
		gotStartAt = q.Get("startAt")
		gotMaxResults = q.Get("maxResults")

		fmt.Fprint(w, `{
			"startAt": 100, "maxResults": 100, "total": 101,
			"issues": [
				{"key": "PROJ-101", "fields": {
					"summary": "Final story",
					"issuetype": {"name": "Story"},
					"status": {"name": "In Progress"},
					"duedate": "2025-07-15",
					"customfield_10015": "2025-05-01"
				}}
			]
		}`)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	result, err := client.SearchIssues(context.Background(), "issuetype in (Epic, Story, Task)", 100, 100)
	require.NoError(t, err)

	assert.NotEmpty(t, gotAuth, "basic auth header must be set")
	assert.Contains(t, gotAuth, "Basic ")
	assert.Equal(t, "issuetype in (Epic, Story, Task)", gotJQL)
	assert.Equal(t, "100", gotStartAt)
	assert.Equal(t, "100", gotMaxResults)

	assert.Equal(t, 101, result.Total)
	require.Len(t, result.Issues, 1)
	issue := result.Issues[0]
	assert.Equal(t, "PROJ-101", issue.Key)
	assert.Equal(t, "Story", issue.Type)
	assert.Equal(t, "In Progress", issue.StatusName)
	require.NotNil(t, issue.StartDate)
	assert.Equal(t, "2025-05-01", issue.StartDate.Format("2006-01-02"))
	require.NotNil(t, issue.DueDate)
	assert.Equal(t, "2025-07-15", issue.DueDate.Format("2006-01-02"))
}

func TestClient_SearchChildIssues_QuotesParentKey(t *testing.T) {
	var gotJQL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotJQL = r.URL.Query().Get("jql")
		fmt.Fprint(w, `{"startAt": 0, "maxResults": 50, "total": 0, "issues": []}`)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	result, err := client.SearchChildIssues(context.Background(), "PROJ-7")
	require.NoError(t, err)

	assert.Equal(t, `parent = "PROJ-7"`, gotJQL)
	assert.Empty(t, result.Issues)
}

func TestClient_SearchIssues_AuthFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.SearchIssues(context.Background(), "jql", 0, 100)
	assert.True(t, errors.Is(err, ErrAuthFailed), "got: %v", err)
}

func TestClient_SearchIssues_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	_, err := client.SearchIssues(context.Background(), "jql", 0, 100)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_SearchIssues_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(300 * time.Millisecond)
		fmt.Fprint(w, `{"total": 0, "issues": []}`)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.TimeoutMs = 25
	client := NewClient(cfg)

	_, err := client.SearchIssues(context.Background(), "jql", 0, 100)
	assert.True(t, errors.Is(err, ErrTimeout), "got: %v", err)
}

func TestClient_SearchIssues_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // closed before use: connection refused

	client := NewClient(testConfig(srv.URL))
	_, err := client.SearchIssues(context.Background(), "jql", 0, 100)
	assert.True(t, errors.Is(err, ErrUnavailable), "got: %v", err)
}

func TestClient_TestConnection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/api/3/myself" {
			http.NotFound(w, r)
			return
		}
		if _, _, ok := r.BasicAuth(); !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"displayName": "PM"}`)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	assert.True(t, client.TestConnection(context.Background()))

	bad := testConfig("http://127.0.0.1:1")
	assert.False(t, NewClient(bad).TestConnection(context.Background()))
}

func TestObscureToken_RoundTrip(t *testing.T) {
	obscured := ObscureToken("my-api-token")
	assert.NotEqual(t, "my-api-token", obscured)

	revealed, err := RevealToken(obscured)
	require.NoError(t, err)
	assert.Equal(t, "my-api-token", revealed)

	_, err = RevealToken("not base64 !!!")
	assert.Error(t, err)
}
