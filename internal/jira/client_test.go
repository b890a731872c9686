package jira

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(srv *httptest.Server) *Client {
	c := NewClient(srv.URL)
	c.HTTPClient = srv.Client()
	return c
}

func TestLogin(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, sessionPath, r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var creds loginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Username != "admin" || creds.Password != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		json.NewEncoder(w).Encode(loginResponse{
			Session: Session{Name: "JSESSIONID", Value: "abc123"},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv)
	sess, err := c.Login(context.Background(), "admin", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, "JSESSIONID", sess.Name)
	assert.Equal(t, "abc123", sess.Value)
	assert.Equal(t, sess, c.Session)

	_, err = c.Login(context.Background(), "admin", "wrong")
	assert.ErrorIs(t, err, ErrLoginFailed)
}

func TestSearchSendsSessionCookie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, searchPath, r.URL.Path)
		cookie, err := r.Cookie("JSESSIONID")
		require.NoError(t, err, "search must carry the session cookie")
		assert.Equal(t, "abc123", cookie.Value)

		var req searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "order by lastViewed DESC", req.JQL)
		assert.Equal(t, []string{"summary"}, req.Fields)
		assert.Equal(t, 100, req.MaxResults)

		json.NewEncoder(w).Encode(SearchResult{Total: 1, Issues: []Issue{issue("SI-1", "One")}})
	}))
	defer srv.Close()

	c := newTestClient(srv)
	c.Session = Session{Name: "JSESSIONID", Value: "abc123"}

	res, err := c.Search(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	require.Len(t, res.Issues, 1)
	assert.Equal(t, "SI-1", res.Issues[0].Key)
}

func issue(key, summary string) Issue {
	var i Issue
	i.Key = key
	i.Fields.Summary = summary
	return i
}

func TestFetchAllPaginates(t *testing.T) {
	// 230 issues across three pages of 100.
	total := 230
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))

		res := SearchResult{Total: total}
		for i := req.StartAt; i < total && i < req.StartAt+req.MaxResults; i++ {
			res.Issues = append(res.Issues, issue(fmt.Sprintf("SI-%d", i), fmt.Sprintf("Issue %d", i)))
		}
		json.NewEncoder(w).Encode(res)
	}))
	defer srv.Close()

	c := newTestClient(srv)
	tasks, err := c.FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, total)

	// Page order preserved, name rendered as "KEY - summary".
	assert.Equal(t, "SI-0", tasks[0].ID)
	assert.Equal(t, "SI-0 - Issue 0", tasks[0].Name)
	assert.Equal(t, "SI-150", tasks[150].ID)
	assert.Equal(t, "SI-229", tasks[229].ID)
}

func TestFetchAllSinglePage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(SearchResult{
			Total:  2,
			Issues: []Issue{issue("SI-1", "One"), issue("SI-2", "Two")},
		})
	}))
	defer srv.Close()

	tasks, err := newTestClient(srv).FetchAll(context.Background())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "SI-2 - Two", tasks[1].Name)
}

func TestFetchAllFailsWhenAnyPageFails(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req searchRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		calls++
		if req.StartAt >= 100 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(SearchResult{Total: 150, Issues: []Issue{issue("SI-1", "One")}})
	}))
	defer srv.Close()

	_, err := newTestClient(srv).FetchAll(context.Background())
	require.Error(t, err, "a failed page must fail the whole fetch")
}

func TestSearchErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	_, err := newTestClient(srv).Search(context.Background(), 0)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrLoginFailed), "search failures are not login failures")
}
