// Package jira is the remote task provider: session login plus paginated
// issue search, flattened into the local task list.
package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jenjinstudios/jt/internal/task"
)

const (
	sessionPath = "/rest/auth/1/session"
	searchPath  = "/rest/api/2/search"

	// pageSize is the JIRA search page size; FetchAll fans out one request
	// per page of this many issues.
	pageSize = 100
)

// ErrLoginFailed is returned when JIRA rejects the supplied credentials.
// Callers re-prompt rather than aborting setup.
var ErrLoginFailed = errors.New("jira login failed")

// Session is the cookie JIRA hands back on login, sent on every search.
type Session struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Issue is the slice of a JIRA issue the tracker cares about.
type Issue struct {
	Key    string `json:"key"`
	Fields struct {
		Summary string `json:"summary"`
	} `json:"fields"`
}

// SearchResult is one page of a JIRA search.
type SearchResult struct {
	Issues []Issue `json:"issues"`
	Total  int     `json:"total"`
}

// Client talks to one JIRA instance.
type Client struct {
	BaseURL    string
	Session    Session
	HTTPClient *http.Client
}

// NewClient builds a client for the given base URL, e.g.
// "https://sidigital.atlassian.net".
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Session Session `json:"session"`
}

// Login exchanges credentials for a session cookie and remembers it on the
// client. A non-200 response is ErrLoginFailed.
func (c *Client) Login(ctx context.Context, username, password string) (Session, error) {
	body, err := json.Marshal(loginRequest{Username: username, Password: password})
	if err != nil {
		return Session{}, fmt.Errorf("marshal login request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+sessionPath, bytes.NewReader(body))
	if err != nil {
		return Session{}, fmt.Errorf("create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return Session{}, fmt.Errorf("jira login: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return Session{}, fmt.Errorf("%w: status %d", ErrLoginFailed, resp.StatusCode)
	}

	var lr loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&lr); err != nil {
		return Session{}, fmt.Errorf("decode login response: %w", err)
	}
	c.Session = lr.Session
	return lr.Session, nil
}

type searchRequest struct {
	JQL        string   `json:"jql"`
	Fields     []string `json:"fields"`
	MaxResults int      `json:"maxResults"`
	StartAt    int      `json:"startAt"`
}

// Search fetches one page of recently viewed issues starting at the given
// offset.
func (c *Client) Search(ctx context.Context, startAt int) (*SearchResult, error) {
	body, err := json.Marshal(searchRequest{
		JQL:        "order by lastViewed DESC",
		Fields:     []string{"summary"},
		MaxResults: pageSize,
		StartAt:    startAt,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+searchPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create search request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Session.Name != "" {
		req.AddCookie(&http.Cookie{Name: c.Session.Name, Value: c.Session.Value})
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jira search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("jira search: status %d", resp.StatusCode)
	}

	var sr SearchResult
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}
	return &sr, nil
}

// FetchAll pulls every page of the search and flattens the issues into the
// task list, named "KEY - summary". The first page reports the total; the
// remaining pages are fetched concurrently and concatenated in page order.
// Issues repeated across pages (the total can shift under us between
// requests) are kept as-is, duplicates included.
//
// Any page failure fails the whole fetch; callers keep their existing task
// set in that case.
func (c *Client) FetchAll(ctx context.Context) ([]task.Task, error) {
	first, err := c.Search(ctx, 0)
	if err != nil {
		return nil, err
	}

	pages := [][]Issue{first.Issues}
	if first.Total > pageSize {
		var mu sync.Mutex
		rest := map[int][]Issue{}

		g, gctx := errgroup.WithContext(ctx)
		for startAt := pageSize; startAt < first.Total; startAt += pageSize {
			startAt := startAt
			g.Go(func() error {
				page, err := c.Search(gctx, startAt)
				if err != nil {
					return err
				}
				mu.Lock()
				rest[startAt] = page.Issues
				mu.Unlock()
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		offsets := make([]int, 0, len(rest))
		for off := range rest {
			offsets = append(offsets, off)
		}
		sort.Ints(offsets)
		for _, off := range offsets {
			pages = append(pages, rest[off])
		}
	}

	var tasks []task.Task
	for _, issues := range pages {
		for _, issue := range issues {
			tasks = append(tasks, task.Task{
				ID:   issue.Key,
				Name: fmt.Sprintf("%s - %s", issue.Key, issue.Fields.Summary),
			})
		}
	}
	return tasks, nil
}
