package api

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/econdash/internal/client/gateway"
	"github.com/dmitrijs2005/econdash/internal/logging"
	"github.com/stretchr/testify/require"
)

type staticCreds struct{ token string }

func (s *staticCreds) Get(ctx context.Context) (string, error) { return s.token, nil }

func (s *staticCreds) Set(ctx context.Context, token string) error { s.token = token; return nil }

func (s *staticCreds) Clear(ctx context.Context) error { s.token = ""; return nil }

func newClient(t *testing.T, mux *http.ServeMux) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	log := logging.NewTextLogger(io.Discard, slog.LevelError)
	return NewHTTPClient(gateway.New(srv.URL, &staticCreds{token: "tok"}, log))
}

func TestLoginPostsCredentials(t *testing.T) {
	mux := http.NewServeMux()
	var got loginRequest
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"access_token":"tok-1","token_type":"bearer","user":{"id":1,"email":"a@b.c"}}`))
	})
	c := newClient(t, mux)

	res, err := c.Login(context.Background(), "a@b.c", "pw")
	require.NoError(t, err)
	require.Equal(t, loginRequest{Email: "a@b.c", Password: "pw"}, got)
	require.Equal(t, "tok-1", res.AccessToken)
	require.Equal(t, "a@b.c", res.User.Email)
}

func TestRegisterPostsProfile(t *testing.T) {
	mux := http.NewServeMux()
	var got registerRequest
	mux.HandleFunc("/auth/register", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"id":2,"email":"a@b.c","full_name":"A B","is_active":true}`))
	})
	c := newClient(t, mux)

	user, err := c.Register(context.Background(), "a@b.c", "pw", "A B")
	require.NoError(t, err)
	require.Equal(t, registerRequest{Email: "a@b.c", Password: "pw", FullName: "A B"}, got)
	require.Equal(t, "A B", user.FullName)
	require.True(t, user.IsActive)
}

func TestTodayDecodesFeed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/dashboard/today", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{
			"marketStatus": "open",
			"lastUpdated": "2026-08-31T12:00:00Z",
			"indicators": [{"id": "FEDFUNDS", "name": "Federal Funds Rate", "value": 4.33, "changePercent": -0.5}],
			"news": [{"id": "n1", "title": "Fed holds"}]
		}`))
	})
	c := newClient(t, mux)

	feed, err := c.Today(context.Background())
	require.NoError(t, err)
	require.Equal(t, "open", feed.MarketStatus)
	require.Len(t, feed.Indicators, 1)
	require.Equal(t, "FEDFUNDS", feed.Indicators[0].ID)
	require.InDelta(t, -0.5, feed.Indicators[0].ChangePercent, 1e-9)
	require.Len(t, feed.News, 1)
}

func TestBookmarkListsDecodesWrapper(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/bookmarks", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{"bookmark_lists":[{"id":"l1","name":"Fed Watch","article_count":2}],"count":1}`))
	})
	c := newClient(t, mux)

	res, err := c.BookmarkLists(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	require.Equal(t, "Fed Watch", res.Lists[0].Name)
	require.Equal(t, 2, res.Lists[0].ArticleCount)
}

func TestListItemsEscapesListID(t *testing.T) {
	mux := http.NewServeMux()
	var gotPath string
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"bookmark_list_id":"a/b","articles":[],"count":0}`))
	})
	c := newClient(t, mux)

	_, err := c.ListItems(context.Background(), "a/b")
	require.NoError(t, err)
	require.Equal(t, "/bookmarks/a%2Fb/items", gotPath)
}

func TestWeeklyDecodesSummary(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/dashboard/weekly", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(`{"summary":"quiet week","highlights":["CPI flat"]}`))
	})
	c := newClient(t, mux)

	res, err := c.Weekly(context.Background())
	require.NoError(t, err)
	require.Equal(t, "quiet week", res.Summary)
	require.Equal(t, []string{"CPI flat"}, res.Highlights)
}
