package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/econdash/internal/client/gateway"
	"github.com/dmitrijs2005/econdash/internal/client/models"
)

// HTTPClient implements Client over the gateway.
type HTTPClient struct {
	gw *gateway.Gateway
}

func NewHTTPClient(gw *gateway.Gateway) *HTTPClient {
	return &HTTPClient{gw: gw}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	var res models.LoginResult
	err := c.gw.Do(ctx, http.MethodPost, "/auth/login", loginRequest{Email: email, Password: password}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Register(ctx context.Context, email, password, fullName string) (*models.Identity, error) {
	var res models.Identity
	req := registerRequest{Email: email, Password: password, FullName: fullName}
	if err := c.gw.Do(ctx, http.MethodPost, "/auth/register", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	return c.gw.Do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (c *HTTPClient) Me(ctx context.Context) (*models.Identity, error) {
	var res models.Identity
	if err := c.gw.Do(ctx, http.MethodGet, "/auth/me", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Today(ctx context.Context) (*models.TodayFeed, error) {
	var res models.TodayFeed
	if err := c.gw.Do(ctx, http.MethodGet, "/dashboard/today", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Metrics(ctx context.Context) (*models.MetricsSummary, error) {
	var res models.MetricsSummary
	if err := c.gw.Do(ctx, http.MethodGet, "/dashboard/metrics", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Breaking(ctx context.Context) (*models.BreakingNews, error) {
	var res models.BreakingNews
	if err := c.gw.Do(ctx, http.MethodGet, "/dashboard/breaking", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) Weekly(ctx context.Context) (*models.WeeklySummary, error) {
	var res models.WeeklySummary
	if err := c.gw.Do(ctx, http.MethodGet, "/dashboard/weekly", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) BookmarkLists(ctx context.Context) (*models.BookmarkLists, error) {
	var res models.BookmarkLists
	if err := c.gw.Do(ctx, http.MethodGet, "/bookmarks", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) BookmarkList(ctx context.Context, listID string) (*models.BookmarkList, error) {
	var res models.BookmarkList
	if err := c.gw.Do(ctx, http.MethodGet, "/bookmarks/"+url.PathEscape(listID), nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

func (c *HTTPClient) ListItems(ctx context.Context, listID string) (*models.ListItems, error) {
	var res models.ListItems
	if err := c.gw.Do(ctx, http.MethodGet, "/bookmarks/"+url.PathEscape(listID)+"/items", nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
