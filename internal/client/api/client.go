// Package api defines the typed client for the dashboard API. Stores depend
// on the Client interface so tests can substitute fakes; the HTTP
// implementation routes every call through the gateway.
package api

import (
	"context"

	"github.com/dmitrijs2005/econdash/internal/client/models"
)

type Client interface {
	// Auth.
	Login(ctx context.Context, email, password string) (*models.LoginResult, error)
	Register(ctx context.Context, email, password, fullName string) (*models.Identity, error)
	Logout(ctx context.Context) error
	Me(ctx context.Context) (*models.Identity, error)

	// Dashboard resources; each maps to one independent resource slot.
	Today(ctx context.Context) (*models.TodayFeed, error)
	Metrics(ctx context.Context) (*models.MetricsSummary, error)
	Breaking(ctx context.Context) (*models.BreakingNews, error)
	Weekly(ctx context.Context) (*models.WeeklySummary, error)

	// Bookmarks.
	BookmarkLists(ctx context.Context) (*models.BookmarkLists, error)
	BookmarkList(ctx context.Context, listID string) (*models.BookmarkList, error)
	ListItems(ctx context.Context, listID string) (*models.ListItems, error)
}
