package dashboard

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/dmitrijs2005/econdash/internal/client/gateway"
	"github.com/dmitrijs2005/econdash/internal/client/models"
	"github.com/dmitrijs2005/econdash/internal/logging"
	"github.com/stretchr/testify/require"
)

type fakeAPI struct {
	today    *models.TodayFeed
	todayErr error

	metrics    *models.MetricsSummary
	metricsErr error

	breaking    *models.BreakingNews
	breakingErr error

	weekly    *models.WeeklySummary
	weeklyErr error
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (*models.LoginResult, error) {
	return nil, nil
}
func (f *fakeAPI) Register(ctx context.Context, email, password, fullName string) (*models.Identity, error) {
	return nil, nil
}
func (f *fakeAPI) Logout(ctx context.Context) error { return nil }

func (f *fakeAPI) Me(ctx context.Context) (*models.Identity, error) { return nil, nil }

func (f *fakeAPI) Today(ctx context.Context) (*models.TodayFeed, error) {
	return f.today, f.todayErr
}
func (f *fakeAPI) Metrics(ctx context.Context) (*models.MetricsSummary, error) {
	return f.metrics, f.metricsErr
}
func (f *fakeAPI) Breaking(ctx context.Context) (*models.BreakingNews, error) {
	return f.breaking, f.breakingErr
}
func (f *fakeAPI) Weekly(ctx context.Context) (*models.WeeklySummary, error) {
	return f.weekly, f.weeklyErr
}
func (f *fakeAPI) BookmarkLists(ctx context.Context) (*models.BookmarkLists, error) {
	return nil, nil
}
func (f *fakeAPI) BookmarkList(ctx context.Context, listID string) (*models.BookmarkList, error) {
	return nil, nil
}
func (f *fakeAPI) ListItems(ctx context.Context, listID string) (*models.ListItems, error) {
	return nil, nil
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func healthyAPI() *fakeAPI {
	return &fakeAPI{
		today:    &models.TodayFeed{MarketStatus: "open"},
		metrics:  &models.MetricsSummary{MarketStatus: "open"},
		breaking: &models.BreakingNews{News: []models.NewsItem{{ID: "n1"}}},
		weekly:   &models.WeeklySummary{Summary: "steady week"},
	}
}

func TestFetchAllPopulatesEverySlot(t *testing.T) {
	s := New(healthyAPI(), testLogger())

	require.NoError(t, s.FetchAll(context.Background()))

	for _, loaded := range []bool{
		s.Today().Data != nil,
		s.Metrics().Data != nil,
		s.Breaking().Data != nil,
		s.Weekly().Data != nil,
	} {
		require.True(t, loaded)
	}
	require.False(t, s.Today().Loading)
	require.NoError(t, s.Today().Err)
}

func TestOneSlotFailureLeavesOthersIntact(t *testing.T) {
	api := healthyAPI()
	api.breakingErr = &gateway.Error{Kind: gateway.ErrUnavailable, Message: "down"}
	s := New(api, testLogger())

	err := s.FetchAll(context.Background())
	require.ErrorIs(t, err, gateway.ErrUnavailable)

	require.NotNil(t, s.Today().Data)
	require.NotNil(t, s.Metrics().Data)
	require.NotNil(t, s.Weekly().Data)

	breaking := s.Breaking()
	require.Nil(t, breaking.Data)
	require.ErrorIs(t, breaking.Err, gateway.ErrUnavailable)
	require.False(t, breaking.Loading)
}

func TestRetryClearsSlotError(t *testing.T) {
	api := healthyAPI()
	api.weeklyErr = &gateway.Error{Kind: gateway.ErrTimeout, Message: "request timed out"}
	s := New(api, testLogger())

	require.Error(t, s.FetchWeekly(context.Background()))
	require.ErrorIs(t, s.Weekly().Err, gateway.ErrTimeout)

	api.weeklyErr = nil
	require.NoError(t, s.FetchWeekly(context.Background()))

	weekly := s.Weekly()
	require.NoError(t, weekly.Err)
	require.Equal(t, "steady week", weekly.Data.Summary)
}

func TestFailedRefreshKeepsPreviousData(t *testing.T) {
	api := healthyAPI()
	s := New(api, testLogger())
	require.NoError(t, s.FetchToday(context.Background()))

	api.todayErr = &gateway.Error{Kind: gateway.ErrHTTP, Message: "boom", Status: 500}
	require.Error(t, s.FetchToday(context.Background()))

	today := s.Today()
	require.NotNil(t, today.Data) // stale data stays visible alongside the error
	require.ErrorIs(t, today.Err, gateway.ErrHTTP)
}

func TestSingleSlotFetchDoesNotTouchOthers(t *testing.T) {
	s := New(healthyAPI(), testLogger())

	require.NoError(t, s.FetchMetrics(context.Background()))

	require.NotNil(t, s.Metrics().Data)
	require.Nil(t, s.Today().Data)
	require.Nil(t, s.Breaking().Data)
	require.Nil(t, s.Weekly().Data)
}
