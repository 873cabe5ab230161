package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/econdash/internal/client/models"
	"github.com/dmitrijs2005/econdash/internal/client/theme"
)

// Dashboard refreshes all four resources and renders whatever settled
// successfully; failed slots show their error instead of hiding the rest.
func (a *App) Dashboard(ctx context.Context) {
	_ = a.dash.FetchAll(ctx)

	if slot := a.dash.Today(); slot.Err != nil {
		fmt.Fprintf(a.out, "Today's feed: unavailable (%s)\n", slot.Err.Error())
	} else if slot.Data != nil {
		fmt.Fprintf(a.out, "Today's feed (market %s, updated %s)\n", slot.Data.MarketStatus, slot.Data.LastUpdated)
		printIndicators(a, slot.Data.Indicators)
		printNews(a, slot.Data.News)
	}

	if slot := a.dash.Metrics(); slot.Err != nil {
		fmt.Fprintf(a.out, "Metrics: unavailable (%s)\n", slot.Err.Error())
	} else if slot.Data != nil {
		fmt.Fprintf(a.out, "Metrics (%d series)\n", len(slot.Data.Metrics))
	}

	if slot := a.dash.Breaking(); slot.Err != nil {
		fmt.Fprintf(a.out, "Breaking news: unavailable (%s)\n", slot.Err.Error())
	} else if slot.Data != nil {
		printNews(a, slot.Data.News)
	}

	if slot := a.dash.Weekly(); slot.Err != nil {
		fmt.Fprintf(a.out, "Weekly summary: unavailable (%s)\n", slot.Err.Error())
	} else if slot.Data != nil && slot.Data.Summary != "" {
		fmt.Fprintf(a.out, "This week: %s\n", slot.Data.Summary)
	}
}

// Today prints the weekday theme and the themed metrics. On weekends there
// are no themed metrics and the weekly reflection is shown instead.
func (a *App) Today(ctx context.Context) {
	th := theme.For(time.Now())
	fmt.Fprintf(a.out, "Today's focus: %s\n", th.Name)

	if len(th.Metrics) == 0 {
		if err := a.dash.FetchWeekly(ctx); err != nil {
			fmt.Fprintf(a.out, "Weekly reflection unavailable: %s\n", err.Error())
			return
		}
		if slot := a.dash.Weekly(); slot.Data != nil {
			fmt.Fprintf(a.out, "Weekly reflection: %s\n", slot.Data.Summary)
			for _, h := range slot.Data.Highlights {
				fmt.Fprintf(a.out, "  - %s\n", h)
			}
		}
		return
	}

	if err := a.dash.FetchMetrics(ctx); err != nil {
		fmt.Fprintf(a.out, "Metrics unavailable: %s\n", err.Error())
		return
	}
	slot := a.dash.Metrics()
	if slot.Data == nil {
		return
	}

	byCode := make(map[string]models.Indicator, len(slot.Data.Metrics))
	for _, m := range slot.Data.Metrics {
		byCode[m.ID] = m
	}

	for _, m := range th.Metrics {
		tag := ""
		if theme.IsBigFive(m.Code) {
			tag = " *"
		}
		if ind, ok := byCode[m.Code]; ok {
			fmt.Fprintf(a.out, "  %-14s %-40s %10.2f %s (%+.2f%%)%s\n",
				m.Code, m.Name, ind.Value, m.Unit, ind.ChangePercent, tag)
		} else {
			fmt.Fprintf(a.out, "  %-14s %-40s %10s %s%s\n", m.Code, m.Name, "-", m.Unit, tag)
		}
	}
}

func printIndicators(a *App, indicators []models.Indicator) {
	for _, ind := range indicators {
		fmt.Fprintf(a.out, "  %-14s %-40s %10.2f (%+.2f%%)\n",
			ind.ID, ind.Name, ind.Value, ind.ChangePercent)
	}
}

func printNews(a *App, news []models.NewsItem) {
	for _, n := range news {
		fmt.Fprintf(a.out, "  [%s] %s\n", n.Source, n.Title)
	}
}
