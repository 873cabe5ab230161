package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/econdash/internal/timex"
)

// Settings prints or updates the user's display preferences.
//
//	settings                     show current values
//	settings interval <seconds>  change the refresh interval
//	settings sections <a,b,c>    change the shown sections
//	settings seen                mark onboarding as seen
func (a *App) Settings(ctx context.Context, args []string) {
	prefs, err := a.settings.Load(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load settings: %s\n", err.Error())
		return
	}

	if len(args) == 0 {
		fmt.Fprintf(a.out, "Refresh interval: %s\n", prefs.RefreshInterval.Duration)
		fmt.Fprintf(a.out, "Shown sections:   %s\n", strings.Join(prefs.ShownSections, ", "))
		fmt.Fprintf(a.out, "Onboarding seen:  %v\n", prefs.OnboardingSeen)
		return
	}

	switch args[0] {
	case "interval":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: settings interval <seconds>")
			return
		}
		secs, err := strconv.Atoi(args[1])
		if err != nil || secs <= 0 {
			fmt.Fprintln(a.out, "Interval must be a positive number of seconds.")
			return
		}
		prefs.RefreshInterval = timex.Duration{Duration: time.Duration(secs) * time.Second}
	case "sections":
		if len(args) < 2 {
			fmt.Fprintln(a.out, "Usage: settings sections <a,b,c>")
			return
		}
		prefs.ShownSections = strings.Split(args[1], ",")
	case "seen":
		prefs.OnboardingSeen = true
	default:
		fmt.Fprintln(a.out, "Unknown settings command:", args[0])
		return
	}

	if err := a.settings.Save(ctx, prefs); err != nil {
		fmt.Fprintf(a.out, "Could not save settings: %s\n", err.Error())
		return
	}
	fmt.Fprintln(a.out, "Saved.")
}
