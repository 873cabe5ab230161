package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/econdash/internal/client/bookmarks"
	"github.com/dmitrijs2005/econdash/internal/client/gateway"
)

// Lists prints the list-of-lists view, marking the current selection.
func (a *App) Lists(ctx context.Context) {
	lists, err := a.books.Lists(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not load lists: %s\n", err.Error())
		return
	}
	if len(lists) == 0 {
		fmt.Fprintln(a.out, "No bookmark lists yet.")
		return
	}

	selected := a.books.Snapshot().SelectedListID
	for _, l := range lists {
		marker := " "
		if l.ID == selected {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %-36s %-30s %3d articles (updated %s)\n",
			marker, l.ID, l.Name, l.ArticleCount, l.UpdatedAt.Format("2006-01-02"))
	}
}

// SelectList loads the given list. A list deleted server-side clears the
// selection and the lists view is told to refresh.
func (a *App) SelectList(ctx context.Context, listID string) {
	err := a.books.Select(ctx, listID)
	if errors.Is(err, gateway.ErrNotFound) {
		fmt.Fprintln(a.out, "That list no longer exists; selection cleared.")
		return
	}
	if err != nil {
		fmt.Fprintf(a.out, "Could not load list: %s\n", err.Error())
		return
	}

	st := a.books.Snapshot()
	if st.Phase != bookmarks.Loaded || st.Items == nil {
		return
	}
	fmt.Fprintf(a.out, "%s (%d articles)\n", st.Items.BookmarkListName, st.Items.TotalCount)
	for _, article := range st.Items.Articles {
		fmt.Fprintf(a.out, "  %3d. %s [%s]\n", article.Position, article.Headline, article.Category)
	}
}

// Marks rebuilds the cross-list bookmarked-item set.
func (a *App) Marks(ctx context.Context) {
	set, err := a.books.RefreshBookmarked(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "Could not refresh bookmarks: %s\n", err.Error())
		return
	}
	fmt.Fprintf(a.out, "%d bookmarked articles across all lists.\n", len(set))
}
