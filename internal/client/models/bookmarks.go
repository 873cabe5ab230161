package models

import "time"

// BookmarkList is a server-owned named list of saved articles. The client
// holds cached copies only; the selection pointer is just the ID.
type BookmarkList struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	ArticleCount int       `json:"article_count"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BookmarkLists is the list-of-lists payload.
type BookmarkLists struct {
	Lists []BookmarkList `json:"bookmark_lists"`
	Count int            `json:"count"`
}

// ListArticle is one saved article inside a bookmark list.
type ListArticle struct {
	ID           string     `json:"id"`
	Headline     string     `json:"headline"`
	URL          string     `json:"url,omitempty"`
	Category     string     `json:"category"`
	Position     int        `json:"position"`
	BookmarkedAt *time.Time `json:"bookmarked_at,omitempty"`
}

// ListItems is the contents-of-list payload.
type ListItems struct {
	BookmarkListID   string        `json:"bookmark_list_id"`
	BookmarkListName string        `json:"bookmark_list_name"`
	Articles         []ListArticle `json:"articles"`
	Count            int           `json:"count"`
	TotalCount       int           `json:"total_count"`
}
