package study

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/omarselim0/shopmate/internal/db"
)

// NoBookmarksMessage is shown when the bookmark list is empty.
const NoBookmarksMessage = "No bookmarks yet. Ask and save a question to bookmark it."

// Bookmark is a saved question and answer, optionally pinned to a source
// document page.
type Bookmark struct {
	ID         string    `json:"id"`
	SourceFile string    `json:"source_file"`
	Page       int       `json:"page"`
	Note       string    `json:"note"`
	Snippet    string    `json:"snippet"`
	CreatedAt  time.Time `json:"created_at"`
}

// BookmarkStore persists bookmarks in sqlite.
type BookmarkStore struct {
	database *db.DB
}

// NewBookmarkStore creates a bookmark store over an open database.
func NewBookmarkStore(database *db.DB) *BookmarkStore {
	return &BookmarkStore{database: database}
}

// Save stores one bookmark and returns its id. Note is the question or
// label; snippet is the answer or quoted text.
func (s *BookmarkStore) Save(ctx context.Context, sourceFile string, page int, note, snippet string) (string, error) {
	if strings.TrimSpace(note) == "" {
		return "", fmt.Errorf("bookmark note is empty")
	}

	id := uuid.New().String()
	_, err := s.database.ExecContext(ctx,
		`INSERT INTO bookmarks (id, source_file, page, note, snippet, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		id, sourceFile, page, note, snippet, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("saving bookmark: %w", err)
	}
	return id, nil
}

// List returns all bookmarks, newest first.
func (s *BookmarkStore) List(ctx context.Context) ([]Bookmark, error) {
	rows, err := s.database.QueryContext(ctx,
		`SELECT id, source_file, page, note, snippet, created_at FROM bookmarks ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}
	defer rows.Close()

	var bookmarks []Bookmark
	for rows.Next() {
		var b Bookmark
		if err := rows.Scan(&b.ID, &b.SourceFile, &b.Page, &b.Note, &b.Snippet, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning bookmark: %w", err)
		}
		bookmarks = append(bookmarks, b)
	}
	return bookmarks, rows.Err()
}

// Delete removes a bookmark by id.
func (s *BookmarkStore) Delete(ctx context.Context, id string) error {
	res, err := s.database.ExecContext(ctx, `DELETE FROM bookmarks WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting bookmark: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("bookmark %s not found", id)
	}
	return nil
}

// FormatBookmarks renders bookmarks for terminal display.
func FormatBookmarks(bookmarks []Bookmark) string {
	if len(bookmarks) == 0 {
		return NoBookmarksMessage
	}

	var b strings.Builder
	for i, bm := range bookmarks {
		fmt.Fprintf(&b, "%d. %s\n", i+1, bm.Note)
		if bm.Snippet != "" {
			fmt.Fprintf(&b, "   %s\n", bm.Snippet)
		}
		if bm.SourceFile != "" {
			if bm.Page > 0 {
				fmt.Fprintf(&b, "   (%s, page %d)\n", bm.SourceFile, bm.Page)
			} else {
				fmt.Fprintf(&b, "   (%s)\n", bm.SourceFile)
			}
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
