package db

import (
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Verify tables exist by querying each one.
	tables := []string{
		"chat_sessions", "chat_messages", "bookmarks", "support_transcripts",
	}

	for _, table := range tables {
		var count int
		err := d.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	// Running migrate again should not fail.
	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate() error: %v", err)
	}
}

func TestForeignKeyCascade(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory() error: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(`INSERT INTO chat_sessions (id) VALUES ('s1')`); err != nil {
		t.Fatalf("insert session: %v", err)
	}
	if _, err := d.Exec(`INSERT INTO chat_messages (id, session_id, role, content) VALUES ('m1', 's1', 'user', 'hello')`); err != nil {
		t.Fatalf("insert message: %v", err)
	}

	if _, err := d.Exec(`DELETE FROM chat_sessions WHERE id = 's1'`); err != nil {
		t.Fatalf("delete session: %v", err)
	}

	var count int
	if err := d.QueryRow(`SELECT COUNT(*) FROM chat_messages WHERE session_id = 's1'`).Scan(&count); err != nil {
		t.Fatalf("count messages: %v", err)
	}
	if count != 0 {
		t.Errorf("expected cascade delete of messages, got %d remaining", count)
	}
}
