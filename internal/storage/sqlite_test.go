package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRecent(t *testing.T) {
	store := openTestStore(t)

	sessions := []Session{
		{GameID: "panels", Seed: 1, Moves: 10, Swaps: 2, Ticks: 600},
		{GameID: "panels", Player: "alice", Seed: 2, Moves: 5, Ticks: 120},
		{GameID: "panels_gated", Seed: 3, Moves: 7, Swaps: 1, Ticks: 300},
	}
	for _, sess := range sessions {
		if _, err := store.SaveSession(sess); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	recent, err := store.RecentSessions(10)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("expected 3 sessions, got %d", len(recent))
	}

	// Same-second inserts fall back to id order, newest first
	if recent[0].Seed != 3 || recent[2].Seed != 1 {
		t.Errorf("expected newest first, got seeds %d..%d", recent[0].Seed, recent[2].Seed)
	}
	if recent[2].Player != "local" {
		t.Errorf("empty player should default to local, got %q", recent[2].Player)
	}
	if recent[1].Player != "alice" {
		t.Errorf("expected player alice, got %q", recent[1].Player)
	}
	if recent[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be populated")
	}
}

func TestStoreSessionsForGame(t *testing.T) {
	store := openTestStore(t)

	for i := range 5 {
		if _, err := store.SaveSession(Session{GameID: "panels", Seed: int64(i)}); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := store.SaveSession(Session{GameID: "panels_gated", Seed: 99}); err != nil {
		t.Fatal(err)
	}

	got, err := store.SessionsForGame("panels", 3)
	if err != nil {
		t.Fatalf("SessionsForGame() failed: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected limit of 3 sessions, got %d", len(got))
	}
	for _, s := range got {
		if s.GameID != "panels" {
			t.Errorf("unexpected game %q", s.GameID)
		}
	}

	n, err := store.SessionCount("panels")
	if err != nil {
		t.Fatalf("SessionCount() failed: %v", err)
	}
	if n != 5 {
		t.Errorf("SessionCount = %d, expected 5", n)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Session{GameID: "panels", Seed: 1})
	store.SaveSession(Session{GameID: "panels_gated", Seed: 2})

	if err := store.ClearSessions("panels"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	if n, _ := store.SessionCount("panels"); n != 0 {
		t.Errorf("expected 0 panels sessions after clear, got %d", n)
	}
	if n, _ := store.SessionCount("panels_gated"); n != 1 {
		t.Errorf("clear should not touch other games, got %d", n)
	}
}

func TestStorePersistence(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	store.SaveSession(Session{GameID: "panels", Seed: 42, Moves: 3})
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	got, err := store.RecentSessions(1)
	if err != nil || len(got) != 1 {
		t.Fatalf("RecentSessions() = %v, %v", got, err)
	}
	if got[0].Seed != 42 || got[0].Moves != 3 {
		t.Errorf("persisted session = %+v", got[0])
	}
}

func TestSessionDuration(t *testing.T) {
	tests := []struct {
		name string
		sess Session
		want time.Duration
	}{
		{"60 fps", Session{Ticks: 120, TickRate: 60}, 2 * time.Second},
		{"30 fps", Session{Ticks: 120, TickRate: 30}, 4 * time.Second},
		{"no rate", Session{Ticks: 120}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := tt.sess.Duration(); d != tt.want {
				t.Errorf("Duration() = %v, expected %v", d, tt.want)
			}
		})
	}
}

func TestStoreKeepsTickRate(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveSession(Session{GameID: "panels", Seed: 1, Moves: 1, Ticks: 90, TickRate: 30}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}
	if _, err := store.SaveSession(Session{GameID: "panels", Seed: 2, Moves: 1, Ticks: 90}); err != nil {
		t.Fatalf("SaveSession() failed: %v", err)
	}

	got, err := store.SessionsForGame("panels", 10)
	if err != nil || len(got) != 2 {
		t.Fatalf("SessionsForGame() = %v, %v", got, err)
	}

	// Newest first: seed 2 was saved without a rate
	if got[0].TickRate != 60 {
		t.Errorf("missing tick rate stored as %d, expected 60", got[0].TickRate)
	}
	if got[1].TickRate != 30 {
		t.Errorf("tick rate = %d, expected 30", got[1].TickRate)
	}
	if d := got[1].Duration(); d != 3*time.Second {
		t.Errorf("Duration() = %v, expected 3s regardless of current fps", d)
	}
}

func TestStoreMigratesOldSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("sql.Open() failed: %v", err)
	}
	_, err = db.Exec(`
		CREATE TABLE sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			player TEXT NOT NULL DEFAULT 'local',
			seed INTEGER NOT NULL,
			moves INTEGER NOT NULL DEFAULT 0,
			swaps INTEGER NOT NULL DEFAULT 0,
			ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		INSERT INTO sessions (game_id, seed, moves, ticks) VALUES ('panels', 9, 4, 120);
	`)
	db.Close()
	if err != nil {
		t.Fatalf("creating old schema failed: %v", err)
	}

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on old schema failed: %v", err)
	}

	got, err := store.RecentSessions(10)
	store.Close()
	if err != nil || len(got) != 1 {
		t.Fatalf("RecentSessions() = %v, %v", got, err)
	}
	if got[0].TickRate != 60 || got[0].Duration() != 2*time.Second {
		t.Errorf("old row = %+v, expected tick rate 60 and 2s", got[0])
	}

	// A second open must not try to add the column again
	again, err := Open(dbPath)
	if err != nil {
		t.Fatalf("reopening migrated database failed: %v", err)
	}
	again.Close()
}
