package store

import (
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := OpenInMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSaveAndLoadGame(t *testing.T) {
	s := openTestStore(t)

	rec := GameRecord{
		ID:        "abc",
		Moves:     []string{"e2e4", "e7e5"},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}
	if err := s.SaveGame(rec); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	got, err := s.LoadGame("abc")
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if got.ID != rec.ID || len(got.Moves) != 2 || got.Moves[1] != "e7e5" {
		t.Fatalf("loaded = %+v, want %+v", got, rec)
	}
}

func TestLoadGameNotFound(t *testing.T) {
	s := openTestStore(t)
	if _, err := s.LoadGame("missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestSaveGameOverwrites(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveGame(GameRecord{ID: "abc", Moves: []string{"e2e4"}}); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}
	if err := s.SaveGame(GameRecord{ID: "abc", Moves: []string{"e2e4", "e7e5"}}); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}

	got, err := s.LoadGame("abc")
	if err != nil {
		t.Fatalf("LoadGame: %v", err)
	}
	if len(got.Moves) != 2 {
		t.Fatalf("moves = %v, want the overwritten record", got.Moves)
	}
}

func TestListGames(t *testing.T) {
	s := openTestStore(t)

	for _, id := range []string{"a", "b", "c"} {
		if err := s.SaveGame(GameRecord{ID: id}); err != nil {
			t.Fatalf("SaveGame(%s): %v", id, err)
		}
	}
	recs, err := s.ListGames()
	if err != nil {
		t.Fatalf("ListGames: %v", err)
	}
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}
}

func TestDeleteGame(t *testing.T) {
	s := openTestStore(t)

	if err := s.SaveGame(GameRecord{ID: "abc"}); err != nil {
		t.Fatalf("SaveGame: %v", err)
	}
	if err := s.DeleteGame("abc"); err != nil {
		t.Fatalf("DeleteGame: %v", err)
	}
	if _, err := s.LoadGame("abc"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound after delete", err)
	}
	if err := s.DeleteGame("abc"); err != nil {
		t.Fatalf("DeleteGame of absent record: %v", err)
	}
}
