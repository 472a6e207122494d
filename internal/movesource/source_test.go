package movesource

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func drain(t *testing.T, src Source) []string {
	t.Helper()
	var moves []string
	for {
		move, err := src.Next()
		if err == io.EOF {
			return moves
		}
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		moves = append(moves, move)
	}
}

func TestSliceSource(t *testing.T) {
	src := NewSlice([]string{"e2e4", "e7e5"})
	got := drain(t, src)
	if len(got) != 2 || got[0] != "e2e4" || got[1] != "e7e5" {
		t.Fatalf("moves = %v", got)
	}
	if _, err := src.Next(); err != io.EOF {
		t.Fatalf("Next after EOF err = %v, want io.EOF", err)
	}
}

func TestReaderSkipsBlankLines(t *testing.T) {
	src := NewReader(strings.NewReader("e2e4\n\n   \ne7e5\n"))
	got := drain(t, src)
	if len(got) != 2 || got[0] != "e2e4" || got[1] != "e7e5" {
		t.Fatalf("moves = %v", got)
	}
}

func writeMoveFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "moves.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write move file: %v", err)
	}
	return path
}

func TestJSONFileSource(t *testing.T) {
	t.Run("valid list", func(t *testing.T) {
		src := NewJSONFile(writeMoveFile(t, `["e2e4", "e7e5", "g1f3"]`))
		got := drain(t, src)
		want := []string{"e2e4", "e7e5", "g1f3"}
		if len(got) != len(want) {
			t.Fatalf("moves = %v, want %v", got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("moves = %v, want %v", got, want)
			}
		}
	})

	t.Run("empty list", func(t *testing.T) {
		src := NewJSONFile(writeMoveFile(t, `[]`))
		if _, err := src.Next(); err != io.EOF {
			t.Fatalf("Next err = %v, want io.EOF", err)
		}
	})

	t.Run("not a list", func(t *testing.T) {
		src := NewJSONFile(writeMoveFile(t, `{"moves": []}`))
		if _, err := src.Next(); err == nil {
			t.Fatal("expected error for non-list file")
		}
	})

	t.Run("non-string entry", func(t *testing.T) {
		src := NewJSONFile(writeMoveFile(t, `["e2e4", 7]`))
		_, err := src.Next()
		if err == nil || !strings.Contains(err.Error(), "index 1") {
			t.Fatalf("err = %v, want index 1 complaint", err)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		src := NewJSONFile(filepath.Join(t.TempDir(), "absent.json"))
		if _, err := src.Next(); err == nil {
			t.Fatal("expected error for missing file")
		}
	})
}
