package movesource

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// JSONFile reads moves from a file holding a JSON array of strings:
//
//	["e2e4", "e7e5", "g1f3"]
//
// The file is read lazily on the first call to Next.
type JSONFile struct {
	path  string
	moves *Slice
}

func NewJSONFile(path string) *JSONFile {
	return &JSONFile{path: path}
}

func (j *JSONFile) Next() (string, error) {
	if j.moves == nil {
		moves, err := j.load()
		if err != nil {
			return "", err
		}
		j.moves = NewSlice(moves)
	}
	return j.moves.Next()
}

func (j *JSONFile) load() ([]string, error) {
	data, err := os.ReadFile(j.path)
	if err != nil {
		return nil, errors.Wrapf(err, "read move file %s", j.path)
	}
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrapf(err, "move file %s must contain a JSON list", j.path)
	}
	moves := make([]string, 0, len(raw))
	for i, entry := range raw {
		var move string
		if err := json.Unmarshal(entry, &move); err != nil {
			return nil, errors.Errorf("move at index %d is not a string", i)
		}
		moves = append(moves, move)
	}
	return moves, nil
}
