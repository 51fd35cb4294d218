package storage

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// loadRecords reads the backing file into v (a pointer to a slice of
// records). A missing file is not an error: the store simply starts empty.
// An unreadable or unparsable file yields a *MalformedFileError; the caller
// keeps the empty in-memory state and reports the problem.
func loadRecords(path string, v any) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return &MalformedFileError{Path: path, Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &MalformedFileError{Path: path, Err: err}
	}
	return nil
}

// saveRecords rewrites the backing file in full. There is no journaling; a
// crash mid-write can corrupt the file, which the load path tolerates by
// falling back to empty.
func saveRecords(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
