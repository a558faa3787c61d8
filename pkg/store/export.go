package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/matzehuels/changegraph/pkg/change"
	"github.com/matzehuels/changegraph/pkg/errors"
)

type document struct {
	Changes []record `json:"changes"`
}

type record struct {
	Hash string   `json:"hash"`
	Deps []string `json:"deps"`
}

// Write encodes changes as an indented JSON change log and writes it to w.
// Root changes are written with an empty "deps" array.
func Write(w io.Writer, changes []change.Change) error {
	out := document{Changes: make([]record, len(changes))}
	for i, c := range changes {
		rec := record{Hash: c.Hash.String(), Deps: make([]string, len(c.Deps))}
		for j, d := range c.Deps {
			rec.Deps[j] = d.String()
		}
		out.Changes[i] = rec
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return errors.Wrap(errors.ErrCodeSinkWrite, err, "encode change log")
	}
	return nil
}

// Save writes changes to a JSON file at path.
// This is a convenience wrapper around [Write] for file-based output.
func Save(path string, changes []change.Change) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	if err := Write(f, changes); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeSinkWrite, err, "close %s", path)
	}
	return nil
}
