package store

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"io/fs"
	"os"

	"github.com/matzehuels/changegraph/pkg/change"
	"github.com/matzehuels/changegraph/pkg/errors"
)

// Read decodes a JSON change log from r.
//
// Read returns an error with code [errors.ErrCodeCorruptStore] if the JSON is
// malformed, the top-level "changes" array is missing, or a change has an
// invalid hash. The error message names the offending change by index.
//
// Read does not close r.
func Read(r io.Reader) ([]change.Change, error) {
	var data document
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCorruptStore, err, "load store")
	}
	if data.Changes == nil {
		return nil, errors.New(errors.ErrCodeCorruptStore, "change log has no \"changes\" array")
	}

	changes := make([]change.Change, len(data.Changes))
	for i, rec := range data.Changes {
		h, err := change.ParseHash(rec.Hash)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeCorruptStore, err, "change %d: hash", i)
		}
		c := change.Change{Hash: h}
		if len(rec.Deps) > 0 {
			c.Deps = make([]change.Hash, len(rec.Deps))
		}
		for j, d := range rec.Deps {
			dep, err := change.ParseHash(d)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeCorruptStore, err, "change %d: dep %d", i, j)
			}
			c.Deps[j] = dep
		}
		changes[i] = c
	}
	return changes, nil
}

// Load reads the change log stored at path.
//
// A missing file yields [errors.ErrCodeFileNotFound]; any other open failure
// yields [errors.ErrCodeInvalidPath]. Decoding errors are those of [Read].
func Load(path string) ([]change.Change, error) {
	f, err := os.Open(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "read input %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "read input %s", path)
	}
	defer f.Close()
	return Read(f)
}
