// Package outfile writes generated documents to disk atomically.
package outfile

import (
	"fmt"
	"os"
	"path/filepath"
)

// WriteError reports a failed step of Write.
type WriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %s: %s: %v", e.Path, e.Op, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// DefaultMode is the permission of a newly created output file.
const DefaultMode os.FileMode = 0o644

// Injectable for testability.
var createTempFn = os.CreateTemp

// Write replaces path with data. It writes to a temp file in the same
// directory, fsyncs, then renames over path, so readers see either the old
// file or the complete new one. An existing regular file keeps its
// permission bits.
func Write(path string, data []byte) (err error) {
	mode := DefaultMode
	if fi, statErr := os.Stat(path); statErr == nil && fi.Mode().IsRegular() {
		mode = fi.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := createTempFn(dir, "."+filepath.Base(path)+"-*.tmp")
	if err != nil {
		return &WriteError{Path: path, Op: "create", Err: err}
	}
	tmpPath := tmp.Name()

	defer func() {
		_ = tmp.Close()
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return &WriteError{Path: path, Op: "write", Err: err}
	}
	if err := tmp.Sync(); err != nil {
		return &WriteError{Path: path, Op: "sync", Err: err}
	}
	if err := tmp.Chmod(mode); err != nil {
		return &WriteError{Path: path, Op: "chmod", Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &WriteError{Path: path, Op: "close", Err: err}
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return &WriteError{Path: path, Op: "rename", Err: err}
	}
	if err := syncDir(dir); err != nil {
		return &WriteError{Path: path, Op: "sync dir", Err: err}
	}
	return nil
}

// syncDir fsyncs dir so the rename survives a crash.
func syncDir(dir string) error {
	d, err := os.Open(dir) //nolint:gosec // G304: dir is the output file's parent
	if err != nil {
		return err
	}
	defer func() { _ = d.Close() }()
	return d.Sync()
}
