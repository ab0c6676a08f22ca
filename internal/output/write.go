package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultFileName is the file written next to the working directory.
const DefaultFileName = "RELEASE_NOTES.md"

// WriteError reports a failure to persist the rendered document.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("output: write %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// WriteFile creates or truncates dir/name, writes data and closes the file on
// every path. It returns the absolute path written. An existing file is
// overwritten without confirmation.
func WriteFile(dir, name string, data []byte) (path string, err error) {
	if strings.TrimSpace(name) == "" {
		name = DefaultFileName
	}
	if strings.TrimSpace(dir) == "" {
		dir = "."
	}

	path = filepath.Join(dir, name)
	if abs, absErr := filepath.Abs(path); absErr == nil {
		path = abs
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return path, &WriteError{Path: path, Err: err}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return path, &WriteError{Path: path, Err: err}
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = &WriteError{Path: path, Err: closeErr}
		}
	}()

	if _, err := f.Write(data); err != nil {
		return path, &WriteError{Path: path, Err: err}
	}
	return path, nil
}
