package fsutil

import (
	"os"

	"github.com/jmgilman/foundation/errors"
)

// wrapPathError classifies err and attaches the path.
func wrapPathError(err error, message, path string) error {
	if err == nil {
		return nil
	}
	code := errors.CodeIO
	switch {
	case os.IsNotExist(err):
		code = errors.CodeNotFound
	case os.IsExist(err):
		code = errors.CodeAlreadyExists
	}
	return errors.WrapWithContext(err, code, message, map[string]any{"path": path})
}
