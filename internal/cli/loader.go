package cli

import (
	"errors"
	"io/fs"

	"github.com/roach88/tql/internal/document"
	"github.com/roach88/tql/internal/parser"
	"github.com/roach88/tql/internal/query"
	"github.com/roach88/tql/internal/store"
)

// loadQuery loads a query document, reporting failures through formatter.
// The returned error is an *ExitError carrying the exit code.
func loadQuery(formatter *OutputFormatter, path string) (query.Query, error) {
	formatter.VerboseLog("Loading %s", path)

	q, err := document.LoadFile(path)
	if err == nil {
		formatter.VerboseLog("Loaded %s query", q.Kind())
		return q, nil
	}

	if errs := syntaxErrors(err); len(errs) > 0 {
		_ = formatter.SyntaxErrors(errs)
		return nil, WrapExitError(ExitCommandError, "syntax error in "+path, err)
	}
	if errors.Is(err, fs.ErrNotExist) {
		_ = formatter.Error(ErrCodeNotFound, "document not found: "+path, nil)
		return nil, WrapExitError(ExitCommandError, ErrCodeNotFound, err)
	}
	_ = formatter.Error(ErrCodeLoadFailed, err.Error(), nil)
	return nil, WrapExitError(ExitCommandError, ErrCodeLoadFailed, err)
}

// syntaxErrors collects every *parser.SyntaxError in err's tree, in order.
func syntaxErrors(err error) []*parser.SyntaxError {
	var out []*parser.SyntaxError
	var walk func(error)
	walk = func(e error) {
		if se, ok := e.(*parser.SyntaxError); ok {
			out = append(out, se)
			return
		}
		switch u := e.(type) {
		case interface{ Unwrap() []error }:
			for _, inner := range u.Unwrap() {
				walk(inner)
			}
		case interface{ Unwrap() error }:
			if inner := u.Unwrap(); inner != nil {
				walk(inner)
			}
		}
	}
	walk(err)
	return out
}

// openStore opens the catalog, reporting failures through formatter.
func openStore(formatter *OutputFormatter, path string) (*store.Store, error) {
	formatter.VerboseLog("Opening catalog %s", path)
	st, err := store.Open(path)
	if err != nil {
		_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
		return nil, WrapExitError(ExitFailure, "failed to open catalog", err)
	}
	return st, nil
}

// storeError reports a failed catalog operation.
func storeError(formatter *OutputFormatter, op string, err error) error {
	if errors.Is(err, store.ErrNotFound) {
		_ = formatter.Error(ErrCodeNotFound, err.Error(), nil)
		return WrapExitError(ExitCommandError, ErrCodeNotFound, err)
	}
	_ = formatter.Error(ErrCodeStoreFailed, err.Error(), nil)
	return WrapExitError(ExitFailure, op, err)
}
