package eval

import "fmt"

// ImportError reports an import that could not be loaded.
type ImportError struct {
	Path  string
	Cycle bool  // Path is already being loaded further up the import chain
	Err   error // cause when the file could not be found or read
}

func (e *ImportError) Error() string {
	if e.Cycle {
		return fmt.Sprintf("import cycle through %s", e.Path)
	}
	return fmt.Sprintf("import %s: %v", e.Path, e.Err)
}

func (e *ImportError) Unwrap() error {
	return e.Err
}
