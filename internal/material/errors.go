package material

import "fmt"

// LoadError describes a failure to load a material table: an unreadable
// file, a missing Category column, or malformed property cells.
type LoadError struct {
	Path string
	Msg  string
	Err  error
}

func (e *LoadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("load %s: %s: %v", e.Path, e.Msg, e.Err)
	}
	return fmt.Sprintf("load %s: %s", e.Path, e.Msg)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func loadErrf(path string, err error, format string, args ...interface{}) *LoadError {
	return &LoadError{Path: path, Msg: fmt.Sprintf(format, args...), Err: err}
}
