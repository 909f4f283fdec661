package plot

import "fmt"

// PlotError reports an invalid chart request: a property the table does
// not carry, axis limits that make no sense, or data a log axis cannot
// show. The chart is left untouched when one is returned.
type PlotError struct {
	Msg string
	Err error
}

func (e *PlotError) Error() string {
	if e.Err != nil {
		return "plot: " + e.Msg + ": " + e.Err.Error()
	}
	return "plot: " + e.Msg
}

func (e *PlotError) Unwrap() error {
	return e.Err
}

func plotErrf(err error, format string, args ...interface{}) *PlotError {
	return &PlotError{Msg: fmt.Sprintf(format, args...), Err: err}
}

// IOError reports a failed figure export.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return "save " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}
