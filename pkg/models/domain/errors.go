package domain

import "fmt"

// ParseError reports a data line that could not be turned into a Record.
// Path and Line are filled in by the ingestion layer.
type ParseError struct {
	Path  string
	Line  int
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := "parse record"
	if e.Path != "" {
		base += fmt.Sprintf(" %s", e.Path)
		if e.Line > 0 {
			base += fmt.Sprintf(":%d", e.Line)
		}
	}
	if e.Field != "" {
		base += fmt.Sprintf(": field %s=%q", e.Field, e.Value)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// FileAccessError reports an input file that exists but cannot be opened or read
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("access file %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
