package domain

import "fmt"

// DataFormatError reports a dataset that could not be loaded: a missing file,
// malformed CSV, a missing required column or an unparseable value.
type DataFormatError struct {
	Source string // file path or other origin of the data
	Line   int    // 1-based CSV line, 0 when not tied to a row
	Column string // offending column, empty when not tied to a column
	Reason string
	Err    error
}

func (e *DataFormatError) Error() string {
	msg := "invalid dataset " + e.Source
	if e.Line > 0 {
		msg += fmt.Sprintf(" (line %d", e.Line)
		if e.Column != "" {
			msg += ", column " + e.Column
		}
		msg += ")"
	} else if e.Column != "" {
		msg += " (column " + e.Column + ")"
	}
	msg += ": " + e.Reason
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *DataFormatError) Unwrap() error {
	return e.Err
}
