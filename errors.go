package sqlq

import (
	"errors"
	"fmt"
)

/*
Error codes. Use the `Err` variables with errors.Is rather than
comparing codes directly.
*/
type ErrCode string

const (
	ErrCodeUnknown         ErrCode = ""
	ErrCodeUnsupportedKind ErrCode = "UnsupportedKind"
	ErrCodeNoData          ErrCode = "NoData"
	ErrCodeEmptyBatch      ErrCode = "EmptyBatch"
	ErrCodeInvalidInput    ErrCode = "InvalidInput"
)

/*
Use blank error variables to detect error types:

	_, err := sqlq.From("users").Update(sqlq.Row{}).Build()
	if errors.Is(err, sqlq.ErrNoData) {
		// ...
	}

Errors returned by Build carry the statement kind they were raised for,
so compare them with errors.Is, not ==.
*/
var (
	ErrUnsupportedKind = Err{Code: ErrCodeUnsupportedKind, Cause: errors.New(`unsupported query kind`)}
	ErrNoData          = Err{Code: ErrCodeNoData, Cause: errors.New(`no data`)}
	ErrEmptyBatch      = Err{Code: ErrCodeEmptyBatch, Cause: errors.New(`empty array`)}
	ErrInvalidInput    = Err{Code: ErrCodeInvalidInput, Cause: errors.New(`invalid input`)}
)

// Err is the type of errors returned by this package.
type Err struct {
	Code  ErrCode
	While string
	Cause error
}

// Error implements the error interface.
func (e Err) Error() string {
	if e == (Err{}) {
		return ""
	}
	msg := `[sqlq]`
	if e.Code != ErrCodeUnknown {
		msg += fmt.Sprintf(` %s`, e.Code)
	}
	if e.While != "" {
		msg += fmt.Sprintf(` while %v`, e.While)
	}
	if e.Cause != nil {
		msg += `: ` + e.Cause.Error()
	}
	return msg
}

// Is matches by cause first, then by code.
func (e Err) Is(other error) bool {
	if e.Cause != nil && errors.Is(e.Cause, other) {
		return true
	}
	err, ok := other.(Err)
	return ok && err.Code == e.Code
}

// Unwrap returns the cause.
func (e Err) Unwrap() error {
	return e.Cause
}

func (e Err) while(while string) Err {
	e.While = while
	return e
}

func (e Err) because(cause error) Err {
	e.Cause = cause
	return e
}
