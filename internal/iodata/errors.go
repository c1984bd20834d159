package iodata

import (
	"errors"
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnflora/pkg/errcode"
)

var errEmptyName = errors.New("empty order or family name")

// label names the dataset in user-facing messages.
func label(path string) string {
	if path == "" {
		return "bundled dataset"
	}
	return path
}

// ReadError creates an error for a dataset file that cannot be opened.
func ReadError(path string, err error) error {
	msg := "Cannot read dataset <em>%s</em>"
	vars := []any{label(path)}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DatasetReadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read dataset: %w", fn, err),
	}
}

// HeaderError creates an error for a dataset whose header row cannot
// be read at all.
func HeaderError(path string, err error) error {
	msg := "Cannot read the header row of <em>%s</em>"
	vars := []any{label(path)}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DatasetHeaderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot read header: %w", fn, err),
	}
}

// BadHeaderError creates an error for a dataset whose header row does
// not match the schema.
func BadHeaderError(path, got string) error {
	msg := `Dataset <em>%s</em> has a wrong header row

<em>Expected:</em> %s
<em>Got:</em>      %s`
	vars := []any{label(path), Header, got}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DatasetHeaderError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: header mismatch: got %q", fn, got),
	}
}

// RowError creates an error for a row that fails schema validation.
// The whole load fails: there is no partial-success mode.
func RowError(path string, line int, err error) error {
	msg := "Dataset <em>%s</em> has a malformed row at line %d"
	vars := []any{label(path), line}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DatasetRowError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: line %d: %w", fn, line, err),
	}
}

// EmptyError creates an error for a dataset with no data rows.
func EmptyError(path string) error {
	msg := "Dataset <em>%s</em> has no records"
	vars := []any{label(path)}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.DatasetEmptyError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: dataset is empty", fn),
	}
}
