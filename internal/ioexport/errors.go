package ioexport

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnflora/pkg/errcode"
)

// OpenError creates an error for a database file that cannot be opened.
func OpenError(path string, err error) error {
	msg := "Cannot open database <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportOpenError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot open database: %w", fn, err),
	}
}

// SchemaError creates an error for a failed schema setup.
func SchemaError(path string, err error) error {
	msg := "Cannot create the formulae table in <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportSchemaError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot create schema: %w", fn, err),
	}
}

// WriteError creates an error for a failed record insert.
func WriteError(path string, err error) error {
	msg := "Cannot write records to <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ExportWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write records: %w", fn, err),
	}
}
