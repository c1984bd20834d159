// Package errcode enumerates the error codes used across gnflora.
package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// Dataset errors
	DatasetReadError
	DatasetHeaderError
	DatasetRowError
	DatasetEmptyError

	// Config errors
	ConfigLoadError
	ConfigWriteError

	// Export errors
	ExportOpenError
	ExportSchemaError
	ExportWriteError
)
