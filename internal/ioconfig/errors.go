package ioconfig

import (
	"fmt"
	"runtime"

	"github.com/gnames/gn"
	"github.com/gnames/gnflora/pkg/errcode"
)

// LoadError creates an error for a config file that cannot be loaded.
func LoadError(path string, err error) error {
	msg := `Cannot load configuration from <em>%s</em>

<em>Possible causes:</em>
  - File does not exist
  - Invalid YAML format
  - Permission denied`
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConfigLoadError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot load config: %w", fn, err),
	}
}

// WriteError creates an error for a config file that cannot be written.
func WriteError(path string, err error) error {
	msg := "Cannot write configuration file <em>%s</em>"
	vars := []any{path}
	pc, _, _, _ := runtime.Caller(1)
	fn := runtime.FuncForPC(pc)
	return &gn.Error{
		Code: errcode.ConfigWriteError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("from %s: cannot write config: %w", fn, err),
	}
}
