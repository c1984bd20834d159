// Package main provides the gnflora CLI application.
// gnflora looks up floral formulae of flowering plant families and
// orders, and renders them as compact symbolic notation or prose.
package main

import (
	"os"

	"github.com/gnames/gn"
)

var (
	// Version is set by build flags
	Version = "dev"
)

func main() {
	if err := getRootCmd().Execute(); err != nil {
		gn.PrintErrorMessage(err)
		os.Exit(1)
	}
}
