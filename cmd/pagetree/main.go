package main

import (
	"os"

	"github.com/goliatone/go-pagetree/cmd/pagetree/internal/bootstrap"
)

var moduleBuilder bootstrap.Builder = bootstrap.BuildModule

func main() {
	if err := newRootCommand(moduleBuilder).Execute(); err != nil {
		os.Exit(1)
	}
}
