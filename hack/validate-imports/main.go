package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// validateFile parses the imports of path and returns every rule it breaks.
func validateFile(path string) ([]error, error) {
	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, path, nil, parser.ImportsOnly)
	if err != nil {
		return nil, err
	}

	errs := validateGroups(path, fset, f)
	return append(errs, validateImports(path, fset, f)...), nil
}

func main() {
	var failed bool

	for _, root := range os.Args[1:] {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				switch d.Name() {
				case "_examples", "vendor", ".git":
					return filepath.SkipDir
				}
				return nil
			}

			if !strings.HasSuffix(path, ".go") {
				return nil
			}

			errs, err := validateFile(path)
			if err != nil {
				return err
			}

			for _, err := range errs {
				fmt.Printf("%s: %v\n", path, err)
				failed = true
			}

			return nil
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}
