package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"
)

type importGroup int

const (
	groupStandard importGroup = iota
	groupThirdParty
	groupLocal
)

func (g importGroup) String() string {
	switch g {
	case groupStandard:
		return "standard library"
	case groupThirdParty:
		return "third party"
	default:
		return "local"
	}
}

func groupOf(path string) importGroup {
	switch {
	case isStandardLibrary(path):
		return groupStandard
	case isLocal(path):
		return groupLocal
	default:
		return groupThirdParty
	}
}

// validateGroups checks that imports come in blank-line separated groups of
// standard library, third party and local packages, in that order.
func validateGroups(path string, fset *token.FileSet, f *ast.File) []error {
	if isSkipped(path) {
		return nil
	}

	var errs []error
	var current importGroup
	var lastLine int

	for _, imp := range f.Imports {
		p := strings.Trim(imp.Path.Value, `"`)
		line := fset.Position(imp.Pos()).Line
		g := groupOf(p)

		switch {
		case lastLine == 0:
		case line > lastLine+1:
			if g <= current {
				errs = append(errs, fmt.Errorf("line %d: %s import %s starts a group after %s imports", line, g, p, current))
			}
		case g != current:
			errs = append(errs, fmt.Errorf("line %d: %s import %s is grouped with %s imports", line, g, p, current))
		}

		current = g
		lastLine = line
	}

	return errs
}
