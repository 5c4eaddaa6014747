package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"go/ast"
	"go/token"
	"regexp"
	"strings"
)

const module = "github.com/defenseunicorns/zarf-ecr-operator"

// skipped holds generated code, which is not held to these rules.
var skipped = []string{
	"pkg/util/mocks/",
}

func isSkipped(path string) bool {
	for _, prefix := range skipped {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

func isStandardLibrary(path string) bool {
	return !strings.ContainsRune(strings.SplitN(path, "/", 2)[0], '.')
}

func isLocal(path string) bool {
	return path == module || strings.HasPrefix(path, module+"/")
}

var aliases = []struct {
	re    *regexp.Regexp
	names func(m []string) []string
}{
	{
		re:    regexp.MustCompile(`^k8s\.io/api/([^/]+)/(v[^/]+)$`),
		names: func(m []string) []string { return []string{m[1] + m[2]} },
	},
	{
		re:    regexp.MustCompile(`^k8s\.io/apimachinery/pkg/apis/meta/(v[^/]+)$`),
		names: func(m []string) []string { return []string{"meta" + m[1]} },
	},
	{
		re:    regexp.MustCompile(`^k8s\.io/apimachinery/pkg/api/errors$`),
		names: func(m []string) []string { return []string{"kerrors"} },
	},
	{
		re:    regexp.MustCompile(`^k8s\.io/apimachinery/pkg/util/runtime$`),
		names: func(m []string) []string { return []string{"utilruntime"} },
	},
	{
		re:    regexp.MustCompile(`^k8s\.io/client-go/kubernetes/scheme$`),
		names: func(m []string) []string { return []string{"clientgoscheme"} },
	},
	{
		re:    regexp.MustCompile(`^sigs\.k8s\.io/controller-runtime$`),
		names: func(m []string) []string { return []string{"ctrl"} },
	},
	{
		re:    regexp.MustCompile(`^sigs\.k8s\.io/controller-runtime/pkg/client/fake$`),
		names: func(m []string) []string { return []string{"ctrlfake"} },
	},
	{
		re:    regexp.MustCompile(`^sigs\.k8s\.io/controller-runtime/pkg/metrics$`),
		names: func(m []string) []string { return []string{"runtimemetrics"} },
	},
	{
		re:    regexp.MustCompile(`^sigs\.k8s\.io/controller-runtime/pkg/metrics/server$`),
		names: func(m []string) []string { return []string{"metricsserver"} },
	},
	{
		re:    regexp.MustCompile(`^github\.com/aws/aws-sdk-go-v2/service/([^/]+)$`),
		names: func(m []string) []string { return []string{"", "aws" + m[1]} },
	},
	{
		re:    regexp.MustCompile(`^github\.com/google/go-cmp/cmp$`),
		names: func(m []string) []string { return []string{"", "gocmp"} },
	},
	{
		re:    regexp.MustCompile(`^` + regexp.QuoteMeta(module) + `/pkg/operator$`),
		names: func(m []string) []string { return []string{"", "pkgoperator"} },
	},
	{
		re:    regexp.MustCompile(`^` + regexp.QuoteMeta(module) + `/pkg/util/awsclient/([^/]+)$`),
		names: func(m []string) []string { return []string{m[1] + "client"} },
	},
	{
		re:    regexp.MustCompile(`^` + regexp.QuoteMeta(module) + `/pkg/util/mocks/(?:.+/)?([^/]+)$`),
		names: func(m []string) []string { return []string{"mock_" + m[1]} },
	},
	{
		re:    regexp.MustCompile(`^` + regexp.QuoteMeta(module) + `/pkg/util/log$`),
		names: func(m []string) []string { return []string{"utillog"} },
	},
	{
		re:    regexp.MustCompile(`^` + regexp.QuoteMeta(module) + `/test/util/error$`),
		names: func(m []string) []string { return []string{"utilerror"} },
	},
	{
		re:    regexp.MustCompile(`^` + regexp.QuoteMeta(module) + `/test/util/(log|clienthelper)$`),
		names: func(m []string) []string { return []string{"test" + m[1]} },
	},
}

// acceptableNames returns the names path may be imported as; "" means the
// import must not be renamed.
func acceptableNames(path string) []string {
	for _, a := range aliases {
		if m := a.re.FindStringSubmatch(path); m != nil {
			return a.names(m)
		}
	}

	return []string{""}
}

func importedAs(spec *ast.ImportSpec) string {
	if spec.Name == nil {
		return ""
	}

	return spec.Name.Name
}

func validateImports(path string, fset *token.FileSet, f *ast.File) []error {
	if isSkipped(path) {
		return nil
	}

	var errs []error
	for _, imp := range f.Imports {
		if err := validateImport(imp); err != nil {
			errs = append(errs, fmt.Errorf("line %d: %w", fset.Position(imp.Pos()).Line, err))
		}
	}

	return errs
}

func validateImport(imp *ast.ImportSpec) error {
	path := strings.Trim(imp.Path.Value, `"`)
	name := importedAs(imp)

	switch name {
	case ".":
		return fmt.Errorf("dot import of %s", path)
	case "_":
		if path == "embed" || strings.HasPrefix(path, "go.uber.org/mock/") {
			return nil
		}
		return fmt.Errorf("invalid _ import %s", path)
	}

	switch path {
	case "sigs.k8s.io/yaml", "gopkg.in/yaml.v2", "gopkg.in/yaml.v3":
		return fmt.Errorf("%s is imported; use encoding/json", path)
	case "github.com/golang/mock/gomock":
		return fmt.Errorf("%s is imported; use go.uber.org/mock/gomock", path)
	case "io/ioutil":
		return fmt.Errorf("%s is imported; use io or os", path)
	}

	if isStandardLibrary(path) {
		if name != "" {
			return fmt.Errorf("overridden import %s", path)
		}
		return nil
	}

	names := acceptableNames(path)
	for _, n := range names {
		if n == name {
			return nil
		}
	}

	return fmt.Errorf("%s is imported as %q, should be %q", path, name, names)
}
