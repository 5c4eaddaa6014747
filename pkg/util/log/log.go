package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
)

var (
	_, thisfile, _, _ = runtime.Caller(0)
	repopath          = strings.Replace(thisfile, "pkg/util/log/log.go", "", -1)
)

// RelativeFilePathPrettier changes absolute paths with relative paths
func RelativeFilePathPrettier(f *runtime.Frame) (string, string) {
	file := strings.TrimPrefix(f.File, repopath)
	function := f.Function[strings.LastIndexByte(f.Function, '/')+1:]
	return fmt.Sprintf("%s()", function), fmt.Sprintf(" %s:%d", file, f.Line)
}

// GetLogger returns a text logger to stderr at the given level. An empty or
// unparseable level falls back to info.
func GetLogger(level string) *logrus.Entry {
	logger := logrus.New()
	logger.Out = os.Stderr
	logger.ReportCaller = true
	logger.Formatter = &logrus.TextFormatter{
		FullTimestamp:    true,
		CallerPrettyfier: RelativeFilePathPrettier,
	}
	logger.SetLevel(ParseLevel(level))

	return logrus.NewEntry(logger)
}

// ParseLevel is logrus.ParseLevel defaulting to info.
func ParseLevel(level string) logrus.Level {
	l, err := logrus.ParseLevel(level)
	if err != nil {
		return logrus.InfoLevel
	}
	return l
}
