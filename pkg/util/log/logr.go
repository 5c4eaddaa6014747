package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"

	"github.com/go-logr/logr"
	"github.com/sirupsen/logrus"
)

// logrWrapper lets controller-runtime log through logrus. logr verbosity 0
// maps to info and anything above it to debug.
type logrWrapper struct {
	entry *logrus.Entry
}

var _ logr.LogSink = &logrWrapper{}

func (lw *logrWrapper) Init(info logr.RuntimeInfo) {
}

func (lw *logrWrapper) Enabled(level int) bool {
	if level > 0 {
		return lw.entry.Logger.IsLevelEnabled(logrus.DebugLevel)
	}
	return lw.entry.Logger.IsLevelEnabled(logrus.InfoLevel)
}

func (lw *logrWrapper) Error(err error, msg string, keysAndValues ...interface{}) {
	lw.withKeysAndValues(keysAndValues).WithError(err).Error(msg)
}

func (lw *logrWrapper) Info(level int, msg string, keysAndValues ...interface{}) {
	entry := lw.withKeysAndValues(keysAndValues)
	if level > 0 {
		entry.Debug(msg)
		return
	}
	entry.Info(msg)
}

func (lw *logrWrapper) withKeysAndValues(keysAndValues []interface{}) *logrus.Entry {
	fields := logrus.Fields{}
	for i := 0; i < len(keysAndValues); i += 2 {
		var v interface{}
		if i+1 < len(keysAndValues) {
			v = keysAndValues[i+1]
		}
		fields[fmt.Sprint(keysAndValues[i])] = v
	}

	return lw.entry.WithFields(fields)
}

func (lw *logrWrapper) WithValues(keysAndValues ...interface{}) logr.LogSink {
	return &logrWrapper{
		entry: lw.withKeysAndValues(keysAndValues),
	}
}

func (lw *logrWrapper) WithName(name string) logr.LogSink {
	if prefix, ok := lw.entry.Data["logger"].(string); ok {
		name = prefix + "." + name
	}

	return &logrWrapper{
		entry: lw.entry.WithField("logger", name),
	}
}

func LogrWrapper(logger *logrus.Entry) logr.Logger {
	return logr.New(&logrWrapper{entry: logger})
}
