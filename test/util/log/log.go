package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"

	"github.com/onsi/gomega/types"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

// New returns a logger at debug level whose entries are captured by the
// returned hook.
func New() (*test.Hook, *logrus.Entry) {
	logger, h := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	return h, logrus.NewEntry(logger)
}

// AssertLoggingOutput matches the entries captured by h, in order, against
// expected. Each expected entry maps "msg", "level" or a field name to a
// matcher.
func AssertLoggingOutput(h *test.Hook, expected []map[string]types.GomegaMatcher) error {
	entries := h.AllEntries()

	if len(entries) != len(expected) {
		var messages []string
		for _, e := range entries {
			messages = append(messages, fmt.Sprintf("%s: %s", e.Level, e.Message))
		}
		return fmt.Errorf("got %d log entries, expected %d: %q", len(entries), len(expected), messages)
	}

	for i, e := range entries {
		for key, matcher := range expected[i] {
			var actual interface{}
			switch key {
			case "msg":
				actual = e.Message
			case "level":
				actual = e.Level
			default:
				var found bool
				actual, found = e.Data[key]
				if !found {
					return errors.Errorf("log entry %d (%q) has no field %q", i, e.Message, key)
				}
			}

			ok, err := matcher.Match(actual)
			if err != nil {
				return errors.Wrapf(err, "log entry %d, key %q", i, key)
			}
			if !ok {
				return errors.Errorf("log entry %d, key %q: %s", i, key, matcher.FailureMessage(actual))
			}
		}
	}

	return nil
}
