package schedule

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/onsi/gomega"
	"github.com/onsi/gomega/types"
	"github.com/sirupsen/logrus"

	utilerror "github.com/defenseunicorns/zarf-ecr-operator/test/util/error"
	testlog "github.com/defenseunicorns/zarf-ecr-operator/test/util/log"
)

func TestEvery(t *testing.T) {
	if got := Every(5 * time.Hour); got != "@every 5h0m0s" {
		t.Error(got)
	}
}

func TestNewRunner(t *testing.T) {
	_, log := testlog.New()

	_, err := NewRunner(log, false, Job{Name: "refresh-ecr-token", Schedule: Every(time.Hour)})
	utilerror.AssertErrorMessage(t, err, "")

	_, err = NewRunner(log, false, Job{Name: "broken", Schedule: "every hour"})
	if err == nil {
		t.Error("expected an error")
	}
}

func TestRunnerRunsOnStart(t *testing.T) {
	h, log := testlog.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ran := make(chan string, 2)
	r, err := NewRunner(log, true,
		Job{
			Name:     "ok",
			Schedule: Every(time.Hour),
			Run: func(ctx context.Context) error {
				ran <- "ok"
				return nil
			},
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan error)
	go func() { done <- r.Start(ctx) }()

	select {
	case <-ran:
	case <-time.After(10 * time.Second):
		t.Fatal("job did not run on start")
	}

	cancel()
	if err := <-done; err != nil {
		t.Error(err)
	}

	gomega.NewWithT(t).Eventually(func() int { return len(h.AllEntries()) }).Should(gomega.BeNumerically(">=", 2))
}

func TestRunnerStartUpRunBlocksScheduledRuns(t *testing.T) {
	_, log := testlog.New()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var runs atomic.Int32
	var finished atomic.Bool
	release := make(chan struct{})

	r, err := NewRunner(log, true,
		Job{
			Name:     "slow",
			Schedule: Every(time.Second),
			Run: func(ctx context.Context) error {
				runs.Add(1)
				<-release
				finished.Store(true)
				return nil
			},
		},
	)
	if err != nil {
		t.Fatal(err)
	}

	done := make(chan error)
	go func() { done <- r.Start(ctx) }()

	g := gomega.NewWithT(t)
	g.Eventually(runs.Load, 10*time.Second).Should(gomega.BeEquivalentTo(1))

	// the schedule fires at least once while the start-up run holds the job
	g.Consistently(runs.Load, 2500*time.Millisecond).Should(gomega.BeEquivalentTo(1))

	cancel()
	select {
	case <-done:
		t.Fatal("Start returned while a run was in flight")
	case <-time.After(200 * time.Millisecond):
	}

	close(release)
	if err := <-done; err != nil {
		t.Error(err)
	}

	if !finished.Load() {
		t.Error("Start returned before the start-up run finished")
	}
}

func TestRunnerLogsFailures(t *testing.T) {
	h, log := testlog.New()

	r := &Runner{log: log}
	r.run(context.Background(), Job{
		Name: "refresh-ecr-token",
		Run: func(ctx context.Context) error {
			return errors.New("no authorization data received")
		},
	})

	err := testlog.AssertLoggingOutput(h, []map[string]types.GomegaMatcher{
		{
			"msg":   gomega.MatchRegexp(`^job failed after .*: no authorization data received$`),
			"level": gomega.Equal(logrus.ErrorLevel),
			"job":   gomega.Equal("refresh-ecr-token"),
		},
	})
	if err != nil {
		t.Error(err)
	}
}
