package schedule

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/recover"
)

// Job is a named task run on a cron schedule.
type Job struct {
	Name     string
	Schedule string
	Run      func(ctx context.Context) error
}

// Every returns the schedule for a job run at a fixed interval.
func Every(d time.Duration) string {
	return "@every " + d.String()
}

// Runner runs jobs on their schedules until its context is cancelled. It
// implements manager.Runnable.
type Runner struct {
	log  *logrus.Entry
	jobs []Job

	runOnStart bool
}

// NewRunner validates the schedule of every job. With runOnStart set, each
// job is also run once as soon as the runner starts.
func NewRunner(log *logrus.Entry, runOnStart bool, jobs ...Job) (*Runner, error) {
	for _, job := range jobs {
		if _, err := cron.ParseStandard(job.Schedule); err != nil {
			return nil, fmt.Errorf("invalid schedule %q for job %s: %w", job.Schedule, job.Name, err)
		}
	}

	return &Runner{
		log:        log,
		jobs:       jobs,
		runOnStart: runOnStart,
	}, nil
}

// Start schedules every job and blocks until ctx is cancelled. The scheduled
// runs and the start-up run of a job share one wrapped job, so they never
// overlap. Start returns once every run in flight has finished.
func (r *Runner) Start(ctx context.Context) error {
	logger := cron.PrintfLogger(r.log)
	chain := cron.NewChain(cron.Recover(logger), cron.SkipIfStillRunning(logger))
	c := cron.New(cron.WithLogger(logger))

	wrapped := make([]cron.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		j := chain.Then(cron.FuncJob(func() { r.run(ctx, job) }))

		_, err := c.AddJob(job.Schedule, j)
		if err != nil {
			return err
		}
		r.log.Infof("scheduled job %s %s", job.Name, job.Schedule)

		wrapped = append(wrapped, j)
	}

	var wg sync.WaitGroup
	if r.runOnStart {
		for _, j := range wrapped {
			wg.Add(1)
			go func() {
				defer wg.Done()
				j.Run()
			}()
		}
	}

	c.Start()

	<-ctx.Done()
	<-c.Stop().Done()
	wg.Wait()

	return nil
}

func (r *Runner) run(ctx context.Context, job Job) {
	log := r.log.WithField("job", job.Name)
	defer recover.Panic(log)

	start := time.Now()
	err := job.Run(ctx)
	if err != nil {
		log.Errorf("job failed after %s: %v", time.Since(start).Round(time.Millisecond), err)
		return
	}

	log.Infof("job completed in %s", time.Since(start).Round(time.Millisecond))
}
