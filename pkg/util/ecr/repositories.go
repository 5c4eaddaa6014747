package ecr

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"

	"github.com/aws/smithy-go"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"k8s.io/apimachinery/pkg/util/sets"
)

// maxConcurrentDescribes bounds the existence checks in flight per call.
const maxConcurrentDescribes = 5

var errRepositoryNotFound = errors.New("repository not found")

// listExisting checks every name with describe, concurrently. describe
// returns errRepositoryNotFound for names that do not exist.
func listExisting(ctx context.Context, names []string, describe func(context.Context, string) error) ([]string, error) {
	found := make([]bool, len(names))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentDescribes)

	for i, name := range names {
		g.Go(func() error {
			err := describe(ctx, name)
			switch {
			case errors.Is(err, errRepositoryNotFound):
				return nil
			case err != nil:
				return err
			}

			found[i] = true
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return nil, err
	}

	existing := []string{}
	for i, name := range names {
		if found[i] {
			existing = append(existing, name)
		}
	}

	return existing, nil
}

// createMissing calls create, in order, for each name not in existing.
func createMissing(ctx context.Context, log *logrus.Entry, names, existing []string, create func(context.Context, string) error) ([]string, error) {
	skip := sets.New(existing...)
	created := []string{}

	for _, name := range names {
		if skip.Has(name) {
			log.Debugf("repository %q already exists", name)
			continue
		}

		err := create(ctx, name)
		if err != nil {
			var apiErr smithy.APIError
			if errors.As(err, &apiErr) {
				log.Warnf("creating repository %q failed with %s", name, apiErr.ErrorCode())
			}
			return created, err
		}

		log.Infof("repository %q created", name)
		created = append(created, name)
		skip.Insert(name)
	}

	return created, nil
}
