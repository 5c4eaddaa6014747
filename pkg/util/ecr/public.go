package ecr

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsecrpublic "github.com/aws/aws-sdk-go-v2/service/ecrpublic"
	"github.com/aws/aws-sdk-go-v2/service/ecrpublic/types"
	"github.com/sirupsen/logrus"

	ecrpublicclient "github.com/defenseunicorns/zarf-ecr-operator/pkg/util/awsclient/ecrpublic"
)

type public struct {
	log *logrus.Entry
	ecr ecrpublicclient.Client
}

var _ Provider = &public{}

// NewPublic returns a Provider for ECR Public registries.
func NewPublic(log *logrus.Entry, ecr ecrpublicclient.Client) Provider {
	return &public{
		log: log,
		ecr: ecr,
	}
}

func (p *public) ListExistingRepositories(ctx context.Context, names []string) ([]string, error) {
	existing, err := listExisting(ctx, names, p.describe)
	if err != nil {
		return nil, fmt.Errorf("error listing existing public ECR repositories: %w", err)
	}

	return existing, nil
}

func (p *public) describe(ctx context.Context, name string) error {
	_, err := p.ecr.DescribeRepositories(ctx, &awsecrpublic.DescribeRepositoriesInput{
		RepositoryNames: []string{name},
	})

	var notFound *types.RepositoryNotFoundException
	if errors.As(err, &notFound) {
		return errRepositoryNotFound
	}

	return err
}

func (p *public) CreateRepositories(ctx context.Context, names []string, _ string) ([]string, error) {
	existing, err := p.ListExistingRepositories(ctx, names)
	if err != nil {
		return nil, err
	}

	created, err := createMissing(ctx, p.log, names, existing, func(ctx context.Context, name string) error {
		_, err := p.ecr.CreateRepository(ctx, &awsecrpublic.CreateRepositoryInput{
			RepositoryName: aws.String(name),
		})

		var alreadyExists *types.RepositoryAlreadyExistsException
		if errors.As(err, &alreadyExists) {
			return nil
		}

		return err
	})
	if err != nil {
		return created, fmt.Errorf("error creating public ECR repositories: %w", err)
	}

	return created, nil
}

func (p *public) FetchToken(ctx context.Context) (*AuthToken, error) {
	out, err := p.ecr.GetAuthorizationToken(ctx, &awsecrpublic.GetAuthorizationTokenInput{})
	if err != nil {
		return nil, fmt.Errorf("error fetching public ECR token: %w", err)
	}

	if out.AuthorizationData == nil || aws.ToString(out.AuthorizationData.AuthorizationToken) == "" {
		return nil, ErrNoAuthorizationData
	}

	return &AuthToken{
		Token:     *out.AuthorizationData.AuthorizationToken,
		ExpiresAt: out.AuthorizationData.ExpiresAt,
	}, nil
}
