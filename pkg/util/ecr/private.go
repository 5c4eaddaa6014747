package ecr

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsecr "github.com/aws/aws-sdk-go-v2/service/ecr"
	"github.com/aws/aws-sdk-go-v2/service/ecr/types"
	"github.com/sirupsen/logrus"

	ecrclient "github.com/defenseunicorns/zarf-ecr-operator/pkg/util/awsclient/ecr"
)

type private struct {
	log *logrus.Entry
	ecr ecrclient.Client
}

var _ Provider = &private{}

// NewPrivate returns a Provider for private ECR registries.
func NewPrivate(log *logrus.Entry, ecr ecrclient.Client) Provider {
	return &private{
		log: log,
		ecr: ecr,
	}
}

func (p *private) ListExistingRepositories(ctx context.Context, names []string) ([]string, error) {
	existing, err := listExisting(ctx, names, p.describe(""))
	if err != nil {
		return nil, fmt.Errorf("error listing existing private ECR repositories: %w", err)
	}

	return existing, nil
}

func (p *private) describe(accountID string) func(context.Context, string) error {
	return func(ctx context.Context, name string) error {
		input := &awsecr.DescribeRepositoriesInput{
			RepositoryNames: []string{name},
		}
		if accountID != "" {
			input.RegistryId = aws.String(accountID)
		}

		_, err := p.ecr.DescribeRepositories(ctx, input)

		var notFound *types.RepositoryNotFoundException
		if errors.As(err, &notFound) {
			return errRepositoryNotFound
		}

		return err
	}
}

func (p *private) CreateRepositories(ctx context.Context, names []string, accountID string) ([]string, error) {
	existing, err := listExisting(ctx, names, p.describe(accountID))
	if err != nil {
		return nil, fmt.Errorf("error listing existing private ECR repositories: %w", err)
	}

	created, err := createMissing(ctx, p.log, names, existing, func(ctx context.Context, name string) error {
		input := &awsecr.CreateRepositoryInput{
			RepositoryName:     aws.String(name),
			ImageTagMutability: types.ImageTagMutabilityImmutable,
			ImageScanningConfiguration: &types.ImageScanningConfiguration{
				ScanOnPush: true,
			},
		}
		if accountID != "" {
			input.RegistryId = aws.String(accountID)
		}

		_, err := p.ecr.CreateRepository(ctx, input)

		var alreadyExists *types.RepositoryAlreadyExistsException
		if errors.As(err, &alreadyExists) {
			return nil
		}

		return err
	})
	if err != nil {
		return created, fmt.Errorf("error creating ECR repositories: %w", err)
	}

	return created, nil
}

func (p *private) FetchToken(ctx context.Context) (*AuthToken, error) {
	out, err := p.ecr.GetAuthorizationToken(ctx, &awsecr.GetAuthorizationTokenInput{})
	if err != nil {
		return nil, fmt.Errorf("error fetching ECR token: %w", err)
	}

	if len(out.AuthorizationData) == 0 || aws.ToString(out.AuthorizationData[0].AuthorizationToken) == "" {
		return nil, ErrNoAuthorizationData
	}

	return &AuthToken{
		Token:     *out.AuthorizationData[0].AuthorizationToken,
		ExpiresAt: out.AuthorizationData[0].ExpiresAt,
	}, nil
}
