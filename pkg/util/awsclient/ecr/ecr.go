package ecr

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate rm -rf ../../mocks/awsclient/$GOPACKAGE
//go:generate mockgen -destination=../../mocks/awsclient/$GOPACKAGE/$GOPACKAGE.go github.com/defenseunicorns/zarf-ecr-operator/pkg/util/awsclient/$GOPACKAGE Client

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsecr "github.com/aws/aws-sdk-go-v2/service/ecr"
)

// Client is a minimal interface for the private ECR API
type Client interface {
	DescribeRepositories(ctx context.Context, params *awsecr.DescribeRepositoriesInput, optFns ...func(*awsecr.Options)) (*awsecr.DescribeRepositoriesOutput, error)
	CreateRepository(ctx context.Context, params *awsecr.CreateRepositoryInput, optFns ...func(*awsecr.Options)) (*awsecr.CreateRepositoryOutput, error)
	GetAuthorizationToken(ctx context.Context, params *awsecr.GetAuthorizationTokenInput, optFns ...func(*awsecr.Options)) (*awsecr.GetAuthorizationTokenOutput, error)
}

type client struct {
	*awsecr.Client
}

var _ Client = &client{}

// NewClient creates a new Client in the region of cfg
func NewClient(cfg aws.Config) Client {
	return &client{
		Client: awsecr.NewFromConfig(cfg),
	}
}
