package ecrpublic

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate rm -rf ../../mocks/awsclient/$GOPACKAGE
//go:generate mockgen -destination=../../mocks/awsclient/$GOPACKAGE/$GOPACKAGE.go github.com/defenseunicorns/zarf-ecr-operator/pkg/util/awsclient/$GOPACKAGE Client

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsecrpublic "github.com/aws/aws-sdk-go-v2/service/ecrpublic"
)

// Region is the only region serving the ECR Public API.
const Region = "us-east-1"

// Client is a minimal interface for the ECR Public API
type Client interface {
	DescribeRepositories(ctx context.Context, params *awsecrpublic.DescribeRepositoriesInput, optFns ...func(*awsecrpublic.Options)) (*awsecrpublic.DescribeRepositoriesOutput, error)
	CreateRepository(ctx context.Context, params *awsecrpublic.CreateRepositoryInput, optFns ...func(*awsecrpublic.Options)) (*awsecrpublic.CreateRepositoryOutput, error)
	GetAuthorizationToken(ctx context.Context, params *awsecrpublic.GetAuthorizationTokenInput, optFns ...func(*awsecrpublic.Options)) (*awsecrpublic.GetAuthorizationTokenOutput, error)
}

type client struct {
	*awsecrpublic.Client
}

var _ Client = &client{}

// NewClient creates a new Client. The region of cfg is overridden with Region.
func NewClient(cfg aws.Config) Client {
	return &client{
		Client: awsecrpublic.NewFromConfig(cfg, func(o *awsecrpublic.Options) {
			o.Region = Region
		}),
	}
}
