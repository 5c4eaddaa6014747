package ecr

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/sirupsen/logrus"

	ecrclient "github.com/defenseunicorns/zarf-ecr-operator/pkg/util/awsclient/ecr"
	ecrpublicclient "github.com/defenseunicorns/zarf-ecr-operator/pkg/util/awsclient/ecrpublic"
	"github.com/defenseunicorns/zarf-ecr-operator/pkg/util/ecrurl"
)

// ErrNoAuthorizationData is returned when the token endpoint answers without
// a token.
var ErrNoAuthorizationData = errors.New("no authorization data received")

// Provider is the set of registry operations needed from one flavour of ECR.
type Provider interface {
	// ListExistingRepositories returns the subset of names that exist. A
	// failure other than "not found" for any name fails the whole call.
	ListExistingRepositories(ctx context.Context, names []string) ([]string, error)

	// CreateRepositories creates the names that do not exist yet and returns
	// the ones it created. Repositories created before a failure are kept.
	// accountID is ignored by registries that have no notion of it.
	CreateRepositories(ctx context.Context, names []string, accountID string) ([]string, error)

	// FetchToken returns a fresh docker auth token for the registry.
	FetchToken(ctx context.Context) (*AuthToken, error)
}

// AuthToken is a base64 encoded "user:password" pair as used in the auth
// field of a docker config.
type AuthToken struct {
	Token     string
	ExpiresAt *time.Time
}

// Source returns the Provider serving a registry kind.
type Source interface {
	For(kind ecrurl.Kind) (Provider, error)
}

// Providers holds one Provider per ECR flavour.
type Providers struct {
	Private Provider
	Public  Provider
}

var _ Source = &Providers{}

// NewProviders builds providers from the default AWS credential chain.
func NewProviders(ctx context.Context, log *logrus.Entry, region string) (*Providers, error) {
	if region == "" {
		return nil, errors.New("AWS_REGION environment variable is not set")
	}

	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &Providers{
		Private: NewPrivate(log.WithField("registry", ecrurl.PrivateECR), ecrclient.NewClient(cfg)),
		Public:  NewPublic(log.WithField("registry", ecrurl.PublicECR), ecrpublicclient.NewClient(cfg)),
	}, nil
}

// For returns the provider serving kind.
func (p *Providers) For(kind ecrurl.Kind) (Provider, error) {
	switch kind {
	case ecrurl.PrivateECR:
		return p.Private, nil
	case ecrurl.PublicECR:
		return p.Public, nil
	default:
		return nil, fmt.Errorf("no ECR provider for registry kind %q", kind)
	}
}
