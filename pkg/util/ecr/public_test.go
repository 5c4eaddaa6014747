package ecr

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsecrpublic "github.com/aws/aws-sdk-go-v2/service/ecrpublic"
	"github.com/aws/aws-sdk-go-v2/service/ecrpublic/types"
	"github.com/go-test/deep"
	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"

	mock_ecrpublic "github.com/defenseunicorns/zarf-ecr-operator/pkg/util/mocks/awsclient/ecrpublic"
	utilerror "github.com/defenseunicorns/zarf-ecr-operator/test/util/error"
)

func TestPublicCreateRepositories(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name        string
		mocks       func(*mock_ecrpublic.MockClient)
		wantCreated []string
		wantErr     string
	}{
		{
			name: "creates missing repositories without tag or scan settings",
			mocks: func(ecr *mock_ecrpublic.MockClient) {
				ecr.EXPECT().DescribeRepositories(gomock.Any(), &awsecrpublic.DescribeRepositoriesInput{RepositoryNames: []string{"org/a"}}).Return(nil, &types.RepositoryNotFoundException{})
				ecr.EXPECT().DescribeRepositories(gomock.Any(), &awsecrpublic.DescribeRepositoriesInput{RepositoryNames: []string{"org/b"}}).Return(&awsecrpublic.DescribeRepositoriesOutput{}, nil)
				ecr.EXPECT().CreateRepository(gomock.Any(), &awsecrpublic.CreateRepositoryInput{RepositoryName: aws.String("org/a")}).Return(&awsecrpublic.CreateRepositoryOutput{}, nil)
			},
			wantCreated: []string{"org/a"},
		},
		{
			name: "describe failure",
			mocks: func(ecr *mock_ecrpublic.MockClient) {
				ecr.EXPECT().DescribeRepositories(gomock.Any(), gomock.Any()).Return(nil, errors.New("ThrottlingException")).MinTimes(1).MaxTimes(2)
			},
			wantErr: "error listing existing public ECR repositories: ThrottlingException",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			ecr := mock_ecrpublic.NewMockClient(controller)
			tt.mocks(ecr)

			p := NewPublic(logrus.NewEntry(logrus.StandardLogger()), ecr)

			created, err := p.CreateRepositories(ctx, []string{"org/a", "org/b"}, "")
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			for _, diff := range deep.Equal(created, tt.wantCreated) {
				t.Error(diff)
			}
		})
	}
}

func TestPublicFetchToken(t *testing.T) {
	ctx := context.Background()

	for _, tt := range []struct {
		name    string
		out     *awsecrpublic.GetAuthorizationTokenOutput
		err     error
		want    *AuthToken
		wantErr string
	}{
		{
			name: "token",
			out: &awsecrpublic.GetAuthorizationTokenOutput{
				AuthorizationData: &types.AuthorizationData{AuthorizationToken: aws.String("QVdTOnB1YmxpYw==")},
			},
			want: &AuthToken{Token: "QVdTOnB1YmxpYw=="},
		},
		{
			name:    "no authorization data",
			out:     &awsecrpublic.GetAuthorizationTokenOutput{},
			wantErr: "no authorization data received",
		},
		{
			name:    "api error",
			err:     errors.New("ExpiredTokenException"),
			wantErr: "error fetching public ECR token: ExpiredTokenException",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			controller := gomock.NewController(t)
			defer controller.Finish()

			ecr := mock_ecrpublic.NewMockClient(controller)
			ecr.EXPECT().GetAuthorizationToken(gomock.Any(), gomock.Any()).Return(tt.out, tt.err)

			p := NewPublic(logrus.NewEntry(logrus.StandardLogger()), ecr)

			got, err := p.FetchToken(ctx)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			for _, diff := range deep.Equal(got, tt.want) {
				t.Error(diff)
			}
		})
	}
}
