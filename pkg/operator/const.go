package operator

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

const (
	// FieldOwner is the field manager used for server-side applies.
	FieldOwner = "zarf-ecr-operator"

	ECRWebhookName = "ecr-webhook"
	ECRWebhookPath = "/mutate-zarf-package-secret"

	RefreshECRTokenJobName = "refresh-ecr-token"
)
