package cmp

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	gocmp "github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// Diff is a wrapper for github.com/google/go-cmp/cmp.Diff which ignores the
// object metadata the API server fills in.
func Diff(x, y interface{}, opts ...gocmp.Option) string {
	newOpts := append(
		opts,
		cmpopts.IgnoreFields(metav1.ObjectMeta{}, "ResourceVersion", "ManagedFields", "CreationTimestamp"),
		cmpopts.IgnoreFields(metav1.TypeMeta{}, "Kind", "APIVersion"),
		cmpopts.EquateEmpty(),
	)

	return gocmp.Diff(x, y, newOpts...)
}
