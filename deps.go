//go:build tools
// +build tools

package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	_ "go.uber.org/mock/mockgen"
)
