package ecrurl

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"fmt"
	"regexp"
)

// Kind is the registry flavour an address resolves to.
type Kind int

const (
	NotECR Kind = iota
	PrivateECR
	PublicECR
)

func (k Kind) String() string {
	switch k {
	case PrivateECR:
		return "private"
	case PublicECR:
		return "public"
	default:
		return "none"
	}
}

// ErrInvalidFormat is returned when an account id is requested from an
// address that is not a private ECR registry.
var ErrInvalidFormat = errors.New("invalid private ECR URL format")

var (
	rxPrivate = regexp.MustCompile(`^([0-9]{12})\.dkr\.ecr\..+\.amazonaws\.com$`)
	rxPublic  = regexp.MustCompile(`^public\.ecr\.aws/[a-z][a-z0-9]+(?:[._-][a-z0-9]+)*$`)
)

// IsPrivate reports whether address has the shape
// <account-id>.dkr.ecr.<region>.amazonaws.com.
func IsPrivate(address string) bool {
	return rxPrivate.MatchString(address)
}

// IsPublic reports whether address has the shape public.ecr.aws/<alias>.
func IsPublic(address string) bool {
	return rxPublic.MatchString(address)
}

// AccountID extracts the 12 digit AWS account id from a private ECR address.
func AccountID(address string) (string, error) {
	m := rxPrivate.FindStringSubmatch(address)
	if m == nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidFormat, address)
	}

	return m[1], nil
}

// ResolveKind classifies address. Registries that zarf runs itself are never
// treated as ECR, whatever their name looks like.
func ResolveKind(address string, internal bool) Kind {
	switch {
	case internal:
		return NotECR
	case IsPrivate(address):
		return PrivateECR
	case IsPublic(address):
		return PublicECR
	default:
		return NotECR
	}
}
