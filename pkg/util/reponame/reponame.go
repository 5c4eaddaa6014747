package reponame

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"strings"
)

// ErrNoImagesProvided is returned by FromImages when there is nothing to
// derive a repository name from.
var ErrNoImagesProvided = errors.New("expected at least 1 image reference, but got none")

// FromImage strips the digest, the tag and the registry host from an image
// reference, leaving the repository path. It does not apply docker hub
// normalisation: "nginx" stays "nginx". A first segment containing "." or ":"
// is treated as a host, so the result is only stable under reapplication when
// its own first segment has neither.
//
//	registry.com:8080/repo/name:tag@sha256:... -> repo/name
func FromImage(image string) string {
	name := image

	if i := strings.LastIndexByte(name, '@'); i >= 0 {
		name = name[:i]
	}

	if i := strings.LastIndexByte(name, ':'); i > strings.LastIndexByte(name, '/') {
		name = name[:i]
	}

	if host, rest, found := strings.Cut(name, "/"); found && strings.ContainsAny(host, ".:") {
		name = rest
	}

	return name
}

// FromImages returns one repository name per image, in order. Duplicates are
// kept.
func FromImages(images []string) ([]string, error) {
	if len(images) == 0 {
		return nil, ErrNoImagesProvided
	}

	names := make([]string, 0, len(images))
	for _, image := range images {
		names = append(names, FromImage(image))
	}

	return names, nil
}
