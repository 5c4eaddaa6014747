package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"bytes"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	utillog "github.com/defenseunicorns/zarf-ecr-operator/pkg/util/log"
)

var (
	validate = flag.Bool("validate", false, "report files without a license header instead of adding one")

	goLicense = []byte(`// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.`)
)

// withLicense returns b with the license header inserted after the package
// clause, and whether it had to be added.
func withLicense(b []byte) ([]byte, bool) {
	if bytes.Contains(b, goLicense) || bytes.Contains(b, []byte("DO NOT EDIT.")) {
		return b, false
	}

	i := bytes.Index(b, []byte("package "))
	if i == -1 {
		return b, false
	}
	i += bytes.IndexByte(b[i:], '\n')

	var bb []byte
	bb = append(bb, b[:i]...)
	bb = append(bb, "\n\n"...)
	bb = append(bb, goLicense...)
	bb = append(bb, b[i:]...)

	return bb, true
}

func walkGoFiles(root string, fn func(path string) error) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			switch d.Name() {
			case "_examples", "vendor", ".git":
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		return fn(path)
	})
}

func run(log *logrus.Entry) error {
	var missing int

	err := walkGoFiles(".", func(path string) error {
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		bb, changed := withLicense(b)
		if !changed {
			return nil
		}

		if *validate {
			log.Errorf("%s: missing license header", path)
			missing++
			return nil
		}

		log.Infof("%s: adding license header", path)
		return os.WriteFile(path, bb, 0666)
	})
	if err != nil {
		return err
	}

	if missing > 0 {
		return fmt.Errorf("%d files are missing a license header", missing)
	}

	return nil
}

func main() {
	flag.Parse()

	log := utillog.GetLogger("info")

	if err := run(log); err != nil {
		log.Fatal(err)
	}
}
