// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package yamlx opens and saves YAML encoded files.
package yamlx

import (
	"bufio"
	"errors"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Open reads the given object from the given filename using YAML encoding.
// Fields missing from the file keep their current values.
func Open(v any, filename string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return Read(v, bufio.NewReader(f))
}

// Read reads the given object from the given reader using YAML encoding.
// An empty document leaves the object unchanged.
func Read(v any, reader io.Reader) error {
	err := yaml.NewDecoder(reader).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Save writes the given object to the given filename using YAML encoding.
func Save(v any, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	bw := bufio.NewWriter(f)
	if err := Write(v, bw); err != nil {
		return err
	}
	return bw.Flush()
}

// Write writes the given object to the given writer using YAML encoding.
func Write(v any, writer io.Writer) error {
	enc := yaml.NewEncoder(writer)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
