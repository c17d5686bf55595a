// Copyright 2026 Oliver Eikemeier. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"fillmore-labs.com/constcurry/analyzer/level"
)

// File is the YAML configuration file format. Unset values keep their defaults.
//
//	generated: true
//	max-promoted: 4
//	annotate-unused: false
//	collision: local
type File struct {
	// Generated enables expansion in generated files.
	Generated *bool `yaml:"generated"`

	// MaxPromoted limits the number of promotable parameters per function.
	MaxPromoted *int `yaml:"max-promoted"`

	// AnnotateUnused marks variants with //nolint:unused.
	AnnotateUnused *bool `yaml:"annotate-unused"`

	// Collision selects the naming collision check.
	Collision *level.Collision `yaml:"collision"`
}

// Load reads and decodes a configuration file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read configuration: %w", err)
	}

	f, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration %s: %w", path, err)
	}

	return f, nil
}

// Decode decodes a configuration, rejecting unknown keys. Empty input is a valid, empty configuration.
func Decode(data []byte) (*File, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return &f, nil
}
