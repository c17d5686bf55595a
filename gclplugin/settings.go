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

package gclplugin

import (
	constcurry "fillmore-labs.com/constcurry/analyzer"
	"fillmore-labs.com/constcurry/analyzer/level"
)

// Settings represents the configuration options for an instance of the [Plugin].
type Settings struct {
	// Config names a YAML configuration file.
	Config *string `json:"config,omitzero"`
	// Generated enables expansion in generated files.
	Generated *bool `json:"generated,omitzero"`
	// MaxPromoted limits the number of promotable parameters per function.
	MaxPromoted *int `json:"max-promoted,omitzero"`
	// AnnotateUnused marks generated variants with //nolint:unused.
	AnnotateUnused *bool `json:"annotate-unused,omitzero"`
	// Collision selects the naming collision check, "full" or "local".
	Collision *level.Collision `json:"collision,omitzero"`
}

// Options converts [Settings] into a list of [constcurry.Option] for the constcurry analyzer.
// It processes settings and applies them only when explicitly set (non-nil).
// The configuration file is read by [New].
func (s Settings) Options() []constcurry.Option {
	var opts []constcurry.Option

	opts = appendOption(opts, s.Generated, constcurry.WithGenerated)
	opts = appendOption(opts, s.MaxPromoted, constcurry.WithMaxPromoted)
	opts = appendOption(opts, s.AnnotateUnused, constcurry.WithAnnotateUnused)
	opts = appendOption(opts, s.Collision, constcurry.WithCollision)

	return opts
}

// appendOption appends a non-nil setting to a [constcurry.Option] list.
func appendOption[T any](opts []constcurry.Option, value *T, constructor func(T) constcurry.Option) []constcurry.Option {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
