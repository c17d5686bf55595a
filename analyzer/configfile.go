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

package analyzer

import (
	"fillmore-labs.com/constcurry/internal/config"
)

// ConfigFile reads a YAML configuration file and returns the [Options] it sets.
//
//	generated: true
//	max-promoted: 4
//	annotate-unused: false
//	collision: local
func ConfigFile(path string) (Options, error) {
	f, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	return fileOptions(f), nil
}

func fileOptions(f *config.File) Options {
	var opts Options

	opts = appendOption(opts, f.Generated, WithGenerated)
	opts = appendOption(opts, f.MaxPromoted, WithMaxPromoted)
	opts = appendOption(opts, f.AnnotateUnused, WithAnnotateUnused)
	opts = appendOption(opts, f.Collision, WithCollision)

	return opts
}

// appendOption appends a non-nil setting to an [Option] list.
func appendOption[T any](opts Options, value *T, constructor func(T) Option) Options {
	if value == nil {
		return opts
	}

	return append(opts, constructor(*value))
}
