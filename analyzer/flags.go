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
	"flag"

	"fillmore-labs.com/constcurry/internal/config"
	"fillmore-labs.com/constcurry/internal/run"
)

// registerFlags binds the [run.Options] values to command line flag values.
func registerFlags(flags *flag.FlagSet, r *run.Options) {
	flags.Var(NewBehaviorValue(&r.Behavior, config.IncludeGenerated), "generated", "expand functions in generated files")
	flags.Var(NewBehaviorValue(&r.Behavior, config.AnnotateUnused), "annotate-unused", "mark generated variants with //nolint:unused")
	flags.IntVar(&r.MaxPromoted, "max-promoted", r.MaxPromoted, "maximum number of promotable parameters per function")
	flags.TextVar(&r.Collision, "collision", r.Collision, "naming collision check, `level` full or local")
	flags.Var(&configValue{r: r}, "config", "read settings from a YAML configuration `file`")
}

// configValue is a [flag.Value] applying the settings of a configuration file.
type configValue struct {
	r    *run.Options
	path string
}

// Set implements [flag.Value].
func (c *configValue) Set(path string) error {
	opts, err := ConfigFile(path)
	if err != nil {
		return err
	}

	opts.apply(c.r)
	c.path = path

	return nil
}

// String implements [flag.Value].
func (c *configValue) String() string {
	if c == nil {
		return ""
	}

	return c.path
}
