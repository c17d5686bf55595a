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

package run

import (
	"fillmore-labs.com/constcurry/analyzer/level"
	"fillmore-labs.com/constcurry/internal/config"
	"fillmore-labs.com/constcurry/internal/signature"
)

// Options represent configuration options for the constcurry analyzer.
type Options struct {
	// Behavior holds behavioral switches.
	Behavior config.BitMask[config.Behavior]

	// MaxPromoted limits the number of promotable parameters per function.
	MaxPromoted int

	// Collision selects the naming collision check.
	Collision level.Collision
}

// DefaultOptions initializes and returns a new Options instance with default values.
func DefaultOptions() *Options {
	return &Options{
		Behavior:    config.DefaultBehavior(),
		MaxPromoted: signature.DefaultMaxPromoted,
		Collision:   level.CollisionFull,
	}
}
