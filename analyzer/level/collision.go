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

// Package level defines the textual levels of analyzer settings.
package level

import (
	"fmt"
	"strings"
)

// Collision specifies how generated names are checked before emission.
type Collision uint8

const (
	// CollisionFull rejects generated names colliding with each other, with the function's own
	// names or with any declaration in the package and file scopes.
	CollisionFull Collision = iota

	// CollisionLocal only rejects collisions inside the expanded function and between expanded functions.
	CollisionLocal
)

// MarshalText implements [encoding.TextMarshaler].
func (o Collision) MarshalText() ([]byte, error) {
	switch o {
	case CollisionFull:
		return []byte("full"), nil

	case CollisionLocal:
		return []byte("local"), nil

	default:
		return nil, fmt.Errorf("unknown collision level %d", o)
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (o *Collision) UnmarshalText(text []byte) error {
	switch strings.ToLower(string(text)) {
	case "", "true", "on", "full":
		*o = CollisionFull

	case "local", "off", "false":
		*o = CollisionLocal

	default:
		return fmt.Errorf("unknown collision level %q", string(text))
	}

	return nil
}

// String returns the textual level.
func (o Collision) String() string {
	text, err := o.MarshalText()
	if err != nil {
		return fmt.Sprintf("Collision(%d)", o)
	}

	return string(text)
}
