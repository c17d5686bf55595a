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

package expanded

import "strings"

// like reports whether s contains the pattern p.
//
//go:noinline
func like[CI ~bool](s, p string, escape byte, ci CI) bool {
	switch {
	case escape == '\\':
		return like_esc[CI, like_esc_0](s, p, ci)
	case escape == '^':
		return like_esc[CI, like_esc_1](s, p, ci)
	default:
		return like_orig[CI](s, p, escape, ci)
	}
}

// like_orig is the fallback implementation of like.
//
//go:noinline
//nolint:unused
func like_orig[CI ~bool](s, p string, escape byte, ci CI) bool {
	if ci {
		s, p = strings.ToLower(s), strings.ToLower(p)
	}

	return strings.Contains(s, p)
}

// like_esc is like specialized for constant escape.
//
//go:noinline
//nolint:unused
func like_esc[CI ~bool, escapeConst interface{ Value() byte }](s, p string, ci CI) bool {
	escape := (*new(escapeConst)).Value()
	_ = escape

	if ci {
		s, p = strings.ToLower(s), strings.ToLower(p)
	}

	return strings.Contains(s, p)
}

// like_esc_0 supplies the constant '\\' for escape.
type like_esc_0 struct{}

func (like_esc_0) Value() byte { return '\\' }

// like_esc_1 supplies the constant '^' for escape.
type like_esc_1 struct{}

func (like_esc_1) Value() byte { return '^' }
