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

package directive

import (
	"go/ast"
	"slices"
	"strings"
)

const (
	// ExpandDirective opts a function into the transformation.
	ExpandDirective = "constcurry:expand"

	// PromoteDirective marks a parameter as promotable.
	PromoteDirective = "constcurry:promote"
)

// HasExpand reports whether the doc comment carries a //constcurry:expand line.
func HasExpand(doc *ast.CommentGroup) bool {
	if doc == nil {
		return false
	}

	return slices.ContainsFunc(doc.List, func(c *ast.Comment) bool {
		text, ok := strings.CutPrefix(c.Text, "//")
		if !ok {
			return false
		}

		rest, ok := strings.CutPrefix(text, ExpandDirective)

		return ok && (rest == "" || isSpace(rest[0]))
	})
}

// compilerDirectives are the //go: directives that apply to the code of a single function.
var compilerDirectives = [...]string{"noinline", "nosplit", "norace", "nocheckptr", "uintptrescapes"}

// IsCompilerDirective reports whether the comment is a function-level compiler directive like //go:noinline.
func IsCompilerDirective(c *ast.Comment) bool {
	name, ok := strings.CutPrefix(c.Text, "//go:")
	if !ok {
		return false
	}

	name, _, _ = strings.Cut(name, " ")

	return slices.Contains(compilerDirectives[:], name)
}

// promotePayload returns the text following //constcurry:promote, if the comment is a promotion marker.
func promotePayload(c *ast.Comment) (string, bool) {
	var text string

	switch {
	case strings.HasPrefix(c.Text, "//"):
		text = c.Text[2:]

	case strings.HasPrefix(c.Text, "/*"):
		text = strings.TrimSuffix(c.Text[2:], "*/")

	default:
		return "", false
	}

	rest, ok := strings.CutPrefix(text, PromoteDirective)
	if !ok || rest != "" && !isSpace(rest[0]) {
		return "", false
	}

	return rest, true
}

// IsPromote reports whether the comment is a promotion marker.
func IsPromote(c *ast.Comment) bool {
	_, ok := promotePayload(c)

	return ok
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}
