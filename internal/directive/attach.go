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
	"go/token"
	"slices"
)

// Attachment holds the promotion markers found inside a parameter list.
type Attachment struct {
	// Markers maps each parameter field to the markers attached to it, in source order.
	Markers map[*ast.Field][]*ast.Comment

	// Dangling lists markers not followed by any parameter.
	Dangling []*ast.Comment
}

// Attach collects the promotion markers between the parentheses of params and assigns
// every marker to the first parameter field starting after the marker ends.
func Attach(file *ast.File, params *ast.FieldList) Attachment {
	var a Attachment
	if file == nil || params == nil || !params.Opening.IsValid() {
		return a
	}

	// find the first comment group starting after the opening parenthesis
	i, _ := slices.BinarySearchFunc(file.Comments, params.Opening,
		func(c *ast.CommentGroup, p token.Pos) int { return int(c.Pos() - p) })

	for _, group := range file.Comments[i:] {
		if params.Closing.IsValid() && group.Pos() > params.Closing {
			break
		}

		for _, c := range group.List {
			if !IsPromote(c) {
				continue
			}

			field := nextField(params, c.End())
			if field == nil {
				a.Dangling = append(a.Dangling, c)
				continue
			}

			if a.Markers == nil {
				a.Markers = make(map[*ast.Field][]*ast.Comment)
			}

			a.Markers[field] = append(a.Markers[field], c)
		}
	}

	return a
}

func nextField(params *ast.FieldList, pos token.Pos) *ast.Field {
	for _, field := range params.List {
		if field.Pos() >= pos {
			return field
		}
	}

	return nil
}
