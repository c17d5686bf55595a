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

package astutil

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"os"
	"regexp"
	"slices"
	"strings"
)

// constcurry is the name of the linter.
const constcurry = "constcurry"

// ErrContentMismatch is returned when the file content on disk doesn't match the parsed file.
var ErrContentMismatch = errors.New("file content doesn't match the parsed file")

// ReadFileFunc reads the content of a source file, like [os.ReadFile].
type ReadFileFunc func(filename string) ([]byte, error)

// CurrentFile holds file information for analysis.
type CurrentFile struct {
	file      *ast.File
	handle    *token.File
	generated bool
	readFile  ReadFileFunc
	content   []byte
}

// NewCurrentFile creates a new [CurrentFile] from a [token.FileSet] and an *[ast.File].
// The file content is read on demand with readFile, which defaults to [os.ReadFile].
func NewCurrentFile(fset *token.FileSet, file *ast.File, readFile ReadFileFunc) *CurrentFile {
	if file == nil {
		return &CurrentFile{}
	}

	handle := fset.File(file.FileStart)
	if handle == nil {
		return &CurrentFile{}
	}

	if readFile == nil {
		readFile = os.ReadFile
	}

	generated := ast.IsGenerated(file)

	return &CurrentFile{file: file, handle: handle, generated: generated, readFile: readFile}
}

// Valid returns true if the [CurrentFile] was successfully created
// from a valid file handle.
func (c *CurrentFile) Valid() bool {
	return c.handle != nil
}

// Generated returns true if the file is a generated file.
func (c *CurrentFile) Generated() bool {
	return c.generated
}

// File returns the syntax tree of the file.
func (c *CurrentFile) File() *ast.File {
	return c.file
}

// Text returns the verbatim source text of node.
func (c *CurrentFile) Text(node ast.Node) ([]byte, error) {
	if c.content == nil {
		content, err := c.readFile(c.handle.Name())
		if err != nil {
			return nil, err
		}

		if len(content) != c.handle.Size() {
			return nil, fmt.Errorf("%s: %w", c.handle.Name(), ErrContentMismatch)
		}

		c.content = content
	}

	start, end := c.handle.Offset(node.Pos()), c.handle.Offset(node.End())

	return c.content[start:end], nil
}

var nolintPattern = regexp.MustCompile(`^//\s*nolint:([a-zA-Z0-9,_-]+)`)

// HasNoLint checks if a doc comment contains a `//nolint:constcurry` directive line.
func HasNoLint(doc *ast.CommentGroup) bool {
	return doc != nil && slices.ContainsFunc(doc.List, CommentHasNoLint)
}

// CommentHasNoLint checks if the provided comment contains a `//nolint:constcurry` directive.
func CommentHasNoLint(comment *ast.Comment) bool {
	matches := nolintPattern.FindStringSubmatch(comment.Text)
	if matches == nil {
		return false
	}

	// Parse comma-separated linter list
	for linter := range strings.SplitSeq(matches[1], ",") {
		if l := strings.ToLower(strings.TrimSpace(linter)); l == constcurry || l == "all" {
			return true
		}
	}

	return false
}
