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

// Package testsource provides utilities for parsing and analyzing Go source code in tests.
//
// It is designed to simplify testing of the constcurry analyzer by handling common
// boilerplate code for parsing and type-checking Go declarations.
package testsource

import (
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"
	"io/fs"
	"testing"

	"golang.org/x/tools/go/ast/inspector"
)

const (
	testpkg  = "test"
	filename = "test.go"
)

// Source is a parsed test file.
type Source struct {
	Fset *token.FileSet
	File *ast.File
	Text []byte
}

// Parse parses Go declarations into an AST.
// The provided source `src` is automatically prefixed with the package clause of package `test`.
// Comments are retained, since promotion markers live in them.
//
// Call [Source.Check] on the result when type information is needed.
func Parse(tb testing.TB, src string) Source {
	tb.Helper()

	text := []byte("package " + testpkg + "\n\n" + src)

	fset := token.NewFileSet()

	f, err := parser.ParseFile(fset, filename, text, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		tb.Fatalf("Failed to parse source %q: %v", src, err)
	}

	return Source{Fset: fset, File: f, Text: text}
}

// Func returns the first top-level function or method declaration with the given name.
func (s Source) Func(tb testing.TB, name string) *ast.FuncDecl {
	tb.Helper()

	root := inspector.New([]*ast.File{s.File}).Root()
	for c := range root.Preorder((*ast.FuncDecl)(nil)) {
		if fn := c.Node().(*ast.FuncDecl); fn.Name.Name == name {
			return fn
		}
	}

	tb.Fatalf("Can't find function %s", name)

	return nil
}

// ReadFile returns the source text for the test file, like [os.ReadFile] would.
func (s Source) ReadFile(name string) ([]byte, error) {
	if name != filename {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}

	return s.Text, nil
}

// Check performs type checking on the parsed file.
// It creates and returns a fully type-checked *types.Package and *types.Info.
// Use this helper when testing analyzer components that require type information
// (e.g. for parameter uses or package scope lookups).
func (s Source) Check(tb testing.TB) (*types.Package, *types.Info) {
	tb.Helper()

	info := &types.Info{
		Types:  make(map[ast.Expr]types.TypeAndValue),
		Defs:   make(map[*ast.Ident]types.Object),
		Uses:   make(map[*ast.Ident]types.Object),
		Scopes: make(map[ast.Node]*types.Scope),
	}

	conf := types.Config{Importer: importer.Default()}

	pkg, err := conf.Check(testpkg, s.Fset, []*ast.File{s.File}, info)
	if err != nil {
		tb.Fatalf("failed to type Check source: %v", err)
	}

	return pkg, info
}
