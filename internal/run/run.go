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
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"fillmore-labs.com/constcurry/internal/astutil"
	"fillmore-labs.com/constcurry/internal/config"
	"fillmore-labs.com/constcurry/internal/directive"
	"fillmore-labs.com/constcurry/internal/emit"
	"fillmore-labs.com/constcurry/internal/report"
	"fillmore-labs.com/constcurry/internal/signature"
)

// ErrResultMissing is returned when a required analyzer result is missing.
// This typically indicates a configuration error where the analyzer's
// Requires field is not properly set.
var ErrResultMissing = errors.New("analyzer result missing")

// Run executes the constcurry analyzer's pipeline.
func (r *Options) Run(p *analysis.Pass) (any, error) {
	// Retrieves the [inspector.Inspector] from the pass results.
	in, ok := p.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, fmt.Errorf("constcurry: %s %w", inspect.Analyzer.Name, ErrResultMissing)
	}

	ctx := context.Background()

	ctx, task := trace.NewTask(ctx, "ConstCurry")
	defer task.End()

	trace.Log(ctx, "package", p.Pkg.Path())

	sa := signature.Analyzer{Info: p.TypesInfo, MaxPromoted: r.MaxPromoted}

	ns := NewNamespace(p.Pkg.Scope(), r.Collision)

	opts := emit.Options{AnnotateUnused: r.Behavior.Enabled(config.AnnotateUnused)}

	// Loop over all files
	for f := range in.Root().Children() {
		file := f.Node().(*ast.File)

		currentFile := astutil.NewCurrentFile(p.Fset, file, p.ReadFile)
		if !currentFile.Valid() {
			astutil.InternalError(p, file, "File %s without valid info", file.Name.Name)

			continue
		}

		// Skip generated files
		if currentFile.Generated() && !r.Behavior.Enabled(config.IncludeGenerated) {
			continue
		}

		// Skip files with nolint comment
		if file.Doc != nil && astutil.CommentHasNoLint(file.Doc.List[len(file.Doc.List)-1]) {
			continue
		}

		var fileScope *types.Scope
		if p.TypesInfo != nil {
			fileScope = p.TypesInfo.Scopes[file]
		}

		// Loop over all opted-in function and method declarations in this file
		for c := range f.Preorder((*ast.FuncDecl)(nil)) {
			fun := c.Node().(*ast.FuncDecl)

			if !directive.HasExpand(fun.Doc) || astutil.HasNoLint(fun.Doc) {
				continue
			}

			r.expand(ctx, p, currentFile, fileScope, ns, sa, opts, fun)
		}
	}

	return nil, nil
}

// expand runs signature analysis, variant generation, dispatch synthesis and emission for one
// function and reports the result.
func (r *Options) expand(ctx context.Context, p *analysis.Pass, currentFile *astutil.CurrentFile,
	fileScope *types.Scope, ns *Namespace, sa signature.Analyzer, opts emit.Options, fun *ast.FuncDecl,
) {
	defer trace.StartRegion(ctx, "Expand").End()

	// Stage 1: classify parameters and validate markers
	markers := directive.Attach(currentFile.File(), fun.Type.Params)

	fn, err := sa.Analyze(fun, markers)
	if err != nil {
		report.Failure(ctx, p, fun, err)

		return
	}

	// Stage 2: generate variants and the dispatcher
	batch := emit.NewBatch(fn)

	if err := ns.Claim(fun, fileScope, batch.Names()); err != nil {
		report.Failure(ctx, p, fun, err)

		return
	}

	// Stage 3: render and suggest the replacement
	body, err := currentFile.Text(fun.Body)
	if err != nil {
		astutil.InternalError(p, fun.Body, "Can't read body of %s: %v", fun.Name.Name, err)

		return
	}

	text, err := batch.Render(body, opts)
	if err != nil {
		astutil.InternalError(p, fun, "Can't render expansion of %s: %v", fun.Name.Name, err)

		return
	}

	report.Expansion(ctx, p, fun, batch, text)
}
