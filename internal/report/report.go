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

// Package report turns expansion results into analysis diagnostics.
package report

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"runtime/trace"

	"golang.org/x/tools/go/analysis"

	"fillmore-labs.com/constcurry/internal/emit"
	"fillmore-labs.com/constcurry/internal/signature"
)

// Expansion reports an expandable function with a suggested fix replacing the declaration,
// including its doc comment, by the rendered batch.
func Expansion(ctx context.Context, p *analysis.Pass, decl *ast.FuncDecl, batch emit.Batch, text []byte) {
	defer trace.StartRegion(ctx, "ReportExpansion").End()

	message := fmt.Sprintf("Function '%s' expands into a dispatcher and %s (cc:gen)",
		decl.Name.Name, plural(len(batch.Variants), "variant"))

	pos := decl.Pos()
	if decl.Doc != nil {
		pos = decl.Doc.Pos()
	}

	p.Report(analysis.Diagnostic{
		Pos:      decl.Name.Pos(),
		End:      decl.Name.End(),
		Category: "expand",
		Message:  message,
		SuggestedFixes: []analysis.SuggestedFix{{
			Message:   fmt.Sprintf("Expand '%s'", decl.Name.Name),
			TextEdits: []analysis.TextEdit{{Pos: pos, End: decl.End(), NewText: text}},
		}},
	})
}

// Failure reports why a function can't be expanded. Errors other than *[signature.Error]
// are reported at the function name.
func Failure(ctx context.Context, p *analysis.Pass, decl *ast.FuncDecl, err error) {
	defer trace.StartRegion(ctx, "ReportFailure").End()

	var (
		serr     *signature.Error
		pos, end token.Pos
		category string
	)

	if errors.As(err, &serr) {
		pos, end, category = serr.Pos, serr.End, serr.Kind.String()
	} else {
		pos, end, category = decl.Name.Pos(), decl.Name.End(), signature.ConfigurationError.String()
	}

	p.Report(analysis.Diagnostic{
		Pos:      pos,
		End:      end,
		Category: category,
		Message:  fmt.Sprintf("%s (cc:%s)", err, category),
		Related: []analysis.RelatedInformation{{
			Pos:     decl.Name.Pos(),
			End:     decl.Name.End(),
			Message: fmt.Sprintf("Expansion of '%s' aborted", decl.Name.Name),
		}},
	})
}

// plural formats a count with its noun, like "1 variant" or "4 variants".
func plural(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}

	return fmt.Sprintf("%d %ss", n, noun)
}
