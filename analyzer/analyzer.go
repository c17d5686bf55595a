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
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"

	"fillmore-labs.com/constcurry/internal/run"
)

const (
	name = "constcurry"
	doc  = `expand functions marked constcurry:expand into a dispatcher and specialized variants

Every function whose doc comment carries a //constcurry:expand directive gets one
diagnostic. When its promotion markers are valid, the diagnostic carries a suggested
fix replacing the declaration by a dispatcher routing on the promoted parameters and
one variant per subset of them, otherwise it names the offending parameter.`
	url = "https://pkg.go.dev/fillmore-labs.com/constcurry"
)

// New returns an analyzer reporting opted-in functions with an expansion fix each,
// configured by opts. Command line flags registered on the analyzer override opts.
func New(opts ...Option) *analysis.Analyzer {
	r := run.DefaultOptions()
	Options(opts).apply(r)

	a := &analysis.Analyzer{
		Name:     name,
		Doc:      doc,
		URL:      url,
		Run:      r.Run,
		Requires: []*analysis.Analyzer{inspect.Analyzer},
	}

	registerFlags(&a.Flags, r)

	return a
}

// Analyzer expands opted-in functions with the default options. Apply its fixes with -fix.
var Analyzer = New()
