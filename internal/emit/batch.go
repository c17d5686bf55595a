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

// Package emit renders the dispatcher, all variants and the candidate source types of a
// function as one batch of Go declarations.
package emit

import (
	"fillmore-labs.com/constcurry/internal/dispatch"
	"fillmore-labs.com/constcurry/internal/signature"
	"fillmore-labs.com/constcurry/internal/variant"
)

// Batch is everything generated for one function. It replaces the original declaration.
type Batch struct {
	Function   *signature.Function
	Dispatcher dispatch.Dispatcher
	Variants   []variant.Variant
	Sources    [][]variant.Source
}

// NewBatch runs variant generation and dispatch synthesis for an analyzed function.
func NewBatch(fn *signature.Function) Batch {
	variants := variant.Generate(fn)
	sources := variant.Sources(fn)

	return Batch{
		Function:   fn,
		Dispatcher: dispatch.Synthesize(fn, variants, sources),
		Variants:   variants,
		Sources:    sources,
	}
}

// Names returns the package level names introduced by the batch, in emission order.
// The dispatcher reuses the original name and is not included.
func (b Batch) Names() []string {
	names := make([]string, 0, len(b.Variants))
	for _, v := range b.Variants {
		names = append(names, v.Name)
	}

	for _, sources := range b.Sources {
		for _, s := range sources {
			names = append(names, s.Name)
		}
	}

	return names
}
