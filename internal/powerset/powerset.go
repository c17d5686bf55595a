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

// Package powerset enumerates subsets of promotable parameters.
package powerset

import (
	"iter"
	"math/bits"
)

// MaxElements is the largest set size a [Subset] can represent.
const MaxElements = 32

// Subset is a set of element indices, stored as a bit mask.
type Subset uint32

// Of returns the subset containing the given indices.
func Of(indices ...int) Subset {
	var s Subset
	for _, i := range indices {
		s |= 1 << i
	}

	return s
}

// Len returns the number of elements in the subset.
func (s Subset) Len() int { return bits.OnesCount32(uint32(s)) }

// Empty reports whether the subset has no elements.
func (s Subset) Empty() bool { return s == 0 }

// Contains reports whether index i is an element.
func (s Subset) Contains(i int) bool { return s&(1<<i) != 0 }

// Members returns the element indices in ascending order.
func (s Subset) Members() []int {
	members := make([]int, 0, s.Len())
	for rest := uint32(s); rest != 0; rest &= rest - 1 {
		members = append(members, bits.TrailingZeros32(rest))
	}

	return members
}

// All yields every subset of {0, ..., n-1}: by increasing size, and within one size
// in lexicographic order of the ascending element indices.
//
// For n = 2 this is {}, {0}, {1}, {0, 1}.
func All(n int) iter.Seq[Subset] {
	return func(yield func(Subset) bool) {
		if n < 0 || n > MaxElements {
			return
		}

		for size := 0; size <= n; size++ {
			if !combinations(n, size, 0, 0, yield) {
				return
			}
		}
	}
}

// combinations yields all subsets of size k with elements from {start, ..., n-1} added to prefix.
func combinations(n, k, start int, prefix Subset, yield func(Subset) bool) bool {
	if k == 0 {
		return yield(prefix)
	}

	for i := start; i <= n-k; i++ {
		if !combinations(n, k-1, i+1, prefix|1<<i, yield) {
			return false
		}
	}

	return true
}

// Count returns the number of subsets of a set with n elements.
func Count(n int) int { return 1 << n }
