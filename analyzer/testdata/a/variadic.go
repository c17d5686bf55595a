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

package a

//constcurry:expand
func sum( // want "Function 'sum' expands into a dispatcher and 2 variants \\(cc:gen\\)"
	/*constcurry:promote consts=[1]*/ scale int,
	values ...int,
) (total int) {
	for _, v := range values {
		total += v * scale
	}

	return total
}

// ignore has no promotable parameters.
//
//constcurry:expand
func ignore( // want "Function 'ignore' expands into a dispatcher and 1 variant \\(cc:gen\\)"
	/*constcurry:promote consts=[1]*/ _ int,
	//constcurry:promote consts=[2]
	x, y int,
	s string,
) string {
	return s
}

// inert promotion markers without expand directive
func inert(
	//constcurry:promote consts=[1]
	x int,
) int {
	return x
}
