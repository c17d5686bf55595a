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

import "strconv"

// Worked example.
//
//constcurry:expand
func base( // want "Function 'base' expands into a dispatcher and 4 variants \\(cc:gen\\)"
	//constcurry:promote dispatch=A consts=[0]
	a int,
	//constcurry:promote dispatch=B consts=[true]
	b bool,
	c string,
) string {
	if b {
		return c
	}

	return strconv.Itoa(a) + c
}
