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

import "strings"

// like reports whether s contains the pattern p.
//
//go:noinline
//constcurry:expand
func like[CI ~bool]( // want "Function 'like' expands into a dispatcher and 2 variants \\(cc:gen\\)"
	s, p string,
	//constcurry:promote dispatch=esc consts=['\\', '^']
	escape byte,
	ci CI,
) bool {
	if ci {
		s, p = strings.ToLower(s), strings.ToLower(p)
	}

	return strings.Contains(s, p)
}
