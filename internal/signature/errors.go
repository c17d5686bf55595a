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

package signature

import (
	"fmt"
	"go/ast"
	"go/token"
)

// Kind classifies analysis errors.
type Kind uint8

//go:generate go tool stringer -type Kind -linecomment
const (
	// ConfigurationError is a malformed promotion marker or a signature that cannot be expanded.
	ConfigurationError Kind = iota // cfg

	// NamingCollision is a generated name clashing with another name.
	NamingCollision // col

	// Unsupported is a declaration form the transformation cannot handle.
	Unsupported // uns
)

// Error is an analysis error attached to a source range.
// Any Error aborts the transformation of the whole function.
type Error struct {
	Kind     Kind
	Pos, End token.Pos
	Msg      string
	Err      error
}

func newError(kind Kind, node ast.Node, err error, format string, args ...any) *Error {
	return &Error{
		Kind: kind,
		Pos:  node.Pos(),
		End:  node.End(),
		Msg:  fmt.Sprintf(format, args...),
		Err:  err,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Err == nil {
		return e.Msg
	}

	return e.Msg + ": " + e.Err.Error()
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error { return e.Err }
