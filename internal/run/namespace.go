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
	"fmt"
	"go/ast"
	"go/types"

	"fillmore-labs.com/constcurry/analyzer/level"
	"fillmore-labs.com/constcurry/internal/signature"
)

// Namespace is the package level symbol table generated declarations are injected into.
// Names are claimed per batch, either all or none.
type Namespace struct {
	pkg     *types.Scope
	check   level.Collision
	claimed map[string]string // generated name -> expanded function
}

// NewNamespace creates a [Namespace] for a package scope. A nil scope disables
// checks against existing declarations.
func NewNamespace(pkg *types.Scope, check level.Collision) *Namespace {
	return &Namespace{pkg: pkg, check: check, claimed: make(map[string]string)}
}

// Claim registers the generated names of the function declared by decl. It fails with a
// [signature.NamingCollision] when a name is already declared in the package or file scope
// or was claimed for another function.
func (n *Namespace) Claim(decl *ast.FuncDecl, file *types.Scope, names []string) error {
	for _, name := range names {
		if owner, ok := n.claimed[name]; ok {
			return collision(decl, "Generated name '%s' of function '%s' is also generated for function '%s'", name, decl.Name.Name, owner)
		}

		if n.check != level.CollisionFull {
			continue
		}

		if obj := lookup(n.pkg, file, name); obj != nil {
			return collision(decl, "Generated name '%s' of function '%s' is already declared", name, decl.Name.Name)
		}
	}

	for _, name := range names {
		n.claimed[name] = decl.Name.Name
	}

	return nil
}

func lookup(pkg, file *types.Scope, name string) types.Object {
	if file != nil {
		if obj := file.Lookup(name); obj != nil {
			return obj
		}
	}

	if pkg != nil {
		return pkg.Lookup(name)
	}

	return nil
}

func collision(decl *ast.FuncDecl, format string, args ...any) *signature.Error {
	return &signature.Error{
		Kind: signature.NamingCollision,
		Pos:  decl.Name.Pos(),
		End:  decl.Name.End(),
		Msg:  fmt.Sprintf(format, args...),
	}
}
