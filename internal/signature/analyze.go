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
	"go/ast"
	"go/types"
	"strconv"

	"fillmore-labs.com/constcurry/internal/directive"
	"fillmore-labs.com/constcurry/internal/naming"
	"fillmore-labs.com/constcurry/internal/powerset"
)

// DefaultMaxPromoted is the default limit of promotable parameters per function.
const DefaultMaxPromoted = 6

// Analyzer classifies the parameters of opted-in functions.
type Analyzer struct {
	// Info is optional type information, used to detect promoted parameters the body never uses.
	Info *types.Info

	// MaxPromoted limits the number of promotable parameters. Values <= 0 select [DefaultMaxPromoted].
	MaxPromoted int
}

// Analyze validates decl together with the promotion markers attached to its parameters and
// returns the descriptor of the function. Every error is returned before anything is generated.
func (a Analyzer) Analyze(decl *ast.FuncDecl, markers directive.Attachment) (*Function, error) {
	if decl.Recv != nil {
		return nil, newError(Unsupported, decl.Name, nil,
			"Method '%s' can't be expanded, methods can't declare type parameters", decl.Name.Name)
	}

	if decl.Body == nil {
		return nil, newError(Unsupported, decl.Name, nil, "Function '%s' has no body to expand", decl.Name.Name)
	}

	if len(markers.Dangling) > 0 {
		return nil, newError(ConfigurationError, markers.Dangling[0], nil,
			"Promotion marker in function '%s' is not followed by a parameter", decl.Name.Name)
	}

	fn := &Function{
		Name:       decl.Name.Name,
		Decl:       decl,
		TypeParams: decl.Type.TypeParams,
		Results:    decl.Type.Results,
		Body:       decl.Body,
	}

	typeParams := fieldNames(fn.TypeParams)

	index := 0
	for _, field := range decl.Type.Params.List {
		names := field.Names
		if len(names) == 0 {
			names = []*ast.Ident{nil} // unnamed parameter
		}

		for _, id := range names {
			param := Param{Index: index, Field: field, Type: field.Type, Slot: -1}
			if id != nil {
				param.Name = id.Name
			}

			index++

			p, err := a.promotable(fn, field, id, markers.Markers[field], typeParams)
			if err != nil {
				return nil, err
			}

			if p != nil {
				p.Index = param.Index
				param.Slot = len(fn.Promoted)
				fn.Promoted = append(fn.Promoted, *p)
			}

			fn.Params = append(fn.Params, param)
		}
	}

	if maxPromoted := a.maxPromoted(); len(fn.Promoted) > maxPromoted {
		return nil, newError(ConfigurationError, decl.Name, nil,
			"Function '%s' has %d promotable parameters, at most %d are allowed", fn.Name, len(fn.Promoted), maxPromoted)
	}

	assignArgs(fn)

	if err := checkNames(fn, typeParams); err != nil {
		return nil, err
	}

	return fn, nil
}

func (a Analyzer) maxPromoted() int {
	if a.MaxPromoted <= 0 {
		return DefaultMaxPromoted
	}

	return min(a.MaxPromoted, powerset.MaxElements)
}

// promotable returns the promotable descriptor for a parameter, or nil if it stays residual.
func (a Analyzer) promotable(fn *Function, field *ast.Field, id *ast.Ident, markers []*ast.Comment, typeParams map[string]bool) (*Promotable, error) {
	if len(markers) == 0 {
		return nil, nil
	}

	// Markers on unnamed, blank and grouped parameters are ignored.
	if id == nil || id.Name == "_" || len(field.Names) != 1 {
		return nil, nil
	}

	if len(markers) > 1 {
		return nil, newError(ConfigurationError, field, nil,
			"Parameter '%s' has %d promotion markers, expected one", id.Name, len(markers))
	}

	marker, err := directive.Parse(markers[0])
	if err != nil {
		return nil, newError(ConfigurationError, field, err, "Invalid promotion marker on parameter '%s'", id.Name)
	}

	if _, ok := field.Type.(*ast.Ellipsis); ok {
		return nil, newError(ConfigurationError, field, nil, "Variadic parameter '%s' can't be promoted", id.Name)
	}

	if name, ok := mentions(field.Type, typeParams); ok {
		return nil, newError(ConfigurationError, field, nil,
			"Parameter '%s' can't be promoted, its type depends on type parameter '%s'", id.Name, name)
	}

	dynamic := a.dynamic(field.Type)
	if err := directive.Duplicate(marker.Consts, dynamic); err != nil {
		return nil, newError(ConfigurationError, field, err, "Invalid promotion marker on parameter '%s'", id.Name)
	}

	alias := marker.Dispatch
	if alias == "" {
		alias = id.Name
	}

	return &Promotable{
		Name:    id.Name,
		Alias:   alias,
		Type:    field.Type,
		Consts:  marker.Consts,
		Used:    a.used(id, fn.Body),
		Dynamic: dynamic,
	}, nil
}

// dynamic reports whether typ denotes an interface type. Without type information only
// interface literals and the predeclared any are recognized.
func (a Analyzer) dynamic(typ ast.Expr) bool {
	if a.Info != nil {
		if t := a.Info.TypeOf(typ); t != nil {
			return types.IsInterface(t)
		}
	}

	switch t := typ.(type) {
	case *ast.InterfaceType:
		return true

	case *ast.Ident:
		return t.Name == "any"

	default:
		return false
	}
}

// used reports whether body references the parameter declared by id.
// Without type information the parameter is conservatively reported unused.
func (a Analyzer) used(id *ast.Ident, body *ast.BlockStmt) bool {
	if a.Info == nil {
		return false
	}

	obj := a.Info.Defs[id]
	if obj == nil {
		return false
	}

	found := false
	ast.Inspect(body, func(n ast.Node) bool {
		if found {
			return false
		}

		if ref, ok := n.(*ast.Ident); ok && a.Info.Uses[ref] == obj {
			found = true
		}

		return true
	})

	return found
}

// assignArgs gives unnamed and blank parameters a name the dispatcher can forward.
func assignArgs(fn *Function) {
	taken := make(map[string]bool, len(fn.Params))
	for _, p := range fn.Params {
		taken[p.Name] = true
	}

	for i := range fn.Params {
		p := &fn.Params[i]
		if p.Name != "" && p.Name != "_" {
			p.Arg = p.Name
			continue
		}

		arg := "_" + strconv.Itoa(p.Index)
		for taken[arg] {
			arg = "_" + arg
		}

		taken[arg] = true
		p.Arg = arg
	}
}

// mentions reports whether the type expression references one of the given names.
func mentions(expr ast.Expr, names map[string]bool) (string, bool) {
	if len(names) == 0 {
		return "", false
	}

	var found string
	ast.Inspect(expr, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok && found == "" && names[id.Name] {
			found = id.Name
		}

		return found == ""
	})

	return found, found != ""
}

func fieldNames(list *ast.FieldList) map[string]bool {
	names := make(map[string]bool)
	if list == nil {
		return names
	}

	for _, field := range list.List {
		for _, id := range field.Names {
			names[id.Name] = true
		}
	}

	return names
}

// generatedName records where a generated name originates, for error reporting.
type generatedName struct {
	name string
	node ast.Node
}

// checkNames rejects dispatch alias collisions and generated names clashing with each other
// or with names visible in the dispatcher and the variants.
func checkNames(fn *Function, typeParams map[string]bool) error {
	paramField := func(slot int) ast.Node {
		return fn.Params[fn.Promoted[slot].Index].Field
	}

	aliases := make(map[string]int, len(fn.Promoted))
	for slot, p := range fn.Promoted {
		if prev, ok := aliases[p.Alias]; ok {
			return newError(NamingCollision, paramField(slot), nil,
				"Parameters '%s' and '%s' share the dispatch alias '%s'", fn.Promoted[prev].Name, p.Name, p.Alias)
		}

		aliases[p.Alias] = slot
	}

	// names in scope of the dispatcher, which references all package level generated names
	local := map[string]bool{fn.Name: true}
	for name := range typeParams {
		local[name] = true
	}

	for _, p := range fn.Params {
		local[p.Name] = true
		local[p.Arg] = true
	}

	for name := range fieldNames(fn.Results) {
		local[name] = true
	}

	var generated []generatedName
	for s := range powerset.All(len(fn.Promoted)) {
		node := ast.Node(fn.Decl.Name)
		if members := s.Members(); len(members) > 0 {
			node = paramField(members[len(members)-1])
		}

		generated = append(generated, generatedName{naming.Variant(fn.Name, fn.Aliases(s.Members())), node})
	}

	for slot, p := range fn.Promoted {
		for i := range p.Consts {
			generated = append(generated, generatedName{naming.Source(fn.Name, p.Alias, i), paramField(slot)})
		}
	}

	seen := make(map[string]bool, len(generated))
	for _, g := range generated {
		if seen[g.name] || local[g.name] {
			return newError(NamingCollision, g.node, nil, "Generated name '%s' of function '%s' is already in use", g.name, fn.Name)
		}

		seen[g.name] = true
	}

	if len(fn.Promoted) == 0 {
		return nil
	}

	// the variants bind promoted parameters with the predeclared new
	if local["new"] {
		return newError(NamingCollision, fn.Decl.Name, nil, "Function '%s' redeclares 'new', which the variants need", fn.Name)
	}

	// names in scope of the variants' signatures and bodies, which declare the source type parameters
	inSignature, inBody := identifiers(fn.Decl.Type), identifiers(fn.Body)

	for slot, p := range fn.Promoted {
		tp := naming.TypeParam(p.Name)
		if local[tp] || inSignature[tp] || inBody[tp] || seen[tp] {
			return newError(NamingCollision, paramField(slot), nil,
				"Type parameter '%s' for parameter '%s' is already in use", tp, p.Name)
		}
	}

	return nil
}

// identifiers returns all identifiers occurring in the node.
func identifiers(node ast.Node) map[string]bool {
	ids := make(map[string]bool)
	ast.Inspect(node, func(n ast.Node) bool {
		if id, ok := n.(*ast.Ident); ok {
			ids[id.Name] = true
		}

		return true
	})

	return ids
}
