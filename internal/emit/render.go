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

package emit

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/types"
	"strings"

	"fillmore-labs.com/constcurry/internal/directive"
	"fillmore-labs.com/constcurry/internal/dispatch"
	"fillmore-labs.com/constcurry/internal/signature"
	"fillmore-labs.com/constcurry/internal/variant"
)

// ErrBody is returned when the supplied body text is not a block.
var ErrBody = errors.New("body text is not a block")

// Options control rendering.
type Options struct {
	// AnnotateUnused marks variants with //nolint:unused.
	AnnotateUnused bool
}

// Render returns the formatted source of the batch: the dispatcher with the original doc
// comment, then all variants in subset enumeration order, then the candidate source types.
//
// body is the verbatim source text of the original function body, braces included.
func (b Batch) Render(body []byte, opts Options) ([]byte, error) {
	if len(body) < 2 || body[0] != '{' || body[len(body)-1] != '}' {
		return nil, ErrBody
	}

	var buf bytes.Buffer

	fn := b.Function

	writeDoc(&buf, dispatcherDoc(fn.Decl.Doc))
	b.writeDispatcher(&buf)

	for _, v := range b.Variants {
		buf.WriteByte('\n') // ignore error
		writeDoc(&buf, variantDoc(fn, v, opts))
		writeSignature(&buf, v.Name, v.TypeParams, v.Params, false, fn.Results)
		buf.WriteByte(' ') // ignore error
		writeBody(&buf, body, v.Bindings)
	}

	for slot, sources := range b.Sources {
		for _, s := range sources {
			buf.WriteByte('\n') // ignore error
			writeSource(&buf, fn.Promoted[slot].Name, s)
		}
	}

	out, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("can't format generated code for %s: %w", fn.Name, err)
	}

	return bytes.TrimRight(out, "\n"), nil
}

func (b Batch) writeDispatcher(buf *bytes.Buffer) {
	fn, d := b.Function, b.Dispatcher

	var typeParams []*ast.Field
	if fn.TypeParams != nil {
		typeParams = fn.TypeParams.List
	}

	writeSignature(buf, d.Name, typeParams, d.Params, true, fn.Results)
	buf.WriteString(" {\n") // ignore error

	ret := fn.Results != nil && len(fn.Results.List) > 0

	if len(d.Branches) == 1 {
		buf.WriteByte('\t') // ignore error
		writeCall(buf, d.Branches[0], ret)
		buf.WriteString("\n}\n") // ignore error

		return
	}

	buf.WriteString("\tswitch {\n") // ignore error

	for _, br := range d.Branches {
		if br.Fallback() {
			buf.WriteString("\tdefault:\n") // ignore error
		} else {
			buf.WriteString("\tcase ") // ignore error
			writeCondition(buf, d, br)
			buf.WriteString(":\n") // ignore error
		}

		buf.WriteString("\t\t") // ignore error
		writeCall(buf, br, ret)
		buf.WriteByte('\n') // ignore error
	}

	buf.WriteString("\t}\n}\n") // ignore error
}

func writeCondition(buf *bytes.Buffer, d dispatch.Dispatcher, br dispatch.Branch) {
	first := true
	for slot, lit := range br.Pattern {
		if lit == nil {
			continue
		}

		if !first {
			buf.WriteString(" && ") // ignore error
		}

		first = false

		fmt.Fprintf(buf, "%s == %s", d.Subjects[slot], lit.Text)
	}
}

func writeCall(buf *bytes.Buffer, br dispatch.Branch, ret bool) {
	if ret {
		buf.WriteString("return ") // ignore error
	}

	buf.WriteString(br.Target) // ignore error

	if len(br.TypeArgs) > 0 {
		buf.WriteByte('[')                               // ignore error
		buf.WriteString(strings.Join(br.TypeArgs, ", ")) // ignore error
		buf.WriteByte(']')                               // ignore error
	}

	buf.WriteByte('(')                           // ignore error
	buf.WriteString(strings.Join(br.Args, ", ")) // ignore error

	if br.Variadic {
		buf.WriteString("...") // ignore error
	}

	buf.WriteByte(')') // ignore error
}

// writeSignature writes "func name[T any](params) results". With forward set, parameters are
// written with their forwardable names.
func writeSignature(buf *bytes.Buffer, name string, typeParams []*ast.Field, params []signature.Param, forward bool, results *ast.FieldList) {
	buf.WriteString("func ") // ignore error
	buf.WriteString(name)    // ignore error

	if len(typeParams) > 0 {
		buf.WriteByte('[') // ignore error

		for i, field := range typeParams {
			if i > 0 {
				buf.WriteString(", ") // ignore error
			}

			writeField(buf, field)
		}

		buf.WriteByte(']') // ignore error
	}

	buf.WriteByte('(') // ignore error
	writeParams(buf, params, forward)
	buf.WriteByte(')') // ignore error

	writeResults(buf, results)
}

// writeParams writes parameters, keeping parameters of one field grouped as in "x, y int".
func writeParams(buf *bytes.Buffer, params []signature.Param, forward bool) {
	for i, p := range params {
		name := p.Name
		if forward {
			name = p.Arg
		}

		if i > 0 {
			buf.WriteString(", ") // ignore error
		}

		buf.WriteString(name) // ignore error

		if i+1 < len(params) && params[i+1].Field == p.Field && name != "" {
			continue // shared type follows
		}

		if name != "" {
			buf.WriteByte(' ') // ignore error
		}

		buf.WriteString(types.ExprString(p.Type)) // ignore error
	}
}

func writeResults(buf *bytes.Buffer, results *ast.FieldList) {
	if results == nil || len(results.List) == 0 {
		return
	}

	if len(results.List) == 1 && len(results.List[0].Names) == 0 {
		buf.WriteByte(' ')                                      // ignore error
		buf.WriteString(types.ExprString(results.List[0].Type)) // ignore error

		return
	}

	buf.WriteString(" (") // ignore error

	for i, field := range results.List {
		if i > 0 {
			buf.WriteString(", ") // ignore error
		}

		writeField(buf, field)
	}

	buf.WriteByte(')') // ignore error
}

func writeField(buf *bytes.Buffer, field *ast.Field) {
	for i, id := range field.Names {
		if i > 0 {
			buf.WriteString(", ") // ignore error
		}

		buf.WriteString(id.Name) // ignore error
	}

	if len(field.Names) > 0 {
		buf.WriteByte(' ') // ignore error
	}

	buf.WriteString(types.ExprString(field.Type)) // ignore error
}

// writeBody writes the verbatim body, preceded by the bindings of the promoted parameters.
func writeBody(buf *bytes.Buffer, body []byte, bindings []variant.Binding) {
	buf.WriteByte('{') // ignore error

	if len(bindings) > 0 {
		buf.WriteByte('\n') // ignore error
	}

	for _, b := range bindings {
		fmt.Fprintf(buf, "\t%s := (*new(%s)).%s()\n", b.Name, b.TypeParam, variant.ValueMethod)

		if !b.Used {
			fmt.Fprintf(buf, "\t_ = %s\n", b.Name)
		}
	}

	buf.Write(body[1:]) // ignore error
	buf.WriteByte('\n') // ignore error
}

func writeSource(buf *bytes.Buffer, param string, s variant.Source) {
	fmt.Fprintf(buf, "// %s supplies the constant %s for %s.\n", s.Name, s.Literal.Text, param)
	fmt.Fprintf(buf, "type %s struct{}\n\n", s.Name)
	fmt.Fprintf(buf, "func (%s) %s() %s { return %s }\n",
		s.Name, variant.ValueMethod, types.ExprString(s.Type), types.ExprString(s.Literal.Expr))
}

// dispatcherDoc returns the original doc comment lines without the expand directive.
func dispatcherDoc(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}

	lines := make([]string, 0, len(doc.List))
	for _, c := range doc.List {
		if directive.HasExpand(&ast.CommentGroup{List: []*ast.Comment{c}}) {
			continue
		}

		lines = append(lines, c.Text)
	}

	// drop separators left dangling by the removed directive
	for len(lines) > 0 && lines[len(lines)-1] == "//" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// variantDoc returns a summary line, the original compiler directives and the unused annotation.
func variantDoc(fn *signature.Function, v variant.Variant, opts Options) []string {
	var lines []string

	if v.Fallback() {
		lines = append(lines, fmt.Sprintf("// %s is the fallback implementation of %s.", v.Name, fn.Name))
	} else {
		names := make([]string, 0, v.Subset.Len())
		for _, slot := range v.Subset.Members() {
			names = append(names, fn.Promoted[slot].Name)
		}

		noun := "constant"
		if len(names) > 1 {
			noun = "constants"
		}

		lines = append(lines, fmt.Sprintf("// %s is %s specialized for %s %s.", v.Name, fn.Name, noun, joinNames(names)))
	}

	var directives []string

	if fn.Decl.Doc != nil {
		for _, c := range fn.Decl.Doc.List {
			if directive.IsCompilerDirective(c) {
				directives = append(directives, c.Text)
			}
		}
	}

	if opts.AnnotateUnused {
		directives = append(directives, "//nolint:unused")
	}

	if len(directives) > 0 {
		lines = append(lines, "//")
		lines = append(lines, directives...)
	}

	return lines
}

func writeDoc(buf *bytes.Buffer, lines []string) {
	for _, line := range lines {
		buf.WriteString(line) // ignore error
		buf.WriteByte('\n')   // ignore error
	}
}

// joinNames formats names as "a", "a and b" or "a, b and c".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""

	case 1:
		return names[0]

	default:
		return strings.Join(names[:len(names)-1], ", ") + " and " + names[len(names)-1]
	}
}
