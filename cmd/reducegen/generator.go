// Copyright 2025 go-highway Authors
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

package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"go/types"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// DefaultTypes are the element types satisfying hwy.Lanes.
var DefaultTypes = []string{
	"int8", "int16", "int32", "int64",
	"uint8", "uint16", "uint32", "uint64",
	"float32", "float64",
}

// lanesConstraint is the constraint a type parameter must carry for its
// function to be instantiated.
const lanesConstraint = "hwy.Lanes"

// Generator emits typed wrappers for the generic functions of one file.
type Generator struct {
	InputFile  string   // Go source file to scan
	OutputFile string   // Destination; derived from InputFile when empty
	Types      []string // Element types to instantiate
	Funcs      []string // Function names to keep; all eligible when empty
	Kernels    bool     // Emit archsimd kernels instead of typed wrappers
}

// Param is a function parameter or result.
type Param struct {
	Name string // may be empty for results
	Type string // type expression as written
}

// GenericFunc is an exported function with a single hwy.Lanes type parameter.
type GenericFunc struct {
	Name      string
	TypeParam string // "T"
	Params    []Param
	Results   []Param
}

// Output returns the path the generator writes to.
func (g *Generator) Output() string {
	if g.OutputFile != "" {
		return g.OutputFile
	}
	base := strings.TrimSuffix(filepath.Base(g.InputFile), ".go")
	suffix := "_typed.go"
	if g.Kernels {
		suffix = "_amd64.go"
	}
	return filepath.Join(filepath.Dir(g.InputFile), "z_"+base+suffix)
}

// Run parses the input, emits the wrappers and writes the output file.
// It returns the number of functions generated.
func (g *Generator) Run() (int, error) {
	src, err := os.ReadFile(g.InputFile)
	if err != nil {
		return 0, err
	}

	pkg, found, err := ParseSource(g.InputFile, src)
	if err != nil {
		return 0, err
	}

	var out []byte
	var count int
	if g.Kernels {
		out, err = EmitKernels(g.Output(), pkg, DefaultShapes)
		count = len(DefaultShapes)
	} else {
		var selected []GenericFunc
		selected, err = selectFuncs(found, g.Funcs)
		if err != nil {
			return 0, err
		}
		out, err = Emit(g.Output(), pkg, selected, g.Types)
		count = len(selected) * len(g.Types)
	}
	if err != nil {
		return 0, err
	}

	if err := os.WriteFile(g.Output(), out, 0644); err != nil {
		return 0, fmt.Errorf("failed to write output: %w", err)
	}
	return count, nil
}

// ParseSource returns the package name and the eligible generic functions
// declared in src, in source order.
func ParseSource(filename string, src []byte) (string, []GenericFunc, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.SkipObjectResolution)
	if err != nil {
		return "", nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}

	var funcs []GenericFunc
	for _, decl := range file.Decls {
		fd, ok := decl.(*ast.FuncDecl)
		if !ok || fd.Recv != nil || !fd.Name.IsExported() {
			continue
		}
		tp := fd.Type.TypeParams
		if tp == nil || len(tp.List) != 1 || len(tp.List[0].Names) != 1 {
			continue
		}
		if types.ExprString(tp.List[0].Type) != lanesConstraint {
			continue
		}

		funcs = append(funcs, GenericFunc{
			Name:      fd.Name.Name,
			TypeParam: tp.List[0].Names[0].Name,
			Params:    fieldParams(fd.Type.Params, "p"),
			Results:   fieldParams(fd.Type.Results, ""),
		})
	}
	return file.Name.Name, funcs, nil
}

func fieldParams(fl *ast.FieldList, prefix string) []Param {
	if fl == nil {
		return nil
	}
	var params []Param
	for _, field := range fl.List {
		typ := types.ExprString(field.Type)
		if len(field.Names) == 0 {
			name := ""
			if prefix != "" {
				name = fmt.Sprintf("%s%d", prefix, len(params))
			}
			params = append(params, Param{Name: name, Type: typ})
			continue
		}
		for _, n := range field.Names {
			params = append(params, Param{Name: n.Name, Type: typ})
		}
	}
	return params
}

func selectFuncs(found []GenericFunc, names []string) ([]GenericFunc, error) {
	if len(names) == 0 {
		return found, nil
	}
	var selected []GenericFunc
	for _, name := range names {
		idx := slices.IndexFunc(found, func(f GenericFunc) bool { return f.Name == name })
		if idx < 0 {
			return nil, fmt.Errorf("function %s not found or not generic over %s", name, lanesConstraint)
		}
		selected = append(selected, found[idx])
	}
	return selected, nil
}

// TypeSuffix returns the exported-name suffix for an element type,
// e.g. "float64" -> "Float64".
func TypeSuffix(elemType string) string {
	return cases.Title(language.English).String(elemType)
}

// Substitute replaces every identifier param in the type expression typ
// with concrete.
func Substitute(typ, param, concrete string) string {
	fset := token.NewFileSet()
	file := fset.AddFile("", fset.Base(), len(typ))

	var s scanner.Scanner
	s.Init(file, []byte(typ), nil, 0)

	var b strings.Builder
	last := 0
	for {
		pos, tok, lit := s.Scan()
		if tok == token.EOF {
			break
		}
		if tok != token.IDENT || lit != param {
			continue
		}
		off := file.Offset(pos)
		b.WriteString(typ[last:off])
		b.WriteString(concrete)
		last = off + len(lit)
	}
	b.WriteString(typ[last:])
	return b.String()
}

// Emit renders the wrappers for funcs instantiated at every element type.
// The result is gofmt-formatted with imports resolved.
func Emit(filename, pkg string, funcs []GenericFunc, elemTypes []string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by reducegen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n", pkg)

	for _, f := range funcs {
		for _, elemType := range elemTypes {
			emitWrapper(&buf, f, elemType)
		}
	}

	out, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return out, nil
}

func emitWrapper(buf *bytes.Buffer, f GenericFunc, elemType string) {
	name := f.Name + TypeSuffix(elemType)

	params := make([]string, len(f.Params))
	args := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.Name + " " + Substitute(p.Type, f.TypeParam, elemType)
		args[i] = p.Name
		if strings.HasPrefix(p.Type, "...") {
			args[i] += "..."
		}
	}

	fmt.Fprintf(buf, "\n// %s is %s instantiated for %s.\n", name, f.Name, elemType)
	fmt.Fprintf(buf, "func %s(%s)%s {\n", name, strings.Join(params, ", "), results(f, elemType))
	if len(f.Results) == 0 {
		fmt.Fprintf(buf, "\t%s(%s)\n}\n", f.Name, strings.Join(args, ", "))
		return
	}
	fmt.Fprintf(buf, "\treturn %s(%s)\n}\n", f.Name, strings.Join(args, ", "))
}

func results(f GenericFunc, elemType string) string {
	switch {
	case len(f.Results) == 0:
		return ""
	case len(f.Results) == 1 && f.Results[0].Name == "":
		return " " + Substitute(f.Results[0].Type, f.TypeParam, elemType)
	}
	parts := make([]string, len(f.Results))
	for i, r := range f.Results {
		parts[i] = strings.TrimSpace(r.Name + " " + Substitute(r.Type, f.TypeParam, elemType))
	}
	return " (" + strings.Join(parts, ", ") + ")"
}
