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
	_ "embed"
	"fmt"
	"text/template"

	"golang.org/x/tools/imports"
)

//go:embed kernels.tmpl
var kernelTemplate string

// KernelShape is one archsimd vector type kernels are emitted for.
type KernelShape struct {
	Elem   string // element type, e.g. "float32"
	Vec    string // archsimd vector type, e.g. "Float32x8"
	Lanes  int    // lanes in Vec
	Float  bool   // emit the NaN-aware equality kernel
	Select bool   // no native Min/Max: build them from Greater and Merge
	Wide   string // 64-bit accumulator for widening sums, "" for none
}

// WideLanes returns the lane count of the widening accumulator.
func (s KernelShape) WideLanes() int {
	return s.Lanes / 2
}

// DefaultShapes are the 256-bit and 128-bit shapes AVX2 covers. 64-bit
// integer Min and Max need AVX-512, so those shapes select.
var DefaultShapes = []KernelShape{
	{Elem: "float32", Vec: "Float32x8", Lanes: 8, Float: true},
	{Elem: "float32", Vec: "Float32x4", Lanes: 4, Float: true},
	{Elem: "float64", Vec: "Float64x4", Lanes: 4, Float: true},
	{Elem: "float64", Vec: "Float64x2", Lanes: 2, Float: true},
	{Elem: "int32", Vec: "Int32x8", Lanes: 8},
	{Elem: "int32", Vec: "Int32x4", Lanes: 4},
	{Elem: "int64", Vec: "Int64x4", Lanes: 4, Select: true},
	{Elem: "int64", Vec: "Int64x2", Lanes: 2, Select: true},
	{Elem: "uint32", Vec: "Uint32x8", Lanes: 8, Wide: "Uint64x4"},
	{Elem: "uint32", Vec: "Uint32x4", Lanes: 4, Wide: "Uint64x2"},
}

// EmitKernels renders the archsimd kernels for shapes. The result is
// gofmt-formatted.
func EmitKernels(filename, pkg string, shapes []KernelShape) ([]byte, error) {
	tmpl, err := template.New("kernels").Parse(kernelTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse kernel template: %w", err)
	}

	var buf bytes.Buffer
	data := struct {
		Package string
		Shapes  []KernelShape
	}{pkg, shapes}
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render kernels: %w", err)
	}

	out, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return out, nil
}
