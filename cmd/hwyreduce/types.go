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
	"fmt"
	"strconv"
	"strings"
	"unsafe"

	"github.com/samber/lo"

	"github.com/ajroetker/simdagg/hwy"
	"github.com/ajroetker/simdagg/hwy/contrib/reduce"
)

// elemType binds an element type name to its instantiated operations.
type elemType struct {
	name       string
	capability func(level hwy.DispatchLevel) reduce.Capability
	lanes128   int
	lanes256   int
	stat       func(in statInput) ([]statRow, error)
}

func newElemType[T hwy.Lanes](name string) elemType {
	return elemType{
		name:       name,
		capability: reduce.CapabilityFor[T],
		lanes128:   reduce.Lanes[T](reduce.Tier128),
		lanes256:   reduce.Lanes[T](reduce.Tier256),
		stat:       computeStats[T],
	}
}

var elemTypes = []elemType{
	newElemType[int8]("int8"),
	newElemType[int16]("int16"),
	newElemType[int32]("int32"),
	newElemType[int64]("int64"),
	newElemType[uint8]("uint8"),
	newElemType[uint16]("uint16"),
	newElemType[uint32]("uint32"),
	newElemType[uint64]("uint64"),
	newElemType[float32]("float32"),
	newElemType[float64]("float64"),
}

func typeNames() []string {
	return lo.Map(elemTypes, func(e elemType, _ int) string { return e.name })
}

func lookupType(name string) (elemType, error) {
	e, ok := lo.Find(elemTypes, func(e elemType) bool { return e.name == name })
	if !ok {
		return elemType{}, fmt.Errorf("unknown element type %q (want one of %s)", name, strings.Join(typeNames(), ", "))
	}
	return e, nil
}

// parseValue parses one number in the syntax strconv accepts for T.
// Integers may carry a 0x, 0o or 0b prefix.
func parseValue[T hwy.Lanes](s string) (T, error) {
	var zero T
	bitSize := int(unsafe.Sizeof(zero)) * 8
	switch any(zero).(type) {
	case float32, float64:
		f, err := strconv.ParseFloat(s, bitSize)
		return T(f), err
	case int8, int16, int32, int64:
		i, err := strconv.ParseInt(s, 0, bitSize)
		return T(i), err
	default:
		u, err := strconv.ParseUint(s, 0, bitSize)
		return T(u), err
	}
}

// parseText reads numbers separated by whitespace or commas. Blank lines and
// lines starting with '#' are skipped.
func parseText[T hwy.Lanes](text string) ([]T, error) {
	lines := lo.Filter(strings.Split(text, "\n"), func(line string, _ int) bool {
		line = strings.TrimSpace(line)
		return line != "" && !strings.HasPrefix(line, "#")
	})
	tokens := lo.FlatMap(lines, func(line string, _ int) []string {
		return strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == '\r'
		})
	})

	values := make([]T, len(tokens))
	for i, tok := range tokens {
		v, err := parseValue[T](tok)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i+1, err)
		}
		values[i] = v
	}
	return values, nil
}
