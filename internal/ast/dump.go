// © 2024 Microglot LLC
//
// SPDX-License-Identifier: Apache-2.0

package ast

import (
	"fmt"
	"reflect"
	"unicode"
	"unicode/utf8"
)

// Dump converts a tree into nested maps and slices for YAML or JSON encoding.
// Each node becomes a map keyed by lower camel case field names with an
// additional "type" entry naming the node.
func Dump(n Node) any {
	return dumpValue(reflect.ValueOf(n))
}

type anyer interface {
	Any() any
}

func dumpValue(v reflect.Value) any {
	switch v.Kind() {
	case reflect.Invalid:
		return nil
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return dumpValue(v.Elem())
	case reflect.Slice:
		out := make([]any, 0, v.Len())
		for offset := 0; offset < v.Len(); offset = offset + 1 {
			out = append(out, dumpValue(v.Index(offset)))
		}
		return out
	case reflect.Struct:
		if o, ok := v.Interface().(anyer); ok {
			return o.Any()
		}
		t := v.Type()
		out := make(map[string]any, t.NumField()+1)
		out["type"] = t.Name()
		for offset := 0; offset < t.NumField(); offset = offset + 1 {
			f := t.Field(offset)
			if !f.IsExported() {
				continue
			}
			out[lowerCamel(f.Name)] = dumpValue(v.Field(offset))
		}
		return out
	}
	if s, ok := v.Interface().(fmt.Stringer); ok {
		return s.String()
	}
	return v.Interface()
}

func lowerCamel(name string) string {
	r, size := utf8.DecodeRuneInString(name)
	return string(unicode.ToLower(r)) + name[size:]
}
