// Copyright (C) 2021  Antonio Lassandro

// This program is free software: you can redistribute it and/or modify it
// under the terms of the GNU General Public License as published by the Free
// Software Foundation, either version 3 of the License, or (at your option)
// any later version.

// This program is distributed in the hope that it will be useful, but WITHOUT
// ANY WARRANTY; without even the implied warranty of MERCHANTABILITY or
// FITNESS FOR A PARTICULAR PURPOSE.  See the GNU General Public License for
// more details.

// You should have received a copy of the GNU General Public License along
// with this program.  If not, see <http://www.gnu.org/licenses/>.

package assembler

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/flosch/pongo2/v6"
)

func init() {
	filters := map[string]pongo2.FilterFunction{
		"hex":  filterHex,
		"lo16": filterLo16,
		"hi16": filterHi16,
		"sub":  filterSub,
	}

	for name, filter := range filters {
		if err := pongo2.RegisterFilter(name, filter); err != nil {
			panic(err)
		}
	}

	// Parameters are uint64; the stock add goes through int.
	if err := pongo2.ReplaceFilter("add", filterAdd); err != nil {
		panic(err)
	}
}

func number(v *pongo2.Value) uint64 {
	if n, ok := v.Interface().(uint64); ok {
		return n
	}

	return uint64(v.Integer())
}

func filterHex(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsSafeValue(fmt.Sprintf("%#x", number(in))), nil
}

func filterLo16(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(number(in) & 0xFFFF), nil
}

func filterHi16(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue((number(in) >> 16) & 0xFFFF), nil
}

func filterAdd(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(number(in) + number(param)), nil
}

func filterSub(in, param *pongo2.Value) (*pongo2.Value, *pongo2.Error) {
	return pongo2.AsValue(number(in) - number(param)), nil
}

var (
	printTag      = regexp.MustCompile(`(?s)\{\{-?(.*?)-?\}\}`)
	stringLiteral = regexp.MustCompile(`"[^"]*"|'[^']*'`)
	identifier    = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_]*`)
	binding       = regexp.MustCompile(
		`\{%-?\s*(?:for\s+([A-Za-z_]\w*)(?:\s*,\s*([A-Za-z_]\w*))?\s+in\b|` +
			`set\s+([A-Za-z_]\w*)|with\s+([A-Za-z_]\w*)\s*=)`,
	)
)

var templateKeywords = map[string]bool{
	"and": true, "or": true, "not": true, "in": true,
	"true": true, "false": true, "True": true, "False": true,
	"nil": true, "None": true, "forloop": true,
}

// Every variable read by a {{ }} tag must be a parameter or a name bound by
// a for, set or with tag.
func checkDefined(text string, parameters map[string]uint64) error {
	bound := make(map[string]bool)

	for _, match := range binding.FindAllStringSubmatch(text, -1) {
		for _, name := range match[1:] {
			bound[name] = true
		}
	}

	for _, tag := range printTag.FindAllStringSubmatch(text, -1) {
		expr := stringLiteral.ReplaceAllString(tag[1], `""`)

		for _, loc := range identifier.FindAllStringIndex(expr, -1) {
			name := expr[loc[0]:loc[1]]

			before := strings.TrimRightFunc(expr[:loc[0]], unicode.IsSpace)

			// Filter names and attributes.
			if strings.HasSuffix(before, "|") || strings.HasSuffix(before, ".") {
				continue
			}

			// Tail of a numeric literal such as 0x10.
			if loc[0] > 0 && unicode.IsDigit(rune(expr[loc[0]-1])) {
				continue
			}

			if _, exists := parameters[name]; exists || bound[name] || templateKeywords[name] {
				continue
			}

			return &UndefinedParameterError{name}
		}
	}

	return nil
}

// Expand substitutes parameters into an assembler template written in Jinja
// syntax: {{ name }}, with the filters hex, lo16, hi16, add and sub
// ({{ value|hex }}, {{ base|add:8 }}). Reading a missing parameter is an
// error.
func Expand(text string, parameters map[string]uint64) (string, error) {
	tmpl, err := pongo2.FromString(text)

	if err != nil {
		return "", err
	}

	if err := checkDefined(text, parameters); err != nil {
		return "", err
	}

	context := make(pongo2.Context, len(parameters))

	for name, value := range parameters {
		context[name] = value
	}

	return tmpl.Execute(context)
}

func AssembleTemplate(base uint32, text string, parameters map[string]uint64) ([]byte, Labels, error) {
	source, err := Expand(text, parameters)

	if err != nil {
		return nil, nil, fmt.Errorf("Expanding template: %w", err)
	}

	return Assemble(base, source)
}
