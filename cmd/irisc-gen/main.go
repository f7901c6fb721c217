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

package main

import (
	"bufio"
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/lassandro/irisc/pkg/assembler"
	"github.com/lassandro/irisc/pkg/cli"
	"github.com/lassandro/irisc/pkg/params"
)

var helpvar bool
var outvar string
var basevar cli.AddressFlag
var paramvar paramFlag

const usage = "irisc-gen [-base addr] [-param name=values]... [-out outfile] [template]"

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.StringVar(
		&outvar, "out", "",
		"Writes the records to a file instead of stdout",
	)
	flag.Var(
		&basevar, "base",
		"Address of the first instruction, decimal or 0x-prefixed hexadecimal",
	)
	flag.Var(
		&paramvar, "param",
		"Declares a template parameter as name=values. Values are a "+
			"comma-separated list of literals, low..high ranges, "+
			"randN:count (N = 8, 16, 32, 64) and bits:count. Repeatable",
	)
}

// Repeatable -param flag.
type paramFlag []params.Set

func (p *paramFlag) String() string {
	names := make([]string, 0, len(*p))

	for _, set := range *p {
		names = append(names, set.Name)
	}

	return strings.Join(names, ",")
}

func (p *paramFlag) Set(s string) error {
	set, err := params.ParseParameter(s)

	if err != nil {
		return err
	}

	for _, existing := range *p {
		if existing.Name == set.Name {
			return fmt.Errorf("Parameter '%s' declared twice", set.Name)
		}
	}

	*p = append(*p, set)

	return nil
}

// One assembled variant.
type record struct {
	Code       string            `json:"code"`
	Parameters params.Assignment `json:"parameters"`
	Labels     assembler.Labels  `json:"labels"`
}

// Assembles text once per assignment of sets, writing one JSON record per
// line. The first failure stops the run.
func generate(w io.Writer, base uint32, text string, sets []params.Set) error {
	out := bufio.NewWriter(w)
	encoder := json.NewEncoder(out)

	err := params.Each(sets, func(assignment params.Assignment) error {
		code, labels, err := assembler.AssembleTemplate(base, text, assignment)

		if err != nil {
			return &variantError{assignment, err}
		}

		return encoder.Encode(record{hex.EncodeToString(code), assignment, labels})
	})

	if err != nil {
		return err
	}

	return out.Flush()
}

type variantError struct {
	Parameters params.Assignment
	Err        error
}

func (err *variantError) Error() string {
	parameters, _ := json.Marshal(err.Parameters)
	return fmt.Sprintf("Assembling %s: %v", parameters, err.Err)
}

func (err *variantError) Unwrap() error {
	return err.Err
}

func irisc_gen() int {
	flag.Parse()

	if helpvar {
		fmt.Println(usage)
		flag.PrintDefaults()
		return 0
	}

	infile, text, err := cli.ReadInput(flag.Args())

	if err != nil {
		log.Println(err)
		log.Println(usage)
		return 1
	}

	cli.SetLogPrefix(filepath.Base(infile))

	var output io.Writer = os.Stdout

	if outvar != "" {
		file, err := os.Create(outvar)

		if err != nil {
			log.Println("Error creating output file")
			log.Println(err)
			return 1
		}

		defer file.Close()
		output = file
	}

	if err := generate(output, uint32(basevar), text, paramvar); err != nil {
		// Expanded source is not at hand, so positions are reported without
		// the underlined line.
		log.Println(err)

		if outvar != "" {
			os.Remove(outvar)
		}

		return 1
	}

	return 0
}

func main() {
	os.Exit(irisc_gen())
}
