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
	"encoding/gob"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/lassandro/irisc/pkg/assembler"
	"github.com/lassandro/irisc/pkg/cli"
	"github.com/lassandro/irisc/pkg/listing"
)

var helpvar bool
var debugvar bool
var listvar bool
var outvar string
var basevar cli.AddressFlag

const usage = "irisc-asm [-base addr] [-debug] [-list] [-out outfile] [filename]"

func init() {
	log.SetFlags(0)
	log.SetOutput(os.Stderr)
}

func init() {
	flag.BoolVar(&helpvar, "help", false, "Displays command usage")
	flag.BoolVar(
		&debugvar, "debug", false,
		"Specifies whether to generate debugging information as a symbol "+
			"table. The table will use the output filename with extension "+
			"'.irdb'",
	)
	flag.BoolVar(
		&listvar, "list", false,
		"Prints the address, encoding and source of every word to stdout",
	)
	flag.StringVar(
		&outvar, "out", "",
		"Specifies a precise name for the output file, "+
			"overriding the default means of determining it",
	)
	flag.Var(
		&basevar, "base",
		"Address of the first instruction, decimal or 0x-prefixed hexadecimal",
	)
}

func irisc_asm() int {
	flag.Parse()

	if helpvar {
		fmt.Println(usage)
		flag.PrintDefaults()
		return 0
	}

	infile, source, err := cli.ReadInput(flag.Args())

	if err != nil {
		log.Println(err)
		log.Println(usage)
		return 1
	}

	cli.SetLogPrefix(filepath.Base(infile))

	if outvar == "" {
		outvar = cli.OutputName(infile, ".bin")
	}

	symtable := assembler.NewSymTable("")

	if infile != cli.StdinName {
		if symtable.Source, err = filepath.Abs(infile); err != nil {
			log.Println(err)
			symtable.Source = ""
		}
	}

	base := uint32(basevar)
	code, _, err := assembler.AssembleSource(base, source, symtable)

	if err != nil {
		for _, message := range cli.Diagnose(err, source, cli.IsTerminal(os.Stderr)) {
			log.Println(message)
		}

		return 1
	}

	if err := os.WriteFile(outvar, code, 0666); err != nil {
		log.Println("Error writing output file")
		log.Println(err)
		return 1
	}

	if debugvar {
		if err := writeSymTable(outvar, symtable); err != nil {
			log.Println("Error writing symbol table")
			log.Println(err)
			return 1
		}
	}

	if listvar {
		color := cli.IsTerminal(os.Stdout)

		if err := listing.Write(os.Stdout, code, base, source, symtable, color); err != nil {
			log.Println(err)
			return 1
		}
	}

	return 0
}

// Writes symtable next to the binary at outfile, with extension '.irdb'.
func writeSymTable(outfile string, symtable *assembler.SymTable) error {
	filename := filepath.Join(filepath.Dir(outfile), cli.OutputName(outfile, ".irdb"))

	file, err := os.Create(filename)

	if err != nil {
		return err
	}

	if err := gob.NewEncoder(file).Encode(symtable); err != nil {
		file.Close()
		return err
	}

	return file.Close()
}

func main() {
	os.Exit(irisc_asm())
}
