// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package asm

import (
	"io"
	"log"
	"maps"
	"slices"

	"github.com/ezrec/lmc/cpu"
)

// Assembler is a two pass assembler for the Little Man Computer.
type Assembler struct {
	Verbose bool     // If set, verbosely logs the assembler actions.
	Program *Program // Last successfully parsed program.
}

// Parse reads source text and parses it into a Program.
func (asm *Assembler) Parse(r io.Reader) (prog *Program, err error) {
	source, err := io.ReadAll(r)
	if err != nil {
		return
	}

	tokens, err := Lex(string(source))
	if err != nil {
		return
	}

	if asm.Verbose {
		line := 0
		for _, tok := range tokens {
			if tok.Line != line {
				line = tok.Line
				log.Printf("%d:", line)
			}
			log.Printf("  %d: %v", tok.Column, tok)
		}
	}

	prog, err = Parse(tokens)
	if err != nil {
		return
	}

	if asm.Verbose {
		for _, label := range slices.Sorted(maps.Keys(prog.Labels)) {
			log.Printf("label %v: %02d", label, prog.Labels[label])
		}
	}

	asm.Program = prog
	return
}

// Link generates the memory image of the last parsed program.
func (asm *Assembler) Link() (image cpu.Image, err error) {
	if asm.Program == nil {
		asm.Program = &Program{}
	}

	image, err = Generate(asm.Program)
	if err != nil {
		return
	}

	if asm.Verbose {
		for slot, loc := range Disassemble(&image) {
			log.Printf("%02d: %v %v", slot, loc, loc.Mnemonic())
		}
	}

	return
}

// Assemble parses and links source text.
func (asm *Assembler) Assemble(r io.Reader) (image cpu.Image, err error) {
	_, err = asm.Parse(r)
	if err != nil {
		return
	}

	image, err = asm.Link()
	return
}

// Compile assembles source text into a memory image.
func Compile(source string) (image cpu.Image, err error) {
	tokens, err := Lex(source)
	if err != nil {
		return
	}

	prog, err := Parse(tokens)
	if err != nil {
		return
	}

	image, err = Generate(prog)
	return
}
