package asm

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strings"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/internal"
)

// Disassemble yields every non-empty cell of an image.
func Disassemble(image *cpu.Image) iter.Seq2[int, cpu.Location] {
	return internal.IterSeq2Filter(slices.All(image[:]), func(_ int, loc cpu.Location) bool {
		return loc != cpu.Location{}
	})
}

// WriteListing writes a listing of an image: slot, machine word,
// disassembly and, when prog and lines are supplied, the source line.
func WriteListing(w io.Writer, image *cpu.Image, prog *Program, lines []string) (err error) {
	last := -1
	if prog != nil {
		last = len(prog.Instructions) - 1
	}
	for slot, loc := range slices.All(image[:]) {
		if slot > last && loc == (cpu.Location{}) {
			continue
		}

		var text string
		if prog != nil {
			lineNo := prog.LineNo(slot)
			if lineNo > 0 && lineNo <= len(lines) {
				text = strings.TrimSpace(lines[lineNo-1])
			}
		}

		_, err = fmt.Fprintf(w, "%02d  %4v  %-8v  %v\n", slot, loc, loc.Mnemonic(), text)
		if err != nil {
			return
		}
	}

	return
}
