package main

import (
	"bytes"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/lmc/asm"
	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/internal"
)

var asmOutput string

var asmCmd = &cobra.Command{
	Use:   "asm FILE",
	Short: "Assemble a program and write its listing",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		source, err := readSource(args[0])
		if err != nil {
			return
		}

		assembler := &asm.Assembler{Verbose: cfg.Verbose}
		image, err := assembler.Assemble(bytes.NewBufferString(source))
		if err != nil {
			return
		}

		w, err := openOutput(asmOutput)
		if err != nil {
			return
		}
		defer w.Close()

		err = asm.WriteListing(w, &image, assembler.Program, strings.Split(source, "\n"))
		if err != nil {
			return
		}

		if cfg.Verbose {
			used := internal.IterSeq2Count(asm.Disassemble(&image))
			log.Print(f("%v: %v of %v cells used", args[0], strconv.Itoa(used), strconv.Itoa(cpu.MEMORY_SIZE)))
		}

		return
	},
}

func init() {
	asmCmd.Flags().StringVarP(&asmOutput, "output", "o", "-", "listing output")
	rootCmd.AddCommand(asmCmd)
}
