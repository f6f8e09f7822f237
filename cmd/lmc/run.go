package main

import (
	"log"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ezrec/lmc/emulator"
	lmcio "github.com/ezrec/lmc/io"
)

var (
	runInput    string
	runOutput   string
	runMaxSteps int
)

var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a program, with input and output on tape",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		source, err := readSource(args[0])
		if err != nil {
			return
		}

		limit := cfg.MaxSteps
		if cmd.Flags().Changed("max-steps") {
			limit = runMaxSteps
		}

		emu := emulator.NewEmulator()
		emu.Verbose = cfg.Verbose
		err = emu.Assemble(source)
		if err != nil {
			return
		}

		r, err := openInput(runInput)
		if err != nil {
			return
		}
		defer r.Close()

		w, err := openOutput(runOutput)
		if err != nil {
			return
		}
		defer w.Close()

		steps, err := emu.Run(&lmcio.Tape{Input: r, Output: w}, limit)
		if cfg.Verbose {
			log.Print(f("%v: %v steps", args[0], strconv.Itoa(steps)))
		}

		return
	},
}

func init() {
	runCmd.Flags().StringVarP(&runInput, "input", "i", "-", "tape input")
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "-", "tape output")
	runCmd.Flags().IntVar(&runMaxSteps, "max-steps", 0, "step limit, 0 for none (default from configuration)")
	rootCmd.AddCommand(runCmd)
}
