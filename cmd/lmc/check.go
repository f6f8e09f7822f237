package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ezrec/lmc/asm"
	"github.com/ezrec/lmc/exercise"
)

var ErrCheckFailed = errors.New(f("exercise failed"))

var checkCmd = &cobra.Command{
	Use:   "check FILE EXERCISE",
	Short: "Check a program against the cases of an exercise",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		source, err := readSource(args[0])
		if err != nil {
			return
		}

		assembler := &asm.Assembler{Verbose: cfg.Verbose}
		image, err := assembler.Assemble(strings.NewReader(source))
		if err != nil {
			return
		}

		ex, err := exercise.Load(resolveExercise(args[1], cfg.LessonsDirectory), nil)
		if err != nil {
			return
		}
		ex.Verbose = cfg.Verbose

		failed := 0
		results := ex.Check(image, assembler.Program)
		for _, res := range results {
			fmt.Fprintln(cmd.OutOrStdout(), res.String())
			if !res.Passed() {
				failed++
			}
		}

		if failed > 0 {
			err = fmt.Errorf("%w: %v", ErrCheckFailed,
				f("%v of %v cases", strconv.Itoa(failed), strconv.Itoa(len(results))))
		}

		return
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
