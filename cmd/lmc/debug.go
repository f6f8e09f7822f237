package main

import (
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ezrec/lmc/emulator"
	"github.com/ezrec/lmc/tui"
)

var debugCmd = &cobra.Command{
	Use:   "debug [FILE]",
	Short: "Edit, assemble and step a program in the terminal debugger",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		// The debugger owns the terminal, so verbose logging stays off.
		rt := emulator.NewRuntime(emulator.NewEmulator(), 0)
		dbg := tui.NewDebugger(rt, cfg.RunSpeed)

		if len(args) != 0 {
			var source string
			source, err = readSource(args[0])
			if err != nil {
				return
			}
			dbg.SetSource(source)
			err = dbg.Assemble(source)
			if err != nil {
				return
			}
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		err = dbg.Run(ctx)
		return
	},
}

func init() {
	rootCmd.AddCommand(debugCmd)
}
