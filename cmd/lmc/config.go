package main

import (
	"log"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/ezrec/lmc/config"
)

var configSave bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		err = toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
		if err != nil || !configSave {
			return
		}

		path := configPath
		if len(path) == 0 {
			path, err = config.DefaultPath()
			if err != nil {
				return
			}
		}

		err = cfg.Save(path)
		if err == nil && cfg.Verbose {
			log.Print(f("saved %v", path))
		}

		return
	},
}

func init() {
	configCmd.Flags().BoolVar(&configSave, "save", false, "save to the configuration file")
	rootCmd.AddCommand(configCmd)
}
