// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"

	"github.com/ezrec/lmc/config"
	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	configPath string
	verbose    bool
	cfg        = config.Default()
)

var rootCmd = &cobra.Command{
	Use:           "lmc",
	Short:         "Little Man Computer assembler, emulator and debugger",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err = loadConfig(configPath, ".env")
		if err != nil {
			return
		}

		if verbose {
			cfg.Verbose = true
		}

		err = translate.SetLanguage(cfg.Language)
		return
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose mode")
}

// loadConfig reads the configuration file, then applies the LMC_* settings
// of the dotenv file and the environment. An empty path selects the
// default configuration file.
func loadConfig(path string, dotenv string) (cfg *config.Config, err error) {
	if len(path) == 0 {
		path, err = config.DefaultPath()
		if err != nil {
			return
		}
	}

	cfg, err = config.Load(path)
	if err != nil {
		return
	}

	env, err := config.Environ(dotenv)
	if err != nil {
		return
	}

	err = cfg.Apply(env)
	return
}

// readSource reads a program file, or standard input for "-".
func readSource(name string) (source string, err error) {
	var data []byte
	if name == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return
	}

	source = string(data)
	return
}

// openInput opens a file for reading, or standard input for "-".
func openInput(name string) (r io.ReadCloser, err error) {
	if name == "-" {
		r = io.NopCloser(os.Stdin)
		return
	}

	r, err = os.Open(name)
	return
}

// openOutput creates a file for writing, or standard output for "-".
func openOutput(name string) (w io.WriteCloser, err error) {
	if name == "-" {
		w = nopWriteCloser{os.Stdout}
		return
	}

	w, err = os.Create(name)
	return
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// resolveExercise finds an exercise file. Relative names that do not
// exist are looked up in the lessons directory.
func resolveExercise(name string, lessons string) string {
	if filepath.IsAbs(name) || len(lessons) == 0 {
		return name
	}

	if _, err := os.Stat(name); err == nil {
		return name
	}

	return filepath.Join(lessons, name)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("lmc: ")

	err := rootCmd.Execute()
	if err != nil {
		log.Print(err)
		atexit.Exit(1)
	}

	atexit.Exit(0)
}
