// Package config loads and saves the user configuration.
//
// The configuration is a TOML file, by default config.toml in the lmc
// directory of the user configuration directory. Values from a .env file
// and from LMC_* environment variables override the file.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Environment variables that override the configuration file.
const (
	ENV_RUN_SPEED         = "LMC_RUN_SPEED"
	ENV_MAX_STEPS         = "LMC_MAX_STEPS"
	ENV_LESSONS_DIRECTORY = "LMC_LESSONS_DIRECTORY"
	ENV_LANGUAGE          = "LMC_LANGUAGE"
	ENV_VERBOSE           = "LMC_VERBOSE"
)

// Config is the user configuration.
type Config struct {
	RunSpeed         RunSpeed `toml:"run_speed"`         // Debugger run mode pace.
	MaxSteps         int      `toml:"max_steps"`         // Headless step budget, 0 for none.
	LessonsDirectory string   `toml:"lessons_directory"` // Exercise file directory.
	Language         string   `toml:"language"`          // Message language, empty to detect.
	Verbose          bool     `toml:"verbose"`           // Verbose logging.
}

// Default returns the default configuration.
func Default() (cfg *Config) {
	cfg = &Config{
		RunSpeed:         RUN_SPEED_MEDIUM,
		MaxSteps:         10000,
		LessonsDirectory: "lessons",
	}

	return
}

// DefaultPath returns the default configuration file path.
func DefaultPath() (path string, err error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return
	}

	path = filepath.Join(dir, "lmc", "config.toml")
	return
}

// Load reads a configuration file. A missing file yields the defaults.
func Load(path string) (cfg *Config, err error) {
	cfg = Default()

	_, err = toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		err = nil
	}
	if err != nil {
		cfg = nil
		return
	}

	err = cfg.Validate()
	if err != nil {
		cfg = nil
	}

	return
}

// Validate checks the configuration values.
func (cfg *Config) Validate() (err error) {
	if cfg.MaxSteps < 0 {
		err = ErrMaxSteps
		return
	}

	_, err = cfg.RunSpeed.MarshalText()
	return
}

// Save writes the configuration file, creating its directory.
func (cfg *Config) Save(path string) (err error) {
	err = os.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return
	}

	file, err := os.Create(path)
	if err != nil {
		return
	}
	defer func() {
		cerr := file.Close()
		if err == nil {
			err = cerr
		}
	}()

	err = toml.NewEncoder(file).Encode(cfg)
	return
}

// Environ returns the LMC_* settings of a .env file, overridden by the
// process environment. A missing .env file is ignored.
func Environ(dotenv string) (env map[string]string, err error) {
	env = map[string]string{}

	if len(dotenv) != 0 {
		var values map[string]string
		values, err = godotenv.Read(dotenv)
		if errors.Is(err, fs.ErrNotExist) {
			err = nil
		}
		if err != nil {
			env = nil
			return
		}
		for key, value := range values {
			env[key] = value
		}
	}

	for _, key := range []string{ENV_RUN_SPEED, ENV_MAX_STEPS, ENV_LESSONS_DIRECTORY, ENV_LANGUAGE, ENV_VERBOSE} {
		if value, ok := os.LookupEnv(key); ok {
			env[key] = value
		}
	}

	return
}

// Apply overrides the configuration with LMC_* settings.
func (cfg *Config) Apply(env map[string]string) (err error) {
	if value, ok := env[ENV_RUN_SPEED]; ok {
		err = cfg.RunSpeed.UnmarshalText([]byte(value))
		if err != nil {
			err = ErrEnv{Name: ENV_RUN_SPEED, Value: value, Err: err}
			return
		}
	}

	if value, ok := env[ENV_MAX_STEPS]; ok {
		var n int
		n, err = strconv.Atoi(value)
		if err == nil && n < 0 {
			err = ErrMaxSteps
		}
		if err != nil {
			err = ErrEnv{Name: ENV_MAX_STEPS, Value: value, Err: err}
			return
		}
		cfg.MaxSteps = n
	}

	if value, ok := env[ENV_LESSONS_DIRECTORY]; ok {
		cfg.LessonsDirectory = value
	}

	if value, ok := env[ENV_LANGUAGE]; ok {
		cfg.Language = value
	}

	if value, ok := env[ENV_VERBOSE]; ok {
		cfg.Verbose, err = strconv.ParseBool(value)
		if err != nil {
			err = ErrEnv{Name: ENV_VERBOSE, Value: value, Err: err}
			return
		}
	}

	return
}
