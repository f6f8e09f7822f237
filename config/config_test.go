package config

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunSpeed(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		speed    RunSpeed
		name     string
		interval time.Duration
	}){
		{RUN_SPEED_SLOW, "slow", time.Second},
		{RUN_SPEED_MEDIUM, "medium", 250 * time.Millisecond},
		{RUN_SPEED_FAST, "fast", 100 * time.Millisecond},
		{RUN_SPEED_INSTANT, "instant", 0},
	}

	for _, entry := range table {
		assert.Equal(entry.interval, entry.speed.Interval(), entry.name)

		text, err := entry.speed.MarshalText()
		assert.NoError(err)
		assert.Equal(entry.name, string(text))

		var speed RunSpeed
		assert.NoError(speed.UnmarshalText([]byte(" " + entry.name + " ")))
		assert.Equal(entry.speed, speed)
	}

	var speed RunSpeed
	assert.NoError(speed.UnmarshalText([]byte("FAST")))
	assert.Equal(RUN_SPEED_FAST, speed)

	assert.ErrorIs(speed.UnmarshalText([]byte("warp")), ErrRunSpeed)
	_, err := RunSpeed(9).MarshalText()
	assert.ErrorIs(err, ErrRunSpeed)
}

func TestLoadMissing(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.NoError(err)
	assert.Equal(Default(), cfg)
}

func TestSaveLoad(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "lmc", "config.toml")

	cfg := Default()
	cfg.RunSpeed = RUN_SPEED_INSTANT
	cfg.MaxSteps = 42
	cfg.Language = "fr"
	cfg.Verbose = true
	require.NoError(t, cfg.Save(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(string(data), `run_speed = "instant"`)

	loaded, err := Load(path)
	assert.NoError(err)
	assert.Equal(cfg, loaded)
}

func TestLoadInvalid(t *testing.T) {
	assert := assert.New(t)

	dir := t.TempDir()

	table := []string{
		`run_speed = "warp"`,
		`max_steps = -1`,
		`max_steps = "many"`,
		`run_speed = `,
	}

	for n, text := range table {
		path := filepath.Join(dir, strconv.Itoa(n)+".toml")
		require.NoError(t, os.WriteFile(path, []byte(text), 0o644))

		cfg, err := Load(path)
		assert.Error(err, text)
		assert.Nil(cfg, text)
	}
}

func TestEnviron(t *testing.T) {
	assert := assert.New(t)

	dotenv := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("LMC_RUN_SPEED=slow\nLMC_MAX_STEPS=5\nOTHER=1\n"), 0o644))

	t.Setenv(ENV_MAX_STEPS, "7")
	t.Setenv(ENV_VERBOSE, "true")

	env, err := Environ(dotenv)
	assert.NoError(err)
	assert.Equal("slow", env[ENV_RUN_SPEED])
	assert.Equal("7", env[ENV_MAX_STEPS])
	assert.Equal("true", env[ENV_VERBOSE])

	// A missing .env file is not an error.
	env, err = Environ(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(err)
	assert.Equal("7", env[ENV_MAX_STEPS])
}

func TestApply(t *testing.T) {
	assert := assert.New(t)

	cfg := Default()
	err := cfg.Apply(map[string]string{
		ENV_RUN_SPEED:         "fast",
		ENV_MAX_STEPS:         "123",
		ENV_LESSONS_DIRECTORY: "/tmp/lessons",
		ENV_LANGUAGE:          "de",
		ENV_VERBOSE:           "1",
	})
	assert.NoError(err)
	assert.Equal(&Config{
		RunSpeed:         RUN_SPEED_FAST,
		MaxSteps:         123,
		LessonsDirectory: "/tmp/lessons",
		Language:         "de",
		Verbose:          true,
	}, cfg)

	table := []map[string]string{
		{ENV_RUN_SPEED: "warp"},
		{ENV_MAX_STEPS: "lots"},
		{ENV_MAX_STEPS: "-5"},
		{ENV_VERBOSE: "maybe"},
	}

	for _, env := range table {
		err := Default().Apply(env)
		var bad ErrEnv
		assert.ErrorAs(err, &bad, "%v", env)
	}
}

func TestDefaultPath(t *testing.T) {
	assert := assert.New(t)

	t.Setenv("XDG_CONFIG_HOME", "/xdg")
	t.Setenv("HOME", "/home/user")
	path, err := DefaultPath()
	if err != nil {
		t.Skip(err)
	}
	assert.Equal("config.toml", filepath.Base(path))
	assert.Equal("lmc", filepath.Base(filepath.Dir(path)))
}
