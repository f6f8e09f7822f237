package config

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Configuration errors
	ErrRunSpeed = errors.New(f("run speed must be slow, medium, fast or instant"))
	ErrMaxSteps = errors.New(f("max steps must not be negative"))
)

// ErrEnv is an environment variable with an unusable value.
type ErrEnv struct {
	Name  string
	Value string
	Err   error
}

func (err ErrEnv) Error() string {
	return f("%v='%v' %v", err.Name, err.Value, err.Err)
}

func (err ErrEnv) Unwrap() error {
	return err.Err
}
