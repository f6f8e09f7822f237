package exercise

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Exercise file errors
	ErrNoCases     = errors.New(f("no cases defined"))
	ErrNotList     = errors.New(f("expected a list"))
	ErrNotDict     = errors.New(f("expected a dict"))
	ErrNotCallable = errors.New(f("expected a function"))
	ErrValueRange  = errors.New(f("value out of range"))
	ErrMaxSteps    = errors.New(f("step limit must be positive"))
	ErrNoOutput    = errors.New(f("case has no output, and no expect() function is defined"))
)

// ErrExercise locates an error in an exercise file.
type ErrExercise struct {
	Filename string
	Field    string
	Err      error
}

func (err ErrExercise) Error() string {
	return f("%v: %v: %v", err.Filename, err.Field, err.Err)
}

func (err ErrExercise) Unwrap() error {
	return err.Err
}
