package emulator

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Session errors
	ErrRuntimeBusy   = errors.New(f("runtime busy"))
	ErrRuntimeClosed = errors.New(f("runtime closed"))
	ErrStepLimit     = errors.New(f("step limit reached; does the program halt?"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Address int
	LineNo  int
	Err     error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("address %02d %v", err.Address, err.Err)
	}
	return f("line %d (address %02d) %v", err.LineNo, err.Address, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
