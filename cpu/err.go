package cpu

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Runtime errors
	ErrExpectedInstruction = errors.New(f("ran into data memory whilst running code; did you forget to halt?"))
	ErrExpectedData        = errors.New(f("instruction addresses code, expected a data cell"))
	ErrOpcodeReserved      = errors.New(f("reserved opcode"))
	ErrAddressRange        = errors.New(f("address outside of memory"))
)
