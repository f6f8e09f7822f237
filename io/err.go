package io

import (
	"errors"

	"github.com/ezrec/lmc/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelEmpty = errors.New(f("input requested, but no input remains"))
)

// ErrTapeValue is an input line that is not a signed decimal value.
type ErrTapeValue struct {
	LineNo int
	Text   string
	Err    error
}

func (err ErrTapeValue) Error() string {
	return f("input line %d '%v' %v", err.LineNo, err.Text, err.Err)
}

func (err ErrTapeValue) Unwrap() error {
	return err.Err
}
