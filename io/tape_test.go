package io

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Receive(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("12\n\n  -7 \n999\n")}

	for _, want := range []int16{12, -7, 999} {
		value, err := tape.Receive()
		assert.NoError(err)
		assert.Equal(want, value)
	}

	_, err := tape.Receive()
	assert.ErrorIs(err, ErrChannelEmpty)
}

func TestTape_Receive_Invalid(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("1\nabc\n")}

	_, err := tape.Receive()
	assert.NoError(err)

	_, err = tape.Receive()
	var bad ErrTapeValue
	assert.True(errors.As(err, &bad))
	assert.Equal(2, bad.LineNo)
	assert.Equal("abc", bad.Text)
	assert.ErrorIs(err, strconv.ErrSyntax)
}

func TestTape_Receive_NoInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	_, err := tape.Receive()
	assert.ErrorIs(err, ErrChannelEmpty)
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	var buf bytes.Buffer
	tape := &Tape{Output: &buf}

	assert.NoError(tape.Send("5"))
	assert.NoError(tape.Send("-10"))
	assert.Equal("5\n-10\n", buf.String())

	// Output is optional.
	assert.NoError((&Tape{}).Send("1"))
}

func TestRom(t *testing.T) {
	assert := assert.New(t)

	rom := &Rom{Data: []int16{3, 4}}

	for _, want := range []int16{3, 4} {
		value, err := rom.Receive()
		assert.NoError(err)
		assert.Equal(want, value)
	}
	_, err := rom.Receive()
	assert.ErrorIs(err, ErrChannelEmpty)

	assert.NoError(rom.Send("7"))
	assert.Equal([]string{"7"}, rom.Output)

	rom.Rewind()
	assert.Nil(rom.Output)
	value, err := rom.Receive()
	assert.NoError(err)
	assert.Equal(int16(3), value)
}
