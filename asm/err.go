package asm

import (
	"errors"
	"strconv"
	"strings"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/translate"
)

var f = translate.From

// located renders a message at a source position. The column is shown
// when known.
func located(line int, column int, message string) string {
	if column > 0 {
		return f("%v (%d:%d)", message, line, column)
	}

	return f("line %d: %v", line, message)
}

var (
	// Compile stages
	ErrLexical = errors.New(f("lexical error"))
	ErrSyntax  = errors.New(f("syntax error"))
	ErrLink    = errors.New(f("link error"))
)

// ErrInvalidCharacter is a character that starts no token.
type ErrInvalidCharacter struct {
	Character rune
	Line      int
	Column    int
}

func (err ErrInvalidCharacter) Error() string {
	return f("invalid character %v while lexing (%d:%d)", strconv.QuoteRune(err.Character), err.Line, err.Column)
}

func (err ErrInvalidCharacter) Is(target error) bool {
	return target == ErrLexical
}

// ErrInvalidNumber is a numeric literal that does not fit in 16 bits.
type ErrInvalidNumber struct {
	Text   string
	Line   int
	Column int
}

func (err ErrInvalidNumber) Error() string {
	return f("number '%v' is not a 16-bit value (%d:%d)", err.Text, err.Line, err.Column)
}

func (err ErrInvalidNumber) Is(target error) bool {
	return target == ErrLexical
}

// ErrInvalidToken is a token that may not appear where it was found.
// Received is nil at the end of the token stream.
type ErrInvalidToken struct {
	Expected []TokenKind
	Received *Token
	Line     int
	Column   int
}

func (err ErrInvalidToken) Error() string {
	names := make([]string, 0, len(err.Expected))
	for _, kind := range err.Expected {
		names = append(names, kind.String())
	}

	var expected string
	switch len(names) {
	case 0:
		expected = f("nothing")
	case 1:
		expected = names[0]
	default:
		expected = f("%v or %v", strings.Join(names[:len(names)-1], ", "), names[len(names)-1])
	}

	received := f("nothing")
	if err.Received != nil {
		received = err.Received.String()
	}

	return located(err.Line, err.Column, f("expected %v, received %v", expected, received))
}

func (err ErrInvalidToken) Is(target error) bool {
	return target == ErrSyntax
}

// ErrNumberOutOfRange is a DAT value outside of -999 to 999.
type ErrNumberOutOfRange struct {
	Value  int16
	Line   int
	Column int
}

func (err ErrNumberOutOfRange) Error() string {
	return located(err.Line, err.Column, f("number `%v` out of range, expected a number between -999 and 999 inclusive", strconv.Itoa(int(err.Value))))
}

func (err ErrNumberOutOfRange) Is(target error) bool {
	return target == ErrSyntax
}

// ErrAddressOutOfRange is a direct address outside of 1 to 99.
type ErrAddressOutOfRange struct {
	Value  int16
	Line   int
	Column int
}

func (err ErrAddressOutOfRange) Error() string {
	return located(err.Line, err.Column, f("address `%v` out of range, expected a number between 0 and 100 exclusive", strconv.Itoa(int(err.Value))))
}

func (err ErrAddressOutOfRange) Is(target error) bool {
	return target == ErrSyntax
}

// ErrLabelDuplicate is a label or DAT name defined more than once.
type ErrLabelDuplicate struct {
	Label  string
	Line   int
	Column int
}

func (err ErrLabelDuplicate) Error() string {
	return located(err.Line, err.Column, f("label '%v' duplicated", err.Label))
}

func (err ErrLabelDuplicate) Is(target error) bool {
	return target == ErrSyntax
}

// ErrProgramTooLong is a program needing more cells than memory has.
type ErrProgramTooLong struct {
	Line int
}

func (err ErrProgramTooLong) Error() string {
	return f("line %d: program does not fit in %d memory cells", err.Line, cpu.MEMORY_SIZE)
}

func (err ErrProgramTooLong) Is(target error) bool {
	return target == ErrSyntax
}

// ErrInvalidIdentifier is an operand naming no label.
type ErrInvalidIdentifier struct {
	Identifier string
	LineNo     int
	Column     int
}

func (err ErrInvalidIdentifier) Error() string {
	return located(err.LineNo, err.Column, f("identifier '%v' is not defined", err.Identifier))
}

func (err ErrInvalidIdentifier) Is(target error) bool {
	return target == ErrLink
}
