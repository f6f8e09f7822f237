package asm

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzLex(f *testing.F) {
	f.Add("loop ADD one\nBRA loop\none DAT 1\n")
	f.Add("INP\nOUT\nHLT")
	f.Add("x DAT -999")
	f.Add("LDA 10\nSTA ?")
	f.Add("A DAT 99999")

	f.Fuzz(func(t *testing.T, source string) {
		assert := assert.New(t)

		tokens, err := Lex(source)
		if err != nil {
			assert.True(errors.Is(err, ErrLexical), "%v", err)
			assert.Nil(tokens)
			return
		}

		again, err := Lex(source)
		assert.NoError(err)
		assert.Equal(tokens, again)

		line := 1
		for _, tok := range tokens {
			assert.GreaterOrEqual(tok.Line, line)
			assert.GreaterOrEqual(tok.Column, 1)
			line = tok.Line
		}

		// Parsing and generating must never panic.
		prog, err := Parse(tokens)
		if err != nil {
			return
		}
		_, _ = Generate(prog)
	})
}
