package asm

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/lmc/cpu"
)

func TestGenerate(t *testing.T) {
	assert := assert.New(t)

	image, err := Compile("loop ADD one\nBRA loop\none DAT 1\n")
	assert.NoError(err)

	var expected cpu.Image
	expected[0] = cpu.MakeInstruction(cpu.OP_ADD, 2)
	expected[1] = cpu.MakeInstruction(cpu.OP_BRA, 0)
	expected[2] = cpu.MakeData(1)
	assert.Equal(expected, image)

	for slot := 3; slot < cpu.MEMORY_SIZE; slot++ {
		assert.Equal(cpu.MakeData(0), image[slot])
	}
}

func TestGenerateOpcodes(t *testing.T) {
	assert := assert.New(t)

	source := `HLT
ADD x
SUB x
STA x
LDA x
BRA x
BRZ x
BRP x
INP
OUT
x DAT -5
`
	image, err := Compile(source)
	assert.NoError(err)

	words := []int{}
	for _, loc := range image[:11] {
		words = append(words, loc.Word())
	}
	assert.Equal([]int{0, 110, 210, 310, 510, 610, 710, 810, 901, 902, -5}, words)
}

func TestGenerateDirectAddress(t *testing.T) {
	assert := assert.New(t)

	image, err := Compile("ADD 5\nBRA 99")
	assert.NoError(err)
	assert.Equal(cpu.MakeInstruction(cpu.OP_ADD, 5), image[0])
	assert.Equal(cpu.MakeInstruction(cpu.OP_BRA, 99), image[1])
}

func TestGenerateInvalidIdentifier(t *testing.T) {
	assert := assert.New(t)

	image, err := Compile("HLT\nLDA nowhere\n")
	assert.Equal(ErrInvalidIdentifier{Identifier: "nowhere", LineNo: 2, Column: 5}, err)
	assert.ErrorIs(err, ErrLink)
	assert.Equal(cpu.Image{}, image)
}

func TestGenerateDataFallback(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Labels: map[string]uint8{},
		Instructions: []Instruction{
			{Op: TOKEN_LOAD, Operand: Operand{Label: "value"}},
			{Op: TOKEN_HALT},
			{Op: TOKEN_DATA, Label: "value", Value: 42},
		},
	}

	image, err := Generate(prog)
	assert.NoError(err)
	assert.Equal(cpu.MakeInstruction(cpu.OP_LDA, 2), image[0])
	assert.Equal(cpu.MakeData(42), image[2])
}

func TestGenerateNarrow(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Instructions: []Instruction{
			{Op: TOKEN_BRANCH, Operand: Operand{Number: 123}},
			{Op: TOKEN_BRANCH, Operand: Operand{Number: -1}},
		},
	}

	image, err := Generate(prog)
	assert.NoError(err)
	assert.Equal(uint8(23), image[0].Operand)
	assert.Equal(uint8(99), image[1].Operand)
}

func TestGenerateDeterministic(t *testing.T) {
	assert := assert.New(t)

	tokens, err := Lex("a LDA b\nSUB c\nBRP a\nHLT\nb DAT 9\nc DAT 3\n")
	assert.NoError(err)
	prog, err := Parse(tokens)
	assert.NoError(err)

	first, err := Generate(prog)
	assert.NoError(err)
	second, err := Generate(prog)
	assert.NoError(err)
	assert.Equal(first, second)
}

func TestGenerateTooLong(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{Instructions: make([]Instruction, cpu.MEMORY_SIZE+1)}
	for n := range prog.Instructions {
		prog.Instructions[n] = Instruction{Op: TOKEN_OUTPUT, LineNo: n + 1}
	}

	_, err := Generate(prog)
	assert.Equal(ErrProgramTooLong{Line: 101}, err)
}
