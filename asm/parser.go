package asm

import (
	"slices"

	"github.com/ezrec/lmc/cpu"
)

// Operand is an instruction argument before label resolution.
type Operand struct {
	Label  string // Identifier, if set.
	Number int16  // Direct address, if Label is empty.
	Column int    // Source column, 0 if unknown.
}

// IsLabel returns true if the operand names a label.
func (op Operand) IsLabel() bool {
	return len(op.Label) != 0
}

// Instruction is one memory cell worth of program.
type Instruction struct {
	Op      TokenKind // A mnemonic, or TOKEN_DATA.
	Operand Operand   // Argument of a mnemonic that takes one.
	Label   string    // Statement label, or name of a data cell.
	Value   int16     // Initial value of a data cell.
	LineNo  int       // Source line of the statement.
}

// IsData returns true for a data cell.
func (ins Instruction) IsData() bool {
	return ins.Op == TOKEN_DATA
}

// Program is a parsed, not yet linked, program.
type Program struct {
	Labels       map[string]uint8 // Slot of every label and data name.
	Instructions []Instruction    // One per memory slot, in order.
}

// LineNo returns the source line of a memory slot, or 0 if the slot is
// unused.
func (prog *Program) LineNo(slot int) int {
	if slot < 0 || slot >= len(prog.Instructions) {
		return 0
	}

	return prog.Instructions[slot].LineNo
}

// parser holds the state of a parse over an immutable token list.
type parser struct {
	tokens  []Token
	pos     int
	program *Program
}

// peekAt returns the token at an offset from the cursor, or nil past the end.
func (p *parser) peekAt(offset int) *Token {
	n := p.pos + offset
	if n >= len(p.tokens) {
		return nil
	}

	return &p.tokens[n]
}

// lastLine returns the line of the final token.
func (p *parser) lastLine() int {
	if len(p.tokens) == 0 {
		return 1
	}

	return p.tokens[len(p.tokens)-1].Line
}

// invalid returns an ErrInvalidToken for a token (nil at end of stream).
func (p *parser) invalid(tok *Token, expected ...TokenKind) error {
	if tok == nil {
		return ErrInvalidToken{Expected: expected, Line: p.lastLine()}
	}

	return ErrInvalidToken{Expected: expected, Received: tok, Line: tok.Line, Column: tok.Column}
}

// isStatement returns true if the token can follow a label.
func isStatement(tok *Token) bool {
	return tok != nil && (tok.Kind.IsMnemonic() || tok.Kind == TOKEN_DATA)
}

// collectLabels binds every statement label to the slot of its statement.
func (p *parser) collectLabels() (err error) {
	slot := 0
	atStart := true
	for n := range p.tokens {
		tok := &p.tokens[n]
		if tok.Kind == TOKEN_NEWLINE {
			atStart = true
			continue
		}
		if !atStart {
			continue
		}
		atStart = false

		var next *Token
		if n+1 < len(p.tokens) {
			next = &p.tokens[n+1]
		}

		switch {
		case tok.Kind == TOKEN_IDENTIFIER && isStatement(next):
			if _, found := p.program.Labels[tok.Text]; found {
				err = ErrLabelDuplicate{Label: tok.Text, Line: tok.Line, Column: tok.Column}
				return
			}
			if slot < cpu.MEMORY_SIZE {
				p.program.Labels[tok.Text] = uint8(slot)
			}
			slot++
		case tok.Kind.IsMnemonic():
			slot++
		}
	}

	return
}

// emit appends an instruction to the program.
func (p *parser) emit(ins Instruction) (err error) {
	if len(p.program.Instructions) >= cpu.MEMORY_SIZE {
		err = ErrProgramTooLong{Line: ins.LineNo}
		return
	}

	p.program.Instructions = append(p.program.Instructions, ins)
	return
}

// expectEnd checks that the statement ends with a newline or end of stream.
func (p *parser) expectEnd() (err error) {
	tok := p.peekAt(0)
	if tok != nil && tok.Kind != TOKEN_NEWLINE {
		err = p.invalid(tok, TOKEN_NEWLINE)
	}

	return
}

// parseInstruction parses a mnemonic and its operand.
func (p *parser) parseInstruction(label string) (err error) {
	tok := p.peekAt(0)
	ins := Instruction{Op: tok.Kind, Label: label, LineNo: tok.Line}
	p.pos++

	if tok.Kind.HasOperand() {
		arg := p.peekAt(0)
		switch {
		case arg != nil && arg.Kind == TOKEN_IDENTIFIER:
			ins.Operand.Label = arg.Text
			ins.Operand.Column = arg.Column
		case arg != nil && arg.Kind == TOKEN_NUMBER:
			if arg.Number <= 0 || arg.Number >= cpu.MEMORY_SIZE {
				err = ErrAddressOutOfRange{Value: arg.Number, Line: arg.Line, Column: arg.Column}
				return
			}
			ins.Operand.Number = arg.Number
			ins.Operand.Column = arg.Column
		default:
			err = p.invalid(arg, TOKEN_IDENTIFIER, TOKEN_NUMBER)
			return
		}
		p.pos++
	}

	err = p.expectEnd()
	if err != nil {
		return
	}

	err = p.emit(ins)
	return
}

// parseData parses 'label DAT [number]'.
func (p *parser) parseData() (err error) {
	label := p.peekAt(0)
	ins := Instruction{Op: TOKEN_DATA, Label: label.Text, LineNo: label.Line}
	p.pos += 2

	arg := p.peekAt(0)
	switch {
	case arg == nil, arg.Kind == TOKEN_NEWLINE:
	case arg.Kind == TOKEN_NUMBER:
		if arg.Number < cpu.DATA_MIN || arg.Number > cpu.DATA_MAX {
			err = ErrNumberOutOfRange{Value: arg.Number, Line: arg.Line, Column: arg.Column}
			return
		}
		ins.Value = arg.Number
		p.pos++
	default:
		err = p.invalid(arg, TOKEN_NUMBER)
		return
	}

	err = p.expectEnd()
	if err != nil {
		return
	}

	err = p.emit(ins)
	return
}

// parseLabeled parses a statement that starts with an identifier.
func (p *parser) parseLabeled() (err error) {
	label := p.peekAt(0)
	next := p.peekAt(1)

	switch {
	case next != nil && next.Kind == TOKEN_DATA:
		err = p.parseData()
	case next != nil && next.Kind.IsMnemonic():
		p.pos++
		err = p.parseInstruction(label.Text)
	default:
		err = p.invalid(next, append(slices.Clone(instructionKinds), TOKEN_DATA)...)
	}

	return
}

// Parse converts a token list into a Program.
//
// Labels are collected in a first pass, so an operand may name a label
// declared further down. Operands are left unresolved; see Generate.
func Parse(tokens []Token) (prog *Program, err error) {
	p := &parser{
		tokens: tokens,
		program: &Program{
			Labels: map[string]uint8{},
		},
	}

	err = p.collectLabels()
	if err != nil {
		return
	}

	for p.pos < len(p.tokens) {
		tok := p.peekAt(0)
		switch {
		case tok.Kind == TOKEN_NEWLINE:
			p.pos++
		case tok.Kind.IsMnemonic():
			err = p.parseInstruction("")
		case tok.Kind == TOKEN_IDENTIFIER:
			err = p.parseLabeled()
		default:
			err = p.invalid(tok, instructionKinds...)
		}
		if err != nil {
			return
		}
	}

	prog = p.program
	return
}
