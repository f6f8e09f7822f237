package asm

import (
	"fmt"
	"strings"
)

// TokenKind is the lexical class of a token.
type TokenKind int

//go:generate go tool stringer -linecomment -type=TokenKind
const (
	TOKEN_HALT            = TokenKind(iota) // HLT
	TOKEN_ADD                               // ADD
	TOKEN_SUB                               // SUB
	TOKEN_STORE                             // STA
	TOKEN_LOAD                              // LDA
	TOKEN_BRANCH                            // BRA
	TOKEN_BRANCH_ZERO                       // BRZ
	TOKEN_BRANCH_POSITIVE                   // BRP
	TOKEN_INPUT                             // INP
	TOKEN_OUTPUT                            // OUT
	TOKEN_DATA                              // DAT
	TOKEN_NUMBER                            // number
	TOKEN_IDENTIFIER                        // identifier
	TOKEN_NEWLINE                           // newline
)

// Every mnemonic that may start a statement.
var instructionKinds = []TokenKind{
	TOKEN_HALT,
	TOKEN_ADD,
	TOKEN_SUB,
	TOKEN_STORE,
	TOKEN_LOAD,
	TOKEN_BRANCH,
	TOKEN_BRANCH_ZERO,
	TOKEN_BRANCH_POSITIVE,
	TOKEN_INPUT,
	TOKEN_OUTPUT,
}

// keywords maps upper case words to their token kinds.
var keywords = map[string]TokenKind{
	"HLT": TOKEN_HALT,
	"COB": TOKEN_HALT,
	"ADD": TOKEN_ADD,
	"SUB": TOKEN_SUB,
	"STA": TOKEN_STORE,
	"STO": TOKEN_STORE,
	"LDA": TOKEN_LOAD,
	"BRA": TOKEN_BRANCH,
	"BRZ": TOKEN_BRANCH_ZERO,
	"BRP": TOKEN_BRANCH_POSITIVE,
	"INP": TOKEN_INPUT,
	"OUT": TOKEN_OUTPUT,
	"DAT": TOKEN_DATA,
}

// IsMnemonic returns true if the kind is an instruction mnemonic.
func (kind TokenKind) IsMnemonic() bool {
	return kind >= TOKEN_HALT && kind <= TOKEN_OUTPUT
}

// HasOperand returns true if the mnemonic takes an address operand.
func (kind TokenKind) HasOperand() bool {
	return kind >= TOKEN_ADD && kind <= TOKEN_BRANCH_POSITIVE
}

// Token is a single lexical unit.
type Token struct {
	Kind   TokenKind
	Number int16  // Value of a TOKEN_NUMBER.
	Text   string // Source text of the token.
	Line   int    // 1-based line of the first character.
	Column int    // 1-based column of the first character, in runes.
}

// String returns the token as shown in diagnostics.
func (tok Token) String() string {
	switch tok.Kind {
	case TOKEN_NUMBER:
		return fmt.Sprintf("number %d", tok.Number)
	case TOKEN_IDENTIFIER:
		return fmt.Sprintf("identifier '%s'", tok.Text)
	case TOKEN_NEWLINE:
		return "newline"
	}

	return tok.Kind.String()
}

// lookupKeyword returns the kind of a run of letters.
func lookupKeyword(word string) (kind TokenKind) {
	kind, ok := keywords[strings.ToUpper(word)]
	if !ok {
		kind = TOKEN_IDENTIFIER
	}

	return
}
