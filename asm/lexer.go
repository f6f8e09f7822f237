package asm

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

const eof = -1

// lexer holds the state of the scanner.
type lexer struct {
	input     string  // The string being scanned.
	pos       int     // Current position in the input.
	start     int     // Start position of this token.
	line      int     // 1+number of newlines seen.
	lineStart int     // Position of the first character of the line.
	tokens    []Token // Tokens scanned so far.
}

// next returns the next rune in the input.
func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += w
	return r
}

// peek returns but does not consume the next rune in the input.
func (l *lexer) peek() rune {
	if l.pos >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

// acceptRun consumes a run of runes matching the predicate.
func (l *lexer) acceptRun(valid func(r rune) bool) {
	for {
		r := l.peek()
		if r == eof || !valid(r) {
			return
		}
		l.next()
	}
}

// column returns the 1-based column of a position on the current line.
func (l *lexer) column(pos int) int {
	return utf8.RuneCountInString(l.input[l.lineStart:pos]) + 1
}

// emit appends the pending input as a token.
func (l *lexer) emit(kind TokenKind, number int16) {
	l.tokens = append(l.tokens, Token{
		Kind:   kind,
		Number: number,
		Text:   l.input[l.start:l.pos],
		Line:   l.line,
		Column: l.column(l.start),
	})
	l.start = l.pos
}

func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// lexNumber scans a decimal literal, with an optional leading minus.
func (l *lexer) lexNumber() (err error) {
	l.acceptRun(isDigit)

	text := l.input[l.start:l.pos]
	value, err := strconv.ParseInt(text, 10, 16)
	if err != nil {
		err = ErrInvalidNumber{Text: text, Line: l.line, Column: l.column(l.start)}
		return
	}

	l.emit(TOKEN_NUMBER, int16(value))
	return
}

// run scans the whole input.
func (l *lexer) run() (err error) {
	for {
		l.start = l.pos
		r := l.next()
		switch {
		case r == eof:
			return
		case r == '\n':
			l.emit(TOKEN_NEWLINE, 0)
			l.line++
			l.lineStart = l.pos
		case unicode.IsSpace(r):
			// Skipped.
		case isLetter(r):
			l.acceptRun(isLetter)
			l.emit(lookupKeyword(l.input[l.start:l.pos]), 0)
		case isDigit(r), r == '-' && isDigit(l.peek()):
			err = l.lexNumber()
			if err != nil {
				return
			}
		default:
			err = ErrInvalidCharacter{Character: r, Line: l.line, Column: l.column(l.start)}
			return
		}
	}
}

// Lex converts source text into tokens.
//
// Newlines are kept as TOKEN_NEWLINE statement separators; other
// whitespace is dropped. Lexing stops at the first error.
func Lex(source string) (tokens []Token, err error) {
	l := &lexer{
		input: source,
		line:  1,
	}

	err = l.run()
	if err != nil {
		return
	}

	tokens = l.tokens
	return
}
