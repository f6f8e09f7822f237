// Package asm assembles Little Man Computer source text into a memory image.
//
// Assembly runs in three stages, each with its own error family:
//
//	Lex       source text to tokens    (ErrLexical)
//	Parse     tokens to a Program      (ErrSyntax)
//	Generate  Program to a cpu.Image   (ErrLink)
//
// Compile runs all three. The Assembler wraps them with verbose logging and
// keeps the Program around for source line lookups.
//
// The language is line oriented. Each line is either
//
//	[label] mnemonic [operand]
//
// or
//
//	label DAT [number]
//
// Mnemonics are matched without regard to case: HLT (or COB), ADD, SUB,
// STA (or STO), LDA, BRA, BRZ, BRP, INP, OUT and DAT. A numeric operand is a
// direct address, so "ADD 5" adds the contents of cell 5.
package asm
