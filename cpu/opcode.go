package cpu

import (
	"fmt"
	"strconv"
)

const (
	MEMORY_SIZE = 100  // Number of memory cells.
	DATA_MIN    = -999 // Smallest conventional data value.
	DATA_MAX    = 999  // Largest conventional data value.
)

// Opcode is the decimal operation code of an instruction cell.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HLT = Opcode(0) // HLT
	OP_ADD = Opcode(1) // ADD
	OP_SUB = Opcode(2) // SUB
	OP_STA = Opcode(3) // STA
	OP_LDA = Opcode(5) // LDA
	OP_BRA = Opcode(6) // BRA
	OP_BRZ = Opcode(7) // BRZ
	OP_BRP = Opcode(8) // BRP
	OP_IO  = Opcode(9) // IO
)

// OP_IO operands.
const (
	IO_INPUT  = uint8(1)
	IO_OUTPUT = uint8(2)
)

// Location is a single memory cell, either an instruction or a data value.
// The zero Location is data zero.
type Location struct {
	Code    bool   // Set if the cell holds an instruction.
	Opcode  Opcode // Instruction opcode.
	Operand uint8  // Instruction address.
	Value   int16  // Data value.
}

// MakeData creates a data cell.
func MakeData(value int16) Location {
	return Location{Value: value}
}

// MakeInstruction creates an instruction cell.
func MakeInstruction(op Opcode, operand uint8) Location {
	return Location{Code: true, Opcode: op, Operand: operand}
}

// IsData returns true if the cell holds a data value.
func (loc Location) IsData() bool {
	return !loc.Code
}

// Word returns the machine word of the cell: opcode*100+operand for an
// instruction, the value for data.
func (loc Location) Word() int {
	if loc.Code {
		return int(loc.Opcode)*100 + int(loc.Operand)
	}

	return int(loc.Value)
}

// String returns the machine word as shown on the memory display.
func (loc Location) String() string {
	if loc.Code {
		return fmt.Sprintf("%03d", loc.Word())
	}

	return strconv.Itoa(int(loc.Value))
}

// Mnemonic returns the assembly language form of the cell.
func (loc Location) Mnemonic() string {
	if !loc.Code {
		return fmt.Sprintf("DAT %d", loc.Value)
	}

	switch loc.Opcode {
	case OP_HLT:
		return "HLT"
	case OP_ADD, OP_SUB, OP_STA, OP_LDA, OP_BRA, OP_BRZ, OP_BRP:
		return fmt.Sprintf("%v %02d", loc.Opcode, loc.Operand)
	case OP_IO:
		switch loc.Operand {
		case IO_INPUT:
			return "INP"
		case IO_OUTPUT:
			return "OUT"
		}
	}

	return fmt.Sprintf("??? %03d", loc.Word())
}

// Image is a fully assembled memory.
type Image [MEMORY_SIZE]Location
