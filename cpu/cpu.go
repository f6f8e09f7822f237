package cpu

import (
	"fmt"
	"strconv"
	"strings"
)

// Computer is the register set and memory of a Little Man Computer.
// The zero Computer has all registers cleared and an empty memory.
type Computer struct {
	ProgramCounter      uint8  // Address of the next instruction.
	Accumulator         int16  // Arithmetic register.
	InstructionRegister Opcode // Opcode of the last decoded instruction.
	AddressRegister     uint8  // Operand of the last decoded instruction.
	DataRegister        int16  // Last data value read from memory.

	Memory Image // Memory cells.
}

// Reset clears all registers. Memory is left untouched.
func (cpu *Computer) Reset() {
	cpu.ProgramCounter = 0
	cpu.Accumulator = 0
	cpu.InstructionRegister = OP_HLT
	cpu.AddressRegister = 0
	cpu.DataRegister = 0
}

// Load replaces the memory with an image, and resets the registers.
func (cpu *Computer) Load(image Image) {
	cpu.Memory = image
	cpu.Reset()
}

// SetInput places a value into the accumulator, in response to an
// EVENT_INPUT.
func (cpu *Computer) SetInput(value int16) {
	cpu.Accumulator = value
}

// String returns the register state.
func (cpu *Computer) String() string {
	return fmt.Sprintf("PC: %02d ACC: %04d CIR: %01d MAR: %02d MDR: %04d",
		cpu.ProgramCounter,
		cpu.Accumulator,
		cpu.InstructionRegister,
		cpu.AddressRegister,
		cpu.DataRegister)
}

// advance moves the program counter to the next cell.
func (cpu *Computer) advance() {
	cpu.ProgramCounter = uint8((int(cpu.ProgramCounter) + 1) % MEMORY_SIZE)
}

// data returns the data cell at an address.
func (cpu *Computer) data(address uint8) (cell *Location, err error) {
	if int(address) >= MEMORY_SIZE {
		err = ErrAddressRange
		return
	}

	cell = &cpu.Memory[address]
	if !cell.IsData() {
		cell = nil
		err = ErrExpectedData
		return
	}

	return
}

// Step executes a single instruction.
//
// An EVENT_HALT does not advance the program counter, so stepping a halted
// machine halts again. After an EVENT_INPUT the caller must supply a value
// with SetInput before the next step.
func (cpu *Computer) Step() (event Event, err error) {
	if int(cpu.ProgramCounter) >= MEMORY_SIZE {
		err = ErrAddressRange
		return
	}

	loc := cpu.Memory[cpu.ProgramCounter]
	if loc.IsData() {
		if loc.Value == 0 {
			// Empty memory is an implicit halt.
			event.Kind = EVENT_HALT
			return
		}
		err = ErrExpectedInstruction
		return
	}

	cpu.InstructionRegister = loc.Opcode
	cpu.AddressRegister = loc.Operand

	switch loc.Opcode {
	case OP_HLT:
		event.Kind = EVENT_HALT
		return
	case OP_ADD, OP_SUB, OP_STA, OP_LDA:
		var cell *Location
		cell, err = cpu.data(loc.Operand)
		if err != nil {
			return
		}
		cpu.DataRegister = cell.Value
		switch loc.Opcode {
		case OP_ADD:
			cpu.Accumulator += cell.Value
		case OP_SUB:
			cpu.Accumulator -= cell.Value
		case OP_STA:
			cell.Value = cpu.Accumulator
		case OP_LDA:
			cpu.Accumulator = cell.Value
		}
	case OP_BRA, OP_BRZ, OP_BRP:
		if int(loc.Operand) >= MEMORY_SIZE {
			err = ErrAddressRange
			return
		}
		var taken bool
		switch loc.Opcode {
		case OP_BRA:
			taken = true
		case OP_BRZ:
			taken = cpu.Accumulator == 0
		case OP_BRP:
			taken = cpu.Accumulator >= 0
		}
		if taken {
			cpu.ProgramCounter = loc.Operand
			event.Kind = EVENT_CONTINUE
			return
		}
	case OP_IO:
		switch loc.Operand {
		case IO_INPUT:
			cpu.advance()
			event.Kind = EVENT_INPUT
			return
		case IO_OUTPUT:
			cpu.advance()
			event.Kind = EVENT_OUTPUT
			event.Output = strconv.Itoa(int(cpu.Accumulator))
			return
		default:
			err = ErrOpcodeReserved
			return
		}
	default:
		err = ErrOpcodeReserved
		return
	}

	cpu.advance()
	event.Kind = EVENT_CONTINUE

	return
}

// ParseInput parses a line of user input as a signed decimal value.
func ParseInput(text string) (value int16, err error) {
	v, err := strconv.ParseInt(strings.TrimSpace(text), 10, 16)
	if err != nil {
		return
	}

	value = int16(v)
	return
}

// ParseInputOrZero parses a line of user input, returning zero for text
// that is not a signed decimal value.
func ParseInputOrZero(text string) (value int16) {
	value, err := ParseInput(text)
	if err != nil {
		value = 0
	}

	return
}
