package asm

import (
	"github.com/ezrec/lmc/cpu"
)

// Opcodes of the mnemonics that take an address.
var addressOpcode = map[TokenKind]cpu.Opcode{
	TOKEN_ADD:             cpu.OP_ADD,
	TOKEN_SUB:             cpu.OP_SUB,
	TOKEN_STORE:           cpu.OP_STA,
	TOKEN_LOAD:            cpu.OP_LDA,
	TOKEN_BRANCH:          cpu.OP_BRA,
	TOKEN_BRANCH_ZERO:     cpu.OP_BRZ,
	TOKEN_BRANCH_POSITIVE: cpu.OP_BRP,
}

// narrow folds a number into the address range.
func narrow(number int16) uint8 {
	return uint8(((int(number) % cpu.MEMORY_SIZE) + cpu.MEMORY_SIZE) % cpu.MEMORY_SIZE)
}

// resolve returns the address of an operand.
func (prog *Program) resolve(op Operand, lineNo int) (address uint8, err error) {
	if !op.IsLabel() {
		address = narrow(op.Number)
		return
	}

	address, ok := prog.Labels[op.Label]
	if ok {
		return
	}

	// Programs built by hand may name data cells without a label entry.
	for slot, ins := range prog.Instructions {
		if ins.IsData() && ins.Label == op.Label {
			address = uint8(slot)
			return
		}
	}

	err = ErrInvalidIdentifier{Identifier: op.Label, LineNo: lineNo, Column: op.Column}
	return
}

// Generate converts a Program into a memory image.
//
// Slots past the end of the program are data zero. No partial image is
// returned on error.
func Generate(prog *Program) (image cpu.Image, err error) {
	var mem cpu.Image

	for slot, ins := range prog.Instructions {
		if slot >= cpu.MEMORY_SIZE {
			err = ErrProgramTooLong{Line: ins.LineNo}
			return
		}

		var loc cpu.Location
		switch ins.Op {
		case TOKEN_HALT:
			loc = cpu.MakeInstruction(cpu.OP_HLT, 0)
		case TOKEN_INPUT:
			loc = cpu.MakeInstruction(cpu.OP_IO, cpu.IO_INPUT)
		case TOKEN_OUTPUT:
			loc = cpu.MakeInstruction(cpu.OP_IO, cpu.IO_OUTPUT)
		case TOKEN_DATA:
			loc = cpu.MakeData(ins.Value)
		default:
			opcode, ok := addressOpcode[ins.Op]
			if !ok {
				err = ErrInvalidToken{Expected: instructionKinds, Received: &Token{Kind: ins.Op}, Line: ins.LineNo}
				return
			}
			var address uint8
			address, err = prog.resolve(ins.Operand, ins.LineNo)
			if err != nil {
				return
			}
			loc = cpu.MakeInstruction(opcode, address)
		}

		mem[slot] = loc
	}

	image = mem
	return
}
