// Package cpu implements the Little Man Computer execution engine.
//
// The machine has one hundred memory cells, an accumulator, and the
// program counter, instruction, address and data registers. Each cell
// holds either an instruction (a decimal opcode plus a two digit address)
// or a signed data value. An untouched cell is data zero, which the CPU
// treats as an implicit halt.
//
// Step executes a single instruction and reports the outcome as an Event.
// The CPU never blocks: Input and Output events are serviced by the caller
// between steps.
package cpu
