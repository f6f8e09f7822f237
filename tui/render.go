package tui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/ezrec/lmc/cpu"
)

const MEMORY_COLUMNS = 10

// Key help shown on the status line.
const helpText = "^A assemble  F5 run/stop  F10 step  ^R reset  ^Q quit"

// renderRegisters returns the register panel text.
func renderRegisters(state cpu.Computer, lineNo int) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "[yellow]PC[-]   %02d\n", state.ProgramCounter)
	fmt.Fprintf(&sb, "[yellow]ACC[-]  %04d\n", state.Accumulator)
	fmt.Fprintf(&sb, "[yellow]CIR[-]  %01d %v\n", state.InstructionRegister, state.InstructionRegister)
	fmt.Fprintf(&sb, "[yellow]MAR[-]  %02d\n", state.AddressRegister)
	fmt.Fprintf(&sb, "[yellow]MDR[-]  %04d\n", state.DataRegister)
	if lineNo > 0 {
		fmt.Fprintf(&sb, "[yellow]LINE[-] %d\n", lineNo)
	}

	return sb.String()
}

// memoryCell returns the table cell of a memory slot.
func memoryCell(slot int, loc cpu.Location, pc uint8) (cell *tview.TableCell) {
	cell = tview.NewTableCell(fmt.Sprintf("%02d:%4v", slot, loc)).
		SetAlign(tview.AlignRight).
		SetExpansion(1)

	switch {
	case slot == int(pc):
		cell.SetAttributes(tcell.AttrReverse)
	case loc == (cpu.Location{}):
		cell.SetTextColor(tcell.ColorDimGray).SetAttributes(tcell.AttrDim)
	case loc.IsData():
		cell.SetTextColor(tcell.ColorLightGreen)
	}

	return
}

// renderStatus returns the status line text.
func renderStatus(m *Model) string {
	status := tview.Escape(m.Status)
	if m.Failed {
		status = "[red]" + status + "[-]"
	}
	if len(status) == 0 {
		return helpText
	}

	return status + "  |  " + helpText
}
