package tui

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/lmc/cpu"
)

var _ = Describe("Render", func() {
	It("should render registers", func() {
		state := cpu.Computer{
			ProgramCounter:      3,
			Accumulator:         -5,
			InstructionRegister: cpu.OP_ADD,
			AddressRegister:     7,
			DataRegister:        42,
		}

		text := renderRegisters(state, 4)
		Expect(text).To(ContainSubstring("[yellow]PC[-]   03\n"))
		Expect(text).To(ContainSubstring("[yellow]ACC[-]  -005\n"))
		Expect(text).To(ContainSubstring("[yellow]CIR[-]  1 ADD\n"))
		Expect(text).To(ContainSubstring("[yellow]MAR[-]  07\n"))
		Expect(text).To(ContainSubstring("[yellow]MDR[-]  0042\n"))
		Expect(text).To(ContainSubstring("[yellow]LINE[-] 4\n"))

		Expect(renderRegisters(state, 0)).NotTo(ContainSubstring("LINE"))
	})

	It("should render memory cells", func() {
		cell := memoryCell(5, cpu.MakeInstruction(cpu.OP_LDA, 9), 5)
		Expect(cell.Text).To(Equal("05: 509"))

		cell = memoryCell(6, cpu.Location{}, 5)
		Expect(cell.Text).To(Equal("06:   0"))

		cell = memoryCell(7, cpu.MakeData(-12), 5)
		Expect(cell.Text).To(Equal("07: -12"))
	})

	It("should render the status line", func() {
		model := &Model{}
		Expect(renderStatus(model)).To(Equal(helpText))

		model.setStatus("halted")
		Expect(renderStatus(model)).To(Equal("halted  |  " + helpText))

		model.setError(errors.New("fault"))
		Expect(renderStatus(model)).To(Equal("[red]fault[-]  |  " + helpText))
	})
})
