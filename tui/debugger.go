package tui

import (
	"context"
	"io"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/ezrec/lmc/config"
	"github.com/ezrec/lmc/emulator"
)

// Debugger is the terminal user interface.
type Debugger struct {
	Model

	runtime *emulator.Runtime

	app       *tview.Application
	root      *tview.Flex
	editor    *tview.TextArea
	registers *tview.TextView
	memory    *tview.Table
	output    *tview.TextView
	input     *tview.InputField
	status    *tview.TextView
}

// NewDebugger creates a debugger that drives a runtime.
func NewDebugger(rt *emulator.Runtime, speed config.RunSpeed) (dbg *Debugger) {
	interval := speed.Interval()
	if interval <= 0 {
		interval = time.Millisecond
	}

	app := tview.NewApplication().EnableMouse(true)

	newTextView := func(title string) *tview.TextView {
		view := tview.NewTextView().SetDynamicColors(true)
		view.SetTitle(title).SetBorder(true)
		return view
	}

	editor := tview.NewTextArea().SetPlaceholder(f("Type a program, then press ^A to assemble."))
	editor.SetTitle(f("Program")).SetBorder(true)

	registers := newTextView(f("Registers"))

	memory := tview.NewTable().SetBorders(false)
	memory.SetTitle(f("Memory")).SetBorder(true)

	output := newTextView(f("Output"))
	output.ScrollToEnd()

	input := tview.NewInputField().SetLabel(f("Input: ")).SetFieldWidth(6)
	input.SetAcceptanceFunc(func(text string, last rune) bool {
		return (last >= '0' && last <= '9') || (last == '-' && len(text) == 1)
	})

	status := tview.NewTextView().SetDynamicColors(true)

	rightPane := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(registers, 8, 0, false).
		AddItem(output, 0, 1, false).
		AddItem(input, 1, 0, false)

	mainPane := tview.NewFlex().
		AddItem(editor, 0, 2, true).
		AddItem(memory, 0, 3, false).
		AddItem(rightPane, 0, 1, false)

	root := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(mainPane, 0, 1, true).
		AddItem(status, 1, 0, false)

	dbg = &Debugger{
		Model: Model{
			Driver:   rt,
			Interval: interval,
		},
		runtime:   rt,
		app:       app,
		root:      root,
		editor:    editor,
		registers: registers,
		memory:    memory,
		output:    output,
		input:     input,
		status:    status,
	}

	input.SetDoneFunc(func(key tcell.Key) {
		if key != tcell.KeyEnter {
			return
		}
		dbg.SubmitInput(input.GetText())
		input.SetText("")
		dbg.draw()
	})

	app.SetInputCapture(dbg.handleKey)

	return
}

// SetSource replaces the program text in the editor.
func (dbg *Debugger) SetSource(source string) {
	dbg.editor.SetText(source, false)
}

// handleKey processes the debugger key bindings.
func (dbg *Debugger) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyCtrlA:
		dbg.Assemble(dbg.editor.GetText())
	case tcell.KeyF5:
		dbg.Toggle()
	case tcell.KeyF10:
		dbg.Step()
	case tcell.KeyCtrlR:
		dbg.Reset()
	case tcell.KeyCtrlQ:
		dbg.app.Stop()
		return nil
	default:
		return event
	}

	dbg.draw()
	return nil
}

// draw copies the model into the widgets.
func (dbg *Debugger) draw() {
	state := &dbg.State

	dbg.registers.SetText(renderRegisters(*state, dbg.LineNo))

	for slot, loc := range state.Memory {
		dbg.memory.SetCell(slot%MEMORY_COLUMNS, slot/MEMORY_COLUMNS, memoryCell(slot, loc, state.ProgramCounter))
	}

	dbg.output.SetText(strings.Join(dbg.Output, "\n"))

	dbg.input.SetDisabled(!dbg.Waiting)
	switch {
	case dbg.Waiting && !dbg.input.HasFocus():
		dbg.app.SetFocus(dbg.input)
	case !dbg.Waiting && dbg.input.HasFocus():
		dbg.app.SetFocus(dbg.editor)
	}

	dbg.status.SetText(renderStatus(&dbg.Model))
}

// SetScreen replaces the terminal screen, mainly for simulated screens.
func (dbg *Debugger) SetScreen(screen tcell.Screen) {
	dbg.app.SetScreen(screen)
}

// forward draws updates from the runtime until the stream closes or the
// context ends.
func (dbg *Debugger) forward(ctx context.Context) {
	updates := dbg.runtime.Updates()
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			dbg.app.QueueUpdateDraw(func() {
				dbg.Apply(update)
				dbg.draw()
			})
		}
	}
}

// tick paces run mode, and stops the application when the context ends.
func (dbg *Debugger) tick(ctx context.Context) {
	ticker := time.NewTicker(dbg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			dbg.app.Stop()
			return
		case <-ticker.C:
			dbg.app.QueueUpdate(func() {
				dbg.Tick()
			})
		}
	}
}

// Run shows the debugger until the user quits or the context ends.
//
// The standard logger is discarded while the screen is owned by the
// debugger, and restored on return.
func (dbg *Debugger) Run(ctx context.Context) (err error) {
	previous := log.Writer()
	log.SetOutput(io.Discard)
	defer log.SetOutput(previous)

	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	defer wg.Wait()
	defer cancel()
	defer dbg.runtime.Close()

	wg.Add(3)
	go func() {
		defer wg.Done()
		dbg.runtime.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		dbg.forward(ctx)
	}()
	go func() {
		defer wg.Done()
		dbg.tick(ctx)
	}()

	dbg.draw()
	err = dbg.app.SetRoot(dbg.root, true).SetFocus(dbg.editor).Run()
	return
}
