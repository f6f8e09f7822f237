package tui

import (
	"bytes"
	"context"
	"io"
	"log"

	"github.com/gdamore/tcell/v2"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/lmc/config"
	"github.com/ezrec/lmc/emulator"
)

var _ = Describe("Debugger", func() {
	var (
		logged *bytes.Buffer
		dbg    *Debugger
	)

	BeforeEach(func() {
		previous := log.Writer()
		logged = &bytes.Buffer{}
		log.SetOutput(logged)
		DeferCleanup(func() {
			log.SetOutput(previous)
		})

		emu := emulator.NewEmulator()
		emu.Verbose = true
		rt := emulator.NewRuntime(emu, 0)
		rt.Verbose = true

		dbg = NewDebugger(rt, config.RUN_SPEED_FAST)
		dbg.SetScreen(tcell.NewSimulationScreen(""))
	})

	It("should discard logging while running", func() {
		sinks := make(chan io.Writer, 1)
		dbg.app.QueueUpdate(func() {
			sinks <- log.Writer()
		})

		source := "OUT\nHLT\n"
		dbg.SetSource(source)
		Expect(dbg.Assemble(source)).To(Succeed())

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		done := make(chan error, 1)
		go func() {
			done <- dbg.Run(ctx)
		}()

		Eventually(sinks, "5s").Should(Receive(Equal(io.Discard)))

		cancel()
		Eventually(done, "5s").Should(Receive(BeNil()))

		Expect(log.Writer()).To(BeIdenticalTo(logged))
		Expect(logged.String()).To(BeEmpty())
	})

	It("should return once the application stops", func() {
		started := make(chan struct{})
		dbg.app.QueueUpdate(func() {
			close(started)
		})

		done := make(chan error, 1)
		go func() {
			done <- dbg.Run(context.Background())
		}()

		Eventually(started, "5s").Should(BeClosed())

		// Keyboard quit.
		dbg.app.QueueEvent(tcell.NewEventKey(tcell.KeyCtrlQ, 0, tcell.ModCtrl))
		Eventually(done, "5s").Should(Receive(BeNil()))
	})
})
