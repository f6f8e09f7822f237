package tui

import (
	"errors"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/ezrec/lmc/cpu"
	"github.com/ezrec/lmc/emulator"
)

var _ = Describe("Model", func() {
	var (
		mockCtrl   *gomock.Controller
		mockDriver *MockDriver
		model      *Model
	)

	step := emulator.Request{Kind: emulator.REQUEST_STEP}
	state := func() emulator.Update {
		return emulator.Update{Kind: emulator.UPDATE_STATE}
	}

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockDriver = NewMockDriver(mockCtrl)
		model = &Model{Driver: mockDriver}
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should request assembly", func() {
		mockDriver.EXPECT().
			TrySend(emulator.Request{Kind: emulator.REQUEST_ASSEMBLE, Text: "HLT"}).
			Return(nil)

		model.Running = true
		Expect(model.Assemble("HLT")).To(Succeed())
		Expect(model.Running).To(BeFalse())

		model.Output = []string{"old"}
		model.Apply(emulator.Update{Kind: emulator.UPDATE_ASSEMBLED})
		Expect(model.Output).To(BeEmpty())
		Expect(model.Status).To(Equal("assembled"))
		Expect(model.Failed).To(BeFalse())
	})

	It("should apply state updates", func() {
		snapshot := cpu.Computer{ProgramCounter: 4, Accumulator: 12}
		model.Apply(emulator.Update{Kind: emulator.UPDATE_STATE, State: snapshot, LineNo: 5})

		Expect(model.State).To(Equal(snapshot))
		Expect(model.LineNo).To(Equal(5))
	})

	It("should step until halted", func() {
		mockDriver.EXPECT().TrySend(step).Return(nil).Times(2)

		Expect(model.Step()).To(Succeed())
		model.Apply(emulator.Update{Kind: emulator.UPDATE_OUTPUT, Output: "7"})
		model.Apply(state())
		Expect(model.Output).To(Equal([]string{"7"}))

		Expect(model.Step()).To(Succeed())
		model.Apply(emulator.Update{Kind: emulator.UPDATE_HALT})
		model.Apply(state())
		Expect(model.Halted).To(BeTrue())
		Expect(model.Status).To(Equal("halted"))

		// No request once halted.
		Expect(model.Step()).To(Succeed())
	})

	It("should wait for input", func() {
		mockDriver.EXPECT().TrySend(step).Return(nil)
		mockDriver.EXPECT().
			TrySend(emulator.Request{Kind: emulator.REQUEST_SET_INPUT, Text: "42"}).
			Return(nil)

		Expect(model.SubmitInput("ignored")).To(Succeed())

		Expect(model.Step()).To(Succeed())
		model.Apply(emulator.Update{Kind: emulator.UPDATE_INPUT})
		model.Apply(state())
		Expect(model.Waiting).To(BeTrue())

		// No request while waiting.
		Expect(model.Step()).To(Succeed())

		Expect(model.SubmitInput("42")).To(Succeed())
		Expect(model.Waiting).To(BeFalse())
	})

	It("should run one step per tick", func() {
		mockDriver.EXPECT().TrySend(step).Return(nil).Times(2)

		Expect(model.Tick()).To(Succeed())

		model.Toggle()
		Expect(model.Running).To(BeTrue())
		Expect(model.Status).To(Equal("running"))

		Expect(model.Tick()).To(Succeed())
		// Outstanding request; no new step.
		Expect(model.Tick()).To(Succeed())

		model.Apply(state())
		Expect(model.Tick()).To(Succeed())

		model.Toggle()
		Expect(model.Running).To(BeFalse())
		Expect(model.Status).To(Equal("stopped"))
	})

	It("should retry a tick when the runtime is busy", func() {
		gomock.InOrder(
			mockDriver.EXPECT().TrySend(step).Return(emulator.ErrRuntimeBusy),
			mockDriver.EXPECT().TrySend(step).Return(nil),
		)

		model.Toggle()
		Expect(model.Tick()).To(Succeed())
		Expect(model.Running).To(BeTrue())
		Expect(model.Failed).To(BeFalse())

		Expect(model.Tick()).To(Succeed())
	})

	It("should stop running on errors", func() {
		fault := errors.New("fault")
		mockDriver.EXPECT().TrySend(step).Return(nil)

		model.Toggle()
		Expect(model.Tick()).To(Succeed())
		model.Apply(emulator.Update{Kind: emulator.UPDATE_ERROR, Err: fault})

		Expect(model.Running).To(BeFalse())
		Expect(model.Failed).To(BeTrue())
		Expect(model.Status).To(Equal("fault"))
	})

	It("should report a closed runtime", func() {
		mockDriver.EXPECT().TrySend(step).Return(emulator.ErrRuntimeClosed)

		err := model.Step()
		Expect(err).To(MatchError(emulator.ErrRuntimeClosed))
		Expect(model.Failed).To(BeTrue())
	})

	It("should reset", func() {
		mockDriver.EXPECT().
			TrySend(emulator.Request{Kind: emulator.REQUEST_RESET}).
			Return(nil)

		model.Halted = true
		model.Waiting = true
		model.Running = true
		model.Output = []string{"1", "2"}

		Expect(model.Reset()).To(Succeed())
		Expect(model.Halted).To(BeFalse())
		Expect(model.Waiting).To(BeFalse())
		Expect(model.Running).To(BeFalse())
		Expect(model.Output).To(BeNil())
		Expect(model.Status).To(Equal("reset"))
	})
})
