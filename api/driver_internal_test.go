package api

import (
	"strings"

	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/akita/v4/sim"

	"github.com/sarchlab/packeval/config"
	"github.com/sarchlab/packeval/core"
	"github.com/sarchlab/packeval/instr"
	"github.com/sarchlab/packeval/stream"
)

var _ = Describe("Driver", func() {
	var (
		mockCtrl *gomock.Controller
		src      *MockChunkSource
	)

	build := func(mode config.Mode) Driver {
		return DriverBuilder{}.
			WithEngine(sim.NewSerialEngine()).
			WithFreq(1 * sim.GHz).
			WithMode(mode).
			Build("Driver")
	}

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		src = NewMockChunkSource(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should render without reading operands", func() {
		driver := build(config.Render)
		driver.FeedIn(src)

		Expect(driver.MapInstruction(0x30800000)).To(Succeed())

		res, err := driver.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Text).To(Equal("2 * + 5"))
		Expect(res.Value).To(BeZero())
	})

	It("should evaluate scenario A", func() {
		driver := build(config.PowerOfTwo)

		word, err := instr.EncodeOperators(4, []instr.Operator{instr.Add})
		Expect(err).NotTo(HaveOccurred())
		Expect(driver.MapInstruction(word)).To(Succeed())

		src.EXPECT().NextChunk().Return(uint16(0x1200), nil)
		driver.FeedIn(src)

		res, err := driver.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Value).To(Equal(int64(3)))
		Expect(res.Text).To(Equal("3"))
		Expect(res.Cycles).To(Equal(2))
	})

	It("should tell the modes apart on the same stream", func() {
		text := "2 9 + *"
		in, err := instr.ParseEncoderInput(strings.NewReader(text))
		Expect(err).NotTo(HaveOccurred())
		word := instr.Encode(in)

		// 9-bit operands 5, 6 and 7.
		chunks := []uint16{0b000000101_0000001, 0b10_000000111_00000}

		results := map[config.Mode]int64{}
		for _, mode := range []config.Mode{config.General, config.Precedence} {
			driver := build(mode)
			Expect(driver.MapInstruction(word)).To(Succeed())
			driver.FeedIn(stream.NewSliceSource(chunks...))

			res, err := driver.Run()
			Expect(err).NotTo(HaveOccurred())
			results[mode] = res.Value
		}

		Expect(results[config.General]).To(Equal(int64(77)))
		Expect(results[config.Precedence]).To(Equal(int64(47)))
	})

	It("should reject the zero word", func() {
		driver := build(config.General)

		err := driver.MapInstruction(0)
		Expect(err).To(MatchError(instr.ErrOutOfRange))

		_, err = driver.Run()
		Expect(err).To(MatchError(core.ErrNotMapped))
	})

	It("should surface a failed read", func() {
		driver := build(config.General)
		Expect(driver.MapInstruction(0x01800000)).To(Succeed())

		src.EXPECT().NextChunk().Return(uint16(0), instr.ErrStreamExhausted)
		driver.FeedIn(src)

		_, err := driver.Run()
		Expect(err).To(MatchError(instr.ErrStreamExhausted))
	})

	It("should need a source to evaluate", func() {
		driver := build(config.Precedence)
		Expect(driver.MapInstruction(0x01800000)).To(Succeed())

		_, err := driver.Run()
		Expect(err).To(MatchError(core.ErrNotMapped))
	})

	It("should panic on an unknown mode", func() {
		Expect(func() { build(config.Mode(9)) }).To(Panic())
	})

	It("should create its own engine", func() {
		driver := DriverBuilder{}.WithMode(config.General).Build("Driver")
		Expect(driver.MapInstruction(0x01800000)).To(Succeed())
		driver.FeedIn(stream.NewSliceSource(0x1200))

		res, err := driver.Run()
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Value).To(Equal(int64(3)))
	})
})
