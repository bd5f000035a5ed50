package stream_test

import (
	"fmt"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/sarchlab/packeval/instr"
	"github.com/sarchlab/packeval/stream"
	valgen "github.com/sarchlab/packeval/util"
)

// bitFields splits the chunks, most significant bit first, into n fields
// of the given width.
func bitFields(chunks []uint16, width, n int) []uint16 {
	fields := make([]uint16, n)
	for i := range fields {
		var v uint16
		for b := 0; b < width; b++ {
			pos := i*width + b
			bit := chunks[pos/16] >> uint(15-pos%16) & 1
			v = v<<1 | bit
		}
		fields[i] = v
	}
	return fields
}

var _ = Describe("BitWord", func() {
	var w stream.BitWord

	BeforeEach(func() {
		w = stream.BitWord{}
	})

	It("should take bits from the top", func() {
		w.Load(0xA5C3)
		Expect(w.Take(4)).To(Equal(uint16(0xA)))
		Expect(w.Take(8)).To(Equal(uint16(0x5C)))
		Expect(w.Pending()).To(Equal(4))
	})

	It("should join pending bits with a new chunk", func() {
		w.Load(0x0003)
		w.Take(14)
		w.Load(0x8000)
		Expect(w.Pending()).To(Equal(18))
		Expect(w.Take(3)).To(Equal(uint16(0x7)))
	})

	It("should take a whole chunk", func() {
		w.Load(0xBEEF)
		Expect(w.Take(16)).To(Equal(uint16(0xBEEF)))
		Expect(w.Pending()).To(BeZero())
	})

	It("should drop the remainder", func() {
		w.Load(0xFFFF)
		w.Take(3)
		w.Drop()
		Expect(w.Pending()).To(BeZero())
		w.Load(0x0001)
		Expect(w.Take(16)).To(Equal(uint16(1)))
	})

	It("should panic when over-taking", func() {
		w.Load(1)
		Expect(func() { w.Take(17) }).To(Panic())
	})
})

var _ = Describe("AlignedReader", func() {
	It("should read two 4-bit operands from the top of a chunk", func() {
		r, err := stream.NewAlignedReader(stream.NewSliceSource(0x1200), 4)
		Expect(err).NotTo(HaveOccurred())

		ops, err := stream.ReadAll(r, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(ops).To(Equal([]uint16{1, 2}))
	})

	It("should discard the low bits of a chunk", func() {
		src := stream.NewSliceSource(0b10101_01010_11111_1, 0b00001_00000_00000_0)
		r, err := stream.NewAlignedReader(src, 5)
		Expect(err).NotTo(HaveOccurred())

		ops, err := stream.ReadAll(r, 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(ops).To(Equal([]uint16{0b10101, 0b01010, 0b11111, 0b00001}))
	})

	It("should not read ahead", func() {
		src := stream.NewSliceSource(0xFFFF, 0xFFFF)
		r, err := stream.NewAlignedReader(src, 8)
		Expect(err).NotTo(HaveOccurred())

		_, err = stream.ReadAll(r, 2)
		Expect(err).NotTo(HaveOccurred())
		Expect(src.Remaining()).To(Equal(1))
	})

	It("should report exhaustion", func() {
		r, err := stream.NewAlignedReader(stream.NewSliceSource(0xFFFF), 16)
		Expect(err).NotTo(HaveOccurred())

		_, err = stream.ReadAll(r, 2)
		Expect(err).To(MatchError(instr.ErrStreamExhausted))
	})

	It("should reject an invalid dimension", func() {
		_, err := stream.NewAlignedReader(stream.NewSliceSource(), 0)
		Expect(err).To(MatchError(instr.ErrOutOfRange))
	})
})

var _ = Describe("CarryReader", func() {
	It("should split an operand across two chunks", func() {
		// 5-bit operands 3, 17, 30 and 9; the last one straddles.
		src := stream.NewSliceSource(0b00011_10001_11110_0, 0b1001_000000000000)
		r, err := stream.NewCarryReader(src, 5)
		Expect(err).NotTo(HaveOccurred())

		ops, err := stream.ReadAll(r, 4)
		Expect(err).NotTo(HaveOccurred())
		Expect(ops).To(Equal([]uint16{3, 17, 30, 9}))
		Expect(r.Pending()).To(Equal(12))
	})

	It("should match the bit string for every dimension and length", func() {
		gen := valgen.MakeRandomGen(2024)

		for dim := instr.MinDimension; dim <= instr.MaxDimension; dim++ {
			for n := 2; n <= instr.MaxOperators+1; n++ {
				chunks := valgen.Take(gen, instr.ChunkCount(n-1, dim))
				src := stream.NewCountingSource(stream.NewSliceSource(chunks...))

				r, err := stream.NewCarryReader(src, dim)
				Expect(err).NotTo(HaveOccurred())

				ops, err := stream.ReadAll(r, n)
				Expect(err).NotTo(HaveOccurred())
				Expect(ops).To(Equal(bitFields(chunks, dim, n)),
					fmt.Sprintf("dimension %d, %d operands", dim, n))
				Expect(src.Reads()).To(Equal(len(chunks)))
			}
		}
	})

	It("should agree with the aligned reader when the dimension divides 16", func() {
		gen := valgen.MakeRandomGen(99)

		for _, dim := range []int{1, 2, 4, 8, 16} {
			chunks := valgen.Take(gen, instr.ChunkCount(8, dim))

			carry, err := stream.NewCarryReader(stream.NewSliceSource(chunks...), dim)
			Expect(err).NotTo(HaveOccurred())
			aligned, err := stream.NewAlignedReader(stream.NewSliceSource(chunks...), dim)
			Expect(err).NotTo(HaveOccurred())

			a, err := stream.ReadAll(carry, 9)
			Expect(err).NotTo(HaveOccurred())
			b, err := stream.ReadAll(aligned, 9)
			Expect(err).NotTo(HaveOccurred())
			Expect(a).To(Equal(b))
		}
	})

	It("should report exhaustion in the middle of an operand", func() {
		r, err := stream.NewCarryReader(stream.NewSliceSource(0xFFFF), 7)
		Expect(err).NotTo(HaveOccurred())

		ops, err := stream.ReadAll(r, 3)
		Expect(err).To(MatchError(instr.ErrStreamExhausted))
		Expect(ops).To(BeNil())
	})

	It("should reject an invalid dimension", func() {
		_, err := stream.NewCarryReader(stream.NewSliceSource(), 17)
		Expect(err).To(MatchError(instr.ErrOutOfRange))
	})
})
