package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flatBus is a 64 KiB flat address space used to exercise the CPU in
// isolation, without a real bus/ppu/mapper wiring.
type flatBus struct {
	ram [65536]uint8
}

func (b *flatBus) CPURead(addr uint16) uint8        { return b.ram[addr] }
func (b *flatBus) CPUWrite(addr uint16, data uint8) { b.ram[addr] = data }

func (b *flatBus) load(program []byte, at uint16) {
	copy(b.ram[at:], program)
}

// stepInstruction clocks the CPU until it has consumed a full instruction
// (cycles drained back to zero after at least one Clock call).
func stepInstruction(c *CPU) {
	c.Clock()
	for !c.Complete() {
		c.Clock()
	}
}

func TestResetVector(t *testing.T) {
	bus := &flatBus{}
	bus.ram[0xFFFC] = 0x00
	bus.ram[0xFFFD] = 0x80

	c := New(bus)
	c.Reset()

	assert.Equal(t, uint16(0x8000), c.PC)
	assert.Equal(t, uint8(0xFD), c.SP)
	assert.True(t, c.getFlag(FlagU))
	assert.Equal(t, uint8(8), c.cycles)
}

// TestMultiplyByRepeatedAddition runs the canonical 6502 bring-up program
// that computes 10*3 via repeated addition, verifying the end register
// state.
func TestMultiplyByRepeatedAddition(t *testing.T) {
	program := []byte{
		0xA2, 0x0A, 0x8E, 0x00, 0x00, // LDX #$0A; STX $0000
		0xA2, 0x03, 0x8E, 0x01, 0x00, // LDX #$03; STX $0001
		0xAC, 0x00, 0x00, // LDY $0000
		0xA9, 0x00, // LDA #$00
		0x18,                   // CLC
		0x6D, 0x01, 0x00, // ADC $0001
		0x88,             // DEY
		0xD0, 0xFA, // BNE -6
		0x8D, 0x02, 0x00, // STA $0002
		0xEA, 0xEA, 0xEA, // NOP NOP NOP
	}

	bus := &flatBus{}
	bus.load(program, 0x8000)
	bus.ram[0xFFFC] = 0x00
	bus.ram[0xFFFD] = 0x80

	c := New(bus)
	c.Reset()
	stepInstruction(c) // consume Reset's own cycle accounting

	require.Equal(t, uint16(0x8000), c.PC)

	// LDX #$0A, STX $0000, LDX #$03, STX $0001, LDY $0000, LDA #$00, CLC
	for i := 0; i < 7; i++ {
		stepInstruction(c)
	}
	assert.Equal(t, uint8(0x0A), bus.ram[0x0000])
	assert.Equal(t, uint8(0x03), bus.ram[0x0001])
	assert.Equal(t, uint8(0x0A), c.Y)
	assert.Equal(t, uint8(0x00), c.A)

	// Drain the ADC/DEY/BNE loop: 10 iterations.
	for i := 0; i < 10; i++ {
		stepInstruction(c) // ADC
		stepInstruction(c) // DEY
		stepInstruction(c) // BNE
	}

	stepInstruction(c) // STA $0002

	assert.Equal(t, uint8(30), c.A)
	assert.Equal(t, uint8(0x03), c.X)
	assert.Equal(t, uint8(0), c.Y)
	assert.Equal(t, uint8(30), bus.ram[0x0002])
}

func TestADCSetsOverflowWithoutCarry(t *testing.T) {
	bus := &flatBus{}
	c := New(bus)
	c.Reset()

	c.A = 0x7F // +127
	c.fetched = 0x01
	c.isImplied = true
	c.opADC()

	assert.Equal(t, uint8(0x80), c.A)
	assert.True(t, c.getFlag(FlagV), "signed overflow crossing +127 -> -128")
	assert.True(t, c.getFlag(FlagN))
	assert.False(t, c.getFlag(FlagC))
}

func TestSBCBorrow(t *testing.T) {
	bus := &flatBus{}
	c := New(bus)
	c.Reset()

	c.A = 0x00
	c.setFlag(FlagC, true) // no borrow in
	c.fetched = 0x01
	c.isImplied = true
	c.opSBC()

	assert.Equal(t, uint8(0xFF), c.A)
	assert.False(t, c.getFlag(FlagC), "borrow occurred")
	assert.True(t, c.getFlag(FlagN))
}

func TestBranchTakenAcrossPageChargesTwoExtraCycles(t *testing.T) {
	bus := &flatBus{}
	c := New(bus)
	c.Reset()
	c.PC = 0x80F0
	c.addrRel = 0x20 // target 0x8110, crosses the 0x80xx/0x81xx boundary
	c.setFlag(FlagZ, true)
	c.cycles = 0

	c.opBEQ()

	assert.Equal(t, uint16(0x8110), c.PC)
	assert.Equal(t, uint8(2), c.cycles, "taken + page-crossed branch charges two extra cycles")
}

func TestStackPushPop16RoundTrips(t *testing.T) {
	bus := &flatBus{}
	c := New(bus)
	c.Reset()

	c.push16(0xBEEF)
	got := c.pop16()
	assert.Equal(t, uint16(0xBEEF), got)
}

func TestIRQIgnoredWhenMasked(t *testing.T) {
	bus := &flatBus{}
	bus.ram[0xFFFE] = 0x00
	bus.ram[0xFFFF] = 0x90

	c := New(bus)
	c.Reset()
	c.setFlag(FlagI, true)
	pc := c.PC

	c.IRQ()

	assert.Equal(t, pc, c.PC, "IRQ must be a no-op while I flag is set")
}

func TestNMIAlwaysFires(t *testing.T) {
	bus := &flatBus{}
	bus.ram[0xFFFA] = 0x00
	bus.ram[0xFFFB] = 0x90

	c := New(bus)
	c.Reset()
	c.setFlag(FlagI, true)

	c.NMI()

	assert.Equal(t, uint16(0x9000), c.PC)
	assert.Equal(t, uint8(8), c.cycles)
}

func TestIndirectAddressingPageWrapBug(t *testing.T) {
	bus := &flatBus{}
	// Pointer straddles a page boundary at $30FF: JMP ($30FF) must read the
	// high byte from $3000, not $3100.
	bus.ram[0x30FF] = 0x40
	bus.ram[0x3100] = 0x12 // decoy: must NOT be used for the high byte
	bus.ram[0x3000] = 0x80

	c := New(bus)
	c.Reset()
	c.PC = 0x0000
	bus.ram[0x0000] = 0xFF
	bus.ram[0x0001] = 0x30

	addrIND(c)

	assert.Equal(t, uint16(0x8040), c.addrAbs)
}
