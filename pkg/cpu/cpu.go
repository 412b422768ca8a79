// Package cpu implements a cycle-accurate interpreter for the NES's 6502
// variant (no decimal mode, no illegal-opcode stabilization beyond NOP
// equivalence).
package cpu

import "github.com/andrewthecodertx/go-nes-core/internal/telemetry"

// Bus is the minimal interface the CPU needs from its host. Defining it
// here rather than depending on the bus package directly avoids an import
// cycle, since the bus must in turn hold a *CPU.
type Bus interface {
	CPURead(addr uint16) uint8
	CPUWrite(addr uint16, data uint8)
}

// Flag bits within the status register.
const (
	FlagC uint8 = 1 << 0 // Carry
	FlagZ uint8 = 1 << 1 // Zero
	FlagI uint8 = 1 << 2 // Interrupt disable
	FlagD uint8 = 1 << 3 // Decimal mode (present, never consulted)
	FlagB uint8 = 1 << 4 // Break
	FlagU uint8 = 1 << 5 // Unused, always 1
	FlagV uint8 = 1 << 6 // Overflow
	FlagN uint8 = 1 << 7 // Negative
)

const stackBase uint16 = 0x0100

const (
	vectorNMI   uint16 = 0xFFFA
	vectorReset uint16 = 0xFFFC
	vectorIRQ   uint16 = 0xFFFE
)

// CPU holds 6502 register state and the cycle-accounting fields used to
// spread an instruction's execution across Clock calls.
type CPU struct {
	bus Bus

	A      uint8
	X      uint8
	Y      uint8
	SP     uint8
	PC     uint16
	Status uint8

	fetched    uint8
	addrAbs    uint16
	addrRel    uint16
	opcode     uint8
	cycles     uint8
	clockCount uint64
	isImplied  bool
}

// New creates a CPU wired to bus. Callers must call Reset before the first
// Clock to establish the power-on register state.
func New(bus Bus) *CPU {
	return &CPU{bus: bus}
}

// ConnectBus rewires the CPU to a different bus, e.g. during test setup.
func (c *CPU) ConnectBus(bus Bus) { c.bus = bus }

func (c *CPU) read(addr uint16) uint8        { return c.bus.CPURead(addr) }
func (c *CPU) write(addr uint16, data uint8) { c.bus.CPUWrite(addr, data) }

func (c *CPU) getFlag(flag uint8) bool { return c.Status&flag != 0 }

func (c *CPU) setFlag(flag uint8, v bool) {
	if v {
		c.Status |= flag
	} else {
		c.Status &^= flag
	}
}

func (c *CPU) push(data uint8) {
	c.write(stackBase+uint16(c.SP), data)
	c.SP--
}

func (c *CPU) pop() uint8 {
	c.SP++
	return c.read(stackBase + uint16(c.SP))
}

func (c *CPU) push16(data uint16) {
	c.push(uint8(data >> 8))
	c.push(uint8(data & 0xFF))
}

func (c *CPU) pop16() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return lo | (hi << 8)
}

// Reset forces the CPU into its power-on state: registers cleared, stack
// pointer set to 0xFD, PC loaded from the reset vector. Takes 8 cycles.
func (c *CPU) Reset() {
	c.addrAbs = vectorReset
	lo := uint16(c.read(c.addrAbs))
	hi := uint16(c.read(c.addrAbs + 1))
	c.PC = lo | (hi << 8)

	c.A, c.X, c.Y = 0, 0, 0
	c.SP = 0xFD
	c.Status = FlagU

	c.addrAbs, c.addrRel, c.fetched = 0, 0, 0
	c.cycles = 8
}

// IRQ requests a maskable interrupt. No-op when the interrupt-disable flag
// is set. Pushes PC and status, clears B, sets I, loads PC from $FFFE/$FFFF.
// Takes 7 cycles.
func (c *CPU) IRQ() {
	if c.getFlag(FlagI) {
		return
	}

	c.push16(c.PC)

	c.setFlag(FlagB, false)
	c.setFlag(FlagU, true)
	c.setFlag(FlagI, true)
	c.push(c.Status)

	c.addrAbs = vectorIRQ
	lo := uint16(c.read(c.addrAbs))
	hi := uint16(c.read(c.addrAbs + 1))
	c.PC = lo | (hi << 8)

	c.cycles = 7
}

// NMI requests a non-maskable interrupt. Unlike IRQ this cannot be masked
// by the I flag. Takes 8 cycles.
func (c *CPU) NMI() {
	c.push16(c.PC)

	c.setFlag(FlagB, false)
	c.setFlag(FlagU, true)
	c.setFlag(FlagI, true)
	c.push(c.Status)

	c.addrAbs = vectorNMI
	lo := uint16(c.read(c.addrAbs))
	hi := uint16(c.read(c.addrAbs + 1))
	c.PC = lo | (hi << 8)

	c.cycles = 8
}

// fetch loads the operand byte addressed by addrAbs, unless the current
// instruction's addressing mode is implied (operand is the accumulator or
// nothing), in which case fetched already holds the right value.
func (c *CPU) fetch() uint8 {
	if !c.isImplied {
		c.fetched = c.read(c.addrAbs)
	}
	return c.fetched
}

// Clock advances the CPU by one cycle. An instruction is only decoded and
// dispatched when the previous instruction's cycle count has drained to
// zero; every other call just burns down that counter. This lets the bus
// clock the CPU once per master tick regardless of instruction length.
func (c *CPU) Clock() {
	if c.cycles == 0 {
		pc := c.PC
		c.opcode = c.read(c.PC)
		c.setFlag(FlagU, true)
		c.PC++

		inst := instructionTable[c.opcode]
		c.cycles = inst.cycles
		c.isImplied = false

		extra1 := inst.mode(c)
		extra2 := inst.execute(c)

		c.cycles += extra1 & extra2

		c.setFlag(FlagU, true)

		telemetry.CPU("$%04X: %s A=%02X X=%02X Y=%02X SP=%02X P=%02X",
			pc, inst.name, c.A, c.X, c.Y, c.SP, c.Status)
	}

	c.clockCount++
	c.cycles--
}

// Complete reports whether the CPU is between instructions, i.e. a good
// moment for a caller to inspect register state.
func (c *CPU) Complete() bool { return c.cycles == 0 }

// PC/A/X/Y/SP/Status accessors beyond the exported fields below are
// unnecessary since the fields are public; GetState provides a consistent
// snapshot for tooling and tests.
type State struct {
	A, X, Y, SP, Status uint8
	PC                  uint16
	Cycles              uint8
}

func (c *CPU) GetState() State {
	return State{A: c.A, X: c.X, Y: c.Y, SP: c.SP, Status: c.Status, PC: c.PC, Cycles: c.cycles}
}

func (c *CPU) ClockCount() uint64 { return c.clockCount }
