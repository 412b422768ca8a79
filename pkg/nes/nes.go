// Package nes implements the top-level NES emulator, wiring the bus, CPU,
// PPU, and cartridge together and driving them as a bus-owned master clock.
package nes

import (
	"fmt"

	"github.com/andrewthecodertx/go-nes-core/pkg/bus"
	"github.com/andrewthecodertx/go-nes-core/pkg/cartridge"
	"github.com/andrewthecodertx/go-nes-core/pkg/cpu"
	"github.com/andrewthecodertx/go-nes-core/pkg/ppu"
)

// NES is the complete emulator: bus, CPU, PPU, and the loaded cartridge.
type NES struct {
	bus       *bus.Bus
	cpu       *cpu.CPU
	ppu       *ppu.PPU
	cartridge *cartridge.Cartridge
	ticks     uint64
}

// New loads a ROM file and returns a ready-to-run NES.
func New(romPath string) (*NES, error) {
	cart, err := cartridge.LoadFromFile(romPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load ROM: %w", err)
	}
	return NewFromCartridge(cart), nil
}

// NewFromCartridge wires a bus/CPU/PPU triple around an already-loaded
// cartridge.
func NewFromCartridge(cart *cartridge.Cartridge) *NES {
	ppuUnit := ppu.NewPPU()
	nesBus := bus.New(ppuUnit, cart)
	cpuUnit := cpu.New(nesBus)
	nesBus.AttachCPU(cpuUnit)
	cpuUnit.Reset()

	return &NES{
		bus:       nesBus,
		cpu:       cpuUnit,
		ppu:       ppuUnit,
		cartridge: cart,
	}
}

// Reset returns the whole system to power-on state.
func (n *NES) Reset() {
	n.bus.Reset()
	n.ticks = 0
}

// Clock advances the system by one master tick (one PPU dot; the CPU
// advances on every third tick).
func (n *NES) Clock() {
	n.bus.Clock()
	n.ticks++
}

// StepInstruction runs master ticks until the CPU has completed exactly one
// freshly-started instruction. If the CPU is still mid-instruction (or
// mid-reset/interrupt sequence) on entry, that is drained first so the step
// boundary always brackets a single, complete instruction.
func (n *NES) StepInstruction() {
	for !n.cpu.Complete() {
		n.Clock()
	}
	for n.cpu.Complete() {
		n.Clock()
	}
	for !n.cpu.Complete() {
		n.Clock()
	}
}

// StepFrame runs master ticks until the PPU has completed one full frame.
func (n *NES) StepFrame() {
	n.ppu.ClearFrameComplete()
	for !n.ppu.IsFrameComplete() {
		n.Clock()
	}
}

// SetController overwrites the live button snapshot for controller 0 or 1.
// Bit order is MSB first: A, B, Select, Start, Up, Down, Left, Right.
func (n *NES) SetController(index int, state uint8) {
	n.bus.SetController(index, state)
}

// FrameBuffer returns the PPU's current 256x240 palette-index framebuffer.
func (n *NES) FrameBuffer() *[ppu.ScreenWidth * ppu.ScreenHeight]uint8 {
	return n.ppu.GetFrameBuffer()
}

// FrameComplete reports whether the PPU has just finished a frame.
func (n *NES) FrameComplete() bool {
	return n.ppu.IsFrameComplete()
}

// Disassemble decodes instructions in the given CPU address range using
// live bus reads, without disturbing CPU state.
func (n *NES) Disassemble(start, end uint16) []cpu.DisassembledLine {
	return cpu.Disassemble(n.bus, start, end)
}

// GetPPU returns the PPU for direct access by debug frontends.
func (n *NES) GetPPU() *ppu.PPU { return n.ppu }

// GetCPU returns the CPU for direct access by debug frontends.
func (n *NES) GetCPU() *cpu.CPU { return n.cpu }

// GetBus returns the system bus for direct access by debug frontends.
func (n *NES) GetBus() *bus.Bus { return n.bus }

// GetCartridge returns the loaded cartridge.
func (n *NES) GetCartridge() *cartridge.Cartridge { return n.cartridge }

// Ticks returns the total number of master clock ticks executed.
func (n *NES) Ticks() uint64 { return n.ticks }
