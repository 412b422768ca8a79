// Package bus implements the NES system bus connecting CPU, RAM, PPU, and
// cartridge, and owns the master-clock interleaving between CPU and PPU.
package bus

import (
	"github.com/andrewthecodertx/go-nes-core/internal/telemetry"
	"github.com/andrewthecodertx/go-nes-core/pkg/cartridge"
	"github.com/andrewthecodertx/go-nes-core/pkg/controller"
	"github.com/andrewthecodertx/go-nes-core/pkg/cpu"
	"github.com/andrewthecodertx/go-nes-core/pkg/ppu"
)

// Bus implements the NES system bus.
//
// CPU Memory Map:
//
//	$0000-$07FF: 2KB internal RAM
//	$0800-$1FFF: Mirrors of $0000-$07FF
//	$2000-$2007: PPU registers
//	$2008-$3FFF: Mirrors of $2000-$2007
//	$4000-$4013,$4015: APU registers (unimplemented: reads return 0, writes are ignored)
//	$4014: OAM DMA trigger
//	$4016-$4017: Controller shift registers
//	$4020-$FFFF: Cartridge space (PRG-ROM, PRG-RAM, mapper registers)
type Bus struct {
	// 2KB CPU RAM (mirrored to fill $0000-$1FFF)
	ram [2048]uint8

	cpu  *cpu.CPU
	ppu  *ppu.PPU
	cart *cartridge.Cartridge

	controllers [2]*controller.Controller

	// masterTick counts ticks since construction; the CPU advances on
	// every third one.
	masterTick uint64

	// cpuCycle counts actual CPU-side cycles (master ticks where the CPU,
	// not the DMA engine, stepped), used to determine OAM DMA's odd/even
	// start alignment.
	cpuCycle uint64

	// DMA transfer state
	dmaPage       uint8
	dmaAddr       uint8
	dmaData       uint8
	dmaDummy      bool
	dmaExtraDummy bool
	dmaWriteTick  bool
	dmaTransfer   bool
}

// New creates a system bus wiring the given PPU and cartridge. The caller
// must still attach a CPU via AttachCPU before the first Clock call.
func New(ppuUnit *ppu.PPU, cart *cartridge.Cartridge) *Bus {
	b := &Bus{
		ppu:  ppuUnit,
		cart: cart,
		controllers: [2]*controller.Controller{
			controller.NewController(),
			controller.NewController(),
		},
		dmaDummy: true,
	}
	ppuUnit.SetCartridge(cart)
	ppuUnit.SetMirroring(cart.Mirroring())
	return b
}

// AttachCPU wires the bus's CPU back-reference. Done as a second step
// rather than in New because the CPU's constructor needs a Bus in turn.
func (b *Bus) AttachCPU(c *cpu.CPU) { b.cpu = c }

// SetController overwrites the live button snapshot for controller 0 or 1.
// Bit order is MSB first: A, B, Select, Start, Up, Down, Left, Right.
func (b *Bus) SetController(index int, state uint8) {
	b.controllers[index].SetState(state)
}

// CPURead implements cpu.Bus for CPU-initiated reads.
func (b *Bus) CPURead(addr uint16) uint8 {
	// The cartridge is offered every access first.
	if v, ok := b.cart.CPURead(addr); ok {
		return v
	}

	switch {
	case addr < 0x2000:
		return b.ram[addr&0x07FF]

	case addr < 0x4000:
		return b.ppu.ReadCPURegister(0x2000 + (addr & 0x0007))

	case addr == 0x4016:
		return b.controllers[0].Read()

	case addr == 0x4017:
		return b.controllers[1].Read()
	}

	return 0
}

// CPUWrite implements cpu.Bus for CPU-initiated writes.
func (b *Bus) CPUWrite(addr uint16, data uint8) {
	// The cartridge is offered every access first.
	if b.cart.CPUWrite(addr, data) {
		return
	}

	switch {
	case addr < 0x2000:
		b.ram[addr&0x07FF] = data

	case addr < 0x4000:
		b.ppu.WriteCPURegister(0x2000+(addr&0x0007), data)

	case addr == 0x4014:
		b.dmaPage = data
		b.dmaAddr = 0x00
		b.dmaTransfer = true
		b.dmaDummy = true
		b.dmaExtraDummy = b.cpuCycle%2 == 1
		b.dmaWriteTick = false
		telemetry.Bus("OAM DMA triggered from page $%02X00", data)

	case addr == 0x4016:
		// Writing $4016 strobes both controller shift registers at once,
		// matching real hardware; $4017 has no write side.
		b.controllers[0].Write(data)
		b.controllers[1].Write(data)
	}
}

// Clock advances the bus by one master tick: the PPU always steps once;
// every third tick the CPU steps once, unless OAM DMA is in progress, in
// which case the DMA engine steps instead and the CPU is stalled. NMI and
// mapper IRQ lines are polled once per tick after the per-component step.
func (b *Bus) Clock() {
	b.ppu.Clock()

	if b.masterTick%3 == 0 {
		if b.dmaTransfer {
			b.clockDMA()
		} else {
			b.cpu.Clock()
			b.cpuCycle++
		}
	}
	b.masterTick++

	if b.ppu.GetNMI() {
		telemetry.Bus("NMI dispatched at tick %d", b.masterTick)
		b.cpu.NMI()
	}
	mapper := b.cart.GetMapper()
	if mapper.IRQState() {
		mapper.IRQClear()
		telemetry.Bus("mapper IRQ dispatched at tick %d", b.masterTick)
		b.cpu.IRQ()
	}
}

// clockDMA advances the OAM DMA engine by one CPU-cycle tick: a "get" dummy
// tick, one more alignment dummy tick if DMA started on an odd CPU cycle,
// then 256 read/write pairs copying CPU memory starting at dmaPage<<8 into
// OAM via the PPU's OAMDATA port (one tick reads, the next writes; dmaAddr
// only advances after the write tick). Total cost is 513 cycles on an even
// start, 514 on an odd one.
func (b *Bus) clockDMA() {
	b.cpuCycle++

	if b.dmaDummy {
		if b.dmaExtraDummy {
			b.dmaExtraDummy = false
			return
		}
		b.dmaDummy = false
		return
	}

	if !b.dmaWriteTick {
		addr := uint16(b.dmaPage)<<8 | uint16(b.dmaAddr)
		b.dmaData = b.CPURead(addr)
		b.dmaWriteTick = true
		return
	}

	b.ppu.WriteOAMByte(b.dmaData)
	b.dmaWriteTick = false
	b.dmaAddr++
	if b.dmaAddr == 0 {
		b.dmaTransfer = false
		b.dmaDummy = true
	}
}

// Reset resets the CPU, PPU, cartridge mapper and both controllers, and
// clears the DMA and tick-counting state. RAM contents are left as they are.
func (b *Bus) Reset() {
	b.cpu.Reset()
	b.ppu.Reset()
	b.cart.Reset()
	b.controllers[0].Reset()
	b.controllers[1].Reset()
	b.dmaTransfer = false
	b.dmaDummy = true
	b.dmaExtraDummy = false
	b.dmaWriteTick = false
	b.masterTick = 0
	b.cpuCycle = 0
}

// GetPPU returns the PPU for direct access by debug frontends.
func (b *Bus) GetPPU() *ppu.PPU { return b.ppu }

// GetCartridge returns the loaded cartridge.
func (b *Bus) GetCartridge() *cartridge.Cartridge { return b.cart }
