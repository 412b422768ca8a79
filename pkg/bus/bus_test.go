package bus

import (
	"testing"

	"github.com/andrewthecodertx/go-nes-core/pkg/cartridge"
	"github.com/andrewthecodertx/go-nes-core/pkg/cpu"
	"github.com/andrewthecodertx/go-nes-core/pkg/ppu"
	"github.com/stretchr/testify/require"
)

// minimalNROM builds a tiny valid iNES v1 NROM (mapper 0) image: one 16KiB
// PRG bank, one 8KiB CHR bank, horizontal mirroring.
func minimalNROM(t *testing.T) *cartridge.Cartridge {
	t.Helper()
	data := make([]byte, 16+16384+8192)
	copy(data[0:4], []byte("NES\x1a"))
	data[4] = 1 // 1 PRG bank
	data[5] = 1 // 1 CHR bank
	// Reset vector at the end of PRG-ROM points at $8000.
	prgStart := 16
	data[prgStart+16384-4] = 0x00
	data[prgStart+16384-3] = 0x80

	cart, err := cartridge.LoadFromBytes(data)
	require.NoError(t, err)
	return cart
}

func newTestBus(t *testing.T) *Bus {
	cart := minimalNROM(t)
	ppuUnit := ppu.NewPPU()
	b := New(ppuUnit, cart)
	return b
}

func TestRAMMirroring(t *testing.T) {
	b := newTestBus(t)

	b.CPUWrite(0x0000, 0x42)
	require.Equal(t, uint8(0x42), b.CPURead(0x0800), "RAM must mirror every 0x0800")
	require.Equal(t, uint8(0x42), b.CPURead(0x1800))
}

func TestOAMDMATakes513CyclesOnEvenStart(t *testing.T) {
	b := newTestBus(t)
	b.cpuCycle = 0 // even

	b.CPUWrite(0x4014, 0x02)
	require.True(t, b.dmaTransfer)

	ticks := 0
	for b.dmaTransfer {
		b.clockDMA()
		ticks++
		require.LessOrEqual(t, ticks, 1000, "DMA never completed")
	}

	require.Equal(t, 513, ticks)
}

func TestOAMDMATakes514CyclesOnOddStart(t *testing.T) {
	b := newTestBus(t)
	b.cpuCycle = 1 // odd

	b.CPUWrite(0x4014, 0x02)
	require.True(t, b.dmaTransfer)

	ticks := 0
	for b.dmaTransfer {
		b.clockDMA()
		ticks++
		require.LessOrEqual(t, ticks, 1000, "DMA never completed")
	}

	require.Equal(t, 514, ticks)
}

func TestDMACopiesRAMIntoOAM(t *testing.T) {
	b := newTestBus(t)
	for i := 0; i < 256; i++ {
		b.ram[i] = uint8(i)
	}
	b.ppu.WriteCPURegister(0x2003, 0x00) // OAMADDR = 0

	b.CPUWrite(0x4014, 0x00) // source page $0000
	for b.dmaTransfer {
		b.clockDMA()
	}

	for _, i := range []uint8{0, 1, 127, 255} {
		b.ppu.WriteCPURegister(0x2003, i)
		require.Equal(t, i, b.ppu.ReadCPURegister(0x2004), "OAM byte %d", i)
	}
}

func TestControllerShiftRegisterThroughBus(t *testing.T) {
	b := newTestBus(t)
	b.SetController(0, 0x80) // A pressed only

	b.CPUWrite(0x4016, 0x01)
	b.CPUWrite(0x4016, 0x00)

	require.Equal(t, uint8(1), b.CPURead(0x4016))
	require.Equal(t, uint8(0), b.CPURead(0x4016))
}

func TestClockAdvancesCPUEveryThirdTick(t *testing.T) {
	b := newTestBus(t)
	cpuUnit := cpu.New(b)
	cpuUnit.Reset()
	b.AttachCPU(cpuUnit)

	b.Clock() // master tick 0: CPU steps
	after := cpuUnit.ClockCount()

	b.Clock() // master tick 1: PPU only
	b.Clock() // master tick 2: PPU only
	require.Equal(t, after, cpuUnit.ClockCount(), "CPU must not advance on ticks 1 or 2")

	b.Clock() // master tick 3: CPU steps again
	require.Equal(t, after+1, cpuUnit.ClockCount(), "CPU advances every third master tick")
}
