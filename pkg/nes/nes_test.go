package nes

import (
	"testing"

	"github.com/andrewthecodertx/go-nes-core/pkg/cartridge"
	"github.com/stretchr/testify/require"
)

// minimalNROM builds a tiny valid iNES v1 NROM (mapper 0) image with the
// given program at $8000 and the reset vector pointing there.
func minimalNROM(t *testing.T, program []byte) *cartridge.Cartridge {
	t.Helper()
	data := make([]byte, 16+16384+8192)
	copy(data[0:4], []byte("NES\x1a"))
	data[4] = 1
	data[5] = 1

	prgStart := 16
	copy(data[prgStart:], program)
	data[prgStart+16384-4] = 0x00 // reset vector low
	data[prgStart+16384-3] = 0x80 // reset vector high -> $8000

	cart, err := cartridge.LoadFromBytes(data)
	require.NoError(t, err)
	return cart
}

func TestStepInstructionExecutesLoadAndStore(t *testing.T) {
	program := []byte{
		0xA9, 0x42, // LDA #$42
		0x8D, 0x00, 0x00, // STA $0000
		0x4C, 0x05, 0x80, // JMP $8005 (spin)
	}
	cart := minimalNROM(t, program)
	n := NewFromCartridge(cart)
	n.Reset()

	n.StepInstruction() // LDA
	n.StepInstruction() // STA

	require.Equal(t, uint8(0x42), n.cpu.A)
	require.Equal(t, uint8(0x42), n.bus.CPURead(0x0000))
}

func TestStepFrameCompletesOneFrame(t *testing.T) {
	program := []byte{0x4C, 0x00, 0x80} // JMP $8000, infinite spin
	cart := minimalNROM(t, program)
	n := NewFromCartridge(cart)
	n.Reset()

	n.StepFrame()

	require.True(t, n.FrameComplete())
	require.Greater(t, n.Ticks(), uint64(0))
}

func TestSetControllerReachesBus(t *testing.T) {
	program := []byte{0x4C, 0x00, 0x80}
	cart := minimalNROM(t, program)
	n := NewFromCartridge(cart)
	n.Reset()

	n.SetController(0, 0x80)
	n.GetBus().CPUWrite(0x4016, 0x01)
	n.GetBus().CPUWrite(0x4016, 0x00)

	require.Equal(t, uint8(1), n.GetBus().CPURead(0x4016))
}

func TestDisassembleDecodesResetVectorProgram(t *testing.T) {
	program := []byte{0xA9, 0x42, 0x8D, 0x00, 0x00}
	cart := minimalNROM(t, program)
	n := NewFromCartridge(cart)
	n.Reset()

	lines := n.Disassemble(0x8000, 0x8004)
	require.NotEmpty(t, lines)
	require.Contains(t, lines[0].Text, "LDA")
}
