package cartridge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildMMC3 constructs a minimal iNES v1 MMC3 (mapper 4) image with the
// given number of 16KiB PRG banks, each filled with a byte value unique to
// its 8KiB half so individual MMC3 windows can be identified by content.
func buildMMC3(t *testing.T, prgBanks uint8) *Cartridge {
	t.Helper()
	data := make([]byte, 16+int(prgBanks)*16384+8192)
	copy(data[0:4], []byte("NES\x1a"))
	data[4] = prgBanks
	data[5] = 1
	data[6] = 0x40 // mapper low nibble 4 in bits 4-7

	for half := 0; half < int(prgBanks)*2; half++ {
		start := 16 + half*8192
		for i := 0; i < 8192; i++ {
			data[start+i] = byte(half)
		}
	}

	cart, err := LoadFromBytes(data)
	require.NoError(t, err)
	require.Equal(t, uint8(4), cart.GetMapperID())
	return cart
}

// writeBankSelect selects register slot reg (0-7) and sets prgMode/chrMode
// via the $8000 (even) control write, matching real MMC3 register wiring.
func writeBankSelect(cart *Cartridge, reg uint8, prgMode, chrMode bool) {
	v := reg & 0x07
	if prgMode {
		v |= 0x40
	}
	if chrMode {
		v |= 0x80
	}
	cart.CPUWrite(0x8000, v)
}

func TestMMC3PRGBankSwapChangesWindow0(t *testing.T) {
	cart := buildMMC3(t, 4) // 8x 8KiB PRG halves: 0-7

	// Select R6 (PRG window 0 in mode 0) and point it at half 3.
	writeBankSelect(cart, 6, false, false)
	cart.CPUWrite(0x8001, 3)

	v, ok := cart.CPURead(0x8000)
	require.True(t, ok)
	require.Equal(t, uint8(3), v, "window 0 must reflect the newly selected PRG bank")

	// Re-point R6 at half 5 and confirm the window follows.
	writeBankSelect(cart, 6, false, false)
	cart.CPUWrite(0x8001, 5)

	v, ok = cart.CPURead(0x8000)
	require.True(t, ok)
	require.Equal(t, uint8(5), v, "window 0 must track R6 after a second bank-data write")
}

func TestMMC3PRGModeSwapsFixedAndSwitchableWindows(t *testing.T) {
	cart := buildMMC3(t, 4) // 8 PRG halves, last=7, penultimate=6

	writeBankSelect(cart, 6, false, false)
	cart.CPUWrite(0x8001, 2)

	modeZeroWindow0, _ := cart.CPURead(0x8000)
	modeZeroWindow2, _ := cart.CPURead(0xC000)
	require.Equal(t, uint8(2), modeZeroWindow0, "mode 0: window 0 is R6")
	require.Equal(t, uint8(6), modeZeroWindow2, "mode 0: window 2 is fixed to the penultimate bank")

	writeBankSelect(cart, 6, true, false) // flip PRG mode
	cart.CPUWrite(0x8001, 2)

	modeOneWindow0, _ := cart.CPURead(0x8000)
	modeOneWindow2, _ := cart.CPURead(0xC000)
	require.Equal(t, uint8(6), modeOneWindow0, "mode 1: window 0 is fixed to the penultimate bank")
	require.Equal(t, uint8(2), modeOneWindow2, "mode 1: window 2 is R6")
}

func TestMMC3LastBankFixedAtTopWindow(t *testing.T) {
	cart := buildMMC3(t, 4) // last half = 7

	v, ok := cart.CPURead(0xE000)
	require.True(t, ok)
	require.Equal(t, uint8(7), v, "window 3 is always fixed to the last PRG bank")
}

func TestMMC3MirroringRegisterOverridesHeader(t *testing.T) {
	cart := buildMMC3(t, 2)

	cart.CPUWrite(0xA000, 0x00) // even: mirroring select, bit0=0 -> vertical
	require.Equal(t, MirrorVertical, cart.Mirroring())

	cart.CPUWrite(0xA000, 0x01) // bit0=1 -> horizontal
	require.Equal(t, MirrorHorizontal, cart.Mirroring())
}

func TestMMC3IRQFiresWhenCounterReachesZero(t *testing.T) {
	cart := buildMMC3(t, 2)
	mapper := cart.GetMapper()

	cart.CPUWrite(0xC000, 2) // IRQ latch = 2
	cart.CPUWrite(0xC001, 0) // reload on next scanline
	cart.CPUWrite(0xE001, 0) // IRQ enable

	mapper.Scanline() // reload: counter = 2, no fire (not yet 0)
	require.False(t, mapper.IRQState())

	mapper.Scanline() // counter = 1
	require.False(t, mapper.IRQState())

	mapper.Scanline() // counter = 0 -> IRQ pending
	require.True(t, mapper.IRQState())
}

func TestMMC3IRQDisableSuppressesPending(t *testing.T) {
	cart := buildMMC3(t, 2)
	mapper := cart.GetMapper()

	cart.CPUWrite(0xC000, 0) // latch = 0, so every reload fires immediately
	cart.CPUWrite(0xC001, 0)
	cart.CPUWrite(0xE001, 0) // enable

	mapper.Scanline()
	require.True(t, mapper.IRQState())

	cart.CPUWrite(0xE000, 0) // disable clears pending too
	require.False(t, mapper.IRQState())
}

func TestMMC3PRGRAMReadWrite(t *testing.T) {
	cart := buildMMC3(t, 2)

	ok := cart.CPUWrite(0x6000, 0x99)
	require.True(t, ok)

	v, ok := cart.CPURead(0x6000)
	require.True(t, ok)
	require.Equal(t, uint8(0x99), v)
}
