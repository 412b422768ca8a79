package cartridge

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// buildNROM constructs a minimal iNES v1 NROM image with the given number
// of 16KiB PRG banks and one 8KiB CHR bank, filling each PRG bank with a
// byte value unique to that bank so mirroring can be detected by content.
func buildNROM(t *testing.T, prgBanks uint8, verticalMirroring bool) *Cartridge {
	t.Helper()
	data := make([]byte, 16+int(prgBanks)*16384+8192)
	copy(data[0:4], []byte("NES\x1a"))
	data[4] = prgBanks
	data[5] = 1
	if verticalMirroring {
		data[6] = 0x01
	}

	for bank := 0; bank < int(prgBanks); bank++ {
		start := 16 + bank*16384
		for i := 0; i < 16384; i++ {
			data[start+i] = byte(bank + 1)
		}
	}

	cart, err := LoadFromBytes(data)
	require.NoError(t, err)
	return cart
}

func TestNROMSingleBankMirrorsAcrossCPUSpace(t *testing.T) {
	cart := buildNROM(t, 1, false)

	lo, ok := cart.CPURead(0x8000)
	require.True(t, ok)
	hi, ok := cart.CPURead(0xC000)
	require.True(t, ok)

	require.Equal(t, lo, hi, "single-bank NROM must mirror $8000-$BFFF into $C000-$FFFF")
}

func TestNROMTwoBanksDoNotMirror(t *testing.T) {
	cart := buildNROM(t, 2, false)

	lo, ok := cart.CPURead(0x8000)
	require.True(t, ok)
	hi, ok := cart.CPURead(0xC000)
	require.True(t, ok)

	require.NotEqual(t, lo, hi, "two-bank NROM must expose distinct first and second banks")
	require.Equal(t, uint8(1), lo)
	require.Equal(t, uint8(2), hi)
}

func TestNROMBelowCartridgeSpaceIsUnmapped(t *testing.T) {
	cart := buildNROM(t, 1, false)

	_, ok := cart.CPURead(0x4020)
	require.False(t, ok, "NROM claims no addresses below $8000")
}

func TestNROMMirroringModeFromHeader(t *testing.T) {
	horizontal := buildNROM(t, 1, false)
	vertical := buildNROM(t, 1, true)

	require.Equal(t, MirrorHorizontal, horizontal.Mirroring())
	require.Equal(t, MirrorVertical, vertical.Mirroring())
}

func TestNROMWritesAreIgnored(t *testing.T) {
	cart := buildNROM(t, 1, false)
	before, _ := cart.CPURead(0x8000)

	ok := cart.CPUWrite(0x8000, 0xFF)
	require.False(t, ok, "NROM has no writable PRG space")

	after, _ := cart.CPURead(0x8000)
	require.Equal(t, before, after)
}
