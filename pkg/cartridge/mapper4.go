package cartridge

import "github.com/andrewthecodertx/go-nes-core/internal/telemetry"

// Mapper4 implements iNES Mapper 4 (MMC3).
//
// MMC3 is the most common mapper (~23% of games). Used by: Super Mario
// Bros. 2/3, Mega Man 3-6, etc.
//
// Features:
//   - 2x 8KB switchable PRG-ROM banks + 2x 8KB fixed banks (second-last
//     and last)
//   - 6x switchable CHR banks (2x 2KB + 4x 1KB) or CHR-RAM
//   - Configurable PRG/CHR bank arrangement
//   - Scanline counter with IRQ generation (for split-screen effects)
//   - 32KB static PRG-RAM buffer, windowed at $6000-$7FFF (optionally
//     battery-backed)
//
// CPU Memory Map:
//   $6000-$7FFF: 8 KiB window into the 32 KiB PRG-RAM buffer
//   $8000-$9FFF: 8 KiB switchable PRG-ROM bank (or fixed to second-last bank)
//   $A000-$BFFF: 8 KiB switchable PRG-ROM bank
//   $C000-$DFFF: 8 KiB switchable PRG-ROM bank (or fixed to second-last bank)
//   $E000-$FFFF: 8 KiB PRG-ROM bank (fixed to last bank)
//
// PPU Memory Map:
//   $0000-$07FF, $0800-$0FFF: 2 KiB switchable CHR banks
//   $1000-$13FF .. $1C00-$1FFF: 1 KiB switchable CHR banks
//
// Registers (all at $8000-$FFFF, decoded by even/odd address):
//   $8000-$9FFE (even): Bank select    $8001-$9FFF (odd):  Bank data
//   $A000-$BFFE (even): Mirroring      $A001-$BFFF (odd):  PRG-RAM protect
//   $C000-$DFFE (even): IRQ latch      $C001-$DFFF (odd):  IRQ reload
//   $E000-$FFFE (even): IRQ disable    $E001-$FFFF (odd):  IRQ enable
type Mapper4 struct {
	prgBanks uint16 // number of 8 KiB PRG banks
	chrBanks uint16 // number of 1 KiB CHR banks

	prgRAM []uint8 // 32 KiB static PRG-RAM buffer; only $6000-$7FFF (8 KiB) is addressable

	bankSelect uint8    // which bank register to update (0-7)
	prgMode    uint8    // PRG bank mode (0 or 1)
	chrMode    uint8    // CHR A12 inversion (0 or 1)
	registers  [8]uint8 // R0-R7: bank numbers

	mirroring MirrorMode

	prgRAMEnabled      bool
	prgRAMWriteProtect bool

	irqLatch      uint8 // IRQ counter reload value
	irqCounter    uint8 // IRQ counter (counts down)
	irqEnabled    bool
	irqPending    bool
	irqReloadFlag bool
}

// NewMapper4 creates a new MMC3 mapper bound to cart's PRG/CHR bank counts.
func NewMapper4(cart *Cartridge, mirroring MirrorMode) *Mapper4 {
	chrBanks := cart.chrBanks * 8 // header counts 8KB units; MMC3 windows are 1KB
	if chrBanks == 0 {
		chrBanks = 8 // 8 KiB CHR-RAM as eight 1 KiB banks
	}
	return &Mapper4{
		prgBanks:      cart.prgBanks * 2, // header counts 16KB units; MMC3 windows are 8KB
		chrBanks:      chrBanks,
		prgRAM:        make([]uint8, 32768),
		mirroring:     mirroring,
		prgRAMEnabled: true,
	}
}

// prgWindow returns the 8 KiB PRG bank number occupying the given window
// index (0-3), per the MMC3 window-derivation rules.
func (m *Mapper4) prgWindow(window uint8) uint8 {
	last := uint8(m.prgBanks - 1)
	penultimate := uint8(m.prgBanks - 2)

	switch window {
	case 0:
		if m.prgMode == 0 {
			return m.registers[6]
		}
		return penultimate
	case 1:
		return m.registers[7]
	case 2:
		if m.prgMode == 0 {
			return penultimate
		}
		return m.registers[6]
	case 3:
		return last
	}
	return 0
}

func (m *Mapper4) CPUMapRead(addr uint16) (uint32, bool) {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		return MappedInternally, true

	case addr >= 0x8000:
		window := uint8((addr - 0x8000) / 0x2000)
		bank := m.prgWindow(window)
		offset := uint32(bank)*0x2000 + uint32(addr&0x1FFF)
		return offset, true
	}
	return 0, false
}

func (m *Mapper4) CPUMapWrite(addr uint16, data uint8) (uint32, bool) {
	switch {
	case addr >= 0x6000 && addr < 0x8000:
		return MappedInternally, true

	case addr >= 0x8000 && addr < 0xA000:
		if addr&1 == 0 {
			m.bankSelect = data & 0x07
			m.prgMode = (data >> 6) & 0x01
			m.chrMode = (data >> 7) & 0x01
		} else {
			m.registers[m.bankSelect] = data
		}
		return MappedInternally, true

	case addr >= 0xA000 && addr < 0xC000:
		if addr&1 == 0 {
			if data&1 == 0 {
				m.mirroring = MirrorVertical
			} else {
				m.mirroring = MirrorHorizontal
			}
		} else {
			m.prgRAMWriteProtect = (data & 0x40) != 0
			m.prgRAMEnabled = (data & 0x80) != 0
		}
		return MappedInternally, true

	case addr >= 0xC000 && addr < 0xE000:
		if addr&1 == 0 {
			m.irqLatch = data
		} else {
			m.irqCounter = 0
			m.irqReloadFlag = true
		}
		return MappedInternally, true

	case addr >= 0xE000:
		if addr&1 == 0 {
			m.irqEnabled = false
			m.irqPending = false
		} else {
			m.irqEnabled = true
		}
		return MappedInternally, true
	}
	return 0, false
}

// chrWindow returns the 1 KiB CHR bank number occupying the given window
// index (0-7), per the MMC3 CHR-inversion table.
func (m *Mapper4) chrWindow(window uint8) uint8 {
	if m.chrMode == 0 {
		switch window {
		case 0:
			return m.registers[0] &^ 1
		case 1:
			return m.registers[0] | 1
		case 2:
			return m.registers[1] &^ 1
		case 3:
			return m.registers[1] | 1
		case 4:
			return m.registers[2]
		case 5:
			return m.registers[3]
		case 6:
			return m.registers[4]
		case 7:
			return m.registers[5]
		}
	} else {
		switch window {
		case 0:
			return m.registers[2]
		case 1:
			return m.registers[3]
		case 2:
			return m.registers[4]
		case 3:
			return m.registers[5]
		case 4:
			return m.registers[0] &^ 1
		case 5:
			return m.registers[0] | 1
		case 6:
			return m.registers[1] &^ 1
		case 7:
			return m.registers[1] | 1
		}
	}
	return 0
}

func (m *Mapper4) PPUMapRead(addr uint16) (uint32, bool) {
	if addr > 0x1FFF {
		return 0, false
	}
	window := uint8(addr / 0x400)
	bank := m.chrWindow(window)
	offset := uint32(bank)*0x400 + uint32(addr&0x3FF)
	return offset, true
}

func (m *Mapper4) PPUMapWrite(addr uint16, _ uint8) (uint32, bool) {
	return m.PPUMapRead(addr)
}

// Scanline is called by the PPU on each scanline (cycle 260) to drive the
// MMC3 IRQ counter.
func (m *Mapper4) Scanline() {
	if m.irqCounter == 0 || m.irqReloadFlag {
		m.irqCounter = m.irqLatch
		m.irqReloadFlag = false
	} else {
		m.irqCounter--
	}

	if m.irqCounter == 0 && m.irqEnabled {
		m.irqPending = true
		telemetry.Mapper("MMC3 IRQ asserted (latch=%d)", m.irqLatch)
	}
}

// ReadInternal services the $6000-$7FFF PRG-RAM window.
func (m *Mapper4) ReadInternal(addr uint16) uint8 {
	if addr >= 0x6000 && addr < 0x8000 && m.prgRAMEnabled {
		return m.prgRAM[addr-0x6000]
	}
	return 0
}

// WriteInternal services PRG-RAM writes; bank-control register writes are
// already applied in CPUMapWrite and have nothing further to store here.
func (m *Mapper4) WriteInternal(addr uint16, data uint8) {
	if addr >= 0x6000 && addr < 0x8000 && m.prgRAMEnabled && !m.prgRAMWriteProtect {
		m.prgRAM[addr-0x6000] = data
	}
}

func (m *Mapper4) Mirroring() MirrorMode { return m.mirroring }
func (m *Mapper4) IRQState() bool        { return m.irqPending }
func (m *Mapper4) IRQClear()             { m.irqPending = false }

func (m *Mapper4) Reset() {
	m.bankSelect = 0
	m.prgMode = 0
	m.chrMode = 0
	m.registers = [8]uint8{}
	m.prgRAMEnabled = true
	m.prgRAMWriteProtect = false
	m.irqLatch = 0
	m.irqCounter = 0
	m.irqEnabled = false
	m.irqPending = false
	m.irqReloadFlag = false
}

func (m *Mapper4) SaveRAM() []byte {
	out := make([]byte, len(m.prgRAM))
	copy(out, m.prgRAM)
	return out
}

func (m *Mapper4) LoadRAM(data []byte) {
	copy(m.prgRAM, data)
}
