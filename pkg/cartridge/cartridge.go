package cartridge

import (
	"fmt"
	"os"
)

const (
	inesHeaderSize = 16
	prgROMBankSize = 16384 // 16 KiB
	chrROMBankSize = 8192  // 8 KiB
	trainerSize    = 512

	inesMagic = "NES\x1a"
)

// ErrInvalidImage is returned when a ROM fails the iNES magic check or is
// truncated relative to what its header declares.
var ErrInvalidImage = fmt.Errorf("invalid iNES image")

// ErrUnsupportedMapper is returned when the header names a mapper id this
// module does not implement.
var ErrUnsupportedMapper = fmt.Errorf("unsupported mapper")

// Cartridge represents a loaded NES ROM cartridge: the raw PRG/CHR/PRG-RAM
// memories plus the mapper that translates logical addresses into offsets
// within them.
type Cartridge struct {
	prgROM []uint8
	chrMem []uint8
	chrIsRAM bool

	mapper   Mapper
	mapperID uint8
	prgBanks uint16
	chrBanks uint16

	hasSaveRAM bool
	hasTrainer bool
}

// LoadFromFile loads an iNES format ROM file (.nes).
func LoadFromFile(filename string) (*Cartridge, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read ROM file: %w", err)
	}
	return LoadFromBytes(data)
}

// LoadFromBytes parses an iNES v1/v2 format ROM from a byte slice.
func LoadFromBytes(data []byte) (*Cartridge, error) {
	if len(data) < inesHeaderSize {
		return nil, fmt.Errorf("%w: file too small for a header", ErrInvalidImage)
	}
	if string(data[0:4]) != inesMagic {
		return nil, fmt.Errorf("%w: bad magic %q", ErrInvalidImage, string(data[0:4]))
	}

	header := parseINESHeader(data)

	offset := inesHeaderSize
	if header.hasTrainer {
		offset += trainerSize
	}

	prgSize := int(header.prgBanks) * prgROMBankSize
	if len(data) < offset+prgSize {
		return nil, fmt.Errorf("%w: truncated PRG-ROM", ErrInvalidImage)
	}
	prgROM := data[offset : offset+prgSize]
	offset += prgSize

	chrSize := int(header.chrBanks) * chrROMBankSize
	var chrROM []byte
	chrIsRAM := header.chrBanks == 0
	if !chrIsRAM {
		if len(data) < offset+chrSize {
			return nil, fmt.Errorf("%w: truncated CHR-ROM", ErrInvalidImage)
		}
		chrROM = data[offset : offset+chrSize]
	}

	c := &Cartridge{
		prgROM:     append([]uint8(nil), prgROM...),
		mapperID:   header.mapperID,
		prgBanks:   header.prgBanks,
		chrBanks:   header.chrBanks,
		hasSaveRAM: header.hasSaveRAM,
		hasTrainer: header.hasTrainer,
		chrIsRAM:   chrIsRAM,
	}
	if chrIsRAM {
		c.chrMem = make([]uint8, 8192)
	} else {
		c.chrMem = append([]uint8(nil), chrROM...)
	}

	mapper, err := createMapper(c, header.mirroring)
	if err != nil {
		return nil, err
	}
	c.mapper = mapper

	return c, nil
}

type inesHeader struct {
	prgBanks   uint16
	chrBanks   uint16
	mapperID   uint8
	mirroring  MirrorMode
	hasSaveRAM bool
	hasTrainer bool
	fourScreen bool
}

// parseINESHeader extracts information from the 16-byte iNES header,
// including NES 2.0 extended PRG/CHR bank counts when present.
func parseINESHeader(data []byte) inesHeader {
	h := inesHeader{}

	prgChunks := uint16(data[4])
	chrChunks := uint16(data[5])
	flags6 := data[6]
	flags7 := data[7]
	flags8 := data[8]

	h.hasSaveRAM = (flags6 & 0x02) != 0
	h.hasTrainer = (flags6 & 0x04) != 0
	h.fourScreen = (flags6 & 0x08) != 0

	if h.fourScreen {
		h.mirroring = MirrorFourScreen
	} else if flags6&0x01 != 0 {
		h.mirroring = MirrorVertical
	} else {
		h.mirroring = MirrorHorizontal
	}

	mapperLow := (flags6 & 0xF0) >> 4
	mapperHigh := flags7 & 0xF0
	h.mapperID = mapperHigh | mapperLow

	isNES20 := (flags7 & 0x0C) == 0x08
	if isNES20 {
		h.prgBanks = (uint16(flags8&0x07) << 8) | prgChunks
		h.chrBanks = (uint16(flags8&0x38) >> 3 << 8) | chrChunks
	} else {
		h.prgBanks = prgChunks
		h.chrBanks = chrChunks
	}

	return h
}

// createMapper instantiates the appropriate mapper for the given mapper ID.
// The cartridge is passed in so the mapper can address its PRG/CHR slices
// directly without a second copy.
func createMapper(c *Cartridge, mirroring MirrorMode) (Mapper, error) {
	switch c.mapperID {
	case 0:
		// NROM. Games: Super Mario Bros., Donkey Kong, Ice Climber.
		return NewMapper0(c, mirroring), nil
	case 4:
		// MMC3. Games: Super Mario Bros. 2/3, Mega Man 3-6.
		return NewMapper4(c, mirroring), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedMapper, c.mapperID)
	}
}

// GetMapper returns the cartridge's mapper.
func (c *Cartridge) GetMapper() Mapper { return c.mapper }

// GetMapperID returns the mapper number.
func (c *Cartridge) GetMapperID() uint8 { return c.mapperID }

// Mirroring returns the mapper's current nametable mirroring mode. Callers
// should prefer this over any cached header value since MMC3 overrides it.
func (c *Cartridge) Mirroring() MirrorMode { return c.mapper.Mirroring() }

// GetPRGBanks returns the number of 16KB PRG-ROM banks declared by the
// header.
func (c *Cartridge) GetPRGBanks() uint16 { return c.prgBanks }

// GetCHRBanks returns the number of 8KB CHR-ROM banks declared by the
// header.
func (c *Cartridge) GetCHRBanks() uint16 { return c.chrBanks }

// HasSaveRAM returns whether the cartridge declares battery-backed PRG-RAM.
func (c *Cartridge) HasSaveRAM() bool { return c.hasSaveRAM }

// CPURead routes a CPU-space access ($4020-$FFFF, by convention also
// $6000-$7FFF for PRG-RAM-bearing mappers) through the active mapper.
func (c *Cartridge) CPURead(addr uint16) (uint8, bool) {
	mapped, ok := c.mapper.CPUMapRead(addr)
	if !ok {
		return 0, false
	}
	if mapped == MappedInternally {
		return c.mapper.ReadInternal(addr), true
	}
	if int(mapped) < len(c.prgROM) {
		return c.prgROM[mapped], true
	}
	return 0, true
}

// CPUWrite routes a CPU-space write through the active mapper.
func (c *Cartridge) CPUWrite(addr uint16, data uint8) bool {
	mapped, ok := c.mapper.CPUMapWrite(addr, data)
	if !ok {
		return false
	}
	if mapped == MappedInternally {
		c.mapper.WriteInternal(addr, data)
		return true
	}
	if int(mapped) < len(c.prgROM) {
		c.prgROM[mapped] = data
	}
	return true
}

// PPURead routes a PPU-space access ($0000-$1FFF) through the active
// mapper into CHR memory.
func (c *Cartridge) PPURead(addr uint16) (uint8, bool) {
	mapped, ok := c.mapper.PPUMapRead(addr)
	if !ok {
		return 0, false
	}
	if int(mapped) < len(c.chrMem) {
		return c.chrMem[mapped], true
	}
	return 0, true
}

// PPUWrite routes a PPU-space write into CHR-RAM, if present.
func (c *Cartridge) PPUWrite(addr uint16, data uint8) bool {
	mapped, ok := c.mapper.PPUMapWrite(addr, data)
	if !ok {
		return false
	}
	if c.chrIsRAM && int(mapped) < len(c.chrMem) {
		c.chrMem[mapped] = data
	}
	return true
}

// Reset re-initializes the mapper's registers. Cartridge memories are
// untouched.
func (c *Cartridge) Reset() {
	c.mapper.Reset()
}
