package cpu

// Addressing mode functions compute addrAbs (or addrRel for relative
// branches) and return 1 when the mode can incur an extra page-crossing
// cycle that the instruction actually uses, 0 otherwise. The final extra
// cycle count for an instruction is addrMode-extra & execute-extra, so an
// instruction that never charges for page crossing (STA, and all
// read-modify-write instructions) simply ignores what the addressing mode
// returns.

// addrIMP: implied / accumulator. The operand, if any, is the accumulator.
func addrIMP(c *CPU) uint8 {
	c.isImplied = true
	c.fetched = c.A
	return 0
}

// addrIMM: immediate. Operand is the byte following the opcode.
func addrIMM(c *CPU) uint8 {
	c.addrAbs = c.PC
	c.PC++
	return 0
}

// addrZP0: zero page.
func addrZP0(c *CPU) uint8 {
	c.addrAbs = uint16(c.read(c.PC))
	c.PC++
	c.addrAbs &= 0x00FF
	return 0
}

// addrZPX: zero page, X-indexed. Wraps within the zero page.
func addrZPX(c *CPU) uint8 {
	c.addrAbs = uint16(c.read(c.PC) + c.X)
	c.PC++
	c.addrAbs &= 0x00FF
	return 0
}

// addrZPY: zero page, Y-indexed. Wraps within the zero page.
func addrZPY(c *CPU) uint8 {
	c.addrAbs = uint16(c.read(c.PC) + c.Y)
	c.PC++
	c.addrAbs &= 0x00FF
	return 0
}

// addrREL: relative, used only by branch instructions. Computes a signed
// 8-bit offset but does not apply it; the branch op itself decides whether
// to jump and charges the page-cross penalty.
func addrREL(c *CPU) uint8 {
	rel := uint16(c.read(c.PC))
	c.PC++
	if rel&0x80 != 0 {
		rel |= 0xFF00
	}
	c.addrRel = rel
	return 0
}

// addrABS: absolute, 16-bit little-endian address.
func addrABS(c *CPU) uint8 {
	lo := uint16(c.read(c.PC))
	c.PC++
	hi := uint16(c.read(c.PC))
	c.PC++
	c.addrAbs = (hi << 8) | lo
	return 0
}

// addrABX: absolute, X-indexed. Charges an extra cycle when indexing
// crosses a page boundary.
func addrABX(c *CPU) uint8 {
	lo := uint16(c.read(c.PC))
	c.PC++
	hi := uint16(c.read(c.PC))
	c.PC++
	base := (hi << 8) | lo
	c.addrAbs = base + uint16(c.X)
	if (c.addrAbs & 0xFF00) != (hi << 8) {
		return 1
	}
	return 0
}

// addrABY: absolute, Y-indexed. Charges an extra cycle on page crossing.
func addrABY(c *CPU) uint8 {
	lo := uint16(c.read(c.PC))
	c.PC++
	hi := uint16(c.read(c.PC))
	c.PC++
	base := (hi << 8) | lo
	c.addrAbs = base + uint16(c.Y)
	if (c.addrAbs & 0xFF00) != (hi << 8) {
		return 1
	}
	return 0
}

// addrIND: indirect, used only by JMP. Reproduces the original 6502's
// page-boundary bug: when the low byte of the pointer is 0xFF, the high
// byte is fetched from the start of the same page rather than the next
// page.
func addrIND(c *CPU) uint8 {
	ptrLo := uint16(c.read(c.PC))
	c.PC++
	ptrHi := uint16(c.read(c.PC))
	c.PC++
	ptr := (ptrHi << 8) | ptrLo

	var hiAddr uint16
	if ptrLo == 0x00FF {
		hiAddr = ptr & 0xFF00
	} else {
		hiAddr = ptr + 1
	}

	lo := uint16(c.read(ptr))
	hi := uint16(c.read(hiAddr))
	c.addrAbs = (hi << 8) | lo
	return 0
}

// addrIZX: indexed indirect, (zp,X). X is added to the zero-page operand
// and the pointer address wraps within the zero page.
func addrIZX(c *CPU) uint8 {
	t := uint16(c.read(c.PC))
	c.PC++

	lo := uint16(c.read((t + uint16(c.X)) & 0x00FF))
	hi := uint16(c.read((t + uint16(c.X) + 1) & 0x00FF))
	c.addrAbs = (hi << 8) | lo
	return 0
}

// addrIZY: indirect indexed, (zp),Y. Charges an extra cycle when adding Y
// crosses a page boundary.
func addrIZY(c *CPU) uint8 {
	t := uint16(c.read(c.PC))
	c.PC++

	lo := uint16(c.read(t & 0x00FF))
	hi := uint16(c.read((t + 1) & 0x00FF))

	base := (hi << 8) | lo
	c.addrAbs = base + uint16(c.Y)
	if (c.addrAbs & 0xFF00) != (hi << 8) {
		return 1
	}
	return 0
}
