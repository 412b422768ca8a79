package ppu

// spriteEvaluation scans all 64 sprites in OAM against the upcoming
// scanline and copies up to 8 visible ones into secondary OAM. Runs once
// per scanline at cycle 257.
func (p *PPU) spriteEvaluation() {
	for i := range p.secondaryOAM {
		p.secondaryOAM[i] = 0xFF
	}

	p.spriteCount = 0
	p.sprite0Present = false

	if !p.mask.IsRenderingEnabled() {
		return
	}

	spriteHeight := uint16(8)
	if p.control.SpriteSize() != 0 {
		spriteHeight = 16
	}

	for i := uint8(0); i < 64; i++ {
		oamIndex := uint16(i) * 4
		spriteY := uint16(p.oam[oamIndex])

		diff := uint16(p.scanline) - spriteY
		if diff < spriteHeight {
			if p.spriteCount >= 8 {
				p.status.SetSpriteOverflow(true)
				break
			}

			secondaryIndex := uint16(p.spriteCount) * 4
			p.secondaryOAM[secondaryIndex+0] = p.oam[oamIndex+0]
			p.secondaryOAM[secondaryIndex+1] = p.oam[oamIndex+1]
			p.secondaryOAM[secondaryIndex+2] = p.oam[oamIndex+2]
			p.secondaryOAM[secondaryIndex+3] = p.oam[oamIndex+3]

			if i == 0 {
				p.sprite0Present = true
			}

			p.spriteCount++
		}
	}
}

// spriteFetching loads the pattern shifters and X countdown counters for
// every sprite evaluated onto the current scanline. Runs once per scanline
// at cycle 320, mirroring the background pipeline's own fetch-then-load
// split.
func (p *PPU) spriteFetching() {
	spriteHeight := uint16(8)
	spritePatternTable := p.control.SpritePatternTable()
	if p.control.SpriteSize() != 0 {
		spriteHeight = 16
	}

	for i := uint8(0); i < p.spriteCount; i++ {
		secondaryIndex := uint16(i) * 4

		spriteY := p.secondaryOAM[secondaryIndex+0]
		tileIndex := p.secondaryOAM[secondaryIndex+1]
		attributes := p.secondaryOAM[secondaryIndex+2]
		spriteX := p.secondaryOAM[secondaryIndex+3]

		p.spriteAttributes[i] = attributes
		p.spriteCounters[i] = spriteX

		spriteRow := uint16(p.scanline) - uint16(spriteY)

		if attributes&0x80 != 0 {
			spriteRow = spriteHeight - 1 - spriteRow
		}

		var patternAddress uint16
		if spriteHeight == 16 {
			if spriteRow < 8 {
				patternAddress = (uint16(tileIndex&0x01) << 12) |
					(uint16(tileIndex&0xFE) << 4) |
					(spriteRow & 0x07)
			} else {
				patternAddress = (uint16(tileIndex&0x01) << 12) |
					((uint16(tileIndex&0xFE) + 1) << 4) |
					((spriteRow - 8) & 0x07)
			}
		} else {
			patternAddress = (spritePatternTable << 12) |
				(uint16(tileIndex) << 4) |
				(spriteRow & 0x07)
		}

		patternLow := p.ppuRead(patternAddress)
		patternHigh := p.ppuRead(patternAddress + 8)

		if attributes&0x40 != 0 {
			patternLow = reverseByte(patternLow)
			patternHigh = reverseByte(patternHigh)
		}

		p.spriteShifterPatternLo[i] = patternLow
		p.spriteShifterPatternHi[i] = patternHigh
	}

	for i := p.spriteCount; i < 8; i++ {
		p.spriteShifterPatternLo[i] = 0
		p.spriteShifterPatternHi[i] = 0
		p.spriteCounters[i] = 0xFF
	}
}

func reverseByte(b uint8) uint8 {
	b = (b&0xF0)>>4 | (b&0x0F)<<4
	b = (b&0xCC)>>2 | (b&0x33)<<2
	b = (b&0xAA)>>1 | (b&0x55)<<1
	return b
}

// updateSpriteShifters advances every active sprite's X countdown and
// pattern shifter by one pixel dot. A sprite with a nonzero counter is not
// yet on-screen this pixel and simply ticks its counter down; a sprite
// whose counter has reached zero is actively shifting out its current
// pixel column. This is the literal per-dot model the PPU's hardware
// actually implements, as opposed to computing an X offset at render time.
func (p *PPU) updateSpriteShifters() {
	if !p.mask.RenderSprites() {
		return
	}
	for i := uint8(0); i < p.spriteCount; i++ {
		if p.spriteCounters[i] > 0 {
			p.spriteCounters[i]--
		} else {
			p.spriteShifterPatternLo[i] <<= 1
			p.spriteShifterPatternHi[i] <<= 1
		}
	}
}

// renderSprites composes the sprite pixel for the current dot from
// whichever sprite shifters have an exhausted counter, in OAM priority
// order (lowest index wins).
func (p *PPU) renderSprites(x uint16) (pixel uint8, palette uint8, priority bool, isSprite0 bool) {
	if !p.mask.RenderSprites() {
		return 0, 0, false, false
	}
	if x < 8 && !p.mask.RenderSpritesLeft() {
		return 0, 0, false, false
	}

	for i := uint8(0); i < p.spriteCount; i++ {
		if p.spriteCounters[i] != 0 {
			continue
		}

		pixelLow := (p.spriteShifterPatternLo[i] >> 7) & 0x01
		pixelHigh := (p.spriteShifterPatternHi[i] >> 7) & 0x01
		pixelValue := (pixelHigh << 1) | pixelLow

		if pixelValue == 0 {
			continue
		}

		spritePalette := p.spriteAttributes[i] & 0x03
		spritePriority := (p.spriteAttributes[i] & 0x20) == 0
		sprite0 := (i == 0) && p.sprite0Present

		return pixelValue, spritePalette, spritePriority, sprite0
	}

	return 0, 0, false, false
}
