package cpu

import (
	"fmt"
	"reflect"
)

// MemReader is the minimal read-only interface Disassemble needs; bus.Bus
// satisfies it.
type MemReader interface {
	CPURead(addr uint16) uint8
}

// DisassembledLine is one decoded instruction, used by debugging frontends
// to print a trace or a disassembly view.
type DisassembledLine struct {
	Addr uint16
	Text string
}

// Disassemble decodes every instruction between start and end (inclusive)
// without side effects on CPU state, using mem directly rather than going
// through the CPU's own read/write so callers can disassemble while the
// emulator is stopped.
func Disassemble(mem MemReader, start, end uint16) []DisassembledLine {
	var lines []DisassembledLine
	addr := uint32(start)

	for addr <= uint32(end) {
		lineAddr := uint16(addr)
		opcode := mem.CPURead(uint16(addr))
		addr++

		inst := instructionTable[opcode]
		text := fmt.Sprintf("$%04X: %s", lineAddr, inst.name)

		switch modeKey(inst.mode) {
		case modeIMP:
			text += " {IMP}"
		case modeIMM:
			val := mem.CPURead(uint16(addr))
			addr++
			text += fmt.Sprintf(" #$%02X {IMM}", val)
		case modeZP0:
			val := mem.CPURead(uint16(addr))
			addr++
			text += fmt.Sprintf(" $%02X {ZP0}", val)
		case modeZPX:
			val := mem.CPURead(uint16(addr))
			addr++
			text += fmt.Sprintf(" $%02X,X {ZPX}", val)
		case modeZPY:
			val := mem.CPURead(uint16(addr))
			addr++
			text += fmt.Sprintf(" $%02X,Y {ZPY}", val)
		case modeIZX:
			val := mem.CPURead(uint16(addr))
			addr++
			text += fmt.Sprintf(" ($%02X,X) {IZX}", val)
		case modeIZY:
			val := mem.CPURead(uint16(addr))
			addr++
			text += fmt.Sprintf(" ($%02X),Y {IZY}", val)
		case modeABS:
			lo := uint16(mem.CPURead(uint16(addr)))
			addr++
			hi := uint16(mem.CPURead(uint16(addr)))
			addr++
			text += fmt.Sprintf(" $%04X {ABS}", (hi<<8)|lo)
		case modeABX:
			lo := uint16(mem.CPURead(uint16(addr)))
			addr++
			hi := uint16(mem.CPURead(uint16(addr)))
			addr++
			text += fmt.Sprintf(" $%04X,X {ABX}", (hi<<8)|lo)
		case modeABY:
			lo := uint16(mem.CPURead(uint16(addr)))
			addr++
			hi := uint16(mem.CPURead(uint16(addr)))
			addr++
			text += fmt.Sprintf(" $%04X,Y {ABY}", (hi<<8)|lo)
		case modeIND:
			lo := uint16(mem.CPURead(uint16(addr)))
			addr++
			hi := uint16(mem.CPURead(uint16(addr)))
			addr++
			text += fmt.Sprintf(" ($%04X) {IND}", (hi<<8)|lo)
		case modeREL:
			val := uint16(mem.CPURead(uint16(addr)))
			addr++
			if val&0x80 != 0 {
				val |= 0xFF00
			}
			text += fmt.Sprintf(" $%04X {REL}", uint16(lineAddr)+2+val)
		}

		lines = append(lines, DisassembledLine{Addr: lineAddr, Text: text})
	}

	return lines
}

// modeTag distinguishes addressing modes for the disassembler without
// relying on comparing func values, which Go forbids for non-nil
// comparisons.
type modeTag int

const (
	modeIMP modeTag = iota
	modeIMM
	modeZP0
	modeZPX
	modeZPY
	modeREL
	modeABS
	modeABX
	modeABY
	modeIND
	modeIZX
	modeIZY
)

var modeTagByPointer = map[uintptr]modeTag{
	reflect.ValueOf(addrIMP).Pointer(): modeIMP,
	reflect.ValueOf(addrIMM).Pointer(): modeIMM,
	reflect.ValueOf(addrZP0).Pointer(): modeZP0,
	reflect.ValueOf(addrZPX).Pointer(): modeZPX,
	reflect.ValueOf(addrZPY).Pointer(): modeZPY,
	reflect.ValueOf(addrREL).Pointer(): modeREL,
	reflect.ValueOf(addrABS).Pointer(): modeABS,
	reflect.ValueOf(addrABX).Pointer(): modeABX,
	reflect.ValueOf(addrABY).Pointer(): modeABY,
	reflect.ValueOf(addrIND).Pointer(): modeIND,
	reflect.ValueOf(addrIZX).Pointer(): modeIZX,
	reflect.ValueOf(addrIZY).Pointer(): modeIZY,
}

func modeKey(mode func(*CPU) uint8) modeTag {
	if tag, ok := modeTagByPointer[reflect.ValueOf(mode).Pointer()]; ok {
		return tag
	}
	return modeIMP
}
