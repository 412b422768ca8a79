package cpu

// Instruction describes one opcode: its mnemonic for disassembly, its
// addressing mode and execute functions, and its base cycle count before
// any addressing-mode/execute extra cycle is added.
type Instruction struct {
	name    string
	mode    func(*CPU) uint8
	execute func(*CPU) uint8
	cycles  uint8
}

// instructionTable is the full 256-entry opcode dispatch table. Unused
// opcodes decode to a no-op: either XXX/IMP or NOP with the opcode's
// addressing mode, each with its own base cycle count (2 to 8).
var instructionTable = [256]Instruction{
	{"BRK", addrIMP, (*CPU).opBRK, 7}, {"ORA", addrIZX, (*CPU).opORA, 6}, {"XXX", addrIMP, (*CPU).opXXX, 2}, {"XXX", addrIMP, (*CPU).opXXX, 8}, {"NOP", addrZP0, (*CPU).opNOP, 3}, {"ORA", addrZP0, (*CPU).opORA, 3}, {"ASL", addrZP0, (*CPU).opASL, 5}, {"XXX", addrIMP, (*CPU).opXXX, 5}, {"PHP", addrIMP, (*CPU).opPHP, 3}, {"ORA", addrIMM, (*CPU).opORA, 2}, {"ASL", addrIMP, (*CPU).opASL, 2}, {"XXX", addrIMP, (*CPU).opXXX, 2}, {"NOP", addrABS, (*CPU).opNOP, 4}, {"ORA", addrABS, (*CPU).opORA, 4}, {"ASL", addrABS, (*CPU).opASL, 6}, {"XXX", addrIMP, (*CPU).opXXX, 6},
	{"BPL", addrREL, (*CPU).opBPL, 2}, {"ORA", addrIZY, (*CPU).opORA, 5}, {"XXX", addrIMP, (*CPU).opXXX, 2}, {"XXX", addrIMP, (*CPU).opXXX, 8}, {"NOP", addrZPX, (*CPU).opNOP, 4}, {"ORA", addrZPX, (*CPU).opORA, 4}, {"ASL", addrZPX, (*CPU).opASL, 6}, {"XXX", addrIMP, (*CPU).opXXX, 6}, {"CLC", addrIMP, (*CPU).opCLC, 2}, {"ORA", addrABY, (*CPU).opORA, 4}, {"NOP", addrIMP, (*CPU).opNOP, 2}, {"XXX", addrIMP, (*CPU).opXXX, 7}, {"NOP", addrABX, (*CPU).opNOP, 4}, {"ORA", addrABX, (*CPU).opORA, 4}, {"ASL", addrABX, (*CPU).opASL, 7}, {"XXX", addrIMP, (*CPU).opXXX, 7},
	{"JSR", addrABS, (*CPU).opJSR, 6}, {"AND", addrIZX, (*CPU).opAND, 6}, {"XXX", addrIMP, (*CPU).opXXX, 2}, {"XXX", addrIMP, (*CPU).opXXX, 8}, {"BIT", addrZP0, (*CPU).opBIT, 3}, {"AND", addrZP0, (*CPU).opAND, 3}, {"ROL", addrZP0, (*CPU).opROL, 5}, {"XXX", addrIMP, (*CPU).opXXX, 5}, {"PLP", addrIMP, (*CPU).opPLP, 4}, {"AND", addrIMM, (*CPU).opAND, 2}, {"ROL", addrIMP, (*CPU).opROL, 2}, {"XXX", addrIMP, (*CPU).opXXX, 2}, {"BIT", addrABS, (*CPU).opBIT, 4}, {"AND", addrABS, (*CPU).opAND, 4}, {"ROL", addrABS, (*CPU).opROL, 6}, {"XXX", addrIMP, (*CPU).opXXX, 6},
	{"BMI", addrREL, (*CPU).opBMI, 2}, {"AND", addrIZY, (*CPU).opAND, 5}, {"XXX", addrIMP, (*CPU).opXXX, 2}, {"XXX", addrIMP, (*CPU).opXXX, 8}, {"NOP", addrZPX, (*CPU).opNOP, 4}, {"AND", addrZPX, (*CPU).opAND, 4}, {"ROL", addrZPX, (*CPU).opROL, 6}, {"XXX", addrIMP, (*CPU).opXXX, 6}, {"SEC", addrIMP, (*CPU).opSEC, 2}, {"AND", addrABY, (*CPU).opAND, 4}, {"NOP", addrIMP, (*CPU).opNOP, 2}, {"XXX", addrIMP, (*CPU).opXXX, 7}, {"NOP", addrABX, (*CPU).opNOP, 4}, {"AND", addrABX, (*CPU).opAND, 4}, {"ROL", addrABX, (*CPU).opROL, 7}, {"XXX", addrIMP, (*CPU).opXXX, 7},
	{"RTI", addrIMP, (*CPU).opRTI, 6}, {"EOR", addrIZX, (*CPU).opEOR, 6}, {"XXX", addrIMP, (*CPU).opXXX, 2}, {"XXX", addrIMP, (*CPU).opXXX, 8}, {"NOP", addrZP0, (*CPU).opNOP, 3}, {"EOR", addrZP0, (*CPU).opEOR, 3}, {"LSR", addrZP0, (*CPU).opLSR, 5}, {"XXX", addrIMP, (*CPU).opXXX, 5}, {"PHA", addrIMP, (*CPU).opPHA, 3}, {"EOR", addrIMM, (*CPU).opEOR, 2}, {"LSR", addrIMP, (*CPU).opLSR, 2}, {"XXX", addrIMP, (*CPU).opXXX, 2}, {"JMP", addrABS, (*CPU).opJMP, 3}, {"EOR", addrABS, (*CPU).opEOR, 4}, {"LSR", addrABS, (*CPU).opLSR, 6}, {"XXX", addrIMP, (*CPU).opXXX, 6},
	{"BVC", addrREL, (*CPU).opBVC, 2}, {"EOR", addrIZY, (*CPU).opEOR, 5}, {"XXX", addrIMP, (*CPU).opXXX, 2}, {"XXX", addrIMP, (*CPU).opXXX, 8}, {"NOP", addrZPX, (*CPU).opNOP, 4}, {"EOR", addrZPX, (*CPU).opEOR, 4}, {"LSR", addrZPX, (*CPU).opLSR, 6}, {"XXX", addrIMP, (*CPU).opXXX, 6}, {"CLI", addrIMP, (*CPU).opCLI, 2}, {"EOR", addrABY, (*CPU).opEOR, 4}, {"NOP", addrIMP, (*CPU).opNOP, 2}, {"XXX", addrIMP, (*CPU).opXXX, 7}, {"NOP", addrABX, (*CPU).opNOP, 4}, {"EOR", addrABX, (*CPU).opEOR, 4}, {"LSR", addrABX, (*CPU).opLSR, 7}, {"XXX", addrIMP, (*CPU).opXXX, 7},
	{"RTS", addrIMP, (*CPU).opRTS, 6}, {"ADC", addrIZX, (*CPU).opADC, 6}, {"XXX", addrIMP, (*CPU).opXXX, 2}, {"XXX", addrIMP, (*CPU).opXXX, 8}, {"NOP", addrZP0, (*CPU).opNOP, 3}, {"ADC", addrZP0, (*CPU).opADC, 3}, {"ROR", addrZP0, (*CPU).opROR, 5}, {"XXX", addrIMP, (*CPU).opXXX, 5}, {"PLA", addrIMP, (*CPU).opPLA, 4}, {"ADC", addrIMM, (*CPU).opADC, 2}, {"ROR", addrIMP, (*CPU).opROR, 2}, {"XXX", addrIMP, (*CPU).opXXX, 2}, {"JMP", addrIND, (*CPU).opJMP, 5}, {"ADC", addrABS, (*CPU).opADC, 4}, {"ROR", addrABS, (*CPU).opROR, 6}, {"XXX", addrIMP, (*CPU).opXXX, 6},
	{"BVS", addrREL, (*CPU).opBVS, 2}, {"ADC", addrIZY, (*CPU).opADC, 5}, {"XXX", addrIMP, (*CPU).opXXX, 2}, {"XXX", addrIMP, (*CPU).opXXX, 8}, {"NOP", addrZPX, (*CPU).opNOP, 4}, {"ADC", addrZPX, (*CPU).opADC, 4}, {"ROR", addrZPX, (*CPU).opROR, 6}, {"XXX", addrIMP, (*CPU).opXXX, 6}, {"SEI", addrIMP, (*CPU).opSEI, 2}, {"ADC", addrABY, (*CPU).opADC, 4}, {"NOP", addrIMP, (*CPU).opNOP, 2}, {"XXX", addrIMP, (*CPU).opXXX, 7}, {"NOP", addrABX, (*CPU).opNOP, 4}, {"ADC", addrABX, (*CPU).opADC, 4}, {"ROR", addrABX, (*CPU).opROR, 7}, {"XXX", addrIMP, (*CPU).opXXX, 7},
	{"NOP", addrIMM, (*CPU).opNOP, 2}, {"STA", addrIZX, (*CPU).opSTA, 6}, {"NOP", addrIMM, (*CPU).opNOP, 2}, {"XXX", addrIMP, (*CPU).opXXX, 6}, {"STY", addrZP0, (*CPU).opSTY, 3}, {"STA", addrZP0, (*CPU).opSTA, 3}, {"STX", addrZP0, (*CPU).opSTX, 3}, {"XXX", addrIMP, (*CPU).opXXX, 3}, {"DEY", addrIMP, (*CPU).opDEY, 2}, {"NOP", addrIMM, (*CPU).opNOP, 2}, {"TXA", addrIMP, (*CPU).opTXA, 2}, {"XXX", addrIMP, (*CPU).opXXX, 2}, {"STY", addrABS, (*CPU).opSTY, 4}, {"STA", addrABS, (*CPU).opSTA, 4}, {"STX", addrABS, (*CPU).opSTX, 4}, {"XXX", addrIMP, (*CPU).opXXX, 4},
	{"BCC", addrREL, (*CPU).opBCC, 2}, {"STA", addrIZY, (*CPU).opSTA, 6}, {"XXX", addrIMP, (*CPU).opXXX, 2}, {"XXX", addrIMP, (*CPU).opXXX, 6}, {"STY", addrZPX, (*CPU).opSTY, 4}, {"STA", addrZPX, (*CPU).opSTA, 4}, {"STX", addrZPY, (*CPU).opSTX, 4}, {"XXX", addrIMP, (*CPU).opXXX, 4}, {"TYA", addrIMP, (*CPU).opTYA, 2}, {"STA", addrABY, (*CPU).opSTA, 5}, {"TXS", addrIMP, (*CPU).opTXS, 2}, {"XXX", addrIMP, (*CPU).opXXX, 5}, {"NOP", addrABX, (*CPU).opNOP, 5}, {"STA", addrABX, (*CPU).opSTA, 5}, {"XXX", addrIMP, (*CPU).opXXX, 5}, {"XXX", addrIMP, (*CPU).opXXX, 5},
	{"LDY", addrIMM, (*CPU).opLDY, 2}, {"LDA", addrIZX, (*CPU).opLDA, 6}, {"LDX", addrIMM, (*CPU).opLDX, 2}, {"XXX", addrIMP, (*CPU).opXXX, 6}, {"LDY", addrZP0, (*CPU).opLDY, 3}, {"LDA", addrZP0, (*CPU).opLDA, 3}, {"LDX", addrZP0, (*CPU).opLDX, 3}, {"XXX", addrIMP, (*CPU).opXXX, 3}, {"TAY", addrIMP, (*CPU).opTAY, 2}, {"LDA", addrIMM, (*CPU).opLDA, 2}, {"TAX", addrIMP, (*CPU).opTAX, 2}, {"XXX", addrIMP, (*CPU).opXXX, 2}, {"LDY", addrABS, (*CPU).opLDY, 4}, {"LDA", addrABS, (*CPU).opLDA, 4}, {"LDX", addrABS, (*CPU).opLDX, 4}, {"XXX", addrIMP, (*CPU).opXXX, 4},
	{"BCS", addrREL, (*CPU).opBCS, 2}, {"LDA", addrIZY, (*CPU).opLDA, 5}, {"XXX", addrIMP, (*CPU).opXXX, 2}, {"XXX", addrIMP, (*CPU).opXXX, 5}, {"LDY", addrZPX, (*CPU).opLDY, 4}, {"LDA", addrZPX, (*CPU).opLDA, 4}, {"LDX", addrZPY, (*CPU).opLDX, 4}, {"XXX", addrIMP, (*CPU).opXXX, 4}, {"CLV", addrIMP, (*CPU).opCLV, 2}, {"LDA", addrABY, (*CPU).opLDA, 4}, {"TSX", addrIMP, (*CPU).opTSX, 2}, {"XXX", addrIMP, (*CPU).opXXX, 4}, {"LDY", addrABX, (*CPU).opLDY, 4}, {"LDA", addrABX, (*CPU).opLDA, 4}, {"LDX", addrABY, (*CPU).opLDX, 4}, {"XXX", addrIMP, (*CPU).opXXX, 4},
	{"CPY", addrIMM, (*CPU).opCPY, 2}, {"CMP", addrIZX, (*CPU).opCMP, 6}, {"NOP", addrIMM, (*CPU).opNOP, 2}, {"XXX", addrIMP, (*CPU).opXXX, 8}, {"CPY", addrZP0, (*CPU).opCPY, 3}, {"CMP", addrZP0, (*CPU).opCMP, 3}, {"DEC", addrZP0, (*CPU).opDEC, 5}, {"XXX", addrIMP, (*CPU).opXXX, 5}, {"INY", addrIMP, (*CPU).opINY, 2}, {"CMP", addrIMM, (*CPU).opCMP, 2}, {"DEX", addrIMP, (*CPU).opDEX, 2}, {"XXX", addrIMP, (*CPU).opXXX, 2}, {"CPY", addrABS, (*CPU).opCPY, 4}, {"CMP", addrABS, (*CPU).opCMP, 4}, {"DEC", addrABS, (*CPU).opDEC, 6}, {"XXX", addrIMP, (*CPU).opXXX, 6},
	{"BNE", addrREL, (*CPU).opBNE, 2}, {"CMP", addrIZY, (*CPU).opCMP, 5}, {"XXX", addrIMP, (*CPU).opXXX, 2}, {"XXX", addrIMP, (*CPU).opXXX, 8}, {"NOP", addrZPX, (*CPU).opNOP, 4}, {"CMP", addrZPX, (*CPU).opCMP, 4}, {"DEC", addrZPX, (*CPU).opDEC, 6}, {"XXX", addrIMP, (*CPU).opXXX, 6}, {"CLD", addrIMP, (*CPU).opCLD, 2}, {"CMP", addrABY, (*CPU).opCMP, 4}, {"NOP", addrIMP, (*CPU).opNOP, 2}, {"XXX", addrIMP, (*CPU).opXXX, 7}, {"NOP", addrABX, (*CPU).opNOP, 4}, {"CMP", addrABX, (*CPU).opCMP, 4}, {"DEC", addrABX, (*CPU).opDEC, 7}, {"XXX", addrIMP, (*CPU).opXXX, 7},
	{"CPX", addrIMM, (*CPU).opCPX, 2}, {"SBC", addrIZX, (*CPU).opSBC, 6}, {"NOP", addrIMM, (*CPU).opNOP, 2}, {"XXX", addrIMP, (*CPU).opXXX, 8}, {"CPX", addrZP0, (*CPU).opCPX, 3}, {"SBC", addrZP0, (*CPU).opSBC, 3}, {"INC", addrZP0, (*CPU).opINC, 5}, {"XXX", addrIMP, (*CPU).opXXX, 5}, {"INX", addrIMP, (*CPU).opINX, 2}, {"SBC", addrIMM, (*CPU).opSBC, 2}, {"NOP", addrIMP, (*CPU).opNOP, 2}, {"SBC", addrIMM, (*CPU).opSBC, 2}, {"CPX", addrABS, (*CPU).opCPX, 4}, {"SBC", addrABS, (*CPU).opSBC, 4}, {"INC", addrABS, (*CPU).opINC, 6}, {"XXX", addrIMP, (*CPU).opXXX, 6},
	{"BEQ", addrREL, (*CPU).opBEQ, 2}, {"SBC", addrIZY, (*CPU).opSBC, 5}, {"XXX", addrIMP, (*CPU).opXXX, 2}, {"XXX", addrIMP, (*CPU).opXXX, 8}, {"NOP", addrZPX, (*CPU).opNOP, 4}, {"SBC", addrZPX, (*CPU).opSBC, 4}, {"INC", addrZPX, (*CPU).opINC, 6}, {"XXX", addrIMP, (*CPU).opXXX, 6}, {"SED", addrIMP, (*CPU).opSED, 2}, {"SBC", addrABY, (*CPU).opSBC, 4}, {"NOP", addrIMP, (*CPU).opNOP, 2}, {"XXX", addrIMP, (*CPU).opXXX, 7}, {"NOP", addrABX, (*CPU).opNOP, 4}, {"SBC", addrABX, (*CPU).opSBC, 4}, {"INC", addrABX, (*CPU).opINC, 7}, {"XXX", addrIMP, (*CPU).opXXX, 7},
}
