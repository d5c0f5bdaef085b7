package mos6502

// The 6502 dispatch tables: two parallel 256-entry arrays indexed by
// opcode byte, one giving the addressing-mode resolver and one giving
// the operation. Unknown opcodes default to IMPLICIT addressing and
// the no-op operation, matching the spec's "all unknown opcodes behave
// as no-ops" rule - there is no undocumented-opcode support here.
// https://www.nesdev.org/obelisk-6502-guide/reference.html

type addrFn func(c *CPU)
type opFn func(c *CPU)

var addressingTable [256]addrFn
var operationTable [256]opFn

func def(code uint8, mode addrFn, op opFn) {
	addressingTable[code] = mode
	operationTable[code] = op
}

func init() {
	for i := range addressingTable {
		addressingTable[i] = resolveIMP
		operationTable[i] = opUND
	}

	// ADC
	def(0x69, resolveIMM, opADC)
	def(0x65, resolveZPG, opADC)
	def(0x75, resolveZPX, opADC)
	def(0x6D, resolveABS, opADC)
	def(0x7D, resolveABX, opADC)
	def(0x79, resolveABY, opADC)
	def(0x61, resolveIDX, opADC)
	def(0x71, resolveIDY, opADC)

	// AND
	def(0x29, resolveIMM, opAND)
	def(0x25, resolveZPG, opAND)
	def(0x35, resolveZPX, opAND)
	def(0x2D, resolveABS, opAND)
	def(0x3D, resolveABX, opAND)
	def(0x39, resolveABY, opAND)
	def(0x21, resolveIDX, opAND)
	def(0x31, resolveIDY, opAND)

	// ASL
	def(0x0A, resolveACC, opASL)
	def(0x06, resolveZPG, opASL)
	def(0x16, resolveZPX, opASL)
	def(0x0E, resolveABS, opASL)
	def(0x1E, resolveABX, opASL)

	// Branches
	def(0x90, resolveREL, opBCC)
	def(0xB0, resolveREL, opBCS)
	def(0xF0, resolveREL, opBEQ)
	def(0x30, resolveREL, opBMI)
	def(0xD0, resolveREL, opBNE)
	def(0x10, resolveREL, opBPL)
	def(0x50, resolveREL, opBVC)
	def(0x70, resolveREL, opBVS)

	// BIT
	def(0x24, resolveZPG, opBIT)
	def(0x2C, resolveABS, opBIT)

	// BRK
	def(0x00, resolveIMP, opBRK)

	// Flag ops
	def(0x18, resolveIMP, opCLC)
	def(0xD8, resolveIMP, opCLD)
	def(0x58, resolveIMP, opCLI)
	def(0xB8, resolveIMP, opCLV)
	def(0x38, resolveIMP, opSEC)
	def(0xF8, resolveIMP, opSED)
	def(0x78, resolveIMP, opSEI)

	// CMP
	def(0xC9, resolveIMM, opCMP)
	def(0xC5, resolveZPG, opCMP)
	def(0xD5, resolveZPX, opCMP)
	def(0xCD, resolveABS, opCMP)
	def(0xDD, resolveABX, opCMP)
	def(0xD9, resolveABY, opCMP)
	def(0xC1, resolveIDX, opCMP)
	def(0xD1, resolveIDY, opCMP)

	// CPX / CPY
	def(0xE0, resolveIMM, opCPX)
	def(0xE4, resolveZPG, opCPX)
	def(0xEC, resolveABS, opCPX)
	def(0xC0, resolveIMM, opCPY)
	def(0xC4, resolveZPG, opCPY)
	def(0xCC, resolveABS, opCPY)

	// DEC / DEX / DEY
	def(0xC6, resolveZPG, opDEC)
	def(0xD6, resolveZPX, opDEC)
	def(0xCE, resolveABS, opDEC)
	def(0xDE, resolveABX, opDEC)
	def(0xCA, resolveIMP, opDEX)
	def(0x88, resolveIMP, opDEY)

	// EOR
	def(0x49, resolveIMM, opEOR)
	def(0x45, resolveZPG, opEOR)
	def(0x55, resolveZPX, opEOR)
	def(0x4D, resolveABS, opEOR)
	def(0x5D, resolveABX, opEOR)
	def(0x59, resolveABY, opEOR)
	def(0x41, resolveIDX, opEOR)
	def(0x51, resolveIDY, opEOR)

	// INC / INX / INY
	def(0xE6, resolveZPG, opINC)
	def(0xF6, resolveZPX, opINC)
	def(0xEE, resolveABS, opINC)
	def(0xFE, resolveABX, opINC)
	def(0xE8, resolveIMP, opINX)
	def(0xC8, resolveIMP, opINY)

	// JMP / JSR
	def(0x4C, resolveABS, opJMP)
	def(0x6C, resolveIND, opJMP)
	def(0x20, resolveABS, opJSR)

	// LDA / LDX / LDY
	def(0xA9, resolveIMM, opLDA)
	def(0xA5, resolveZPG, opLDA)
	def(0xB5, resolveZPX, opLDA)
	def(0xAD, resolveABS, opLDA)
	def(0xBD, resolveABX, opLDA)
	def(0xB9, resolveABY, opLDA)
	def(0xA1, resolveIDX, opLDA)
	def(0xB1, resolveIDY, opLDA)

	def(0xA2, resolveIMM, opLDX)
	def(0xA6, resolveZPG, opLDX)
	def(0xB6, resolveZPY, opLDX)
	def(0xAE, resolveABS, opLDX)
	def(0xBE, resolveABY, opLDX)

	def(0xA0, resolveIMM, opLDY)
	def(0xA4, resolveZPG, opLDY)
	def(0xB4, resolveZPX, opLDY)
	def(0xAC, resolveABS, opLDY)
	def(0xBC, resolveABX, opLDY)

	// LSR
	def(0x4A, resolveACC, opLSR)
	def(0x46, resolveZPG, opLSR)
	def(0x56, resolveZPX, opLSR)
	def(0x4E, resolveABS, opLSR)
	def(0x5E, resolveABX, opLSR)

	// NOP
	def(0xEA, resolveIMP, opNOP)

	// ORA
	def(0x09, resolveIMM, opORA)
	def(0x05, resolveZPG, opORA)
	def(0x15, resolveZPX, opORA)
	def(0x0D, resolveABS, opORA)
	def(0x1D, resolveABX, opORA)
	def(0x19, resolveABY, opORA)
	def(0x01, resolveIDX, opORA)
	def(0x11, resolveIDY, opORA)

	// Stack ops
	def(0x48, resolveIMP, opPHA)
	def(0x08, resolveIMP, opPHP)
	def(0x68, resolveIMP, opPLA)
	def(0x28, resolveIMP, opPLP)

	// ROL / ROR
	def(0x2A, resolveACC, opROL)
	def(0x26, resolveZPG, opROL)
	def(0x36, resolveZPX, opROL)
	def(0x2E, resolveABS, opROL)
	def(0x3E, resolveABX, opROL)

	def(0x6A, resolveACC, opROR)
	def(0x66, resolveZPG, opROR)
	def(0x76, resolveZPX, opROR)
	def(0x6E, resolveABS, opROR)
	def(0x7E, resolveABX, opROR)

	// RTI / RTS
	def(0x40, resolveIMP, opRTI)
	def(0x60, resolveIMP, opRTS)

	// SBC
	def(0xE9, resolveIMM, opSBC)
	def(0xE5, resolveZPG, opSBC)
	def(0xF5, resolveZPX, opSBC)
	def(0xED, resolveABS, opSBC)
	def(0xFD, resolveABX, opSBC)
	def(0xF9, resolveABY, opSBC)
	def(0xE1, resolveIDX, opSBC)
	def(0xF1, resolveIDY, opSBC)

	// STA / STX / STY
	def(0x85, resolveZPG, opSTA)
	def(0x95, resolveZPX, opSTA)
	def(0x8D, resolveABS, opSTA)
	def(0x9D, resolveABX, opSTA)
	def(0x99, resolveABY, opSTA)
	def(0x81, resolveIDX, opSTA)
	def(0x91, resolveIDY, opSTA)

	def(0x86, resolveZPG, opSTX)
	def(0x96, resolveZPY, opSTX)
	def(0x8E, resolveABS, opSTX)

	def(0x84, resolveZPG, opSTY)
	def(0x94, resolveZPX, opSTY)
	def(0x8C, resolveABS, opSTY)

	// Register transfers
	def(0xAA, resolveIMP, opTAX)
	def(0xA8, resolveIMP, opTAY)
	def(0xBA, resolveIMP, opTSX)
	def(0x8A, resolveIMP, opTXA)
	def(0x9A, resolveIMP, opTXS)
	def(0x98, resolveIMP, opTYA)
}
