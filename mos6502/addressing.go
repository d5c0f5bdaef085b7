package mos6502

// Each resolver runs after the opcode byte has already been consumed;
// PC points at the first operand byte (if any). A resolver advances PC
// over the bytes it reads and populates c.op. See the addressing-mode
// table in the system specification for the exact bytes/address/value
// contract each mode must honor.

// resolveIMP: implicit, no operand bytes.
func resolveIMP(c *CPU) {}

// resolveACC: operates on the accumulator; no operand bytes.
func resolveACC(c *CPU) {
	c.op.value = uint16(c.A)
	c.op.setAcc = true
}

// resolveIMM: the operand is the byte immediately following the opcode.
func resolveIMM(c *CPU) {
	c.op.address = c.PC
	c.op.value = uint16(c.Read(c.PC))
	c.PC++
}

// resolveZPG: a single zero-page address byte.
func resolveZPG(c *CPU) {
	addr := uint16(c.Read(c.PC))
	c.PC++
	c.op.address = addr
	c.op.value = uint16(c.Read(addr))
}

// resolveZPX: zero-page address plus X, wrapping within the page.
func resolveZPX(c *CPU) {
	base := c.Read(c.PC)
	c.PC++
	addr := uint16(base + c.X)
	c.op.address = addr
	c.op.value = uint16(c.Read(addr))
}

// resolveZPY: zero-page address plus Y, wrapping within the page.
func resolveZPY(c *CPU) {
	base := c.Read(c.PC)
	c.PC++
	addr := uint16(base + c.Y)
	c.op.address = addr
	c.op.value = uint16(c.Read(addr))
}

// resolveREL: a signed 8-bit offset, sign-extended to 16 bits. The
// branch target is computed by the branching operation as
// PC-after-operand plus this offset.
func resolveREL(c *CPU) {
	off := int8(c.Read(c.PC))
	c.PC++
	c.op.address = uint16(int16(off))
}

// resolveABS: a little-endian 16-bit address.
func resolveABS(c *CPU) {
	lo := uint16(c.Read(c.PC))
	hi := uint16(c.Read(c.PC + 1))
	c.PC += 2
	addr := lo | hi<<8
	c.op.address = addr
	c.op.value = uint16(c.Read(addr))
}

// resolveABX: absolute address plus X, a full 16-bit add (no page-cross
// penalty is modeled).
func resolveABX(c *CPU) {
	lo := uint16(c.Read(c.PC))
	hi := uint16(c.Read(c.PC + 1))
	c.PC += 2
	addr := (lo | hi<<8) + uint16(c.X)
	c.op.address = addr
	c.op.value = uint16(c.Read(addr))
}

// resolveABY: absolute address plus Y.
func resolveABY(c *CPU) {
	lo := uint16(c.Read(c.PC))
	hi := uint16(c.Read(c.PC + 1))
	c.PC += 2
	addr := (lo | hi<<8) + uint16(c.Y)
	c.op.address = addr
	c.op.value = uint16(c.Read(addr))
}

// resolveIND: indirect JMP target. Reproduces the NMOS page-wrap bug -
// when the vector's low byte is at the end of a page ($xxFF), the high
// byte is fetched from $xx00, not the start of the next page.
func resolveIND(c *CPU) {
	lo := uint16(c.Read(c.PC))
	hi := uint16(c.Read(c.PC + 1))
	c.PC += 2
	vec := lo | hi<<8
	loAddr := vec
	hiAddr := (vec & 0xFF00) | ((vec + 1) & 0x00FF)
	addr := uint16(c.Read(loAddr)) | uint16(c.Read(hiAddr))<<8
	c.op.address = addr
	c.op.value = uint16(c.Read(addr))
}

// resolveIDX: (zp,X) indexed indirect. The pointer fetch wraps inside
// zero page both for the base+X step and for the low/high byte pair.
func resolveIDX(c *CPU) {
	base := c.Read(c.PC)
	c.PC++
	ptr := base + c.X
	lo := uint16(c.Read(uint16(ptr)))
	hi := uint16(c.Read(uint16(ptr + 1)))
	addr := lo | hi<<8
	c.op.address = addr
	c.op.value = uint16(c.Read(addr))
}

// resolveIDY: (zp),Y indirect indexed. The pointer's low/high bytes are
// fetched from zero page (wrapping there), then Y is added as a full
// 16-bit offset that may cross a page.
func resolveIDY(c *CPU) {
	base := c.Read(c.PC)
	c.PC++
	lo := uint16(c.Read(uint16(base)))
	hi := uint16(c.Read(uint16(base + 1)))
	addr := (lo | hi<<8) + uint16(c.Y)
	c.op.address = addr
	c.op.value = uint16(c.Read(addr))
}
