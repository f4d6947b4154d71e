// Copyright 2026 Carl Dahl. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// An opsym is an internal symbol used to associate an opcode's data
// with its instructions.
type opsym byte

const (
	symADC opsym = iota
	symAND
	symASL
	symBCC
	symBCS
	symBEQ
	symBIT
	symBMI
	symBNE
	symBPL
	symBRK
	symBVC
	symBVS
	symCLC
	symCLD
	symCLI
	symCLV
	symCMP
	symCPX
	symCPY
	symDEC
	symDEX
	symDEY
	symEOR
	symINC
	symINX
	symINY
	symJMP
	symJSR
	symLDA
	symLDX
	symLDY
	symLSR
	symNOP
	symORA
	symPHA
	symPHP
	symPLA
	symPLP
	symROL
	symROR
	symRTI
	symRTS
	symSBC
	symSEC
	symSED
	symSEI
	symSTA
	symSTX
	symSTY
	symTAX
	symTAY
	symTSX
	symTXA
	symTXS
	symTYA

	// Undocumented operations
	symALR
	symANC
	symARR
	symAXS
	symDCP
	symISB
	symJAM
	symLAS
	symLAX
	symRLA
	symRRA
	symSAX
	symSHA
	symSHX
	symSHY
	symSLO
	symSRE
	symTAS
	symXAA
)

type instfunc func(c *CPU, inst *Instruction, operand []byte)

// Emulator implementation for each operation
type opcodeImpl struct {
	sym  opsym
	name string
	fn   instfunc
}

var impl = []opcodeImpl{
	{symADC, "ADC", (*CPU).adc},
	{symAND, "AND", (*CPU).and},
	{symASL, "ASL", (*CPU).asl},
	{symBCC, "BCC", (*CPU).bcc},
	{symBCS, "BCS", (*CPU).bcs},
	{symBEQ, "BEQ", (*CPU).beq},
	{symBIT, "BIT", (*CPU).bit},
	{symBMI, "BMI", (*CPU).bmi},
	{symBNE, "BNE", (*CPU).bne},
	{symBPL, "BPL", (*CPU).bpl},
	{symBRK, "BRK", (*CPU).brk},
	{symBVC, "BVC", (*CPU).bvc},
	{symBVS, "BVS", (*CPU).bvs},
	{symCLC, "CLC", (*CPU).clc},
	{symCLD, "CLD", (*CPU).cld},
	{symCLI, "CLI", (*CPU).cli},
	{symCLV, "CLV", (*CPU).clv},
	{symCMP, "CMP", (*CPU).cmp},
	{symCPX, "CPX", (*CPU).cpx},
	{symCPY, "CPY", (*CPU).cpy},
	{symDEC, "DEC", (*CPU).dec},
	{symDEX, "DEX", (*CPU).dex},
	{symDEY, "DEY", (*CPU).dey},
	{symEOR, "EOR", (*CPU).eor},
	{symINC, "INC", (*CPU).inc},
	{symINX, "INX", (*CPU).inx},
	{symINY, "INY", (*CPU).iny},
	{symJMP, "JMP", (*CPU).jmp},
	{symJSR, "JSR", (*CPU).jsr},
	{symLDA, "LDA", (*CPU).lda},
	{symLDX, "LDX", (*CPU).ldx},
	{symLDY, "LDY", (*CPU).ldy},
	{symLSR, "LSR", (*CPU).lsr},
	{symNOP, "NOP", (*CPU).nop},
	{symORA, "ORA", (*CPU).ora},
	{symPHA, "PHA", (*CPU).pha},
	{symPHP, "PHP", (*CPU).php},
	{symPLA, "PLA", (*CPU).pla},
	{symPLP, "PLP", (*CPU).plp},
	{symROL, "ROL", (*CPU).rol},
	{symROR, "ROR", (*CPU).ror},
	{symRTI, "RTI", (*CPU).rti},
	{symRTS, "RTS", (*CPU).rts},
	{symSBC, "SBC", (*CPU).sbc},
	{symSEC, "SEC", (*CPU).sec},
	{symSED, "SED", (*CPU).sed},
	{symSEI, "SEI", (*CPU).sei},
	{symSTA, "STA", (*CPU).sta},
	{symSTX, "STX", (*CPU).stx},
	{symSTY, "STY", (*CPU).sty},
	{symTAX, "TAX", (*CPU).tax},
	{symTAY, "TAY", (*CPU).tay},
	{symTSX, "TSX", (*CPU).tsx},
	{symTXA, "TXA", (*CPU).txa},
	{symTXS, "TXS", (*CPU).txs},
	{symTYA, "TYA", (*CPU).tya},

	{symALR, "ALR", (*CPU).alr},
	{symANC, "ANC", (*CPU).anc},
	{symARR, "ARR", (*CPU).arr},
	{symAXS, "AXS", (*CPU).axs},
	{symDCP, "DCP", (*CPU).dcp},
	{symISB, "ISB", (*CPU).isb},
	{symJAM, "JAM", (*CPU).jam},
	{symLAS, "LAS", (*CPU).las},
	{symLAX, "LAX", (*CPU).lax},
	{symRLA, "RLA", (*CPU).rla},
	{symRRA, "RRA", (*CPU).rra},
	{symSAX, "SAX", (*CPU).sax},
	{symSHA, "SHA", (*CPU).unstable},
	{symSHX, "SHX", (*CPU).unstable},
	{symSHY, "SHY", (*CPU).unstable},
	{symSLO, "SLO", (*CPU).slo},
	{symSRE, "SRE", (*CPU).sre},
	{symTAS, "TAS", (*CPU).unstable},
	{symXAA, "XAA", (*CPU).unstable},
}

// Mode describes a memory addressing mode.
type Mode byte

// All possible memory addressing modes
const (
	IMM Mode = iota // Immediate
	IMP             // Implied (no operand)
	REL             // Relative
	ZPG             // Zero Page
	ZPX             // Zero Page,X
	ZPY             // Zero Page,Y
	ABS             // Absolute
	ABX             // Absolute,X
	ABY             // Absolute,Y
	IND             // (Indirect)
	IDX             // (Indirect,X)
	IDY             // (Indirect),Y
	ACC             // Accumulator (no operand)
)

// Opcode data for an (opcode, mode) pair
type opcodeData struct {
	sym      opsym // internal opcode symbol
	mode     Mode  // addressing mode
	opcode   byte  // opcode hex value
	length   byte  // length of opcode + operand in bytes
	cycles   byte  // number of CPU cycles to execute the instruction
	bpcycles byte  // additional CPU cycles if a page boundary is crossed
}

// All documented (opcode, mode) pairs. Write instructions carry the indexed
// penalty in their base cycle count, so their bpcycles column is zero; only
// read instructions pay the +1 page-crossing cycle.
var data = []opcodeData{
	{symLDA, IMM, 0xa9, 2, 2, 0},
	{symLDA, ZPG, 0xa5, 2, 3, 0},
	{symLDA, ZPX, 0xb5, 2, 4, 0},
	{symLDA, ABS, 0xad, 3, 4, 0},
	{symLDA, ABX, 0xbd, 3, 4, 1},
	{symLDA, ABY, 0xb9, 3, 4, 1},
	{symLDA, IDX, 0xa1, 2, 6, 0},
	{symLDA, IDY, 0xb1, 2, 5, 1},

	{symLDX, IMM, 0xa2, 2, 2, 0},
	{symLDX, ZPG, 0xa6, 2, 3, 0},
	{symLDX, ZPY, 0xb6, 2, 4, 0},
	{symLDX, ABS, 0xae, 3, 4, 0},
	{symLDX, ABY, 0xbe, 3, 4, 1},

	{symLDY, IMM, 0xa0, 2, 2, 0},
	{symLDY, ZPG, 0xa4, 2, 3, 0},
	{symLDY, ZPX, 0xb4, 2, 4, 0},
	{symLDY, ABS, 0xac, 3, 4, 0},
	{symLDY, ABX, 0xbc, 3, 4, 1},

	{symSTA, ZPG, 0x85, 2, 3, 0},
	{symSTA, ZPX, 0x95, 2, 4, 0},
	{symSTA, ABS, 0x8d, 3, 4, 0},
	{symSTA, ABX, 0x9d, 3, 5, 0},
	{symSTA, ABY, 0x99, 3, 5, 0},
	{symSTA, IDX, 0x81, 2, 6, 0},
	{symSTA, IDY, 0x91, 2, 6, 0},

	{symSTX, ZPG, 0x86, 2, 3, 0},
	{symSTX, ZPY, 0x96, 2, 4, 0},
	{symSTX, ABS, 0x8e, 3, 4, 0},

	{symSTY, ZPG, 0x84, 2, 3, 0},
	{symSTY, ZPX, 0x94, 2, 4, 0},
	{symSTY, ABS, 0x8c, 3, 4, 0},

	{symADC, IMM, 0x69, 2, 2, 0},
	{symADC, ZPG, 0x65, 2, 3, 0},
	{symADC, ZPX, 0x75, 2, 4, 0},
	{symADC, ABS, 0x6d, 3, 4, 0},
	{symADC, ABX, 0x7d, 3, 4, 1},
	{symADC, ABY, 0x79, 3, 4, 1},
	{symADC, IDX, 0x61, 2, 6, 0},
	{symADC, IDY, 0x71, 2, 5, 1},

	{symSBC, IMM, 0xe9, 2, 2, 0},
	{symSBC, ZPG, 0xe5, 2, 3, 0},
	{symSBC, ZPX, 0xf5, 2, 4, 0},
	{symSBC, ABS, 0xed, 3, 4, 0},
	{symSBC, ABX, 0xfd, 3, 4, 1},
	{symSBC, ABY, 0xf9, 3, 4, 1},
	{symSBC, IDX, 0xe1, 2, 6, 0},
	{symSBC, IDY, 0xf1, 2, 5, 1},

	{symCMP, IMM, 0xc9, 2, 2, 0},
	{symCMP, ZPG, 0xc5, 2, 3, 0},
	{symCMP, ZPX, 0xd5, 2, 4, 0},
	{symCMP, ABS, 0xcd, 3, 4, 0},
	{symCMP, ABX, 0xdd, 3, 4, 1},
	{symCMP, ABY, 0xd9, 3, 4, 1},
	{symCMP, IDX, 0xc1, 2, 6, 0},
	{symCMP, IDY, 0xd1, 2, 5, 1},

	{symCPX, IMM, 0xe0, 2, 2, 0},
	{symCPX, ZPG, 0xe4, 2, 3, 0},
	{symCPX, ABS, 0xec, 3, 4, 0},

	{symCPY, IMM, 0xc0, 2, 2, 0},
	{symCPY, ZPG, 0xc4, 2, 3, 0},
	{symCPY, ABS, 0xcc, 3, 4, 0},

	{symBIT, ZPG, 0x24, 2, 3, 0},
	{symBIT, ABS, 0x2c, 3, 4, 0},

	{symCLC, IMP, 0x18, 1, 2, 0},
	{symSEC, IMP, 0x38, 1, 2, 0},
	{symCLI, IMP, 0x58, 1, 2, 0},
	{symSEI, IMP, 0x78, 1, 2, 0},
	{symCLD, IMP, 0xd8, 1, 2, 0},
	{symSED, IMP, 0xf8, 1, 2, 0},
	{symCLV, IMP, 0xb8, 1, 2, 0},

	{symBCC, REL, 0x90, 2, 2, 1},
	{symBCS, REL, 0xb0, 2, 2, 1},
	{symBEQ, REL, 0xf0, 2, 2, 1},
	{symBNE, REL, 0xd0, 2, 2, 1},
	{symBMI, REL, 0x30, 2, 2, 1},
	{symBPL, REL, 0x10, 2, 2, 1},
	{symBVC, REL, 0x50, 2, 2, 1},
	{symBVS, REL, 0x70, 2, 2, 1},

	{symBRK, IMP, 0x00, 1, 7, 0},

	{symAND, IMM, 0x29, 2, 2, 0},
	{symAND, ZPG, 0x25, 2, 3, 0},
	{symAND, ZPX, 0x35, 2, 4, 0},
	{symAND, ABS, 0x2d, 3, 4, 0},
	{symAND, ABX, 0x3d, 3, 4, 1},
	{symAND, ABY, 0x39, 3, 4, 1},
	{symAND, IDX, 0x21, 2, 6, 0},
	{symAND, IDY, 0x31, 2, 5, 1},

	{symORA, IMM, 0x09, 2, 2, 0},
	{symORA, ZPG, 0x05, 2, 3, 0},
	{symORA, ZPX, 0x15, 2, 4, 0},
	{symORA, ABS, 0x0d, 3, 4, 0},
	{symORA, ABX, 0x1d, 3, 4, 1},
	{symORA, ABY, 0x19, 3, 4, 1},
	{symORA, IDX, 0x01, 2, 6, 0},
	{symORA, IDY, 0x11, 2, 5, 1},

	{symEOR, IMM, 0x49, 2, 2, 0},
	{symEOR, ZPG, 0x45, 2, 3, 0},
	{symEOR, ZPX, 0x55, 2, 4, 0},
	{symEOR, ABS, 0x4d, 3, 4, 0},
	{symEOR, ABX, 0x5d, 3, 4, 1},
	{symEOR, ABY, 0x59, 3, 4, 1},
	{symEOR, IDX, 0x41, 2, 6, 0},
	{symEOR, IDY, 0x51, 2, 5, 1},

	{symINC, ZPG, 0xe6, 2, 5, 0},
	{symINC, ZPX, 0xf6, 2, 6, 0},
	{symINC, ABS, 0xee, 3, 6, 0},
	{symINC, ABX, 0xfe, 3, 7, 0},

	{symDEC, ZPG, 0xc6, 2, 5, 0},
	{symDEC, ZPX, 0xd6, 2, 6, 0},
	{symDEC, ABS, 0xce, 3, 6, 0},
	{symDEC, ABX, 0xde, 3, 7, 0},

	{symINX, IMP, 0xe8, 1, 2, 0},
	{symINY, IMP, 0xc8, 1, 2, 0},

	{symDEX, IMP, 0xca, 1, 2, 0},
	{symDEY, IMP, 0x88, 1, 2, 0},

	{symJMP, ABS, 0x4c, 3, 3, 0},
	{symJMP, IND, 0x6c, 3, 5, 0},

	{symJSR, ABS, 0x20, 3, 6, 0},
	{symRTS, IMP, 0x60, 1, 6, 0},

	{symRTI, IMP, 0x40, 1, 6, 0},

	{symNOP, IMP, 0xea, 1, 2, 0},

	{symTAX, IMP, 0xaa, 1, 2, 0},
	{symTXA, IMP, 0x8a, 1, 2, 0},
	{symTAY, IMP, 0xa8, 1, 2, 0},
	{symTYA, IMP, 0x98, 1, 2, 0},
	{symTXS, IMP, 0x9a, 1, 2, 0},
	{symTSX, IMP, 0xba, 1, 2, 0},

	{symPHA, IMP, 0x48, 1, 3, 0},
	{symPLA, IMP, 0x68, 1, 4, 0},
	{symPHP, IMP, 0x08, 1, 3, 0},
	{symPLP, IMP, 0x28, 1, 4, 0},

	{symASL, ACC, 0x0a, 1, 2, 0},
	{symASL, ZPG, 0x06, 2, 5, 0},
	{symASL, ZPX, 0x16, 2, 6, 0},
	{symASL, ABS, 0x0e, 3, 6, 0},
	{symASL, ABX, 0x1e, 3, 7, 0},

	{symLSR, ACC, 0x4a, 1, 2, 0},
	{symLSR, ZPG, 0x46, 2, 5, 0},
	{symLSR, ZPX, 0x56, 2, 6, 0},
	{symLSR, ABS, 0x4e, 3, 6, 0},
	{symLSR, ABX, 0x5e, 3, 7, 0},

	{symROL, ACC, 0x2a, 1, 2, 0},
	{symROL, ZPG, 0x26, 2, 5, 0},
	{symROL, ZPX, 0x36, 2, 6, 0},
	{symROL, ABS, 0x2e, 3, 6, 0},
	{symROL, ABX, 0x3e, 3, 7, 0},

	{symROR, ACC, 0x6a, 1, 2, 0},
	{symROR, ZPG, 0x66, 2, 5, 0},
	{symROR, ZPX, 0x76, 2, 6, 0},
	{symROR, ABS, 0x6e, 3, 6, 0},
	{symROR, ABX, 0x7e, 3, 7, 0},
}

// All undocumented (opcode, mode) pairs. Together with the documented table
// these cover every opcode value 0-255. The stable operations (LAX, SAX,
// DCP, ISB, SLO, RLA, SRE, RRA, the NOP variants, ANC, ALR, ARR, AXS, LAS
// and the illegal SBC) implement their accepted semantics; the unstable
// store operations (SHA, SHX, SHY, TAS, XAA) and the JAM opcodes consume
// their recorded bytes and cycles with no other effect.
var undocData = []opcodeData{
	{symSLO, ZPG, 0x07, 2, 5, 0},
	{symSLO, ZPX, 0x17, 2, 6, 0},
	{symSLO, ABS, 0x0f, 3, 6, 0},
	{symSLO, ABX, 0x1f, 3, 7, 0},
	{symSLO, ABY, 0x1b, 3, 7, 0},
	{symSLO, IDX, 0x03, 2, 8, 0},
	{symSLO, IDY, 0x13, 2, 8, 0},

	{symRLA, ZPG, 0x27, 2, 5, 0},
	{symRLA, ZPX, 0x37, 2, 6, 0},
	{symRLA, ABS, 0x2f, 3, 6, 0},
	{symRLA, ABX, 0x3f, 3, 7, 0},
	{symRLA, ABY, 0x3b, 3, 7, 0},
	{symRLA, IDX, 0x23, 2, 8, 0},
	{symRLA, IDY, 0x33, 2, 8, 0},

	{symSRE, ZPG, 0x47, 2, 5, 0},
	{symSRE, ZPX, 0x57, 2, 6, 0},
	{symSRE, ABS, 0x4f, 3, 6, 0},
	{symSRE, ABX, 0x5f, 3, 7, 0},
	{symSRE, ABY, 0x5b, 3, 7, 0},
	{symSRE, IDX, 0x43, 2, 8, 0},
	{symSRE, IDY, 0x53, 2, 8, 0},

	{symRRA, ZPG, 0x67, 2, 5, 0},
	{symRRA, ZPX, 0x77, 2, 6, 0},
	{symRRA, ABS, 0x6f, 3, 6, 0},
	{symRRA, ABX, 0x7f, 3, 7, 0},
	{symRRA, ABY, 0x7b, 3, 7, 0},
	{symRRA, IDX, 0x63, 2, 8, 0},
	{symRRA, IDY, 0x73, 2, 8, 0},

	{symSAX, ZPG, 0x87, 2, 3, 0},
	{symSAX, ZPY, 0x97, 2, 4, 0},
	{symSAX, ABS, 0x8f, 3, 4, 0},
	{symSAX, IDX, 0x83, 2, 6, 0},

	{symLAX, ZPG, 0xa7, 2, 3, 0},
	{symLAX, ZPY, 0xb7, 2, 4, 0},
	{symLAX, ABS, 0xaf, 3, 4, 0},
	{symLAX, ABY, 0xbf, 3, 4, 1},
	{symLAX, IDX, 0xa3, 2, 6, 0},
	{symLAX, IDY, 0xb3, 2, 5, 1},
	{symLAX, IMM, 0xab, 2, 2, 0},

	{symDCP, ZPG, 0xc7, 2, 5, 0},
	{symDCP, ZPX, 0xd7, 2, 6, 0},
	{symDCP, ABS, 0xcf, 3, 6, 0},
	{symDCP, ABX, 0xdf, 3, 7, 0},
	{symDCP, ABY, 0xdb, 3, 7, 0},
	{symDCP, IDX, 0xc3, 2, 8, 0},
	{symDCP, IDY, 0xd3, 2, 8, 0},

	{symISB, ZPG, 0xe7, 2, 5, 0},
	{symISB, ZPX, 0xf7, 2, 6, 0},
	{symISB, ABS, 0xef, 3, 6, 0},
	{symISB, ABX, 0xff, 3, 7, 0},
	{symISB, ABY, 0xfb, 3, 7, 0},
	{symISB, IDX, 0xe3, 2, 8, 0},
	{symISB, IDY, 0xf3, 2, 8, 0},

	{symNOP, IMP, 0x1a, 1, 2, 0},
	{symNOP, IMP, 0x3a, 1, 2, 0},
	{symNOP, IMP, 0x5a, 1, 2, 0},
	{symNOP, IMP, 0x7a, 1, 2, 0},
	{symNOP, IMP, 0xda, 1, 2, 0},
	{symNOP, IMP, 0xfa, 1, 2, 0},

	{symNOP, IMM, 0x80, 2, 2, 0},
	{symNOP, IMM, 0x82, 2, 2, 0},
	{symNOP, IMM, 0x89, 2, 2, 0},
	{symNOP, IMM, 0xc2, 2, 2, 0},
	{symNOP, IMM, 0xe2, 2, 2, 0},

	{symNOP, ZPG, 0x04, 2, 3, 0},
	{symNOP, ZPG, 0x44, 2, 3, 0},
	{symNOP, ZPG, 0x64, 2, 3, 0},

	{symNOP, ZPX, 0x14, 2, 4, 0},
	{symNOP, ZPX, 0x34, 2, 4, 0},
	{symNOP, ZPX, 0x54, 2, 4, 0},
	{symNOP, ZPX, 0x74, 2, 4, 0},
	{symNOP, ZPX, 0xd4, 2, 4, 0},
	{symNOP, ZPX, 0xf4, 2, 4, 0},

	{symNOP, ABS, 0x0c, 3, 4, 0},

	{symNOP, ABX, 0x1c, 3, 4, 1},
	{symNOP, ABX, 0x3c, 3, 4, 1},
	{symNOP, ABX, 0x5c, 3, 4, 1},
	{symNOP, ABX, 0x7c, 3, 4, 1},
	{symNOP, ABX, 0xdc, 3, 4, 1},
	{symNOP, ABX, 0xfc, 3, 4, 1},

	{symSBC, IMM, 0xeb, 2, 2, 0},

	{symANC, IMM, 0x0b, 2, 2, 0},
	{symANC, IMM, 0x2b, 2, 2, 0},
	{symALR, IMM, 0x4b, 2, 2, 0},
	{symARR, IMM, 0x6b, 2, 2, 0},
	{symXAA, IMM, 0x8b, 2, 2, 0},
	{symAXS, IMM, 0xcb, 2, 2, 0},

	{symSHA, ABY, 0x9f, 3, 5, 0},
	{symSHA, IDY, 0x93, 2, 6, 0},
	{symSHX, ABY, 0x9e, 3, 5, 0},
	{symSHY, ABX, 0x9c, 3, 5, 0},
	{symTAS, ABY, 0x9b, 3, 5, 0},
	{symLAS, ABY, 0xbb, 3, 4, 1},

	{symJAM, IMP, 0x02, 1, 2, 0},
	{symJAM, IMP, 0x12, 1, 2, 0},
	{symJAM, IMP, 0x22, 1, 2, 0},
	{symJAM, IMP, 0x32, 1, 2, 0},
	{symJAM, IMP, 0x42, 1, 2, 0},
	{symJAM, IMP, 0x52, 1, 2, 0},
	{symJAM, IMP, 0x62, 1, 2, 0},
	{symJAM, IMP, 0x72, 1, 2, 0},
	{symJAM, IMP, 0x92, 1, 2, 0},
	{symJAM, IMP, 0xb2, 1, 2, 0},
	{symJAM, IMP, 0xd2, 1, 2, 0},
	{symJAM, IMP, 0xf2, 1, 2, 0},
}

// An Instruction describes a CPU instruction, including its name, its
// addressing mode, its opcode value, its operand size, and its CPU cycle
// cost.
type Instruction struct {
	Name         string   // all-caps name of the instruction
	Mode         Mode     // addressing mode
	Opcode       byte     // hexadecimal opcode value
	Length       byte     // combined size of opcode and operand, in bytes
	Cycles       byte     // number of CPU cycles to execute the instruction
	BPCycles     byte     // additional cycles required if a page boundary is crossed
	Undocumented bool     // the opcode is not part of the documented 6502 set
	fn           instfunc // emulator implementation of the instruction
}

// An InstructionSet defines the set of all 256 instructions that can run on
// the emulated CPU.
type InstructionSet struct {
	instructions [256]Instruction
}

// Lookup retrieves the CPU instruction corresponding to the requested
// opcode. Every opcode value resolves to an instruction.
func (s *InstructionSet) Lookup(opcode byte) *Instruction {
	return &s.instructions[opcode]
}

// Create the 2A03 instruction set. A gap in the table is a defect in the
// opcode data, so construction panics rather than leaving an opcode
// unclassified.
func newInstructionSet() *InstructionSet {
	set := &InstructionSet{}

	symToImpl := make(map[opsym]*opcodeImpl, len(impl))
	for i := range impl {
		symToImpl[impl[i].sym] = &impl[i]
	}

	add := func(d opcodeData, undocumented bool) {
		inst := &set.instructions[d.opcode]
		if inst.Name != "" {
			panic("duplicate instruction")
		}
		im := symToImpl[d.sym]
		inst.Name = im.name
		inst.Mode = d.mode
		inst.Opcode = d.opcode
		inst.Length = d.length
		inst.Cycles = d.cycles
		inst.BPCycles = d.bpcycles
		inst.Undocumented = undocumented
		inst.fn = im.fn
	}

	for _, d := range data {
		add(d, false)
	}
	for _, d := range undocData {
		add(d, true)
	}

	for i := 0; i < 256; i++ {
		if set.instructions[i].Name == "" {
			panic("missing instruction")
		}
	}
	return set
}

var instructionSet *InstructionSet

// GetInstructionSet returns the 2A03 instruction set, building it on first
// use.
func GetInstructionSet() *InstructionSet {
	if instructionSet == nil {
		instructionSet = newInstructionSet()
	}
	return instructionSet
}
