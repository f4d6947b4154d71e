// Copyright 2026 Carl Dahl. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"github.com/cmdahl/go2a03/cpu"
)

// Load a machine-code program into flat memory at the requested origin and
// return a CPU ready to step through it.
func loadCPU(code []byte, origin uint16) *cpu.CPU {
	mem := cpu.NewFlatMemory()
	c := cpu.NewCPU(mem)
	cpu.StoreBytes(mem, origin, code)
	c.SetPC(origin)
	return c
}

func stepCPU(c *cpu.CPU, steps int) {
	for i := 0; i < steps; i++ {
		c.Step()
	}
}

func runCPU(code []byte, origin uint16, steps int) *cpu.CPU {
	c := loadCPU(code, origin)
	stepCPU(c, steps)
	return c
}

func expectPC(t *testing.T, c *cpu.CPU, pc uint16) {
	t.Helper()
	if c.Reg.PC != pc {
		t.Errorf("PC incorrect. exp: $%04X, got: $%04X", pc, c.Reg.PC)
	}
}

func expectCycles(t *testing.T, c *cpu.CPU, cycles uint64) {
	t.Helper()
	if c.Cycles != cycles {
		t.Errorf("Cycles incorrect. exp: %d, got: %d", cycles, c.Cycles)
	}
}

func expectACC(t *testing.T, c *cpu.CPU, acc byte) {
	t.Helper()
	if c.Reg.A != acc {
		t.Errorf("Accumulator incorrect. exp: $%02X, got: $%02X", acc, c.Reg.A)
	}
}

func expectX(t *testing.T, c *cpu.CPU, x byte) {
	t.Helper()
	if c.Reg.X != x {
		t.Errorf("X register incorrect. exp: $%02X, got: $%02X", x, c.Reg.X)
	}
}

func expectSP(t *testing.T, c *cpu.CPU, sp byte) {
	t.Helper()
	if c.Reg.SP != sp {
		t.Errorf("stack pointer incorrect. exp: $%02X, got: $%02X", sp, c.Reg.SP)
	}
}

func expectMem(t *testing.T, c *cpu.CPU, addr uint16, v byte) {
	t.Helper()
	got := c.Mem.LoadByte(addr)
	if got != v {
		t.Errorf("Memory at $%04X incorrect. exp: $%02X, got: $%02X", addr, v, got)
	}
}

func expectFlag(t *testing.T, name string, got, exp bool) {
	t.Helper()
	if got != exp {
		t.Errorf("%s flag incorrect. exp: %v, got: %v", name, exp, got)
	}
}

func TestAccumulator(t *testing.T) {
	code := []byte{
		0xa9, 0x5e, // LDA #$5E
		0x85, 0x15, // STA $15
		0x8d, 0x00, 0x15, // STA $1500
	}

	c := runCPU(code, 0x1000, 3)

	expectPC(t, c, 0x1007)
	expectCycles(t, c, 9)
	expectACC(t, c, 0x5e)
	expectMem(t, c, 0x15, 0x5e)
	expectMem(t, c, 0x1500, 0x5e)
}

func TestStack(t *testing.T) {
	code := []byte{
		0xa9, 0x11, // LDA #$11
		0x48,       // PHA
		0xa9, 0x12, // LDA #$12
		0x48,       // PHA
		0xa9, 0x13, // LDA #$13
		0x48, // PHA
		0x68,             // PLA
		0x8d, 0x00, 0x20, // STA $2000
		0x68,             // PLA
		0x8d, 0x01, 0x20, // STA $2001
		0x68,             // PLA
		0x8d, 0x02, 0x20, // STA $2002
	}

	c := loadCPU(code, 0x1000)
	stepCPU(c, 6)

	expectSP(t, c, 0xfa)
	expectACC(t, c, 0x13)
	expectMem(t, c, 0x1fd, 0x11)
	expectMem(t, c, 0x1fc, 0x12)
	expectMem(t, c, 0x1fb, 0x13)

	stepCPU(c, 6)
	expectACC(t, c, 0x11)
	expectSP(t, c, 0xfd)
	expectMem(t, c, 0x2000, 0x13)
	expectMem(t, c, 0x2001, 0x12)
	expectMem(t, c, 0x2002, 0x11)
}

func TestIndexedIndirect(t *testing.T) {
	code := []byte{
		0xa2, 0x80, // LDX #$80
		0xa0, 0x40, // LDY #$40
		0xa9, 0xee, // LDA #$EE
		0x9d, 0x00, 0x20, // STA $2000,X
		0x99, 0x00, 0x20, // STA $2000,Y
		0xa9, 0x11, // LDA #$11
		0x85, 0x06, // STA $06
		0xa9, 0x05, // LDA #$05
		0x85, 0x07, // STA $07
		0xa2, 0x01, // LDX #$01
		0xa0, 0x01, // LDY #$01
		0xa9, 0xbb, // LDA #$BB
		0x81, 0x05, // STA ($05,X)
		0x91, 0x06, // STA ($06),Y
	}

	c := runCPU(code, 0x1000, 14)
	expectMem(t, c, 0x2080, 0xee)
	expectMem(t, c, 0x2040, 0xee)
	expectMem(t, c, 0x0511, 0xbb)
	expectMem(t, c, 0x0512, 0xbb)
}

func TestPageCross(t *testing.T) {
	code := []byte{
		0xa9, 0x55, // LDA #$55       2 cycles
		0x8d, 0x01, 0x11, // STA $1101      4 cycles
		0xa9, 0x00, // LDA #$00       2 cycles
		0xa2, 0xff, // LDX #$FF       2 cycles
		0xbd, 0x02, 0x10, // LDA $1002,X    5 cycles (page crossed)
	}

	c := runCPU(code, 0x1000, 5)

	expectPC(t, c, 0x100c)
	expectCycles(t, c, 15)
	expectACC(t, c, 0x55)
	expectMem(t, c, 0x1101, 0x55)
}

// Indexed stores always pay the fixup cycle, so STA abs,X costs 5 cycles
// whether or not the index crosses a page.
func TestStoreCycles(t *testing.T) {
	code := []byte{
		0xa9, 0x42, // LDA #$42       2 cycles
		0xa2, 0x01, // LDX #$01       2 cycles
		0x9d, 0x00, 0x20, // STA $2000,X    5 cycles (no cross)
		0xa2, 0xff, // LDX #$FF       2 cycles
		0x9d, 0x02, 0x20, // STA $2002,X    5 cycles (cross)
	}

	c := runCPU(code, 0x1000, 5)
	expectCycles(t, c, 16)
	expectMem(t, c, 0x2001, 0x42)
	expectMem(t, c, 0x2101, 0x42)
}

func TestBranchNotTaken(t *testing.T) {
	code := []byte{
		0x18,       // CLC            2 cycles
		0xb0, 0x02, // BCS +2         2 cycles (not taken)
	}

	c := runCPU(code, 0x1000, 2)
	expectPC(t, c, 0x1003)
	expectCycles(t, c, 4)
}

func TestBranchTakenSamePage(t *testing.T) {
	code := []byte{
		0x38,       // SEC            2 cycles
		0xb0, 0x02, // BCS +2         3 cycles (taken, same page)
	}

	c := runCPU(code, 0x1000, 2)
	expectPC(t, c, 0x1005)
	expectCycles(t, c, 5)
}

func TestBranchTakenPageCross(t *testing.T) {
	code := []byte{
		0x38,       // SEC            2 cycles
		0xb0, 0x02, // BCS +2         4 cycles (taken, crosses to $1101)
	}

	c := runCPU(code, 0x10fc, 2)
	expectPC(t, c, 0x1101)
	expectCycles(t, c, 6)
}

// JMP ($02FF) must read the vector's high byte from $0200, not $0300.
func TestJmpIndirectPageWrap(t *testing.T) {
	c := loadCPU([]byte{0x6c, 0xff, 0x02}, 0x1000) // JMP ($02FF)
	c.Mem.StoreByte(0x02ff, 0x34)
	c.Mem.StoreByte(0x0200, 0x12)
	c.Mem.StoreByte(0x0300, 0x99) // must be ignored
	stepCPU(c, 1)

	expectPC(t, c, 0x1234)
	expectCycles(t, c, 5)
}

// A zero-page pointer at $FF wraps within page zero for its high byte.
func TestZeroPagePointerWrap(t *testing.T) {
	code := []byte{
		0xa0, 0x05, // LDY #$05
		0xb1, 0xff, // LDA ($FF),Y
	}

	c := loadCPU(code, 0x1000)
	c.Mem.StoreByte(0x00ff, 0x00)
	c.Mem.StoreByte(0x0000, 0x30)
	c.Mem.StoreByte(0x3005, 0x7a)
	stepCPU(c, 2)

	expectACC(t, c, 0x7a)
}

func TestJsrRts(t *testing.T) {
	c := loadCPU([]byte{0x20, 0x00, 0x20}, 0x1000) // JSR $2000
	cpu.StoreBytes(c.Mem, 0x2000, []byte{
		0xa9, 0x33, // LDA #$33
		0x60, // RTS
	})

	stepCPU(c, 1)
	expectPC(t, c, 0x2000)
	expectSP(t, c, 0xfb)
	expectMem(t, c, 0x1fd, 0x10) // return address high
	expectMem(t, c, 0x1fc, 0x02) // return address low (last byte of JSR)

	stepCPU(c, 2)
	expectPC(t, c, 0x1003)
	expectSP(t, c, 0xfd)
	expectACC(t, c, 0x33)
	expectCycles(t, c, 14)
}

// PHP always pushes the break and reserved bits set; PLP ignores both on
// the way back in.
func TestPhpPlp(t *testing.T) {
	code := []byte{
		0x38, // SEC
		0x08, // PHP
		0x18, // CLC
		0x28, // PLP
	}

	c := loadCPU(code, 0x1000)
	stepCPU(c, 2)

	pushed := c.Mem.LoadByte(0x1fd)
	exp := byte(cpu.CarryBit | cpu.InterruptDisableBit | cpu.BreakBit | cpu.ReservedBit)
	if pushed != exp {
		t.Errorf("pushed status incorrect. exp: $%02X, got: $%02X", exp, pushed)
	}

	stepCPU(c, 2)
	expectFlag(t, "Carry", c.Reg.Carry, true)
}

func TestAslAccumulator(t *testing.T) {
	code := []byte{
		0xa9, 0x80, // LDA #$80
		0x0a, // ASL A
	}

	c := runCPU(code, 0x1000, 2)
	expectACC(t, c, 0x00)
	expectFlag(t, "Carry", c.Reg.Carry, true)
	expectFlag(t, "Zero", c.Reg.Zero, true)
	expectFlag(t, "Sign", c.Reg.Sign, false)
}

func TestCompare(t *testing.T) {
	code := []byte{
		0xa9, 0x10, // LDA #$10
		0xc9, 0x20, // CMP #$20
	}

	c := runCPU(code, 0x1000, 2)
	expectFlag(t, "Carry", c.Reg.Carry, false)
	expectFlag(t, "Zero", c.Reg.Zero, false)
	expectFlag(t, "Sign", c.Reg.Sign, true)
}

func TestBrkRti(t *testing.T) {
	c := loadCPU([]byte{0x00}, 0x1000) // BRK
	cpu.StoreAddress(c.Mem, 0xfffe, 0x4000)
	c.Mem.StoreByte(0x4000, 0x40) // RTI

	stepCPU(c, 1)
	expectPC(t, c, 0x4000)
	expectCycles(t, c, 7)
	expectFlag(t, "InterruptDisable", c.Reg.InterruptDisable, true)
	expectMem(t, c, 0x1fd, 0x10) // pushed PC high
	expectMem(t, c, 0x1fc, 0x02) // pushed PC low (BRK address + 2)
	pushed := c.Mem.LoadByte(0x1fb)
	if pushed&cpu.BreakBit == 0 {
		t.Errorf("BRK must push the status with the break bit set, got $%02X", pushed)
	}

	stepCPU(c, 1)
	expectPC(t, c, 0x1002)
	expectSP(t, c, 0xfd)
}

// An asserted IRQ line is ignored while the interrupt-disable flag is set
// and serviced at the first boundary after the flag clears. The status is
// pushed with the break bit clear.
func TestIrqMasking(t *testing.T) {
	code := []byte{
		0x58, // CLI
		0xea, // NOP
	}

	c := loadCPU(code, 0x1000)
	cpu.StoreAddress(c.Mem, 0xfffe, 0x4000)
	c.Mem.StoreByte(0x4000, 0x40) // RTI

	c.RaiseIRQ()
	stepCPU(c, 1) // I flag still set from power-on, so CLI executes
	expectPC(t, c, 0x1001)
	expectCycles(t, c, 2)

	stepCPU(c, 1) // boundary with I clear: IRQ serviced
	expectPC(t, c, 0x4000)
	expectCycles(t, c, 9)
	expectFlag(t, "InterruptDisable", c.Reg.InterruptDisable, true)
	pushed := c.Mem.LoadByte(0x1fb)
	if pushed&cpu.BreakBit != 0 {
		t.Errorf("IRQ must push the status with the break bit clear, got $%02X", pushed)
	}

	c.ClearIRQ()
	stepCPU(c, 1) // RTI returns with I restored to clear
	expectPC(t, c, 0x1001)
	expectFlag(t, "InterruptDisable", c.Reg.InterruptDisable, false)
}

// Without ClearIRQ the level-triggered line re-interrupts as soon as RTI
// restores the clear interrupt-disable flag.
func TestIrqLevelTriggered(t *testing.T) {
	c := loadCPU([]byte{0x58, 0xea}, 0x1000) // CLI, NOP
	cpu.StoreAddress(c.Mem, 0xfffe, 0x4000)
	c.Mem.StoreByte(0x4000, 0x40) // RTI

	c.RaiseIRQ()
	stepCPU(c, 3) // CLI, IRQ, RTI
	expectPC(t, c, 0x1001)

	stepCPU(c, 1) // line still asserted: serviced again
	expectPC(t, c, 0x4000)
}

func TestNmi(t *testing.T) {
	c := loadCPU([]byte{0xea, 0xea}, 0x1000) // NOP, NOP
	cpu.StoreAddress(c.Mem, 0xfffa, 0x5000)
	c.Mem.StoreByte(0x5000, 0xea) // NOP

	// NMI is serviced even though the interrupt-disable flag is set.
	c.RaiseNMI()
	cycles := c.Step()
	if cycles != 7 {
		t.Errorf("NMI cycles incorrect. exp: 7, got: %d", cycles)
	}
	expectPC(t, c, 0x5000)

	// The edge was consumed; the next step runs code.
	stepCPU(c, 1)
	expectPC(t, c, 0x5001)
}

// When NMI and IRQ are both pending at a boundary, NMI wins.
func TestNmiPriority(t *testing.T) {
	c := loadCPU([]byte{0x58, 0xea}, 0x1000) // CLI, NOP
	cpu.StoreAddress(c.Mem, 0xfffa, 0x5000)
	cpu.StoreAddress(c.Mem, 0xfffe, 0x4000)

	stepCPU(c, 1) // CLI
	c.RaiseNMI()
	c.RaiseIRQ()
	stepCPU(c, 1)
	expectPC(t, c, 0x5000)
}

func TestReset(t *testing.T) {
	c := loadCPU([]byte{0xea}, 0x1000)
	cpu.StoreAddress(c.Mem, 0xfffc, 0x8000)
	c.Mem.StoreByte(0x8000, 0xea) // NOP

	c.Reg.A = 0x42
	c.Reg.X = 0x43
	c.Reg.Y = 0x44
	c.Reg.SP = 0x10
	c.Reg.InterruptDisable = false
	c.RaiseNMI()
	c.RaiseIRQ()

	cycles := c.Reset()
	if cycles != 7 {
		t.Errorf("Reset cycles incorrect. exp: 7, got: %d", cycles)
	}
	expectPC(t, c, 0x8000)
	expectSP(t, c, 0xfd)
	expectACC(t, c, 0x00)
	expectX(t, c, 0x00)
	expectFlag(t, "InterruptDisable", c.Reg.InterruptDisable, true)

	// RESET discarded the pending NMI and IRQ, so the next step runs code.
	stepCPU(c, 1)
	expectPC(t, c, 0x8001)
}
