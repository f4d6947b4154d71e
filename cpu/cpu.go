// Copyright 2026 Carl Dahl. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cpu emulates the Ricoh 2A03, the MOS 6502 variant at the heart of
// the Nintendo Entertainment System. It implements the full instruction set
// (documented and undocumented opcodes), all addressing modes including the
// NMOS page-wrap quirks, cycle-accurate timing, and NMI/IRQ/RESET interrupt
// handling. The 2A03 has no decimal mode: the Decimal flag is stored and
// restored like any other flag but has no effect on arithmetic.
package cpu

// CPU represents a single 2A03 CPU. It contains a reference to the memory
// bus assigned to the CPU.
type CPU struct {
	Reg         Registers       // CPU registers
	Mem         Memory          // assigned memory bus
	Cycles      uint64          // total executed CPU cycles
	LastPC      uint16          // previous program counter
	InstSet     *InstructionSet // instruction set used by the CPU
	pageCrossed bool
	deltaCycles int8
	nmiPending  bool
	irqLine     bool
	debugger    *Debugger
	storeByte   func(cpu *CPU, addr uint16, v byte)
}

// Interrupt vectors
const (
	vectorNMI   = 0xfffa
	vectorReset = 0xfffc
	vectorIRQ   = 0xfffe
	vectorBRK   = 0xfffe
)

// Cycles consumed by an interrupt service sequence and by RESET.
const interruptCycles = 7

// NewCPU creates an emulated 2A03 CPU bound to the specified memory bus.
// The registers hold their documented power-on values; call Reset to load
// the program counter from the reset vector.
func NewCPU(m Memory) *CPU {
	cpu := &CPU{
		Mem:       m,
		InstSet:   GetInstructionSet(),
		storeByte: (*CPU).storeByteNormal,
	}

	cpu.Reg.Init()
	return cpu
}

// SetPC updates the CPU program counter to 'addr'.
func (cpu *CPU) SetPC(addr uint16) {
	cpu.Reg.PC = addr
}

// AttachMemory assigns a new memory bus to the CPU.
func (cpu *CPU) AttachMemory(m Memory) {
	cpu.Mem = m
}

// GetInstruction returns the instruction opcode at the requested address.
func (cpu *CPU) GetInstruction(addr uint16) *Instruction {
	opcode := cpu.Mem.LoadByte(addr)
	return cpu.InstSet.Lookup(opcode)
}

// NextAddr returns the address of the next instruction following the
// instruction at addr.
func (cpu *CPU) NextAddr(addr uint16) uint16 {
	opcode := cpu.Mem.LoadByte(addr)
	inst := cpu.InstSet.Lookup(opcode)
	return addr + uint16(inst.Length)
}

// Reset services the RESET signal: registers return to their documented
// power-on values, the program counter loads from the reset vector at
// $FFFC/$FFFD, and seven cycles elapse. Nothing is pushed, since no valid
// stack state is assumed at power-on. Any latched NMI or IRQ is discarded,
// which gives RESET priority over both. Returns the cycles consumed.
func (cpu *CPU) Reset() int {
	cpu.Reg.Init()
	cpu.Reg.PC = LoadAddress(cpu.Mem, vectorReset)
	cpu.nmiPending = false
	cpu.irqLine = false
	cpu.Cycles += interruptCycles
	return interruptCycles
}

// RaiseNMI latches a non-maskable interrupt. The edge is remembered until
// it is serviced at the next instruction boundary; NMI is never suppressed
// by the interrupt-disable flag.
func (cpu *CPU) RaiseNMI() {
	cpu.nmiPending = true
}

// RaiseIRQ asserts the level-triggered interrupt request line. The request
// is serviced at the next instruction boundary at which the interrupt-
// disable flag is clear, and remains asserted until ClearIRQ is called.
func (cpu *CPU) RaiseIRQ() {
	cpu.irqLine = true
}

// ClearIRQ deasserts the interrupt request line.
func (cpu *CPU) ClearIRQ() {
	cpu.irqLine = false
}

// Step advances the CPU by one instruction or one interrupt service
// sequence and returns the number of cycles consumed, so that a driver can
// keep other clocked hardware in sync. Pending interrupts are checked only
// here, at the instruction boundary, NMI before IRQ.
func (cpu *CPU) Step() int {
	if cycles := cpu.checkInterrupts(); cycles > 0 {
		return cycles
	}

	// Grab the next opcode at the current PC. Every opcode value is defined,
	// so decode cannot fail.
	opcode := cpu.Mem.LoadByte(cpu.Reg.PC)
	inst := cpu.InstSet.Lookup(opcode)

	// Fetch the operand (if any) and advance the PC.
	var buf [2]byte
	operand := buf[:inst.Length-1]
	LoadBytes(cpu.Mem, cpu.Reg.PC+1, operand)
	cpu.LastPC = cpu.Reg.PC
	cpu.Reg.PC += uint16(inst.Length)

	// Execute the instruction.
	cpu.pageCrossed = false
	cpu.deltaCycles = 0
	inst.fn(cpu, inst, operand)

	// Account cycles, including the conditional page-crossing penalty.
	cycles := int(int8(inst.Cycles) + cpu.deltaCycles)
	if cpu.pageCrossed {
		cycles += int(inst.BPCycles)
	}
	cpu.Cycles += uint64(cycles)

	// Update the debugger so it can handle breakpoints.
	if cpu.debugger != nil {
		cpu.debugger.onUpdatePC(cpu, cpu.Reg.PC)
	}

	return cycles
}

// Service a pending interrupt, if any, in priority order. Returns the
// cycles consumed, or zero when no interrupt was serviced.
func (cpu *CPU) checkInterrupts() int {
	switch {
	case cpu.nmiPending:
		cpu.nmiPending = false
		cpu.interrupt(vectorNMI)
	case cpu.irqLine && !cpu.Reg.InterruptDisable:
		cpu.interrupt(vectorIRQ)
	default:
		return 0
	}
	cpu.Cycles += interruptCycles
	return interruptCycles
}

// Handle a hardware interrupt by pushing the program counter and status
// flags onto the stack (break flag clear), then switching the program
// counter to the vectored address.
func (cpu *CPU) interrupt(vector uint16) {
	cpu.pushAddress(cpu.Reg.PC)
	cpu.push(cpu.Reg.SavePS(false))
	cpu.Reg.InterruptDisable = true
	cpu.Reg.PC = LoadAddress(cpu.Mem, vector)
}

// AttachDebugger attaches a debugger to the CPU. The debugger receives
// notifications whenever the CPU executes an instruction or stores a byte
// to memory.
func (cpu *CPU) AttachDebugger(debugger *Debugger) {
	cpu.debugger = debugger
	cpu.storeByte = (*CPU).storeByteDebugger
}

// DetachDebugger detaches the current debugger from the CPU.
func (cpu *CPU) DetachDebugger() {
	cpu.debugger = nil
	cpu.storeByte = (*CPU).storeByteNormal
}

// Load a byte value using the requested addressing mode and the operand to
// determine where to load it from.
func (cpu *CPU) load(mode Mode, operand []byte) byte {
	switch mode {
	case IMM:
		return operand[0]
	case ZPG:
		zpaddr := operandToAddress(operand)
		return cpu.Mem.LoadByte(zpaddr)
	case ZPX:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.X)
		return cpu.Mem.LoadByte(zpaddr)
	case ZPY:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.Y)
		return cpu.Mem.LoadByte(zpaddr)
	case ABS:
		addr := operandToAddress(operand)
		return cpu.Mem.LoadByte(addr)
	case ABX:
		addr := operandToAddress(operand)
		addr, cpu.pageCrossed = offsetAddress(addr, cpu.Reg.X)
		return cpu.Mem.LoadByte(addr)
	case ABY:
		addr := operandToAddress(operand)
		addr, cpu.pageCrossed = offsetAddress(addr, cpu.Reg.Y)
		return cpu.Mem.LoadByte(addr)
	case IDX:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.X)
		addr := LoadAddress(cpu.Mem, zpaddr)
		return cpu.Mem.LoadByte(addr)
	case IDY:
		zpaddr := operandToAddress(operand)
		addr := LoadAddress(cpu.Mem, zpaddr)
		addr, cpu.pageCrossed = offsetAddress(addr, cpu.Reg.Y)
		return cpu.Mem.LoadByte(addr)
	case ACC:
		return cpu.Reg.A
	default:
		panic("Invalid addressing mode")
	}
}

// Load a 16-bit address value using the requested addressing mode and the
// 16-bit instruction operand. The IND case reproduces the NMOS page-wrap
// bug: an indirect vector at $xxFF reads its high byte from $xx00.
func (cpu *CPU) loadAddress(mode Mode, operand []byte) uint16 {
	switch mode {
	case ABS:
		return operandToAddress(operand)
	case IND:
		addr := operandToAddress(operand)
		return LoadAddress(cpu.Mem, addr)
	default:
		panic("Invalid addressing mode")
	}
}

// Store a byte value using the specified addressing mode and the
// variable-sized instruction operand to determine where to store it.
func (cpu *CPU) store(mode Mode, operand []byte, v byte) {
	switch mode {
	case ZPG:
		zpaddr := operandToAddress(operand)
		cpu.storeByte(cpu, zpaddr, v)
	case ZPX:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.X)
		cpu.storeByte(cpu, zpaddr, v)
	case ZPY:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.Y)
		cpu.storeByte(cpu, zpaddr, v)
	case ABS:
		addr := operandToAddress(operand)
		cpu.storeByte(cpu, addr, v)
	case ABX:
		addr := operandToAddress(operand)
		addr, cpu.pageCrossed = offsetAddress(addr, cpu.Reg.X)
		cpu.storeByte(cpu, addr, v)
	case ABY:
		addr := operandToAddress(operand)
		addr, cpu.pageCrossed = offsetAddress(addr, cpu.Reg.Y)
		cpu.storeByte(cpu, addr, v)
	case IDX:
		zpaddr := operandToAddress(operand)
		zpaddr = offsetZeroPage(zpaddr, cpu.Reg.X)
		addr := LoadAddress(cpu.Mem, zpaddr)
		cpu.storeByte(cpu, addr, v)
	case IDY:
		zpaddr := operandToAddress(operand)
		addr := LoadAddress(cpu.Mem, zpaddr)
		addr, cpu.pageCrossed = offsetAddress(addr, cpu.Reg.Y)
		cpu.storeByte(cpu, addr, v)
	case ACC:
		cpu.Reg.A = v
	default:
		panic("Invalid addressing mode")
	}
}

// Execute a branch using the instruction operand. A taken branch costs one
// extra cycle, plus one more if the target lies on a different page than
// the instruction that follows the branch.
func (cpu *CPU) branch(operand []byte) {
	offset := operandToAddress(operand)
	oldPC := cpu.Reg.PC
	if offset < 0x80 {
		cpu.Reg.PC += uint16(offset)
	} else {
		cpu.Reg.PC -= uint16(0x100 - offset)
	}
	cpu.deltaCycles++
	if ((cpu.Reg.PC ^ oldPC) & 0xff00) != 0 {
		cpu.deltaCycles++
	}
}

// Store the byte value 'v' at the address 'addr'.
func (cpu *CPU) storeByteNormal(addr uint16, v byte) {
	cpu.Mem.StoreByte(addr, v)
}

// Store the byte value 'v' at the address 'addr', notifying the attached
// debugger first.
func (cpu *CPU) storeByteDebugger(addr uint16, v byte) {
	cpu.debugger.onDataStore(cpu, addr, v)
	cpu.Mem.StoreByte(addr, v)
}

// Push a value 'v' onto the stack.
func (cpu *CPU) push(v byte) {
	cpu.storeByte(cpu, stackAddress(cpu.Reg.SP), v)
	cpu.Reg.SP--
}

// Push the address 'addr' onto the stack, high byte first.
func (cpu *CPU) pushAddress(addr uint16) {
	cpu.push(byte(addr >> 8))
	cpu.push(byte(addr))
}

// Pop a value from the stack and return it.
func (cpu *CPU) pop() byte {
	cpu.Reg.SP++
	return cpu.Mem.LoadByte(stackAddress(cpu.Reg.SP))
}

// Pop a 16-bit address off the stack.
func (cpu *CPU) popAddress() uint16 {
	lo := cpu.pop()
	hi := cpu.pop()
	return uint16(lo) | (uint16(hi) << 8)
}

// Update the Zero and Negative flags based on the value of 'v'.
func (cpu *CPU) updateNZ(v byte) {
	cpu.Reg.Zero = (v == 0)
	cpu.Reg.Sign = ((v & 0x80) != 0)
}

// Add the value 'v' plus the carry flag to the accumulator. The 2A03 has no
// decimal mode, so the Decimal flag never affects the result.
func (cpu *CPU) addToAccumulator(v byte) {
	acc := uint32(cpu.Reg.A)
	add := uint32(v)
	carry := boolToUint32(cpu.Reg.Carry)

	sum := acc + add + carry
	cpu.Reg.Carry = (sum >= 0x100)
	cpu.Reg.Overflow = (((acc & 0x80) == (add & 0x80)) && ((acc & 0x80) != (sum & 0x80)))

	cpu.Reg.A = byte(sum)
	cpu.updateNZ(cpu.Reg.A)
}

// Subtract the value 'v' minus the borrow (inverted carry flag) from the
// accumulator.
func (cpu *CPU) subtractFromAccumulator(v byte) {
	acc := uint32(cpu.Reg.A)
	sub := uint32(v)
	carry := boolToUint32(cpu.Reg.Carry)

	d := 0xff + acc - sub + carry
	cpu.Reg.Carry = (d >= 0x100)
	cpu.Reg.Overflow = (((acc & 0x80) != (sub & 0x80)) && ((acc & 0x80) != (d & 0x80)))

	cpu.Reg.A = byte(d)
	cpu.updateNZ(cpu.Reg.A)
}

// Compare the register value 'r' against the loaded value 'v'.
func (cpu *CPU) compare(r, v byte) {
	cpu.Reg.Carry = (r >= v)
	cpu.updateNZ(r - v)
}

// Add with carry
func (cpu *CPU) adc(inst *Instruction, operand []byte) {
	cpu.addToAccumulator(cpu.load(inst.Mode, operand))
}

// Boolean AND
func (cpu *CPU) and(inst *Instruction, operand []byte) {
	cpu.Reg.A &= cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.A)
}

// Arithmetic Shift Left
func (cpu *CPU) asl(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Carry = ((v & 0x80) == 0x80)
	v = v << 1
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
}

// Branch if Carry Clear
func (cpu *CPU) bcc(inst *Instruction, operand []byte) {
	if !cpu.Reg.Carry {
		cpu.branch(operand)
	}
}

// Branch if Carry Set
func (cpu *CPU) bcs(inst *Instruction, operand []byte) {
	if cpu.Reg.Carry {
		cpu.branch(operand)
	}
}

// Branch if EQual (to zero)
func (cpu *CPU) beq(inst *Instruction, operand []byte) {
	if cpu.Reg.Zero {
		cpu.branch(operand)
	}
}

// Bit Test
func (cpu *CPU) bit(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Zero = ((v & cpu.Reg.A) == 0)
	cpu.Reg.Sign = ((v & 0x80) != 0)
	cpu.Reg.Overflow = ((v & 0x40) != 0)
}

// Branch if MInus (negative)
func (cpu *CPU) bmi(inst *Instruction, operand []byte) {
	if cpu.Reg.Sign {
		cpu.branch(operand)
	}
}

// Branch if Not Equal (not zero)
func (cpu *CPU) bne(inst *Instruction, operand []byte) {
	if !cpu.Reg.Zero {
		cpu.branch(operand)
	}
}

// Branch if PLus (positive)
func (cpu *CPU) bpl(inst *Instruction, operand []byte) {
	if !cpu.Reg.Sign {
		cpu.branch(operand)
	}
}

// Break: software interrupt. Pushes the address of the instruction after
// the padding byte, pushes the status with the break flag set, and vectors
// through $FFFE.
func (cpu *CPU) brk(inst *Instruction, operand []byte) {
	cpu.Reg.PC++
	cpu.pushAddress(cpu.Reg.PC)
	cpu.push(cpu.Reg.SavePS(true))
	cpu.Reg.InterruptDisable = true
	cpu.Reg.PC = LoadAddress(cpu.Mem, vectorBRK)
}

// Branch if oVerflow Clear
func (cpu *CPU) bvc(inst *Instruction, operand []byte) {
	if !cpu.Reg.Overflow {
		cpu.branch(operand)
	}
}

// Branch if oVerflow Set
func (cpu *CPU) bvs(inst *Instruction, operand []byte) {
	if cpu.Reg.Overflow {
		cpu.branch(operand)
	}
}

// Clear Carry flag
func (cpu *CPU) clc(inst *Instruction, operand []byte) {
	cpu.Reg.Carry = false
}

// Clear Decimal flag
func (cpu *CPU) cld(inst *Instruction, operand []byte) {
	cpu.Reg.Decimal = false
}

// Clear InterruptDisable flag
func (cpu *CPU) cli(inst *Instruction, operand []byte) {
	cpu.Reg.InterruptDisable = false
}

// Clear oVerflow flag
func (cpu *CPU) clv(inst *Instruction, operand []byte) {
	cpu.Reg.Overflow = false
}

// Compare to accumulator
func (cpu *CPU) cmp(inst *Instruction, operand []byte) {
	cpu.compare(cpu.Reg.A, cpu.load(inst.Mode, operand))
}

// Compare to X register
func (cpu *CPU) cpx(inst *Instruction, operand []byte) {
	cpu.compare(cpu.Reg.X, cpu.load(inst.Mode, operand))
}

// Compare to Y register
func (cpu *CPU) cpy(inst *Instruction, operand []byte) {
	cpu.compare(cpu.Reg.Y, cpu.load(inst.Mode, operand))
}

// Decrement memory value
func (cpu *CPU) dec(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand) - 1
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
}

// Decrement X register
func (cpu *CPU) dex(inst *Instruction, operand []byte) {
	cpu.Reg.X--
	cpu.updateNZ(cpu.Reg.X)
}

// Decrement Y register
func (cpu *CPU) dey(inst *Instruction, operand []byte) {
	cpu.Reg.Y--
	cpu.updateNZ(cpu.Reg.Y)
}

// Boolean XOR
func (cpu *CPU) eor(inst *Instruction, operand []byte) {
	cpu.Reg.A ^= cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.A)
}

// Increment memory value
func (cpu *CPU) inc(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand) + 1
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
}

// Increment X register
func (cpu *CPU) inx(inst *Instruction, operand []byte) {
	cpu.Reg.X++
	cpu.updateNZ(cpu.Reg.X)
}

// Increment Y register
func (cpu *CPU) iny(inst *Instruction, operand []byte) {
	cpu.Reg.Y++
	cpu.updateNZ(cpu.Reg.Y)
}

// Jump to memory address
func (cpu *CPU) jmp(inst *Instruction, operand []byte) {
	cpu.Reg.PC = cpu.loadAddress(inst.Mode, operand)
}

// Jump to subroutine. The pushed return address is the address of the last
// byte of the JSR instruction; RTS compensates by adding one.
func (cpu *CPU) jsr(inst *Instruction, operand []byte) {
	addr := cpu.loadAddress(inst.Mode, operand)
	cpu.pushAddress(cpu.Reg.PC - 1)
	cpu.Reg.PC = addr
}

// Load Accumulator
func (cpu *CPU) lda(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.A)
}

// Load the X register
func (cpu *CPU) ldx(inst *Instruction, operand []byte) {
	cpu.Reg.X = cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.X)
}

// Load the Y register
func (cpu *CPU) ldy(inst *Instruction, operand []byte) {
	cpu.Reg.Y = cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.Y)
}

// Logical Shift Right
func (cpu *CPU) lsr(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Carry = ((v & 1) == 1)
	v = v >> 1
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
}

// No-operation. The undocumented NOP variants still perform their dummy
// read, which is what charges the page-crossing penalty on the $1C family.
func (cpu *CPU) nop(inst *Instruction, operand []byte) {
	if inst.Mode != IMP {
		cpu.load(inst.Mode, operand)
	}
}

// Boolean OR
func (cpu *CPU) ora(inst *Instruction, operand []byte) {
	cpu.Reg.A |= cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.A)
}

// Push Accumulator
func (cpu *CPU) pha(inst *Instruction, operand []byte) {
	cpu.push(cpu.Reg.A)
}

// Push Processor flags. The pushed byte always has the break and reserved
// bits set; PLP discards them on the way back.
func (cpu *CPU) php(inst *Instruction, operand []byte) {
	cpu.push(cpu.Reg.SavePS(true))
}

// Pull (pop) Accumulator
func (cpu *CPU) pla(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.pop()
	cpu.updateNZ(cpu.Reg.A)
}

// Pull (pop) Processor flags
func (cpu *CPU) plp(inst *Instruction, operand []byte) {
	v := cpu.pop()
	cpu.Reg.RestorePS(v)
}

// Rotate Left
func (cpu *CPU) rol(inst *Instruction, operand []byte) {
	tmp := cpu.load(inst.Mode, operand)
	v := (tmp << 1) | boolToByte(cpu.Reg.Carry)
	cpu.Reg.Carry = ((tmp & 0x80) != 0)
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
}

// Rotate Right
func (cpu *CPU) ror(inst *Instruction, operand []byte) {
	tmp := cpu.load(inst.Mode, operand)
	v := (tmp >> 1) | (boolToByte(cpu.Reg.Carry) << 7)
	cpu.Reg.Carry = ((tmp & 1) != 0)
	cpu.updateNZ(v)
	cpu.store(inst.Mode, operand, v)
}

// Return from Interrupt
func (cpu *CPU) rti(inst *Instruction, operand []byte) {
	v := cpu.pop()
	cpu.Reg.RestorePS(v)
	cpu.Reg.PC = cpu.popAddress()
}

// Return from Subroutine
func (cpu *CPU) rts(inst *Instruction, operand []byte) {
	addr := cpu.popAddress()
	cpu.Reg.PC = addr + 1
}

// Subtract with Carry
func (cpu *CPU) sbc(inst *Instruction, operand []byte) {
	cpu.subtractFromAccumulator(cpu.load(inst.Mode, operand))
}

// Set Carry flag
func (cpu *CPU) sec(inst *Instruction, operand []byte) {
	cpu.Reg.Carry = true
}

// Set Decimal flag. The flag is stored but has no arithmetic effect on the
// 2A03.
func (cpu *CPU) sed(inst *Instruction, operand []byte) {
	cpu.Reg.Decimal = true
}

// Set InterruptDisable flag
func (cpu *CPU) sei(inst *Instruction, operand []byte) {
	cpu.Reg.InterruptDisable = true
}

// Store Accumulator
func (cpu *CPU) sta(inst *Instruction, operand []byte) {
	cpu.store(inst.Mode, operand, cpu.Reg.A)
}

// Store X register
func (cpu *CPU) stx(inst *Instruction, operand []byte) {
	cpu.store(inst.Mode, operand, cpu.Reg.X)
}

// Store Y register
func (cpu *CPU) sty(inst *Instruction, operand []byte) {
	cpu.store(inst.Mode, operand, cpu.Reg.Y)
}

// Transfer Accumulator to X register
func (cpu *CPU) tax(inst *Instruction, operand []byte) {
	cpu.Reg.X = cpu.Reg.A
	cpu.updateNZ(cpu.Reg.X)
}

// Transfer Accumulator to Y register
func (cpu *CPU) tay(inst *Instruction, operand []byte) {
	cpu.Reg.Y = cpu.Reg.A
	cpu.updateNZ(cpu.Reg.Y)
}

// Transfer stack pointer to X register
func (cpu *CPU) tsx(inst *Instruction, operand []byte) {
	cpu.Reg.X = cpu.Reg.SP
	cpu.updateNZ(cpu.Reg.X)
}

// Transfer X register to Accumulator
func (cpu *CPU) txa(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.Reg.X
	cpu.updateNZ(cpu.Reg.A)
}

// Transfer X register to the stack pointer. Does not affect flags.
func (cpu *CPU) txs(inst *Instruction, operand []byte) {
	cpu.Reg.SP = cpu.Reg.X
}

// Transfer Y register to the Accumulator
func (cpu *CPU) tya(inst *Instruction, operand []byte) {
	cpu.Reg.A = cpu.Reg.Y
	cpu.updateNZ(cpu.Reg.A)
}

// Undocumented: AND immediate, then logical shift right the accumulator.
func (cpu *CPU) alr(inst *Instruction, operand []byte) {
	cpu.Reg.A &= cpu.load(inst.Mode, operand)
	cpu.Reg.Carry = ((cpu.Reg.A & 1) == 1)
	cpu.Reg.A >>= 1
	cpu.updateNZ(cpu.Reg.A)
}

// Undocumented: AND immediate, copying the sign bit into carry.
func (cpu *CPU) anc(inst *Instruction, operand []byte) {
	cpu.Reg.A &= cpu.load(inst.Mode, operand)
	cpu.updateNZ(cpu.Reg.A)
	cpu.Reg.Carry = cpu.Reg.Sign
}

// Undocumented: AND immediate, then rotate the accumulator right. Carry
// comes from bit 6 of the result; overflow from bit 6 xor bit 5.
func (cpu *CPU) arr(inst *Instruction, operand []byte) {
	v := cpu.Reg.A & cpu.load(inst.Mode, operand)
	cpu.Reg.A = (v >> 1) | (boolToByte(cpu.Reg.Carry) << 7)
	cpu.updateNZ(cpu.Reg.A)
	cpu.Reg.Carry = ((cpu.Reg.A & 0x40) != 0)
	cpu.Reg.Overflow = (((cpu.Reg.A >> 6) ^ (cpu.Reg.A >> 5)) & 1) != 0
}

// Undocumented: X = (A AND X) - immediate, with compare-style carry.
func (cpu *CPU) axs(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	t := cpu.Reg.A & cpu.Reg.X
	cpu.Reg.Carry = (t >= v)
	cpu.Reg.X = t - v
	cpu.updateNZ(cpu.Reg.X)
}

// Undocumented: decrement memory, then compare with the accumulator.
func (cpu *CPU) dcp(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand) - 1
	cpu.store(inst.Mode, operand, v)
	cpu.compare(cpu.Reg.A, v)
}

// Undocumented: increment memory, then subtract it from the accumulator.
func (cpu *CPU) isb(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand) + 1
	cpu.store(inst.Mode, operand, v)
	cpu.subtractFromAccumulator(v)
}

// Undocumented: on hardware these opcodes wedge the CPU. Halting would
// violate the contract that every opcode has defined, resumable behavior,
// so they execute as single-byte two-cycle no-ops.
func (cpu *CPU) jam(inst *Instruction, operand []byte) {
	// Do nothing
}

// Undocumented: load memory AND stack pointer into A, X and SP.
func (cpu *CPU) las(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand) & cpu.Reg.SP
	cpu.Reg.A = v
	cpu.Reg.X = v
	cpu.Reg.SP = v
	cpu.updateNZ(v)
}

// Undocumented: load accumulator and X register together.
func (cpu *CPU) lax(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.A = v
	cpu.Reg.X = v
	cpu.updateNZ(v)
}

// Undocumented: rotate memory left, then AND it with the accumulator.
func (cpu *CPU) rla(inst *Instruction, operand []byte) {
	tmp := cpu.load(inst.Mode, operand)
	v := (tmp << 1) | boolToByte(cpu.Reg.Carry)
	cpu.Reg.Carry = ((tmp & 0x80) != 0)
	cpu.store(inst.Mode, operand, v)
	cpu.Reg.A &= v
	cpu.updateNZ(cpu.Reg.A)
}

// Undocumented: rotate memory right, then add it to the accumulator.
func (cpu *CPU) rra(inst *Instruction, operand []byte) {
	tmp := cpu.load(inst.Mode, operand)
	v := (tmp >> 1) | (boolToByte(cpu.Reg.Carry) << 7)
	cpu.Reg.Carry = ((tmp & 1) != 0)
	cpu.store(inst.Mode, operand, v)
	cpu.addToAccumulator(v)
}

// Undocumented: store A AND X. Does not affect flags.
func (cpu *CPU) sax(inst *Instruction, operand []byte) {
	cpu.store(inst.Mode, operand, cpu.Reg.A&cpu.Reg.X)
}

// Undocumented: shift memory left, then OR it into the accumulator.
func (cpu *CPU) slo(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Carry = ((v & 0x80) == 0x80)
	v <<= 1
	cpu.store(inst.Mode, operand, v)
	cpu.Reg.A |= v
	cpu.updateNZ(cpu.Reg.A)
}

// Undocumented: shift memory right, then XOR it into the accumulator.
func (cpu *CPU) sre(inst *Instruction, operand []byte) {
	v := cpu.load(inst.Mode, operand)
	cpu.Reg.Carry = ((v & 1) == 1)
	v >>= 1
	cpu.store(inst.Mode, operand, v)
	cpu.Reg.A ^= v
	cpu.updateNZ(cpu.Reg.A)
}

// Undocumented: the unstable store operations (SHA, SHX, SHY, TAS, XAA)
// have address-and-chip-revision dependent behavior that no software relies
// on. They consume their recorded bytes and cycles with no other effect.
func (cpu *CPU) unstable(inst *Instruction, operand []byte) {
	// Do nothing
}
