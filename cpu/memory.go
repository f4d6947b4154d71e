// Copyright 2026 Carl Dahl. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu

// The Memory interface presents the bus through which the CPU performs all
// of its memory accesses. The CPU owns no memory itself and assumes nothing
// about the memory map behind the bus; RAM, mapper and device-register
// implementations all plug in here.
type Memory interface {
	// LoadByte loads a single byte from the address and returns it.
	LoadByte(addr uint16) byte

	// StoreByte stores a byte to the requested address.
	StoreByte(addr uint16, v byte)
}

// LoadBytes loads multiple bytes starting at the requested address and
// stores them into the buffer 'b'.
func LoadBytes(m Memory, addr uint16, b []byte) {
	for i := range b {
		b[i] = m.LoadByte(addr + uint16(i))
	}
}

// StoreBytes stores multiple bytes starting at the requested address.
func StoreBytes(m Memory, addr uint16, b []byte) {
	for i, v := range b {
		m.StoreByte(addr+uint16(i), v)
	}
}

// LoadAddress loads a 16-bit little-endian address from the requested
// address and returns it.
//
// When the address spans 2 pages (i.e., the address ends in $FF), the high
// byte of the loaded address comes from a page-wrapped address. For example,
// LoadAddress on $12FF reads the low byte from $12FF and the high byte from
// $1200. This mimics the behavior of the NMOS 6502 and is the source of the
// JMP ($xxFF) hardware bug; the same rule makes zero-page pointers wrap
// within page zero.
func LoadAddress(m Memory, addr uint16) uint16 {
	if (addr & 0xff) == 0xff {
		return uint16(m.LoadByte(addr)) | uint16(m.LoadByte(addr-0xff))<<8
	}
	return uint16(m.LoadByte(addr)) | uint16(m.LoadByte(addr+1))<<8
}

// StoreAddress stores a 16-bit address 'v' little-endian to the requested
// address, page-wrapping the high byte the same way LoadAddress does.
func StoreAddress(m Memory, addr uint16, v uint16) {
	m.StoreByte(addr, byte(v))
	if (addr & 0xff) == 0xff {
		m.StoreByte(addr-0xff, byte(v>>8))
	} else {
		m.StoreByte(addr+1, byte(v>>8))
	}
}

// FlatMemory represents an entire 16-bit address space as a singular
// 64K buffer. It is useful for tests and for hosts that run raw machine
// code outside of a full console memory map.
type FlatMemory struct {
	b [64 * 1024]byte
}

// NewFlatMemory creates a new 16-bit memory space.
func NewFlatMemory() *FlatMemory {
	return &FlatMemory{}
}

// LoadByte loads a single byte from the address and returns it.
func (m *FlatMemory) LoadByte(addr uint16) byte {
	return m.b[addr]
}

// StoreByte stores a byte at the requested address.
func (m *FlatMemory) StoreByte(addr uint16, v byte) {
	m.b[addr] = v
}

// Return the offset address 'addr' + 'offset'. If the offset crossed a page
// boundary, return 'pageCrossed' as true.
func offsetAddress(addr uint16, offset byte) (newAddr uint16, pageCrossed bool) {
	newAddr = addr + uint16(offset)
	pageCrossed = ((newAddr & 0xff00) != (addr & 0xff00))
	return newAddr, pageCrossed
}

// Offset a zero-page address 'addr' by 'offset'. If the address exceeds the
// zero-page address space, wrap it.
func offsetZeroPage(addr uint16, offset byte) uint16 {
	addr += uint16(offset)
	if addr >= 0x100 {
		addr -= 0x100
	}
	return addr
}

// Convert a 1- or 2-byte operand into an address.
func operandToAddress(operand []byte) uint16 {
	switch {
	case len(operand) == 1:
		return uint16(operand[0])
	case len(operand) == 2:
		return uint16(operand[0]) | uint16(operand[1])<<8
	}
	return 0
}

// Given a 1-byte stack pointer register, return the corresponding stack
// memory address.
func stackAddress(offset byte) uint16 {
	return uint16(0x100) + uint16(offset)
}
