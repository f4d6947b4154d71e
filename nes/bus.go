// Copyright 2026 Carl Dahl. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nes assembles the console-side memory map seen by the 2A03: the
// 2KB of internal RAM with its mirrors, the PPU register window, and the
// cartridge PRG space.
package nes

import (
	"github.com/cmdahl/go2a03/cartridge"
	"github.com/cmdahl/go2a03/cpu"
)

// Bus address ranges
const (
	ramAddressHi    = 0x1fff // internal RAM and its mirrors
	ppuAddressHi    = 0x3fff // PPU registers, mirrored every 8 bytes
	prgAddressLo    = 0x8000 // cartridge PRG window
	internalRAMSize = 2048
)

// A Bus is the 2A03's view of console memory. It satisfies the cpu.Memory
// interface so a CPU can be attached to it directly.
type Bus struct {
	ram  [internalRAMSize]byte
	ppu  [8]byte // PPU register latch; no PPU is emulated behind it
	cart *cartridge.Cartridge
}

// Compile-time check that Bus satisfies the CPU's memory interface.
var _ cpu.Memory = (*Bus)(nil)

// NewBus creates a console memory bus with the provided cartridge inserted.
func NewBus(cart *cartridge.Cartridge) *Bus {
	return &Bus{cart: cart}
}

// LoadByte loads a single byte from the bus address and returns it.
// Addresses with no device behind them read as zero.
func (b *Bus) LoadByte(addr uint16) byte {
	switch {
	case addr <= ramAddressHi:
		return b.ram[addr&(internalRAMSize-1)]
	case addr <= ppuAddressHi:
		return b.ppu[addr&0x07]
	case addr >= prgAddressLo:
		return b.cart.ReadPRG(addr)
	default:
		return 0
	}
}

// StoreByte stores a byte to the requested bus address. Stores to unmapped
// addresses are dropped.
func (b *Bus) StoreByte(addr uint16, v byte) {
	switch {
	case addr <= ramAddressHi:
		b.ram[addr&(internalRAMSize-1)] = v
	case addr <= ppuAddressHi:
		b.ppu[addr&0x07] = v
	case addr >= prgAddressLo:
		b.cart.WritePRG(addr, v)
	}
}
