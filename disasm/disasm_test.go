// Copyright 2026 Carl Dahl. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package disasm_test

import (
	"testing"

	"github.com/cmdahl/go2a03/cpu"
	"github.com/cmdahl/go2a03/disasm"
)

func TestDisassemble(t *testing.T) {
	cases := []struct {
		code []byte
		addr uint16
		line string
		next uint16
	}{
		{[]byte{0xa9, 0x5e}, 0x1000, "LDA #$5E", 0x1002},
		{[]byte{0x8d, 0x00, 0x15}, 0x1000, "STA $1500", 0x1003},
		{[]byte{0xbd, 0x02, 0x10}, 0x1000, "LDA $1002,X", 0x1003},
		{[]byte{0x6c, 0xff, 0x02}, 0x1000, "JMP ($02FF)", 0x1003},
		{[]byte{0x81, 0x05}, 0x1000, "STA ($05,X)", 0x1002},
		{[]byte{0x91, 0x06}, 0x1000, "STA ($06),Y", 0x1002},
		{[]byte{0x0a}, 0x1000, "ASL ", 0x1001},
		{[]byte{0xea}, 0x1000, "NOP ", 0x1001},
		{[]byte{0xa7, 0x10}, 0x1000, "LAX $10", 0x1002},

		// Relative branches display the absolute target.
		{[]byte{0xd0, 0x02}, 0x1000, "BNE $1004", 0x1002},
		{[]byte{0xd0, 0xfe}, 0x1000, "BNE $1000", 0x1002},
	}

	for _, tc := range cases {
		mem := cpu.NewFlatMemory()
		cpu.StoreBytes(mem, tc.addr, tc.code)

		line, next := disasm.Disassemble(mem, tc.addr)
		if line != tc.line {
			t.Errorf("line incorrect. exp: %q, got: %q", tc.line, line)
		}
		if next != tc.next {
			t.Errorf("next incorrect for %q. exp: $%04X, got: $%04X", tc.line, tc.next, next)
		}
	}
}

func TestRegisterString(t *testing.T) {
	var r cpu.Registers
	r.Init()
	r.PC = 0x1000

	got := disasm.GetRegisterString(&r)
	exp := "A=00 X=00 Y=00 PS=[---I--] SP=FD PC=1000"
	if got != exp {
		t.Errorf("register string incorrect. exp: %q, got: %q", exp, got)
	}
}
