// Copyright 2026 Carl Dahl. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cartridge_test

import (
	"bytes"
	"testing"

	"github.com/cmdahl/go2a03/cartridge"
)

// Build a minimal iNES image in memory.
func buildImage(prgBanks, chrBanks int, flags6, flags7 byte, trainer bool) []byte {
	var b bytes.Buffer
	if trainer {
		flags6 |= 0x04
	}
	b.Write([]byte{'N', 'E', 'S', 0x1a, byte(prgBanks), byte(chrBanks), flags6, flags7})
	b.Write(make([]byte, 8))
	if trainer {
		b.Write(make([]byte, 512))
	}
	for i := 0; i < prgBanks; i++ {
		bank := make([]byte, 16384)
		for j := range bank {
			bank[j] = byte(i + 1)
		}
		b.Write(bank)
	}
	for i := 0; i < chrBanks; i++ {
		bank := make([]byte, 8192)
		for j := range bank {
			bank[j] = byte(0x80 + i)
		}
		b.Write(bank)
	}
	return b.Bytes()
}

func TestDecode(t *testing.T) {
	img := buildImage(2, 1, 0x01, 0x00, false)

	c, err := cartridge.Decode(bytes.NewReader(img))
	if err != nil {
		t.Fatal(err)
	}
	if len(c.PRG) != 32768 || len(c.CHR) != 8192 {
		t.Errorf("bank sizes incorrect: PRG=%d CHR=%d", len(c.PRG), len(c.CHR))
	}
	if c.MapperID != 0 {
		t.Errorf("mapper ID incorrect: %d", c.MapperID)
	}
	if c.Mirror != cartridge.MirrorVertical {
		t.Errorf("mirror mode incorrect: %d", c.Mirror)
	}

	// Two PRG banks: $8000 sees bank 0, $C000 sees bank 1.
	if v := c.ReadPRG(0x8000); v != 1 {
		t.Errorf("PRG at $8000 incorrect: %d", v)
	}
	if v := c.ReadPRG(0xc000); v != 2 {
		t.Errorf("PRG at $C000 incorrect: %d", v)
	}
	if v := c.ReadCHR(0x0000); v != 0x80 {
		t.Errorf("CHR at $0000 incorrect: %d", v)
	}
}

// A single PRG bank is mirrored into both halves of the window.
func TestDecodeSingleBankMirroring(t *testing.T) {
	img := buildImage(1, 1, 0x00, 0x00, false)

	c, err := cartridge.Decode(bytes.NewReader(img))
	if err != nil {
		t.Fatal(err)
	}
	if v := c.ReadPRG(0xc123); v != c.ReadPRG(0x8123) {
		t.Errorf("single PRG bank not mirrored at $C123: %d", v)
	}
	if c.Mirror != cartridge.MirrorHorizontal {
		t.Errorf("mirror mode incorrect: %d", c.Mirror)
	}
}

func TestDecodeTrainerSkipped(t *testing.T) {
	img := buildImage(1, 1, 0x00, 0x00, true)

	c, err := cartridge.Decode(bytes.NewReader(img))
	if err != nil {
		t.Fatal(err)
	}
	if v := c.ReadPRG(0x8000); v != 1 {
		t.Errorf("PRG misaligned after trainer: %d", v)
	}
}

func TestDecodeChrRam(t *testing.T) {
	img := buildImage(1, 0, 0x00, 0x00, false)

	c, err := cartridge.Decode(bytes.NewReader(img))
	if err != nil {
		t.Fatal(err)
	}
	if len(c.CHR) != 8192 {
		t.Errorf("CHR-RAM size incorrect: %d", len(c.CHR))
	}
}

func TestDecodeErrors(t *testing.T) {
	// Bad magic
	img := buildImage(1, 1, 0x00, 0x00, false)
	img[0] = 'X'
	if _, err := cartridge.Decode(bytes.NewReader(img)); err == nil {
		t.Error("expected error for bad magic")
	}

	// Unsupported mapper
	img = buildImage(1, 1, 0x10, 0x00, false)
	if _, err := cartridge.Decode(bytes.NewReader(img)); err == nil {
		t.Error("expected error for unsupported mapper")
	}

	// Truncated PRG data
	img = buildImage(1, 0, 0x00, 0x00, false)
	if _, err := cartridge.Decode(bytes.NewReader(img[:100])); err == nil {
		t.Error("expected error for truncated image")
	}

	// PRG write is dropped on ROM boards.
	c, err := cartridge.Decode(bytes.NewReader(buildImage(1, 1, 0x00, 0x00, false)))
	if err != nil {
		t.Fatal(err)
	}
	c.WritePRG(0x8000, 0x99)
	if v := c.ReadPRG(0x8000); v != 1 {
		t.Errorf("PRG ROM modified by write: %d", v)
	}
}
