// Copyright 2026 Carl Dahl. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cartridge loads NES cartridge images in the iNES file format and
// presents their PRG and CHR contents through a mapper.
package cartridge

import (
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

const (
	prgBankSize = 16384
	chrBankSize = 8192
	trainerSize = 512
)

var inesMagic = [4]byte{'N', 'E', 'S', 0x1a}

// iNES file header, as laid out on disk.
type header struct {
	Magic    [4]byte // "NES" followed by $1A
	PRGBanks byte    // number of 16KB PRG-ROM banks
	CHRBanks byte    // number of 8KB CHR-ROM banks
	Flags6   byte    // mirroring, battery, trainer, lower mapper nibble
	Flags7   byte    // upper mapper nibble
	_        [8]byte // unused padding
}

// Flag bits in the Flags6 header byte
const (
	flagMirrorVertical = 1 << 0
	flagBattery        = 1 << 1
	flagTrainer        = 1 << 2
	flagFourScreen     = 1 << 3
)

// MirrorMode describes the nametable mirroring arrangement requested by the
// cartridge.
type MirrorMode byte

// All possible mirroring arrangements
const (
	MirrorHorizontal MirrorMode = iota
	MirrorVertical
	MirrorFourScreen
)

// A Cartridge holds the decoded contents of an iNES file: the PRG-ROM and
// CHR data plus the mapper that projects them into the console's address
// space.
type Cartridge struct {
	PRG      []byte     // PRG-ROM banks
	CHR      []byte     // CHR-ROM banks (or CHR-RAM if the file has none)
	MapperID byte       // iNES mapper number
	Mirror   MirrorMode // nametable mirroring arrangement
	Battery  bool       // cartridge has battery-backed RAM
	mapper   mapper
}

// Decode reads an iNES image from 'r' and returns the decoded cartridge.
func Decode(r io.Reader) (*Cartridge, error) {
	var h header
	if err := binary.Read(r, binary.LittleEndian, &h); err != nil {
		return nil, errors.Wrap(err, "read iNES header")
	}
	if h.Magic != inesMagic {
		return nil, errors.New("invalid iNES magic number")
	}
	if h.PRGBanks == 0 {
		return nil, errors.New("iNES file has no PRG banks")
	}

	// A trainer, when present, sits between the header and the PRG data.
	if h.Flags6&flagTrainer != 0 {
		if _, err := io.CopyN(io.Discard, r, trainerSize); err != nil {
			return nil, errors.Wrap(err, "skip trainer")
		}
	}

	c := &Cartridge{
		PRG:      make([]byte, int(h.PRGBanks)*prgBankSize),
		MapperID: (h.Flags7 & 0xf0) | (h.Flags6 >> 4),
		Battery:  h.Flags6&flagBattery != 0,
	}

	switch {
	case h.Flags6&flagFourScreen != 0:
		c.Mirror = MirrorFourScreen
	case h.Flags6&flagMirrorVertical != 0:
		c.Mirror = MirrorVertical
	default:
		c.Mirror = MirrorHorizontal
	}

	if _, err := io.ReadFull(r, c.PRG); err != nil {
		return nil, errors.Wrap(err, "read PRG banks")
	}

	if h.CHRBanks > 0 {
		c.CHR = make([]byte, int(h.CHRBanks)*chrBankSize)
		if _, err := io.ReadFull(r, c.CHR); err != nil {
			return nil, errors.Wrap(err, "read CHR banks")
		}
	} else {
		// No CHR-ROM means the board supplies 8KB of CHR-RAM.
		c.CHR = make([]byte, chrBankSize)
	}

	m, err := newMapper(c)
	if err != nil {
		return nil, err
	}
	c.mapper = m

	return c, nil
}

// LoadFile loads an iNES image from the named file.
func LoadFile(filename string) (*Cartridge, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open cartridge file")
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", filename)
	}
	return c, nil
}

// ReadPRG returns the PRG byte visible at bus address 'addr', which must lie
// in the cartridge's $8000-$FFFF window.
func (c *Cartridge) ReadPRG(addr uint16) byte {
	return c.PRG[c.mapper.mapPRG(addr)]
}

// WritePRG handles a store to the cartridge's PRG window. Mapper 0 boards
// are pure ROM, so the store is ignored.
func (c *Cartridge) WritePRG(addr uint16, v byte) {
	c.mapper.writePRG(addr, v)
}

// ReadCHR returns the CHR byte at pattern-table address 'addr'.
func (c *Cartridge) ReadCHR(addr uint16) byte {
	return c.CHR[c.mapper.mapCHR(addr)]
}
