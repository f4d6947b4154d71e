// Copyright 2026 Carl Dahl. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cartridge

import "github.com/pkg/errors"

// A mapper translates cartridge bus addresses into offsets within the PRG
// and CHR data. Bank-switching boards implement richer translations; mapper
// 0 is a fixed arrangement.
type mapper interface {
	mapPRG(addr uint16) int
	mapCHR(addr uint16) int
	writePRG(addr uint16, v byte)
}

// newMapper constructs the mapper identified by the cartridge header.
func newMapper(c *Cartridge) (mapper, error) {
	switch c.MapperID {
	case 0:
		return &nrom{prgBanks: len(c.PRG) / prgBankSize}, nil
	default:
		return nil, errors.Errorf("unsupported mapper %d", c.MapperID)
	}
}

// Mapper 0 (NROM): one or two fixed 16KB PRG banks and a fixed 8KB CHR
// bank. A single PRG bank appears mirrored at both $8000 and $C000.
type nrom struct {
	prgBanks int
}

func (m *nrom) mapPRG(addr uint16) int {
	if m.prgBanks > 1 {
		return int(addr & 0x7fff)
	}
	return int(addr & 0x3fff)
}

func (m *nrom) mapCHR(addr uint16) int {
	return int(addr) & (chrBankSize - 1)
}

func (m *nrom) writePRG(addr uint16, v byte) {
	// NROM has no mapper registers and no PRG-RAM; stores are dropped.
}
