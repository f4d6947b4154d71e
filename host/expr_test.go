// Copyright 2026 Carl Dahl. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import "testing"

type testResolver struct{}

func (testResolver) resolveIdentifier(s string) (int64, error) {
	switch s {
	case "pc", ".":
		return 0x1234, nil
	case "sp":
		return 0x01fd, nil
	}
	return 0, errExprParse
}

func TestExprParse(t *testing.T) {
	cases := []struct {
		expr string
		want int64
	}{
		{"2+3*4", 14},
		{"(2+3)*4", 20},
		{"10-4-3", 3},
		{"$ff", 255},
		{"0x10|0b101", 0x15},
		{"1<<8", 256},
		{"~0&$ffff", 0xffff},
		{"-1&$ffff", 0xffff},
		{"100%7", 2},
		{"pc+2", 0x1236},
		{".", 0x1234},
		{"sp-1", 0x01fc},
	}

	p := newExprParser()
	for _, c := range cases {
		v, err := p.Parse(c.expr, testResolver{})
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", c.expr, err)
			continue
		}
		if v != c.want {
			t.Errorf("Parse(%q) = %d, want %d", c.expr, v, c.want)
		}
	}
}

func TestExprParseHexMode(t *testing.T) {
	p := newExprParser()
	p.hexMode = true

	cases := []struct {
		expr string
		want int64
	}{
		{"10", 0x10},
		{"ff", 0xff},
		{"10+10", 0x20},
		{"$20", 0x20},
	}

	for _, c := range cases {
		v, err := p.Parse(c.expr, testResolver{})
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", c.expr, err)
			continue
		}
		if v != c.want {
			t.Errorf("Parse(%q) = %d, want %d", c.expr, v, c.want)
		}
	}
}

func TestExprParseErrors(t *testing.T) {
	cases := []string{
		"",
		"2+",
		"(2+3",
		"5/0",
		"$",
		"2 3",
		"bogus",
	}

	p := newExprParser()
	for _, expr := range cases {
		if _, err := p.Parse(expr, testResolver{}); err == nil {
			t.Errorf("Parse(%q) succeeded, expected error", expr)
		}
	}
}
