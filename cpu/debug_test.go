// Copyright 2026 Carl Dahl. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cpu_test

import (
	"testing"

	"github.com/cmdahl/go2a03/cpu"
)

type testHandler struct {
	breaks     []uint16
	dataBreaks []uint16
}

func (h *testHandler) OnBreakpoint(c *cpu.CPU, b *cpu.Breakpoint) {
	h.breaks = append(h.breaks, b.Address)
}

func (h *testHandler) OnDataBreakpoint(c *cpu.CPU, b *cpu.DataBreakpoint) {
	h.dataBreaks = append(h.dataBreaks, b.Address)
}

func TestBreakpoint(t *testing.T) {
	code := []byte{
		0xa9, 0x01, // LDA #$01
		0xa9, 0x02, // LDA #$02
		0xa9, 0x03, // LDA #$03
	}

	c := loadCPU(code, 0x1000)
	h := &testHandler{}
	d := cpu.NewDebugger(h)
	c.AttachDebugger(d)
	d.AddBreakpoint(0x1004)

	stepCPU(c, 3)
	if len(h.breaks) != 1 || h.breaks[0] != 0x1004 {
		t.Errorf("breakpoint notifications incorrect: %v", h.breaks)
	}

	// A disabled breakpoint stays registered but never fires.
	d.GetBreakpoint(0x1004).Disabled = true
	c.SetPC(0x1000)
	stepCPU(c, 3)
	if len(h.breaks) != 1 {
		t.Errorf("disabled breakpoint fired: %v", h.breaks)
	}
}

func TestDataBreakpoint(t *testing.T) {
	code := []byte{
		0xa9, 0x55, // LDA #$55
		0x8d, 0x00, 0x20, // STA $2000
		0xa9, 0x66, // LDA #$66
		0x8d, 0x00, 0x20, // STA $2000
	}

	c := loadCPU(code, 0x1000)
	h := &testHandler{}
	d := cpu.NewDebugger(h)
	c.AttachDebugger(d)
	d.AddConditionalDataBreakpoint(0x2000, 0x66)

	stepCPU(c, 4)
	if len(h.dataBreaks) != 1 || h.dataBreaks[0] != 0x2000 {
		t.Errorf("data breakpoint notifications incorrect: %v", h.dataBreaks)
	}
	expectMem(t, c, 0x2000, 0x66)
}

func TestDebuggerDetach(t *testing.T) {
	c := loadCPU([]byte{0xa9, 0x01, 0xa9, 0x02}, 0x1000)
	h := &testHandler{}
	d := cpu.NewDebugger(h)
	c.AttachDebugger(d)
	d.AddBreakpoint(0x1002)

	c.DetachDebugger()
	stepCPU(c, 2)
	if len(h.breaks) != 0 {
		t.Errorf("detached debugger fired: %v", h.breaks)
	}
}

func TestBreakpointListing(t *testing.T) {
	d := cpu.NewDebugger(nil)
	d.AddBreakpoint(0x3000)
	d.AddBreakpoint(0x1000)
	d.AddBreakpoint(0x2000)
	d.RemoveBreakpoint(0x2000)

	bp := d.GetBreakpoints()
	if len(bp) != 2 || bp[0].Address != 0x1000 || bp[1].Address != 0x3000 {
		t.Errorf("breakpoint listing incorrect: %v", bp)
	}
}
