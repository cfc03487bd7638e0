// Package debugger is a terminal step debugger for the x86emu core: a
// register/flags pane, a memory hex-dump pane, and a command line driven
// by tview over tcell, adapted from an ARM assembly debugger down to the
// register and memory model this core actually has.
package debugger

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/x86emu/x86emu/config"
	"github.com/x86emu/x86emu/core"
)

// Debugger drives one Emulator under interactive single-stepping.
type Debugger struct {
	emu  *core.Emulator
	regs *core.RegisterFile
	src  *core.SliceByteSource
	cfg  *config.Config

	history *CommandHistory

	app          *tview.Application
	registerView *tview.TextView
	memoryView   *tview.TextView
	outputView   *tview.TextView
	commandInput *tview.InputField

	memAddr  uint32
	stepped  int
	finished bool
}

// New constructs a Debugger over an already-wired Emulator and builds its
// views. The views render immediately so step/continueToEnd can be driven
// in tests without starting the tview event loop.
func New(emu *core.Emulator, regs *core.RegisterFile, src *core.SliceByteSource, cfg *config.Config) *Debugger {
	h := NewCommandHistory()
	if cfg.Debugger.HistorySize > 0 {
		h.maxSize = cfg.Debugger.HistorySize
	}
	d := &Debugger{emu: emu, regs: regs, src: src, cfg: cfg, history: h}

	d.registerView = tview.NewTextView().SetDynamicColors(true)
	d.registerView.SetBorder(true).SetTitle(" Registers ")

	d.memoryView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true).SetWrap(false)
	d.memoryView.SetBorder(true).SetTitle(" Memory ")

	d.outputView = tview.NewTextView().SetDynamicColors(true).SetScrollable(true)
	d.outputView.SetBorder(true).SetTitle(" Output ")

	d.commandInput = tview.NewInputField().SetLabel("> ")
	d.commandInput.SetBorder(true).SetTitle(" Command (s=step, c=continue, q=quit) ")
	d.commandInput.SetDoneFunc(d.handleCommand)

	d.refresh()

	return d
}

// Run starts the tview event loop and blocks until the user quits.
func (d *Debugger) Run() error {
	d.app = tview.NewApplication()

	top := tview.NewFlex().
		AddItem(d.registerView, 0, 1, false).
		AddItem(d.memoryView, 0, 2, false)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(top, 0, 3, false).
		AddItem(d.outputView, 0, 2, false).
		AddItem(d.commandInput, 3, 0, true)

	d.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		if d.app.GetFocus() == d.commandInput {
			return event
		}
		switch event.Rune() {
		case 's':
			d.step()
			return nil
		case 'c':
			d.continueToEnd()
			return nil
		case 'q':
			d.app.Stop()
			return nil
		}
		return event
	})

	return d.app.SetRoot(layout, true).SetFocus(d.commandInput).Run()
}

// step executes exactly one instruction, if any remain.
func (d *Debugger) step() {
	if d.finished || d.src.Remaining() == 0 {
		d.finished = true
		fmt.Fprintln(d.outputView, "[yellow]no more instructions[white]")
		d.refresh()
		return
	}
	length := d.emu.Emulate()
	d.stepped++
	fmt.Fprintf(d.outputView, "step %d: consumed %d bytes\n", d.stepped, length)
	d.refresh()
}

// continueToEnd steps until the byte source is exhausted or the
// configured instruction budget is reached.
func (d *Debugger) continueToEnd() {
	for d.src.Remaining() > 0 {
		if d.cfg.Execution.MaxInstructions > 0 && uint64(d.stepped) >= d.cfg.Execution.MaxInstructions {
			fmt.Fprintln(d.outputView, "[yellow]stopped: max_instructions reached[white]")
			break
		}
		d.emu.Emulate()
		d.stepped++
	}
	d.finished = d.src.Remaining() == 0
	d.refresh()
}

func (d *Debugger) handleCommand(key tcell.Key) {
	if key != tcell.KeyEnter {
		return
	}
	cmd := strings.TrimSpace(d.commandInput.GetText())
	d.commandInput.SetText("")
	d.history.Add(cmd)

	switch {
	case cmd == "s" || cmd == "step":
		d.step()
	case cmd == "c" || cmd == "continue":
		d.continueToEnd()
	case cmd == "q" || cmd == "quit":
		d.app.Stop()
	case strings.HasPrefix(cmd, "mem "):
		d.setMemoryAddr(strings.TrimSpace(cmd[len("mem "):]))
	case cmd != "":
		fmt.Fprintf(d.outputView, "[red]unknown command: %s[white]\n", cmd)
	}
}

func (d *Debugger) setMemoryAddr(hex string) {
	hex = strings.TrimPrefix(hex, "0x")
	var addr uint32
	if _, err := fmt.Sscanf(hex, "%x", &addr); err != nil {
		fmt.Fprintf(d.outputView, "[red]bad address: %s[white]\n", hex)
		return
	}
	d.memAddr = addr & 0xFFFFF
	d.refresh()
}

func (d *Debugger) refresh() {
	d.registerView.SetText(d.formatRegisters())
	d.memoryView.SetText(d.formatMemory())
}

func (d *Debugger) formatRegisters() string {
	r := d.regs
	flags := r.GetFlags()
	flagBit := func(bit uint16, c string) string {
		if flags&bit != 0 {
			return c
		}
		return "-"
	}
	return fmt.Sprintf(
		"AX=%04X BX=%04X CX=%04X DX=%04X\nSP=%04X BP=%04X SI=%04X DI=%04X\n"+
			"ES=%04X CS=%04X SS=%04X DS=%04X\nFLAGS=%04X [%s%s%s%s%s%s]\ninstructions: %d",
		r.Get16(core.AX), r.Get16(core.BX), r.Get16(core.CX), r.Get16(core.DX),
		r.Get16(core.SP), r.Get16(core.BP), r.Get16(core.SI), r.Get16(core.DI),
		r.GetSeg(core.ES), r.GetSeg(core.CS), r.GetSeg(core.SS), r.GetSeg(core.DS),
		flags,
		flagBit(core.FlagOF, "O"), flagBit(core.FlagSF, "S"), flagBit(core.FlagZF, "Z"),
		flagBit(core.FlagAF, "A"), flagBit(core.FlagPF, "P"), flagBit(core.FlagCF, "C"),
		d.stepped,
	)
}

// formatMemory renders a fixed number of rows of hex/ASCII dump starting
// at d.memAddr, bytesPerLine bytes to a row.
func (d *Debugger) formatMemory() string {
	const rows = 8
	bytesPerLine := d.cfg.Display.BytesPerLine
	if bytesPerLine <= 0 {
		bytesPerLine = 16
	}

	var b strings.Builder
	addr := d.memAddr
	for row := 0; row < rows; row++ {
		fmt.Fprintf(&b, "%05X: ", addr)
		var ascii strings.Builder
		for col := 0; col < bytesPerLine; col++ {
			v := d.emu.PeekMemory(addr)
			fmt.Fprintf(&b, "%02X ", v)
			if v >= 0x20 && v < 0x7F {
				ascii.WriteByte(v)
			} else {
				ascii.WriteByte('.')
			}
			addr++
		}
		fmt.Fprintf(&b, " %s\n", ascii.String())
	}
	return b.String()
}
