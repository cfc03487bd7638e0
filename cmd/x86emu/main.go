// Command x86emu loads a flat binary image and runs it through the
// x86emu core, either to completion or under the interactive debugger.
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/x86emu/x86emu/config"
	"github.com/x86emu/x86emu/core"
	"github.com/x86emu/x86emu/debugger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "x86emu",
		Short: "A cycle-agnostic 8086-family instruction emulator",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config.toml (default: platform config dir)")

	root.AddCommand(newRunCmd(&configPath))
	root.AddCommand(newDebugCmd(&configPath))

	return root
}

func loadConfig(configPath string) *config.Config {
	path := configPath
	if path == "" {
		path = config.GetConfigPath()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		log.Fatalf("x86emu: %v", err)
	}
	return cfg
}

// parseSegOff parses a "SEG:OFF" or bare "OFF" hex string into a
// segment:offset pair. A bare offset is loaded at segment 0.
func parseSegOff(s string) (seg, off uint16, err error) {
	parts := strings.SplitN(s, ":", 2)
	parse := func(hex string) (uint16, error) {
		hex = strings.TrimPrefix(hex, "0x")
		v, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return 0, fmt.Errorf("invalid hex value %q: %w", hex, err)
		}
		return uint16(v), nil
	}
	if len(parts) == 2 {
		seg, err = parse(parts[0])
		if err != nil {
			return 0, 0, err
		}
		off, err = parse(parts[1])
		return seg, off, err
	}
	off, err = parse(parts[0])
	return 0, off, err
}

// setUp loads the image at path into a fresh register file, memory, and
// I/O space at the configured entry point, and returns the wired
// Emulator ready for Emulate to be called in a loop.
func setUp(cfg *config.Config, path string) (*core.Emulator, *core.RegisterFile, *core.SliceByteSource) {
	image, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("x86emu: reading %s: %v", path, err)
	}

	seg, off, err := parseSegOff(cfg.Execution.EntryPoint)
	if err != nil {
		log.Fatalf("x86emu: %v", err)
	}

	mem := core.NewLinearMemory()
	mem.LoadBytes(core.PhysicalAddress(seg, off), image)

	regs := core.NewRegisterFile()
	regs.SetSeg(core.CS, seg)
	regs.Set16(core.SP, 0xFFFE)

	src := core.NewSliceByteSource(image)

	emu := core.New(regs)
	emu.SetInstructionStream(src)
	emu.SetMemory(mem)
	emu.SetIO(core.NewLinearIO())

	return emu, regs, src
}

func dumpRegisters(regs *core.RegisterFile) {
	fmt.Printf("AX=%04X BX=%04X CX=%04X DX=%04X\n",
		regs.Get16(core.AX), regs.Get16(core.BX), regs.Get16(core.CX), regs.Get16(core.DX))
	fmt.Printf("SP=%04X BP=%04X SI=%04X DI=%04X\n",
		regs.Get16(core.SP), regs.Get16(core.BP), regs.Get16(core.SI), regs.Get16(core.DI))
	fmt.Printf("ES=%04X CS=%04X SS=%04X DS=%04X\n",
		regs.GetSeg(core.ES), regs.GetSeg(core.CS), regs.GetSeg(core.SS), regs.GetSeg(core.DS))
	fmt.Printf("FLAGS=%04X\n", regs.GetFlags())
}

func newRunCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run <file>",
		Short: "Run a flat binary image to completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(*configPath)
			emu, regs, src := setUp(cfg, args[0])

			var n uint64
			for src.Remaining() > 0 {
				if cfg.Execution.MaxInstructions > 0 && n >= cfg.Execution.MaxInstructions {
					fmt.Fprintf(os.Stderr, "x86emu: stopped after %d instructions (max_instructions)\n", n)
					break
				}
				length := emu.Emulate()
				if cfg.Execution.EnableTrace {
					fmt.Printf("[%6d] consumed %d bytes\n", n, length)
				}
				n++
			}

			dumpRegisters(regs)
			return nil
		},
	}
}

func newDebugCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "debug <file>",
		Short: "Run a flat binary image under the interactive step debugger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := loadConfig(*configPath)
			emu, regs, src := setUp(cfg, args[0])

			d := debugger.New(emu, regs, src, cfg)
			return d.Run()
		},
	}
}
