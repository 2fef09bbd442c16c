// Command nestest drives a Machine against an iNES ROM, optionally emitting
// a per-instruction trace in the nestest reference log format.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/nescore/nes6502/cartridge"
	"github.com/nescore/nes6502/machine"
	"gopkg.in/urfave/cli.v2"
)

func main() {
	app := &cli.App{
		Name:    "nestest",
		Usage:   "Run an iNES ROM against the CPU core and trace its execution",
		Version: "v0.0.1",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "rom",
				Aliases: []string{"r"},
				Usage:   "path to the iNES ROM to run",
			},
			&cli.StringFlag{
				Name:    "out",
				Aliases: []string{"o"},
				Usage:   "trace output file (defaults to stdout)",
			},
			&cli.BoolFlag{
				Name:  "trace",
				Usage: "emit a per-instruction trace line",
				Value: true,
			},
			&cli.IntFlag{
				Name:  "frames",
				Usage: "stop after this many PPU frames (0 runs until an error)",
				Value: 1,
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		cli.ShowAppHelp(c)
		return cli.Exit("--rom is required", 86)
	}

	cart, err := cartridge.Load(romPath)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	out := io.Writer(os.Stdout)
	if path := c.String("out"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return cli.Exit(err.Error(), 1)
		}
		defer f.Close()
		w := bufio.NewWriter(f)
		defer w.Flush()
		out = w
	}

	m := machine.New(cart)
	m.ResetForNestest()

	if c.Bool("trace") {
		m.CPU.Trace = func(line string) {
			fmt.Fprintln(out, line)
		}
	}

	ctx := context.Background()
	frames := c.Int("frames")
	return runFrames(ctx, m, frames)
}

// runFrames advances the Machine frame by frame, bounding the run for
// headless/CI use. frames == 0 runs until the CPU reports an error (an
// unimplemented opcode) instead of stopping on a frame count.
func runFrames(ctx context.Context, m *machine.Machine, frames int) error {
	for i := 0; frames == 0 || i < frames; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := m.SingleFrame(); err != nil {
			return err
		}
	}
	return nil
}
