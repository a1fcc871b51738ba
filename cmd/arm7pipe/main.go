// Package main provides the command-line front end for arm7pipe: a
// three-stage fetch/decode/execute emulator for a small ARM-like
// instruction set.
package main

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/sarchlab/arm7pipe/cpu"
	"github.com/sarchlab/arm7pipe/internal/dump"
	"github.com/sarchlab/arm7pipe/loader"
	"github.com/sarchlab/arm7pipe/pipeline"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		usage(stderr)
		return 1
	}

	switch args[0] {
	case "emulate":
		return cmdEmulate(args[1:], stdout, stderr)
	case "assemble":
		return cmdAssemble(args[1:], stderr)
	case "bench":
		return cmdBench(args[1:], stdout, stderr)
	default:
		fmt.Fprintf(stderr, "unknown subcommand %q\n", args[0])
		usage(stderr)
		return 1
	}
}

func usage(stderr io.Writer) {
	fmt.Fprintln(stderr, "Usage: arm7pipe <subcommand> [arguments]")
	fmt.Fprintln(stderr, "  emulate <binary-path>            run a flat binary image to halt")
	fmt.Fprintln(stderr, "  assemble <asm-path> <out-path>   reserved, not implemented")
	fmt.Fprintln(stderr, "  bench                            run the bundled self-check scenarios")
}

func cmdEmulate(args []string, stdout, stderr io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: arm7pipe emulate <binary-path>")
		return 1
	}

	c, err := loader.Load(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	p := pipeline.NewPipe(c)
	if err := p.Run(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	if err := dump.Write(stdout, c.Registers); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	return 0
}

func cmdAssemble(args []string, stderr io.Writer) int {
	fmt.Fprintln(stderr, "assemble: not implemented")
	return 2
}

func cmdBench(args []string, stdout, stderr io.Writer) int {
	allPassed := true
	for _, sc := range benchScenarios {
		image := make([]byte, len(sc.words)*4)
		for i, w := range sc.words {
			binary.LittleEndian.PutUint32(image[i*4:], w)
		}

		c, err := cpu.NewFromImage(image)
		if err != nil {
			fmt.Fprintf(stdout, "%s: FAIL (load: %v)\n", sc.name, err)
			allPassed = false
			continue
		}

		p := pipeline.NewPipe(c)
		if err := p.Run(); err != nil {
			fmt.Fprintf(stdout, "%s: FAIL (run: %v)\n", sc.name, err)
			allPassed = false
			continue
		}

		if ok, reason := sc.check(c); ok {
			fmt.Fprintf(stdout, "%s: PASS\n", sc.name)
		} else {
			fmt.Fprintf(stdout, "%s: FAIL (%s)\n", sc.name, reason)
			allPassed = false
		}
	}

	if !allPassed {
		return 1
	}
	return 0
}
