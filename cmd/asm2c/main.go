// Completion: 95% - CLI complete, symbol name resolution not implemented
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/xyproto/asm2c"
	"github.com/xyproto/env/v2"
	"golang.org/x/arch/x86/x86asm"
	"golang.org/x/sys/unix"
)

// A small disassembler front end: decode a raw assembled binary and print
// each instruction next to its C-like pseudo-code translation.

const versionString = "asm2c 1.0.0"

// translationBufferSize bounds one rendered pseudo-code line.
const translationBufferSize = 1024

// defaultDisplayBase matches the typical image base of a Windows x64
// executable, which makes branch targets in dumped .text sections line up.
const defaultDisplayBase = "0x140000000"

func terminalWidth() int {
	ws, err := unix.IoctlGetWinsize(int(os.Stdout.Fd()), unix.TIOCGWINSZ)
	if err != nil || ws.Col == 0 {
		return env.Int("ASM2C_WIDTH", 0)
	}
	return env.Int("ASM2C_WIDTH", int(ws.Col))
}

func parseBase(s string) (uint64, error) {
	s = strings.TrimPrefix(strings.ToLower(s), "0x")
	base, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid base address %q: %v", s, err)
	}
	return base, nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func run(path string, base uint64, verbose bool) error {
	code, err := readInput(path)
	if err != nil {
		return err
	}
	if len(code) == 0 {
		return fmt.Errorf("%s is empty", path)
	}

	width := terminalWidth()
	var buf [translationBufferSize]byte

	offset := 0
	for offset < len(code) {
		decoded, err := x86asm.Decode(code[offset:], 64)
		if err != nil {
			return fmt.Errorf("invalid instruction at 0x%X: %v", base+uint64(offset), err)
		}

		va := base + uint64(offset)
		disasm := x86asm.IntelSyntax(decoded, va, nil)

		pseudo := ""
		if inst, operands, ok := asm2c.InstructionFromX86Asm(decoded); ok {
			if translated, _ := asm2c.TranslateInstruction(&inst, operands, va, buf[:]); translated {
				pseudo = asm2c.BufferString(buf[:])
			} else if verbose {
				fmt.Fprintf(os.Stderr, "asm2c: no translation for %s at 0x%X\n", inst.Mnemonic, va)
			}
		} else if verbose {
			fmt.Fprintf(os.Stderr, "asm2c: unsupported instruction %s at 0x%X\n", decoded.Op, va)
		}

		line := fmt.Sprintf("%8X | %-64s | %s", va, disasm, pseudo)
		if width > 0 && len(line) > width {
			line = line[:width]
		}
		fmt.Println(line)

		offset += decoded.Len
	}
	return nil
}

func main() {
	versionFlag := flag.Bool("version", false, "show version and exit")
	verboseFlag := flag.Bool("v", false, "report untranslatable instructions on stderr")
	baseFlag := flag.String("base", env.Str("ASM2C_BASE", defaultDisplayBase), "display base address (hex)")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: asm2c [options] <RawAssembledBinaryFile | - >\n\nOptions:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *versionFlag {
		fmt.Println(versionString)
		return
	}
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	base, err := parseBase(*baseFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "asm2c: %v\n", err)
		os.Exit(1)
	}

	if err := run(flag.Arg(0), base, *verboseFlag); err != nil {
		fmt.Fprintf(os.Stderr, "asm2c: %v\n", err)
		os.Exit(1)
	}
}
