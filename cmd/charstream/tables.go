package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/scott-cotton/cli"

	"github.com/chronos-tachyon/go-charstream"
)

type codePage struct {
	lo, hi int
	decode func(b byte) rune
}

var codePages = map[string]codePage{
	"windows-1252": {0x80, 0x9F, charstream.DecodeWin1252},
	"macroman":     {0x80, 0xFF, charstream.DecodeMacRoman},
	"symbol":       {0x20, 0xFF, func(b byte) rune { return charstream.DecodeSymbolFont(rune(b)) }},
}

func tables(cfg *TablesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Tables.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: expected one table name", cli.ErrUsage)
	}
	name := strings.ToLower(args[0])
	if enc, err := charstream.ParseEncoding(name); err == nil {
		name = enc.String()
	}
	cp, found := codePages[name]
	if !found {
		return fmt.Errorf("%w: no table %q", cli.ErrUsage, args[0])
	}
	return writeTable(cc.Out, cp)
}

// writeTable prints one line per mapped byte:
//
//	0xNN U+XXXX c
//
// Unassigned bytes are skipped.
func writeTable(w io.Writer, cp codePage) error {
	bw := bufio.NewWriter(w)
	for i := cp.lo; i <= cp.hi; i++ {
		r := cp.decode(byte(i))
		if r == 0 {
			continue
		}
		fmt.Fprintf(bw, "%#02x U+%04X", i, r)
		if unicode.IsPrint(r) {
			fmt.Fprintf(bw, " %c", r)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
