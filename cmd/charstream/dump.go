package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/chronos-tachyon/go-charstream"
)

func dump(cfg *DumpConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Dump.Parse(cc, args)
	if err != nil {
		return err
	}
	settings, err := cfg.settings()
	if err != nil {
		return err
	}
	return eachInput(cc, args, func(name string, r io.Reader) error {
		o, err := cfg.options(settings, os.Stderr, name)
		if err != nil {
			return err
		}
		return dumpReader(cc.Out, r, o, cfg.Offsets)
	})
}

// dumpReader writes one line per character of r:
//
//	line:column [offset] U+XXXX 'c'
func dumpReader(w io.Writer, r io.Reader, o charstream.Options, offsets bool) error {
	stream := charstream.New(r, o)
	bw := bufio.NewWriter(w)
	for {
		pos := stream.Position()
		ch := stream.ReadChar()
		if ch == charstream.EOF {
			break
		}
		fmt.Fprintf(bw, "%d:%d", pos.Line, pos.Column)
		if offsets {
			fmt.Fprintf(bw, " %d", pos.Offset)
		}
		fmt.Fprintf(bw, " U+%04X %q\n", ch, ch)
	}
	fmt.Fprintf(bw, "%d:%d", stream.Line(), stream.Column())
	if offsets {
		fmt.Fprintf(bw, " %d", stream.Position().Offset)
	}
	fmt.Fprintf(bw, " EOF (%v)\n", stream.Encoding())
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("error writing: %w", err)
	}
	if err := stream.Err(); err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	return nil
}
