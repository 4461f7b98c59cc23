package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"

	"github.com/chronos-tachyon/go-charstream"
)

func decode(cfg *DecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Decode.Parse(cc, args)
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
		return decodeReader(cc.Out, r, o, cfg.Unpack)
	})
}

// decodeReader writes the characters of r to w as UTF-8.  Characters with
// no UTF-8 encoding are written as RuneError.  With unpack, packed Big5 and
// Shift_JIS pairs are converted to Unicode first.
//
// ISO-2022 input is written back as the bytes it was read from, escapes
// included.  With unpack it is decoded as ISO-2022-JP instead.
func decodeReader(w io.Writer, r io.Reader, o charstream.Options, unpack bool) error {
	stream := charstream.New(r, o)
	bw := bufio.NewWriter(w)
	var err error
	if stream.Encoding() == charstream.ISO2022 {
		err = writeISO2022(bw, stream, unpack)
	} else {
		err = writeChars(bw, stream, unpack)
	}
	if err != nil {
		return fmt.Errorf("error writing: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("error writing: %w", err)
	}
	if err := stream.Err(); err != nil {
		return fmt.Errorf("error reading: %w", err)
	}
	return nil
}

func writeChars(w io.Writer, stream *charstream.Stream, unpack bool) error {
	var u *unpacker
	if unpack {
		u = newUnpacker(stream.Encoding())
	}
	for {
		ch := stream.ReadChar()
		if ch == charstream.EOF {
			return nil
		}
		ch = u.unpack(ch)
		if _, err := charstream.WriteRune(w, ch); err != nil {
			if _, err := charstream.WriteRune(w, charstream.RuneError); err != nil {
				return err
			}
		}
	}
}

// writeISO2022 clears the high bit that marks bytes of a multibyte
// character set.
func writeISO2022(w io.Writer, stream *charstream.Stream, unpack bool) error {
	var tw io.WriteCloser
	if unpack {
		tw = transform.NewWriter(w, japanese.ISO2022JP.NewDecoder())
		w = tw
	}
	var buf [1]byte
	for {
		ch := stream.ReadChar()
		if ch == charstream.EOF {
			break
		}
		buf[0] = byte(ch) &^ 0x80
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	if tw != nil {
		return tw.Close()
	}
	return nil
}
