package rez

import (
	"errors"
	"fmt"
	"io"
)

// Block is a single typed resource and its payload.
type Block struct {
	Type string // four character resource type, e.g. "ICN#"
	ID   int16
	Name string // optional resource name
	Data []byte
}

var errBadType = errors.New("rez: resource type must be four characters")

type encoder struct {
	w io.Writer
}

func (e *encoder) block(b Block) error {
	if len(b.Type) != 4 {
		return errBadType
	}

	if b.Name != "" {
		if _, err := fmt.Fprintf(e.w, "data '%s' (%d, %q) {\n", b.Type, b.ID, b.Name); err != nil {
			return err
		}
	} else {
		if _, err := fmt.Fprintf(e.w, "data '%s' (%d) {\n", b.Type, b.ID); err != nil {
			return err
		}
	}

	for off := 0; off < len(b.Data); off += bytesPerLine {
		end := off + bytesPerLine
		if end > len(b.Data) {
			end = len(b.Data)
		}

		if _, err := io.WriteString(e.w, "\t$\""); err != nil {
			return err
		}
		for i, v := range b.Data[off:end] {
			if i > 0 && i%2 == 0 {
				if _, err := io.WriteString(e.w, " "); err != nil {
					return err
				}
			}
			if _, err := fmt.Fprintf(e.w, "%02X", v); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(e.w, "\"\n"); err != nil {
			return err
		}
	}

	_, err := io.WriteString(e.w, "};\n")
	return err
}

// Encode writes the blocks to w in resource definition syntax, in the
// order given, separated by blank lines.
func Encode(w io.Writer, blocks []Block) error {
	e := encoder{w: w}
	for i, b := range blocks {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if err := e.block(b); err != nil {
			return err
		}
	}
	return nil
}
