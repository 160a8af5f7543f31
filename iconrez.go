/*
Package iconrez converts the six members of a classic Mac OS Finder
icon family into a textual resource definition document suitable for an
external resource compiler.

Each source image is decoded, matched against the fixed system palette
for its bit depth, and emitted as a data block; the 1-bit members also
carry the transparency mask shared by the whole family.
*/
package iconrez

import "log"

type IconRez struct {
	logger *log.Logger
}

func New(logger *log.Logger) *IconRez {
	return &IconRez{
		logger: logger,
	}
}
