/*
Package rez implements an encoder for the textual resource definition
syntax understood by the classic Mac OS resource compiler.

Only raw data blocks are emitted:

	data 'icl8' (128, "Newton") {
		$"0000 0000 0000 0000 0000 0000 0000 0000"
	};

which is the same shape the DeRez tool produces and is sufficient for
the external compiler to rebuild the binary resource.
*/
package rez

const bytesPerLine = 16
