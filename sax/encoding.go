// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sax

import "bytes"

// Encoding identifies the text encoding a document appears to use.
type Encoding int

const (
	Unsupported Encoding = iota
	UTF8
	ANSI
	UCS2BE
	UCS2LE
)

func (e Encoding) String() string {
	switch e {
	case UTF8:
		return "UTF-8"
	case ANSI:
		return "ANSI"
	case UCS2BE:
		return "UCS-2BE"
	case UCS2LE:
		return "UCS-2LE"
	default:
		return "unsupported"
	}
}

func byteAt(data []byte, i int) byte {
	if i < 0 || i >= len(data) {
		return 0
	}
	return data[i]
}

// DetermineEncoding guesses the encoding of an XML document from its
// leading bytes: a byte-order mark for UCS-2/UTF-16, a zero-byte
// interleaving pattern for UCS-2 without a BOM, the UTF-8 BOM, or —
// failing all of those — the encoding="..." attribute of a leading
// <?xml ...?> declaration. It is a heuristic, not a full sniffer: it
// is meant for documents whose shape is already known, such as
// configuration files, not for arbitrary XML found in the wild.
func DetermineEncoding(data []byte) Encoding {
	b0, b1, b2 := byteAt(data, 0), byteAt(data, 1), byteAt(data, 2)

	switch {
	case b0 >= 0xFE:
		switch {
		case b1 == 0xFF:
			return UCS2BE
		case b1 == 0xFE:
			if b2 != 0 || byteAt(data, 3) != 0 {
				return UCS2LE
			}
			// FF FE 00 00 is a UTF-32LE BOM, not handled.
			return Unsupported
		}
		return UTF8

	case b0 == 0 || b1 == 0:
		switch {
		case b0 == 0 && b1 != 0 && b2 == 0:
			return UCS2BE
		case b0 != 0 && b1 == 0 && b2 != 0:
			return UCS2LE
		}
		// Probably a UTF-32BE BOM (00 00 FE FF) or otherwise unreadable.
		return Unsupported

	case b0 == 0xEF && b1 == 0xBB && b2 == 0xBF:
		return UTF8
	}

	return sniffDeclaredEncoding(data)
}

// ansiMarkers are the encoding="..." substrings that indicate 8-bit
// ANSI/Latin-1 text rather than UTF-8.
var ansiMarkers = [][]byte{
	[]byte("ISO-8859"),
	[]byte("ASCII"),
	[]byte("ANSI"),
	[]byte("-1252"),
	[]byte("ascii"),
	[]byte("atin"), // catches "Latin1" / "ISO Latin1"
}

// sniffDeclaredEncoding handles the plain 8-bit case: look for an
// encoding="..." declaration inside a leading <?xml ...?> and decide
// between ANSI and the UTF-8 default. A document with no <?xml
// declaration at all is treated as ANSI, matching the heuristic's
// bias toward the common case of a hand-written configuration file.
func sniffDeclaredEncoding(data []byte) Encoding {
	start := bytes.Index(data, []byte("<?xml"))
	if start < 0 {
		return ANSI
	}

	declEnd := bytes.IndexByte(data[start:], '>')
	if declEnd < 0 {
		return UTF8
	}
	decl := data[start : start+declEnd]

	encAt := bytes.Index(decl, []byte("encoding"))
	if encAt < 0 {
		return UTF8
	}
	// len(`encoding="`) == 10
	tail := decl[encAt+10:]
	for _, marker := range ansiMarkers {
		if bytes.Contains(tail, marker) {
			return ANSI
		}
	}
	return UTF8
}
