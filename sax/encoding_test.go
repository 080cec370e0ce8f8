// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sax

import "testing"

func TestDetermineEncoding(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want Encoding
	}{
		{"ucs2le-bom", []byte{0xFF, 0xFE, '<', 0, '?', 0, 'x', 0, 'm', 0, 'l', 0}, UCS2LE},
		{"ucs2be-bom", []byte{0xFE, 0xFF, 0, '<', 0, '?', 0, 'x', 0, 'm', 0, 'l'}, UCS2BE},
		{"ucs2le-no-bom", []byte{'<', 0, '?', 0, 'x', 0, 'm', 0, 'l', 0, ' ', 0, '?', 0, '>', 0}, UCS2LE},
		{"ucs2be-no-bom", []byte{0, '<', 0, '?', 0, 'x', 0, 'm', 0, 'l', 0, ' ', 0, '?', 0, '>'}, UCS2BE},
		{"utf32le-bom-unsupported", []byte{0xFF, 0xFE, 0, 0, 0, 0, 0, 0, 0}, Unsupported},
		{"utf32be-bom-unsupported", []byte{0, 0, 0xFE, 0xFF, 0, 0, 0, 0, 0}, Unsupported},
		{"utf8-bom", []byte{0xEF, 0xBB, 0xBF, '<', '?', 'x', 'm', 'l', ' '}, UTF8},
		{"no-declaration-is-ansi", []byte("<xml version=\"1.0\"><root></root>"), ANSI},
		{"declared-ansi", []byte(`<?xml version="1.0" encoding="ANSI"?><root></root>`), ANSI},
		{"declared-iso-8859", []byte(`<?xml version="1.0" encoding="ISO-8859-1"?><root/>`), ANSI},
		{"declared-utf8", []byte(`<?xml version="1.0" encoding="UTF-8"?><root/>`), UTF8},
		{"no-encoding-attr-is-utf8", []byte(`<?xml version="1.0"?><root/>`), UTF8},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DetermineEncoding(tc.data); got != tc.want {
				t.Fatalf("DetermineEncoding(%q) = %v, want %v", tc.data, got, tc.want)
			}
		})
	}
}
