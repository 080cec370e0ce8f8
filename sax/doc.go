// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sax

/*
Parse walks an XML document once, left to right, calling back into
Callbacks as it recognizes tags, attributes and text — no DOM, no
stack of open elements:

	var depth int
	sax.Parse(data, sax.Callbacks{
		StartElement: func(tag string) { depth++ },
		EndElement: func(tag, text string, hasText bool) {
			depth--
			if hasText {
				fmt.Println(tag, "=", text)
			}
		},
		Attribute: func(attr, value string, hasValue, last bool) {
			fmt.Println(" ", attr, "=", value)
		},
	})

Because there is no element stack, a tag that contains nested
elements is reported with hasText false at EndElement even if it also
contains stray text: tracking exactly where that text belongs would
require the stack this reader deliberately omits. This makes the
reader fast and allocation-light for the documents it targets —
small, shape-known configuration files — at the cost of not being a
conformant general-purpose XML parser.
*/
