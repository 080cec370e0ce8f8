// ©Hayabusa Cloud Co., Ltd. 2025. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sax implements a small single-pass SAX-style reader for XML
// documents whose shape is already known, such as configuration
// files. It trades full XML conformance (no DTDs, namespaces, CDATA,
// or entity decoding, and no nesting-depth tracking for text content)
// for a single forward scan over the input with no intermediate tree.
package sax

// Callbacks receives the events Parse produces while scanning a
// document. Only StartElement, EndElement and Attribute are required;
// StartDocument and EndDocument may be left nil.
type Callbacks struct {
	// StartDocument reports the sniffed encoding before any element
	// callbacks fire.
	StartDocument func(enc Encoding)
	// EndDocument fires once scanning completes.
	EndDocument func()
	// StartElement fires when a tag's name has been read, before its
	// attributes (if any).
	StartElement func(tag string)
	// EndElement fires when a tag closes. text and hasText describe
	// the text immediately inside the tag; hasText is false for
	// self-closing tags and for tags whose content is itself nested
	// elements rather than plain text.
	EndElement func(tag string, text string, hasText bool)
	// Attribute fires once per attribute, after the attribute that
	// follows it (or the tag's close, for the final attribute) has
	// been seen — Parse does not know an attribute is the last one
	// until it finds out there is no next attribute. value and
	// hasValue describe a bare attribute name with no "=value".
	Attribute func(attr string, value string, hasValue bool, last bool)
}

type state int

const (
	findTag state = iota
	readTag
	findAttribute
	readAttribute
	findValue
	readValue
	readText
	readEndTag
	passComment
)

// Parse scans data as XML and drives cb. It requires StartElement,
// EndElement and Attribute to be set; Parse is a no-op if data is too
// short to plausibly be an XML document (matching the integrity check
// the original embedded implementation ran before trusting its input
// pointer).
func Parse(data []byte, cb Callbacks) {
	if cb.StartElement == nil || cb.EndElement == nil || cb.Attribute == nil {
		return
	}
	if len(data) <= 6 {
		return
	}

	if cb.StartDocument != nil {
		cb.StartDocument(DetermineEncoding(data))
	}

	scan(data, cb)

	if cb.EndDocument != nil {
		cb.EndDocument()
	}
}

func scan(data []byte, cb Callbacks) {
	n := len(data)
	st := findTag

	var tagStart, endTagStart, attrStart, valueStart, textStart int
	var tag, pendingAttr, pendingValue, pendingText string
	var pendingHasValue, havePending, havePendingText bool

	flushPending := func(last bool) {
		if havePending {
			cb.Attribute(pendingAttr, pendingValue, pendingHasValue, last)
			havePending = false
		}
	}

	i := 0
	for i < n {
		c := data[i]
		switch st {
		case findTag:
			if c != '<' {
				i++
				continue
			}
			switch byteAt(data, i+1) {
			case '/':
				endTagStart = i + 2
				st = readEndTag
				// A tag closed immediately after another nested tag
				// (or after plain whitespace this parser doesn't
				// track) carries no associated text.
				i += 2
			case '!':
				st = passComment
				i += 2
			case '?':
				// Processing instructions and XML declarations are
				// skipped: nothing inside them is treated specially
				// until the next literal '<'.
				i++
			default:
				tagStart = i + 1
				st = readTag
				i++
			}

		case readTag:
			switch c {
			case ' ':
				tag = string(data[tagStart:i])
				cb.StartElement(tag)
				st = findAttribute
				i++
			case '>':
				tag = string(data[tagStart:i])
				cb.StartElement(tag)
				textStart = i + 1
				st = readText
				i++
			case '/':
				tag = string(data[tagStart:i])
				cb.StartElement(tag)
				cb.EndElement(tag, "", false)
				st = findTag
				i++
			default:
				i++
			}

		case findAttribute:
			switch {
			case c == ' ':
				i++
			case c == '/':
				flushPending(true)
				cb.EndElement(tag, "", false)
				st = findTag
				i++
			case c == '>':
				flushPending(true)
				textStart = i + 1
				st = readText
				i++
			default:
				flushPending(false)
				attrStart = i
				st = readAttribute
			}

		case readAttribute:
			if c == ' ' || c == '=' {
				pendingAttr = string(data[attrStart:i])
				st = findValue
			}
			i++

		case findValue:
			switch {
			case c == ' ' || c == '=':
				i++
			case c == '"':
				valueStart = i + 1
				st = readValue
				i++
			default:
				// No '=' followed: a bare attribute with no value.
				pendingValue = ""
				pendingHasValue = false
				havePending = true
				st = findAttribute
				// reprocess this character under findAttribute
			}

		case readValue:
			if c == '"' {
				pendingValue = string(data[valueStart:i])
				pendingHasValue = true
				havePending = true
				st = findAttribute
			}
			i++

		case readText:
			if c == '<' {
				if byteAt(data, i+1) == '/' {
					pendingText = string(data[textStart:i])
					havePendingText = true
					endTagStart = i + 2
					st = readEndTag
					i += 2
					continue
				}
				// A nested element starts: this parser does not track
				// nesting depth, so the enclosing tag's text is
				// abandoned and reported as absent when its own
				// closing tag is eventually reached via findTag.
				st = findTag
				continue
			}
			i++

		case readEndTag:
			if c == '>' {
				closing := string(data[endTagStart:i])
				if havePendingText {
					cb.EndElement(closing, pendingText, true)
					havePendingText = false
				} else {
					cb.EndElement(closing, "", false)
				}
				st = findTag
			}
			i++

		case passComment:
			if c == '>' && byteAt(data, i-1) == '-' {
				st = findTag
			}
			i++
		}
	}
}
