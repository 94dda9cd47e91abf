// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package blockrecord

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"unicode/utf16"

	"github.com/pkg/errors"

	"github.com/bitmark-inc/hashminer/fault"
)

const hexDigits = "0123456789abcdef"

// Template - the packed header split around the nonce
//
// the nonce is the second key in sorted order, so only the digits
// between prefix and suffix change during a search
type Template struct {
	prefix []byte
	suffix []byte
}

// Template - pack every field except the nonce
func (header *Header) Template() (*Template, error) {

	prefix := &bytes.Buffer{}
	prefix.WriteString(`{"index": `)
	prefix.WriteString(strconv.FormatUint(header.Index, 10))
	prefix.WriteString(`, "nonce": `)

	suffix := &bytes.Buffer{}
	suffix.WriteString(`, "previous_hash": `)
	writeString(suffix, header.PreviousHash)
	suffix.WriteString(`, "timestamp": `)
	suffix.WriteString(strconv.FormatInt(header.Timestamp, 10))
	suffix.WriteString(`, "transactions": [`)
	for i, tx := range header.Transactions {
		if i > 0 {
			suffix.WriteString(", ")
		}
		if err := writeRaw(suffix, tx); nil != err {
			return nil, errors.Wrapf(err, "transaction[%d]", i)
		}
	}
	suffix.WriteString("]}")

	return &Template{
		prefix: prefix.Bytes(),
		suffix: suffix.Bytes(),
	}, nil
}

// Pack - append the packing for nonce to buffer[:0]
//
// reusing the buffer avoids an allocation per nonce
func (t *Template) Pack(nonce NonceType, buffer []byte) []byte {
	buffer = append(buffer[:0], t.prefix...)
	buffer = strconv.AppendUint(buffer, uint64(nonce), 10)
	return append(buffer, t.suffix...)
}

// Size - upper bound of a packing length
func (t *Template) Size() int {
	return len(t.prefix) + 20 + len(t.suffix)
}

// re-encode an opaque JSON value in canonical form
func writeRaw(buffer *bytes.Buffer, raw json.RawMessage) error {
	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	var value interface{}
	if err := decoder.Decode(&value); nil != err {
		return fault.ErrInvalidTransaction
	}
	if decoder.More() {
		return fault.ErrInvalidTransaction
	}
	writeValue(buffer, value)
	return nil
}

func writeValue(buffer *bytes.Buffer, value interface{}) {
	switch v := value.(type) {
	case nil:
		buffer.WriteString("null")
	case bool:
		if v {
			buffer.WriteString("true")
		} else {
			buffer.WriteString("false")
		}
	case json.Number:
		buffer.WriteString(v.String())
	case string:
		writeString(buffer, v)
	case []interface{}:
		buffer.WriteByte('[')
		for i, item := range v {
			if i > 0 {
				buffer.WriteString(", ")
			}
			writeValue(buffer, item)
		}
		buffer.WriteByte(']')
	case map[string]interface{}:
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buffer.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buffer.WriteString(", ")
			}
			writeString(buffer, k)
			buffer.WriteString(": ")
			writeValue(buffer, v[k])
		}
		buffer.WriteByte('}')
	}
}

// quoted string, printable ASCII only
func writeString(buffer *bytes.Buffer, s string) {
	buffer.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buffer.WriteString(`\"`)
		case '\\':
			buffer.WriteString(`\\`)
		case '\n':
			buffer.WriteString(`\n`)
		case '\r':
			buffer.WriteString(`\r`)
		case '\t':
			buffer.WriteString(`\t`)
		case '\b':
			buffer.WriteString(`\b`)
		case '\f':
			buffer.WriteString(`\f`)
		default:
			if r >= 0x20 && r <= 0x7e {
				buffer.WriteByte(byte(r))
			} else if r > 0xffff {
				r1, r2 := utf16.EncodeRune(r)
				writeEscape(buffer, r1)
				writeEscape(buffer, r2)
			} else {
				writeEscape(buffer, r)
			}
		}
	}
	buffer.WriteByte('"')
}

func writeEscape(buffer *bytes.Buffer, r rune) {
	buffer.WriteString(`\u`)
	buffer.WriteByte(hexDigits[(r>>12)&0xf])
	buffer.WriteByte(hexDigits[(r>>8)&0xf])
	buffer.WriteByte(hexDigits[(r>>4)&0xf])
	buffer.WriteByte(hexDigits[r&0xf])
}
