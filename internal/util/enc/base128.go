package enc

// NOTE: The alphabet is taken from base128.c of the IODINE project.
/*
 * Copyright (c) 2006-2014 Erik Ekman <yarrick@kryo.se>,
 * 2006-2009 Bjorn Andersson <flex@kryo.se>
 * Mostly rewritten 2009 J.A.Bezemer@opensourcepartners.nl
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

import (
	"fmt"
	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
	"strings"
	"sync"
)

const (
	// The upper part of the alphabet are ISO-8859-1 accented characters. They are written out as runes
	// (two bytes in UTF-8), so the result is always valid text.
	cb128 = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
		"\274\275\276\277" +
		"\300\301\302\303\304\305\306\307\310\311\312\313\314\315\316\317" +
		"\320\321\322\323\324\325\326\327\330\331\332\333\334\335\336\337" +
		"\340\341\342\343\344\345\346\347\350\351\352\353\354\355\356\357" +
		"\360\361\362\363\364\365\366\367\370\371\372\373\374\375"
)

var cb128Invert map[rune]byte
var cbInitialized sync.Once

func init() {
	setupCb128Invert()
}

func setupCb128Invert() {
	cbInitialized.Do(func() {
		cb128Invert = make(map[rune]byte, len(cb128))
		for i, v := range []byte(cb128) {
			cb128Invert[rune(v)] = byte(i)
		}
	})
}

// -------------------------------------------------------

// Base128Encoder encodes 7 bytes to 8 characters
type Base128Encoder struct {
}

func (b *Base128Encoder) Name() string {
	return "Base128"
}

func (b *Base128Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base128Encoder) Code() byte {
	return 'V'
}

func (b *Base128Encoder) Encode(src []byte) string {
	dst := make([]byte, base128.EncodedLen(len(src)))
	base128.Encode(dst, src)
	return escape128(dst)
}

// escape128 maps 7-bit values onto the alphabet
func escape128(src []byte) string {
	var sb strings.Builder
	sb.Grow(len(src) * 2)
	for _, v := range src {
		sb.WriteRune(rune(cb128[v&0x7F]))
	}
	return sb.String()
}

// unescape128 maps the alphabet back onto 7-bit values
func unescape128(src string) ([]byte, error) {
	res := make([]byte, 0, len(src))
	for i, r := range src {
		v, ok := cb128Invert[r]
		if !ok {
			return nil, errors.Errorf("Invalid Base128 character %q at offset %v", r, i)
		}
		res = append(res, v)
	}
	return res, nil
}

func (b *Base128Encoder) Decode(data string) ([]byte, error) {
	src, err := unescape128(data)
	if err != nil {
		return nil, err
	}
	res, err := base128.DecodeString(string(src))
	if err != nil {
		return nil, errors.Wrapf(err, "Could not decode %v", b.Name())
	}
	return res, nil
}

func (b *Base128Encoder) Ratio() float64 {
	return 8.0 / 7.0
}

func (b *Base128Encoder) Binary() bool {
	return false
}
