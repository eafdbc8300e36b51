package enc

// NOTE: The alphabets are taken from base64.c and base64u.c of the IODINE project.
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
	"encoding/base64"
	"fmt"
	"github.com/pkg/errors"
)

const (
	cb64  = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-0123456789+"
	cb64u = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ-0123456789_"
)

var iodineBase64Encoding = base64.NewEncoding(cb64).WithPadding(base64.NoPadding)
var iodineBase64uEncoding = base64.NewEncoding(cb64u).WithPadding(base64.NoPadding)

// base64Decode is shared between both variants, they only differ in the alphabet
func base64Decode(encoding *base64.Encoding, name string, data string) ([]byte, error) {
	res, err := encoding.DecodeString(data)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not decode %v", name)
	}
	return res, nil
}

// -------------------------------------------------------

// Base64Encoder encodes 3 bytes to 4 characters
type Base64Encoder struct {
}

func (b *Base64Encoder) Name() string {
	return "Base64"
}

func (b *Base64Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64Encoder) Code() byte {
	return 'S'
}

func (b *Base64Encoder) Encode(data []byte) string {
	return iodineBase64Encoding.EncodeToString(data)
}

func (b *Base64Encoder) Decode(data string) ([]byte, error) {
	return base64Decode(iodineBase64Encoding, b.Name(), data)
}

func (b *Base64Encoder) Ratio() float64 {
	return 4.0 / 3.0
}

func (b *Base64Encoder) Binary() bool {
	return false
}

// -------------------------------------------------------

// Base64uEncoder encodes 3 bytes to 4 characters and uses an alternative character map.
type Base64uEncoder struct {
}

func (b *Base64uEncoder) Name() string {
	return "Base64u"
}

func (b *Base64uEncoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base64uEncoder) Code() byte {
	return 'U'
}

func (b *Base64uEncoder) Encode(data []byte) string {
	return iodineBase64uEncoding.EncodeToString(data)
}

func (b *Base64uEncoder) Decode(data string) ([]byte, error) {
	return base64Decode(iodineBase64uEncoding, b.Name(), data)
}

func (b *Base64uEncoder) Ratio() float64 {
	return 4.0 / 3.0
}

func (b *Base64uEncoder) Binary() bool {
	return false
}
