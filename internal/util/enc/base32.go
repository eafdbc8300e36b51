package enc

// NOTE: The alphabet is taken from base32.c of the IODINE project.
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
	"encoding/base32"
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

const (
	cb32 = "abcdefghijklmnopqrstuvwxyz012345"
)

var iodineBase32Encoding = base32.NewEncoding(cb32).WithPadding(base32.NoPadding)

// -------------------------------------------------------

// Base32Encoder encodes 5 bytes to 8 characters. Good because it's not case-sensitive.
type Base32Encoder struct {
}

func (b *Base32Encoder) Name() string {
	return "Base32"
}

func (b *Base32Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base32Encoder) Code() byte {
	return 'T'
}

func (b *Base32Encoder) Encode(data []byte) string {
	return iodineBase32Encoding.EncodeToString(data)
}

// Decode accepts both upper- and lowercase input
func (b *Base32Encoder) Decode(data string) ([]byte, error) {
	res, err := iodineBase32Encoding.DecodeString(strings.ToLower(data))
	if err != nil {
		return nil, errors.Wrapf(err, "Could not decode %v", b.Name())
	}
	return res, nil
}

func (b *Base32Encoder) Ratio() float64 {
	return 8.0 / 5.0
}

func (b *Base32Encoder) Binary() bool {
	return false
}
