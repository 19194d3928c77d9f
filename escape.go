package pathtoregexp

import "unicode/utf8"

// Adapted from the regexp package: https://cs.opensource.google/go/go/+/refs/tags/go1.23.0:src/regexp/regexp.go;l=705-747

// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found at https://go.dev/LICENSE.

// Bitmaps used to check whether a character needs to be escaped.
var specialClassBytes [16]byte
var specialPatternBytes [16]byte

// specialClass reports whether byte b needs to be escaped inside a regexp character class.
func specialClass(b byte) bool {
	return b < utf8.RuneSelf && specialClassBytes[b%16]&(1<<(b/16)) != 0
}

// specialPattern reports whether byte b has a syntactical meaning in a path pattern.
func specialPattern(b byte) bool {
	return b < utf8.RuneSelf && specialPatternBytes[b%16]&(1<<(b/16)) != 0
}

func init() {
	for _, b := range []byte(`\]^-`) {
		specialClassBytes[b%16] |= 1 << (b / 16)
	}
	for _, b := range []byte(`\:()*?+`) {
		specialPatternBytes[b%16] |= 1 << (b / 16)
	}
}

func escape(s string, special func(byte) bool) string {
	// A byte loop is correct because all metacharacters are ASCII.
	var i int
	for i = 0; i < len(s); i++ {
		if special(s[i]) {
			break
		}
	}
	// No meta characters found, so return original string.
	if i >= len(s) {
		return s
	}

	b := make([]byte, 2*len(s)-i)
	copy(b, s[:i])
	j := i
	for ; i < len(s); i++ {
		if special(s[i]) {
			b[j] = '\\'
			j++
		}
		b[j] = s[i]
		j++
	}
	return string(b[:j])
}

// escapeClassString escapes s for use inside a "[...]" character class.
func escapeClassString(s string) string {
	return escape(s, specialClass)
}

// escapePatternString escapes s so that Parse reads it back as literal text.
func escapePatternString(s string) string {
	return escape(s, specialPattern)
}
