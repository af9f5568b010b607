// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCursorRoundTrip verifies decode(encode(n)) == n across a range of
// offsets including zero and large values.
func TestCursorRoundTrip(t *testing.T) {
	offsets := []int{0, 1, 2, 5, 99, 100, 12345, 1 << 30}
	for _, n := range offsets {
		token := EncodeCursor(n)
		require.NotEmpty(t, token)

		decoded, err := DecodeCursor(token)
		require.NoError(t, err)
		assert.Equal(t, n, decoded)
	}
}

// TestCursorEmptyToken verifies an absent token denotes the index start.
func TestCursorEmptyToken(t *testing.T) {
	offset, err := DecodeCursor("")
	require.NoError(t, err)
	assert.Equal(t, 0, offset)
}

// TestCursorInvalidToken verifies undecodable tokens are caller errors.
func TestCursorInvalidToken(t *testing.T) {
	bogus := []string{
		"!!!not-base64!!!",
		EncodeCursor(5) + "garbage",
		"aGVsbG8", // base64 of "hello", not an integer
	}
	for _, token := range bogus {
		_, err := DecodeCursor(token)
		assert.ErrorIs(t, err, ErrInvalidCursor, "token %q", token)
	}
}

// TestCursorNegativeOffsetRejected verifies a token encoding a negative
// offset does not decode.
func TestCursorNegativeOffsetRejected(t *testing.T) {
	// A token the encoder would never produce: base64url of "-5".
	_, err := DecodeCursor("LTU")
	assert.ErrorIs(t, err, ErrInvalidCursor)
}
