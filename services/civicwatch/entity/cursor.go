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
	"encoding/base64"
	"fmt"
	"strconv"
)

// EncodeCursor produces an opaque pagination token for an offset into an
// entity type's index. The token is base64url so it survives query
// strings unescaped. Round-trips exactly: DecodeCursor(EncodeCursor(n))
// == n for all non-negative n.
func EncodeCursor(offset int) string {
	return base64.RawURLEncoding.EncodeToString([]byte(strconv.Itoa(offset)))
}

// DecodeCursor recovers the index offset from a pagination token. An
// empty token denotes the start of the index. An undecodable or negative
// token is a caller error reported as ErrInvalidCursor.
func DecodeCursor(token string) (int, error) {
	if token == "" {
		return 0, nil
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCursor, token)
	}
	offset, err := strconv.Atoi(string(raw))
	if err != nil || offset < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidCursor, token)
	}
	return offset, nil
}
