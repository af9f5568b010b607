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

import "errors"

// Sentinel errors for the entity store.
var (
	// ErrNotFound indicates the referenced entity ID is absent from the store.
	ErrNotFound = errors.New("entity not found")

	// ErrConflict indicates a create collided with an existing entity ID.
	ErrConflict = errors.New("entity already exists")

	// ErrInvalidCursor indicates a pagination token could not be decoded.
	ErrInvalidCursor = errors.New("invalid cursor")
)
