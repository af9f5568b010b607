// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package storage defines the raw key-value primitive the entity layer is
// built on, plus the key scheme shared by every component that touches it.
//
// The contract is deliberately thin: atomic single-key get/put and
// list-by-prefix. There are no multi-key transactions; the entity layer
// documents the races this leaves open rather than papering over them.
package storage

import "context"

// KV is the raw key-value storage primitive.
//
// Implementations must make each individual operation atomic. Nothing
// more is assumed: two operations from the same caller may interleave
// with operations from other requests.
type KV interface {
	// Get returns the value stored at key. The second return value is
	// false when the key is absent; that is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Put stores value at key, overwriting any existing value.
	Put(ctx context.Context, key string, value []byte) error

	// ListKeys returns every key beginning with prefix, in lexicographic
	// order.
	ListKeys(ctx context.Context, prefix string) ([]string, error)
}

// Key scheme. Entity records and index records live in the same
// namespace, separated by prefix.
const (
	entityPrefix = "ent:"
	indexPrefix  = "idx:"
)

// EntityKey returns the record key for one entity of the given type.
func EntityKey(entityType, id string) string {
	return entityPrefix + entityType + ":" + id
}

// EntityPrefix returns the key prefix covering every record of a type.
func EntityPrefix(entityType string) string {
	return entityPrefix + entityType + ":"
}

// IndexKey returns the key holding the ordered ID index for a type.
func IndexKey(entityType string) string {
	return indexPrefix + entityType
}
