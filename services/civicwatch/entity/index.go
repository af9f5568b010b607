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
	"context"
	"encoding/json"
	"fmt"

	"github.com/AleutianAI/CivicPulse/services/civicwatch/storage"
)

// Index is the ordered list of entity IDs for one entity type, persisted
// as a single KV record. It is the sole source of pagination ordering and
// existence enumeration.
//
// Append is read-modify-write over a single key. Two concurrent appends
// can interleave and produce a duplicate or reordered entry; readers must
// tolerate duplicates (Store.List does). Pagination order is therefore
// "index append order", not creation-timestamp order.
type Index struct {
	kv   storage.KV
	name string
}

// NewIndex returns the index for the named entity type.
func NewIndex(kv storage.KV, name string) *Index {
	return &Index{kv: kv, name: name}
}

// Snapshot returns the full ordered ID sequence at the time of the call.
// A missing index record reads as an empty index.
func (ix *Index) Snapshot(ctx context.Context) ([]string, error) {
	raw, found, err := ix.kv.Get(ctx, storage.IndexKey(ix.name))
	if err != nil {
		return nil, fmt.Errorf("read index %s: %w", ix.name, err)
	}
	if !found {
		return nil, nil
	}
	var ids []string
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("decode index %s: %w", ix.name, err)
	}
	return ids, nil
}

// Append adds id to the end of the index. Callers must invoke this
// exactly once per successful entity creation, after the entity record
// itself has been written: a crash between the two writes leaves an
// orphaned-but-addressable record, never an index entry without a
// backing record.
func (ix *Index) Append(ctx context.Context, id string) error {
	ids, err := ix.Snapshot(ctx)
	if err != nil {
		return err
	}
	ids = append(ids, id)
	raw, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("encode index %s: %w", ix.name, err)
	}
	if err := ix.kv.Put(ctx, storage.IndexKey(ix.name), raw); err != nil {
		return fmt.Errorf("write index %s: %w", ix.name, err)
	}
	return nil
}
