// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package entity implements the indexed entity store: generic CRUD over
// a key-value namespace keyed by (entityType, id), with an append-only
// per-type ID index, cursor pagination, one-time seeding, and
// read-modify-write mutation.
//
// # Concurrency
//
// The store assumes only atomic single-key get/put from the underlying
// storage.KV. The following races are open by design and must be
// tolerated by callers:
//
//   - Create vs create on the same ID: both can pass the existence check;
//     the second write wins and the index gains a duplicate entry.
//     List tolerates duplicates rather than erroring.
//   - Mutate vs mutate on the same ID: read-modify-write with no version
//     check; the last writer wins and earlier changes are discarded.
//   - EnsureSeed vs EnsureSeed: both can observe an empty index and both
//     write the seed set. Record content is idempotent; the index can
//     gain duplicate entries, which List tolerates.
//
// Callers receive copies of stored records, never live references: every
// read is a fresh JSON decode of the persisted bytes.
package entity

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/AleutianAI/CivicPulse/services/civicwatch/storage"
)

// Descriptor configures a Store for one entity type.
type Descriptor[T any] struct {
	// Name is the entity type name used in storage keys and metrics.
	Name string

	// ID extracts the unique string identifier from an entity value.
	ID func(T) string

	// Seed is the optional default record set written by EnsureSeed when
	// the type's index is first observed empty.
	Seed []T
}

// Page is one slice of a paginated listing.
type Page[T any] struct {
	Items []T     `json:"items"`
	Next  *string `json:"next"`
}

// Store provides indexed CRUD for one entity type. Construct with New,
// passing an explicit storage handle; there is no ambient global handle.
type Store[T any] struct {
	kv   storage.KV
	desc Descriptor[T]
	idx  *Index
}

// New builds a Store from a storage handle and a type descriptor.
func New[T any](kv storage.KV, desc Descriptor[T]) *Store[T] {
	return &Store[T]{
		kv:   kv,
		desc: desc,
		idx:  NewIndex(kv, desc.Name),
	}
}

// Name returns the entity type name this store manages.
func (s *Store[T]) Name() string {
	return s.desc.Name
}

// Index exposes the store's ID index for enumeration.
func (s *Store[T]) Index() *Index {
	return s.idx
}

// Exists reports whether a record is present at the given ID.
func (s *Store[T]) Exists(ctx context.Context, id string) (bool, error) {
	observeOp(s.desc.Name, "exists")
	_, found, err := s.kv.Get(ctx, storage.EntityKey(s.desc.Name, id))
	return found, err
}

// Get returns the record stored at id, or ErrNotFound when absent.
func (s *Store[T]) Get(ctx context.Context, id string) (T, error) {
	observeOp(s.desc.Name, "get")
	var zero T
	raw, found, err := s.kv.Get(ctx, storage.EntityKey(s.desc.Name, id))
	if err != nil {
		return zero, err
	}
	if !found {
		return zero, fmt.Errorf("%w: %s %q", ErrNotFound, s.desc.Name, id)
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return zero, fmt.Errorf("decode %s %q: %w", s.desc.Name, id, err)
	}
	return v, nil
}

// Create writes the record, then appends its ID to the type's index, and
// returns the stored value. Returns ErrConflict when a record already
// exists at that ID. The existence check and the write are not atomic;
// see the package doc for the race this leaves open.
func (s *Store[T]) Create(ctx context.Context, v T) (T, error) {
	observeOp(s.desc.Name, "create")
	var zero T
	id := s.desc.ID(v)

	exists, err := s.Exists(ctx, id)
	if err != nil {
		return zero, err
	}
	if exists {
		return zero, fmt.Errorf("%w: %s %q", ErrConflict, s.desc.Name, id)
	}

	if err := s.put(ctx, id, v); err != nil {
		return zero, err
	}
	if err := s.idx.Append(ctx, id); err != nil {
		return zero, err
	}
	return v, nil
}

// List reads the index snapshot, slices limit IDs starting at the
// position decoded from cursor (start of the index when cursor is
// empty), fetches each record, and returns them in index order with a
// Next cursor. Next is nil when the slice reached the end of the index.
//
// limit is coerced to at least 1. Index entries with no backing record
// are skipped rather than erroring.
func (s *Store[T]) List(ctx context.Context, cursor string, limit int) (Page[T], error) {
	observeOp(s.desc.Name, "list")
	offset, err := DecodeCursor(cursor)
	if err != nil {
		return Page[T]{}, err
	}
	if limit < 1 {
		limit = 1
	}

	ids, err := s.idx.Snapshot(ctx)
	if err != nil {
		return Page[T]{}, err
	}
	if offset > len(ids) {
		offset = len(ids)
	}
	end := offset + limit
	if end > len(ids) {
		end = len(ids)
	}

	items, err := s.fetch(ctx, ids[offset:end])
	if err != nil {
		return Page[T]{}, err
	}

	page := Page[T]{Items: items}
	if end < len(ids) {
		next := EncodeCursor(end)
		page.Next = &next
	}
	return page, nil
}

// ListAll returns every record of the type in index order. Used by the
// listings that filter and sort in memory (categories, comments).
func (s *Store[T]) ListAll(ctx context.Context) ([]T, error) {
	observeOp(s.desc.Name, "list")
	ids, err := s.idx.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return s.fetch(ctx, ids)
}

// Mutate reads the current record, applies fn to produce the full next
// state, writes it back, and returns it. Returns ErrNotFound when the
// record does not exist.
//
// This is the only update path: fn must compute the complete next record,
// not a partial patch. There is no optimistic concurrency check; a
// concurrent writer's change may be silently discarded (last writer
// wins, see the package doc).
func (s *Store[T]) Mutate(ctx context.Context, id string, fn func(T) T) (T, error) {
	observeOp(s.desc.Name, "mutate")
	var zero T
	current, err := s.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	next := fn(current)
	if err := s.put(ctx, id, next); err != nil {
		return zero, err
	}
	return next, nil
}

// EnsureSeed writes the descriptor's seed set when the type's index is
// empty, appending each ID in seed-list order. A non-empty index makes
// this a no-op, so it is safe (and intended) to call on every read-path
// request.
func (s *Store[T]) EnsureSeed(ctx context.Context) error {
	if len(s.desc.Seed) == 0 {
		return nil
	}
	ids, err := s.idx.Snapshot(ctx)
	if err != nil {
		return err
	}
	if len(ids) > 0 {
		return nil
	}

	observeSeed(s.desc.Name)
	for _, v := range s.desc.Seed {
		id := s.desc.ID(v)
		if err := s.put(ctx, id, v); err != nil {
			return err
		}
		if err := s.idx.Append(ctx, id); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store[T]) put(ctx context.Context, id string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s %q: %w", s.desc.Name, id, err)
	}
	if err := s.kv.Put(ctx, storage.EntityKey(s.desc.Name, id), raw); err != nil {
		return fmt.Errorf("write %s %q: %w", s.desc.Name, id, err)
	}
	return nil
}

// fetch resolves IDs to records, skipping IDs with no backing record
// (possible after a duplicate index append or an interrupted seed).
func (s *Store[T]) fetch(ctx context.Context, ids []string) ([]T, error) {
	items := make([]T, 0, len(ids))
	for _, id := range ids {
		raw, found, err := s.kv.Get(ctx, storage.EntityKey(s.desc.Name, id))
		if err != nil {
			return nil, err
		}
		if !found {
			continue
		}
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("decode %s %q: %w", s.desc.Name, id, err)
		}
		items = append(items, v)
	}
	return items, nil
}
