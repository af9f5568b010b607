// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package badger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestKV(t *testing.T) *KV {
	t.Helper()
	db, err := OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewKV(db)
}

func TestKVGetAbsent(t *testing.T) {
	kv := newTestKV(t)
	val, found, err := kv.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, val)
}

func TestKVPutGetOverwrite(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)

	require.NoError(t, kv.Put(ctx, "k", []byte("v1")))
	val, found, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []byte("v1"), val)

	require.NoError(t, kv.Put(ctx, "k", []byte("v2")))
	val, _, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), val)
}

func TestKVListKeys(t *testing.T) {
	ctx := context.Background()
	kv := newTestKV(t)

	require.NoError(t, kv.Put(ctx, "ent:incident:b", []byte("1")))
	require.NoError(t, kv.Put(ctx, "ent:incident:a", []byte("2")))
	require.NoError(t, kv.Put(ctx, "ent:comment:c", []byte("3")))
	require.NoError(t, kv.Put(ctx, "idx:incident", []byte("4")))

	keys, err := kv.ListKeys(ctx, "ent:incident:")
	require.NoError(t, err)
	assert.Equal(t, []string{"ent:incident:a", "ent:incident:b"}, keys)

	keys, err = kv.ListKeys(ctx, "ent:missing:")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestKVRespectsCancelledContext(t *testing.T) {
	kv := newTestKV(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := kv.Get(ctx, "k")
	assert.Error(t, err)
	assert.Error(t, kv.Put(ctx, "k", []byte("v")))
	_, err = kv.ListKeys(ctx, "p")
	assert.Error(t, err)
}
