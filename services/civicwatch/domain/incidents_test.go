// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package domain

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AleutianAI/CivicPulse/services/civicwatch/datatypes"
	"github.com/AleutianAI/CivicPulse/services/civicwatch/entity"
	"github.com/AleutianAI/CivicPulse/services/civicwatch/storage"
	badgerdb "github.com/AleutianAI/CivicPulse/services/civicwatch/storage/badger"
)

func newTestKV(t *testing.T) storage.KV {
	t.Helper()
	db, err := badgerdb.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return badgerdb.NewKV(db)
}

func sampleInput() IncidentInput {
	return IncidentInput{
		Title:         "Deep pothole on Main St",
		Description:   "Large pothole near the crosswalk, bad at night.",
		CategoryID:    "pothole",
		Location:      datatypes.Location{Lat: 47.6, Lng: -122.3, Address: "Main St & 5th"},
		ReporterEmail: "reporter@example.com",
	}
}

// TestReportCreatesInitialAuditEntry verifies the creation invariants:
// one audit entry carrying status Submitted, and identical creation and
// update timestamps.
func TestReportCreatesInitialAuditEntry(t *testing.T) {
	ctx := context.Background()
	incidents := NewIncidents(newTestKV(t))

	created, err := incidents.Report(ctx, sampleInput())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, datatypes.StatusSubmitted, created.Status)
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
	assert.Equal(t, 0, created.Upvotes)

	require.Len(t, created.AuditLog, 1)
	assert.Equal(t, datatypes.StatusSubmitted, created.AuditLog[0].Status)
	assert.Equal(t, ActorCitizen, created.AuditLog[0].UpdatedBy)
}

func TestReportAnonymousActor(t *testing.T) {
	ctx := context.Background()
	incidents := NewIncidents(newTestKV(t))

	in := sampleInput()
	in.ReporterEmail = ""
	created, err := incidents.Report(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, ActorAnonymous, created.AuditLog[0].UpdatedBy)
}

// TestReportDanglingCategoryAccepted verifies referential integrity is
// not enforced: a categoryId with no matching category is stored as-is.
func TestReportDanglingCategoryAccepted(t *testing.T) {
	ctx := context.Background()
	incidents := NewIncidents(newTestKV(t))

	in := sampleInput()
	in.CategoryID = "does-not-exist"
	created, err := incidents.Report(ctx, in)
	require.NoError(t, err)

	got, err := incidents.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "does-not-exist", got.CategoryID)
}

// TestUpdateStatusAppendsAuditEntries runs a sequence of transitions,
// including repeats and "backward" moves, and expects one audit entry
// per transition with non-decreasing timestamps.
func TestUpdateStatusAppendsAuditEntries(t *testing.T) {
	ctx := context.Background()
	incidents := NewIncidents(newTestKV(t))

	created, err := incidents.Report(ctx, sampleInput())
	require.NoError(t, err)

	transitions := []datatypes.IncidentStatus{
		datatypes.StatusAcknowledged,
		datatypes.StatusInProgress,
		datatypes.StatusInProgress, // repeat of the current status
		datatypes.StatusSubmitted,  // backward move
		datatypes.StatusClosed,
		datatypes.StatusResolved, // leaving a "terminal" state
	}
	var last datatypes.Incident
	for _, status := range transitions {
		last, err = incidents.UpdateStatus(ctx, created.ID, status, ActorAuthority, "")
		require.NoError(t, err)
		assert.Equal(t, status, last.Status)
	}

	require.Len(t, last.AuditLog, 1+len(transitions))
	for i := 1; i < len(last.AuditLog); i++ {
		prev, err := time.Parse(time.RFC3339, last.AuditLog[i-1].Timestamp)
		require.NoError(t, err)
		cur, err := time.Parse(time.RFC3339, last.AuditLog[i].Timestamp)
		require.NoError(t, err)
		assert.False(t, cur.Before(prev), "audit timestamps must be non-decreasing")
	}
	assert.Equal(t, datatypes.StatusSubmitted, last.AuditLog[0].Status)
	assert.Equal(t, last.UpdatedAt, last.AuditLog[len(last.AuditLog)-1].Timestamp)
	assert.Equal(t, created.CreatedAt, last.CreatedAt, "createdAt is immutable")
}

func TestUpdateStatusNotFound(t *testing.T) {
	incidents := NewIncidents(newTestKV(t))
	_, err := incidents.UpdateStatus(context.Background(), "missing", datatypes.StatusClosed, ActorAuthority, "")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestUpvote(t *testing.T) {
	ctx := context.Background()
	incidents := NewIncidents(newTestKV(t))

	created, err := incidents.Report(ctx, sampleInput())
	require.NoError(t, err)

	first, err := incidents.Upvote(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Upvotes)

	second, err := incidents.Upvote(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, second.Upvotes, "repeat upvotes are not bounded server-side")
}

func TestUpvoteNotFound(t *testing.T) {
	incidents := NewIncidents(newTestKV(t))
	_, err := incidents.Upvote(context.Background(), "missing")
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestListPagesInAppendOrder(t *testing.T) {
	ctx := context.Background()
	incidents := NewIncidents(newTestKV(t))

	var ids []string
	for i := 0; i < 5; i++ {
		created, err := incidents.Report(ctx, sampleInput())
		require.NoError(t, err)
		ids = append(ids, created.ID)
	}

	var seen []string
	cursor := ""
	for {
		page, err := incidents.List(ctx, cursor, 2)
		require.NoError(t, err)
		for _, in := range page.Items {
			seen = append(seen, in.ID)
		}
		if page.Next == nil {
			break
		}
		cursor = *page.Next
	}
	assert.Equal(t, ids, seen)
}
