// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package domain instantiates the entity store per entity type and adds
// the incident lifecycle: status transitions with mandatory audit
// entries, and the upvote counter.
package domain

import (
	"context"

	"github.com/google/uuid"

	"github.com/AleutianAI/CivicPulse/services/civicwatch/datatypes"
	"github.com/AleutianAI/CivicPulse/services/civicwatch/entity"
	"github.com/AleutianAI/CivicPulse/services/civicwatch/storage"
)

// EntityIncident is the storage type name for incidents.
const EntityIncident = "incident"

// Audit actor strings recorded in incident audit entries.
const (
	ActorCitizen   = "Citizen Reporter"
	ActorAnonymous = "Anonymous Reporter"
	ActorAuthority = "Authority"
)

// initialNotes is the note attached to the creation audit entry.
const initialNotes = "Initial report submitted."

// IncidentInput carries the validated fields of a new incident report.
type IncidentInput struct {
	Title         string
	Description   string
	CategoryID    string
	Location      datatypes.Location
	ImageURL      string
	ReporterEmail string
}

// Incidents is the incident store plus lifecycle operations. All
// mutations go through the store's Mutate, so the last-writer-wins
// policy of the entity package applies to concurrent status updates
// and upvotes.
type Incidents struct {
	store *entity.Store[datatypes.Incident]
}

// NewIncidents builds the incident store on an explicit storage handle.
func NewIncidents(kv storage.KV) *Incidents {
	return &Incidents{
		store: entity.New(kv, entity.Descriptor[datatypes.Incident]{
			Name: EntityIncident,
			ID:   func(in datatypes.Incident) string { return in.ID },
		}),
	}
}

// Report creates a new incident with status "Submitted" and a single
// initial audit entry. CreatedAt and UpdatedAt are identical at
// creation. CategoryID is not checked against the category index; a
// dangling reference is stored as-is.
func (s *Incidents) Report(ctx context.Context, in IncidentInput) (datatypes.Incident, error) {
	now := datatypes.NowISO()
	updatedBy := ActorAnonymous
	if in.ReporterEmail != "" {
		updatedBy = ActorCitizen
	}

	incident := datatypes.Incident{
		ID:            uuid.NewString(),
		Title:         in.Title,
		Description:   in.Description,
		ImageURL:      in.ImageURL,
		Status:        datatypes.StatusSubmitted,
		CategoryID:    in.CategoryID,
		Location:      in.Location,
		CreatedAt:     now,
		UpdatedAt:     now,
		ReporterEmail: in.ReporterEmail,
		AuditLog: []datatypes.AuditEntry{{
			Status:    datatypes.StatusSubmitted,
			Timestamp: now,
			UpdatedBy: updatedBy,
			Notes:     initialNotes,
		}},
	}
	return s.store.Create(ctx, incident)
}

// Get returns one incident, or entity.ErrNotFound.
func (s *Incidents) Get(ctx context.Context, id string) (datatypes.Incident, error) {
	return s.store.Get(ctx, id)
}

// Exists reports whether an incident is present at id.
func (s *Incidents) Exists(ctx context.Context, id string) (bool, error) {
	return s.store.Exists(ctx, id)
}

// List returns one page of incidents in index append order. Callers
// needing chronological order sort the page client-side.
func (s *Incidents) List(ctx context.Context, cursor string, limit int) (entity.Page[datatypes.Incident], error) {
	return s.store.List(ctx, cursor, limit)
}

// UpdateStatus appends an audit entry for the transition and sets the
// incident's status and UpdatedAt to match. The transition relation is
// total: no validation that the target differs from the current status
// or moves "forward", and repeated identical transitions each produce a
// new audit entry.
func (s *Incidents) UpdateStatus(ctx context.Context, id string, status datatypes.IncidentStatus, updatedBy, notes string) (datatypes.Incident, error) {
	return s.store.Mutate(ctx, id, func(in datatypes.Incident) datatypes.Incident {
		now := datatypes.NowISO()
		in.AuditLog = append(in.AuditLog, datatypes.AuditEntry{
			Status:    status,
			Timestamp: now,
			UpdatedBy: updatedBy,
			Notes:     notes,
		})
		in.Status = status
		in.UpdatedAt = now
		return in
	})
}

// Upvote increments the incident's upvote counter by one. No duplicate
// prevention is enforced server-side; the UI's is advisory only.
func (s *Incidents) Upvote(ctx context.Context, id string) (datatypes.Incident, error) {
	return s.store.Mutate(ctx, id, func(in datatypes.Incident) datatypes.Incident {
		in.Upvotes++
		return in
	})
}
