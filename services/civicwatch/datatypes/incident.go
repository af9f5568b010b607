// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package datatypes defines the wire-level types shared by the civicwatch
// service: incidents, categories, comments, and the uniform API envelope.
//
// All timestamps are ISO-8601 strings generated server-side at the moment
// of write. JSON field names match the public REST contract exactly.
package datatypes

import "time"

// IncidentStatus is one of the fixed workflow states for an incident.
//
// The status set is ordered for display purposes only. The workflow is
// fully permissive: any status is reachable from any other, including
// itself, and every transition is recorded in the audit log.
type IncidentStatus string

const (
	StatusSubmitted    IncidentStatus = "Submitted"
	StatusAcknowledged IncidentStatus = "Acknowledged"
	StatusInProgress   IncidentStatus = "In Progress"
	StatusResolved     IncidentStatus = "Resolved"
	StatusClosed       IncidentStatus = "Closed"
)

// AllStatuses lists every valid incident status in display order.
var AllStatuses = []IncidentStatus{
	StatusSubmitted,
	StatusAcknowledged,
	StatusInProgress,
	StatusResolved,
	StatusClosed,
}

// Valid reports whether s is a member of the fixed status set.
func (s IncidentStatus) Valid() bool {
	for _, known := range AllStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Location is a geographic point with an optional street address.
type Location struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

// AuditEntry records one status change in an incident's history.
// Entries are append-only and never modified after being written.
type AuditEntry struct {
	Status    IncidentStatus `json:"status"`
	Timestamp string         `json:"timestamp"`
	UpdatedBy string         `json:"updatedBy"`
	Notes     string         `json:"notes,omitempty"`
}

// Incident is a citizen-reported civic issue.
//
// Invariants maintained by the domain layer:
//   - AuditLog is never empty after creation; entry 0 carries
//     status "Submitted".
//   - CreatedAt is immutable; UpdatedAt tracks the latest mutation.
//   - Upvotes is a non-negative counter.
//
// CategoryID is an unchecked foreign key: a dangling reference is
// tolerated, not rejected.
type Incident struct {
	ID            string         `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description"`
	ImageURL      string         `json:"imageUrl,omitempty"`
	Status        IncidentStatus `json:"status"`
	CategoryID    string         `json:"categoryId"`
	Location      Location       `json:"location"`
	CreatedAt     string         `json:"createdAt"`
	UpdatedAt     string         `json:"updatedAt"`
	ReporterID    string         `json:"reporterId,omitempty"`
	ReporterEmail string         `json:"reporterEmail,omitempty"`
	Upvotes       int            `json:"upvotes"`
	AuditLog      []AuditEntry   `json:"auditLog"`
}

// Category is a reporting category. The ID is a stable slug used as the
// storage key; uniqueness is the identity invariant. Icon is an opaque
// display identifier the backend never interprets.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// Comment is a public note attached to an incident. Immutable after
// creation. IncidentID is an unchecked foreign key.
type Comment struct {
	ID          string `json:"id"`
	IncidentID  string `json:"incidentId"`
	AuthorEmail string `json:"authorEmail"`
	Content     string `json:"content"`
	CreatedAt   string `json:"createdAt"`
}

// APIResponse is the uniform envelope for every REST response.
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

// isoFormat keeps millisecond precision and a fixed width so timestamps
// sort lexicographically in the same order as chronologically.
const isoFormat = "2006-01-02T15:04:05.000Z"

// NowISO returns the current UTC time as an ISO-8601 string.
func NowISO() string {
	return time.Now().UTC().Format(isoFormat)
}
