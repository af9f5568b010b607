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
	"sort"

	"github.com/google/uuid"

	"github.com/AleutianAI/CivicPulse/services/civicwatch/datatypes"
	"github.com/AleutianAI/CivicPulse/services/civicwatch/entity"
	"github.com/AleutianAI/CivicPulse/services/civicwatch/storage"
)

// EntityComment is the storage type name for comments.
const EntityComment = "comment"

// Comments is the comment store. Comments are immutable after creation;
// the only operations are create and list.
type Comments struct {
	store *entity.Store[datatypes.Comment]
}

// NewComments builds the comment store on an explicit storage handle.
func NewComments(kv storage.KV) *Comments {
	return &Comments{
		store: entity.New(kv, entity.Descriptor[datatypes.Comment]{
			Name: EntityComment,
			ID:   func(c datatypes.Comment) string { return c.ID },
		}),
	}
}

// Add creates a comment on an incident. The incident reference is not
// checked here; the route layer verifies the incident exists first.
func (s *Comments) Add(ctx context.Context, incidentID, authorEmail, content string) (datatypes.Comment, error) {
	comment := datatypes.Comment{
		ID:          uuid.NewString(),
		IncidentID:  incidentID,
		AuthorEmail: authorEmail,
		Content:     content,
		CreatedAt:   datatypes.NowISO(),
	}
	return s.store.Create(ctx, comment)
}

// ForIncident returns the comments on one incident, oldest first. The
// comment index is global, so filtering and ordering happen in memory.
func (s *Comments) ForIncident(ctx context.Context, incidentID string) ([]datatypes.Comment, error) {
	all, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	matched := make([]datatypes.Comment, 0, len(all))
	for _, c := range all {
		if c.IncidentID == incidentID {
			matched = append(matched, c)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt < matched[j].CreatedAt
	})
	return matched, nil
}
