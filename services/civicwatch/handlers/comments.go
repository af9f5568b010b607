// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/CivicPulse/services/civicwatch/domain"
)

// ListComments returns the comments on one incident, oldest first.
// A missing incident yields an empty list, matching the listing's
// filter-in-memory semantics.
func ListComments(comments *domain.Comments) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := comments.ForIncident(c.Request.Context(), c.Param("id"))
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, items)
	}
}

// CreateComment attaches a comment to an existing incident.
func CreateComment(incidents *domain.Incidents, comments *domain.Comments) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		incidentID := c.Param("id")

		exists, err := incidents.Exists(ctx, incidentID)
		if err != nil {
			fail(c, err)
			return
		}
		if !exists {
			notFound(c, "Incident not found")
			return
		}

		var req CreateCommentRequest
		if err := c.BindJSON(&req); err != nil {
			bad(c, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			bad(c, validationMessage(err))
			return
		}

		created, err := comments.Add(ctx, incidentID, req.AuthorEmail, req.Content)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, created)
	}
}
