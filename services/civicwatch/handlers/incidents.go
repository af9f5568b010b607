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
	"errors"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/CivicPulse/services/civicwatch/datatypes"
	"github.com/AleutianAI/CivicPulse/services/civicwatch/domain"
	"github.com/AleutianAI/CivicPulse/services/civicwatch/entity"
)

// defaultListLimit is deliberately high: the UI filters client-side and
// wants most of the index in one page.
const defaultListLimit = 100

// ListIncidents returns one page of incidents, sorted by creation time
// descending after the fetch. Page order from the store is index append
// order, which is not chronological under concurrent creates.
func ListIncidents(incidents *domain.Incidents) gin.HandlerFunc {
	return func(c *gin.Context) {
		cursor := c.Query("cursor")
		limit := defaultListLimit
		if lq := c.Query("limit"); lq != "" {
			n, err := strconv.Atoi(lq)
			if err != nil {
				bad(c, "limit must be an integer")
				return
			}
			if n < 1 {
				n = 1
			}
			limit = n
		}

		page, err := incidents.List(c.Request.Context(), cursor, limit)
		if errors.Is(err, entity.ErrInvalidCursor) {
			bad(c, "Invalid cursor")
			return
		}
		if err != nil {
			fail(c, err)
			return
		}

		sort.SliceStable(page.Items, func(i, j int) bool {
			return page.Items[i].CreatedAt > page.Items[j].CreatedAt
		})
		ok(c, page)
	}
}

// GetIncident returns one incident by ID.
func GetIncident(incidents *domain.Incidents) gin.HandlerFunc {
	return func(c *gin.Context) {
		incident, err := incidents.Get(c.Request.Context(), c.Param("id"))
		if errors.Is(err, entity.ErrNotFound) {
			notFound(c, "Incident not found")
			return
		}
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, incident)
	}
}

// CreateIncident validates and stores a new report. The category
// reference is not checked; a dangling categoryId is accepted.
func CreateIncident(incidents *domain.Incidents) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateIncidentRequest
		if err := c.BindJSON(&req); err != nil {
			bad(c, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			bad(c, validationMessage(err))
			return
		}

		created, err := incidents.Report(c.Request.Context(), domain.IncidentInput{
			Title:       req.Title,
			Description: req.Description,
			CategoryID:  req.CategoryID,
			Location: datatypes.Location{
				Lat:     *req.Location.Lat,
				Lng:     *req.Location.Lng,
				Address: req.Location.Address,
			},
			ImageURL:      req.ImageURL,
			ReporterEmail: req.ReporterEmail,
		})
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, created)
	}
}

// UpdateIncidentStatus moves an incident to the requested status and
// appends the audit entry for the transition.
func UpdateIncidentStatus(incidents *domain.Incidents) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateStatusRequest
		if err := c.BindJSON(&req); err != nil {
			bad(c, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			bad(c, validationMessage(err))
			return
		}
		status := datatypes.IncidentStatus(req.Status)
		if !status.Valid() {
			bad(c, "Invalid status value")
			return
		}

		updated, err := incidents.UpdateStatus(c.Request.Context(), c.Param("id"), status, domain.ActorAuthority, req.Notes)
		if errors.Is(err, entity.ErrNotFound) {
			notFound(c, "Incident not found")
			return
		}
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, updated)
	}
}

// UpvoteIncident bumps the upvote counter. Repeat upvotes from the same
// caller are allowed; duplicate prevention lives in the UI only.
func UpvoteIncident(incidents *domain.Incidents) gin.HandlerFunc {
	return func(c *gin.Context) {
		updated, err := incidents.Upvote(c.Request.Context(), c.Param("id"))
		if errors.Is(err, entity.ErrNotFound) {
			notFound(c, "Incident not found")
			return
		}
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, updated)
	}
}
