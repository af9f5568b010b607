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

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/CivicPulse/services/civicwatch/datatypes"
	"github.com/AleutianAI/CivicPulse/services/civicwatch/domain"
	"github.com/AleutianAI/CivicPulse/services/civicwatch/entity"
)

// ListCategories returns every category, seeding the defaults first if
// the category index is empty.
func ListCategories(categories *domain.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if err := categories.EnsureSeed(ctx); err != nil {
			fail(c, err)
			return
		}
		items, err := categories.List(ctx)
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, items)
	}
}

// CreateCategory stores a new category. Duplicate slugs are a caller
// error, not a conflict the store resolves.
func CreateCategory(categories *domain.Categories) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req CreateCategoryRequest
		if err := c.BindJSON(&req); err != nil {
			bad(c, "Invalid request body")
			return
		}
		if err := validate.Struct(req); err != nil {
			bad(c, validationMessage(err))
			return
		}

		ctx := c.Request.Context()
		exists, err := categories.Exists(ctx, req.ID)
		if err != nil {
			fail(c, err)
			return
		}
		if exists {
			bad(c, "Category with this ID already exists.")
			return
		}

		created, err := categories.Create(ctx, datatypes.Category{
			ID:   req.ID,
			Name: req.Name,
			Icon: req.Icon,
		})
		if errors.Is(err, entity.ErrConflict) {
			bad(c, "Category with this ID already exists.")
			return
		}
		if err != nil {
			fail(c, err)
			return
		}
		ok(c, created)
	}
}
