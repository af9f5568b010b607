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
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate is the validator instance for request datatypes.
// Initialized in init() with custom validators.
var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("slug", validateSlug)
}

var slugPattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// validateSlug enforces lowercase alphanumeric-with-dashes identifiers,
// the format used for category storage keys.
func validateSlug(fl validator.FieldLevel) bool {
	return slugPattern.MatchString(fl.Field().String())
}

// CreateIncidentRequest is the POST /api/incidents body.
type CreateIncidentRequest struct {
	Title         string           `json:"title" validate:"required,min=3"`
	Description   string           `json:"description" validate:"required,min=10"`
	CategoryID    string           `json:"categoryId" validate:"required"`
	Location      *LocationRequest `json:"location" validate:"required"`
	ImageURL      string           `json:"imageUrl" validate:"omitempty,url"`
	ReporterEmail string           `json:"reporterEmail" validate:"omitempty,email"`
}

// LocationRequest uses pointers so a present-but-zero coordinate is
// distinguishable from an absent one.
type LocationRequest struct {
	Lat     *float64 `json:"lat" validate:"required"`
	Lng     *float64 `json:"lng" validate:"required"`
	Address string   `json:"address"`
}

// CreateCategoryRequest is the POST /api/categories body.
type CreateCategoryRequest struct {
	ID   string `json:"id" validate:"required,min=3,slug"`
	Name string `json:"name" validate:"required,min=3"`
	Icon string `json:"icon" validate:"required"`
}

// UpdateStatusRequest is the PUT /api/incidents/:id/status body.
// Status membership in the fixed set is checked by the handler.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes"`
}

// CreateCommentRequest is the POST /api/incidents/:id/comments body.
type CreateCommentRequest struct {
	Content     string `json:"content" validate:"required"`
	AuthorEmail string `json:"authorEmail" validate:"required,email"`
}

// validationMessage flattens validator errors into the joined message
// list the error envelope carries.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "Invalid request body"
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fieldMessage(e))
	}
	return strings.Join(msgs, ", ")
}

func fieldMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", e.Field(), e.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", e.Field())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", e.Field())
	case "slug":
		return fmt.Sprintf("%s must be lowercase alphanumeric with dashes", e.Field())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
