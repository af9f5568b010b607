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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(f float64) *float64 { return &f }

func TestCreateIncidentRequestValid(t *testing.T) {
	req := CreateIncidentRequest{
		Title:       "Pothole on 5th",
		Description: "A deep pothole near the bus stop.",
		CategoryID:  "pothole",
		Location:    &LocationRequest{Lat: floatPtr(0), Lng: floatPtr(0)},
	}
	assert.NoError(t, validate.Struct(req))
}

// TestZeroCoordinatesAreValid guards the pointer encoding: a location
// at (0, 0) is present, not missing.
func TestZeroCoordinatesAreValid(t *testing.T) {
	req := CreateIncidentRequest{
		Title:       "Null island incident",
		Description: "Something happened at the origin.",
		CategoryID:  "other",
		Location:    &LocationRequest{Lat: floatPtr(0), Lng: floatPtr(0)},
	}
	assert.NoError(t, validate.Struct(req))
}

func TestCreateIncidentRequestMessages(t *testing.T) {
	req := CreateIncidentRequest{
		Title:         "ab",
		Description:   "too short",
		ReporterEmail: "not-an-email",
	}
	err := validate.Struct(req)
	require.Error(t, err)

	msg := validationMessage(err)
	assert.Contains(t, msg, "Title must be at least 3 characters")
	assert.Contains(t, msg, "Description must be at least 10 characters")
	assert.Contains(t, msg, "CategoryID is required")
	assert.Contains(t, msg, "Location is required")
	assert.Contains(t, msg, "ReporterEmail must be a valid email address")
}

func TestCategorySlugValidation(t *testing.T) {
	valid := CreateCategoryRequest{ID: "street-sign-9", Name: "Street Sign", Icon: "Sign"}
	assert.NoError(t, validate.Struct(valid))

	for _, id := range []string{"Bad", "has space", "under_score", "ÜTF"} {
		req := CreateCategoryRequest{ID: id, Name: "Whatever", Icon: "X"}
		err := validate.Struct(req)
		require.Error(t, err, "id %q", id)
		assert.Contains(t, validationMessage(err), "lowercase alphanumeric")
	}
}

func TestCommentRequestValidation(t *testing.T) {
	err := validate.Struct(CreateCommentRequest{Content: "", AuthorEmail: "a@example.com"})
	require.Error(t, err)
	assert.Contains(t, validationMessage(err), "Content is required")

	err = validate.Struct(CreateCommentRequest{Content: "hi", AuthorEmail: "nope"})
	require.Error(t, err)
	assert.Contains(t, validationMessage(err), "valid email")
}
