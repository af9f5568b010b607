// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package handlers implements the Gin handlers for the civicwatch REST
// surface. Every response is wrapped in the uniform
// {success, data?, error?} envelope.
package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/CivicPulse/services/civicwatch/datatypes"
)

func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, datatypes.APIResponse{Success: true, Data: data})
}

func bad(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, datatypes.APIResponse{Success: false, Error: msg})
}

func notFound(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, datatypes.APIResponse{Success: false, Error: msg})
}

// fail reports a storage-level fault. These are not modeled as a
// recoverable kind; the request dies with a generic message and the
// detail goes to the log.
func fail(c *gin.Context, err error) {
	slog.Error("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, datatypes.APIResponse{Success: false, Error: "Internal server error"})
}
