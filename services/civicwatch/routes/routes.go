// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/AleutianAI/CivicPulse/services/civicwatch/domain"
	"github.com/AleutianAI/CivicPulse/services/civicwatch/handlers"
)

// Stores bundles the per-type stores the routes close over.
type Stores struct {
	Categories *domain.Categories
	Incidents  *domain.Incidents
	Comments   *domain.Comments
}

func SetupRoutes(router *gin.Engine, stores Stores) {
	router.GET("/health", handlers.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/categories", handlers.ListCategories(stores.Categories))
		api.POST("/categories", handlers.CreateCategory(stores.Categories))

		api.GET("/incidents", handlers.ListIncidents(stores.Incidents))
		api.POST("/incidents", handlers.CreateIncident(stores.Incidents))
		api.GET("/incidents/:id", handlers.GetIncident(stores.Incidents))
		api.PUT("/incidents/:id/status", handlers.UpdateIncidentStatus(stores.Incidents))
		api.POST("/incidents/:id/upvote", handlers.UpvoteIncident(stores.Incidents))

		api.GET("/incidents/:id/comments", handlers.ListComments(stores.Comments))
		api.POST("/incidents/:id/comments", handlers.CreateComment(stores.Incidents, stores.Comments))
	}
}
