// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package entity

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "civicpulse"

var (
	// storeOperations counts entity store operations by type and verb.
	storeOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Entity store operations by entity type and operation.",
		},
		[]string{"entity", "op"},
	)

	// seedRuns counts the times a seed set was actually written.
	seedRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: "store",
			Name:      "seed_runs_total",
			Help:      "Seed writes performed because an index was empty.",
		},
		[]string{"entity"},
	)
)

func observeOp(entity, op string) {
	storeOperations.WithLabelValues(entity, op).Inc()
}

func observeSeed(entity string) {
	seedRuns.WithLabelValues(entity).Inc()
}
