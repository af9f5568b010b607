// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/AleutianAI/CivicPulse/services/civicwatch/domain"
	"github.com/AleutianAI/CivicPulse/services/civicwatch/middleware"
	"github.com/AleutianAI/CivicPulse/services/civicwatch/routes"
	badgerdb "github.com/AleutianAI/CivicPulse/services/civicwatch/storage/badger"

	// --- OpenTelemetry imports ---
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.21.0"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

func initTracer() (func(context.Context), error) {
	ctx := context.Background()

	otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otelEndpoint == "" {
		// Tracing is optional for local runs.
		return func(context.Context) {}, nil
	}
	conn, err := grpc.NewClient(otelEndpoint,
		grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, err
	}
	traceExporter, err := otlptracegrpc.New(ctx, otlptracegrpc.WithGRPCConn(conn))
	if err != nil {
		return nil, err
	}
	res, err := resource.New(ctx,
		resource.WithAttributes(semconv.ServiceNameKey.String("civicwatch-service")))
	if err != nil {
		return nil, err
	}
	bsp := sdktrace.NewBatchSpanProcessor(traceExporter)
	traceProvider := sdktrace.NewTracerProvider(
		sdktrace.WithSampler(sdktrace.AlwaysSample()),
		sdktrace.WithResource(res),
		sdktrace.WithSpanProcessor(bsp))
	otel.SetTracerProvider(traceProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.
		TraceContext{}, propagation.Baggage{}))

	return func(ctx context.Context) {
		ctx, cancel := context.WithTimeout(ctx, time.Second*5)
		defer cancel()
		if err := traceExporter.Shutdown(ctx); err != nil {
			slog.Error("failed to shutdown OTLP exporter", "error", err)
		}
	}, nil
}

func main() {
	port := os.Getenv("CIVICWATCH_PORT")
	if port == "" {
		port = "12410"
	}
	dataDir := os.Getenv("CIVICWATCH_DATA_DIR")
	if dataDir == "" {
		dataDir = "./data/civicwatch"
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cleanup, err := initTracer()
	if err != nil {
		log.Fatalf("failed to setup the OTLP tracer: %v", err)
	}
	defer cleanup(context.Background())

	db, err := badgerdb.OpenWithPath(dataDir)
	if err != nil {
		log.Fatalf("failed to open storage at %s: %v", dataDir, err)
	}
	defer db.Close()

	gcCfg := badgerdb.DefaultConfig()
	gc, err := badgerdb.NewGCRunner(db, gcCfg.GCInterval, gcCfg.GCDiscardRatio, logger)
	if err != nil {
		log.Fatalf("failed to create GC runner: %v", err)
	}
	gc.Start()
	defer gc.Stop()

	kv := badgerdb.NewKV(db)
	categories, err := domain.NewCategories(kv)
	if err != nil {
		log.Fatalf("failed to load category seed registry: %v", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware("civicwatch-service"))
	router.Use(middleware.RequestLogger(logger))

	routes.SetupRoutes(router, routes.Stores{
		Categories: categories,
		Incidents:  domain.NewIncidents(kv),
		Comments:   domain.NewComments(kv),
	})

	slog.Info("starting civicwatch server", "port", port, "data_dir", dataDir)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
