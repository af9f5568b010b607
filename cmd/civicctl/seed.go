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
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/CivicPulse/services/civicwatch/domain"
	badgerdb "github.com/AleutianAI/CivicPulse/services/civicwatch/storage/badger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the default category set into an empty data directory",
	Long: `Seeds the default reporting categories. A no-op when the
category index is already populated, so it is always safe to run.`,
	Run: runSeedCommand,
}

func runSeedCommand(cmd *cobra.Command, args []string) {
	db, err := badgerdb.OpenWithPath(dataDir)
	if err != nil {
		log.Fatalf("Error opening data directory %s: %v", dataDir, err)
	}
	defer db.Close()

	ctx := context.Background()
	categories, err := domain.NewCategories(badgerdb.NewKV(db))
	if err != nil {
		log.Fatalf("Error loading category seed registry: %v", err)
	}
	if err := categories.EnsureSeed(ctx); err != nil {
		log.Fatalf("Error seeding categories: %v", err)
	}

	items, err := categories.List(ctx)
	if err != nil {
		log.Fatalf("Error listing categories: %v", err)
	}
	fmt.Printf("Category index holds %d categories:\n", len(items))
	for _, c := range items {
		fmt.Printf("  %-14s %s\n", c.ID, c.Name)
	}
}
