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
	"github.com/AleutianAI/CivicPulse/services/civicwatch/entity"
	"github.com/AleutianAI/CivicPulse/services/civicwatch/storage"
	badgerdb "github.com/AleutianAI/CivicPulse/services/civicwatch/storage/badger"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print record and index counts per entity type",
	Long: `Counts stored records (by key prefix) and index entries for
each entity type. A record count above the index count indicates
orphaned-but-addressable records from interrupted creates; an index
count above the record count indicates duplicate index entries.`,
	Run: runStatsCommand,
}

func runStatsCommand(cmd *cobra.Command, args []string) {
	db, err := badgerdb.OpenWithPath(dataDir)
	if err != nil {
		log.Fatalf("Error opening data directory %s: %v", dataDir, err)
	}
	defer db.Close()

	ctx := context.Background()
	kv := badgerdb.NewKV(db)

	entityTypes := []string{domain.EntityIncident, domain.EntityCategory, domain.EntityComment}
	fmt.Printf("%-20s %8s %8s\n", "entity", "records", "indexed")
	for _, name := range entityTypes {
		keys, err := kv.ListKeys(ctx, storage.EntityPrefix(name))
		if err != nil {
			log.Fatalf("Error listing %s records: %v", name, err)
		}
		ids, err := entity.NewIndex(kv, name).Snapshot(ctx)
		if err != nil {
			log.Fatalf("Error reading %s index: %v", name, err)
		}
		fmt.Printf("%-20s %8d %8d\n", name, len(keys), len(ids))
	}
}
