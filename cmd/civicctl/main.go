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
	"log"

	"github.com/spf13/cobra"
)

var dataDir string

var rootCmd = &cobra.Command{
	Use:   "civicctl",
	Short: "Operator CLI for the CivicPulse incident store",
	Long: `civicctl manages a civicwatch data directory directly,
without going through the REST service. The service must not be
running against the same directory while civicctl holds it open.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "./data/civicwatch",
		"BadgerDB data directory used by the civicwatch service")
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(statsCmd)
}
