// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package domain

import (
	"context"
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/AleutianAI/CivicPulse/services/civicwatch/datatypes"
	"github.com/AleutianAI/CivicPulse/services/civicwatch/entity"
	"github.com/AleutianAI/CivicPulse/services/civicwatch/storage"
)

// EntityCategory is the storage type name for categories.
const EntityCategory = "incident-category"

//go:embed seed_categories.yaml
var seedCategoriesYAML []byte

type seedRegistry struct {
	Categories []datatypes.Category `yaml:"categories"`
}

// SeedCategories parses the embedded default category set.
func SeedCategories() ([]datatypes.Category, error) {
	var reg seedRegistry
	if err := yaml.Unmarshal(seedCategoriesYAML, &reg); err != nil {
		return nil, fmt.Errorf("parse category seed registry: %w", err)
	}
	if len(reg.Categories) == 0 {
		return nil, fmt.Errorf("category seed registry is empty")
	}
	return reg.Categories, nil
}

// Categories is the category store. Categories are seeded once from the
// embedded default set and otherwise created by explicit request; there
// is no update or delete path.
type Categories struct {
	store *entity.Store[datatypes.Category]
}

// NewCategories builds the category store with the embedded seed set.
func NewCategories(kv storage.KV) (*Categories, error) {
	seed, err := SeedCategories()
	if err != nil {
		return nil, err
	}
	return &Categories{
		store: entity.New(kv, entity.Descriptor[datatypes.Category]{
			Name: EntityCategory,
			ID:   func(c datatypes.Category) string { return c.ID },
			Seed: seed,
		}),
	}, nil
}

// EnsureSeed writes the default categories when the index is empty.
// Idempotent; invoked unconditionally before every category listing.
func (s *Categories) EnsureSeed(ctx context.Context) error {
	return s.store.EnsureSeed(ctx)
}

// List returns every category in index order.
func (s *Categories) List(ctx context.Context) ([]datatypes.Category, error) {
	return s.store.ListAll(ctx)
}

// Exists reports whether a category is present at id.
func (s *Categories) Exists(ctx context.Context, id string) (bool, error) {
	return s.store.Exists(ctx, id)
}

// Create stores a new category. Returns entity.ErrConflict when the
// slug is already taken.
func (s *Categories) Create(ctx context.Context, c datatypes.Category) (datatypes.Category, error) {
	return s.store.Create(ctx, c)
}
