// Package models wires every document type into one registry.
package models

import (
	"github.com/roach88/docreduce/internal/document"
	"github.com/roach88/docreduce/internal/models/agreement"
	"github.com/roach88/docreduce/internal/models/offering"
	"github.com/roach88/docreduce/internal/models/subscription"
	"github.com/roach88/docreduce/internal/models/workbreakdown"
	"github.com/roach88/docreduce/internal/schema"
)

// Schemas returns the CUE sources of every document type.
func Schemas() []schema.Source {
	return []schema.Source{
		agreement.Schema(),
		offering.Schema(),
		subscription.Schema(),
		workbreakdown.Schema(),
	}
}

// Descriptors returns every document model.
func Descriptors() []document.Descriptor {
	return []document.Descriptor{
		agreement.Model(),
		offering.Model(),
		subscription.Model(),
		workbreakdown.Model(),
	}
}

// NewRegistry compiles all schemas and registers all models. Factories
// stamp actions with clock.
func NewRegistry(clock document.Clock) (*document.Registry, error) {
	v, err := schema.NewRegistry(Schemas()...)
	if err != nil {
		return nil, err
	}
	return document.NewRegistry(v, clock, Descriptors()...)
}
