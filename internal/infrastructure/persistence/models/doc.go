// Package models contains GORM-specific persistence models that map to
// database tables. These models are separate from domain entities to keep
// the domain layer free from ORM concerns.
//
// Each model carries ToDomain/FromDomain conversions; repositories never
// hand a model to a caller.
package models
