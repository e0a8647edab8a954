// Package models defines the entities persisted by the student records
// service. Every entity shares the Base fields: an immutable URL-safe slug
// assigned on first save, a soft-delete flag and automatic timestamps.
package models

import "time"

// Base holds the fields common to every persisted entity.
type Base struct {
	ID        int64
	Slug      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Created returns the creation timestamp in the display format used by the
// administrative surface.
func (b Base) Created() string {
	return b.CreatedAt.Format("02.01.2006 15:04")
}

// Updated returns the update timestamp in the display format used by the
// administrative surface.
func (b Base) Updated() string {
	return b.UpdatedAt.Format("02.01.2006 15:04")
}
