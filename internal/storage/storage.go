// Package storage persists property sheets.
package storage

import (
	"github.com/Lotendan/wxWidgets/internal/model"
)

// SheetProvider provides access to a stored property sheet.
type SheetProvider interface {
	// Properties returns the sheet's properties in their stored order.
	Properties() ([]model.Property, error)

	// CommitProperty writes back one property's current value and editor
	// assignment.
	CommitProperty(p model.Property) error

	// Flush writes pending changes through to the backing store.
	Flush() error
}
