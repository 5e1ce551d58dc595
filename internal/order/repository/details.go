package repository

import (
	"strings"

	"printworks/internal/producttype"
)

// repeatDetails summarizes a stored order for the repeat picker: its product
// type followed by the user part of its notes.
func repeatDetails(productType, notes string) string {
	text := producttype.SplitNotes(notes).Text
	parts := make([]string, 0, 2)
	if productType != "" {
		parts = append(parts, productType)
	}
	if text != "" {
		parts = append(parts, text)
	}
	return strings.Join(parts, " - ")
}
