package models

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collators are not safe for concurrent use, so every sort builds its own.
func newNameCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase)
}

func compareNames(col *collate.Collator, a, b string, idA, idB uint) int {
	if c := col.CompareString(a, b); c != 0 {
		return c
	}
	if c := strings.Compare(a, b); c != 0 {
		return c
	}
	switch {
	case idA < idB:
		return -1
	case idA > idB:
		return 1
	}
	return 0
}

// SortProductsByName orders products by name, then by ID when names collide.
func SortProductsByName(products []Product) {
	col := newNameCollator()
	slices.SortFunc(products, func(a, b Product) int {
		return compareNames(col, a.Name, b.Name, a.ID, b.ID)
	})
}

func SortCategoriesByName(categories []Category) {
	col := newNameCollator()
	slices.SortFunc(categories, func(a, b Category) int {
		return compareNames(col, a.Name, b.Name, a.ID, b.ID)
	})
}
