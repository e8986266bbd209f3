package viewmodels

import (
	"strconv"

	"github.com/junaidrashid-git/sportsstore/models"
)

type SelectListItem struct {
	Value    string `json:"value"`
	Text     string `json:"text"`
	Selected bool   `json:"selected"`
}

type SelectList []SelectListItem

// NewCategorySelectList lists categories by name, marking selected if set.
func NewCategorySelectList(categories []models.Category, selected *uint) SelectList {
	sorted := make([]models.Category, len(categories))
	copy(sorted, categories)
	models.SortCategoriesByName(sorted)

	list := make(SelectList, 0, len(sorted))
	for _, c := range sorted {
		list = append(list, SelectListItem{
			Value:    strconv.FormatUint(uint64(c.ID), 10),
			Text:     c.Name,
			Selected: selected != nil && *selected == c.ID,
		})
	}
	return list
}
