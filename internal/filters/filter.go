package filters

import (
	"strings"

	"storefront/internal/models"
)

// Match aplica los dos predicados de la lista: categoría (o "All") y
// búsqueda por nombre sin distinguir mayúsculas.
func Match(name, category string, s State) bool {
	if s.SelectedCategory != CategoryAll && category != s.SelectedCategory {
		return false
	}
	if s.SearchQuery == "" {
		return true
	}
	return strings.Contains(strings.ToLower(name), strings.ToLower(s.SearchQuery))
}

// Apply filtra manteniendo el orden original.
func Apply(items []models.Product, s State) []models.Product {
	out := make([]models.Product, 0, len(items))
	for _, p := range items {
		if Match(p.Name, p.Category(), s) {
			out = append(out, p)
		}
	}
	return out
}
