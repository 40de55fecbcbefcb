package catalog

import (
	"strings"

	"github.com/dmitrijs2005/herbalist/internal/client/models"
)

var homeItems = []models.Item{
	{ID: "h1", Title: "Ginseng", Subtitle: "Energy • Root", Category: models.CategoryHerbs, Color: "#E9F7EF"},
	{ID: "h2", Title: "Chamomile", Subtitle: "Calming • Flower", Category: models.CategoryHerbs, Color: "#FFF5E6"},
	{ID: "r1", Title: "Pancake", Subtitle: "Food • <60 mins", Category: models.CategoryRecipes, Color: "#EAF2FF"},
	{ID: "r2", Title: "Salad", Subtitle: "Food • <30 mins", Category: models.CategoryRecipes, Color: "#E6FFF2"},
	{ID: "f1", Title: "Digestive Mix", Subtitle: "Powder • Herbs", Category: models.CategoryFormulas, Color: "#F8E6FF"},
	{ID: "f2", Title: "Sleep Tonic", Subtitle: "Tincture • Night", Category: models.CategoryFormulas, Color: "#FFE6EF"},
	{ID: "a1", Title: "LI4 Hegu", Subtitle: "Hand • Analgesic", Category: models.CategoryAcupuncture, Color: "#F0F9FF"},
	{ID: "a2", Title: "ST36 Zusanli", Subtitle: "Leg • Vitality", Category: models.CategoryAcupuncture, Color: "#FFF0F6"},
}

// Categories lists the concrete home categories in display order.
var Categories = []models.Category{
	models.CategoryHerbs,
	models.CategoryRecipes,
	models.CategoryFormulas,
	models.CategoryAcupuncture,
}

// Items returns a copy of the home feed.
func Items() []models.Item {
	out := make([]models.Item, len(homeItems))
	copy(out, homeItems)
	return out
}

// ParseCategory accepts a category name in any casing. ok is false for
// unknown names.
func ParseCategory(s string) (models.Category, bool) {
	c := models.Category(strings.ToLower(strings.TrimSpace(s)))
	if c == models.CategoryAll {
		return c, true
	}
	for _, known := range Categories {
		if c == known {
			return c, true
		}
	}
	return "", false
}

// CountByCategory counts items per category. Every concrete category is
// present in the result, zero when it has no items.
func CountByCategory(items []models.Item) map[models.Category]int {
	counts := make(map[models.Category]int, len(Categories))
	for _, c := range Categories {
		counts[c] = 0
	}
	for _, it := range items {
		counts[it.Category]++
	}
	return counts
}

// FilterItems keeps items of the given category (CategoryAll or "" keeps
// every category) whose title or subtitle contains query, case-insensitively.
func FilterItems(items []models.Item, query string, category models.Category) []models.Item {
	q := strings.ToLower(strings.TrimSpace(query))
	out := make([]models.Item, 0, len(items))
	for _, it := range items {
		if category != "" && category != models.CategoryAll && it.Category != category {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(it.Title), q) &&
			!strings.Contains(strings.ToLower(it.Subtitle), q) {
			continue
		}
		out = append(out, it)
	}
	return out
}
