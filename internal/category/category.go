// Package category derives a flat tag taxonomy from an item collection
// and projects per-category views of it. Both operations are pure: same
// items in, same result out, nothing mutated.
package category

import "github.com/ThomasAtlantis/MarkSort/internal/item"

// AllID is the id of the synthetic category matching every item.
const AllID = "all"

// Category groups items by a set of tag ids. The universal category has
// an empty TagIDs and matches everything, untagged items included.
type Category struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	TagIDs []string `json:"tagIds"`
}

// IsAll reports whether c is the universal category.
func (c Category) IsAll() bool { return c.ID == AllID }

// Derive builds one category per distinct tag id across items, in
// first-discovery order, with the universal category prepended. When the
// same id shows up more than once the first name seen wins. Untagged
// items get no category of their own.
func Derive(items []item.Item) []Category {
	cats := []Category{{ID: AllID, Name: "All"}}
	seen := make(map[string]bool)
	for _, it := range items {
		for _, tag := range it.Tags {
			if seen[tag.ID] {
				continue
			}
			seen[tag.ID] = true
			cats = append(cats, Category{
				ID:     tag.ID,
				Name:   tag.Name,
				TagIDs: []string{tag.ID},
			})
		}
	}
	return cats
}

// Filter returns the items belonging to cat, preserving input order.
// For the universal category the input slice itself comes back. Today
// every derived category holds a single tag id, but membership is set
// intersection so multi-tag categories would keep working.
func Filter(items []item.Item, cat Category) []item.Item {
	if cat.IsAll() {
		return items
	}
	var out []item.Item
	for _, it := range items {
		if intersects(it, cat.TagIDs) {
			out = append(out, it)
		}
	}
	return out
}

// Find returns the category with the given id, falling back to the first
// entry (the universal category) when the id is unknown.
func Find(cats []Category, id string) Category {
	for _, c := range cats {
		if c.ID == id {
			return c
		}
	}
	return cats[0]
}

func intersects(it item.Item, ids []string) bool {
	for _, id := range ids {
		if it.HasTag(id) {
			return true
		}
	}
	return false
}
