// Package listview holds the pure filter and aggregate helpers the page
// controllers render from. Every function takes a snapshot and returns a new
// slice; nothing here owns state. An item is shown iff the search predicate
// AND the tab predicate both hold.
package listview

import (
	"strings"
	"time"

	"farmstead/entities"
)

func contains(hay, term string) bool {
	return strings.Contains(strings.ToLower(hay), strings.ToLower(term))
}

// Farms filters by name/location search and size bucket tabs
// (small <50, medium 50-100, large >100). Unknown tabs behave like "all".
func Farms(list []entities.Farm, search, tab string) []entities.Farm {
	out := make([]entities.Farm, 0, len(list))
	for _, f := range list {
		if !contains(f.Name, search) && !contains(f.Location, search) {
			continue
		}
		switch tab {
		case "small":
			if f.Size >= 50 {
				continue
			}
		case "medium":
			if f.Size < 50 || f.Size > 100 {
				continue
			}
		case "large":
			if f.Size <= 100 {
				continue
			}
		}
		out = append(out, f)
	}
	return out
}

// Crops filters by name/variety search and exact status tabs.
func Crops(list []entities.Crop, search, tab string) []entities.Crop {
	out := make([]entities.Crop, 0, len(list))
	for _, c := range list {
		if !contains(c.Name, search) && !contains(c.Variety, search) {
			continue
		}
		switch tab {
		case entities.CropSeedling, entities.CropGrowing, entities.CropReady, entities.CropHarvested:
			if c.Status != tab {
				continue
			}
		}
		out = append(out, c)
	}
	return out
}

// Tasks filters by title/description search and the
// pending/completed/high/overdue tabs. Overdue compares against now.
func Tasks(list []entities.Task, search, tab string, now time.Time) []entities.Task {
	out := make([]entities.Task, 0, len(list))
	for _, t := range list {
		if !contains(t.Title, search) && !contains(t.Description, search) {
			continue
		}
		switch tab {
		case "pending":
			if t.Completed {
				continue
			}
		case "completed":
			if !t.Completed {
				continue
			}
		case "high":
			if t.Priority != entities.PriorityHigh {
				continue
			}
		case "overdue":
			if t.Completed || !t.DueDate.Before(now) {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// Transactions filters by category/description search and income/expense
// tabs. "recent" shows everything; ordering is the caller's concern.
func Transactions(list []entities.Transaction, search, tab string) []entities.Transaction {
	out := make([]entities.Transaction, 0, len(list))
	for _, t := range list {
		if !contains(t.Category, search) && !contains(t.Description, search) {
			continue
		}
		switch tab {
		case entities.TxIncome, entities.TxExpense:
			if t.Type != tab {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
