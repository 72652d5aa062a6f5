package listview

import (
	"time"

	"farmstead/entities"
)

func SumByType(list []entities.Transaction, typ string) float64 {
	var sum float64
	for _, t := range list {
		if t.Type == typ {
			sum += t.Amount
		}
	}
	return sum
}

func CropCountsByStatus(list []entities.Crop) map[string]int {
	counts := map[string]int{}
	for _, c := range list {
		counts[c.Status]++
	}
	return counts
}

// ActiveCrops counts everything not yet harvested.
func ActiveCrops(list []entities.Crop) int {
	n := 0
	for _, c := range list {
		if c.Status != entities.CropHarvested {
			n++
		}
	}
	return n
}

func PendingTasks(list []entities.Task) int {
	n := 0
	for _, t := range list {
		if !t.Completed {
			n++
		}
	}
	return n
}

func CompletedTasks(list []entities.Task) int {
	return len(list) - PendingTasks(list)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

// DueToday returns incomplete tasks whose due date falls on now's calendar
// day, local time.
func DueToday(list []entities.Task, now time.Time) []entities.Task {
	out := make([]entities.Task, 0, len(list))
	for _, t := range list {
		if !t.Completed && sameDay(t.DueDate, now) {
			out = append(out, t)
		}
	}
	return out
}

// DueTomorrow is DueToday shifted one calendar day forward.
func DueTomorrow(list []entities.Task, now time.Time) []entities.Task {
	return DueToday(list, now.AddDate(0, 0, 1))
}
