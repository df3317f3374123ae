package timeline

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Statistics is the derived dashboard of a timeline.
type Statistics struct {
	WeeksLived   int
	DaysLived    int
	AgeYears     int
	LifeProgress int // percent of ExpectedLifespanWeeks, rounded

	TotalEvents         int
	ByCategory          map[Category]int
	ByYear              map[int]int
	MostActiveYear      int // zero when there are no events
	MostActiveYearCount int
	TopCategory         Category
	TopCategoryCount    int // zero when there are no events
	EventsThisYear      int
	EventsWithReminders int
	EventsPerYear       float64

	TotalAttachments      int
	EventsWithAttachments int
	AttachmentsPerEvent   float64
}

// ComputeStatistics derives Statistics from the profile birthdate and the
// full (unfiltered) event list. Ties for the most active year resolve to the
// earliest year, ties for the top category to declaration order.
func ComputeStatistics(birthdate time.Time, events []Event, today time.Time) Statistics {
	s := Statistics{
		WeeksLived: WeeksBetween(birthdate, today),
		DaysLived:  DaysBetween(birthdate, today),
		AgeYears:   AgeYears(birthdate, today),
		ByCategory: make(map[Category]int),
		ByYear:     make(map[int]int),
	}
	s.LifeProgress = int(math.Round(float64(s.WeeksLived) / ExpectedLifespanWeeks * 100))
	s.TotalEvents = len(events)

	thisYear := Date(today).Year()
	for _, e := range events {
		s.ByCategory[e.Category]++
		y := Date(e.Date).Year()
		s.ByYear[y]++
		if y == thisYear {
			s.EventsThisYear++
		}
		if e.NotifyOnAnniversary {
			s.EventsWithReminders++
		}
		if n := len(e.Attachments); n > 0 {
			s.TotalAttachments += n
			s.EventsWithAttachments++
		}
	}

	years := make([]int, 0, len(s.ByYear))
	for y := range s.ByYear {
		years = append(years, y)
	}
	sort.Ints(years)
	for _, y := range years {
		if s.ByYear[y] > s.MostActiveYearCount {
			s.MostActiveYear, s.MostActiveYearCount = y, s.ByYear[y]
		}
	}
	for _, c := range Categories() {
		if s.ByCategory[c] > s.TopCategoryCount {
			s.TopCategory, s.TopCategoryCount = c, s.ByCategory[c]
		}
	}

	s.EventsPerYear = float64(s.TotalEvents) / float64(max(1, s.AgeYears))
	s.AttachmentsPerEvent = float64(s.TotalAttachments) / float64(max(1, s.TotalEvents))
	return s
}

// Insights renders the narrative summary lines of a timeline report.
// Percentages that would divide by zero events are omitted.
func Insights(s Statistics) []string {
	out := []string{
		fmt.Sprintf("You've documented an average of %.1f significant events per year of your life.", s.EventsPerYear),
	}
	if s.TotalEvents > 0 {
		out = append(out, fmt.Sprintf("Your most active category is %q which represents %.1f%% of your recorded events.",
			s.TopCategory.String(), percent(s.TopCategoryCount, s.TotalEvents)))
	}
	out = append(out, fmt.Sprintf("You've preserved %d digital memories through file attachments.", s.TotalAttachments))
	if s.TotalEvents > 0 {
		out = append(out, fmt.Sprintf("%.1f%% of your events have anniversary reminders enabled.",
			percent(s.EventsWithReminders, s.TotalEvents)))
	}
	out = append(out, fmt.Sprintf("You've lived %d%% of an expected 80-year lifespan, with %d years of potential adventures ahead.",
		s.LifeProgress, max(0, 80-s.AgeYears)))
	return out
}

func percent(part, total int) float64 {
	return float64(part) / float64(total) * 100
}
