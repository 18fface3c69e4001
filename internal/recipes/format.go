package recipes

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatDuration renders combined prep and cook time for display.
// Negative inputs are clamped to zero rather than rejected; recipe data is
// display-only and must never take the page down.
func FormatDuration(prepMinutes, cookMinutes int) string {
	if prepMinutes < 0 {
		prepMinutes = 0
	}
	if cookMinutes < 0 {
		cookMinutes = 0
	}

	total := prepMinutes + cookMinutes
	if total == 0 {
		return "Time varies"
	}
	if total < 60 {
		return fmt.Sprintf("%d min", total)
	}

	hours := total / 60
	minutes := total % 60
	if minutes != 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dh", hours)
}

var difficultyLabels = map[string]string{
	"easy":        "Easy",
	"weeknight":   "Weeknight-friendly",
	"showstopper": "Showstopper",
}

// DifficultyLabel maps a difficulty code to its display label. Empty codes
// yield "" (nothing to show). Unknown codes pass through unchanged so new
// categories still display something rather than disappearing.
func DifficultyLabel(code string) string {
	if code == "" {
		return ""
	}
	if label, ok := difficultyLabels[code]; ok {
		return label
	}
	return code
}

var titleCaser = cases.Title(language.English)

// TagLabel renders a lowercase content tag for display.
func TagLabel(tag string) string {
	return titleCaser.String(tag)
}
