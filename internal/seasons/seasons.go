package seasons

import "time"

// Season represents a season of the year
type Season string

const (
	Fall   Season = "fall"
	Winter Season = "winter"
	Spring Season = "spring"
	Summer Season = "summer"
)

// Style is the seasonal accent palette the templates pull from.
type Style struct {
	Season     Season
	Accent     string // headings, links
	AccentSoft string // card borders, chips
	Background string
	Ink        string // body text
}

// GetSeason determines the season based on the month
func GetSeason(t time.Time) Season {
	month := t.Month()

	if month >= time.September && month <= time.November {
		return Fall
	}
	if month == time.December || month <= time.February {
		return Winter
	}
	if month >= time.March && month <= time.May {
		return Spring
	}
	return Summer
}

func StyleFor(season Season) Style {
	switch season {
	case Fall:
		return Style{Season: Fall, Accent: "#c2410c", AccentSoft: "#fed7aa", Background: "#fff7ed", Ink: "#431407"}
	case Winter:
		return Style{Season: Winter, Accent: "#0369a1", AccentSoft: "#bae6fd", Background: "#f0f9ff", Ink: "#082f49"}
	case Spring:
		return Style{Season: Spring, Accent: "#15803d", AccentSoft: "#bbf7d0", Background: "#f0fdf4", Ink: "#052e16"}
	case Summer:
		return Style{Season: Summer, Accent: "#a16207", AccentSoft: "#fef08a", Background: "#fefce8", Ink: "#422006"}
	default:
		return StyleFor(Fall)
	}
}

// GetCurrentStyle returns the palette for the current season.
func GetCurrentStyle() Style {
	return StyleFor(GetSeason(time.Now()))
}
