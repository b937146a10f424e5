package web

import (
	"html/template"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/applytrack/applytrack/internal/models"
)

var yen = message.NewPrinter(language.Japanese)

// FormatYen renders an amount with locale digit grouping, e.g. ¥6,000,000.
func FormatYen(amount int64) string {
	return yen.Sprintf("¥%d", amount)
}

// FormatSalaryRange renders the card's salary line: both bounds present
// gives "min - max", only a lower bound gives "min+", neither gives an
// empty string and the line is omitted. Bound ordering is not checked.
func FormatSalaryRange(min, max *int64) string {
	switch {
	case min != nil && max != nil:
		return FormatYen(*min) + " - " + FormatYen(*max)
	case min != nil:
		return FormatYen(*min) + "+"
	default:
		return ""
	}
}

// FormatDate renders a YYYY-MM-DD value as "Jan 2, 2006". Values that do
// not parse are shown as-is rather than hidden.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}

// StatusCounts are the indicator-card numbers derived from the list.
type StatusCounts struct {
	Total        int
	Applied      int
	Interviewing int
	Offers       int
	Rejected     int
}

func CountByStatus(apps []models.JobApplication) StatusCounts {
	counts := StatusCounts{Total: len(apps)}
	for _, app := range apps {
		switch app.Status {
		case models.StatusApplied:
			counts.Applied++
		case models.StatusInterviewing:
			counts.Interviewing++
		case models.StatusOffers:
			counts.Offers++
		case models.StatusRejected:
			counts.Rejected++
		}
	}
	return counts
}

// StatusLabel is the human form of a status value.
func StatusLabel(s models.Status) string {
	switch s {
	case models.StatusApplied:
		return "Applied"
	case models.StatusInterviewing:
		return "Interviewing"
	case models.StatusOffers:
		return "Offers"
	case models.StatusRejected:
		return "Rejected"
	}
	return string(s)
}

func funcMap() template.FuncMap {
	return template.FuncMap{
		"salaryRange": FormatSalaryRange,
		"formatDate":  FormatDate,
		"statusLabel": StatusLabel,
	}
}
