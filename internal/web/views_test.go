package web

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/applytrack/applytrack/internal/models"
)

func TestFormatSalaryRange(t *testing.T) {
	min := int64(6000000)
	max := int64(8000000)

	assert.Equal(t, "¥6,000,000 - ¥8,000,000", FormatSalaryRange(&min, &max))
	assert.Equal(t, "¥6,000,000+", FormatSalaryRange(&min, nil))
	assert.Equal(t, "", FormatSalaryRange(nil, nil))
	// a max without a min is not shown either
	assert.Equal(t, "", FormatSalaryRange(nil, &max))
}

func TestFormatDate(t *testing.T) {
	assert.Equal(t, "Jan 10, 2024", FormatDate("2024-01-10"))
	assert.Equal(t, "Dec 3, 2025", FormatDate("2025-12-03"))
	assert.Equal(t, "not-a-date", FormatDate("not-a-date"))
}

func TestCountByStatus(t *testing.T) {
	apps := []models.JobApplication{
		{Status: models.StatusApplied},
		{Status: models.StatusApplied},
		{Status: models.StatusInterviewing},
		{Status: models.StatusRejected},
	}

	counts := CountByStatus(apps)
	assert.Equal(t, 4, counts.Total)
	assert.Equal(t, 2, counts.Applied)
	assert.Equal(t, 1, counts.Interviewing)
	assert.Equal(t, 0, counts.Offers)
	assert.Equal(t, 1, counts.Rejected)

	// moving one record from applied to offers shifts exactly one count
	apps[0].Status = models.StatusOffers
	counts = CountByStatus(apps)
	assert.Equal(t, 4, counts.Total)
	assert.Equal(t, 1, counts.Applied)
	assert.Equal(t, 1, counts.Offers)
}

func TestCountByStatusEmpty(t *testing.T) {
	counts := CountByStatus(nil)
	assert.Equal(t, StatusCounts{}, counts)
}

func TestRendererParsesTemplates(t *testing.T) {
	_, err := NewRenderer()
	assert.NoError(t, err)
}
