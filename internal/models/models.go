package models

import (
	"time"
)

// Status is the stage a job application is currently in.
type Status string

const (
	StatusApplied      Status = "applied"
	StatusInterviewing Status = "interviewing"
	StatusOffers       Status = "offers"
	StatusRejected     Status = "rejected"
)

// Valid reports whether s is one of the four known stages.
func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusInterviewing, StatusOffers, StatusRejected:
		return true
	}
	return false
}

type User struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
}

// JobApplication is one tracked application. Rows are scoped to the user
// that created them; deletes are hard deletes, there is no tombstone.
type JobApplication struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID string `gorm:"index;not null" json:"-"`

	JobTitle    string `gorm:"not null" json:"job_title"`
	CompanyName string `gorm:"not null" json:"company_name"`
	Location    string `gorm:"not null" json:"location"`
	// Calendar date in YYYY-MM-DD form, which is also the wire format.
	ApplicationDate string  `gorm:"not null" json:"application_date"`
	SalaryMin       *int64  `json:"salary_min"`
	SalaryMax       *int64  `json:"salary_max"`
	Status          Status  `gorm:"default:'applied';not null" json:"status"`
	Notes           *string `gorm:"type:text" json:"notes"`
}
