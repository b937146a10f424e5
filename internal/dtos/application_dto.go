package dtos

import "github.com/applytrack/applytrack/internal/models"

// ApplicationRequest is the create/update payload. Updates are full
// replacements: every editable field is resent, partial bodies are not
// supported.
type ApplicationRequest struct {
	JobTitle        string `json:"job_title" binding:"required"`
	CompanyName     string `json:"company_name" binding:"required"`
	Location        string `json:"location" binding:"required"`
	ApplicationDate string `json:"application_date" binding:"required"`

	// Optional Fields
	SalaryMin *int64        `json:"salary_min" binding:"omitempty,gte=0"`
	SalaryMax *int64        `json:"salary_max" binding:"omitempty,gte=0"`
	Status    models.Status `json:"status" binding:"omitempty,oneof=applied interviewing offers rejected"` // Defaults to "applied" if empty
	Notes     *string       `json:"notes"`
}

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
