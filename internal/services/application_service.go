package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/applytrack/applytrack/internal/database"
	"github.com/applytrack/applytrack/internal/dtos"
	"github.com/applytrack/applytrack/internal/models"
)

// ApplicationService owns all record-store access for job applications.
// Every query is scoped to the owning user; one store round-trip per
// mutation, no transactions spanning records.
type ApplicationService struct {
	DB *database.DB
}

func NewApplicationService(db *database.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Ready reports the misconfiguration error, if any, without hitting the
// store. Handlers call it first so an unset endpoint or key is reported
// even to unauthenticated callers.
func (s *ApplicationService) Ready() error {
	return s.DB.ConfigError()
}

// List returns the user's applications, newest first. An empty store
// yields an empty slice, never nil.
func (s *ApplicationService) List(ctx context.Context, userID string) ([]models.JobApplication, error) {
	conn, err := s.DB.Handle()
	if err != nil {
		return nil, err
	}
	var apps []models.JobApplication
	err = conn.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	if apps == nil {
		apps = []models.JobApplication{}
	}
	return apps, nil
}

func (s *ApplicationService) Get(ctx context.Context, userID, id string) (*models.JobApplication, error) {
	conn, err := s.DB.Handle()
	if err != nil {
		return nil, err
	}
	var app models.JobApplication
	err = conn.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// Create stamps ownership, id and timestamps, then inserts. Status
// defaults to "applied" when the payload leaves it empty.
func (s *ApplicationService) Create(ctx context.Context, userID string, req *dtos.ApplicationRequest) (*models.JobApplication, error) {
	conn, err := s.DB.Handle()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	app := &models.JobApplication{
		ID:              uuid.New().String(),
		CreatedAt:       now,
		UpdatedAt:       now,
		UserID:          userID,
		JobTitle:        req.JobTitle,
		CompanyName:     req.CompanyName,
		Location:        req.Location,
		ApplicationDate: req.ApplicationDate,
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		Status:          req.Status,
		Notes:           req.Notes,
	}
	if app.Status == "" {
		app.Status = models.StatusApplied
	}

	if err := conn.WithContext(ctx).Create(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

// Update replaces all editable fields and refreshes updated_at. The
// outcome is the store's: a missing id surfaces as ErrNotFound.
func (s *ApplicationService) Update(ctx context.Context, userID, id string, req *dtos.ApplicationRequest) (*models.JobApplication, error) {
	conn, err := s.DB.Handle()
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.StatusApplied
	}
	values := map[string]any{
		"job_title":        req.JobTitle,
		"company_name":     req.CompanyName,
		"location":         req.Location,
		"application_date": req.ApplicationDate,
		"salary_min":       req.SalaryMin,
		"salary_max":       req.SalaryMax,
		"status":           status,
		"notes":            req.Notes,
		"updated_at":       time.Now(),
	}

	res := conn.WithContext(ctx).
		Model(&models.JobApplication{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(values)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.Get(ctx, userID, id)
}

// Delete removes the record if it exists. Deleting an id that does not
// match anything is not an error; delete is idempotent to the caller.
func (s *ApplicationService) Delete(ctx context.Context, userID, id string) error {
	conn, err := s.DB.Handle()
	if err != nil {
		return err
	}
	return conn.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.JobApplication{}).Error
}
