package services

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"retiree-registry/internal/adapters/persistence/models"
	"retiree-registry/internal/adapters/persistence/repositories"
	"retiree-registry/internal/core/domain"
	"retiree-registry/internal/pkg/dateutil"
	"retiree-registry/internal/pkg/logger"
	"retiree-registry/internal/pkg/metrics"
	"retiree-registry/internal/pkg/pagination"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// MemberInput is a create or update payload. Dates use the DD/MM/YYYY display format.
type MemberInput struct {
	FullName       string `json:"full_name" validate:"max=255"`
	NationalID     string `json:"national_id" validate:"max=20"`
	Status         string `json:"status"`
	IsActiveMember bool   `json:"is_active_member"`
	DeceasedName   string `json:"deceased_name" validate:"max=255"`
	BirthDate      string `json:"birth_date"`
	DeathDate      string `json:"death_date"`
	Phone          string `json:"phone" validate:"max=20"`
}

// BulkDeleteError reports where a bulk delete stopped.
// Ids before FailedID stay deleted; later ids were not attempted.
type BulkDeleteError struct {
	FailedID uint
	Deleted  []uint
	Err      error
}

func (e *BulkDeleteError) Error() string {
	return fmt.Sprintf("delete %d: %v", e.FailedID, e.Err)
}

func (e *BulkDeleteError) Unwrap() error {
	return e.Err
}

// MemberService guards and performs member record writes
type MemberService struct {
	repo     repositories.MemberRepository
	validate *validator.Validate
	metrics  *metrics.Registry
	log      *logger.Logger
}

// NewMemberService creates a new member service
func NewMemberService(repo repositories.MemberRepository, m *metrics.Registry, log *logger.Logger) *MemberService {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		return strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	})

	return &MemberService{
		repo:     repo,
		validate: v,
		metrics:  m,
		log:      log,
	}
}

// Validate applies the record rules and builds the model to persist.
// The returned member has no ID.
func (s *MemberService) Validate(input MemberInput) (*models.Member, error) {
	fullName := strings.TrimSpace(input.FullName)
	nationalID := strings.TrimSpace(input.NationalID)
	rawStatus := strings.TrimSpace(input.Status)

	switch {
	case fullName == "":
		return nil, fmt.Errorf("%w: full_name", domain.ErrMissingField)
	case nationalID == "":
		return nil, fmt.Errorf("%w: national_id", domain.ErrMissingField)
	case rawStatus == "":
		return nil, fmt.Errorf("%w: status", domain.ErrMissingField)
	}

	nationalID = strings.ReplaceAll(nationalID, ".", "")
	if nationalID == "" {
		return nil, fmt.Errorf("%w: national_id", domain.ErrMissingField)
	}

	status, err := domain.ParseMemberStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	birthRaw := strings.TrimSpace(input.BirthDate)
	deathRaw := strings.TrimSpace(input.DeathDate)

	if status == domain.StatusSurvivor && deathRaw == "" {
		return nil, domain.ErrMissingConditionalField
	}

	if !dateutil.IsValidDisplay(birthRaw) {
		return nil, fmt.Errorf("%w: birth_date", domain.ErrInvalidDateFormat)
	}
	if !dateutil.IsValidDisplay(deathRaw) {
		return nil, fmt.Errorf("%w: death_date", domain.ErrInvalidDateFormat)
	}

	birth := dateutil.ToStorage(birthRaw)
	death := dateutil.ToStorage(deathRaw)
	if birth != nil && death != nil && death.Before(*birth) {
		return nil, domain.ErrInvalidDateOrder
	}

	trimmed := MemberInput{
		FullName:     fullName,
		NationalID:   nationalID,
		DeceasedName: strings.TrimSpace(input.DeceasedName),
		Phone:        strings.TrimSpace(input.Phone),
	}
	if err := s.validate.Struct(trimmed); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return nil, fmt.Errorf("%w: %s", domain.ErrFieldTooLong, fieldErrs[0].Field())
		}
		return nil, err
	}

	return &models.Member{
		FullName:       fullName,
		NationalID:     nationalID,
		Status:         status,
		IsActiveMember: input.IsActiveMember,
		DeceasedName:   optional(trimmed.DeceasedName),
		BirthDate:      birth,
		DeathDate:      death,
		Phone:          optional(trimmed.Phone),
	}, nil
}

// Create validates and inserts a member
func (s *MemberService) Create(ctx context.Context, input MemberInput) (*models.Member, error) {
	member, err := s.Validate(input)
	if err != nil {
		s.metrics.ObserveWrite("create", metrics.ResultInvalid)
		return nil, err
	}

	if err := s.repo.Create(ctx, member); err != nil {
		err = s.storeError("create", err)
		s.log.Warnw("Create member failed", "national_id", member.NationalID, "error", err)
		return nil, err
	}

	s.metrics.ObserveWrite("create", metrics.ResultOK)
	s.log.Infow("Member created", "id", member.ID, "national_id", member.NationalID)
	return member, nil
}

// Get returns a member by id
func (s *MemberService) Get(ctx context.Context, id uint) (*models.Member, error) {
	member, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, translateStoreError(err)
	}
	return member, nil
}

// List returns every member in the requested order
func (s *MemberService) List(ctx context.Context, orderBy domain.OrderBy) ([]*models.Member, error) {
	members, err := s.repo.ListAll(ctx, orderBy)
	if err != nil {
		return nil, translateStoreError(err)
	}
	return members, nil
}

// Search finds members by name or national id, one page at a time
func (s *MemberService) Search(ctx context.Context, query string, params pagination.Params) ([]*models.Member, int64, error) {
	members, total, err := s.repo.Search(ctx, query, params.Offset, params.Limit)
	if err != nil {
		return nil, 0, translateStoreError(err)
	}
	return members, total, nil
}

// Update validates and replaces all mutable fields of a member
func (s *MemberService) Update(ctx context.Context, id uint, input MemberInput) (*models.Member, error) {
	member, err := s.Validate(input)
	if err != nil {
		s.metrics.ObserveWrite("update", metrics.ResultInvalid)
		return nil, err
	}
	member.ID = id

	if err := s.repo.Update(ctx, member); err != nil {
		err = s.storeError("update", err)
		s.log.Warnw("Update member failed", "id", id, "error", err)
		return nil, err
	}

	s.metrics.ObserveWrite("update", metrics.ResultOK)
	s.log.Infow("Member updated", "id", id)
	return member, nil
}

// Delete removes a member
func (s *MemberService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return s.storeError("delete", err)
	}

	s.metrics.ObserveWrite("delete", metrics.ResultOK)
	s.log.Infow("Member deleted", "id", id)
	return nil
}

// BulkDelete deletes ids one by one and stops at the first failure,
// returning a *BulkDeleteError. Completed deletes are not rolled back.
func (s *MemberService) BulkDelete(ctx context.Context, ids []uint) ([]uint, error) {
	deleted := make([]uint, 0, len(ids))
	for _, id := range ids {
		if err := s.Delete(ctx, id); err != nil {
			return deleted, &BulkDeleteError{FailedID: id, Deleted: deleted, Err: err}
		}
		deleted = append(deleted, id)
	}
	return deleted, nil
}

// storeError translates a repository error and records the write outcome
func (s *MemberService) storeError(op string, err error) error {
	err = translateStoreError(err)
	switch {
	case errors.Is(err, domain.ErrDuplicateKey):
		s.metrics.ObserveWrite(op, metrics.ResultConflict)
	case errors.Is(err, domain.ErrNotFound):
		s.metrics.ObserveWrite(op, metrics.ResultNotFound)
	default:
		s.metrics.ObserveWrite(op, metrics.ResultError)
	}
	return err
}

// translateStoreError keeps driver error codes away from callers
func translateStoreError(err error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrDuplicateKey
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	default:
		return fmt.Errorf("%w: %v", domain.ErrStorageFailure, err)
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
