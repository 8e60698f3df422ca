package models

import (
	"time"

	"retiree-registry/internal/core/domain"
	"retiree-registry/internal/pkg/dateutil"

	"gorm.io/gorm"
)

// Member represents the members table
type Member struct {
	ID             uint                `gorm:"primaryKey" json:"id"`
	FullName       string              `gorm:"size:255;not null" json:"full_name"`
	NationalID     string              `gorm:"column:national_id;size:20;uniqueIndex;not null" json:"national_id"`
	Status         domain.MemberStatus `gorm:"size:20;not null;index" json:"status"`
	IsActiveMember bool                `gorm:"not null;default:false" json:"is_active_member"`
	DeceasedName   *string             `gorm:"size:255" json:"deceased_name"`
	BirthDate      *time.Time          `gorm:"type:date" json:"birth_date"`
	DeathDate      *time.Time          `gorm:"type:date;index" json:"death_date"`
	Phone          *string             `gorm:"size:20" json:"phone"`
	CreatedAt      time.Time           `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time           `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Member) TableName() string {
	return "members"
}

// MemberResponse DTO. Dates are exposed in both storage and display format.
type MemberResponse struct {
	ID               uint    `json:"id"`
	FullName         string  `json:"full_name"`
	NationalID       string  `json:"national_id"`
	Status           string  `json:"status"`
	IsActiveMember   bool    `json:"is_active_member"`
	DeceasedName     *string `json:"deceased_name"`
	BirthDate        *string `json:"birth_date"`
	BirthDateDisplay string  `json:"birth_date_display"`
	DeathDate        *string `json:"death_date"`
	DeathDateDisplay string  `json:"death_date_display"`
	Phone            *string `json:"phone"`
}

func (m *Member) ToResponse() *MemberResponse {
	return &MemberResponse{
		ID:               m.ID,
		FullName:         m.FullName,
		NationalID:       m.NationalID,
		Status:           string(m.Status),
		IsActiveMember:   m.IsActiveMember,
		DeceasedName:     m.DeceasedName,
		BirthDate:        storageDate(m.BirthDate),
		BirthDateDisplay: dateutil.ToDisplay(m.BirthDate),
		DeathDate:        storageDate(m.DeathDate),
		DeathDateDisplay: dateutil.ToDisplay(m.DeathDate),
		Phone:            m.Phone,
	}
}

// ToResponses converts a slice of members
func ToResponses(members []*Member) []*MemberResponse {
	out := make([]*MemberResponse, len(members))
	for i, m := range members {
		out[i] = m.ToResponse()
	}
	return out
}

// IsDeceased reports whether a death date is recorded
func (m *Member) IsDeceased() bool {
	return m.DeathDate != nil && !m.DeathDate.IsZero()
}

func storageDate(t *time.Time) *string {
	s := dateutil.FormatStorage(t)
	if s == "" {
		return nil
	}
	return &s
}

// AutoMigrate creates or updates the schema
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&Member{})
}
