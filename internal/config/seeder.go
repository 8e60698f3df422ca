package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"retiree-registry/internal/adapters/persistence/models"
	"retiree-registry/internal/adapters/persistence/repositories"
	"retiree-registry/internal/core/domain"
	"retiree-registry/internal/pkg/logger"

	"github.com/Pallinder/go-randomdata"
	"gorm.io/gorm"
)

// SeedResult summarizes a demo seeding run
type SeedResult struct {
	Removed  int64
	Inserted int
	Skipped  int
}

// Seeder fills the member table with random demo records.
// Development only: Run wipes the table first.
type Seeder struct {
	repo repositories.MemberRepository
	log  *logger.Logger
	now  func() time.Time
}

// NewSeeder creates a new seeder instance
func NewSeeder(repo repositories.MemberRepository, log *logger.Logger) *Seeder {
	return &Seeder{repo: repo, log: log, now: time.Now}
}

// Run resets the table and inserts count random members.
// Random national ids that collide are skipped, not retried.
func (s *Seeder) Run(ctx context.Context, count int) (*SeedResult, error) {
	s.log.Infow("🌱 Seeding demo members", "count", count)

	removed, err := s.Reset(ctx)
	if err != nil {
		return nil, err
	}

	result := &SeedResult{Removed: removed}
	for i := 0; i < count; i++ {
		member := s.randomMember()
		if err := s.repo.Create(ctx, member); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				result.Skipped++
				continue
			}
			return result, fmt.Errorf("seed member %d: %w", i+1, err)
		}
		result.Inserted++
	}

	s.log.Infow("✅ Demo seeding completed",
		"removed", result.Removed,
		"inserted", result.Inserted,
		"skipped", result.Skipped,
	)
	return result, nil
}

// Reset deletes every member
func (s *Seeder) Reset(ctx context.Context) (int64, error) {
	removed, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("reset members: %w", err)
	}
	return removed, nil
}

// randomMember builds one member: 70% retirees aged 50-80, the rest
// survivors of someone who died in the last ten years aged 58-90.
func (s *Seeder) randomMember() *models.Member {
	today := s.now().UTC()
	gender := randomdata.Female
	if randomdata.Boolean() {
		gender = randomdata.Male
	}

	member := &models.Member{
		FullName:       personName(gender),
		NationalID:     fmt.Sprintf("V-%d", randomdata.Number(1000000, 30000001)),
		Status:         domain.StatusRetiree,
		IsActiveMember: randomdata.Boolean(),
		Phone:          strPtr(fmt.Sprintf("041%d-%d", randomdata.Number(2, 7), randomdata.Number(1000000, 10000000))),
	}

	if randomdata.Number(0, 100) < 70 {
		birth := randomDate(today.Year() - randomdata.Number(50, 81))
		member.BirthDate = &birth
		return member
	}

	member.Status = domain.StatusSurvivor
	death := today.AddDate(0, 0, -randomdata.Number(0, 3651))
	death = time.Date(death.Year(), death.Month(), death.Day(), 0, 0, 0, 0, time.UTC)
	birth := randomDate(death.Year() - randomdata.Number(58, 91))
	member.DeathDate = &death
	member.BirthDate = &birth

	deceasedGender := randomdata.Female
	if gender == randomdata.Female {
		deceasedGender = randomdata.Male
	}
	member.DeceasedName = strPtr(personName(deceasedGender))
	return member
}

func personName(gender int) string {
	return fmt.Sprintf("%s %s %s", randomdata.FirstName(gender), randomdata.LastName(), randomdata.LastName())
}

// randomDate picks a day 1-28 so every month is valid
func randomDate(year int) time.Time {
	return time.Date(year, time.Month(randomdata.Number(1, 13)), randomdata.Number(1, 29), 0, 0, 0, 0, time.UTC)
}

func strPtr(s string) *string {
	return &s
}
