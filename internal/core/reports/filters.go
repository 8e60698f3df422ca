// Package reports selects and orders the members that appear in each report.
// Every function is pure: no I/O, the input slice is never modified.
package reports

import (
	"sort"

	"retiree-registry/internal/adapters/persistence/models"
	"retiree-registry/internal/core/domain"
	"retiree-registry/internal/pkg/dateutil"

	"github.com/samber/lo"
)

// ActiveMembers returns living retirees flagged as active association members
func ActiveMembers(members []*models.Member) []*models.Member {
	return lo.Filter(members, func(m *models.Member, _ int) bool {
		return m.Status == domain.StatusRetiree && !m.IsDeceased() && m.IsActiveMember
	})
}

// Retirees returns living retirees
func Retirees(members []*models.Member) []*models.Member {
	return lo.Filter(members, func(m *models.Member, _ int) bool {
		return m.Status == domain.StatusRetiree && !m.IsDeceased()
	})
}

// Survivors returns every member with survivor status
func Survivors(members []*models.Member) []*models.Member {
	return lo.Filter(members, func(m *models.Member, _ int) bool {
		return m.Status == domain.StatusSurvivor
	})
}

// Deceased returns members with a recorded death date, most recent first
func Deceased(members []*models.Member) []*models.Member {
	out := lo.Filter(members, func(m *models.Member, _ int) bool {
		return m.IsDeceased()
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DeathDate.After(*out[j].DeathDate)
	})
	return out
}

// ValidateDayMonth checks the lenient range month 1..12, day 1..31.
// 31/02 passes; it simply matches nobody.
func ValidateDayMonth(day, month int) error {
	if !dateutil.ValidDayMonth(day, month) {
		return domain.ErrInvalidBirthday
	}
	return nil
}

// BirthdayMatch returns members born on the given day and month of any year
func BirthdayMatch(members []*models.Member, day, month int) ([]*models.Member, error) {
	if err := ValidateDayMonth(day, month); err != nil {
		return nil, err
	}
	return lo.Filter(members, func(m *models.Member, _ int) bool {
		return m.BirthDate != nil && !m.BirthDate.IsZero() &&
			int(m.BirthDate.Month()) == month && m.BirthDate.Day() == day
	}), nil
}
