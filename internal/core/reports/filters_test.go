package reports

import (
	"testing"
	"time"

	"retiree-registry/internal/adapters/persistence/models"
	"retiree-registry/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func names(members []*models.Member) []string {
	out := make([]string, len(members))
	for i, m := range members {
		out[i] = m.FullName
	}
	return out
}

func fixture() []*models.Member {
	return []*models.Member{
		{ID: 1, FullName: "Activo", Status: domain.StatusRetiree, IsActiveMember: true, BirthDate: date(1955, time.May, 10)},
		{ID: 2, FullName: "Inactivo", Status: domain.StatusRetiree, IsActiveMember: false, BirthDate: date(1960, time.May, 10)},
		{ID: 3, FullName: "Fallecido Activo", Status: domain.StatusRetiree, IsActiveMember: true, DeathDate: date(2021, time.March, 10)},
		{ID: 4, FullName: "Viuda", Status: domain.StatusSurvivor, DeathDate: date(2023, time.June, 15), BirthDate: date(1950, time.January, 1)},
		{ID: 5, FullName: "Viudo", Status: domain.StatusSurvivor, DeathDate: date(2019, time.January, 1)},
	}
}

func TestActiveMembers_ExcludesDeceased(t *testing.T) {
	assert.Equal(t, []string{"Activo"}, names(ActiveMembers(fixture())))
}

func TestRetirees(t *testing.T) {
	assert.Equal(t, []string{"Activo", "Inactivo"}, names(Retirees(fixture())))
}

func TestSurvivors(t *testing.T) {
	assert.Equal(t, []string{"Viuda", "Viudo"}, names(Survivors(fixture())))
}

func TestDeceased_SortedByDeathDateDescending(t *testing.T) {
	members := fixture()
	got := Deceased(members)

	dates := make([]string, len(got))
	for i, m := range got {
		dates[i] = m.DeathDate.Format("2006-01-02")
	}
	assert.Equal(t, []string{"2023-06-15", "2021-03-10", "2019-01-01"}, dates)

	// input order untouched
	assert.Equal(t, uint(1), members[0].ID)
	assert.Equal(t, uint(5), members[4].ID)
}

func TestBirthdayMatch(t *testing.T) {
	got, err := BirthdayMatch(fixture(), 10, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"Activo", "Inactivo"}, names(got))

	got, err = BirthdayMatch(fixture(), 31, 2)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestBirthdayMatch_InvalidDayMonth(t *testing.T) {
	for _, tc := range []struct{ day, month int }{{0, 5}, {32, 1}, {10, 0}, {10, 13}} {
		_, err := BirthdayMatch(fixture(), tc.day, tc.month)
		assert.ErrorIs(t, err, domain.ErrInvalidBirthday, "%d/%d", tc.day, tc.month)
	}
}

func TestFilters_EmptyInput(t *testing.T) {
	assert.Empty(t, ActiveMembers(nil))
	assert.Empty(t, Deceased(nil))
}
