package repositories

import (
	"context"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"retiree-registry/internal/adapters/persistence/models"
	"retiree-registry/internal/core/domain"

	"gorm.io/gorm"
)

var digitRun = regexp.MustCompile(`\d+`)

// memberRepository implements MemberRepository interface
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create inserts a member and fills its ID
func (r *memberRepository) Create(ctx context.Context, member *models.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// GetByID gets a member by ID
func (r *memberRepository) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		return nil, err
	}
	return &member, nil
}

// ListAll returns every member in the requested order
func (r *memberRepository) ListAll(ctx context.Context, orderBy domain.OrderBy) ([]*models.Member, error) {
	query := r.db.WithContext(ctx)
	switch orderBy {
	case domain.OrderByName:
		query = query.Order("full_name ASC").Order("id ASC")
	default:
		query = query.Order("id ASC")
	}

	var members []*models.Member
	if err := query.Find(&members).Error; err != nil {
		return nil, err
	}

	if orderBy == domain.OrderByNationalID || orderBy == "" {
		SortByNationalID(members)
	}
	return members, nil
}

// Update replaces all mutable columns of the member identified by member.ID
// in a single statement, then reloads it.
func (r *memberRepository) Update(ctx context.Context, member *models.Member) error {
	db := r.db.WithContext(ctx)

	res := db.Model(&models.Member{}).
		Where("id = ?", member.ID).
		Updates(map[string]interface{}{
			"full_name":        member.FullName,
			"national_id":      member.NationalID,
			"status":           string(member.Status),
			"is_active_member": member.IsActiveMember,
			"deceased_name":    member.DeceasedName,
			"birth_date":       member.BirthDate,
			"death_date":       member.DeathDate,
			"phone":            member.Phone,
		})
	if res.Error != nil {
		return res.Error
	}

	// MySQL reports 0 affected rows when nothing changed, so confirm existence
	if res.RowsAffected == 0 {
		var count int64
		if err := db.Model(&models.Member{}).Where("id = ?", member.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}
	}

	return db.Where("id = ?", member.ID).First(member).Error
}

// Delete removes a member by ID
func (r *memberRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Member{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Search matches the name case-insensitively or the national id ignoring periods
func (r *memberRepository) Search(ctx context.Context, query string, offset, limit int) ([]*models.Member, int64, error) {
	nameLike := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	idLike := "%" + strings.ReplaceAll(strings.TrimSpace(query), ".", "") + "%"

	scope := func(db *gorm.DB) *gorm.DB {
		return db.Where("LOWER(full_name) LIKE ? OR national_id LIKE ?", nameLike, idLike)
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Member{}).Scopes(scope).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []*models.Member
	err := r.db.WithContext(ctx).
		Scopes(scope).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&members).Error
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

// DeleteAll empties the table and returns the number of removed rows
func (r *memberRepository) DeleteAll(ctx context.Context) (int64, error) {
	res := r.db.WithContext(ctx).Where("1 = 1").Delete(&models.Member{})
	return res.RowsAffected, res.Error
}

// NationalIDNumber extracts the first run of digits of a national id,
// so "V-12345678" sorts as 12345678. Ids without digits sort as 0.
func NationalIDNumber(nationalID string) int64 {
	digits := digitRun.FindString(strings.ReplaceAll(nationalID, ".", ""))
	if digits == "" {
		return 0
	}
	n, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// SortByNationalID orders members by NationalIDNumber, ties broken by ID
func SortByNationalID(members []*models.Member) {
	sort.SliceStable(members, func(i, j int) bool {
		a, b := NationalIDNumber(members[i].NationalID), NationalIDNumber(members[j].NationalID)
		if a != b {
			return a < b
		}
		return members[i].ID < members[j].ID
	})
}
