package testutil

import (
	"context"
	"strings"
	"sync"

	"retiree-registry/internal/adapters/persistence/models"
	"retiree-registry/internal/adapters/persistence/repositories"
	"retiree-registry/internal/core/domain"

	"gorm.io/gorm"
)

// InMemoryMemberStore implements repositories.MemberRepository with the
// same error contract as the gorm store: gorm.ErrRecordNotFound and
// gorm.ErrDuplicatedKey.
type InMemoryMemberStore struct {
	mu      sync.Mutex
	nextID  uint
	members map[uint]models.Member

	// FailOn makes the named operation ("create", "update", "delete", ...)
	// return the error, optionally only for one id (0 = any).
	FailOn   map[string]error
	FailOnID uint
	Calls    []string
}

var _ repositories.MemberRepository = (*InMemoryMemberStore)(nil)

func NewInMemoryMemberStore() *InMemoryMemberStore {
	return &InMemoryMemberStore{
		nextID:  1,
		members: make(map[uint]models.Member),
		FailOn:  make(map[string]error),
	}
}

func (s *InMemoryMemberStore) fail(op string, id uint) error {
	s.Calls = append(s.Calls, op)
	err, ok := s.FailOn[op]
	if !ok {
		return nil
	}
	if s.FailOnID != 0 && s.FailOnID != id {
		return nil
	}
	return err
}

func (s *InMemoryMemberStore) nationalIDTaken(nationalID string, except uint) bool {
	for id, m := range s.members {
		if id != except && m.NationalID == nationalID {
			return true
		}
	}
	return false
}

func (s *InMemoryMemberStore) Create(ctx context.Context, member *models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("create", 0); err != nil {
		return err
	}
	if s.nationalIDTaken(member.NationalID, 0) {
		return gorm.ErrDuplicatedKey
	}
	member.ID = s.nextID
	s.nextID++
	s.members[member.ID] = *member
	return nil
}

func (s *InMemoryMemberStore) GetByID(ctx context.Context, id uint) (*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("get", id); err != nil {
		return nil, err
	}
	m, ok := s.members[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &m, nil
}

func (s *InMemoryMemberStore) ListAll(ctx context.Context, orderBy domain.OrderBy) ([]*models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("list", 0); err != nil {
		return nil, err
	}
	out := make([]*models.Member, 0, len(s.members))
	for id := uint(1); id < s.nextID; id++ {
		if m, ok := s.members[id]; ok {
			out = append(out, &m)
		}
	}
	if orderBy == domain.OrderByNationalID || orderBy == "" {
		repositories.SortByNationalID(out)
	}
	return out, nil
}

func (s *InMemoryMemberStore) Update(ctx context.Context, member *models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("update", member.ID); err != nil {
		return err
	}
	if _, ok := s.members[member.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	if s.nationalIDTaken(member.NationalID, member.ID) {
		return gorm.ErrDuplicatedKey
	}
	s.members[member.ID] = *member
	return nil
}

func (s *InMemoryMemberStore) Delete(ctx context.Context, id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("delete", id); err != nil {
		return err
	}
	if _, ok := s.members[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(s.members, id)
	return nil
}

func (s *InMemoryMemberStore) Search(ctx context.Context, query string, offset, limit int) ([]*models.Member, int64, error) {
	all, err := s.ListAll(ctx, domain.OrderByID)
	if err != nil {
		return nil, 0, err
	}
	name := strings.ToLower(strings.TrimSpace(query))
	id := strings.ReplaceAll(strings.TrimSpace(query), ".", "")

	var matched []*models.Member
	for _, m := range all {
		if strings.Contains(strings.ToLower(m.FullName), name) || strings.Contains(m.NationalID, id) {
			matched = append(matched, m)
		}
	}
	total := int64(len(matched))
	if offset >= len(matched) {
		return []*models.Member{}, total, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[offset:end], total, nil
}

func (s *InMemoryMemberStore) DeleteAll(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.fail("delete_all", 0); err != nil {
		return 0, err
	}
	n := int64(len(s.members))
	s.members = make(map[uint]models.Member)
	return n, nil
}

// Len returns the number of stored members
func (s *InMemoryMemberStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.members)
}
