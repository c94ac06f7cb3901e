package testutil

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/teamdispo/dispo/internal/domain/availability"
	"github.com/teamdispo/dispo/internal/domain/dailycheck"
	"github.com/teamdispo/dispo/internal/domain/user"
	"github.com/teamdispo/dispo/internal/pkg/errors"
)

// MockUserRepository is a mock implementation of user.Repository
type MockUserRepository struct {
	Users         map[int64]*user.User
	UsernameIndex map[string]*user.User
	NextID        int64
	CreateError   error
	GetError      error
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{
		Users:         make(map[int64]*user.User),
		UsernameIndex: make(map[string]*user.User),
		NextID:        1,
	}
}

func (m *MockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	u.ID = m.NextID
	m.NextID++
	u.CreatedAt = time.Now().UTC()
	u.UpdatedAt = u.CreatedAt
	m.Users[u.ID] = u
	m.UsernameIndex[u.Username] = u
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	u, ok := m.Users[id]
	if !ok {
		return nil, errors.NotFound("User")
	}
	return u, nil
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	u, ok := m.UsernameIndex[username]
	if !ok {
		return nil, errors.NotFound("User")
	}
	return u, nil
}

func (m *MockUserRepository) List(ctx context.Context) ([]*user.User, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	result := make([]*user.User, 0, len(m.Users))
	for _, u := range m.Users {
		result = append(result, u)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

// MockAvailabilityRepository is a mock implementation of
// availability.Repository. Replace honors the same overlap semantics as
// the real store. Owners supplies the identity joined onto List results.
type MockAvailabilityRepository struct {
	Declarations map[int64]*availability.Declaration
	Owners       map[int64]availability.Owner
	NextID       int64
	ReplaceError error
	ListError    error
	DeleteError  error
}

func NewMockAvailabilityRepository() *MockAvailabilityRepository {
	return &MockAvailabilityRepository{
		Declarations: make(map[int64]*availability.Declaration),
		Owners:       make(map[int64]availability.Owner),
		NextID:       1,
	}
}

func (m *MockAvailabilityRepository) Replace(ctx context.Context, d *availability.Declaration) error {
	if m.ReplaceError != nil {
		return m.ReplaceError
	}
	for id, existing := range m.Declarations {
		if existing.UserID == d.UserID && existing.Range().Overlaps(d.Range()) {
			delete(m.Declarations, id)
		}
	}
	d.ID = m.NextID
	m.NextID++
	d.CreatedAt = time.Now().UTC()
	d.UpdatedAt = d.CreatedAt
	m.Declarations[d.ID] = d
	return nil
}

func (m *MockAvailabilityRepository) List(ctx context.Context, f availability.Filter) ([]*availability.Entry, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	var result []*availability.Entry
	for _, d := range m.Declarations {
		if f.Window != nil && !d.Range().Overlaps(*f.Window) {
			continue
		}
		if f.CoversDate != nil && !d.Range().Contains(*f.CoversDate) {
			continue
		}
		if f.OnSiteLodging != nil && d.OnSiteLodging != *f.OnSiteLodging {
			continue
		}
		if f.ExcludeStatus != "" && d.Status == f.ExcludeStatus {
			continue
		}
		result = append(result, &availability.Entry{
			Declaration: *d,
			Owner:       m.Owners[d.UserID],
		})
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartDate.Equal(result[j].StartDate) {
			return result[i].StartDate.Before(result[j].StartDate)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *MockAvailabilityRepository) ListByOwner(ctx context.Context, userID int64) ([]*availability.Declaration, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	var result []*availability.Declaration
	for _, d := range m.Declarations {
		if d.UserID == userID {
			result = append(result, d)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].StartDate.Equal(result[j].StartDate) {
			return result[i].StartDate.Before(result[j].StartDate)
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

func (m *MockAvailabilityRepository) Delete(ctx context.Context, userID, id int64) error {
	if m.DeleteError != nil {
		return m.DeleteError
	}
	d, ok := m.Declarations[id]
	if !ok || d.UserID != userID {
		return errors.NotFound("Declaration")
	}
	delete(m.Declarations, id)
	return nil
}

func (m *MockAvailabilityRepository) PruneEndedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	var pruned int64
	for id, d := range m.Declarations {
		if d.EndDate.Before(cutoff) {
			delete(m.Declarations, id)
			pruned++
		}
	}
	return pruned, nil
}

// MockDailyCheckRepository is a mock implementation of dailycheck.Repository
type MockDailyCheckRepository struct {
	Checks      map[int64]*dailycheck.Check
	Owners      map[int64]dailycheck.Owner
	NextID      int64
	CreateError error
	GetError    error
}

func NewMockDailyCheckRepository() *MockDailyCheckRepository {
	return &MockDailyCheckRepository{
		Checks: make(map[int64]*dailycheck.Check),
		Owners: make(map[int64]dailycheck.Owner),
		NextID: 1,
	}
}

func (m *MockDailyCheckRepository) Create(ctx context.Context, c *dailycheck.Check) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	for _, existing := range m.Checks {
		if existing.UserID == c.UserID && existing.Date.Equal(c.Date) {
			return fmt.Errorf("check already exists for %s", c.Date.Format("2006-01-02"))
		}
	}
	c.ID = m.NextID
	m.NextID++
	c.CreatedAt = time.Now().UTC()
	m.Checks[c.ID] = c
	return nil
}

func (m *MockDailyCheckRepository) GetForDate(ctx context.Context, userID int64, date time.Time) (*dailycheck.Check, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	for _, c := range m.Checks {
		if c.UserID == userID && c.Date.Equal(date) {
			return c, nil
		}
	}
	return nil, errors.NotFound("Daily check")
}

func (m *MockDailyCheckRepository) ListByDate(ctx context.Context, date time.Time) ([]*dailycheck.Entry, error) {
	if m.GetError != nil {
		return nil, m.GetError
	}
	var result []*dailycheck.Entry
	for _, c := range m.Checks {
		if c.Date.Equal(date) {
			result = append(result, &dailycheck.Entry{
				Check: *c,
				Owner: m.Owners[c.UserID],
			})
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}
