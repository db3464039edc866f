package services

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mertc/coursehub/internal/app/models"
	"github.com/mertc/coursehub/internal/app/models/dto"
	"github.com/mertc/coursehub/internal/pkg/apperrors"
)

// fakeRoleStore keeps roles in memory and mimics the repository's
// NameExistsExcluding semantics.
type fakeRoleStore struct {
	roles       map[int64]*models.Role
	nextID      int64
	createCalls int
	updateCalls int
}

func newFakeRoleStore(roles ...*models.Role) *fakeRoleStore {
	s := &fakeRoleStore{roles: map[int64]*models.Role{}, nextID: 1}
	for _, r := range roles {
		s.roles[r.ID] = r
		if r.ID >= s.nextID {
			s.nextID = r.ID + 1
		}
	}
	return s
}

func (s *fakeRoleStore) Create(ctx context.Context, role *models.Role) (int64, error) {
	s.createCalls++
	id := s.nextID
	s.nextID++
	stored := *role
	stored.ID = id
	s.roles[id] = &stored
	return id, nil
}

func (s *fakeRoleStore) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	role, ok := s.roles[id]
	if !ok {
		return nil, apperrors.ErrRoleNotFound
	}
	copied := *role
	return &copied, nil
}

func (s *fakeRoleStore) GetAll(ctx context.Context) ([]*models.Role, error) {
	var out []*models.Role
	for _, r := range s.roles {
		copied := *r
		out = append(out, &copied)
	}
	return out, nil
}

func (s *fakeRoleStore) NameExistsExcluding(ctx context.Context, name string, excludeID int64) (bool, error) {
	for _, r := range s.roles {
		if r.Name == name && r.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeRoleStore) Update(ctx context.Context, role *models.Role) error {
	s.updateCalls++
	if _, ok := s.roles[role.ID]; !ok {
		return apperrors.ErrRoleNotFound
	}
	copied := *role
	s.roles[role.ID] = &copied
	return nil
}

func (s *fakeRoleStore) Delete(ctx context.Context, id int64) error {
	if _, ok := s.roles[id]; !ok {
		return apperrors.ErrRoleNotFound
	}
	delete(s.roles, id)
	return nil
}

// fakeUserCounts maps role ID to the number of users holding it.
type fakeUserCounts map[int64]int64

func (f fakeUserCounts) CountByRole(ctx context.Context, roleID int64) (int64, error) {
	return f[roleID], nil
}

func newRoleServiceForTest(store *fakeRoleStore) *RoleService {
	return NewRoleService(store, fakeUserCounts{}, zerolog.Nop())
}

func TestRoleServiceCreateRejectsDuplicateName(t *testing.T) {
	store := newFakeRoleStore(&models.Role{ID: 1, Name: "admin"})
	svc := newRoleServiceForTest(store)

	_, err := svc.Create(context.Background(), &dto.CreateRoleRequest{Name: "admin"})
	if !errors.Is(err, apperrors.ErrRoleNameTaken) {
		t.Fatalf("expected ErrRoleNameTaken, got %v", err)
	}
	if store.createCalls != 0 {
		t.Fatalf("expected no create call after failed uniqueness check, got %d", store.createCalls)
	}
}

func TestRoleServiceCreateUniqueName(t *testing.T) {
	store := newFakeRoleStore(&models.Role{ID: 1, Name: "admin"})
	svc := newRoleServiceForTest(store)

	role, err := svc.Create(context.Background(), &dto.CreateRoleRequest{Name: "moderator"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if role.ID == 0 {
		t.Fatal("expected role to be assigned an ID")
	}
	if role.Name != "moderator" {
		t.Fatalf("expected name %q, got %q", "moderator", role.Name)
	}
}

func TestRoleServiceUpdateKeepingOwnNameSucceeds(t *testing.T) {
	store := newFakeRoleStore(
		&models.Role{ID: 1, Name: "admin"},
		&models.Role{ID: 2, Name: "student"},
	)
	svc := newRoleServiceForTest(store)

	// Renaming a role to its own current name must not count as a conflict
	role, err := svc.Update(context.Background(), 2, &dto.UpdateRoleRequest{Name: "student"})
	if err != nil {
		t.Fatalf("unexpected error updating role under its own name: %v", err)
	}
	if role.Name != "student" {
		t.Fatalf("expected name %q, got %q", "student", role.Name)
	}
	if store.updateCalls != 1 {
		t.Fatalf("expected one update call, got %d", store.updateCalls)
	}
}

func TestRoleServiceUpdateRejectsNameOfAnotherRole(t *testing.T) {
	store := newFakeRoleStore(
		&models.Role{ID: 1, Name: "admin"},
		&models.Role{ID: 2, Name: "student"},
	)
	svc := newRoleServiceForTest(store)

	_, err := svc.Update(context.Background(), 2, &dto.UpdateRoleRequest{Name: "admin"})
	if !errors.Is(err, apperrors.ErrRoleNameTaken) {
		t.Fatalf("expected ErrRoleNameTaken, got %v", err)
	}
	if store.updateCalls != 0 {
		t.Fatalf("expected no update call after conflict, got %d", store.updateCalls)
	}
}

func TestRoleServiceDeleteRejectsRoleInUse(t *testing.T) {
	store := newFakeRoleStore(&models.Role{ID: 2, Name: "student"})
	svc := NewRoleService(store, fakeUserCounts{2: 5}, zerolog.Nop())

	err := svc.Delete(context.Background(), 2)
	if !errors.Is(err, apperrors.ErrRoleInUse) {
		t.Fatalf("expected ErrRoleInUse, got %v", err)
	}
	if _, ok := store.roles[2]; !ok {
		t.Fatal("role must not be deleted while assigned to users")
	}
}

func TestRoleServiceDeleteUnusedRole(t *testing.T) {
	store := newFakeRoleStore(&models.Role{ID: 4, Name: "moderator"})
	svc := newRoleServiceForTest(store)

	if err := svc.Delete(context.Background(), 4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.roles[4]; ok {
		t.Fatal("expected role to be deleted")
	}
}

func TestRoleServiceUpdateMissingRole(t *testing.T) {
	store := newFakeRoleStore()
	svc := newRoleServiceForTest(store)

	_, err := svc.Update(context.Background(), 99, &dto.UpdateRoleRequest{Name: "anything"})
	if !errors.Is(err, apperrors.ErrRoleNotFound) {
		t.Fatalf("expected ErrRoleNotFound, got %v", err)
	}
}
