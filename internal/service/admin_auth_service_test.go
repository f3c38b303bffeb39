package service

import (
	"testing"

	"citabot/internal/repository"
)

type fakeAdminRepo struct {
	admins  map[string]*repository.Admin
	creates int
}

func newFakeAdminRepo() *fakeAdminRepo {
	return &fakeAdminRepo{admins: map[string]*repository.Admin{}}
}

func (f *fakeAdminRepo) GetByEmail(email string) (*repository.Admin, error) {
	return f.admins[email], nil
}

func (f *fakeAdminRepo) CreateAdmin(email, password string) error {
	f.creates++
	f.admins[email] = &repository.Admin{ID: f.creates, Email: email, PasswordHash: password}
	return nil
}

func TestEnsureAdmin_SeedsMissingAccount(t *testing.T) {
	repo := newFakeAdminRepo()
	svc := NewAdminAuthService(repo)

	if err := svc.EnsureAdmin("owner@example.com", "s3cret"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.creates != 1 {
		t.Fatalf("expected 1 create, got %d", repo.creates)
	}

	// Seeding again must leave the existing account alone.
	if err := svc.EnsureAdmin("owner@example.com", "changed"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.creates != 1 {
		t.Fatalf("expected no second create, got %d", repo.creates)
	}
	if repo.admins["owner@example.com"].PasswordHash != "s3cret" {
		t.Fatal("existing account must not be overwritten")
	}
}

func TestEnsureAdmin_RejectsEmptyPassword(t *testing.T) {
	svc := NewAdminAuthService(newFakeAdminRepo())
	if err := svc.EnsureAdmin("owner@example.com", ""); err == nil {
		t.Fatal("expected error for empty password")
	}
}
