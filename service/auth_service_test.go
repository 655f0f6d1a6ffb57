package service

import (
	"context"
	"errors"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restaurant-api/models"
	"restaurant-api/repository"
)

func newAuthService(t *testing.T) *AuthService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return NewAuthService(repository.NewGormUserRepository(db))
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, RegisterInput{Name: "Ana", Email: "ana@resto.ec", Password: "secret1", Role: models.RoleAdmin})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if u.PasswordHash == "secret1" || u.PasswordHash == "" {
		t.Fatalf("password stored in clear")
	}

	got, err := svc.Login(ctx, "ana@resto.ec", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.ID != u.ID || got.Role != models.RoleAdmin {
		t.Fatalf("user = %+v", got)
	}

	if _, err := svc.Login(ctx, "ana@resto.ec", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "nobody@resto.ec", "secret1"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	in := RegisterInput{Name: "Ana", Email: "ana@resto.ec", Password: "secret1", Role: models.RoleWaiter}
	if _, err := svc.Register(ctx, in); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := svc.Register(ctx, in)
	var conflict *ConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("err = %v, want ConflictError", err)
	}
}

func TestAuthService_ProfileUnknown(t *testing.T) {
	svc := newAuthService(t)
	_, err := svc.Profile(context.Background(), 77)
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want NotFoundError", err)
	}
}

func TestAuthService_EnsureAdminIsIdempotent(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	created, err := svc.EnsureAdmin(ctx, "Root", "root@resto.ec", "secret1")
	if err != nil || !created {
		t.Fatalf("EnsureAdmin = %v, %v; want created", created, err)
	}
	created, err = svc.EnsureAdmin(ctx, "Root", "root@resto.ec", "other-pass")
	if err != nil || created {
		t.Fatalf("second EnsureAdmin = %v, %v; want no-op", created, err)
	}

	u, err := svc.Login(ctx, "root@resto.ec", "secret1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if u.Role != models.RoleAdmin {
		t.Fatalf("role = %q, want admin", u.Role)
	}
}
