package user

import (
	"context"
	"testing"

	usererrors "github.com/pedrodese/Check-Time/internal/user/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeRepo struct {
	createFn             func(ctx context.Context, u *User) error
	findByIDFn           func(ctx context.Context, id string) (*User, error)
	findByRegistrationFn func(ctx context.Context, registration string) (*User, error)
	findAllFn            func(ctx context.Context) ([]User, error)
	countByRoleFn        func(ctx context.Context, role string) (int64, error)
	updateFn             func(ctx context.Context, u *User) error
	deleteFn             func(ctx context.Context, u *User) error
}

func (f *fakeRepo) Create(ctx context.Context, u *User) error { return f.createFn(ctx, u) }
func (f *fakeRepo) FindByID(ctx context.Context, id string) (*User, error) {
	return f.findByIDFn(ctx, id)
}
func (f *fakeRepo) FindByRegistration(ctx context.Context, registration string) (*User, error) {
	return f.findByRegistrationFn(ctx, registration)
}
func (f *fakeRepo) FindAll(ctx context.Context) ([]User, error) { return f.findAllFn(ctx) }
func (f *fakeRepo) CountByRole(ctx context.Context, role string) (int64, error) {
	return f.countByRoleFn(ctx, role)
}
func (f *fakeRepo) Update(ctx context.Context, u *User) error { return f.updateFn(ctx, u) }
func (f *fakeRepo) Delete(ctx context.Context, u *User) error { return f.deleteFn(ctx, u) }

func TestService_CreateFirstAdmin(t *testing.T) {
	var saved User
	repo := &fakeRepo{
		countByRoleFn: func(ctx context.Context, role string) (int64, error) {
			assert.Equal(t, RoleAdmin, role)
			return 0, nil
		},
		createFn: func(ctx context.Context, u *User) error { saved = *u; return nil },
	}

	svc := NewService(repo)
	resp, err := svc.CreateFirstAdmin(context.Background(), CreateUserRequest{
		Registration: "000001",
		Name:         "Root Admin",
		Password:     "secret123",
	})
	assert.NoError(t, err)
	assert.Equal(t, RoleAdmin, resp.Role)
	assert.Equal(t, RoleAdmin, saved.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("secret123")))
}

func TestService_CreateFirstAdmin_AlreadyBootstrapped(t *testing.T) {
	repo := &fakeRepo{
		countByRoleFn: func(ctx context.Context, role string) (int64, error) { return 1, nil },
	}

	svc := NewService(repo)
	_, err := svc.CreateFirstAdmin(context.Background(), CreateUserRequest{
		Registration: "000002",
		Name:         "Second Admin",
		Password:     "secret123",
	})
	assert.ErrorIs(t, err, usererrors.ErrAdminAlreadyExists)
}

func TestService_Create_DefaultsToEmployee(t *testing.T) {
	var saved User
	repo := &fakeRepo{
		createFn: func(ctx context.Context, u *User) error { saved = *u; return nil },
	}

	svc := NewService(repo)
	resp, err := svc.Create(context.Background(), CreateUserRequest{
		Registration: "123456",
		Name:         "Ana Souza",
		Password:     "secret123",
	})
	assert.NoError(t, err)
	assert.Equal(t, RoleEmployee, resp.Role)
	assert.NotEqual(t, "secret123", saved.Password)
}

func TestService_Create_DuplicateRegistration(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, u *User) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_user_registration"}
		},
	}

	svc := NewService(repo)
	_, err := svc.Create(context.Background(), CreateUserRequest{
		Registration: "123456",
		Name:         "Ana Souza",
		Password:     "secret123",
	})
	assert.ErrorIs(t, err, usererrors.ErrRegistrationTaken)
}

func TestService_Create_BadShiftTime(t *testing.T) {
	bad := "8h00"
	svc := NewService(&fakeRepo{})
	_, err := svc.Create(context.Background(), CreateUserRequest{
		Registration: "123456",
		Name:         "Ana Souza",
		Password:     "secret123",
		MorningEntry: &bad,
	})
	assert.ErrorIs(t, err, usererrors.ErrInvalidShiftTime)
}

func TestService_GetByID(t *testing.T) {
	id := uuid.New()
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, uid string) (*User, error) {
			return &User{ID: id, Registration: "123456", Name: "Ana Souza", Role: RoleEmployee}, nil
		},
	}

	svc := NewService(repo)
	resp, err := svc.GetByID(context.Background(), id.String())
	assert.NoError(t, err)
	assert.Equal(t, "123456", resp.Registration)

	_, err = svc.GetByID(context.Background(), "nope")
	assert.ErrorIs(t, err, usererrors.ErrInvalidUserID)
}

func TestService_GetByID_NotFound(t *testing.T) {
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, uid string) (*User, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}

	svc := NewService(repo)
	_, err := svc.GetByID(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, usererrors.ErrUserNotFound)
}

func TestService_Update_Partial(t *testing.T) {
	id := uuid.New()
	existing := User{ID: id, Registration: "123456", Name: "Ana Souza", Role: RoleEmployee, Password: "old-hash"}

	var saved User
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, uid string) (*User, error) {
			copy := existing
			return &copy, nil
		},
		updateFn: func(ctx context.Context, u *User) error { saved = *u; return nil },
	}

	newName := "Ana Lima"
	entry := "09:00"
	svc := NewService(repo)
	resp, err := svc.Update(context.Background(), id.String(), UpdateUserRequest{
		Name:         &newName,
		MorningEntry: &entry,
	})
	assert.NoError(t, err)
	assert.Equal(t, "Ana Lima", resp.Name)
	assert.Equal(t, "123456", saved.Registration)
	assert.Equal(t, "old-hash", saved.Password)
	assert.Equal(t, "09:00", *saved.MorningEntry)
}

func TestService_Delete(t *testing.T) {
	id := uuid.New()
	deleted := false
	repo := &fakeRepo{
		findByIDFn: func(ctx context.Context, uid string) (*User, error) {
			return &User{ID: id}, nil
		},
		deleteFn: func(ctx context.Context, u *User) error {
			deleted = true
			assert.Equal(t, id, u.ID)
			return nil
		},
	}

	svc := NewService(repo)
	assert.NoError(t, svc.Delete(context.Background(), id.String()))
	assert.True(t, deleted)
}
