package user

import (
	"context"
	"time"

	"github.com/pedrodese/Check-Time/internal/shared/contextutil"
	usererrors "github.com/pedrodese/Check-Time/internal/user/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=user_service.go -destination=mock/user_service_mock.go -package=mock
type Service interface {
	CreateFirstAdmin(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)
	GetAll(ctx context.Context) ([]UserResponse, error)
	GetByID(ctx context.Context, id string) (UserResponse, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// CreateFirstAdmin bootstraps the very first administrator. It is only
// honored while no admin account exists; afterwards the open endpoint
// becomes a no-op that fails with a conflict.
func (s *service) CreateFirstAdmin(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	count, err := s.repo.CountByRole(ctx, RoleAdmin)
	if err != nil {
		return UserResponse{}, err
	}
	if count > 0 {
		return UserResponse{}, usererrors.ErrAdminAlreadyExists
	}

	req.Role = RoleAdmin
	return s.Create(ctx, req)
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	l.Info("creating user",
		zap.String("registration", req.Registration),
		zap.String("role", req.Role),
	)

	if err := validateShiftTimes(req.MorningEntry, req.MorningExit, req.AfternoonEntry, req.AfternoonExit); err != nil {
		return UserResponse{}, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		l.Error("failed to hash password", zap.Error(err))
		return UserResponse{}, err
	}

	role := req.Role
	if role == "" {
		role = RoleEmployee
	}

	u := &User{
		ID:             uuid.New(),
		Registration:   req.Registration,
		Name:           req.Name,
		Role:           role,
		Password:       string(hashedPassword),
		MorningEntry:   req.MorningEntry,
		MorningExit:    req.MorningExit,
		AfternoonEntry: req.AfternoonEntry,
		AfternoonExit:  req.AfternoonExit,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		l.Error("failed to create user", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	l.Info("user created successfully", zap.String("registration", u.Registration))
	return mapToResponse(*u), nil
}

func (s *service) GetAll(ctx context.Context) ([]UserResponse, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]UserResponse, len(users))
	for i, u := range users {
		resp[i] = mapToResponse(u)
	}

	return resp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (UserResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return UserResponse{}, usererrors.ErrInvalidUserID
	}

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*u), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (UserResponse, error) {
	l := contextutil.GetLogger(ctx, nil)

	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return UserResponse{}, mapRepositoryError(err)
	}

	if err := validateShiftTimes(req.MorningEntry, req.MorningExit, req.AfternoonEntry, req.AfternoonExit); err != nil {
		return UserResponse{}, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			l.Error("failed to hash new password", zap.Error(err))
			return UserResponse{}, err
		}
		u.Password = string(hashed)
	}
	if req.MorningEntry != nil {
		u.MorningEntry = req.MorningEntry
	}
	if req.MorningExit != nil {
		u.MorningExit = req.MorningExit
	}
	if req.AfternoonEntry != nil {
		u.AfternoonEntry = req.AfternoonEntry
	}
	if req.AfternoonExit != nil {
		u.AfternoonExit = req.AfternoonExit
	}

	if err := s.repo.Update(ctx, u); err != nil {
		l.Error("failed to update user", zap.Error(err))
		return UserResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*u), nil
}

// Delete removes the user row physically. The time_records FK cascades,
// so the user's punches disappear with the account.
func (s *service) Delete(ctx context.Context, id string) error {
	u, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	return s.repo.Delete(ctx, u)
}

func validateShiftTimes(times ...*string) error {
	for _, t := range times {
		if t == nil {
			continue
		}
		if _, err := time.Parse("15:04", *t); err != nil {
			return usererrors.ErrInvalidShiftTime
		}
	}
	return nil
}

func mapToResponse(u User) UserResponse {
	return UserResponse{
		ID:             u.ID.String(),
		Registration:   u.Registration,
		Name:           u.Name,
		Role:           u.Role,
		MorningEntry:   u.MorningEntry,
		MorningExit:    u.MorningExit,
		AfternoonEntry: u.AfternoonEntry,
		AfternoonExit:  u.AfternoonExit,
		CreatedAt:      u.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
