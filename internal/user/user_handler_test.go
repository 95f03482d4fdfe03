package user_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pedrodese/Check-Time/internal/user"
	usererrors "github.com/pedrodese/Check-Time/internal/user/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	createFirstAdminFn func(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
	createFn           func(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
	getAllFn           func(ctx context.Context) ([]user.UserResponse, error)
	getByIDFn          func(ctx context.Context, id string) (user.UserResponse, error)
	updateFn           func(ctx context.Context, id string, req user.UpdateUserRequest) (user.UserResponse, error)
	deleteFn           func(ctx context.Context, id string) error
}

func (f *fakeService) CreateFirstAdmin(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	return f.createFirstAdminFn(ctx, req)
}
func (f *fakeService) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	return f.createFn(ctx, req)
}
func (f *fakeService) GetAll(ctx context.Context) ([]user.UserResponse, error) {
	return f.getAllFn(ctx)
}
func (f *fakeService) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	return f.getByIDFn(ctx, id)
}
func (f *fakeService) Update(ctx context.Context, id string, req user.UpdateUserRequest) (user.UserResponse, error) {
	return f.updateFn(ctx, id, req)
}
func (f *fakeService) Delete(ctx context.Context, id string) error { return f.deleteFn(ctx, id) }

func TestHandler_CreateFirstAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		createFirstAdminFn: func(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
			assert.Equal(t, "000001", req.Registration)
			return user.UserResponse{ID: uuid.New().String(), Registration: req.Registration, Role: user.RoleAdmin}, nil
		},
	}

	h := user.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/users/first-admin",
		strings.NewReader(`{"registration":"000001","name":"Root Admin","password":"secret123"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.CreateFirstAdmin(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "ADMIN")
}

func TestHandler_CreateFirstAdmin_Conflict(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		createFirstAdminFn: func(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
			return user.UserResponse{}, usererrors.ErrAdminAlreadyExists
		},
	}

	h := user.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/users/first-admin",
		strings.NewReader(`{"registration":"000002","name":"Another","password":"secret123"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.CreateFirstAdmin(c)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_Create_InvalidRegistration(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := user.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/users",
		strings.NewReader(`{"registration":"12AB","name":"Ana","password":"secret123"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetByID_NotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getByIDFn: func(ctx context.Context, id string) (user.UserResponse, error) {
			return user.UserResponse{}, usererrors.ErrUserNotFound
		},
	}

	h := user.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: uuid.New().String()}}
	c.Request = httptest.NewRequest(http.MethodGet, "/users/x", nil)
	h.GetByID(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ProfileAndDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New().String()

	svc := &fakeService{
		getByIDFn: func(ctx context.Context, id string) (user.UserResponse, error) {
			assert.Equal(t, userID, id)
			return user.UserResponse{ID: id, Registration: "123456"}, nil
		},
		deleteFn: func(ctx context.Context, id string) error { return nil },
	}

	h := user.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id_validated", userID)
	c.Request = httptest.NewRequest(http.MethodGet, "/users/profile", nil)
	h.Profile(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "123456")

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Params = gin.Params{{Key: "id", Value: userID}}
	c2.Request = httptest.NewRequest(http.MethodDelete, "/users/"+userID, nil)
	h.Delete(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
}
