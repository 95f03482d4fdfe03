package timerecord_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pedrodese/Check-Time/internal/timerecord"
	timerecorderrors "github.com/pedrodese/Check-Time/internal/timerecord/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	recordPunchFn  func(ctx context.Context, userID string, req timerecord.CreateTimeRecordRequest) (timerecord.TimeRecordResponse, error)
	getMyRecordsFn func(ctx context.Context, userID, date string) ([]timerecord.TimeRecordResponse, error)
	getAllByDateFn func(ctx context.Context, date string) ([]timerecord.TimeRecordResponse, error)
}

func (f *fakeService) RecordPunch(ctx context.Context, userID string, req timerecord.CreateTimeRecordRequest) (timerecord.TimeRecordResponse, error) {
	return f.recordPunchFn(ctx, userID, req)
}
func (f *fakeService) GetMyRecords(ctx context.Context, userID, date string) ([]timerecord.TimeRecordResponse, error) {
	return f.getMyRecordsFn(ctx, userID, date)
}
func (f *fakeService) GetAllByDate(ctx context.Context, date string) ([]timerecord.TimeRecordResponse, error) {
	return f.getAllByDateFn(ctx, date)
}

func TestHandler_CreateAndMyRecords(t *testing.T) {
	gin.SetMode(gin.TestMode)
	userID := uuid.New().String()

	svc := &fakeService{
		recordPunchFn: func(ctx context.Context, uid string, req timerecord.CreateTimeRecordRequest) (timerecord.TimeRecordResponse, error) {
			assert.Equal(t, userID, uid)
			assert.Equal(t, "MORNING_ENTRY", req.Type)
			return timerecord.TimeRecordResponse{ID: uuid.New().String(), UserID: uid, Type: req.Type, Time: "08:02"}, nil
		},
		getMyRecordsFn: func(ctx context.Context, uid, date string) ([]timerecord.TimeRecordResponse, error) {
			return []timerecord.TimeRecordResponse{{ID: uuid.New().String()}, {ID: uuid.New().String()}}, nil
		},
	}

	h := timerecord.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id_validated", userID)
	c.Request = httptest.NewRequest(http.MethodPost, "/time-records", strings.NewReader(`{"type":"MORNING_ENTRY"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "\"08:02\"")

	w2 := httptest.NewRecorder()
	c2, _ := gin.CreateTestContext(w2)
	c2.Set("user_id_validated", userID)
	c2.Request = httptest.NewRequest(http.MethodGet, "/time-records/my-records", nil)
	h.MyRecords(c2)
	assert.Equal(t, http.StatusOK, w2.Code)
}

func TestHandler_Create_Duplicate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		recordPunchFn: func(ctx context.Context, uid string, req timerecord.CreateTimeRecordRequest) (timerecord.TimeRecordResponse, error) {
			return timerecord.TimeRecordResponse{}, timerecorderrors.ErrDuplicatePunch
		},
	}

	h := timerecord.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id_validated", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodPost, "/time-records", strings.NewReader(`{"type":"AFTERNOON_EXIT"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already exists")
}

func TestHandler_Create_BadPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := timerecord.NewHandler(&fakeService{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set("user_id_validated", uuid.New().String())
	c.Request = httptest.NewRequest(http.MethodPost, "/time-records", strings.NewReader(`{"type":"BRUNCH"}`))
	c.Request.Header.Set("Content-Type", "application/json")
	h.Create(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetAll_OutsideWindowError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{
		getAllByDateFn: func(ctx context.Context, date string) ([]timerecord.TimeRecordResponse, error) {
			return nil, timerecorderrors.ErrInvalidDate
		},
	}

	h := timerecord.NewHandler(svc)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/time-records?date=bogus", nil)
	h.GetAll(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
