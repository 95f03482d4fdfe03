package timerecord

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/pedrodese/Check-Time/internal/events"
	"github.com/pedrodese/Check-Time/internal/messaging/kafka"
	"github.com/pedrodese/Check-Time/internal/shared/contextutil"
	timerecorderrors "github.com/pedrodese/Check-Time/internal/timerecord/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=timerecord_service.go -destination=mock/timerecord_service_mock.go -package=mock
type Service interface {
	RecordPunch(ctx context.Context, userID string, req CreateTimeRecordRequest) (TimeRecordResponse, error)
	GetMyRecords(ctx context.Context, userID, date string) ([]TimeRecordResponse, error)
	GetAllByDate(ctx context.Context, date string) ([]TimeRecordResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	policy WindowPolicy
	logger *zap.Logger
	clock  func() time.Time
}

func NewService(db *sql.DB, repo Repository, policy WindowPolicy, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, policy, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	outboxRepo kafka.OutboxRepository,
	policy WindowPolicy,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("timerecord.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timerecord.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		policy: policy,
		logger: l,
		clock:  time.Now,
	}
}

// RecordPunch inserts one punch for (userID, type, today). The in-tx
// read gives the friendly conflict answer; the unique index on
// (user_id, type, date) is what actually guarantees at-most-one when
// two punches race.
func (s *service) RecordPunch(ctx context.Context, userID string, req CreateTimeRecordRequest) (TimeRecordResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return TimeRecordResponse{}, timerecorderrors.ErrInvalidUserID
	}
	recordType := RecordType(req.Type)
	if !recordType.Valid() {
		return TimeRecordResponse{}, timerecorderrors.ErrInvalidRecordType
	}

	now := s.clock()
	currentTime := now.Format("15:04")
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	allowed, err := s.policy.Allows(ctx, userID, recordType, currentTime)
	if err != nil {
		s.logger.Error("punch window lookup failed",
			zap.String("request_id", rid),
			zap.String("user_id", userID),
			zap.Error(err),
		)
		return TimeRecordResponse{}, err
	}
	if !allowed {
		s.logger.Warn("punch rejected by time window",
			zap.String("user_id", userID),
			zap.String("type", req.Type),
			zap.String("time", currentTime),
		)
		return TimeRecordResponse{}, timerecorderrors.ErrOutsideWindow
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("record punch begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return TimeRecordResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	_, err = qtx.FindByUserTypeAndDate(ctx, userID, recordType, today)
	if err == nil {
		return TimeRecordResponse{}, timerecorderrors.ErrDuplicatePunch
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return TimeRecordResponse{}, err
	}

	rec := &TimeRecord{
		ID:     uuid.New(),
		UserID: userUUID,
		Type:   recordType,
		Date:   today,
		Time:   currentTime,
	}

	if err := qtx.Create(ctx, rec); err != nil {
		s.logger.Error("record punch persist failed", zap.Error(err))
		return TimeRecordResponse{}, mapRepositoryError(err)
	}

	if s.outbox != nil {
		event := events.PunchRecordedEvent{
			EventType:  "punch_recorded",
			RequestID:  rid,
			RecordID:   rec.ID.String(),
			UserID:     userID,
			RecordType: string(recordType),
			Date:       today.Format("2006-01-02"),
			Time:       currentTime,
			OccurredAt: now.UTC(),
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal punch event failed", zap.String("request_id", rid), zap.Error(err))
			return TimeRecordResponse{}, err
		}

		outboxRepo := s.outbox.WithTx(tx)
		if err := outboxRepo.Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "time_record",
			AggregateID:   rec.ID.String(),
			EventType:     event.EventType,
			Topic:         events.PunchRecordedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("record punch outbox persist failed",
				zap.String("record_id", rec.ID.String()),
				zap.Error(err),
			)
			return TimeRecordResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return TimeRecordResponse{}, mapRepositoryError(err)
	}

	s.logger.Info("punch recorded",
		zap.String("user_id", userID),
		zap.String("type", req.Type),
		zap.String("date", today.Format("2006-01-02")),
		zap.String("time", currentTime),
	)
	return mapToResponse(*rec), nil
}

func (s *service) GetMyRecords(ctx context.Context, userID, date string) ([]TimeRecordResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, timerecorderrors.ErrInvalidUserID
	}

	day, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindByUserAndDate(ctx, userID, day)
	if err != nil {
		return nil, err
	}

	return mapAllToResponse(rows), nil
}

func (s *service) GetAllByDate(ctx context.Context, date string) ([]TimeRecordResponse, error) {
	day, err := s.resolveDate(date)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.FindAllByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	return mapAllToResponse(rows), nil
}

// resolveDate parses YYYY-MM-DD; an empty value means today.
func (s *service) resolveDate(date string) (time.Time, error) {
	if date == "" {
		now := s.clock()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()), nil
	}
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, timerecorderrors.ErrInvalidDate
	}
	return day, nil
}

func mapAllToResponse(rows []TimeRecord) []TimeRecordResponse {
	res := make([]TimeRecordResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}

func mapToResponse(rec TimeRecord) TimeRecordResponse {
	resp := TimeRecordResponse{
		ID:        rec.ID.String(),
		UserID:    rec.UserID.String(),
		Type:      string(rec.Type),
		Date:      rec.Date.Format("2006-01-02"),
		Time:      rec.Time,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
	}
	if rec.User != nil {
		resp.UserName = rec.User.Name
	}
	return resp
}
