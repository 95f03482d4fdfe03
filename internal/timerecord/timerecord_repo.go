package timerecord

import (
	"context"
	"database/sql"
	"time"

	"gorm.io/gorm"
)

//go:generate mockgen -source=timerecord_repo.go -destination=mock/timerecord_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rec *TimeRecord) error
	FindByUserTypeAndDate(ctx context.Context, userID string, recordType RecordType, date time.Time) (*TimeRecord, error)
	FindByUserAndDate(ctx context.Context, userID string, date time.Time) ([]TimeRecord, error)
	FindAllByDate(ctx context.Context, date time.Time) ([]TimeRecord, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, rec *TimeRecord) error {
	return r.db.WithContext(ctx).Create(rec).Error
}

func (r *repository) FindByUserTypeAndDate(ctx context.Context, userID string, recordType RecordType, date time.Time) (*TimeRecord, error) {
	var rec TimeRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("type = ?", recordType).
		Where("date = ?", date.Format("2006-01-02")).
		First(&rec).Error
	return &rec, err
}

func (r *repository) FindByUserAndDate(ctx context.Context, userID string, date time.Time) ([]TimeRecord, error) {
	var rows []TimeRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date = ?", date.Format("2006-01-02")).
		Order("time ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindAllByDate(ctx context.Context, date time.Time) ([]TimeRecord, error) {
	var rows []TimeRecord
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("date = ?", date.Format("2006-01-02")).
		Order("time ASC").
		Find(&rows).Error
	return rows, err
}
