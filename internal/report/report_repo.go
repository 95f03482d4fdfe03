package report

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Row is one punch joined with its owner's display name, projected for
// the export writers.
type Row struct {
	EmployeeName string    `gorm:"column:employee_name"`
	Type         string    `gorm:"column:type"`
	Date         time.Time `gorm:"column:date"`
	Time         string    `gorm:"column:time"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	FindInRange(ctx context.Context, start, end time.Time) ([]Row, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// FindInRange orders by created_at, not punch time: report rows follow
// insertion order on purpose, so late manual corrections show up last.
func (r *repository) FindInRange(ctx context.Context, start, end time.Time) ([]Row, error) {
	var rows []Row
	err := r.db.WithContext(ctx).
		Table("time_records").
		Select("users.name AS employee_name, time_records.type, time_records.date, time_records.time, time_records.created_at").
		Joins("JOIN users ON users.id = time_records.user_id").
		Where("time_records.date BETWEEN ? AND ?", start, end).
		Order("time_records.created_at ASC").
		Scan(&rows).Error
	return rows, err
}
