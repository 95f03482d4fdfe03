package timerecord

import (
	"time"

	"github.com/google/uuid"
)

// RecordType is the closed set of daily punch events.
type RecordType string

const (
	MorningEntry   RecordType = "MORNING_ENTRY"
	MorningExit    RecordType = "MORNING_EXIT"
	AfternoonEntry RecordType = "AFTERNOON_ENTRY"
	AfternoonExit  RecordType = "AFTERNOON_EXIT"
)

func (t RecordType) Valid() bool {
	switch t {
	case MorningEntry, MorningExit, AfternoonEntry, AfternoonExit:
		return true
	}
	return false
}

// TimeRecord is one punch. Rows are immutable once inserted; the only
// mutation path the ledger exposes is Create. The composite unique
// index backs the one-punch-per-type-per-day invariant at the database
// level, so two racing punches cannot both land.
type TimeRecord struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index;uniqueIndex:uq_time_record_daily_type,priority:1"`
	Type      RecordType `gorm:"column:type;type:varchar(20);not null;uniqueIndex:uq_time_record_daily_type,priority:2"`
	Date      time.Time  `gorm:"column:date;type:date;not null;uniqueIndex:uq_time_record_daily_type,priority:3"`
	Time      string     `gorm:"column:time;type:varchar(5);not null"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	User      *UserRef   `gorm:"foreignKey:UserID;references:ID"`
}

func (TimeRecord) TableName() string {
	return "time_records"
}

// UserRef carries the minimal join data for listings and reports.
type UserRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"column:name"`
}

func (UserRef) TableName() string {
	return "users"
}
