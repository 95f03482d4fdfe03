package user

import (
	"time"

	"github.com/google/uuid"
)

const (
	RoleAdmin    = "ADMIN"
	RoleEmployee = "EMPLOYEE"
)

// User is an employee or administrator. Registration is the 6-digit
// badge number used as the login handle; the four shift fields hold the
// employee's expected punch times as "HH:MM" and may all be unset.
// Users are removed physically, so there is no DeletedAt column.
type User struct {
	ID           uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	Registration string    `gorm:"column:registration;type:varchar(6);not null;uniqueIndex:uq_user_registration"`
	Name         string    `gorm:"column:name;type:varchar(255);not null"`
	Role         string    `gorm:"column:role;type:varchar(20);not null;default:EMPLOYEE"`
	Password     string    `gorm:"column:password;type:text;not null"`

	MorningEntry   *string `gorm:"column:morning_entry;type:varchar(5)"`
	MorningExit    *string `gorm:"column:morning_exit;type:varchar(5)"`
	AfternoonEntry *string `gorm:"column:afternoon_entry;type:varchar(5)"`
	AfternoonExit  *string `gorm:"column:afternoon_exit;type:varchar(5)"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
