package app

import (
	"context"
	"database/sql"

	"github.com/pedrodese/Check-Time/internal/auth"
	"github.com/pedrodese/Check-Time/internal/config"
	"github.com/pedrodese/Check-Time/internal/messaging/kafka"
	"github.com/pedrodese/Check-Time/internal/middleware"
	"github.com/pedrodese/Check-Time/internal/report"
	"github.com/pedrodese/Check-Time/internal/timerecord"
	"github.com/pedrodese/Check-Time/internal/user"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// shiftLookup adapts the user repository to the punch window check.
type shiftLookup struct {
	users user.Repository
}

func (s shiftLookup) ShiftTimes(ctx context.Context, userID string) (timerecord.ShiftTimes, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return timerecord.ShiftTimes{}, err
	}
	return timerecord.ShiftTimes{
		MorningEntry:   u.MorningEntry,
		MorningExit:    u.MorningExit,
		AfternoonEntry: u.AfternoonEntry,
		AfternoonExit:  u.AfternoonExit,
	}, nil
}

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
) error {
	router.Use(middleware.ContextLogger(zap.L()))

	// --- Repositories ---
	userRepo := user.NewRepository(gormDB)
	timeRecordRepo := timerecord.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)

	// --- Services ---
	userService := user.NewService(userRepo)
	authService := auth.NewService(userRepo)
	windowPolicy := timerecord.WindowPolicy{
		Enforce: cfg.Window.Enforce,
		Source:  cfg.Window.Source,
		Shifts:  shiftLookup{users: userRepo},
	}
	timeRecordService := timerecord.NewServiceWithOutbox(db, timeRecordRepo, outboxRepo, windowPolicy)
	reportService := report.NewService(reportRepo, cfg.Report.Dir)

	// --- Handlers ---
	userHandler := user.NewHandler(userService)
	authHandler := auth.NewHandler(authService)
	timeRecordHandler := timerecord.NewHandlerWithRedis(timeRecordService, rdb)
	reportHandler := report.NewHandler(reportService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		user.RegisterRoutes(api, userHandler)
		timerecord.RegisterRoutes(api, timeRecordHandler, rdb)
		report.RegisterRoutes(api, reportHandler)
	}

	return nil
}
