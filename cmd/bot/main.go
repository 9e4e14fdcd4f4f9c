package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/staffpoint/hr-backend-go/internal/bot"
	"github.com/staffpoint/hr-backend-go/internal/config"
	"github.com/staffpoint/hr-backend-go/internal/pkg/database"
	"github.com/staffpoint/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffpoint/hr-backend-go/internal/service/attendance"
	employeeService "github.com/staffpoint/hr-backend-go/internal/service/employee"
	leaveService "github.com/staffpoint/hr-backend-go/internal/service/leave"
	memberService "github.com/staffpoint/hr-backend-go/internal/service/member"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}
	if cfg.Bot.Token == "" {
		fmt.Println("BOT_TOKEN is required")
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(
		slog.String("app", "staffpoint-bot"),
		slog.String("env", cfg.App.Env),
	)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	memberRepo := postgresql.NewNewMemberRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, holidayRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, employeeRepo)
	memberSvc := memberService.NewMemberService(db, memberRepo, employeeRepo)

	b, err := bot.New(cfg.Bot.Token, logger, employeeSvc, attendanceSvc, leaveSvc, memberSvc)
	if err != nil {
		logger.Error("failed to start bot", "error", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := b.Run(ctx, cfg.Bot.PollTimeout); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("bot stopped", "error", err)
	}
}
