package main

import (
	"fmt"
	"net/http"

	"github.com/staffpoint/hr-backend-go/internal/config"
	appHTTP "github.com/staffpoint/hr-backend-go/internal/handler/http"
	"github.com/staffpoint/hr-backend-go/internal/pkg/database"
	"github.com/staffpoint/hr-backend-go/internal/pkg/jwt"
	"github.com/staffpoint/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffpoint/hr-backend-go/internal/service/attendance"
	authService "github.com/staffpoint/hr-backend-go/internal/service/auth"
	dashboardService "github.com/staffpoint/hr-backend-go/internal/service/dashboard"
	employeeService "github.com/staffpoint/hr-backend-go/internal/service/employee"
	holidayService "github.com/staffpoint/hr-backend-go/internal/service/holiday"
	leaveService "github.com/staffpoint/hr-backend-go/internal/service/leave"
	memberService "github.com/staffpoint/hr-backend-go/internal/service/member"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	tokenRepo := postgresql.NewRefreshTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	memberRepo := postgresql.NewNewMemberRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, tokenRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, employeeRepo, holidayRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, employeeRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	memberSvc := memberService.NewMemberService(db, memberRepo, employeeRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, attendanceRepo, leaveRepo)

	router := appHTTP.NewRouter(cfg, jwtService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		Member:     appHTTP.NewMemberHandler(memberSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc),
	})

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
