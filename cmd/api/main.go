package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/peopledesk/peopledesk-backend-go/internal/config"
	appHTTP "github.com/peopledesk/peopledesk-backend-go/internal/handler/http"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/database"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/email"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/jwt"
	"github.com/peopledesk/peopledesk-backend-go/internal/pkg/oauth"
	"github.com/peopledesk/peopledesk-backend-go/internal/repository/postgresql"
	activitylogService "github.com/peopledesk/peopledesk-backend-go/internal/service/activitylog"
	attendanceService "github.com/peopledesk/peopledesk-backend-go/internal/service/attendance"
	authService "github.com/peopledesk/peopledesk-backend-go/internal/service/auth"
	employeeService "github.com/peopledesk/peopledesk-backend-go/internal/service/employee"
	groupService "github.com/peopledesk/peopledesk-backend-go/internal/service/group"
	leaveService "github.com/peopledesk/peopledesk-backend-go/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	logRepo := postgresql.NewLogRepository(db)
	groupRepo := postgresql.NewGroupRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	mailer := email.NewSMTPMailer(cfg.SMTP)

	authSvc := authService.NewAuthService(userRepo, jwtSvc)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, attendanceRepo, leaveRepo, logRepo, groupRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, employeeRepo)
	logSvc := activitylogService.NewLogService(logRepo, employeeRepo)
	groupSvc := groupService.NewGroupService(db, groupRepo, employeeRepo, mailer)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, googleSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Log:        appHTTP.NewLogHandler(logSvc),
		Group:      appHTTP.NewGroupHandler(groupSvc),
		Docs:       appHTTP.NewDocsHandler(),
	}

	router := appHTTP.NewRouter(cfg, jwtSvc, userRepo, handlers)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
