package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/emptrack/tracker-backend-go/internal/config"
	appHTTP "github.com/emptrack/tracker-backend-go/internal/handler/http"
	"github.com/emptrack/tracker-backend-go/internal/pkg/database"
	"github.com/emptrack/tracker-backend-go/internal/pkg/jwt"
	"github.com/emptrack/tracker-backend-go/internal/pkg/oauth"
	"github.com/emptrack/tracker-backend-go/internal/pkg/storage"
	"github.com/emptrack/tracker-backend-go/internal/repository/postgresql"
	activityService "github.com/emptrack/tracker-backend-go/internal/service/activity"
	announcementService "github.com/emptrack/tracker-backend-go/internal/service/announcement"
	attendanceService "github.com/emptrack/tracker-backend-go/internal/service/attendance"
	authService "github.com/emptrack/tracker-backend-go/internal/service/auth"
	employeeService "github.com/emptrack/tracker-backend-go/internal/service/employee"
	"github.com/emptrack/tracker-backend-go/internal/service/file"
	projectService "github.com/emptrack/tracker-backend-go/internal/service/project"
	taskService "github.com/emptrack/tracker-backend-go/internal/service/task"
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

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	projectRepo := postgresql.NewProjectRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	activityRepo := postgresql.NewActivityRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	activitySvc := activityService.NewActivityService(activityRepo)
	authSvc := authService.NewAuthService(userRepo, jwtService, activitySvc)
	employeeSvc := employeeService.NewEmployeeService(db, employeeRepo, userRepo, fileService, activitySvc)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, activitySvc)
	taskSvc := taskService.NewTaskService(taskRepo, employeeRepo, activitySvc)
	projectSvc := projectService.NewProjectService(projectRepo, employeeRepo)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	taskHandler := appHTTP.NewTaskHandler(taskSvc)
	projectHandler := appHTTP.NewProjectHandler(projectSvc)
	announcementHandler := appHTTP.NewAnnouncementHandler(announcementSvc)
	activityHandler := appHTTP.NewActivityHandler(activitySvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		employeeHandler,
		attendanceHandler,
		taskHandler,
		projectHandler,
		announcementHandler,
		activityHandler,
		appHTTP.RouterConfig{
			Env:         cfg.App.Env,
			FrontendURL: cfg.App.FrontendURL,
			UploadsDir:  cfg.Storage.BasePath,
		},
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
