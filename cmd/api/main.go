package main

import (
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/httplog/v3"
	"github.com/redis/go-redis/v9"

	"github.com/anandamid/presensi-backend-go/internal/config"
	appHTTP "github.com/anandamid/presensi-backend-go/internal/handler/http"
	"github.com/anandamid/presensi-backend-go/internal/pkg/cache"
	"github.com/anandamid/presensi-backend-go/internal/pkg/database"
	"github.com/anandamid/presensi-backend-go/internal/pkg/jwt"
	"github.com/anandamid/presensi-backend-go/internal/pkg/sse"
	"github.com/anandamid/presensi-backend-go/internal/pkg/storage"
	"github.com/anandamid/presensi-backend-go/internal/repository/postgresql"
	attendanceService "github.com/anandamid/presensi-backend-go/internal/service/attendance"
	authService "github.com/anandamid/presensi-backend-go/internal/service/auth"
	dashboardService "github.com/anandamid/presensi-backend-go/internal/service/dashboard"
	"github.com/anandamid/presensi-backend-go/internal/service/file"
	leaveService "github.com/anandamid/presensi-backend-go/internal/service/leave"
	reportService "github.com/anandamid/presensi-backend-go/internal/service/report"
	settingsService "github.com/anandamid/presensi-backend-go/internal/service/settings"
	userService "github.com/anandamid/presensi-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "presensi-anandamid"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	dsn := cfg.DatabaseURL()
	if err := database.Migrate(dsn); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}

	// Redis is optional; without it the settings snapshot is read from
	// PostgreSQL on every request.
	var redisClient *redis.Client
	if addr := cfg.RedisAddr(); addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	settingsCache := cache.NewSettingsCache(redisClient)

	userRepo := postgresql.NewUserRepository(db)
	settingsRepo := postgresql.NewSettingsRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.UploadsDir, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize local storage: ", err)
	}
	fileSvc := file.NewFileService(fileStorage)

	hub := sse.NewHub()

	authSvc := authService.NewAuthService(userRepo, jwtService)
	settingsSvc := settingsService.NewSettingsService(settingsRepo, settingsCache, cfg.Attendance.Timezone)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		settingsSvc,
		fileSvc,
		hub,
		logger,
		cfg.Attendance.Timezone,
		attendanceService.Policy(cfg.Attendance.Policy),
	)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, fileSvc)
	userSvc := userService.NewUserService(userRepo)
	dashboardSvc := dashboardService.NewDashboardService(attendanceRepo, userRepo, leaveRepo, cfg.Attendance.Timezone)
	reportSvc := reportService.NewReportService(attendanceRepo, cfg.Attendance.Timezone)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			Logger:         logger,
			AllowedOrigins: cfg.App.AllowedOrigins,
			UploadsDir:     cfg.Storage.UploadsDir,
		},
		jwtService,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewSettingsHandler(settingsSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewUserHandler(userSvc),
		appHTTP.NewDashboardHandler(dashboardSvc),
		appHTTP.NewReportHandler(reportSvc),
		appHTTP.NewEventsHandler(jwtService, hub),
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
