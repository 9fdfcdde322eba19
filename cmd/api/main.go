package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/acadia-edu/acadia-go-api/internal/config"
	"github.com/acadia-edu/acadia-go-api/internal/database"
	"github.com/acadia-edu/acadia-go-api/internal/handler"
	"github.com/acadia-edu/acadia-go-api/internal/middleware"
	"github.com/acadia-edu/acadia-go-api/internal/models"
	"github.com/acadia-edu/acadia-go-api/internal/repository"
	"github.com/acadia-edu/acadia-go-api/internal/router"
	"github.com/acadia-edu/acadia-go-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Student{},
		&models.Faculty{},
		&models.Course{},
		&models.RoutineEntry{},
		&models.AttendanceRecord{},
		&models.GradeRecord{},
		&models.CalendarEvent{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	validate := validator.New(validator.WithRequiredStructEnabled())

	studentRepo := repository.NewStudentRepository(db)
	facultyRepo := repository.NewFacultyRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	routineRepo := repository.NewRoutineRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	gradeRepo := repository.NewGradeRepository(db)
	calendarRepo := repository.NewCalendarEventRepository(db)

	studentService := service.NewStudentService(studentRepo, validate, logger)
	facultyService := service.NewFacultyService(facultyRepo, validate, logger)
	courseService := service.NewCourseService(courseRepo, validate, logger)
	routineService := service.NewRoutineService(routineRepo, validate, logger)
	attendanceService := service.NewAttendanceService(attendanceRepo, studentRepo, validate, logger)
	gradeService := service.NewGradeService(gradeRepo, studentRepo, validate, logger)
	calendarService := service.NewCalendarService(calendarRepo, validate, logger)
	dashboardService := service.NewDashboardService(
		studentRepo, facultyRepo, courseRepo, attendanceRepo, gradeRepo, calendarRepo,
		redisClient, cfg.DashboardCacheTTL, cfg.UpcomingWindow, logger,
	)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		StudentHandler:    handler.NewStudentHandler(studentService, logger),
		FacultyHandler:    handler.NewFacultyHandler(facultyService, logger),
		CourseHandler:     handler.NewCourseHandler(courseService, logger),
		RoutineHandler:    handler.NewRoutineHandler(routineService, logger),
		AttendanceHandler: handler.NewAttendanceHandler(attendanceService, logger),
		GradeHandler:      handler.NewGradeHandler(gradeService, logger),
		CalendarHandler:   handler.NewCalendarHandler(calendarService, logger),
		DashboardHandler:  handler.NewDashboardHandler(dashboardService, logger),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
