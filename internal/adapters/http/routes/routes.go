package routes

import (
	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/http/handlers"
	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/http/middleware"
	"github.com/kwakuoseikwakye/presby-cms/internal/adapters/persistence/repositories"
	"github.com/kwakuoseikwakye/presby-cms/internal/config"
	"github.com/kwakuoseikwakye/presby-cms/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	memberRepo := repositories.NewMemberRepository(db)
	attendanceRepo := repositories.NewAttendanceRepository(db)
	transactionRepo := repositories.NewTransactionRepository(db)
	groupRepo := repositories.NewGroupRepository(db)
	eventRepo := repositories.NewEventRepository(db)
	announcementRepo := repositories.NewAnnouncementRepository(db)
	governanceRepo := repositories.NewGovernanceRepository(db)
	pledgeRepo := repositories.NewPledgeRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := services.NewUserService(userRepo)
	memberService := services.NewMemberService(memberRepo)
	attendanceService := services.NewAttendanceService(attendanceRepo, memberRepo)
	financeService := services.NewFinanceService(transactionRepo, memberRepo, db)
	groupService := services.NewGroupService(groupRepo, memberRepo, userRepo)
	eventService := services.NewEventService(eventRepo)
	announcementService := services.NewAnnouncementService(announcementRepo)
	governanceService := services.NewGovernanceService(governanceRepo, memberRepo)
	pledgeService := services.NewPledgeService(pledgeRepo, memberRepo)
	dashboardService := services.NewDashboardService(db)
	reportService := services.NewReportService(db)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, cfg)
	userHandler := handlers.NewUserHandler(userService)
	memberHandler := handlers.NewMemberHandler(memberService)
	attendanceHandler := handlers.NewAttendanceHandler(attendanceService)
	financeHandler := handlers.NewFinanceHandler(financeService)
	groupHandler := handlers.NewGroupHandler(groupService)
	eventHandler := handlers.NewEventHandler(eventService)
	announcementHandler := handlers.NewAnnouncementHandler(announcementService)
	governanceHandler := handlers.NewGovernanceHandler(governanceService)
	pledgeHandler := handlers.NewPledgeHandler(pledgeService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	reportHandler := handlers.NewReportHandler(reportService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	apiV1.Get("/", healthHandler.APIInfo)

	// Auth routes (public, stricter rate limit on login)
	auth := apiV1.Group("/auth")
	auth.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)
	auth.Post("/refresh", authHandler.RefreshToken)
	auth.Post("/logout", authHandler.Logout)
	auth.Post("/logout-all", middleware.AuthMiddleware(cfg), authHandler.LogoutAll)
	auth.Get("/me", middleware.AuthMiddleware(cfg), authHandler.Me)

	// Everything below requires a valid access token
	protected := apiV1.Group("", middleware.AuthMiddleware(cfg))

	// Staff accounts
	users := protected.Group("/users")
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Put("/password", userHandler.ChangePassword)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
	users.Delete("/:id", userHandler.Delete)

	// Members
	members := protected.Group("/members")
	members.Post("/", memberHandler.Create)
	members.Get("/", memberHandler.List)
	members.Get("/active", memberHandler.ListActive)
	members.Get("/:id", memberHandler.Get)
	members.Put("/:id", memberHandler.Update)
	members.Delete("/:id", memberHandler.Delete)

	// Attendance
	attendance := protected.Group("/attendance")
	attendance.Post("/", attendanceHandler.Mark)
	attendance.Get("/", attendanceHandler.List)
	attendance.Get("/:id", attendanceHandler.Get)
	attendance.Put("/:id", attendanceHandler.Update)
	attendance.Delete("/:id", attendanceHandler.Delete)

	// Finance
	finance := protected.Group("/finance")
	finance.Post("/", financeHandler.Create)
	finance.Get("/", financeHandler.List)
	finance.Get("/:id", financeHandler.Get)
	finance.Put("/:id", financeHandler.Update)
	finance.Delete("/:id", financeHandler.Delete)

	// Groups & enrollment
	groups := protected.Group("/groups")
	groups.Post("/", groupHandler.Create)
	groups.Get("/", groupHandler.List)
	groups.Get("/:id", groupHandler.Get)
	groups.Put("/:id", groupHandler.Update)
	groups.Delete("/:id", groupHandler.Delete)
	groups.Post("/:id/members", groupHandler.Enroll)
	groups.Delete("/:id/members/:memberId", groupHandler.Unenroll)

	// Events
	events := protected.Group("/events")
	events.Post("/", eventHandler.Create)
	events.Get("/", eventHandler.List)
	events.Get("/:id", eventHandler.Get)
	events.Put("/:id", eventHandler.Update)
	events.Delete("/:id", eventHandler.Delete)

	// Announcements
	announcements := protected.Group("/announcements")
	announcements.Post("/", announcementHandler.Create)
	announcements.Get("/", announcementHandler.List)
	announcements.Get("/:id", announcementHandler.Get)
	announcements.Put("/:id", announcementHandler.Update)
	announcements.Post("/:id/publish", announcementHandler.Publish)
	announcements.Delete("/:id", announcementHandler.Delete)

	// Governance
	governance := protected.Group("/governance")
	governance.Post("/", governanceHandler.Create)
	governance.Get("/", governanceHandler.List)
	governance.Get("/:id", governanceHandler.Get)
	governance.Put("/:id", governanceHandler.Update)
	governance.Delete("/:id", governanceHandler.Delete)

	// Pledges
	pledges := protected.Group("/pledges")
	pledges.Post("/", pledgeHandler.Create)
	pledges.Get("/", pledgeHandler.List)
	pledges.Get("/:id", pledgeHandler.Get)
	pledges.Put("/:id", pledgeHandler.Update)
	pledges.Delete("/:id", pledgeHandler.Delete)

	// Dashboard & reports
	protected.Get("/dashboard", dashboardHandler.Get)
	reports := protected.Group("/reports")
	reports.Get("/membership-growth", reportHandler.MembershipGrowth)
	reports.Get("/financial", reportHandler.FinancialReport)
	reports.Get("/gender-distribution", reportHandler.GenderDistribution)
}
