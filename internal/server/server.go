package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"metagym/internal/audit"
	"metagym/internal/auth"
	"metagym/internal/config"
	"metagym/internal/email"
	"metagym/internal/exercise"
	"metagym/internal/gym"
	"metagym/internal/registration"
	"metagym/internal/routine"
	"metagym/internal/tenant"
	"metagym/internal/user"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

func New(db *sqlx.DB, redisClient *redis.Client, cfg *config.Config, emailService *email.Service) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLoggingMiddleware())
	router.Use(MetricsMiddleware())
	router.Use(corsMiddleware())

	gymRepo := gym.NewRepository(db)
	gymService := gym.NewService(gymRepo)
	gymHandler := gym.NewHandler(gymService, cfg.TenantID)

	userRepo := user.NewRepository(db)
	resetTokens := user.NewResetTokenStore(redisClient)
	userService := user.NewService(userRepo, resetTokens, emailService, cfg.JWTSecret)
	userHandler := user.NewHandler(userService, cfg.ResetURL)

	auditRepo := audit.NewRepository(db)
	auditHandler := audit.NewHandler(auditRepo, cfg.TenantID)

	registrationService := registration.NewService(
		gymRepo, userService, auditRepo, emailService,
		cfg.TenantID, cfg.LoginURL,
	)
	registrationHandler := registration.NewHandler(registrationService)

	currentGymStore := tenant.NewStore(redisClient)
	gymResolver := tenant.NewResolver(userRepo, gymRepo, currentGymStore)
	tenantHandler := tenant.NewHandler(currentGymStore, gymResolver)

	exerciseHandler := exercise.NewHandler(exercise.NewRepository(db), cfg.TenantID)
	routineHandler := routine.NewHandler(routine.NewRepository(db), cfg.TenantID)

	// Public registration is rate limited; it creates accounts and sends
	// email, so it is the obvious abuse target.
	router.POST("/register", RateLimitMiddleware(1, 5), registrationHandler.Register)

	public := router.Group("/auth")
	{
		public.POST("/login", userHandler.Login)
		public.POST("/refresh", userHandler.Refresh)
		public.POST("/forgot-password", RateLimitMiddleware(0.5, 3), userHandler.ForgotPassword)
		public.POST("/reset-password", userHandler.ResetPassword)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	protected := router.Group("/")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", userHandler.GetMe)
		protected.GET("/me/gym", tenantHandler.ResolveGym)
		protected.GET("/me/current-gym", tenantHandler.GetCurrentGym)
		protected.PUT("/me/current-gym", tenantHandler.SetCurrentGym)
		protected.DELETE("/me/current-gym", tenantHandler.ClearCurrentGym)
		protected.GET("/gyms", gymHandler.ListGyms)
		protected.GET("/gyms/:gymID", gymHandler.GetGym)
		protected.GET("/exercises", exerciseHandler.ListExercises)
		protected.GET("/routines", routineHandler.ListRoutines)
		protected.GET("/routines/:routineID", routineHandler.GetRoutine)
	}

	adminMiddleware := auth.RequireRole(user.RoleAdmin)
	admin := router.Group("/")
	admin.Use(authMiddleware, adminMiddleware)
	{
		admin.PATCH("/gyms/:gymID", gymHandler.UpdateGym)
		admin.GET("/registration-requests", auditHandler.ListRegistrationRequests)
		admin.POST("/exercises", exerciseHandler.CreateExercise)
		admin.PATCH("/exercises/:exerciseID", exerciseHandler.UpdateExercise)
		admin.DELETE("/exercises/:exerciseID", exerciseHandler.DeleteExercise)
		admin.POST("/routines", routineHandler.CreateRoutine)
		admin.PATCH("/routines/:routineID", routineHandler.UpdateRoutine)
		admin.DELETE("/routines/:routineID", routineHandler.DeleteRoutine)
	}

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	router.GET("/test-email", TestEmail(emailService))
	SetupSwagger(router)

	return &Server{
		router: router,
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:    ":" + port,
		Handler: s.router,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}

func (s *Server) Router() *gin.Engine {
	return s.router
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
