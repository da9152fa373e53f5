package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"fitlife-service/internal/config"
	"fitlife-service/internal/db"
	"fitlife-service/internal/handlers"
	"fitlife-service/internal/pkg/jwt"
	"fitlife-service/internal/pkg/session"
	"fitlife-service/internal/repository/postgres"
	authservice "fitlife-service/internal/service/auth"
	checkinservice "fitlife-service/internal/service/checkin"
	dashboardservice "fitlife-service/internal/service/dashboard"
	memberservice "fitlife-service/internal/service/member"
	paymentservice "fitlife-service/internal/service/payment"
	planservice "fitlife-service/internal/service/plan"
	scheduleservice "fitlife-service/internal/service/schedule"
	settingsservice "fitlife-service/internal/service/settings"
	workoutservice "fitlife-service/internal/service/workout"
	ws "fitlife-service/internal/websocket"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Server owns every long-lived resource: the connection pools, the
// websocket hub and the HTTP listener.
type Server struct {
	cfg    config.AppConfig
	logger *zap.Logger

	pool  *pgxpool.Pool
	redis *redis.Client
	hub   *ws.Hub

	http      *http.Server
	cancelHub context.CancelFunc
}

// NewServer connects to postgres and redis, wires repositories, services
// and handlers, and builds the router. Redis is optional: if it is
// unreachable the server runs without rate limiting and stats caching.
func NewServer(ctx context.Context, cfg config.AppConfig, logger *zap.Logger) (*Server, error) {
	pool, err := db.ConnectDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	redisClient, err := db.NewRedisClient(db.RedisConfig{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		PoolSize: 10,
	})
	if err != nil {
		logger.Warn("redis unavailable, continuing without cache and rate limiting", zap.Error(err))
		redisClient = nil
	}

	generator, err := jwt.NewGenerator(cfg.JWT)
	if err != nil {
		pool.Close()
		return nil, err
	}
	verifier, err := jwt.NewVerifier(cfg.JWT)
	if err != nil {
		pool.Close()
		return nil, err
	}

	// Repositories
	txDB := postgres.NewDB(pool)
	memberRepo := postgres.NewMemberRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	paymentRepo := postgres.NewPaymentRepository(pool)
	classRepo := postgres.NewClassRepository(pool)
	reservationRepo := postgres.NewReservationRepository(pool)
	checkinRepo := postgres.NewCheckinRepository(pool)
	workoutRepo := postgres.NewWorkoutRepository(pool)
	exerciseRepo := postgres.NewExerciseRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)
	authRepo := postgres.NewAuthRepository(pool)

	// Websocket hub
	hub := ws.NewHub(logger)
	hubCtx, cancelHub := context.WithCancel(context.Background())
	go hub.Run(hubCtx)

	var limiter authservice.SigninLimiter
	if redisClient != nil {
		limiter = session.NewRateLimiter(redisClient)
	}

	// Services
	authSvc := authservice.NewAuthService(authRepo, generator, verifier, limiter, logger)
	memberSvc := memberservice.NewMemberService(memberRepo, logger)
	planSvc := planservice.NewPlanService(planRepo, logger)
	paymentSvc := paymentservice.NewPaymentService(paymentRepo, memberRepo, planRepo, txDB, hub, logger)
	scheduleSvc := scheduleservice.NewScheduleService(classRepo, reservationRepo, memberRepo, txDB, logger)
	checkinSvc := checkinservice.NewCheckinService(checkinRepo, memberRepo, hub, logger)
	workoutSvc := workoutservice.NewWorkoutService(workoutRepo, exerciseRepo, logger)
	settingsSvc := settingsservice.NewSettingsService(settingsRepo, logger)
	dashboardSvc := dashboardservice.NewDashboardService(dashboardRepo, redisClient, logger)

	// Handlers
	h := routerHandlers{
		auth:      handlers.NewAuthHandler(authSvc),
		member:    handlers.NewMemberHandler(memberSvc),
		plan:      handlers.NewPlanHandler(planSvc),
		payment:   handlers.NewPaymentHandler(paymentSvc),
		schedule:  handlers.NewScheduleHandler(scheduleSvc),
		checkin:   handlers.NewCheckinHandler(checkinSvc),
		workout:   handlers.NewWorkoutHandler(workoutSvc),
		settings:  handlers.NewSettingsHandler(settingsSvc),
		dashboard: handlers.NewDashboardHandler(dashboardSvc),
		ws:        handlers.NewWSHandler(hub, authSvc, logger),
	}

	router := newRouter(h, authSvc, logger)

	return &Server{
		cfg:    cfg,
		logger: logger,
		pool:   pool,
		redis:  redisClient,
		hub:    hub,
		http: &http.Server{
			Addr:         cfg.HTTPAddr,
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		cancelHub: cancelHub,
	}, nil
}

// Run blocks serving HTTP until the listener fails or Shutdown is called.
func (s *Server) Run() error {
	s.logger.Info("server listening", zap.String("addr", s.cfg.HTTPAddr))
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and releases the pools.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.http.Shutdown(ctx)

	s.cancelHub()
	if s.redis != nil {
		s.redis.Close()
	}
	s.pool.Close()

	return err
}
