package app

import (
	"net/http"

	"fitlife-service/internal/handlers"
	"fitlife-service/internal/middleware"
	authservice "fitlife-service/internal/service/auth"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type routerHandlers struct {
	auth      *handlers.AuthHandler
	member    *handlers.MemberHandler
	plan      *handlers.PlanHandler
	payment   *handlers.PaymentHandler
	schedule  *handlers.ScheduleHandler
	checkin   *handlers.CheckinHandler
	workout   *handlers.WorkoutHandler
	settings  *handlers.SettingsHandler
	dashboard *handlers.DashboardHandler
	ws        *handlers.WSHandler
}

func newRouter(h routerHandlers, authSvc *authservice.AuthService, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Websocket endpoint authenticates via the token query parameter
	// inside the handler.
	r.GET("/ws", h.ws.Serve)

	api := r.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", h.auth.Signup)
		authGroup.POST("/signin", h.auth.Signin)
		authGroup.GET("/me", middleware.AuthMiddleware(authSvc), h.auth.Me)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))
	{
		members := protected.Group("/members")
		{
			members.POST("", h.member.Create)
			members.GET("", h.member.List)
			members.GET("/:id", h.member.Get)
			members.PUT("/:id", h.member.Update)
			members.PUT("/:id/deactivate", h.member.Deactivate)
		}

		plans := protected.Group("/plans")
		{
			plans.POST("", h.plan.Create)
			plans.GET("", h.plan.List)
			plans.GET("/all", h.plan.ListAll)
			plans.GET("/:id", h.plan.Get)
			plans.PUT("/:id", h.plan.Update)
			plans.PUT("/:id/activate", h.plan.Activate)
			plans.PUT("/:id/deactivate", h.plan.Deactivate)
		}

		payments := protected.Group("/payments")
		{
			payments.POST("", h.payment.Create)
			payments.GET("", h.payment.List)
			payments.GET("/:id", h.payment.Get)
			payments.PUT("/:id", h.payment.Update)
		}

		classes := protected.Group("/classes")
		{
			classes.POST("", h.schedule.CreateClass)
			classes.GET("", h.schedule.ListClasses)
			classes.GET("/:id", h.schedule.GetClass)
			classes.PUT("/:id", h.schedule.UpdateClass)
		}

		reservations := protected.Group("/schedules/reservations")
		{
			reservations.POST("", h.schedule.CreateReservation)
			reservations.GET("", h.schedule.ListReservations)
			reservations.DELETE("/:id", h.schedule.CancelReservation)
		}

		checkins := protected.Group("/checkin")
		{
			checkins.POST("", h.checkin.Create)
			checkins.GET("", h.checkin.List)
			checkins.GET("/member/:id", h.checkin.ListByMember)
		}

		exercises := protected.Group("/exercises")
		{
			exercises.POST("", h.workout.CreateExercise)
			exercises.GET("", h.workout.ListExercises)
			exercises.DELETE("/:id", h.workout.DeleteExercise)
		}

		workouts := protected.Group("/workouts")
		{
			workouts.POST("", h.workout.CreateWorkout)
			workouts.GET("", h.workout.ListWorkouts)
			workouts.GET("/:id", h.workout.GetWorkout)
			workouts.PUT("/:id", h.workout.UpdateWorkout)
			workouts.DELETE("/:id", h.workout.DeleteWorkout)
			workouts.POST("/:id/exercises", h.workout.AttachExercise)
			workouts.DELETE("/:id/exercises/:exerciseId", h.workout.DetachExercise)
		}

		settings := protected.Group("/settings")
		{
			settings.GET("", h.settings.Get)
			settings.PUT("", h.settings.Update)
			settings.GET("/notifications", h.settings.GetNotifications)
			settings.PUT("/notifications", h.settings.UpdateNotifications)
		}

		protected.GET("/dashboard/stats", h.dashboard.Stats)
	}

	return r
}
