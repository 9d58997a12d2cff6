package main

import (
	"github.com/gin-gonic/gin"

	"care-connect.backend/internal/interfaces/http/handlers"
	"care-connect.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler         *handlers.AuthHandler
	accountHandler      *handlers.AccountHandler
	workerHandler       *handlers.WorkerHandler
	verificationHandler *handlers.VerificationHandler
	profileHandler      *handlers.ProfileHandler
	adminHandler        *handlers.AdminHandler
	authMiddleware      gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", d.authHandler.Register)
			auth.POST("/login", d.authHandler.Login)
			auth.POST("/verify-email", d.authHandler.VerifyEmail)
			auth.POST("/refresh", d.authHandler.RefreshToken)
			auth.POST("/logout", d.authHandler.Logout)
			auth.POST("/forgot-password", d.authHandler.ForgotPassword)
			auth.POST("/reset-password", d.authHandler.ResetPassword)

			auth.GET("/me", d.authMiddleware, d.authHandler.GetMe)
			auth.POST("/change-password", d.authMiddleware, d.authHandler.ChangePassword)
			auth.GET("/sessions", d.authMiddleware, d.authHandler.ListSessions)
			auth.DELETE("/sessions/:id", d.authMiddleware, d.authHandler.RevokeSession)
		}

		// Linked account routes (protected)
		accounts := v1.Group("/accounts")
		accounts.Use(d.authMiddleware)
		{
			accounts.POST("", middleware.IdempotencyMiddleware(), d.accountHandler.LinkAccount)
			accounts.GET("", d.accountHandler.ListAccounts)
			accounts.DELETE("/:id", d.accountHandler.UnlinkAccount)
		}

		// Worker self-service routes (protected, workers only)
		workers := v1.Group("/workers")
		workers.Use(d.authMiddleware, middleware.RequireWorker())
		{
			workers.GET("/me", d.workerHandler.GetProfile)
			workers.PUT("/me", d.workerHandler.UpdateProfile)
			workers.GET("/me/requirements", d.workerHandler.ListRequirements)
			workers.POST("/me/requirements/:id/document", middleware.IdempotencyMiddleware(), d.workerHandler.SubmitDocument)
			workers.POST("/me/submit", middleware.IdempotencyMiddleware(), d.workerHandler.SubmitForReview)
		}

		// Verification review routes (protected, coordinators only)
		verification := v1.Group("/verification")
		verification.Use(d.authMiddleware, middleware.RequireCoordinator())
		{
			verification.GET("/pending", d.verificationHandler.ListPendingReview)
			verification.GET("/workers/:id", d.verificationHandler.GetWorkerProfile)
			verification.POST("/workers/:id/requirements", d.verificationHandler.CreateRequirement)
			verification.POST("/workers/:id/approve", d.verificationHandler.ApproveWorker)
			verification.POST("/workers/:id/reject", d.verificationHandler.RejectWorker)
			verification.POST("/requirements/:id/review", d.verificationHandler.ReviewRequirement)
		}

		// Role profile routes (protected)
		profiles := v1.Group("/profiles")
		profiles.Use(d.authMiddleware)
		{
			profiles.GET("/client", middleware.RequireClient(), d.profileHandler.GetClientProfile)
			profiles.PUT("/client", middleware.RequireClient(), d.profileHandler.UpdateClientProfile)
			profiles.GET("/coordinator", middleware.RequireCoordinator(), d.profileHandler.GetCoordinatorProfile)
			profiles.PUT("/coordinator", middleware.RequireCoordinator(), d.profileHandler.UpdateCoordinatorProfile)
		}

		// Admin routes (protected, coordinators only)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireCoordinator())
		{
			admin.GET("/users", d.adminHandler.ListUsers)
			admin.PUT("/users/:id/status", d.adminHandler.ChangeUserStatus)
			admin.PUT("/users/:id/role", d.adminHandler.ChangeUserRole)
			admin.GET("/audit-logs", d.adminHandler.ListAuditLogs)
		}
	}
}
