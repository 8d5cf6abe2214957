package router

import (
	"EquiLearn/internal/config"
	"EquiLearn/internal/handler"
	"EquiLearn/internal/middleware"
	"EquiLearn/internal/pkg"
	"EquiLearn/internal/service"

	"github.com/gin-gonic/gin"
)

func InitRouter(cfg *config.Config) *gin.Engine {
	r := gin.Default()

	smtpCfg := pkg.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	}

	userSvc := service.NewUserService()

	user := handler.NewUserHandler()
	school := handler.NewSchoolHandler()
	need := handler.NewNeedHandler()
	donation := handler.NewDonationHandler(userSvc, smtpCfg)
	featured := handler.NewFeaturedHandler()
	pool := handler.NewPoolHandler()
	impact := handler.NewImpactHandler()
	admin := handler.NewAdminHandler()

	userGroup := r.Group("/api/user")
	{
		userGroup.POST("/register", user.Register)
		userGroup.POST("/login", user.Login)
		userGroup.POST("/logout", middleware.AuthMiddleware(), user.Logout)
	}

	tokenGroup := r.Group("/api/token")
	{
		tokenGroup.POST("/refresh", user.TokenRefresh)
	}

	// School registration and need submission are open: schools reach the
	// public catalog only after admin verification and approval anyway.
	schoolGroup := r.Group("/api/schools")
	{
		schoolGroup.GET("", school.List)
		schoolGroup.POST("", school.Create)
	}

	needGroup := r.Group("/api/needs")
	{
		needGroup.POST("", need.Create)
	}

	// Donation submission works with or without a session; history requires one.
	donationGroup := r.Group("/api/donations")
	{
		donationGroup.POST("", middleware.OptionalAuthMiddleware(), donation.Donate)
		donationGroup.GET("", middleware.AuthMiddleware(), donation.History)
	}

	r.GET("/api/impact", impact.Stats)

	featuredGroup := r.Group("/api/featured-schools")
	{
		featuredGroup.GET("", featured.List)
		featuredGroup.POST("/:id/donate", middleware.OptionalAuthMiddleware(), featured.Donate)
	}

	poolGroup := r.Group("/api/pools")
	{
		poolGroup.GET("", pool.List)
		poolGroup.POST("/:id/join", middleware.AuthMiddleware(), pool.Join)
	}

	adminGroup := r.Group("/api/admin")
	adminGroup.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		adminGroup.GET("/needs/pending", admin.PendingNeeds)
		adminGroup.POST("/needs/:id/approve", admin.ApproveNeed)
		adminGroup.POST("/needs/:id/reject", admin.RejectNeed)
		adminGroup.GET("/schools", admin.ListSchools)
		adminGroup.POST("/schools/:id/verify", admin.VerifySchool)
	}

	return r
}
