// Package api wires the gin engine: sessions, CORS, the OIDC boundary
// and the tiered route groups.
package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/codetrail/codetrail/api/auth"
	"github.com/codetrail/codetrail/api/handler"
	"github.com/codetrail/codetrail/config"
	"github.com/codetrail/codetrail/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

type Server struct {
	cfg          *config.Config
	ginEngine    *gin.Engine
	db           *database.DB
	authProvider *auth.Provider
}

func New(ctx context.Context, cfg *config.Config, db *database.DB) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	authProvider, err := auth.New(ctx, cfg.Auth.OIDC, db)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth provider: %w", err)
	}

	return &Server{
		cfg:          cfg,
		ginEngine:    gin.Default(),
		db:           db,
		authProvider: authProvider,
	}, nil
}

func (s *Server) setupSession() {
	store := cookie.NewStore([]byte(s.cfg.SessionKey))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   s.cfg.SessionMaxAge,
		HttpOnly: true,
		Secure:   false, // Set to true in production
		SameSite: http.SameSiteLaxMode,
	})
	s.ginEngine.Use(sessions.Sessions("codetrail_session", store))
}

func (s *Server) setupCORS() {
	if len(s.cfg.AllowedOrigins) == 0 {
		return
	}
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = s.cfg.AllowedOrigins
	corsCfg.AllowCredentials = true
	corsCfg.AddAllowMethods(http.MethodPatch)
	s.ginEngine.Use(cors.New(corsCfg))
}

func (s *Server) setupRoutes() {
	s.setupCORS()
	s.setupSession()

	h := handler.New(s.db)

	s.ginEngine.GET("/auth/login", s.authProvider.Login)
	s.ginEngine.GET("/auth/callback", s.authProvider.Callback)
	s.ginEngine.GET("/auth/logout", s.authProvider.Logout)

	requireAuth := s.authProvider.RequireAuth()
	requireAdmin := s.authProvider.RequireAdmin()
	requireSuperAdmin := s.authProvider.RequireSuperAdmin()

	tags := s.ginEngine.Group("/api/tags")
	{
		tags.GET("", h.ListTags)
		tags.POST("", requireAuth, h.CreateTag)

		tagsAdmin := tags.Group("", requireAuth, requireAdmin)
		tagsAdmin.GET("/unapproved", h.ListUnapprovedTags)
		tagsAdmin.PUT("/update", h.UpdateTag)
		tagsAdmin.PATCH("/approved-status", h.ToggleTagApproval)
		tagsAdmin.DELETE("/:tagId", h.DeleteTag)
	}

	tutorials := s.ginEngine.Group("/api/tutorials")
	{
		tutorials.GET("", h.ListTutorials)
		tutorials.GET("/tutorial/:tutorialId", h.GetTutorial)
		tutorials.GET("/tag/:tagId", h.ListTutorialsByTag)

		tutorialsAuth := tutorials.Group("", requireAuth)
		tutorialsAuth.POST("", h.CreateTutorial)
		tutorialsAuth.POST("/upvote/:tutorialId", h.AddUpvote)
		tutorialsAuth.DELETE("/upvote/:tutorialId", h.RemoveUpvote)
		tutorialsAuth.POST("/comment/:tutorialId", h.AddComment)
		tutorialsAuth.DELETE("/comment/:tutorialId/:commentId", h.RemoveComment)
		tutorialsAuth.DELETE("/cancel/:tutorialId", h.CancelTutorial)

		tutorialsAdmin := tutorials.Group("", requireAuth, requireAdmin)
		tutorialsAdmin.GET("/unapproved", h.ListUnapprovedTutorials)
		tutorialsAdmin.PUT("/update/:tutorialId", h.UpdateTutorial)
		tutorialsAdmin.PATCH("/approved-status", h.ToggleTutorialApproval)
		tutorialsAdmin.DELETE("/tutorial/:tutorialId", h.DeleteTutorial)
	}

	tracks := s.ginEngine.Group("/api/tracks")
	{
		tracks.GET("", h.ListTracks)
		tracks.GET("/track/:trackId", h.GetTrack)

		tracksAuth := tracks.Group("", requireAuth)
		tracksAuth.POST("", h.CreateTrack)
		tracksAuth.DELETE("/cancel/:trackId", h.CancelTrack)

		tracksAdmin := tracks.Group("", requireAuth, requireAdmin)
		tracksAdmin.GET("/unapproved", h.ListUnapprovedTracks)
		tracksAdmin.PUT("/update/:trackId", h.UpdateTrack)
		tracksAdmin.PATCH("/approved-status", h.ToggleTrackApproval)
		tracksAdmin.DELETE("/track/:trackId", h.DeleteTrack)
	}

	user := s.ginEngine.Group("/api/user", requireAuth)
	{
		user.GET("/submitted-tutorials", h.ListSubmittedTutorials)
		user.GET("/favorites", h.ListFavorites)
		user.POST("/favorites/:tutorialId", h.AddFavorite)
		user.DELETE("/favorites/:tutorialId", h.RemoveFavorite)
		user.GET("/tracks", h.ListSubscriptions)
		user.POST("/tracks/:trackId", h.Subscribe)
		user.PATCH("/tracks/:trackId", h.UpdateTrackProgress)
		user.DELETE("/tracks/:trackId", h.Unsubscribe)
		user.GET("/notifications", h.ListNotifications)
		user.PATCH("/notifications", h.MarkAllNotificationsRead)
		user.PATCH("/notifications/:notificationId", h.MarkNotificationRead)
		user.PUT("/update", h.UpdateProfile)

		userSuperAdmin := user.Group("", requireSuperAdmin)
		userSuperAdmin.GET("/all-users", h.ListUsers)
		userSuperAdmin.PATCH("/admin-status", h.ToggleAdmin)
		userSuperAdmin.PATCH("/super-admin-status", h.ToggleSuperAdmin)
		userSuperAdmin.DELETE("/delete/:userId", h.DeleteUser)
	}

	feedbacks := s.ginEngine.Group("/api/feedbacks", requireAuth)
	{
		feedbacks.POST("", h.CreateFeedback)

		feedbacksSuperAdmin := feedbacks.Group("", requireSuperAdmin)
		feedbacksSuperAdmin.GET("", h.ListFeedbacks)
		feedbacksSuperAdmin.GET("/:feedbackId", h.GetFeedback)
		feedbacksSuperAdmin.PATCH("/read", h.MarkAllFeedbacksRead)
		feedbacksSuperAdmin.PATCH("/read/:feedbackId", h.MarkFeedbackRead)
		feedbacksSuperAdmin.PATCH("/unread/:feedbackId", h.MarkFeedbackUnread)
		feedbacksSuperAdmin.DELETE("/:feedbackId", h.DeleteFeedback)
	}
}

func (s *Server) Run() error {
	s.setupRoutes()

	return s.ginEngine.Run(s.cfg.Listen)
}
