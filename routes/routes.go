package routes

import (
	"net/http"
	"time"

	"reabilitepro/handlers"
	"reabilitepro/middleware"
	"reabilitepro/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers registration and session endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.Tokens, hb.AuthCache))
		api.POST("/logout", hb.Auth.LogoutHandler)
		api.GET("/me", hb.Auth.MeHandler)
		api.PUT("/fcm-token", hb.Auth.FCMTokenHandler)
	}
}

// RegisterPatientRoutes registers patient profile endpoints, including the
// records a professional manages on behalf of patients.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/patients")
	api.Use(middleware.JWTAuthMiddleware(hb.Tokens, hb.AuthCache))
	{
		me := api.Group("")
		me.Use(middleware.RequireRole(models.RolePatient))
		me.GET("/me", hb.Patient.GetMyProfileHandler)
		me.PUT("/me", hb.Patient.UpdateMyProfileHandler)

		managed := api.Group("")
		managed.Use(middleware.RequireRole(models.RoleProfessional))
		managed.GET("", hb.Patient.ListManagedHandler)
		managed.POST("", hb.Patient.CreateManagedHandler)
		managed.GET("/:id", hb.Patient.GetPatientHandler)
		managed.PUT("/:id", hb.Patient.UpdatePatientHandler)
		managed.DELETE("/:id", hb.Patient.DeleteManagedHandler)
	}
}

// RegisterProfessionalRoutes registers the professional directory and the
// professional's own profile endpoints.
func RegisterProfessionalRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/professionals")
	api.Use(middleware.JWTAuthMiddleware(hb.Tokens, hb.AuthCache))
	{
		api.GET("", hb.Professional.ListHandler)

		me := api.Group("")
		me.Use(middleware.RequireRole(models.RoleProfessional))
		me.GET("/me", hb.Professional.GetMyProfileHandler)
		me.PUT("/me", hb.Professional.UpdateMyProfileHandler)

		api.GET("/:id", hb.Professional.GetByIDHandler)
	}
}

// RegisterAppointmentRoutes sets up the scheduling endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	api.Use(middleware.JWTAuthMiddleware(hb.Tokens, hb.AuthCache))
	{
		api.POST("", middleware.RequireRole(models.RolePatient), hb.Appointment.BookHandler)
		api.GET("/upcoming", hb.Appointment.UpcomingHandler)
		api.GET("/history", hb.Appointment.HistoryHandler)
		api.GET("/:id", hb.Appointment.GetHandler)
		api.PUT("/:id/status", hb.Appointment.UpdateStatusHandler)
	}
}

// RegisterChatRoutes sets up the appointment-derived chat endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	api.Use(middleware.JWTAuthMiddleware(hb.Tokens, hb.AuthCache))
	{
		api.GET("/conversations", hb.Chat.ConversationsHandler)
		api.GET("/conversations/:id/messages", hb.Chat.HistoryHandler)
		api.POST("/messages", hb.Chat.SendHandler)
	}
}

// RegisterEvaluationRoutes sets up the clinical evaluation endpoints. Writes
// are restricted to professionals; patients may read their own records.
func RegisterEvaluationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/evaluations")
	api.Use(middleware.JWTAuthMiddleware(hb.Tokens, hb.AuthCache))
	{
		api.GET("/patient/:id", hb.Evaluation.ListByPatientHandler)
		api.GET("/:id", hb.Evaluation.GetHandler)

		writes := api.Group("")
		writes.Use(middleware.RequireRole(models.RoleProfessional))
		writes.POST("", hb.Evaluation.CreateHandler)
		writes.PUT("/:id", hb.Evaluation.UpdateHandler)
		writes.DELETE("/:id", hb.Evaluation.DeleteHandler)
	}
}

// RegisterFinanceRoutes sets up revenue reporting and consultation payments.
func RegisterFinanceRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/finances")
	api.Use(middleware.JWTAuthMiddleware(hb.Tokens, hb.AuthCache))
	{
		api.GET("/summary", middleware.RequireRole(models.RoleProfessional), hb.Finance.SummaryHandler)
		api.POST("/payment-intent", middleware.RequireRole(models.RolePatient), hb.Finance.PaymentIntentHandler)
	}
}

// RegisterAIRoutes registers AI endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.Tokens, hb.AuthCache))
		api.POST("/summarize-health-history", middleware.RequireRole(models.RoleProfessional), hb.Intelligence.SummarizeHandler)
	}
}

// RegisterStorageRoutes sets up file upload endpoints.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	api.Use(middleware.JWTAuthMiddleware(hb.Tokens, hb.AuthCache))
	{
		api.POST("/avatar", hb.Storage.UploadAvatarHandler)
		api.GET("/download-url", hb.Storage.DownloadURLHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.Tokens, hb.AuthCache), middleware.RequireAdmin())
		adminGroup.GET("/users", hb.Admin.ListUsersHandler)
		adminGroup.GET("/professionals", hb.Professional.ListHandler)
		adminGroup.PUT("/users/:id/admin", hb.Admin.SetAdminHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", func(c *gin.Context) {
		status := hb.Health.Status()
		code := http.StatusOK
		if !status.Healthy {
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, status)
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, requestsPerMin int) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware(requestsPerMin))

	RegisterAuthRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterProfessionalRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterEvaluationRoutes(r, hb)
	RegisterFinanceRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
