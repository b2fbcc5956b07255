package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reabilitepro/config"
	"reabilitepro/cron"
	"reabilitepro/database"
	appointmentRepo "reabilitepro/database/repository/appointment"
	chatRepo "reabilitepro/database/repository/chat"
	evaluationRepo "reabilitepro/database/repository/evaluation"
	patientRepo "reabilitepro/database/repository/patient"
	professionalRepo "reabilitepro/database/repository/professional"
	userRepoPkg "reabilitepro/database/repository/user"
	"reabilitepro/handlers"
	"reabilitepro/routes"
	"reabilitepro/services/auth"
	"reabilitepro/services/chat"
	"reabilitepro/services/evaluation"
	"reabilitepro/services/finance"
	ai "reabilitepro/services/intelligence"
	"reabilitepro/services/notification"
	"reabilitepro/services/patient"
	"reabilitepro/services/professional"
	"reabilitepro/services/schedule"
	"reabilitepro/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stripe/stripe-go/v76"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	logger, err := utils.NewLogger(cfg.Env, cfg.LogLevel)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	mongoClient, err := database.Connect(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to MongoDB: %v", err)
	}
	db := mongoClient.Database(cfg.DatabaseName)

	authCache, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisAuthDB)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to auth Redis: %v", err)
	}
	peerCache, err := utils.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisCacheDB)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to connect to cache Redis: %v", err)
	}

	stripe.Key = cfg.StripeKey
	tokens := utils.NewTokenManager(cfg.JWTSecret)

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo(db)
	patientsRepo := patientRepo.NewMongoPatientRepo(db)
	professionalsRepo := professionalRepo.NewMongoProfessionalRepo(db)
	appointmentsRepo := appointmentRepo.NewMongoAppointmentRepo(db)
	chatMessagesRepo := chatRepo.NewMongoChatRepo(db)
	evaluationsRepo := evaluationRepo.NewMongoEvaluationRepo(db)

	// Push notifications fall back to a no-op sender when Firebase
	// credentials are absent.
	var notifier notification.Service = notification.NoopService{}
	if cfg.FirebaseCredentialsFile != "" {
		fcmClient, err := utils.NewFCMClient(context.Background(), cfg.FirebaseCredentialsFile)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize FCM client: %v", err)
		}
		fcmService, err := notification.NewFCMNotificationService(userRepo, fcmClient)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
		}
		notifier = fcmService
	} else {
		logger.Warn("FIREBASE_CREDENTIALS_FILE not set, push notifications disabled")
	}

	cloudinaryStorageService, err := utils.Cloudinary(cfg)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize cloudinary storage service: %v", err)
	}

	var generator ai.ContentGenerator
	if cfg.GeminiAPIKey != "" {
		geminiClient, err := ai.NewGeminiClient(context.Background(), cfg.GeminiAPIKey)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize Gemini client: %v", err)
		}
		generator = geminiClient
	} else {
		logger.Warn("GEMINI_API_KEY not set, health-history summaries disabled")
	}

	// Reminder queue.
	reminderRedisOpt := asynq.RedisClientOpt{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisReminderQueueDB,
	}
	reminderEnqueuer := cron.NewEnqueuer(reminderRedisOpt)
	defer reminderEnqueuer.Close()
	reminderWorker := cron.StartReminderWorker(reminderRedisOpt, notifier)
	defer reminderWorker.Shutdown()

	// services.
	authService := &auth.DefaultAuthService{
		Users:         userRepo,
		Patients:      patientsRepo,
		Professionals: professionalsRepo,
		Tokens:        tokens,
		AuthCache:     authCache,
	}
	patientService := &patient.DefaultPatientService{Repo: patientsRepo}
	professionalService := &professional.DefaultProfessionalService{Repo: professionalsRepo}
	scheduleService := &schedule.DefaultScheduleService{
		Repo:          appointmentsRepo,
		Professionals: professionalsRepo,
		Notifier:      notifier,
		Reminders:     reminderEnqueuer,
		ReminderLead:  time.Duration(cfg.ReminderLeadMinutes) * time.Minute,
	}
	chatService := &chat.DefaultChatService{
		Repo:          chatMessagesRepo,
		Appointments:  scheduleService,
		Patients:      patientsRepo,
		Professionals: professionalsRepo,
		Notifier:      notifier,
		PeerCache:     peerCache,
	}
	evaluationService := &evaluation.DefaultEvaluationService{Repo: evaluationsRepo}
	financeService := &finance.DefaultFinanceService{
		Appointments:  appointmentsRepo,
		Professionals: professionalsRepo,
	}
	intelligenceService := &ai.DefaultIntelligenceService{
		Generator:   generator,
		Evaluations: evaluationsRepo,
		Patients:    patientsRepo,
	}

	// Background health checks for the /health endpoint.
	healthMonitor := &utils.HealthMonitor{}
	monitorCtx, stopMonitor := context.WithCancel(context.Background())
	defer stopMonitor()
	healthMonitor.Start(monitorCtx, mongoClient, authCache, peerCache)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	handlerBundle := &handlers.HandlerBundle{
		Tokens:    tokens,
		AuthCache: authCache,

		Auth:         handlers.NewAuthHandler(authService),
		Patient:      handlers.NewPatientHandler(patientService),
		Professional: handlers.NewProfessionalHandler(professionalService),
		Appointment:  handlers.NewAppointmentHandler(scheduleService),
		Chat:         handlers.NewChatHandler(chatService),
		Evaluation:   handlers.NewEvaluationHandler(evaluationService),
		Finance:      handlers.NewFinanceHandler(financeService),
		Intelligence: handlers.NewIntelligenceHandler(intelligenceService),
		Storage:      handlers.NewStorageHandler(cloudinaryStorageService, userRepo),
		Admin:        handlers.NewAdminHandler(userRepo),

		Health: healthMonitor,
	}

	routes.RegisterRoutes(router, handlerBundle, cfg.MaxRequestsPerMin)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
