package handlers

import (
	"reabilitepro/utils"

	"github.com/go-redis/redis/v8"
)

// HandlerBundle carries every constructed handler plus the dependencies the
// route middleware needs. main builds one bundle and hands it to routes.
type HandlerBundle struct {
	Tokens    *utils.TokenManager
	AuthCache *redis.Client

	Auth         *AuthHandler
	Patient      *PatientHandler
	Professional *ProfessionalHandler
	Appointment  *AppointmentHandler
	Chat         *ChatHandler
	Evaluation   *EvaluationHandler
	Finance      *FinanceHandler
	Intelligence *IntelligenceHandler
	Storage      *StorageHandler
	Admin        *AdminHandler

	Health *utils.HealthMonitor
}
