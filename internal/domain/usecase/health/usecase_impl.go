package health

import (
	"weather-widget/internal/domain/gateway/store"
	"weather-widget/internal/domain/model"
)

type healthUseCase struct {
	sessionGateway store.SessionGateway
}

func NewHealthUseCase(sessionGateway store.SessionGateway) UseCase {
	return &healthUseCase{
		sessionGateway: sessionGateway,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	sessionHealth := useCase.sessionGateway.Health()

	overallStatus := model.StatusUp
	if sessionHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:       overallStatus,
		SessionStore: sessionHealth,
	}
}
