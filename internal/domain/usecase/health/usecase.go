package health

import "weather-widget/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
