package health

import "go-news/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
