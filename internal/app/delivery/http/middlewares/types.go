package middlewares

import (
	"internistika-service/internal/app/config"
	"internistika-service/internal/app/services/shared/jwtmanager"
	"internistika-service/internal/app/services/shared/redis"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log             *zap.Logger
	JWTManager      *jwtmanager.JWTManager
	RedisRepository redis.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	jwtManager *jwtmanager.JWTManager,
	redisRepository redis.RedisRepository,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:             logger,
		JWTManager:      jwtManager,
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}
