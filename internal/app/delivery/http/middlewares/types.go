package middlewares

import (
	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/config"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/contracts"
)

type Middlewares struct {
	Log            *zap.Logger
	SessionService contracts.SessionService
	InternalConfig *config.InternalConfig
	Enforcer       *casbin.Enforcer
}

func NewMiddlewares(
	log *zap.Logger,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	enforcer *casbin.Enforcer,
) *Middlewares {
	return &Middlewares{
		Log:            log,
		SessionService: sessionService,
		InternalConfig: internalConfig,
		Enforcer:       enforcer,
	}
}
