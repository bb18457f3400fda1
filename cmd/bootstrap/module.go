package bootstrap

import (
	"yacht-charter/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is the HTTP API application.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	CacheModule,
	RBACModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)

// WorkerModule runs the notification relay and the idempotency janitor.
var WorkerModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	components.PersistenceModule,
	components.WorkerModule,
)
