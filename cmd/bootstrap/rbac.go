package bootstrap

import (
	"yacht-charter/internal/domain/policy"
	"yacht-charter/internal/infra/rbac"
	"yacht-charter/internal/pkg/config"

	"go.uber.org/fx"
)

var RBACModule = fx.Module("rbac",
	fx.Provide(
		NewCapabilityResolver,
	),
)

func NewCapabilityResolver(cfg config.Config) (policy.CapabilityResolver, error) {
	e, err := rbac.NewEnforcer(cfg.RBAC)
	if err != nil {
		return nil, err
	}
	return e, nil
}
