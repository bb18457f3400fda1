package rbac

import (
	"log/slog"

	"yacht-charter/internal/domain/policy"
	"yacht-charter/internal/domain/user"
	"yacht-charter/internal/pkg/config"
	"yacht-charter/internal/pkg/errs"

	"github.com/casbin/casbin"
)

// roleModel grants a capability when the role (or a role it inherits) holds
// a matching policy row.
const roleModel = `
[request_definition]
r = sub, act

[policy_definition]
p = sub, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.act == p.act
`

// Enforcer resolves role capabilities through casbin.
type Enforcer struct {
	e *casbin.Enforcer
}

// NewEnforcer loads the model and policy files when configured, otherwise
// the built-in role table.
func NewEnforcer(cfg config.RBACConfig) (*Enforcer, error) {
	if cfg.ModelPath != "" && cfg.PolicyPath != "" {
		e, err := casbin.NewEnforcerSafe(cfg.ModelPath, cfg.PolicyPath)
		if err != nil {
			return nil, errs.Wrap(err, "failed to load rbac policy")
		}
		slog.Info("rbac policy loaded", "model", cfg.ModelPath, "policy", cfg.PolicyPath)
		return &Enforcer{e: e}, nil
	}
	return NewDefaultEnforcer()
}

func NewDefaultEnforcer() (*Enforcer, error) {
	e, err := casbin.NewEnforcerSafe(casbin.NewModel(roleModel))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build rbac enforcer")
	}
	for role, caps := range policy.DefaultRoleCapabilities() {
		for _, c := range caps {
			e.AddPolicy(string(role), string(c))
		}
	}
	return &Enforcer{e: e}, nil
}

func (r *Enforcer) Allows(role user.Role, capability policy.Capability) bool {
	ok, err := r.e.EnforceSafe(string(role), string(capability))
	if err != nil {
		slog.Error("rbac enforce failed", "role", string(role), "capability", string(capability), "error", err)
		return false
	}
	return ok
}

var _ policy.CapabilityResolver = (*Enforcer)(nil)
