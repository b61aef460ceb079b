package rbac

import (
	_ "embed"
	"fmt"
	"sort"

	"github.com/vbasilioo/workly-web/internal/rbac/infra"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed policy.yaml
var defaultPolicy []byte

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(req EnforceRequest) (bool, error)
	Permissions(role string) (PermissionsResponse, error)
}

type service struct {
	enforcer *casbin.SyncedEnforcer
	logger   *zap.Logger
}

// NewService loads the built-in role policy.
func NewService(logger ...*zap.Logger) (Service, error) {
	return NewServiceFromPolicy(defaultPolicy, logger...)
}

func NewServiceFromPolicy(policy []byte, logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	enforcer, err := infra.NewEnforcer(infra.Model)
	if err != nil {
		return nil, fmt.Errorf("rbac: build enforcer: %w", err)
	}

	var pf policyFile
	if err := yaml.Unmarshal(policy, &pf); err != nil {
		return nil, fmt.Errorf("rbac: parse policy: %w", err)
	}

	for role, rp := range pf.Roles {
		for _, parent := range rp.Inherits {
			if _, err := enforcer.AddGroupingPolicy(role, parent); err != nil {
				return nil, err
			}
		}
		for _, p := range rp.Permissions {
			for _, act := range p.Actions {
				if _, err := enforcer.AddPolicy(role, p.Resource, act); err != nil {
					return nil, err
				}
			}
		}
	}
	l.Info("rbac policy loaded", zap.Int("roles", len(pf.Roles)))

	return &service{enforcer: enforcer, logger: l}, nil
}

func (s *service) Enforce(req EnforceRequest) (bool, error) {
	if req.Role == "" {
		return false, nil
	}

	allowed, err := s.enforcer.Enforce(req.Role, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}

func (s *service) Permissions(role string) (PermissionsResponse, error) {
	out := PermissionsResponse{Role: role, Permissions: map[string][]string{}}
	if role == "" {
		return out, nil
	}

	perms, err := s.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return out, err
	}
	for _, p := range perms {
		// p = [sub, obj, act]
		if len(p) < 3 {
			continue
		}
		out.Permissions[p[1]] = appendUnique(out.Permissions[p[1]], p[2])
	}
	for k := range out.Permissions {
		sort.Strings(out.Permissions[k])
	}
	return out, nil
}

func appendUnique(list []string, v string) []string {
	for _, x := range list {
		if x == v {
			return list
		}
	}
	return append(list, v)
}
