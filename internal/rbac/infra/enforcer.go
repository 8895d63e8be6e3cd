package infra

import (
	_ "embed"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// defaultModel is the domain-scoped RBAC model: roles are granted per
// company and permissions are resource/action pairs.
//
//go:embed model.conf
var defaultModel string

// NewEnforcer loads the casbin model from modelPath, or the built-in model
// when modelPath is empty.
func NewEnforcer(modelPath string) (*casbin.Enforcer, error) {
	if modelPath != "" {
		return casbin.NewEnforcer(modelPath)
	}
	m, err := model.NewModelFromString(defaultModel)
	if err != nil {
		return nil, err
	}
	return casbin.NewEnforcer(m)
}
