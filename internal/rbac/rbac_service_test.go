package rbac

import (
	"context"
	"errors"
	"testing"

	"go-offboarding/internal/rbac/infra"

	"github.com/stretchr/testify/assert"
)

type fakeRepo struct {
	roles    []EmployeeRoleRow
	perms    []RolePermissionRow
	rolesErr error
}

func (f *fakeRepo) GetEmployeeRoles(ctx context.Context, companyID string) ([]EmployeeRoleRow, error) {
	return f.roles, f.rolesErr
}

func (f *fakeRepo) GetRolePermissions(ctx context.Context, companyID string) ([]RolePermissionRow, error) {
	return f.perms, nil
}

func newTestService(t *testing.T, repo Repository) Service {
	t.Helper()
	enforcer, err := infra.NewEnforcer("")
	assert.NoError(t, err)
	return NewService(repo, enforcer)
}

func TestRBACService_Enforce(t *testing.T) {
	ctx := context.Background()
	repo := &fakeRepo{
		roles: []EmployeeRoleRow{
			{EmployeeID: "hr-1", RoleID: "role-hr"},
			{EmployeeID: "it-1", RoleID: "role-it"},
		},
		perms: []RolePermissionRow{
			{RoleID: "role-hr", Resource: "exit", Action: "approve"},
			{RoleID: "role-hr", Resource: "settlement", Action: "create"},
			{RoleID: "role-it", Resource: "clearance", Action: "approve"},
		},
	}
	service := newTestService(t, repo)

	cases := []struct {
		employee, resource, action string
		want                       bool
	}{
		{"hr-1", "exit", "approve", true},
		{"hr-1", "settlement", "create", true},
		{"hr-1", "clearance", "approve", false},
		{"it-1", "clearance", "approve", true},
		{"it-1", "exit", "delete", false},
		{"stranger", "exit", "read", false},
	}
	for _, tc := range cases {
		allowed, err := service.Enforce(ctx, EnforceRequest{
			EmployeeID: tc.employee,
			CompanyID:  "company-1",
			Resource:   tc.resource,
			Action:     tc.action,
		})
		assert.NoError(t, err)
		assert.Equal(t, tc.want, allowed, "%s %s:%s", tc.employee, tc.resource, tc.action)
	}
}

func TestRBACService_PoliciesAreScopedByCompany(t *testing.T) {
	repo := &fakeRepo{
		roles: []EmployeeRoleRow{{EmployeeID: "hr-1", RoleID: "role-hr"}},
		perms: []RolePermissionRow{{RoleID: "role-hr", Resource: "exit", Action: "read"}},
	}
	service := newTestService(t, repo)

	assert.NoError(t, service.LoadCompanyPolicy(context.Background(), "company-1"))

	allowed, err := service.Enforce(context.Background(), EnforceRequest{
		EmployeeID: "hr-1", CompanyID: "company-2", Resource: "exit", Action: "delete",
	})
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestRBACService_LoadFailure(t *testing.T) {
	service := newTestService(t, &fakeRepo{rolesErr: errors.New("db down")})

	allowed, err := service.Enforce(context.Background(), EnforceRequest{
		EmployeeID: "hr-1", CompanyID: "company-1", Resource: "exit", Action: "read",
	})
	assert.EqualError(t, err, "db down")
	assert.False(t, allowed)
}
