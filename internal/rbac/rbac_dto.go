package rbac

import "go-offboarding/internal/domain"

type (
	EnforceRequest  = domain.EnforceRequest
	EnforceResponse = domain.EnforceResponse
)

type PermissionResponse struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
	Label    string `json:"label"`
}

// Permission is a resource/action pair checked by route middleware.
type Permission struct {
	Resource string
	Action   string
	Label    string
}

// Catalog lists every permission the exit routes check. Roles are granted
// these through role_permissions rows.
var Catalog = []Permission{
	{Resource: "exit", Action: "read", Label: "View exit requests and activity"},
	{Resource: "exit", Action: "create", Label: "Initiate exit requests"},
	{Resource: "exit", Action: "approve", Label: "Move exit requests through approval stages"},
	{Resource: "exit", Action: "cancel", Label: "Cancel exit requests"},
	{Resource: "exit", Action: "delete", Label: "Delete exit requests and their records"},
	{Resource: "clearance", Action: "read", Label: "View clearance checklists"},
	{Resource: "clearance", Action: "approve", Label: "Sign off department clearance"},
	{Resource: "settlement", Action: "read", Label: "View and preview settlements"},
	{Resource: "settlement", Action: "create", Label: "Calculate final settlements"},
}

func mapToPermissionResponses(perms []Permission) []PermissionResponse {
	out := make([]PermissionResponse, 0, len(perms))
	for _, p := range perms {
		out = append(out, PermissionResponse{Resource: p.Resource, Action: p.Action, Label: p.Label})
	}
	return out
}
