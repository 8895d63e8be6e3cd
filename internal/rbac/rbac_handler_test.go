package rbac

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubService struct {
	got EnforceRequest
}

func (s *stubService) LoadCompanyPolicy(ctx context.Context, companyID string) error {
	return nil
}

func (s *stubService) Enforce(ctx context.Context, req EnforceRequest) (bool, error) {
	s.got = req
	return req.Resource == "exit" && req.Action == "read", nil
}

func newRBACRouter(service Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewHandler(service)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("company_id", "company-1")
		c.Next()
	})
	router.POST("/rbac/enforce", handler.Enforce)
	router.GET("/rbac/permissions", handler.ListPermissions)
	return router
}

func TestHandler_Enforce(t *testing.T) {
	service := &stubService{}
	router := newRBACRouter(service)

	body, _ := json.Marshal(EnforceRequest{
		EmployeeID: " emp-1 ",
		CompanyID:  "someone-else",
		Resource:   "exit",
		Action:     "read",
	})
	req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Ok   bool            `json:"ok"`
		Data EnforceResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.True(t, env.Data.Allowed)
	assert.Equal(t, "emp-1", service.got.EmployeeID)
	assert.Equal(t, "company-1", service.got.CompanyID)
}

func TestHandler_EnforceValidation(t *testing.T) {
	router := newRBACRouter(&stubService{})

	req := httptest.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBufferString(`{"resource":"exit"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListPermissions(t *testing.T) {
	router := newRBACRouter(&stubService{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/permissions", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var env struct {
		Data []PermissionResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	assert.Len(t, env.Data, len(Catalog))
	assert.Contains(t, env.Data, PermissionResponse{Resource: "clearance", Action: "approve", Label: "Sign off department clearance"})
}
