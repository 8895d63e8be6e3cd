package clearance_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-offboarding/internal/clearance"
	clearanceerrors "go-offboarding/internal/clearance/errors"
	clearanceMock "go-offboarding/internal/clearance/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string          `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func newClearanceRouter(svc clearance.Service, companyID, actorID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := clearance.NewHandler(svc)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Set("employee_id", actorID)
		c.Next()
	})
	r.GET("/exits/:id/clearance", h.List)
	r.PUT("/exits/:id/clearance/:department", h.Upsert)
	return r
}

func TestClearanceHandler_Upsert(t *testing.T) {
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	exitID := uuid.New().String()

	t.Run("department from path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := clearanceMock.NewMockService(ctrl)
		svc.EXPECT().
			Upsert(gomock.Any(), companyID, exitID, "Reporting Manager", actorID,
				clearance.UpsertClearanceRequest{Status: "approved"}).
			Return(clearance.ClearanceItemResponse{Department: "Reporting Manager", Status: "approved"}, nil)

		req := httptest.NewRequest(http.MethodPut, "/exits/"+exitID+"/clearance/Reporting%20Manager",
			strings.NewReader(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		newClearanceRouter(svc, companyID, actorID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.True(t, env.Ok)
	})

	t.Run("status outside the enum", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := clearanceMock.NewMockService(ctrl)

		req := httptest.NewRequest(http.MethodPut, "/exits/"+exitID+"/clearance/IT", strings.NewReader(`{"status":"waived"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		newClearanceRouter(svc, companyID, actorID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("locked checklist", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := clearanceMock.NewMockService(ctrl)
		svc.EXPECT().Upsert(gomock.Any(), companyID, exitID, "IT", actorID, gomock.Any()).
			Return(clearance.ClearanceItemResponse{}, clearanceerrors.ErrChecklistLocked.WithDetails(map[string]string{"status": "completed"}))

		req := httptest.NewRequest(http.MethodPut, "/exits/"+exitID+"/clearance/IT", strings.NewReader(`{"status":"approved"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()

		newClearanceRouter(svc, companyID, actorID).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		var env apiEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
		assert.Equal(t, "INVALID_STATE", env.Error.Code)
		assert.JSONEq(t, `{"status":"completed"}`, string(env.Error.Details))
	})
}

func TestClearanceHandler_List(t *testing.T) {
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	exitID := uuid.New().String()

	ctrl := gomock.NewController(t)
	svc := clearanceMock.NewMockService(ctrl)
	svc.EXPECT().List(gomock.Any(), companyID, exitID).
		Return(clearance.ChecklistResponse{Total: 2, Approved: 2, AllApproved: true}, nil)

	w := httptest.NewRecorder()
	newClearanceRouter(svc, companyID, actorID).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/exits/"+exitID+"/clearance", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var env apiEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var data clearance.ChecklistResponse
	assert.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.AllApproved)
}
