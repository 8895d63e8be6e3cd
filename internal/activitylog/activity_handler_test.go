package activitylog_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-offboarding/internal/activitylog"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type activityEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func newActivityRouter(repo activitylog.Repository, companyID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := activitylog.NewHandler(activitylog.NewService(repo))
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Next()
	})
	r.GET("/exits/:id/activity", h.List)
	return r
}

func getActivity(t *testing.T, r *gin.Engine, id string) (int, activityEnvelope) {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/exits/"+id+"/activity", nil))
	var env activityEnvelope
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env
}

func TestActivityHandler_List(t *testing.T) {
	companyID := uuid.New().String()

	t.Run("unknown exit request is 404", func(t *testing.T) {
		repo := &fakeActivityRepository{
			exitRequestExistsFn: func(ctx context.Context, cid, eid string) (bool, error) {
				return false, nil
			},
		}

		code, env := getActivity(t, newActivityRouter(repo, companyID), uuid.NewString())

		assert.Equal(t, http.StatusNotFound, code)
		assert.False(t, env.Ok)
		if assert.NotNil(t, env.Error) {
			assert.Equal(t, "NOT_FOUND", env.Error.Code)
		}
	})

	t.Run("malformed exit request id is 400", func(t *testing.T) {
		code, env := getActivity(t, newActivityRouter(&fakeActivityRepository{}, companyID), "not-a-uuid")

		assert.Equal(t, http.StatusBadRequest, code)
		if assert.NotNil(t, env.Error) {
			assert.Equal(t, "INVALID_INPUT", env.Error.Code)
		}
	})

	t.Run("known request returns an empty trail", func(t *testing.T) {
		code, env := getActivity(t, newActivityRouter(&fakeActivityRepository{}, companyID), uuid.NewString())

		assert.Equal(t, http.StatusOK, code)
		assert.True(t, env.Ok)
		assert.JSONEq(t, `[]`, string(env.Data))
	})
}
