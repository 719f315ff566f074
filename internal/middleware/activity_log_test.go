package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pennywise-app/pennywise_backend/internal/core/domain"
)

type recorderStub struct {
	entries []domain.ActivityLog
}

func (r *recorderStub) RecordActivity(_ context.Context, log domain.ActivityLog) error {
	r.entries = append(r.entries, log)
	return nil
}

func auditRouter(recorder *recorderStub, authenticated bool) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if authenticated {
		r.Use(func(c *gin.Context) {
			ctx := withAuthValues(c.Request.Context(), "u1", "tok-1", nil)
			c.Request = c.Request.WithContext(ctx)
		})
	}
	r.Use(ActivityLogger(recorder))
	r.POST("/api/v1/transactions", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func TestActivityLogger_RecordsRequestDetails(t *testing.T) {
	recorder := &recorderStub{}
	router := auditRouter(recorder, true)

	body := `{"description":"Weekly shop"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions?source=app", strings.NewReader(body))
	req.Header.Set("User-Agent", "pennywise-client/1.0")
	router.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, recorder.entries, 1)
	entry := recorder.entries[0]
	assert.Equal(t, "u1", entry.UserID)
	assert.Equal(t, "POST /api/v1/transactions", entry.Action)

	var details domain.ActivityDetails
	require.NoError(t, json.Unmarshal(entry.Details, &details))
	assert.Equal(t, "app", details.Query["source"])
	assert.Equal(t, int64(len(body)), details.BodySize)
	assert.Equal(t, "pennywise-client/1.0", details.UserAgent)
	assert.Equal(t, http.StatusCreated, details.Status)
	assert.GreaterOrEqual(t, details.DurationMS, int64(0))
}

func TestActivityLogger_BodilessRequestRecordsZeroSize(t *testing.T) {
	recorder := &recorderStub{}
	router := auditRouter(recorder, true)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, recorder.entries, 1)
	var details domain.ActivityDetails
	require.NoError(t, json.Unmarshal(recorder.entries[0].Details, &details))
	assert.Equal(t, int64(0), details.BodySize)
}

func TestActivityLogger_SkipsUnauthenticated(t *testing.T) {
	recorder := &recorderStub{}
	router := auditRouter(recorder, false)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/transactions", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	assert.Empty(t, recorder.entries)
}
