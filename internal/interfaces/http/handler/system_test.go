package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/labelworks/backend/internal/infrastructure/persistence"
)

func TestSystemHandler_Health(t *testing.T) {
	gin.SetMode(gin.TestMode)

	gormDB, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	handler := NewSystemHandler(&persistence.Database{DB: gormDB})

	engine := gin.New()
	handler.RegisterRoutes(engine.Group("/api/v1"))

	t.Run("reports ok when the database responds", func(t *testing.T) {
		req, err := http.NewRequest(http.MethodGet, "/api/v1/health", nil)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeResponse(t, w)
		data := resp.Data.(map[string]any)
		assert.Equal(t, "ok", data["status"])
		assert.Equal(t, "ok", data["database"])
		assert.NotEmpty(t, data["go_version"])
	})

	t.Run("reports degraded when the database is gone", func(t *testing.T) {
		sqlDB, err := gormDB.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		req, err := http.NewRequest(http.MethodGet, "/api/v1/health", nil)
		require.NoError(t, err)

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		require.Equal(t, http.StatusServiceUnavailable, w.Code)

		resp := decodeResponse(t, w)
		data := resp.Data.(map[string]any)
		assert.Equal(t, "degraded", data["status"])
		assert.Equal(t, "unreachable", data["database"])
	})
}
