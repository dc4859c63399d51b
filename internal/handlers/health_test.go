package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/helloworld/api-backend/internal/database"
	"github.com/helloworld/api-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestPingHandler(t *testing.T) {
	db, err := database.InitDB(database.TestConfig(), nil)
	require.NoError(t, err)

	r := gin.New()
	r.GET("/ping", NewPingHandler(db).Ping)

	tests := []struct {
		name         string
		prepare      func()
		wantStatus   int
		wantDatabase string
	}{
		{"database up", func() {}, http.StatusOK, "ok"},
		{"database closed", func() { require.NoError(t, database.Close(db)) }, http.StatusServiceUnavailable, "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.prepare()

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

			assert.Equal(t, tt.wantStatus, w.Code)

			var resp models.PingResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantDatabase, resp.Database)
			assert.Equal(t, "helloworld-api", resp.Service)
			assert.False(t, resp.Timestamp.IsZero())
		})
	}
}

func TestPingHandler_NilDatabase(t *testing.T) {
	r := gin.New()
	r.GET("/ping", NewPingHandler(nil).Ping)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
