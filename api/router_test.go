package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"linkbio-backend/database"
	"linkbio-backend/models"
)

// newTestRouter builds the full router over a private in-memory store.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.Profile{}, &models.Link{}, &models.Lead{}))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return newRouter(database.New(db),
		withConfig(map[string]string{"SESSION_SECRET": "test-secret"}),
		withStartupTime(time.Now()))
}

func doJSON(t *testing.T, router http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func decodeBody(t *testing.T, recorder *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

// registerAndLogin registers a profile over HTTP and returns its id plus a
// session token for the editor surface.
func registerAndLogin(t *testing.T, router http.Handler, slug string) (int, string) {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/profile/register", "", map[string]any{
		"name":     "Test Owner",
		"slug":     slug,
		"password": "s3cret",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	profile := body["profile"].(map[string]any)
	profileID := int(profile["id"].(float64))

	rec = doJSON(t, router, http.MethodPost, "/auth", "", map[string]any{
		"slug":     slug,
		"password": "s3cret",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body = decodeBody(t, rec)
	token := body["token"].(string)
	require.NotEmpty(t, token)

	return profileID, token
}
