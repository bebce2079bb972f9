package controllers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"parrillas-backend/controllers"
	"parrillas-backend/mailer"
	"parrillas-backend/models"
	"parrillas-backend/routes"
	"parrillas-backend/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// fakeMailer registra cada invocación y falla a pedido.
type fakeMailer struct {
	sent []mailer.ContactMessage
	err  error
}

func (f *fakeMailer) Send(_ context.Context, _ mailer.Credentials, msg mailer.ContactMessage) error {
	f.sent = append(f.sent, msg)
	return f.err
}

// newTestEnv arma un Controller con stores en un directorio temporal y
// el router real.
func newTestEnv(t *testing.T) (*controllers.Controller, *gin.Engine, *fakeMailer) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	logger := zerolog.Nop()
	fm := &fakeMailer{}

	ctrl := &controllers.Controller{
		Stats:           storage.NewStore(filepath.Join(dir, "stats.json"), models.DefaultStats, logger),
		Products:        storage.NewStore(filepath.Join(dir, "products.json"), models.DefaultProducts, logger),
		Config:          storage.NewStore(filepath.Join(dir, "config.json"), models.DefaultConfig, logger),
		Mailer:          fm,
		UploadDir:       filepath.Join(dir, "img"),
		PasetoSecretKey: []byte("0123456789abcdef0123456789abcdef"),
		Log:             logger,
	}
	require.NoError(t, os.MkdirAll(ctrl.UploadDir, 0755))

	return ctrl, routes.Setup(ctrl, "test"), fm
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// doMultipart manda un formulario de producto, con archivo opcional.
func doMultipart(t *testing.T, r *gin.Engine, method, path string, fields map[string]string, fileName string, fileContent []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := mw.CreateFormFile("image", fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileContent)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeStats(t *testing.T, w *httptest.ResponseRecorder) models.Stats {
	t.Helper()
	var stats models.Stats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	return stats
}

func todayKey() string {
	return time.Now().Format("2006-01-02")
}

// Los ids se generan con el reloj en milisegundos; una pausa corta evita
// colisiones entre dos altas seguidas.
func tick() {
	time.Sleep(2 * time.Millisecond)
}
