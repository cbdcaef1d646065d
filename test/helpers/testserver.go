package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"greenroots_backend/internal/app"
	"greenroots_backend/internal/config"
	"greenroots_backend/internal/logger"
	"greenroots_backend/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// TestServer runs the full HTTP stack against an in-memory database, a
// throwaway upload directory and a recording mail sender.
type TestServer struct {
	Server     *httptest.Server
	DB         *gorm.DB
	Mail       *app.MockEmailSender
	UploadsDir string
}

func NewTestServer(t *testing.T) *TestServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger.Init("test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to open in-memory database: %v", err)
	}

	// A second pool connection would see an empty database, so pin to one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Failed to get *sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(&models.Project{}, &models.News{}, &models.GalleryItem{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	uploadsDir := t.TempDir()

	cfg := &config.Config{}
	cfg.Server.Env = "test"
	cfg.Storage.BasePath = uploadsDir
	cfg.Storage.BaseURL = "/uploads"
	cfg.Upload.MaxSize = 25 * 1024 * 1024
	cfg.Upload.MaxImages = 5
	cfg.Upload.NamingPolicy = "suffix"

	mail := &app.MockEmailSender{}

	router := app.SetupRouter(cfg, db, mail)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server:     server,
		DB:         db,
		Mail:       mail,
		UploadsDir: uploadsDir,
	}
}

// SendRequest sends a JSON request and returns the response with its body.
func (ts *TestServer) SendRequest(t *testing.T, method, path string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Failed to encode request body: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return ts.do(t, req)
}

// UploadFile describes one file part of a multipart request.
type UploadFile struct {
	Field       string
	Name        string
	ContentType string
	Content     []byte
}

// SendMultipart sends a multipart/form-data request with the given form
// fields and files.
func (ts *TestServer) SendMultipart(t *testing.T, method, path string, fields map[string]string, files []UploadFile) (*http.Response, string) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for key, value := range fields {
		if err := writer.WriteField(key, value); err != nil {
			t.Fatalf("Failed to write form field %s: %v", key, err)
		}
	}

	for _, file := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="%s"; filename="%s"`, file.Field, file.Name))
		header.Set("Content-Type", file.ContentType)

		part, err := writer.CreatePart(header)
		if err != nil {
			t.Fatalf("Failed to create multipart part: %v", err)
		}
		if _, err := part.Write(file.Content); err != nil {
			t.Fatalf("Failed to write file content: %v", err)
		}
	}

	if err := writer.Close(); err != nil {
		t.Fatalf("Failed to finalize multipart body: %v", err)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, &buf)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	return ts.do(t, req)
}

func (ts *TestServer) do(t *testing.T, req *http.Request) (*http.Response, string) {
	t.Helper()

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Failed to send request: %v", err)
	}

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Failed to read response body: %v", err)
	}
	res.Body.Close()

	return res, string(resBody)
}

// Envelope mirrors the JSON response envelope for decoding in tests.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// DecodeEnvelope parses a response body into the standard envelope.
func DecodeEnvelope(t *testing.T, body string) Envelope {
	t.Helper()

	var env Envelope
	if err := json.Unmarshal([]byte(body), &env); err != nil {
		t.Fatalf("Failed to decode response envelope: %v (body: %s)", err, body)
	}
	return env
}
