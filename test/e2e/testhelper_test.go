package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"runtime"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/asset-store/internal/adapter/handler"
	pgRepo "github.com/marcos-nsantos/asset-store/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/asset-store/internal/adapter/storage"
	"github.com/marcos-nsantos/asset-store/internal/domain"
	"github.com/marcos-nsantos/asset-store/internal/domain/valueobject"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/auth"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/database"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/hashing"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/observability"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/server"
	infraStorage "github.com/marcos-nsantos/asset-store/internal/infrastructure/storage"
	"github.com/marcos-nsantos/asset-store/internal/usecase/asset"
	"github.com/marcos-nsantos/asset-store/internal/usecase/variant"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	testJWTSecret  = "test-secret-key-for-e2e-tests"
	apiBasePath    = "/api/v1"
)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	Sink       *memorySink
	BaseURL    string
	Token      string
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	_, err = database.RunMigrations(ctx, pool, getMigrationsPath())
	require.NoError(t, err)

	logger, _ := zap.NewDevelopment()

	// In-memory bucket; the codec is the real one.
	sink := newMemorySink()
	observer := observability.NewVariantObserver(logger)
	sizes := []valueobject.SizeSpec{
		{Name: "small", Resize: valueobject.ResizeOptions{Width: 32, Height: 32, Fit: valueobject.FitInside}, GenerateWebp: true},
	}

	planner := variant.NewPlanner(infraStorage.NewImageProcessor(), valueobject.DefaultOptimizeOptions(), observer)
	provider := asset.NewProvider(planner, sink, sizes, observer)
	assetSvc := asset.NewService(pgRepo.NewAssetRepo(pool), provider, hashing.NewBlake2bHasher(), nil, logger)

	jwtSvc := auth.NewJWTService(testJWTSecret, 15*time.Minute, "asset-store")
	token, _, err := jwtSvc.GenerateAccessToken("e2e-uploader")
	require.NoError(t, err)

	router := server.NewRouter(server.RouterConfig{
		AssetHandler:   handler.NewAssetHandler(assetSvc, 1<<20),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtSvc),
		Logger:         logger,
		Environment:    "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Pool:      pool,
		Container: pgContainer,
		Sink:      sink,
		BaseURL:   ts.URL,
		Token:     token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Pool.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

func (app *TestApp) request(method, path string, body io.Reader, headers map[string]string) (*http.Response, error) {
	req, err := http.NewRequest(method, app.BaseURL+apiBasePath+path, body)
	if err != nil {
		return nil, err
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, headers)
}

func (app *TestApp) delete(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodDelete, path, nil, headers)
}

// upload posts a multipart file with optional extra form fields.
func (app *TestApp) upload(t *testing.T, fileName, contentType string, data []byte, fields map[string]string, headers map[string]string) *http.Response {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, fileName))
	h.Set("Content-Type", contentType)
	part, err := writer.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)

	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}
	require.NoError(t, writer.Close())

	all := map[string]string{"Content-Type": writer.FormDataContentType()}
	for k, v := range headers {
		all[k] = v
	}

	resp, err := app.request(http.MethodPost, "/assets", body, all)
	require.NoError(t, err)
	return resp
}

func (app *TestApp) authHeader() map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + app.Token,
	}
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

type memorySink struct {
	mu      sync.Mutex
	objects map[string]storage.PutInput
}

func newMemorySink() *memorySink {
	return &memorySink{objects: map[string]storage.PutInput{}}
}

func (s *memorySink) Put(_ context.Context, in storage.PutInput) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[in.Key] = in
	return nil
}

func (s *memorySink) Delete(_ context.Context, key string, _ storage.Params) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[key]; !ok {
		return domain.ErrObjectNotFound
	}
	delete(s.objects, key)
	return nil
}

func (s *memorySink) GetURL(key string) string {
	return "https://stub-storage.example.com/" + key
}

func (s *memorySink) Keys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, 0, len(s.objects))
	for k := range s.objects {
		keys = append(keys, k)
	}
	return keys
}

func (s *memorySink) Object(key string) (storage.PutInput, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	obj, ok := s.objects[key]
	return obj, ok
}

func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
