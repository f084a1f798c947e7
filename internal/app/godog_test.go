package app_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/sahanr/inkpot/internal/app"
	"github.com/sahanr/inkpot/internal/config"
	"github.com/sahanr/inkpot/internal/model"
)

type apiFeature struct {
	engine *gin.Engine
	resp   *httptest.ResponseRecorder
	token  string
	tmpDir string
}

func (f *apiFeature) aRunningBlogBackend() error {
	gin.SetMode(gin.TestMode)

	dir, err := os.MkdirTemp("", "inkpot-godog-")
	if err != nil {
		return err
	}
	f.tmpDir = dir

	cfg := &config.Config{
		Port:          8080,
		AdminPassword: "666",
		JWTSecret:     "test-secret",
		StoreDriver:   "memory",
		StorageDriver: "local",
		UploadDir:     filepath.Join(dir, "uploads"),
		PublicDir:     dir,
	}
	a, err := app.New(context.Background(), cfg)
	if err != nil {
		return err
	}
	f.engine = a.Server.Engine()
	return nil
}

func (f *apiFeature) send(method, path string, body any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if f.token != "" {
		req.Header.Set("Authorization", "Bearer "+f.token)
	}
	f.resp = httptest.NewRecorder()
	f.engine.ServeHTTP(f.resp, req)
	return nil
}

func (f *apiFeature) theAdminLogsInWithPassword(password string) error {
	return f.send(http.MethodPost, "/api/login", gin.H{"password": password})
}

func (f *apiFeature) aSessionTokenIsIssued() error {
	if f.resp.Code != http.StatusOK {
		return fmt.Errorf("expected status 200, got %d", f.resp.Code)
	}
	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(f.resp.Body.Bytes(), &body); err != nil {
		return err
	}
	if body.Token == "" {
		return fmt.Errorf("no token in response %s", f.resp.Body.String())
	}
	f.token = body.Token
	return nil
}

func (f *apiFeature) theAdminCreatesAPost(title, content string) error {
	return f.send(http.MethodPost, "/api/posts", gin.H{"title": title, "content": content})
}

func (f *apiFeature) theResponseStatusIs(status int) error {
	if f.resp.Code != status {
		return fmt.Errorf("expected status %d, got %d (%s)", status, f.resp.Code, f.resp.Body.String())
	}
	return nil
}

func (f *apiFeature) thePostsAreListed() error {
	return f.send(http.MethodGet, "/api/posts", nil)
}

func (f *apiFeature) theFirstPostIsTitled(title string) error {
	var posts []model.Post
	if err := json.Unmarshal(f.resp.Body.Bytes(), &posts); err != nil {
		return err
	}
	if len(posts) == 0 {
		return fmt.Errorf("the list is empty")
	}
	if posts[0].Title != title {
		return fmt.Errorf("expected first post %q, got %q", title, posts[0].Title)
	}
	return nil
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	f := &apiFeature{}

	ctx.After(func(c context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if f.tmpDir != "" {
			_ = os.RemoveAll(f.tmpDir)
		}
		return c, nil
	})

	ctx.Step(`^a running blog backend$`, f.aRunningBlogBackend)
	ctx.Step(`^the admin logs in with password "([^"]*)"$`, f.theAdminLogsInWithPassword)
	ctx.Step(`^a session token is issued$`, f.aSessionTokenIsIssued)
	ctx.Step(`^the admin creates a post titled "([^"]*)" with content "([^"]*)"$`, f.theAdminCreatesAPost)
	ctx.Step(`^the response status is (\d+)$`, f.theResponseStatusIs)
	ctx.Step(`^the posts are listed$`, f.thePostsAreListed)
	ctx.Step(`^the first post is titled "([^"]*)"$`, f.theFirstPostIsTitled)
}

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializeScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
