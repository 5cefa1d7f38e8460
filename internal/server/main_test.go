package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"quill/internal/config"
	"quill/internal/models"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "Str0ngPassword1"

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:     "test-secret-key-for-handler-tests",
		Port:          "0",
		Env:           "test",
		PostsPerPage:  10,
		IndexCacheTTL: 20,
	}
}

func setupTestServer(t *testing.T, rdb *redis.Client) *Server {
	t.Helper()
	t.Setenv("APP_ENV", "test")

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Group{},
		&models.Post{},
		&models.Comment{},
		&models.Follow{},
	))

	return NewServerWithDeps(testConfig(), db, rdb)
}

func doRequest(t *testing.T, s *Server, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// signupUser registers a user through the API and returns their token.
func signupUser(t *testing.T, s *Server, username string) string {
	t.Helper()
	resp := doRequest(t, s, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": testPassword,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var auth struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &auth)
	require.NotEmpty(t, auth.Token)
	return auth.Token
}

// signupAdmin registers a user, promotes them directly in the store, and
// logs in again so the token carries the admin claim.
func signupAdmin(t *testing.T, s *Server, username string) string {
	t.Helper()
	signupUser(t, s, username)
	require.NoError(t, s.db.Model(&models.User{}).
		Where("username = ?", username).
		Update("is_admin", true).Error)

	resp := doRequest(t, s, http.MethodPost, "/api/auth/login", "", map[string]string{
		"email":    username + "@example.com",
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var auth struct {
		Token string `json:"token"`
	}
	decodeBody(t, resp, &auth)
	return auth.Token
}

func createGroupDirect(t *testing.T, s *Server, slug string) *models.Group {
	t.Helper()
	group := &models.Group{Title: "Group " + slug, Slug: slug}
	require.NoError(t, s.db.Create(group).Error)
	return group
}

func createPostViaAPI(t *testing.T, s *Server, token, text, groupSlug string) uint {
	t.Helper()
	body := map[string]string{"text": text}
	if groupSlug != "" {
		body["group"] = groupSlug
	}
	resp := doRequest(t, s, http.MethodPost, "/api/posts", token, body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var post models.Post
	decodeBody(t, resp, &post)
	require.NotZero(t, post.ID)
	return post.ID
}

type listResponse struct {
	Posts      []models.Post `json:"posts"`
	Pagination struct {
		Page       int  `json:"page"`
		TotalPages int  `json:"total_pages"`
		HasNext    bool `json:"has_next"`
		HasPrev    bool `json:"has_prev"`
	} `json:"pagination"`
}

func pagePath(base string, page int) string {
	return fmt.Sprintf("%s?page=%d", base, page)
}
