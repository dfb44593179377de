//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// End-to-end suite against a running server. Requires:
//
//	CAREERPORT_API_URL        base URL (default http://127.0.0.1:8080)
//	BOOTSTRAP_ADMIN_EMAIL     super admin credentials the server was
//	BOOTSTRAP_ADMIN_PASSWORD  bootstrapped with
//
// Run with: go test -tags e2e ./tests/e2e/

var (
	baseURL = getEnv("CAREERPORT_API_URL", "http://127.0.0.1:8080")
	apiBase = baseURL + "/api/v1"

	adminEmail    = getEnv("BOOTSTRAP_ADMIN_EMAIL", "admin@careerport.local")
	adminPassword = getEnv("BOOTSTRAP_ADMIN_PASSWORD", "admin-password")
)

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

type TestClient struct {
	httpClient *http.Client
	token      string
}

func NewTestClient() *TestClient {
	return &TestClient{
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *TestClient) Do(method, path string, body any) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, path, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return c.httpClient.Do(req)
}

func (c *TestClient) Login(t *testing.T, email, password string) {
	t.Helper()
	resp, err := c.Do(http.MethodPost, apiBase+"/auth/login", map[string]string{
		"email":    email,
		"password": password,
	})
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, "login failed for %s", email)

	var result struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))
	require.NotEmpty(t, result.Token)
	c.token = result.Token
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestE2E_HealthCheck(t *testing.T) {
	resp, err := http.Get(baseURL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestE2E_UnauthenticatedRejected(t *testing.T) {
	client := NewTestClient()
	resp, err := client.Do(http.MethodGet, apiBase+"/jobs", nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestE2E_JobLifecycle(t *testing.T) {
	admin := NewTestClient()
	admin.Login(t, adminEmail, adminPassword)

	// Create a company to hang the posting off
	resp, err := admin.Do(http.MethodPost, apiBase+"/companies", map[string]any{
		"name":     fmt.Sprintf("E2E Corp %d", time.Now().UnixNano()),
		"industry": "Testing",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	company := decode[map[string]any](t, resp)
	companyID := company["id"].(string)

	// Draft posting
	resp, err = admin.Do(http.MethodPost, apiBase+"/jobs", map[string]any{
		"title":     "E2E Engineer",
		"companyId": companyID,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	job := decode[map[string]any](t, resp)
	jobID := job["id"].(string)
	assert.Equal(t, "draft", job["status"])

	// Publish it
	resp, err = admin.Do(http.MethodPut, apiBase+"/jobs/"+jobID, map[string]any{
		"title":     "E2E Engineer",
		"companyId": companyID,
		"status":    "published",
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	published := decode[map[string]any](t, resp)
	assert.Equal(t, "published", published["status"])
	assert.NotNil(t, published["publishedAt"])

	// Clean up
	resp, err = admin.Do(http.MethodDelete, apiBase+"/jobs/"+jobID, nil)
	require.NoError(t, err)
	resp.Body.Close()
	resp, err = admin.Do(http.MethodDelete, apiBase+"/companies/"+companyID, nil)
	require.NoError(t, err)
	resp.Body.Close()
}

func TestE2E_RoleEnforcement(t *testing.T) {
	admin := NewTestClient()
	admin.Login(t, adminEmail, adminPassword)

	// Super admin can read settings
	resp, err := admin.Do(http.MethodGet, apiBase+"/settings", nil)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// Claims endpoint reflects the stored role
	resp, err = admin.Do(http.MethodGet, apiBase+"/auth/claims", nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	claims := decode[map[string]any](t, resp)
	assert.Equal(t, "super_admin", claims["role"])
	assert.NotEmpty(t, claims["permissions"])
}
