package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePasswordSource struct {
	password string
	err      error
}

func (f *fakePasswordSource) FetchCell(_ context.Context, _ string) (string, error) {
	return f.password, f.err
}

func newTestApp(sessions *Sessions) *fiber.App {
	app := fiber.New()
	app.Post("/login", Login(sessions))
	app.Post("/logout", Logout(sessions))
	app.Get("/me", Me(sessions))
	app.Get("/password-hint", PasswordHint(sessions))
	app.Get("/gated", RequireSession(sessions), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string, header map[string]string) (*http.Response, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range header {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

func TestLoginIssuesToken(t *testing.T) {
	sessions := NewSessions(&fakePasswordSource{password: "1234"}, "gid")
	app := newTestApp(sessions)

	resp, body := doJSON(t, app, http.MethodPost, "/login", `{"password":"1234"}`, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	assert.True(t, sessions.Valid(token))
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	sessions := NewSessions(&fakePasswordSource{password: "1234"}, "gid")
	app := newTestApp(sessions)

	resp, body := doJSON(t, app, http.MethodPost, "/login", `{"password":"9999"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "비밀번호가 올바르지 않습니다.", body["error"])
}

func TestLoginRequiresPassword(t *testing.T) {
	sessions := NewSessions(&fakePasswordSource{password: "1234"}, "gid")
	app := newTestApp(sessions)

	resp, _ := doJSON(t, app, http.MethodPost, "/login", `{"password":"  "}`, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLoginSurfacesFetchFailure(t *testing.T) {
	sessions := NewSessions(&fakePasswordSource{err: errors.New("sheet down")}, "gid")
	app := newTestApp(sessions)

	resp, _ := doJSON(t, app, http.MethodPost, "/login", `{"password":"1234"}`, nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestRequireSession(t *testing.T) {
	sessions := NewSessions(&fakePasswordSource{password: "1234"}, "gid")
	app := newTestApp(sessions)

	resp, _ := doJSON(t, app, http.MethodGet, "/gated", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, ok, err := sessions.Login(context.Background(), "1234")
	require.NoError(t, err)
	require.True(t, ok)

	resp, _ = doJSON(t, app, http.MethodGet, "/gated", "", map[string]string{
		"Authorization": "Bearer " + token,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// The alternate header works too.
	resp, _ = doJSON(t, app, http.MethodGet, "/gated", "", map[string]string{
		"X-Session-Token": token,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLogoutRevokesSession(t *testing.T) {
	sessions := NewSessions(&fakePasswordSource{password: "1234"}, "gid")
	app := newTestApp(sessions)

	token, ok, err := sessions.Login(context.Background(), "1234")
	require.NoError(t, err)
	require.True(t, ok)

	resp, _ := doJSON(t, app, http.MethodPost, "/logout", "", map[string]string{
		"Authorization": "Bearer " + token,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.False(t, sessions.Valid(token))

	resp, _ = doJSON(t, app, http.MethodGet, "/gated", "", map[string]string{
		"Authorization": "Bearer " + token,
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestPasswordHint(t *testing.T) {
	sessions := NewSessions(&fakePasswordSource{password: "123456"}, "gid")
	app := newTestApp(sessions)

	resp, body := doJSON(t, app, http.MethodGet, "/password-hint", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.EqualValues(t, 6, body["length"])
}

func TestMe(t *testing.T) {
	sessions := NewSessions(&fakePasswordSource{password: "1234"}, "gid")
	app := newTestApp(sessions)

	resp, _ := doJSON(t, app, http.MethodGet, "/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	token, _, err := sessions.Login(context.Background(), "1234")
	require.NoError(t, err)

	resp, body := doJSON(t, app, http.MethodGet, "/me", "", map[string]string{
		"Authorization": "Bearer " + token,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["authenticated"])
}
