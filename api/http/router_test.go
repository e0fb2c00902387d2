package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/harizal/portfolio/api/http/handlers"
	"github.com/harizal/portfolio/pkg/auth"
	"github.com/harizal/portfolio/pkg/contact"
	"github.com/harizal/portfolio/pkg/editor"
	"github.com/harizal/portfolio/pkg/health"
	"github.com/harizal/portfolio/pkg/profile"
	"github.com/harizal/portfolio/pkg/repository/memory"
	"github.com/harizal/portfolio/pkg/security/jwt"
)

// countingContacts records how often storage is touched on delete.
type countingContacts struct {
	*memory.ContactRepository
	deletes atomic.Int32
}

func (r *countingContacts) Delete(ctx context.Context, id uuid.UUID) error {
	r.deletes.Add(1)
	return r.ContactRepository.Delete(ctx, id)
}

type codeCapture struct{ last string }

func (c *codeCapture) SendCode(_ context.Context, _, code string) error {
	c.last = code
	return nil
}

type testEnv struct {
	app      *fiber.App
	profiles *memory.ProfileRepository
	contacts *countingContacts
	codes    *codeCapture
}

func newTestEnv(t *testing.T, otpMode bool) *testEnv {
	t.Helper()
	log := zap.NewNop()

	codes := &codeCapture{}
	authUC := auth.NewAuthService(memory.NewCredentialRepository(), jwt.NewManager("test-secret", "portfolio", time.Hour), codes)
	require.NoError(t, authUC.EnsureAdmin(context.Background(), "Harizal", "s3cret"))

	profiles := memory.NewProfileRepository()
	profileUC := profile.NewService(profiles)
	contacts := &countingContacts{ContactRepository: memory.NewContactRepository()}
	contactUC := contact.NewService(contacts, nil, time.Second, log)

	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("<html>cv</html>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(static, "app.js"), []byte("console.log(1)"), 0o644))

	app := NewApp(log)
	Register(app, Handlers{
		Auth:    handlers.NewAuthHandler(authUC, otpMode, log),
		Profile: handlers.NewProfileHandler(profileUC, log),
		Editor:  handlers.NewEditorHandler(profileUC, log),
		Contact: handlers.NewContactHandler(contactUC, log),
		Health:  handlers.NewHealthHandler(health.NewService(), log),
	}, jwt.NewAuthMiddleware(authUC), Limits{
		LoginMax:     10,
		LoginWindow:  15 * time.Minute,
		PublicMax:    1000,
		PublicWindow: 15 * time.Minute,
	}, static)

	return &testEnv{app: app, profiles: profiles, contacts: contacts, codes: codes}
}

func (e *testEnv) do(t *testing.T, method, path string, body any, token string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, 5000)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func (e *testEnv) login(t *testing.T) string {
	t.Helper()
	status, raw := e.do(t, nethttp.MethodPost, "/login", map[string]string{"identifier": "harizal", "secret": "s3cret"}, "")
	require.Equal(t, nethttp.StatusOK, status, string(raw))
	var res struct {
		Success bool   `json:"success"`
		Token   string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(raw, &res))
	require.True(t, res.Success)
	require.NotEmpty(t, res.Token)
	return res.Token
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func decodeEnvelope(t *testing.T, raw []byte) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(raw, &e), string(raw))
	return e
}

func TestGetDataCreatesAndKeepsDefault(t *testing.T) {
	env := newTestEnv(t, false)

	status, first := env.do(t, nethttp.MethodGet, "/get-data", nil, "")
	require.Equal(t, nethttp.StatusOK, status)
	assert.JSONEq(t, `{
		"personalInfo": {"name": "", "title": "", "address": "", "email": ""},
		"education": [],
		"workExperience": [],
		"certifications": [],
		"trainings": [],
		"projects": {"it": [], "network_infrastructure": [], "security": []}
	}`, string(first))

	_, err := env.profiles.Get(context.Background(), profile.DocumentKey)
	require.NoError(t, err)

	status, second := env.do(t, nethttp.MethodGet, "/get-data", nil, "")
	require.Equal(t, nethttp.StatusOK, status)
	assert.JSONEq(t, string(first), string(second))
}

func TestUpdateDataRequiresToken(t *testing.T) {
	env := newTestEnv(t, false)
	body := `{"personalInfo": {"name": "Mallory"}, "workExperience": []}`

	status, raw := env.do(t, nethttp.MethodPost, "/update-data", body, "")
	assert.Equal(t, nethttp.StatusUnauthorized, status)
	assert.False(t, decodeEnvelope(t, raw).Success)

	status, _ = env.do(t, nethttp.MethodPost, "/update-data", body, "forged.token.value")
	assert.Equal(t, nethttp.StatusForbidden, status)

	_, err := env.profiles.Get(context.Background(), profile.DocumentKey)
	assert.ErrorIs(t, err, profile.ErrNotFound)
}

func TestUpdateData(t *testing.T) {
	env := newTestEnv(t, false)
	token := env.login(t)

	status, raw := env.do(t, nethttp.MethodPost, "/update-data", `{
		"personalInfo": {"name": "Harizal", "title": "Engineer", "address": "", "email": "h@example.com"},
		"education": [{"degree": "BSc", "institution": "UI", "status": "Graduated"}],
		"workExperience": [{"period": "2020", "company": "Acme", "position": "NOC"}],
		"certifications": ["CCNA"],
		"trainings": [],
		"projects": {"it": ["Inventory"], "network_infrastructure": [], "security": []}
	}`, token)
	require.Equal(t, nethttp.StatusOK, status, string(raw))
	assert.True(t, decodeEnvelope(t, raw).Success)

	_, raw = env.do(t, nethttp.MethodGet, "/get-data", nil, "")
	var doc profile.Document
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "Harizal", doc.PersonalInfo.Name)
	assert.Equal(t, []string{"Inventory"}, doc.Projects.IT)

	status, raw = env.do(t, nethttp.MethodPost, "/update-data", `{"personalInfo": {"name": "x"}}`, token)
	assert.Equal(t, nethttp.StatusBadRequest, status)
	assert.False(t, decodeEnvelope(t, raw).Success)

	_, raw = env.do(t, nethttp.MethodGet, "/get-data", nil, "")
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, "Harizal", doc.PersonalInfo.Name)
}

func TestLoginFailuresLookAlike(t *testing.T) {
	env := newTestEnv(t, false)

	status, wrong := env.do(t, nethttp.MethodPost, "/login", map[string]string{"identifier": "harizal", "secret": "nope"}, "")
	assert.Equal(t, nethttp.StatusUnauthorized, status)
	status, unknown := env.do(t, nethttp.MethodPost, "/login", map[string]string{"identifier": "mallory", "secret": "s3cret"}, "")
	assert.Equal(t, nethttp.StatusUnauthorized, status)
	assert.Equal(t, decodeEnvelope(t, wrong).Message, decodeEnvelope(t, unknown).Message)

	status, _ = env.do(t, nethttp.MethodPost, "/login", map[string]string{"identifier": "harizal"}, "")
	assert.Equal(t, nethttp.StatusBadRequest, status)

	status, _ = env.do(t, nethttp.MethodPost, "/login", map[string]string{"username": "HARIZAL", "secret": "s3cret"}, "")
	assert.Equal(t, nethttp.StatusOK, status)
}

func TestLoginRateLimit(t *testing.T) {
	env := newTestEnv(t, false)
	for i := 0; i < 10; i++ {
		status, _ := env.do(t, nethttp.MethodPost, "/login", map[string]string{"identifier": "harizal", "secret": "wrong"}, "")
		require.Equal(t, nethttp.StatusUnauthorized, status, "attempt %d", i+1)
	}
	status, raw := env.do(t, nethttp.MethodPost, "/login", map[string]string{"identifier": "harizal", "secret": "s3cret"}, "")
	assert.Equal(t, nethttp.StatusTooManyRequests, status)
	res := decodeEnvelope(t, raw)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Message)

	// other routes have their own budget
	status, _ = env.do(t, nethttp.MethodGet, "/get-data", nil, "")
	assert.Equal(t, nethttp.StatusOK, status)
}

func TestContactRequestScenario(t *testing.T) {
	env := newTestEnv(t, false)

	status, _ := env.do(t, nethttp.MethodPost, "/contact-request", map[string]string{"name": "Budi", "email": "budi@x.com", "message": "Hello"}, "")
	require.Equal(t, nethttp.StatusCreated, status)
	status, raw := env.do(t, nethttp.MethodPost, "/contact-request", map[string]string{"name": "Ana", "email": "ana@x.com", "message": "Hi"}, "")
	require.Equal(t, nethttp.StatusCreated, status)
	assert.True(t, decodeEnvelope(t, raw).Success)

	status, _ = env.do(t, nethttp.MethodPost, "/contact-request", map[string]string{"name": "Eve", "email": "not-an-email", "message": "Hi"}, "")
	assert.Equal(t, nethttp.StatusBadRequest, status)

	status, _ = env.do(t, nethttp.MethodGet, "/get-requests", nil, "")
	assert.Equal(t, nethttp.StatusUnauthorized, status)

	token := env.login(t)
	status, raw = env.do(t, nethttp.MethodGet, "/get-requests", nil, token)
	require.Equal(t, nethttp.StatusOK, status)
	var items []contact.Request
	require.NoError(t, json.Unmarshal(raw, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Ana", items[0].Name)
	assert.Equal(t, "ana@x.com", items[0].Email)

	status, raw = env.do(t, nethttp.MethodGet, "/get-requests?limit=1&offset=1", nil, token)
	require.Equal(t, nethttp.StatusOK, status)
	require.NoError(t, json.Unmarshal(raw, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "Budi", items[0].Name)
}

func TestDeleteRequest(t *testing.T) {
	env := newTestEnv(t, false)
	token := env.login(t)

	status, _ := env.do(t, nethttp.MethodDelete, "/delete-request/not-a-uuid", nil, token)
	assert.Equal(t, nethttp.StatusBadRequest, status)
	assert.Equal(t, int32(0), env.contacts.deletes.Load())

	status, _ = env.do(t, nethttp.MethodDelete, "/delete-request/"+uuid.NewString(), nil, token)
	assert.Equal(t, nethttp.StatusNotFound, status)
	assert.Equal(t, int32(1), env.contacts.deletes.Load())

	req := contact.Request{ID: uuid.New(), Name: "Ana", Email: "ana@x.com", Message: "Hi", CreatedAt: time.Now()}
	require.NoError(t, env.contacts.Create(context.Background(), req))

	status, _ = env.do(t, nethttp.MethodDelete, "/delete-request/"+req.ID.String(), nil, "")
	assert.Equal(t, nethttp.StatusUnauthorized, status)

	status, raw := env.do(t, nethttp.MethodDelete, "/delete-request/"+req.ID.String(), nil, token)
	require.Equal(t, nethttp.StatusOK, status)
	assert.True(t, decodeEnvelope(t, raw).Success)

	status, _ = env.do(t, nethttp.MethodDelete, "/delete-request/"+req.ID.String(), nil, token)
	assert.Equal(t, nethttp.StatusNotFound, status)
}

func TestAdminFormRoundTrip(t *testing.T) {
	env := newTestEnv(t, false)
	token := env.login(t)

	status, _ := env.do(t, nethttp.MethodPost, "/update-data", `{
		"personalInfo": {"name": "Harizal", "title": "Engineer", "address": "Jakarta", "email": "h@example.com"},
		"education": [{"degree": "BSc", "institution": "UI", "status": "Graduated"}],
		"workExperience": [{"period": "2020", "company": "Acme", "position": "NOC"}],
		"certifications": ["CCNA", "CEH"],
		"trainings": ["MTCNA"],
		"projects": {"it": [], "network_infrastructure": ["Backbone"], "security": []}
	}`, token)
	require.Equal(t, nethttp.StatusOK, status)
	_, before := env.do(t, nethttp.MethodGet, "/get-data", nil, "")

	status, _ = env.do(t, nethttp.MethodGet, "/admin/form", nil, "")
	assert.Equal(t, nethttp.StatusUnauthorized, status)

	status, raw := env.do(t, nethttp.MethodGet, "/admin/form", nil, token)
	require.Equal(t, nethttp.StatusOK, status)
	var form editor.Form
	require.NoError(t, json.Unmarshal(raw, &form))

	status, _ = env.do(t, nethttp.MethodPost, "/admin/form", form, token)
	require.Equal(t, nethttp.StatusOK, status)
	_, after := env.do(t, nethttp.MethodGet, "/get-data", nil, "")
	assert.JSONEq(t, string(before), string(after))

	require.NoError(t, form.AddItem("workExperience"))
	require.NoError(t, form.AddItem("trainings"))
	require.NoError(t, form.RemoveItem("certifications", 0))
	trainings, _ := form.Section("trainings")
	trainings.Items[1].Fields[0].Value = "CCNP Enterprise"

	status, raw = env.do(t, nethttp.MethodPost, "/admin/form", form, token)
	require.Equal(t, nethttp.StatusOK, status)
	var saved struct {
		Success bool             `json:"success"`
		Data    profile.Document `json:"data"`
	}
	require.NoError(t, json.Unmarshal(raw, &saved))
	assert.True(t, saved.Success)
	assert.Len(t, saved.Data.WorkExperience, 1)
	assert.Equal(t, []string{"CEH"}, saved.Data.Certifications)
	assert.Equal(t, []string{"MTCNA", "CCNP Enterprise"}, saved.Data.Trainings)

	status, _ = env.do(t, nethttp.MethodPost, "/admin/form", editor.Form{}, token)
	assert.Equal(t, nethttp.StatusBadRequest, status)
}

func TestOneTimeCodeLogin(t *testing.T) {
	env := newTestEnv(t, true)

	status, raw := env.do(t, nethttp.MethodPost, "/login", map[string]string{"username": "harizal"}, "")
	require.Equal(t, nethttp.StatusOK, status, string(raw))
	var start struct {
		Success   bool   `json:"success"`
		Challenge string `json:"challenge"`
		Token     string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(raw, &start))
	require.NotEmpty(t, start.Challenge)
	assert.Empty(t, start.Token)
	require.Len(t, env.codes.last, 6)

	status, _ = env.do(t, nethttp.MethodPost, "/verify", map[string]string{"challenge": start.Challenge, "otp": "12ab"}, "")
	assert.Equal(t, nethttp.StatusBadRequest, status)

	wrong := "100000"
	if env.codes.last == wrong {
		wrong = "100001"
	}
	status, _ = env.do(t, nethttp.MethodPost, "/verify", map[string]string{"challenge": start.Challenge, "otp": wrong}, "")
	assert.Equal(t, nethttp.StatusUnauthorized, status)

	status, _ = env.do(t, nethttp.MethodPost, "/verify", map[string]string{"otp": env.codes.last}, "")
	assert.Equal(t, nethttp.StatusBadRequest, status)

	status, raw = env.do(t, nethttp.MethodPost, "/verify", map[string]string{"challenge": start.Challenge, "otp": env.codes.last}, "")
	require.Equal(t, nethttp.StatusOK, status)
	var verified struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(raw, &verified))

	status, _ = env.do(t, nethttp.MethodGet, "/get-requests", nil, verified.Token)
	assert.Equal(t, nethttp.StatusOK, status)

	status, _ = env.do(t, nethttp.MethodGet, "/get-requests", nil, start.Challenge)
	assert.Equal(t, nethttp.StatusForbidden, status)

	status, _ = env.do(t, nethttp.MethodPost, "/login", map[string]string{"username": "mallory"}, "")
	assert.Equal(t, nethttp.StatusUnauthorized, status)
}

func TestVerifyDisabledInPasswordMode(t *testing.T) {
	env := newTestEnv(t, false)
	status, _ := env.do(t, nethttp.MethodPost, "/verify", map[string]string{"otp": "123456"}, "")
	assert.Equal(t, nethttp.StatusNotFound, status)
}

func TestSPAFallbackAndHealth(t *testing.T) {
	env := newTestEnv(t, false)

	status, raw := env.do(t, nethttp.MethodGet, "/projects/anything", nil, "")
	assert.Equal(t, nethttp.StatusOK, status)
	assert.Equal(t, "<html>cv</html>", string(raw))

	status, raw = env.do(t, nethttp.MethodGet, "/app.js", nil, "")
	assert.Equal(t, nethttp.StatusOK, status)
	assert.Equal(t, "console.log(1)", string(raw))

	status, raw = env.do(t, nethttp.MethodGet, "/api/v1/health", nil, "")
	assert.Equal(t, nethttp.StatusOK, status)
	assert.JSONEq(t, `{"status":"ok"}`, string(raw))

	status, _ = env.do(t, nethttp.MethodGet, "/api/v1/ready", nil, "")
	assert.Equal(t, nethttp.StatusOK, status)
}
