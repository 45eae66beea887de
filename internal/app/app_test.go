package app

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"portfolio/internal/config"
	"portfolio/internal/database/migration"
	"portfolio/internal/database/sqlite"
	"portfolio/internal/delivery/http/routes"
	"portfolio/internal/domain/portfolio"
	"portfolio/internal/pkg/jwt"
	"portfolio/internal/repository"
	ucuser "portfolio/internal/usecase/user"
)

type testServer struct {
	app   *App
	store *repository.Store
	token string
}

func newTestServer(t *testing.T, withAuth bool) *testServer {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.Open(ctx, filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	if err := (migration.Runner{}).Run(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	store := repository.NewStore(db)

	ts := &testServer{store: store}
	deps := routes.Deps{Storage: store}
	if withAuth {
		deps.JWT = jwt.NewHMACService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
		if _, _, err := ucuser.NewService(store).EnsureAdmin(ctx, "admin", "s3cret-pass"); err != nil {
			t.Fatalf("ensure admin: %v", err)
		}
	}

	cfg := config.Config{App: config.AppConfig{AppName: "portfolio-test", CORSOrigins: []string{"*"}}}
	ts.app = New(cfg, deps)

	if withAuth {
		var body struct {
			AccessToken  string `json:"accessToken"`
			RefreshToken string `json:"refreshToken"`
		}
		res := ts.do(t, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"s3cret-pass"}`, "")
		ts.expectStatus(t, res, http.StatusOK)
		decode(t, res, &body)
		if body.AccessToken == "" || body.RefreshToken == "" {
			t.Fatalf("login returned no tokens")
		}
		ts.token = body.AccessToken
	}
	return ts
}

type result struct {
	status int
	body   []byte
}

func (ts *testServer) do(t *testing.T, method, path, body, token string) result {
	t.Helper()

	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, r)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := ts.app.Fiber.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer res.Body.Close()

	b, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return result{status: res.StatusCode, body: b}
}

func (ts *testServer) admin(t *testing.T, method, path, body string) result {
	t.Helper()
	return ts.do(t, method, path, body, ts.token)
}

func (ts *testServer) expectStatus(t *testing.T, res result, want int) {
	t.Helper()
	if res.status != want {
		t.Fatalf("expected status %d, got %d: %s", want, res.status, res.body)
	}
}

func decode(t *testing.T, res result, out any) {
	t.Helper()
	if err := json.Unmarshal(res.body, out); err != nil {
		t.Fatalf("decode %s: %v", res.body, err)
	}
}

type errorBody struct {
	Error  string                 `json:"error"`
	Fields []portfolio.FieldError `json:"fields"`
}

func TestContactRoundTrip(t *testing.T) {
	ts := newTestServer(t, true)

	res := ts.do(t, http.MethodPost, "/api/contact", `{"name":"A","email":"a@b.com","message":"hi"}`, "")
	ts.expectStatus(t, res, http.StatusOK)
	var created portfolio.ContactSubmission
	decode(t, res, &created)
	if created.ID == 0 || created.SubmittedAt.IsZero() {
		t.Fatalf("expected generated fields, got %+v", created)
	}

	res = ts.admin(t, http.MethodGet, "/api/contact/submissions", "")
	ts.expectStatus(t, res, http.StatusOK)
	var subs []portfolio.ContactSubmission
	decode(t, res, &subs)
	if len(subs) != 1 || subs[0].ID != created.ID || subs[0].Email != "a@b.com" || !subs[0].SubmittedAt.Equal(created.SubmittedAt) {
		t.Fatalf("unexpected submissions %+v", subs)
	}
}

func TestContact_InvalidEmail(t *testing.T) {
	ts := newTestServer(t, true)

	res := ts.do(t, http.MethodPost, "/api/contact", `{"name":"A","email":"nope","message":"hi"}`, "")
	ts.expectStatus(t, res, http.StatusBadRequest)
	var body errorBody
	decode(t, res, &body)
	if len(body.Fields) != 1 || body.Fields[0].Field != "email" {
		t.Fatalf("unexpected error body %+v", body)
	}
}

func TestCreateSkill_MissingName(t *testing.T) {
	ts := newTestServer(t, true)

	res := ts.admin(t, http.MethodPost, "/api/skills", `{"proficiency":"Expert","experience":"5 yrs"}`)
	ts.expectStatus(t, res, http.StatusBadRequest)
	var body errorBody
	decode(t, res, &body)
	if !strings.Contains(body.Error, "name") {
		t.Fatalf("expected error to name the field, got %q", body.Error)
	}

	res = ts.do(t, http.MethodGet, "/api/skills", "", "")
	ts.expectStatus(t, res, http.StatusOK)
	var skills []portfolio.Skill
	decode(t, res, &skills)
	if len(skills) != 0 {
		t.Fatalf("expected no skill rows, got %+v", skills)
	}
}

func TestSkillsCRUD(t *testing.T) {
	ts := newTestServer(t, true)

	res := ts.admin(t, http.MethodPost, "/api/skills", `{"name":"Go","proficiency":"Expert","experience":"5 yrs","order":1}`)
	ts.expectStatus(t, res, http.StatusOK)
	var sk portfolio.Skill
	decode(t, res, &sk)

	res = ts.admin(t, http.MethodPatch, "/api/skills/"+itoa(sk.ID), `{"proficiency":"Advanced"}`)
	ts.expectStatus(t, res, http.StatusOK)
	var updated portfolio.Skill
	decode(t, res, &updated)
	if updated.Proficiency != "Advanced" || updated.Name != "Go" {
		t.Fatalf("unexpected patch result %+v", updated)
	}

	res = ts.admin(t, http.MethodPatch, "/api/skills/9999", `{"name":"x"}`)
	ts.expectStatus(t, res, http.StatusNotFound)

	res = ts.admin(t, http.MethodPatch, "/api/skills/abc", `{"name":"x"}`)
	ts.expectStatus(t, res, http.StatusBadRequest)

	res = ts.admin(t, http.MethodDelete, "/api/skills/9999", "")
	ts.expectStatus(t, res, http.StatusOK)
	if strings.TrimSpace(string(res.body)) != `{"success":true}` {
		t.Fatalf("unexpected delete body %s", res.body)
	}

	res = ts.admin(t, http.MethodDelete, "/api/skills/"+itoa(sk.ID), "")
	ts.expectStatus(t, res, http.StatusOK)

	res = ts.do(t, http.MethodGet, "/api/skills", "", "")
	var skills []portfolio.Skill
	decode(t, res, &skills)
	if len(skills) != 0 {
		t.Fatalf("expected empty list, got %+v", skills)
	}
}

func TestProjects_ClearOptionalField(t *testing.T) {
	ts := newTestServer(t, true)

	res := ts.admin(t, http.MethodPost, "/api/projects", `{"title":"T","subtitle":"S","gradient":"g","link":"https://github.com"}`)
	ts.expectStatus(t, res, http.StatusOK)
	var p portfolio.Project
	decode(t, res, &p)
	if p.Link == nil {
		t.Fatalf("expected link to be stored")
	}

	res = ts.admin(t, http.MethodPatch, "/api/projects/"+itoa(p.ID), `{"link":null}`)
	ts.expectStatus(t, res, http.StatusOK)
	decode(t, res, &p)
	if p.Link != nil {
		t.Fatalf("expected link to be cleared, got %q", *p.Link)
	}
}

func TestProfile(t *testing.T) {
	ts := newTestServer(t, true)

	res := ts.do(t, http.MethodGet, "/api/profile", "", "")
	ts.expectStatus(t, res, http.StatusOK)
	if strings.TrimSpace(string(res.body)) != "null" {
		t.Fatalf("expected null before profile exists, got %s", res.body)
	}

	payload := `{"name":"Alex","role":"Dev","monthlyListeners":"1","bio":"b","education":"e","githubUrl":"g","linkedinUrl":"l","avatarUrl":"a"}`
	res = ts.admin(t, http.MethodPut, "/api/profile", payload)
	ts.expectStatus(t, res, http.StatusOK)

	res = ts.do(t, http.MethodGet, "/api/profile", "", "")
	var p portfolio.Profile
	decode(t, res, &p)
	if p.Name != "Alex" || p.ID != portfolio.ProfileID {
		t.Fatalf("unexpected profile %+v", p)
	}

	res = ts.admin(t, http.MethodPut, "/api/profile", `{"name":"Alex"}`)
	ts.expectStatus(t, res, http.StatusBadRequest)
}

func TestBlog(t *testing.T) {
	ts := newTestServer(t, true)

	for _, body := range []string{
		`{"title":"draft","subtitle":"s","content":"c","coverGradient":"g"}`,
		`{"title":"live","subtitle":"s","content":"c","coverGradient":"g","published":true}`,
	} {
		res := ts.admin(t, http.MethodPost, "/api/blog", body)
		ts.expectStatus(t, res, http.StatusOK)
	}

	var posts []portfolio.BlogPost
	decode(t, ts.do(t, http.MethodGet, "/api/blog?published=true", "", ""), &posts)
	if len(posts) != 1 || posts[0].Title != "live" {
		t.Fatalf("unexpected published posts %+v", posts)
	}

	decode(t, ts.do(t, http.MethodGet, "/api/blog?published=yes", "", ""), &posts)
	if len(posts) != 2 {
		t.Fatalf("expected all posts for non-exact filter, got %d", len(posts))
	}

	res := ts.do(t, http.MethodGet, "/api/blog/4242", "", "")
	ts.expectStatus(t, res, http.StatusNotFound)
	var body errorBody
	decode(t, res, &body)
	if body.Error != "Blog post not found" {
		t.Fatalf("unexpected error %q", body.Error)
	}

	res = ts.do(t, http.MethodGet, "/api/blog/"+itoa(posts[0].ID), "", "")
	ts.expectStatus(t, res, http.StatusOK)
}

func TestAnalytics(t *testing.T) {
	ts := newTestServer(t, true)

	for _, p := range []string{"/", "/projects", "/"} {
		res := ts.do(t, http.MethodPost, "/api/analytics/pageview", `{"path":"`+p+`"}`, "")
		ts.expectStatus(t, res, http.StatusOK)
	}
	res := ts.do(t, http.MethodPost, "/api/analytics/pageview", `{}`, "")
	ts.expectStatus(t, res, http.StatusBadRequest)

	var views []portfolio.PageView
	decode(t, ts.admin(t, http.MethodGet, "/api/analytics/views", ""), &views)
	if len(views) != 3 {
		t.Fatalf("expected 3 views, got %d", len(views))
	}

	var stats portfolio.PageViewStats
	decode(t, ts.admin(t, http.MethodGet, "/api/analytics/summary", ""), &stats)
	if stats.Total != 3 || len(stats.Paths) != 2 || stats.Paths[0].Path != "/" || stats.Paths[0].Count != 2 {
		t.Fatalf("unexpected stats %+v", stats)
	}

	res = ts.admin(t, http.MethodGet, "/api/analytics/views?from=yesterday", "")
	ts.expectStatus(t, res, http.StatusBadRequest)

	res = ts.admin(t, http.MethodGet, "/api/analytics/views?from=2030-01-02&to=2030-01-01", "")
	ts.expectStatus(t, res, http.StatusBadRequest)

	decode(t, ts.admin(t, http.MethodGet, "/api/analytics/views?from=2000-01-01&to=2000-01-02", ""), &views)
	if len(views) != 0 {
		t.Fatalf("expected no views in a past window, got %d", len(views))
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	ts := newTestServer(t, true)

	cases := []struct{ method, path, body string }{
		{http.MethodPost, "/api/skills", `{"name":"Go","proficiency":"Expert","experience":"1 yr"}`},
		{http.MethodPut, "/api/profile", `{}`},
		{http.MethodDelete, "/api/projects/1", ""},
		{http.MethodPatch, "/api/blog/1", `{}`},
		{http.MethodGet, "/api/contact/submissions", ""},
		{http.MethodGet, "/api/analytics/views", ""},
	}
	for _, tc := range cases {
		res := ts.do(t, tc.method, tc.path, tc.body, "")
		if res.status != http.StatusUnauthorized {
			t.Fatalf("%s %s: expected 401, got %d", tc.method, tc.path, res.status)
		}
	}

	res := ts.do(t, http.MethodPost, "/api/skills", `{}`, "not-a-token")
	ts.expectStatus(t, res, http.StatusUnauthorized)

	res = ts.do(t, http.MethodGet, "/api/skills", "", "")
	ts.expectStatus(t, res, http.StatusOK)
}

func TestAuth_LoginAndRefresh(t *testing.T) {
	ts := newTestServer(t, true)

	res := ts.do(t, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"wrong-pass"}`, "")
	ts.expectStatus(t, res, http.StatusUnauthorized)

	res = ts.do(t, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"s3cret-pass"}`, "")
	ts.expectStatus(t, res, http.StatusOK)
	var tokens struct {
		RefreshToken string `json:"refreshToken"`
	}
	decode(t, res, &tokens)

	res = ts.do(t, http.MethodPost, "/api/auth/refresh", "", tokens.RefreshToken)
	ts.expectStatus(t, res, http.StatusOK)

	res = ts.do(t, http.MethodPost, "/api/auth/refresh", "", ts.token)
	ts.expectStatus(t, res, http.StatusUnauthorized)

	// A refresh token is not accepted on admin routes.
	res = ts.do(t, http.MethodGet, "/api/contact/submissions", "", tokens.RefreshToken)
	ts.expectStatus(t, res, http.StatusUnauthorized)

	res = ts.admin(t, http.MethodGet, "/api/auth/me", "")
	ts.expectStatus(t, res, http.StatusOK)
	if strings.Contains(string(res.body), "password") || !strings.Contains(string(res.body), "admin") {
		t.Fatalf("unexpected me body %s", res.body)
	}
}

func TestAuthDisabled_AdminRoutesOpen(t *testing.T) {
	ts := newTestServer(t, false)

	res := ts.do(t, http.MethodPost, "/api/skills", `{"name":"Go","proficiency":"Expert","experience":"1 yr"}`, "")
	ts.expectStatus(t, res, http.StatusOK)

	res = ts.do(t, http.MethodPost, "/api/auth/login", `{"username":"admin","password":"x"}`, "")
	ts.expectStatus(t, res, http.StatusNotFound)
}

func TestHealthAndMetrics(t *testing.T) {
	ts := newTestServer(t, false)

	res := ts.do(t, http.MethodGet, "/health", "", "")
	ts.expectStatus(t, res, http.StatusOK)

	ts.do(t, http.MethodGet, "/api/skills", "", "")
	res = ts.do(t, http.MethodGet, "/metrics", "", "")
	ts.expectStatus(t, res, http.StatusOK)
	if !strings.Contains(string(res.body), "portfolio_http_requests_total") {
		t.Fatalf("expected request counter in metrics output")
	}
}

type failingStorage struct {
	repository.Storage
}

func (failingStorage) GetSkills(context.Context) ([]portfolio.Skill, error) {
	return nil, errors.New("connection refused")
}

func (failingStorage) Ping(context.Context) error {
	return errors.New("connection refused")
}

func TestStorageFailure_Returns500(t *testing.T) {
	cfg := config.Config{App: config.AppConfig{AppName: "portfolio-test"}}
	a := New(cfg, routes.Deps{Storage: failingStorage{}})
	ts := &testServer{app: a}

	res := ts.do(t, http.MethodGet, "/api/skills", "", "")
	ts.expectStatus(t, res, http.StatusInternalServerError)
	var body errorBody
	decode(t, res, &body)
	if body.Error != "Failed to fetch skills" {
		t.Fatalf("unexpected error %q", body.Error)
	}
	if strings.Contains(string(res.body), "connection refused") {
		t.Fatalf("internal cause leaked: %s", res.body)
	}

	res = ts.do(t, http.MethodGet, "/health", "", "")
	ts.expectStatus(t, res, http.StatusServiceUnavailable)
}

func TestListenAddr(t *testing.T) {
	cases := map[string]string{"5000": ":5000", ":8080": ":8080", " 80 ": ":80"}
	for in, want := range cases {
		got, err := ListenAddr(in)
		if err != nil || got != want {
			t.Fatalf("ListenAddr(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ListenAddr(" "); err == nil {
		t.Fatalf("expected error for empty port")
	}
}

func itoa(id int64) string {
	b, _ := json.Marshal(id)
	return string(b)
}
