package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"platemarket/internal/http/handlers"
	"platemarket/internal/repos"
	"platemarket/internal/services"
)

const templatesDir = "../../web/templates"

type testApp struct {
	app      *fiber.App
	db       *sqlx.DB
	catalog  *services.CatalogService
	sessions *services.Sessions
}

func sqliteStorage(db *sqlx.DB) services.StorageFor {
	kv := repos.NewKVRepo(db)
	return func(sid string) services.Storage { return kv.Scope(sid) }
}

// Minimal app with the real routes, session and csrf middleware over an in-memory db
func newTestApp(t *testing.T, derived []string) *testApp {
	t.Helper()
	return buildTestApp(t, derived, true)
}

// buildTestApp lets a test turn off Immutable so values retained past the
// request must be copied by the session code itself.
func buildTestApp(t *testing.T, derived []string, immutable bool) *testApp {
	t.Helper()
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	catalog, err := services.LoadCatalog(repos.NewListingRepo(db))
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	sessions := services.NewSessions(sqliteStorage(db), derived, services.SessionLimits{})

	app := fiber.New(fiber.Config{
		Views:        handlers.NewViews(templatesDir),
		Immutable:    immutable,
		ErrorHandler: handlers.ErrorHandler,
	})
	app.Use(requestid.New())
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/api/")
		},
		ErrorHandler: handlers.CSRFErrorHandler,
	}))
	handlers.Register(app, handlers.NewDeps(db, catalog, sessions))
	return &testApp{app: app, db: db, catalog: catalog, sessions: sessions}
}

func newSID() string { return uuid.NewString() }

func (ta *testApp) do(t *testing.T, req *http.Request, sid string) (*http.Response, string) {
	t.Helper()
	if sid != "" {
		req.AddCookie(&http.Cookie{Name: "sid", Value: sid})
	}
	resp, err := ta.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	body, _ := io.ReadAll(resp.Body)
	return resp, string(body)
}

func (ta *testApp) get(t *testing.T, path, sid string) (*http.Response, string) {
	t.Helper()
	return ta.do(t, httptest.NewRequest("GET", path, nil), sid)
}

// csrfToken fetches a page so the middleware issues a token cookie.
func (ta *testApp) csrfToken(t *testing.T, sid string) string {
	t.Helper()
	resp, _ := ta.get(t, "/add", sid)
	tok := cookieValue(resp, "csrf_")
	if tok == "" {
		t.Fatal("csrf token missing")
	}
	return tok
}

func (ta *testApp) postForm(t *testing.T, path string, form url.Values, sid, tok string) (*http.Response, string) {
	t.Helper()
	if tok != "" {
		form.Set("csrf", tok)
	}
	req := httptest.NewRequest("POST", path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if tok != "" {
		req.AddCookie(&http.Cookie{Name: "csrf_", Value: tok})
	}
	return ta.do(t, req, sid)
}

func (ta *testApp) getJSON(t *testing.T, path, sid string, out any) {
	t.Helper()
	resp, body := ta.get(t, path, sid)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET %s: status %d body=%s", path, resp.StatusCode, body)
	}
	if err := json.Unmarshal([]byte(body), out); err != nil {
		t.Fatalf("GET %s: decode: %v body=%s", path, err, body)
	}
}

func cookieValue(resp *http.Response, name string) string {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}

type logEntry struct {
	Level     string         `json:"level"`
	Action    string         `json:"action"`
	SessionID string         `json:"sid"`
	Fields    map[string]any `json:"fields"`
}

type lockedBuf struct {
	b  *bytes.Buffer
	mu *sync.Mutex
}

func (l *lockedBuf) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.b.Write(p)
}

func captureLogs(t *testing.T, fn func()) []logEntry {
	t.Helper()
	var buf bytes.Buffer
	var mu sync.Mutex
	oldW := log.Writer()
	oldFlags := log.Flags()
	log.SetOutput(&lockedBuf{b: &buf, mu: &mu})
	log.SetFlags(0)
	defer func() {
		log.SetOutput(oldW)
		log.SetFlags(oldFlags)
	}()

	fn()

	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var e logEntry
		if err := json.Unmarshal([]byte(line), &e); err == nil {
			entries = append(entries, e)
		}
	}
	return entries
}

func findAction(entries []logEntry, action string) (logEntry, bool) {
	for _, e := range entries {
		if e.Action == action {
			return e, true
		}
	}
	return logEntry{}, false
}
