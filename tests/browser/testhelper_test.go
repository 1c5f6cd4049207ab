package browser_test

import (
	"crypto/rand"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/playwright-community/playwright-go"
	"golang.org/x/crypto/bcrypt"

	web "tapsandtakeout/internal/adapters/http"
	"tapsandtakeout/internal/adapters/http/middleware"
	"tapsandtakeout/internal/adapters/storage/content"
)

const adminPassword = "browser-testpass"

// testApp holds the running test server and Playwright handles.
type testApp struct {
	BaseURL string
	Store   *content.JSONStore
	Server  *http.Server
	PW      *playwright.Playwright
	Browser playwright.Browser
}

// newTestApp wires the app against a temp data directory and starts an
// HTTP server plus a headless browser.
func newTestApp(t *testing.T) *testApp {
	t.Helper()

	store := content.NewJSONStore(t.TempDir())
	stores := &web.Stores{ContentStore: store}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash admin password: %v", err)
	}
	web.SetAdminPasswordHash(hash)

	// Find a free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to find free port: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	// Change to project root so relative template/static paths work
	projectRoot := findProjectRoot(t)
	origDir, _ := os.Getwd()
	if err := os.Chdir(projectRoot); err != nil {
		t.Fatalf("failed to chdir to project root: %v", err)
	}
	t.Cleanup(func() { os.Chdir(origDir) })

	// Add test port to CSRF trusted origins before creating mux
	middleware.ExtraTrustedOrigins = append(middleware.ExtraTrustedOrigins,
		fmt.Sprintf("127.0.0.1:%d", port),
		fmt.Sprintf("localhost:%d", port),
	)

	csrfKey := make([]byte, 32)
	if _, err := rand.Read(csrfKey); err != nil {
		t.Fatalf("failed to generate CSRF key: %v", err)
	}

	mux := web.NewMux("static", stores, csrfKey)
	srv := &http.Server{
		Addr:    fmt.Sprintf("127.0.0.1:%d", port),
		Handler: mux,
	}
	go func() {
		if err := srv.ListenAndServe(); err != http.ErrServerClosed {
			log.Printf("test server error: %v", err)
		}
	}()

	// Wait for server to be ready
	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	for i := 0; i < 50; i++ {
		resp, err := http.Get(baseURL + "/healthz")
		if err == nil {
			resp.Body.Close()
			break
		}
		time.Sleep(100 * time.Millisecond)
	}

	pw, err := playwright.Run()
	if err != nil {
		t.Fatalf("failed to start Playwright: %v", err)
	}
	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(true),
	})
	if err != nil {
		t.Fatalf("failed to launch browser: %v", err)
	}

	app := &testApp{
		BaseURL: baseURL,
		Store:   store,
		Server:  srv,
		PW:      pw,
		Browser: browser,
	}

	t.Cleanup(func() {
		browser.Close()
		pw.Stop()
		srv.Close()
	})

	return app
}

// newPage creates a new browser page (tab).
func (a *testApp) newPage(t *testing.T) playwright.Page {
	t.Helper()
	page, err := a.Browser.NewPage()
	if err != nil {
		t.Fatalf("failed to create page: %v", err)
	}
	t.Cleanup(func() { page.Close() })
	return page
}

// login navigates to the login page and logs in as the shared admin.
func (a *testApp) login(t *testing.T, page playwright.Page) {
	t.Helper()
	if _, err := page.Goto(a.BaseURL + "/admin"); err != nil {
		t.Fatalf("failed to navigate to login: %v", err)
	}
	if err := page.Locator("input[name=username]").Fill("admin"); err != nil {
		t.Fatalf("failed to fill username: %v", err)
	}
	if err := page.Locator("input[name=password]").Fill(adminPassword); err != nil {
		t.Fatalf("failed to fill password: %v", err)
	}
	if err := page.Locator("button[type=submit]").Click(); err != nil {
		t.Fatalf("failed to click login: %v", err)
	}
	if err := page.WaitForURL(a.BaseURL+"/admin-events", playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(10000),
	}); err != nil {
		t.Fatalf("login did not redirect to the events editor: %v", err)
	}
}

// waitForFlash waits for the one-shot notice to contain the given text.
func waitForFlash(t *testing.T, page playwright.Page, text string) {
	t.Helper()
	err := page.Locator(".flash >> text=" + text).WaitFor(playwright.LocatorWaitForOptions{
		Timeout: playwright.Float(5000),
	})
	if err != nil {
		t.Fatalf("flash %q did not appear: %v", text, err)
	}
}

// findProjectRoot walks up from the working directory to find the project root (contains go.mod).
func findProjectRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("could not find project root (go.mod) from working directory")
		}
		dir = parent
	}
}
