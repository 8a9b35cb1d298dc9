package handlers_test

import (
	"net/http"
	"net/url"
	"strings"
	"testing"
)

func indexOrFail(t *testing.T, body, s string) int {
	t.Helper()
	i := strings.Index(body, s)
	if i < 0 {
		t.Fatalf("%q missing from page", s)
	}
	return i
}

func TestHomeRendersCatalogNewestFirst(t *testing.T) {
	ta := newTestApp(t, nil)
	resp, body := ta.get(t, "/", newSID())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	for _, s := range []string{"А777АА 77", "50 000 ₽", "150 000 ₽", "15.01.2024", "(6)</small>"} {
		if !strings.Contains(body, s) {
			t.Fatalf("home page missing %q", s)
		}
	}
	// listing 4 has no view counter
	if !strings.Contains(body, "Просмотров: 0") {
		t.Fatal("absent views should render as 0")
	}
	if indexOrFail(t, body, "А777АА") > indexOrFail(t, body, "М888ММ") {
		t.Fatal("newest listing should come first")
	}
}

func TestHomeIssuesSessionCookie(t *testing.T) {
	ta := newTestApp(t, nil)
	resp, _ := ta.get(t, "/", "")
	if cookieValue(resp, "sid") == "" {
		t.Fatal("expected a sid cookie for a new browser")
	}
	resp2, _ := ta.get(t, "/", "not-a-uuid")
	if v := cookieValue(resp2, "sid"); v == "" || v == "not-a-uuid" {
		t.Fatalf("malformed sid should be replaced, got %q", v)
	}
}

func TestSearchByRegionSubstring(t *testing.T) {
	ta := newTestApp(t, nil)
	resp, body := ta.get(t, "/search?q=77", newSID())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	for _, s := range []string{"А777АА", "О001ОО", "К100КК"} {
		if !strings.Contains(body, s) {
			t.Fatalf("expected %s in results", s)
		}
	}
	for _, s := range []string{"Н333НН", "В555ВВ", "М888ММ"} {
		if strings.Contains(body, s) {
			t.Fatalf("unexpected %s in results", s)
		}
	}
}

func TestSearchCaseInsensitiveNumber(t *testing.T) {
	ta := newTestApp(t, nil)
	_, body := ta.get(t, "/search?q="+url.QueryEscape("м888"), newSID())
	if !strings.Contains(body, "М888ММ") || !strings.Contains(body, "(1)</small>") {
		t.Fatalf("lower-case query should match М888ММ; body=%s", body)
	}
}

func TestSearchPriceRangeAndSort(t *testing.T) {
	ta := newTestApp(t, nil)
	_, body := ta.get(t, "/search?min=50000&max=100000&sort=price-asc", newSID())
	if !strings.Contains(body, "(3)</small>") {
		t.Fatalf("expected 3 listings in [50000,100000]; body=%s", body)
	}
	a := indexOrFail(t, body, "А777АА") // 50 000
	k := indexOrFail(t, body, "К100КК") // 65 000
	v := indexOrFail(t, body, "В555ВВ") // 80 000
	if !(a < k && k < v) {
		t.Fatal("expected ascending price order")
	}
	if strings.Contains(body, "О001ОО") {
		t.Fatal("120 000 is outside the range")
	}
}

func TestSearchEmptyState(t *testing.T) {
	ta := newTestApp(t, nil)
	_, body := ta.get(t, "/search?q=XYZ", newSID())
	if !strings.Contains(body, "Ничего не найдено") {
		t.Fatal("expected empty state")
	}
}

// input validation on the search surface
func TestSearchRejectsBadInput(t *testing.T) {
	ta := newTestApp(t, nil)
	cases := []string{
		"/search?q=" + url.QueryEscape("<script>alert(1)</script>"),
		"/search?q=" + url.QueryEscape("' OR 1=1 --"),
		"/search?region=abc",
		"/search?region=1234",
	}
	for _, path := range cases {
		resp, body := ta.get(t, path, newSID())
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", path, resp.StatusCode)
		}
		if strings.Contains(body, "<script>alert(1)</script>") {
			t.Fatalf("%s: raw input reflected", path)
		}
	}
}

func TestResetRedirectsToSearch(t *testing.T) {
	ta := newTestApp(t, nil)
	resp, _ := ta.get(t, "/reset", newSID())
	if resp.StatusCode != http.StatusFound {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/search" {
		t.Fatalf("expected /search, got %q", loc)
	}
}

func TestDetailPage(t *testing.T) {
	ta := newTestApp(t, nil)
	resp, body := ta.get(t, "/listing/1", newSID())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	for _, s := range []string{"А777АА", "15 января 2024 г.", "Иван Петров", "Премиум"} {
		if !strings.Contains(body, s) {
			t.Fatalf("detail page missing %q", s)
		}
	}
}

func TestDetailUnknownListing(t *testing.T) {
	ta := newTestApp(t, nil)
	for _, path := range []string{"/listing/999", "/listing/a.b"} {
		resp, body := ta.get(t, path, newSID())
		if resp.StatusCode != http.StatusNotFound {
			t.Fatalf("%s: expected 404, got %d", path, resp.StatusCode)
		}
		if !strings.Contains(body, "Объявление не найдено") {
			t.Fatalf("%s: missing not-found message", path)
		}
	}
}

func TestRulesPage(t *testing.T) {
	ta := newTestApp(t, nil)
	resp, body := ta.get(t, "/rules", newSID())
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	for _, s := range []string{"Правила площадки", "Общие правила", "Правила покупки", "support@номера.рф"} {
		if !strings.Contains(body, s) {
			t.Fatalf("rules page missing %q", s)
		}
	}
}
