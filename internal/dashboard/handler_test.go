package dashboard

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestDashboard_ServesIndexAndAssets(t *testing.T) {
	r := chi.NewRouter()
	RegisterRoutes(r)

	ts := httptest.NewServer(r)
	defer ts.Close()

	// index con el branding y los contenedores que espera el JS
	{
		res, err := http.Get(ts.URL + "/dashboard")
		if err != nil {
			t.Fatalf("get dashboard: %v", err)
		}
		d, _ := io.ReadAll(res.Body)
		res.Body.Close()

		if res.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d", res.StatusCode)
		}
		if ct := res.Header.Get("Content-Type"); !strings.Contains(ct, "text/html") {
			t.Fatalf("expected html content type, got %q", ct)
		}
		html := string(d)
		for _, want := range []string{"Grazioso Salvare", "animals-table", "breed-chart", "rescue-filters"} {
			if !strings.Contains(html, want) {
				t.Fatalf("expected index to contain %q", want)
			}
		}
	}

	// estáticos embebidos
	for _, path := range []string{"/dashboard/assets/dashboard.js", "/dashboard/assets/style.css"} {
		res, err := http.Get(ts.URL + path)
		if err != nil {
			t.Fatalf("get %s: %v", path, err)
		}
		d, _ := io.ReadAll(res.Body)
		res.Body.Close()

		if res.StatusCode != http.StatusOK || len(d) == 0 {
			t.Fatalf("expected %s served, got %d (%d bytes)", path, res.StatusCode, len(d))
		}
	}

	// fuera del embed => 404
	{
		res, err := http.Get(ts.URL + "/dashboard/assets/missing.js")
		if err != nil {
			t.Fatalf("get missing asset: %v", err)
		}
		res.Body.Close()
		if res.StatusCode != http.StatusNotFound {
			t.Fatalf("expected 404 for missing asset, got %d", res.StatusCode)
		}
	}
}
