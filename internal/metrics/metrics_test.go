package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	m := New()

	m.IncrementRecipesSaved()
	m.IncrementRecipesSaved()
	m.IncrementRecipesDeleted()
	m.IncrementInvites(ResultSuccess)
	m.IncrementInvites(ResultFailure)
	m.IncrementInvites(ResultFailure)
	m.IncrementLogins(ResultSuccess)

	if got := testutil.ToFloat64(m.RecipesSaved); got != 2 {
		t.Errorf("RecipesSaved = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.RecipesDeleted); got != 1 {
		t.Errorf("RecipesDeleted = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.InvitesSent.WithLabelValues(ResultFailure)); got != 2 {
		t.Errorf("InvitesSent{failure} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.Logins.WithLabelValues(ResultSuccess)); got != 1 {
		t.Errorf("Logins{success} = %v, want 1", got)
	}
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	m.IncrementRecipesSaved()
	m.IncrementRecipesDeleted()
	m.IncrementInvites(ResultSuccess)
	m.IncrementLogins(ResultFailure)
	m.ObserveRequest(http.MethodGet, "/", http.StatusOK, time.Millisecond)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestMiddlewareUsesRoutePattern(t *testing.T) {
	m := New()
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/api/recipes/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	r.Handle("/metrics", m.Handler())

	srv := httptest.NewServer(r)
	defer srv.Close()

	for _, id := range []string{"1", "2", "3"} {
		resp, err := http.Get(srv.URL + "/api/recipes/" + id)
		if err != nil {
			t.Fatal(err)
		}
		_ = resp.Body.Close()
	}

	if got := testutil.CollectAndCount(m.RequestDuration); got != 1 {
		t.Errorf("series = %d, want 1", got)
	}

	resp, err := http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = resp.Body.Close() }()
	body, _ := io.ReadAll(resp.Body)
	want := `recipecenter_http_request_duration_seconds_count{method="GET",route="/api/recipes/{id}",status="418"} 3`
	if !strings.Contains(string(body), want) {
		t.Errorf("exposition missing %q", want)
	}
}
