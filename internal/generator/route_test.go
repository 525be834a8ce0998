package generator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeRouteFile(t *testing.T, base, content string) string {
	t.Helper()
	path := filepath.Join(base, RouteFile)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRouteLine(t *testing.T) {
	got := RouteLine(NewNames("menu_opciones", "MenuOpcion"))
	want := `Route::apiResource('menu-opcions', App\Http\Controllers\Api\MenuOpcionApiController::class);`
	if got != want {
		t.Errorf("RouteLine() = %q, want %q", got, want)
	}
}

func TestAppendRouteIsIdempotent(t *testing.T) {
	base := t.TempDir()
	path := writeRouteFile(t, base, "<?php\n")
	route := RouteLine(NewNames("roles", "Role"))

	status, err := AppendRoute(base, route)
	if err != nil || status != StatusAppended {
		t.Fatalf("first append: status=%s err=%v", status, err)
	}

	status, err = AppendRoute(base, route)
	if err != nil || status != StatusDuplicate {
		t.Fatalf("second append: status=%s err=%v", status, err)
	}

	data, _ := os.ReadFile(path)
	if n := strings.Count(string(data), route); n != 1 {
		t.Errorf("route present %d times, want 1", n)
	}
	if !strings.HasSuffix(string(data), "\n"+route+"\n") {
		t.Errorf("route not appended on its own line: %q", data)
	}
}

func TestAppendRouteMissingFile(t *testing.T) {
	status, err := AppendRoute(t.TempDir(), "Route::get('x');")
	if !errors.Is(err, ErrRouteFileMissing) || status != StatusFailed {
		t.Errorf("status=%s err=%v", status, err)
	}
}
