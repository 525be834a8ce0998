package generator

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var RouteFile = filepath.Join("routes", "api.php")

func RouteLine(n Names) string {
	return fmt.Sprintf("Route::apiResource('%s', %s\\%s::class);", n.Resource, ControllerNamespace, n.Controller)
}

// AppendRoute adds route to the routes file unless the exact line is already
// there. The check is a plain substring match.
func AppendRoute(basePath, route string) (Status, error) {
	path := filepath.Join(basePath, RouteFile)

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return StatusFailed, fmt.Errorf("%w: %s", ErrRouteFileMissing, path)
		}
		return StatusFailed, fmt.Errorf("failed to read route file: %w", err)
	}

	if strings.Contains(string(content), route) {
		return StatusDuplicate, nil
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		return StatusFailed, fmt.Errorf("%w: %s: %v", ErrPathUnwritable, path, err)
	}
	defer f.Close()

	if _, err := f.WriteString("\n" + route + "\n"); err != nil {
		return StatusFailed, fmt.Errorf("%w: %s: %v", ErrPathUnwritable, path, err)
	}
	return StatusAppended, nil
}
