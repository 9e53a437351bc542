package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SessionDir resolves the session-scoped working directory. An external
// driver shares one directory across the begin/set/end invocations by
// exporting PANELGRID_SESSION; without it every process of one user lands
// in the same per-user temp directory.
func SessionDir() string {
	if dir := os.Getenv("PANELGRID_SESSION"); dir != "" {
		return dir
	}
	return filepath.Join(os.TempDir(), fmt.Sprintf("panelgrid-%d", os.Getuid()))
}

// CurrentFigure reads the active figure id from the session's figure
// marker. The id is assigned by an external figure-management collaborator;
// without a marker everything belongs to figure 0.
func CurrentFigure(dir string) int {
	data, err := os.ReadFile(filepath.Join(dir, "figure"))
	if err != nil {
		return 0
	}
	fields := strings.Fields(string(data))
	if len(fields) == 0 {
		return 0
	}
	id, err := strconv.Atoi(fields[0])
	if err != nil || id < 0 {
		return 0
	}
	return id
}
