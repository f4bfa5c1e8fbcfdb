//go:build !debug

package manipulator

import (
	"fmt"
	"log/slog"
)

func assertf(format string, args ...any) {
	slog.Debug("invalid manipulator configuration", "reason", fmt.Sprintf(format, args...))
}
