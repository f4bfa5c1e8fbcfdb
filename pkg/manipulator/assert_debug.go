//go:build debug

package manipulator

import "fmt"

func assertf(format string, args ...any) {
	panic(fmt.Sprintf("manipulator: "+format, args...))
}
