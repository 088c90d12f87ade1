package cli

import (
	"fmt"
	"strconv"
)

// argID parses the i-th argument as a positive id.
func argID(args []string, i int, name string) (int64, error) {
	if i >= len(args) {
		return 0, fmt.Errorf("missing %s", name)
	}
	id, err := strconv.ParseInt(args[i], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, args[i])
	}
	return id, nil
}

// argInt parses the optional i-th argument, returning def when absent.
func argInt(args []string, i int, name string, def int) (int, error) {
	if i >= len(args) {
		return def, nil
	}
	n, err := strconv.Atoi(args[i])
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, args[i])
	}
	return n, nil
}
