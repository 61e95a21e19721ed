package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/binpack-go/solver/internal/instance"
)

// loadDataset parses path and returns the dataset selected by index (either
// a numeric position or an exact dataset name).
func loadDataset(path, index string) (*instance.Instance, error) {
	instances, err := instance.LoadFile(path)
	if err != nil {
		return nil, err
	}
	if len(instances) == 0 {
		return nil, fmt.Errorf("%q contains no datasets", path)
	}

	if n, err := strconv.Atoi(index); err == nil {
		if n < 0 || n >= len(instances) {
			return nil, fmt.Errorf("dataset index %d out of range [0,%d)", n, len(instances))
		}
		return &instances[n], nil
	}

	for i := range instances {
		if instances[i].Name == index {
			return &instances[i], nil
		}
	}
	return nil, fmt.Errorf("no dataset named %q in %q", index, path)
}

// resolveSeed returns seed, or the current time in nanoseconds if seed is 0.
func resolveSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}
