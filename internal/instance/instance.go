// Package instance describes the immutable bin-packing problem and loads
// it from the OR-library "binpackN" benchmark format.
package instance

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/binpack-go/solver/internal/bperrors"
)

// Instance is the immutable problem description: a container capacity, the
// item weights to pack, and (if known) the published optimum bin count.
type Instance struct {
	Name      string
	Capacity  float64
	Items     []float64
	BestKnown int
}

// Validate checks the I0 precondition: every weight is positive and does
// not exceed capacity. Returns a wrapped bperrors.ErrInstanceInvalid on
// violation.
func (in *Instance) Validate() error {
	if in.Capacity <= 0 {
		return fmt.Errorf("%s: non-positive capacity %v: %w", in.Name, in.Capacity, bperrors.ErrInstanceInvalid)
	}
	for i, w := range in.Items {
		if w <= 0 {
			return fmt.Errorf("%s: item %d has non-positive weight %v: %w", in.Name, i, w, bperrors.ErrInstanceInvalid)
		}
		if w > in.Capacity {
			return fmt.Errorf("%s: item %d weight %v exceeds capacity %v: %w", in.Name, i, w, in.Capacity, bperrors.ErrInstanceInvalid)
		}
	}
	return nil
}

// LowerBound returns the trivial lower bound on bin count, ceil(sum(w)/C).
func (in *Instance) LowerBound() int {
	var sum float64
	for _, w := range in.Items {
		sum += w
	}
	bins := int(sum / in.Capacity)
	if float64(bins)*in.Capacity < sum-1e-9 {
		bins++
	}
	return bins
}

// LoadFile parses an OR-library "binpackN" file:
//
//	<dataset count>
//	for each dataset:
//	  <dataset name>
//	  <capacity> <itemCount> <bestKnownBinCount>
//	  <weight_1>
//	  ...
//	  <weight_itemCount>
func LoadFile(path string) ([]Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening benchmark file %q: %w: %v", path, bperrors.ErrIOFailure, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	readLine := func() (string, bool) {
		for sc.Scan() {
			line := strings.TrimSpace(sc.Text())
			if line != "" {
				return line, true
			}
		}
		return "", false
	}

	header, ok := readLine()
	if !ok {
		return nil, fmt.Errorf("empty benchmark file %q: %w", path, bperrors.ErrIOFailure)
	}
	count, err := strconv.Atoi(header)
	if err != nil || count < 0 {
		return nil, fmt.Errorf("malformed dataset count %q in %q: %w", header, path, bperrors.ErrIOFailure)
	}

	instances := make([]Instance, 0, count)
	for d := 0; d < count; d++ {
		name, ok := readLine()
		if !ok {
			return nil, fmt.Errorf("%q: missing dataset name for dataset %d: %w", path, d, bperrors.ErrIOFailure)
		}

		meta, ok := readLine()
		if !ok {
			return nil, fmt.Errorf("%q: missing metadata line for dataset %q: %w", path, name, bperrors.ErrIOFailure)
		}
		fields := strings.Fields(meta)
		if len(fields) != 3 {
			return nil, fmt.Errorf("%q: expected capacity/itemCount/bestKnown on one line for %q, got %q: %w", path, name, meta, bperrors.ErrIOFailure)
		}
		capacity, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("%q: malformed capacity %q for %q: %w", path, fields[0], name, bperrors.ErrIOFailure)
		}
		itemCount, err := strconv.Atoi(fields[1])
		if err != nil || itemCount < 0 {
			return nil, fmt.Errorf("%q: malformed item count %q for %q: %w", path, fields[1], name, bperrors.ErrIOFailure)
		}
		bestKnown, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("%q: malformed best-known count %q for %q: %w", path, fields[2], name, bperrors.ErrIOFailure)
		}

		items := make([]float64, 0, itemCount)
		for i := 0; i < itemCount; i++ {
			line, ok := readLine()
			if !ok {
				return nil, fmt.Errorf("%q: dataset %q expected %d weights, got %d: %w", path, name, itemCount, i, bperrors.ErrIOFailure)
			}
			w, err := strconv.ParseFloat(line, 64)
			if err != nil {
				return nil, fmt.Errorf("%q: dataset %q malformed weight %q: %w", path, name, line, bperrors.ErrIOFailure)
			}
			items = append(items, w)
		}

		in := Instance{Name: name, Capacity: capacity, Items: items, BestKnown: bestKnown}
		if err := in.Validate(); err != nil {
			return nil, err
		}
		instances = append(instances, in)
	}

	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %q: %w: %v", path, bperrors.ErrIOFailure, err)
	}

	return instances, nil
}
