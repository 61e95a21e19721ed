// Package config resolves the CLI's string flag values (algorithm, quality
// order, tenure formula) into the concrete types the search packages need.
package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/binpack-go/solver/internal/localsearch"
	"github.com/binpack-go/solver/internal/packing"
)

// Algorithm identifies which search to run.
type Algorithm string

const (
	Hill     Algorithm = "hill"
	Tabu     Algorithm = "tabu"
	GA       Algorithm = "ga"
	GAEaopt  Algorithm = "ga-eaopt"
	ACO      Algorithm = "aco"
)

// ParseAlgorithm validates a --algorithm flag value.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case Hill, Tabu, GA, GAEaopt, ACO:
		return Algorithm(s), nil
	default:
		return "", fmt.Errorf("unknown algorithm %q (want hill|tabu|ga|ga-eaopt|aco)", s)
	}
}

// ParseQuality resolves a --quality flag value to a packing.QualityOrder.
func ParseQuality(s string) (packing.QualityOrder, error) {
	switch s {
	case "", "lex":
		return packing.Lexicographic{}, nil
	case "mean-sq":
		return packing.MeanSquaredFill{}, nil
	default:
		return nil, fmt.Errorf("unknown quality order %q (want lex|mean-sq)", s)
	}
}

// ParseTenure resolves a --tenure flag value. Accepted forms:
//
//	const:N     fixed tenure of N steps
//	sqrt-n      scales with sqrt(itemsCount)
//	sqrt-nk     the original formula: sqrt(itemsCount*containersCount)*1.2
func ParseTenure(s string) (localsearch.TenureFormula, error) {
	if s == "" || s == "sqrt-nk" {
		return localsearch.SqrtNKTenure, nil
	}
	if s == "sqrt-n" {
		return localsearch.SqrtNTenure, nil
	}
	if rest, ok := strings.CutPrefix(s, "const:"); ok {
		n, err := strconv.Atoi(rest)
		if err != nil {
			return nil, fmt.Errorf("invalid const tenure %q: %w", s, err)
		}
		return localsearch.ConstTenure(n), nil
	}
	return nil, fmt.Errorf("unknown tenure formula %q (want const:N|sqrt-n|sqrt-nk)", s)
}

// ParseTabuKey resolves a --tabu-key flag value to the PairKeyed bool
// localsearch.TabuParams expects: "item" (default) keys short-term memory on
// the item alone, "pair" keys it on the (bin, item) pair as the original does.
func ParseTabuKey(s string) (bool, error) {
	switch s {
	case "", "item":
		return false, nil
	case "pair":
		return true, nil
	default:
		return false, fmt.Errorf("unknown tabu key %q (want item|pair)", s)
	}
}
