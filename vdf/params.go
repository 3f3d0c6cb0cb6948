package vdf

import "math"

// approximateParameters derives the (k, l) block-decomposition parameters
// for a VDF of T squarings, balancing prover memory (one retained form per
// k*l squarings) against proof computation time.
func approximateParameters(T uint64, cfg Config) (k, l int) {
	logMem := cfg.LogMemory
	logT := math.Log2(float64(T))

	l = 1
	if logT > logMem {
		l = int(math.Ceil(math.Pow(2, logMem-20)))
		if l < 1 {
			l = 1
		}
	}

	m := float64(T) * math.Ln2 / float64(2*l)
	k = int(math.Round(math.Log(m) - math.Log(math.Log(m)) + 0.25))
	if k < 1 {
		k = 1
	}

	return k, l
}

// approximateParametersFor wraps approximateParameters with the boundary
// cases T = 0 and T = 1, where the log-based heuristic is undefined or
// degenerate; both collapse to the smallest valid block shape.
func approximateParametersFor(T uint64, cfg Config) (k, l int) {
	if T < 2 {
		return 1, 1
	}
	return approximateParameters(T, cfg)
}
