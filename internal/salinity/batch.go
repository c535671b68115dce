package salinity

import (
	"runtime"
	"sync"

	"github.com/sumwatshade/saltwater/internal/chem"
)

// BatchItem is the outcome for one sample of a batch. Err is set on
// provider failure; non-convergence is not an error and shows up in the
// result's Converged flag instead.
type BatchItem struct {
	Result Result
	Err    error
}

// CalculateBatch evaluates independent samples concurrently under shared
// assumptions. Each sample's computation is stateless apart from its own
// composition, so workers only share the read-only reference table and no
// locking is needed. Results are returned in input order.
func CalculateBatch(samples []chem.Sample, a chem.Assumptions) []BatchItem {
	out := make([]BatchItem, len(samples))
	if len(samples) == 0 {
		return out
	}

	nprocs := runtime.GOMAXPROCS(0)
	if nprocs > len(samples) {
		nprocs = len(samples)
	}
	var wg sync.WaitGroup
	wg.Add(nprocs)
	for pp := 0; pp < nprocs; pp++ {
		go func(pp int) {
			defer wg.Done()
			for i := pp; i < len(samples); i += nprocs {
				res, err := Calculate(samples[i], a)
				out[i] = BatchItem{Result: res, Err: err}
			}
		}(pp)
	}
	wg.Wait()
	return out
}
