// Package testutil provides testing utilities for slotlist.
//
// This package is intended for use in tests, benchmarks and the churn
// profiler only. It provides a deterministic RNG and generators for
// add/remove workloads.
//
// # Churn Scripts
//
//	rng := testutil.NewRNG(seed)
//	ops := rng.ChurnScript(10_000, 0.4) // 40% removals
//	for _, op := range ops {
//	    switch op.Kind {
//	    case testutil.OpAdd:
//	        handles = append(handles, list.Add(op.Value))
//	    case testutil.OpRemove:
//	        i := op.Victim % len(handles)
//	        _ = list.Remove(handles[i])
//	        handles = slices.Delete(handles, i, i+1)
//	    }
//	}
package testutil
