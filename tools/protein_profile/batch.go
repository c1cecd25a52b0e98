package protein_profile

import (
	"context"
	"runtime"
	"sync"

	"prot_buddy_go/protparam"
)

// Record is one named raw sequence waiting to be analyzed.
type Record struct {
	ID  string
	Raw string
}

// Outcome pairs a record with either its profile or the reason it failed.
type Outcome struct {
	Record  Record
	Profile protparam.Profile
	Err     error
}

// AnalyzeRecords profiles every record on a pool of workers. Outcomes come
// back in input order. Invalid records carry their error and do not stop the
// batch. Once ctx is done no further records are handed out and the
// remaining outcomes carry ctx.Err().
func AnalyzeRecords(ctx context.Context, analyzer *protparam.Analyzer, records []Record, workers int) []Outcome {
	outcomes := make([]Outcome, len(records))
	if len(records) == 0 {
		return outcomes
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(records) {
		workers = len(records)
	}

	jobs := make(chan int, workers*2)
	var wg sync.WaitGroup

	// Worker pool
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				rec := records[i]
				profile, err := analyzer.Profile(rec.Raw)
				outcomes[i] = Outcome{Record: rec, Profile: profile, Err: err}
			}
		}()
	}

	// Feed records
	fed := 0
feed:
	for ; fed < len(records); fed++ {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- fed:
		}
	}
	close(jobs)
	wg.Wait()

	for i := fed; i < len(records); i++ {
		outcomes[i] = Outcome{Record: records[i], Err: ctx.Err()}
	}
	return outcomes
}

// Failed counts outcomes that carry an error.
func Failed(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Err != nil {
			n++
		}
	}
	return n
}
