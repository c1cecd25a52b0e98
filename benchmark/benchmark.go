// benchmark.go
// A reusable benchmarking module for Prot Buddy
// Measures execution time and memory usage for any wrapped tool run

package benchmark

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"

	"prot_buddy_go/logger"
)

// Stats is the resource usage of one measured run.
type Stats struct {
	Label           string
	Started         time.Time
	Hostname        string
	Elapsed         time.Duration
	MemoryUsedMB    float64
	TotalAllocMB    float64
	PeakHeapMB      float64
	GCCycles        uint32
	CPUCores        int
	GoroutinesStart int
	GoroutinesEnd   int
}

// Measure runs f once and records its runtime and memory usage.
func Measure(label string, f func()) Stats {
	s := Stats{Label: label, Started: time.Now(), CPUCores: runtime.NumCPU()}
	if host, err := os.Hostname(); err == nil {
		s.Hostname = host
	}

	// Prepare for benchmark
	runtime.GC()
	var memStart, memEnd runtime.MemStats
	runtime.ReadMemStats(&memStart)
	s.GoroutinesStart = runtime.NumGoroutine()
	start := time.Now()

	f()

	s.Elapsed = time.Since(start)
	runtime.ReadMemStats(&memEnd)
	s.GoroutinesEnd = runtime.NumGoroutine()

	s.MemoryUsedMB = toMB(int64(memEnd.Alloc) - int64(memStart.Alloc))
	s.TotalAllocMB = toMB(int64(memEnd.TotalAlloc - memStart.TotalAlloc))
	s.PeakHeapMB = toMB(int64(memEnd.HeapAlloc))
	s.GCCycles = memEnd.NumGC - memStart.NumGC
	return s
}

func toMB(b int64) float64 {
	return float64(b) / 1024.0 / 1024.0
}

// Print writes s in the "[Benchmark]" block format.
func Print(w io.Writer, s Stats) {
	fmt.Fprintf(w, "[Benchmark] Running: %s\n", s.Label)
	fmt.Fprintln(w, "[Benchmark] Timestamp:", s.Started.Format(time.RFC1123))
	if s.Hostname != "" {
		fmt.Fprintln(w, "[Benchmark] Hostname:", s.Hostname)
	}
	fmt.Fprintln(w, "[Benchmark] Go Version:", runtime.Version())
	fmt.Fprintf(w, "[Benchmark] OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(w, "[Benchmark] Time Elapsed: %v\n", s.Elapsed)
	fmt.Fprintf(w, "[Benchmark] Memory Used: %.2f MB\n", s.MemoryUsedMB)
	fmt.Fprintf(w, "[Benchmark] Total Allocated: %.2f MB\n", s.TotalAllocMB)
	fmt.Fprintf(w, "[Benchmark] Peak Heap: %.2f MB\n", s.PeakHeapMB)
	fmt.Fprintf(w, "[Benchmark] GC Cycles: %d\n", s.GCCycles)
	fmt.Fprintf(w, "[Benchmark] CPU Cores: %d\n", s.CPUCores)
	fmt.Fprintf(w, "[Benchmark] Goroutines Started: %d → %d\n", s.GoroutinesStart, s.GoroutinesEnd)
	fmt.Fprintln(w, "[Benchmark] ----------------------------------------")
}

// Run wraps any function to measure its runtime and memory usage. The
// report goes to stderr so it never mixes with a tool's stdout report.
func Run(label string, f func()) {
	s := Measure(label, f)
	Print(os.Stderr, s)
	logger.Debug("Benchmark finished",
		zap.String("label", s.Label),
		zap.Duration("elapsed", s.Elapsed),
		zap.Float64("total_alloc_mb", s.TotalAllocMB))
}
