package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestDisabledMetricsAreNoOps(t *testing.T) {
	m := New(false)

	m.Inc(LoginSuccess)
	m.Observe(ValidateLatency, 3*time.Millisecond)

	if m.Enabled() {
		t.Fatal("Enabled() = true for disabled metrics")
	}
	if got := m.Value(LoginSuccess); got != 0 {
		t.Fatalf("Value = %d, want 0", got)
	}

	snap := m.Take()
	if len(snap.Counters) != 0 || len(snap.Histograms) != 0 {
		t.Fatalf("disabled snapshot not empty: %+v", snap)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics

	m.Inc(LoginSuccess)
	m.Observe(ValidateLatency, time.Millisecond)
	if m.Enabled() {
		t.Fatal("Enabled() = true for nil metrics")
	}
	if got := m.Value(LoginSuccess); got != 0 {
		t.Fatalf("Value on nil = %d, want 0", got)
	}
}

func TestIncAndValue(t *testing.T) {
	m := New(true)

	for i := 0; i < 3; i++ {
		m.Inc(LoginSuccess)
	}
	m.Inc(Logout)

	if got := m.Value(LoginSuccess); got != 3 {
		t.Fatalf("LoginSuccess = %d, want 3", got)
	}
	if got := m.Value(Logout); got != 1 {
		t.Fatalf("Logout = %d, want 1", got)
	}
	if got := m.Value(LoginFailure); got != 0 {
		t.Fatalf("LoginFailure = %d, want 0", got)
	}
}

func TestObserveBucketsLatency(t *testing.T) {
	m := New(true)

	samples := []struct {
		d      time.Duration
		bucket int
	}{
		{2 * time.Millisecond, 0},
		{5 * time.Millisecond, 0},
		{8 * time.Millisecond, 1},
		{20 * time.Millisecond, 2},
		{40 * time.Millisecond, 3},
		{90 * time.Millisecond, 4},
		{200 * time.Millisecond, 5},
		{400 * time.Millisecond, 6},
		{2 * time.Second, 7},
	}
	for _, s := range samples {
		m.Observe(ValidateLatency, s.d)
	}

	snap := m.Take()
	buckets := snap.Histograms[ValidateLatency]
	if len(buckets) != histBucketCount {
		t.Fatalf("bucket count = %d, want %d", len(buckets), histBucketCount)
	}

	want := make([]uint64, histBucketCount)
	for _, s := range samples {
		want[s.bucket]++
	}
	for i := range want {
		if buckets[i] != want[i] {
			t.Errorf("bucket %d = %d, want %d", i, buckets[i], want[i])
		}
	}
}

func TestObserveIgnoresCounterIDs(t *testing.T) {
	m := New(true)

	m.Observe(LoginSuccess, time.Millisecond)

	snap := m.Take()
	for _, count := range snap.Histograms[ValidateLatency] {
		if count != 0 {
			t.Fatalf("histogram mutated by counter observe: %v", snap.Histograms)
		}
	}
}

func TestTakeIsACopy(t *testing.T) {
	m := New(true)
	m.Inc(LoginSuccess)

	snap := m.Take()
	m.Inc(LoginSuccess)

	if snap.Counters[LoginSuccess] != 1 {
		t.Fatalf("snapshot counter = %d, want 1", snap.Counters[LoginSuccess])
	}
	if got := m.Value(LoginSuccess); got != 2 {
		t.Fatalf("live counter = %d, want 2", got)
	}
}

func TestConcurrentIncrements(t *testing.T) {
	m := New(true)

	const workers = 16
	const perWorker = 1000

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				m.Inc(ValidateSuccess)
				m.Observe(ValidateLatency, time.Millisecond)
			}
		}()
	}
	wg.Wait()

	if got := m.Value(ValidateSuccess); got != workers*perWorker {
		t.Fatalf("ValidateSuccess = %d, want %d", got, workers*perWorker)
	}

	snap := m.Take()
	var total uint64
	for _, count := range snap.Histograms[ValidateLatency] {
		total += count
	}
	if total != workers*perWorker {
		t.Fatalf("histogram samples = %d, want %d", total, workers*perWorker)
	}
}
