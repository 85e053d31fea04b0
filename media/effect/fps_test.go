package effect

import "testing"

func TestFpsCounterReportsOncePerSecond(t *testing.T) {

	nowTime := 0.0
	var reports []int

	counter := NewFpsCounter(
		func() float64 { return nowTime },
		func(fps int) { reports = append(reports, fps) },
	)

	// 30 frames inside the first second: no report yet
	for i := 0; i < 30; i++ {
		nowTime += 0.02
		counter.Tick()
	}
	if len(reports) != 0 {
		t.Fatalf("reported %v before a second elapsed", reports)
	}

	// crossing the one second mark reports the accumulated count
	nowTime = 1.0
	counter.Tick()
	if len(reports) != 1 || reports[0] != 31 {
		t.Fatalf("reports = %v, want [31]", reports)
	}

	// counter resets after a report
	nowTime = 1.5
	counter.Tick()
	nowTime = 2.1
	counter.Tick()
	if len(reports) != 2 || reports[1] != 2 {
		t.Fatalf("reports = %v, want second entry 2", reports)
	}
}

func TestFpsCounterNilReportFunc(t *testing.T) {

	nowTime := 0.0

	counter := NewFpsCounter(func() float64 { return nowTime }, nil)

	nowTime = 2.0
	counter.Tick()
}
