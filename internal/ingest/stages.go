package ingest

import "time"

// Stage is one step of the processing animation.
type Stage struct {
	Label    string
	Duration time.Duration
}

// Stages is the processing sequence shown while a document is ingested.
var Stages = []Stage{
	{Label: "Analyzing document structure...", Duration: 1000 * time.Millisecond},
	{Label: "Extracting key concepts...", Duration: 1500 * time.Millisecond},
	{Label: "Creating micro-lessons...", Duration: 1200 * time.Millisecond},
	{Label: "Optimizing for learning...", Duration: 800 * time.Millisecond},
}

// StagesDuration is the sum of all stage durations.
func StagesDuration() time.Duration {
	var d time.Duration
	for _, s := range Stages {
		d += s.Duration
	}
	return d
}

// StageAt maps elapsed time, with the stage sequence stretched to total,
// to the active stage index and overall progress in [0, 1].
func StageAt(elapsed, total time.Duration) (int, float64) {
	if total <= 0 {
		total = StagesDuration()
	}
	if elapsed <= 0 {
		return 0, 0
	}
	if elapsed >= total {
		return len(Stages) - 1, 1
	}
	scale := float64(total) / float64(StagesDuration())
	var acc time.Duration
	for i, s := range Stages {
		acc += time.Duration(float64(s.Duration) * scale)
		if elapsed < acc {
			return i, float64(elapsed) / float64(total)
		}
	}
	return len(Stages) - 1, float64(elapsed) / float64(total)
}
