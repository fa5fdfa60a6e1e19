package forecast

import (
	"fmt"
	"time"
)

// ResampleHourly converts raw observations into a strictly hourly series
// covering [floor_to_hour(first), floor_to_hour(last)] inclusive. Each bucket
// holds the mean of the observations falling inside that hour; buckets with
// no observations are filled by linear interpolation between the nearest
// populated hours, or by the nearest single neighbor at the edges.
func ResampleHourly(observations []Observation) ([]Point, error) {
	if len(observations) == 0 {
		return nil, ErrEmptyInput
	}

	// Bounds come from the actual min/max timestamps so a mildly unordered
	// input still resamples into the right window.
	minTS := observations[0].Timestamp
	maxTS := observations[0].Timestamp
	for _, o := range observations[1:] {
		if o.Timestamp.Before(minTS) {
			minTS = o.Timestamp
		}
		if o.Timestamp.After(maxTS) {
			maxTS = o.Timestamp
		}
	}

	start := minTS.Truncate(time.Hour)
	end := maxTS.Truncate(time.Hour)
	n := int(end.Sub(start).Hours()) + 1

	sums := make([]float64, n)
	counts := make([]int, n)
	for _, o := range observations {
		idx := int(o.Timestamp.Truncate(time.Hour).Sub(start).Hours())
		sums[idx] += o.Value
		counts[idx]++
	}

	values := make([]float64, n)
	filled := make([]bool, n)
	for i := 0; i < n; i++ {
		if counts[i] > 0 {
			values[i] = sums[i] / float64(counts[i])
			filled[i] = true
		}
	}

	if err := interpolateGaps(values, filled); err != nil {
		return nil, err
	}

	series := make([]Point, n)
	for i := 0; i < n; i++ {
		series[i] = Point{
			Timestamp: start.Add(time.Duration(i) * time.Hour),
			Value:     values[i],
		}
	}
	return series, nil
}

// interpolateGaps fills empty buckets in place. Interior gaps are linearly
// interpolated between the nearest populated neighbors; leading and trailing
// gaps take the nearest populated value.
func interpolateGaps(values []float64, filled []bool) error {
	prev := -1 // index of the last populated bucket seen
	for i := 0; i < len(values); i++ {
		if !filled[i] {
			continue
		}
		switch {
		case prev == -1 && i > 0:
			// leading gap: nearest neighbor on the right
			for j := 0; j < i; j++ {
				values[j] = values[i]
			}
		case prev >= 0 && i-prev > 1:
			step := (values[i] - values[prev]) / float64(i-prev)
			for j := prev + 1; j < i; j++ {
				values[j] = values[prev] + step*float64(j-prev)
			}
		}
		prev = i
	}
	if prev == -1 {
		return fmt.Errorf("%w: no populated hourly buckets", ErrInsufficientData)
	}
	// trailing gap: nearest neighbor on the left
	for j := prev + 1; j < len(values); j++ {
		values[j] = values[prev]
	}
	return nil
}
