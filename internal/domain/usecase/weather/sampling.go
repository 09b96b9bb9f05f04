package weather

const (
	// ForecastStride is the number of 3-hour forecast steps in a day.
	ForecastStride = 8
	// ForecastDays caps the sampled forecast.
	ForecastDays = 5
)

// SampleDaily keeps list[0], list[stride], list[2*stride]... up to limit entries.
// No aggregation is done; each kept entry stands for its whole day.
func SampleDaily[T any](list []T, stride int, limit int) []T {
	if stride <= 0 || limit <= 0 {
		return []T{}
	}

	sampled := make([]T, 0, min(limit, (len(list)+stride-1)/stride))
	for i := 0; i < len(list) && len(sampled) < limit; i += stride {
		sampled = append(sampled, list[i])
	}
	return sampled
}
