package metrics

const namespace = "faker"

var (
	valuesGenerated = NewCounterVec(
		CounterOpts{
			Namespace: namespace,
			Name:      "values_generated_total",
			Help:      "Synthesized values by value type",
		},
		[]string{"type"},
	)

	generationErrors = NewCounterVec(
		CounterOpts{
			Namespace: namespace,
			Name:      "generation_errors_total",
			Help:      "Failed generation requests by value type",
		},
		[]string{"type"},
	)

	streamSessions = NewGauge(
		GaugeOpts{
			Namespace: namespace,
			Name:      "stream_sessions",
			Help:      "Open streaming sessions",
		},
	)
)

// ObserveGenerated records n successfully synthesized values of one type.
func ObserveGenerated(valueType string, n int) {
	valuesGenerated.WithLabelValues(valueType).Add(float64(n))
}

// ObserveGenerationError records a failed generation request.
func ObserveGenerationError(valueType string) {
	generationErrors.WithLabelValues(valueType).Inc()
}

// StreamOpened marks a streaming session as open until the returned
// function runs.
func StreamOpened() func() {
	streamSessions.Inc()
	return streamSessions.Dec
}
