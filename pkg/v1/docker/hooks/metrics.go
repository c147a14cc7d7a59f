package hooks

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/omniviewdev/dockerclient-sdk/pkg/v1/docker/delegating"
)

// Metrics counts completed docker calls.
type Metrics struct {
	answers *prometheus.CounterVec
	voids   prometheus.Counter
}

// NewMetrics creates the counters and registers them with reg, or with the
// default registerer when reg is nil.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		answers: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dockerclient_answers_total",
				Help: "Docker calls that completed with an answer, by answer type",
			},
			[]string{"type"},
		),
		voids: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "dockerclient_void_completions_total",
				Help: "Docker calls without an answer that completed successfully",
			},
		),
	}

	for _, c := range []prometheus.Collector{m.answers, m.voids} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("registering docker client metrics: %w", err)
		}
	}
	return m, nil
}

// Option returns the hooks updating m.
func (m *Metrics) Option() delegating.Option {
	return Options(
		delegating.WithAnswerHook(func(answer any) any {
			m.answers.WithLabelValues(fmt.Sprintf("%T", answer)).Inc()
			return answer
		}),
		delegating.WithVoidHook(m.voids.Inc),
	)
}
