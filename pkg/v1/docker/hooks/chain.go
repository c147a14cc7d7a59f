// Package hooks provides answer and void hooks for delegating.Client.
//
// Everything here is built on the generic hook protocol only, so it applies
// to every docker.Client operation, including ones added later:
//
//	metrics, err := hooks.NewMetrics(prometheus.DefaultRegisterer)
//	if err != nil {
//		return err
//	}
//	streams := hooks.NewStreamTracker()
//	client := delegating.New(engine,
//		hooks.WithLogging(logger),
//		metrics.Option(),
//		streams.Option(),
//	)
//	defer streams.CloseAll()
package hooks

import (
	"github.com/omniviewdev/dockerclient-sdk/pkg/v1/docker/delegating"
)

// ChainAnswers returns an answer hook running hooks in order, each receiving
// the previous hook's output. Nil hooks are skipped.
func ChainAnswers(hooks ...delegating.AnswerHook) delegating.AnswerHook {
	return func(answer any) any {
		for _, h := range hooks {
			if h != nil {
				answer = h(answer)
			}
		}
		return answer
	}
}

// ChainVoids returns a void hook running hooks in order. Nil hooks are
// skipped.
func ChainVoids(hooks ...delegating.VoidHook) delegating.VoidHook {
	return func() {
		for _, h := range hooks {
			if h != nil {
				h()
			}
		}
	}
}

// Options combines several options into one.
func Options(opts ...delegating.Option) delegating.Option {
	return func(c *delegating.Client) {
		for _, opt := range opts {
			if opt != nil {
				opt(c)
			}
		}
	}
}
