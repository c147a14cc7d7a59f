package hooks

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/omniviewdev/dockerclient-sdk/pkg/v1/docker/delegating"
)

// WithLogging logs every completed call at debug level. Answers are logged
// by dynamic type only; their content may hold credentials or stream data.
// A nil logger disables logging.
func WithLogging(logger *zap.Logger) delegating.Option {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("dockerclient")

	return Options(
		delegating.WithAnswerHook(func(answer any) any {
			logger.Debug("docker call answered", zap.String("type", fmt.Sprintf("%T", answer)))
			return answer
		}),
		delegating.WithVoidHook(func() {
			logger.Debug("docker call completed")
		}),
	)
}
