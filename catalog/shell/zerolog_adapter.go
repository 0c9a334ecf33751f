package shell

import (
	"github.com/rs/zerolog"
)

// ZerologAdapter lets a zerolog.Logger serve as Logger.
// args are key/value pairs, as with slog.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter wraps logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

func (a *ZerologAdapter) Debug(msg string, args ...any) {
	a.logger.Debug().Fields(args).Msg(msg)
}

func (a *ZerologAdapter) Info(msg string, args ...any) {
	a.logger.Info().Fields(args).Msg(msg)
}

func (a *ZerologAdapter) Warn(msg string, args ...any) {
	a.logger.Warn().Fields(args).Msg(msg)
}

func (a *ZerologAdapter) Error(msg string, args ...any) {
	a.logger.Error().Fields(args).Msg(msg)
}
