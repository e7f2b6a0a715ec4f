package production

import (
	"log/slog"

	"github.com/comalice/dataobj"
)

// LoggingListener returns a listener that logs every change event it receives
// at info level. A nil logger uses slog.Default().
func LoggingListener(logger *slog.Logger) dataobj.Listener {
	if logger == nil {
		logger = slog.Default()
	}
	return func(event dataobj.ChangeEvent) {
		logger.Info("array changed",
			slog.String("key", event.Key),
			slog.String("kind", string(event.Kind)),
			slog.Int("index", event.Index),
			slog.Any("item", event.Item),
			slog.Int("len", len(event.NewValue)),
		)
	}
}
