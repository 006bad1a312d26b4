package qrcode

import "go.uber.org/zap"

// noopLogger is used whenever Options.Logger is nil, so call sites
// never need a nil check on the hot path.
var noopLogger = zap.NewNop().Sugar()

func loggerOrNoop(l *zap.SugaredLogger) *zap.SugaredLogger {
	if l == nil {
		return noopLogger
	}
	return l
}
