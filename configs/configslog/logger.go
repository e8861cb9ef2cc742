package configslog

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the structured logger, SLog its sugared twin. Both are safe to use
// before InitLogger runs (no-op until then).
var (
	Log  = zap.NewNop()
	SLog = Log.Sugar()
)

// InitLogger configures the package loggers. mode "production" selects the
// JSON encoder writing to stdout; anything else gets the development console
// encoder.
func InitLogger(mode string) {
	var cfg zap.Config
	if mode == "production" {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}

	logger, err := cfg.Build(zap.AddCallerSkip(0))
	if err != nil {
		// Logging is not worth killing the process over; fall back to a
		// bare example logger.
		logger = zap.NewExample()
		logger.Error("logger config failed, using fallback", zap.Error(err))
	}
	Log = logger
	SLog = logger.Sugar()
}

// Sync flushes buffered log entries. Called from main on shutdown.
func Sync() {
	_ = Log.Sync()
	_ = os.Stdout.Sync()
}
