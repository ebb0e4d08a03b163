package log

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	level  = zap.NewAtomicLevelAt(zapcore.InfoLevel)
)

func init() {
	if os.Getenv("DEBUG") != "" {
		level.SetLevel(zapcore.DebugLevel)
	}

	var err error
	logger, err = newLogger("stderr")
	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}
}

func newLogger(path string) (*zap.Logger, error) {
	encConfig := zap.NewDevelopmentEncoderConfig()
	encConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	encConfig.EncodeCaller = nil
	encConfig.EncodeTime = func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
		enc.AppendString(t.UTC().Format(time.StampMicro))
	}

	// Feeds may be written to stdout, so logs always go elsewhere.
	out, closer, err := zap.Open(path)
	if err != nil {
		return nil, err
	}

	errOut, _, err := zap.Open("stderr")
	if err != nil {
		closer()
		return nil, err
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encConfig), out, level)
	return zap.New(core, zap.ErrorOutput(errOut)), nil
}

// SetDebug toggles debug logging at runtime.
func SetDebug(debug bool) {
	if debug {
		level.SetLevel(zapcore.DebugLevel)
	} else {
		level.SetLevel(zapcore.InfoLevel)
	}
}

// S returns a *[zap.SugaredLogger].
func S() *zap.SugaredLogger {
	return logger.Sugar()
}

// L returns a *[zap.Logger].
func L() *zap.Logger {
	return logger
}
