package main

import (
	"io"

	"github.com/pkg/errors"
	zaplogfmt "github.com/sykesm/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	logFormatJSON    = "json"
	logFormatConsole = "console"
	logFormatLogfmt  = "logfmt"
)

func newLogger(w io.Writer, format, level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "bignum: invalid log level %q", level)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.NameKey = "name"

	var enc zapcore.Encoder
	switch format {
	case logFormatJSON:
		enc = zapcore.NewJSONEncoder(encoderConfig)
	case logFormatConsole:
		enc = zapcore.NewConsoleEncoder(encoderConfig)
	case logFormatLogfmt:
		enc = zaplogfmt.NewEncoder(encoderConfig)
	default:
		return nil, errors.Errorf("bignum: invalid log format %q", format)
	}

	core := zapcore.NewCore(enc, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))
	return zap.New(core).Named("bignum"), nil
}
