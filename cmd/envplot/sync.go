package main

import (
	"io"

	"go.uber.org/zap/zapcore"
)

func zapSyncer(w io.Writer) zapcore.WriteSyncer {
	if ws, ok := w.(zapcore.WriteSyncer); ok {
		return zapcore.Lock(ws)
	}
	return zapcore.AddSync(w)
}
