package benchmark

import (
	"github.com/ezsoft-tech/loggy/core"
	"github.com/ezsoft-tech/loggy/handler"
)

type noopHandler struct{}

func newNoopHandler() handler.Handler {
	return &noopHandler{}
}

func (h *noopHandler) Handle(_ core.Level, table string) error {
	_ = len(table)
	return nil
}

func (h *noopHandler) Close() error {
	return nil
}
