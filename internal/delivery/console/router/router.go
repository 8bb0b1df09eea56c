package router

import (
	"context"

	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context) error

// MenuRouter maps menu labels to handlers and remembers registration order,
// which is the order the menu is shown in.
type MenuRouter struct {
	order    []string
	handlers map[string]HandlerFunc
	logger   *zap.Logger
}

func New(logger *zap.Logger) *MenuRouter {
	return &MenuRouter{handlers: make(map[string]HandlerFunc), logger: logger}
}

// Register replaces any handler already bound to label without moving it.
func (r *MenuRouter) Register(label string, h HandlerFunc) {
	if _, ok := r.handlers[label]; !ok {
		r.order = append(r.order, label)
	}
	r.handlers[label] = h
}

func (r *MenuRouter) Labels() []string {
	return append([]string(nil), r.order...)
}

// Dispatch reports false when no handler is bound to label.
func (r *MenuRouter) Dispatch(ctx context.Context, label string) (bool, error) {
	h, ok := r.handlers[label]
	if !ok {
		r.logger.Warn("no handler for menu choice", zap.String("choice", label))
		return false, nil
	}
	r.logger.Debug("menu choice", zap.String("choice", label))
	return true, h(ctx)
}
