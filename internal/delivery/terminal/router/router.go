package router

import (
	"context"

	"go.uber.org/zap"
)

type HandlerFunc func(ctx context.Context) error

// Router maps menu actions to handlers and remembers registration order,
// which is the order the menu presents them in.
type Router struct {
	handlers map[string]HandlerFunc
	order    []string
	log      *zap.Logger
}

func New(log *zap.Logger) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	return &Router{handlers: make(map[string]HandlerFunc), log: log}
}

// Register binds h to action. Registering an action again replaces its
// handler but keeps its original position.
func (r *Router) Register(action string, h HandlerFunc) {
	if _, ok := r.handlers[action]; !ok {
		r.order = append(r.order, action)
	}
	r.handlers[action] = h
}

func (r *Router) Actions() []string {
	return append([]string(nil), r.order...)
}

// Dispatch runs the handler for action. It reports false when nothing is
// registered for it.
func (r *Router) Dispatch(ctx context.Context, action string) (bool, error) {
	h, ok := r.handlers[action]
	if !ok {
		r.log.Warn("no handler for action", zap.String("action", action))
		return false, nil
	}
	r.log.Debug("dispatch", zap.String("action", action))
	return true, h(ctx)
}
