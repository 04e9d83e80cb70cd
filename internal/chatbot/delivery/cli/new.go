package cli

import (
	"context"
	"io"

	"jobfinder-chatbot/internal/chatbot"
	pkgLog "jobfinder-chatbot/pkg/log"
	"jobfinder-chatbot/pkg/metrics"
)

// Handler answers one query and writes the reply to out.
type Handler interface {
	Handle(ctx context.Context, query string) error
}

// New creates the command-line delivery handler.
func New(l pkgLog.Logger, uc chatbot.UseCase, m *metrics.Metrics, out io.Writer) Handler {
	return &handler{
		l:       l,
		uc:      uc,
		metrics: m,
		out:     out,
	}
}
