package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"jobfinder-chatbot/internal/chatbot"
	pkgLog "jobfinder-chatbot/pkg/log"
	"jobfinder-chatbot/pkg/metrics"
)

const outcomeApology = "apology"

type handler struct {
	l       pkgLog.Logger
	uc      chatbot.UseCase
	metrics *metrics.Metrics
	out     io.Writer
}

// Handle prints exactly one reply. Any failure in the pipeline, panics
// included, is logged and replaced by the apology so stdout stays clean.
func (h *handler) Handle(ctx context.Context, query string) error {
	answer := h.answer(ctx, query)
	_, err := fmt.Fprintln(h.out, strings.TrimSpace(answer))
	return err
}

func (h *handler) answer(ctx context.Context, query string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			h.l.Errorf(ctx, "chatbot cli: recovered from panic: %v", r)
			h.metrics.ObserveQuery(outcomeApology)
			text = chatbot.ApologyMessage
		}
	}()

	out, err := h.uc.Answer(ctx, chatbot.AnswerInput{Query: query})
	if err != nil {
		h.l.Errorf(ctx, "chatbot cli: %s", errorMessage(err))
		h.metrics.ObserveQuery(outcomeApology)
		return chatbot.ApologyMessage
	}

	h.l.Debugf(ctx, "chatbot cli: outcome=%s function=%s", out.Outcome, out.Function)
	return out.Answer
}
