package cli_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"jobfinder-chatbot/internal/chatbot"
	"jobfinder-chatbot/internal/chatbot/delivery/cli"
	"jobfinder-chatbot/pkg/metrics"
)

// ── Mocks ──────────────────────────────────────────────────────────────────

type mockLogger struct {
	errors []string
}

func (m *mockLogger) Debug(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Info(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Warn(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Error(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...interface{}) {
	m.errors = append(m.errors, fmt.Sprintf(format, args...))
}
func (m *mockLogger) DPanic(ctx context.Context, args ...interface{})                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...interface{}) {}
func (m *mockLogger) Panic(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...interface{})  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...interface{})                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...interface{})  {}

type mockUseCase struct {
	output chatbot.AnswerOutput
	err    error
	panic  bool
}

func (m *mockUseCase) Answer(ctx context.Context, input chatbot.AnswerInput) (chatbot.AnswerOutput, error) {
	if m.panic {
		panic("nil map write")
	}
	return m.output, m.err
}

// ── Tests ──────────────────────────────────────────────────────────────────

func TestHandle(t *testing.T) {
	tests := []struct {
		name       string
		uc         *mockUseCase
		wantOut    string
		wantErrLog bool
	}{
		{
			name:    "answer printed once",
			uc:      &mockUseCase{output: chatbot.AnswerOutput{Answer: "Có 4 sản phẩm.", Outcome: chatbot.OutcomeFunctionCall}},
			wantOut: "Có 4 sản phẩm.\n",
		},
		{
			name:    "trailing newlines trimmed",
			uc:      &mockUseCase{output: chatbot.AnswerOutput{Answer: "Xin chào!\n\n", Outcome: chatbot.OutcomeDirect}},
			wantOut: "Xin chào!\n",
		},
		{
			name:    "surrounding whitespace trimmed",
			uc:      &mockUseCase{output: chatbot.AnswerOutput{Answer: "\n  Chào bạn!  \r\n", Outcome: chatbot.OutcomeDirect}},
			wantOut: "Chào bạn!\n",
		},
		{
			name:       "pipeline error becomes apology",
			uc:         &mockUseCase{err: errors.New("all providers failed")},
			wantOut:    chatbot.ApologyMessage + "\n",
			wantErrLog: true,
		},
		{
			name:       "empty query becomes apology",
			uc:         &mockUseCase{err: chatbot.ErrEmptyQuery},
			wantOut:    chatbot.ApologyMessage + "\n",
			wantErrLog: true,
		},
		{
			name:       "panic becomes apology",
			uc:         &mockUseCase{panic: true},
			wantOut:    chatbot.ApologyMessage + "\n",
			wantErrLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			l := &mockLogger{}
			h := cli.New(l, tt.uc, nil, &out)

			if err := h.Handle(context.Background(), "query"); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.String() != tt.wantOut {
				t.Errorf("stdout = %q, want %q", out.String(), tt.wantOut)
			}
			if tt.wantErrLog != (len(l.errors) > 0) {
				t.Errorf("error log mismatch: %v", l.errors)
			}
		})
	}
}

func TestHandle_CountsApologies(t *testing.T) {
	m := metrics.New()
	h := cli.New(&mockLogger{}, &mockUseCase{err: errors.New("boom")}, m, &bytes.Buffer{})

	if err := h.Handle(context.Background(), "q"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	n, err := testutil.GatherAndCount(m.Registry(), "jobfinder_chatbot_queries_total")
	if err != nil || n != 1 {
		t.Errorf("expected one apology series, got %d (%v)", n, err)
	}
}
