package llm

import (
	"career_coach_backend/pkg/monitoring"
	"context"
	"time"
)

// Completer is the text-completion boundary. Implementations send a
// single prompt and return the model's raw text. The output carries no
// structure guarantee; callers that expect JSON must normalize and
// validate it themselves (see StripCodeFence).
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

type purposeKey struct{}

// WithPurpose tags the context with what the completion is for
// ("quiz-gen", "improve-tip", ...). Used as a metrics label.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

func purposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok {
		return p
	}
	return "unknown"
}

// instrumented wraps a Completer with prometheus counters and timing.
type instrumented struct {
	inner Completer
}

func (i instrumented) Complete(ctx context.Context, prompt string) (string, error) {
	purpose := purposeFrom(ctx)
	start := time.Now()

	out, err := i.inner.Complete(ctx, prompt)

	monitoring.CompletionDuration.WithLabelValues(purpose).Observe(time.Since(start).Seconds())
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	monitoring.CompletionCounter.WithLabelValues(purpose, outcome).Inc()

	return out, err
}
