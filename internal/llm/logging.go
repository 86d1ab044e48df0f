package llm

import (
	"context"
	"log/slog"
	"time"
)

// LoggingProvider emits one structured log record per request.
type LoggingProvider struct {
	inner  Provider
	logger *slog.Logger
}

// WithLogging wraps p with request logging.
func WithLogging(p Provider, logger *slog.Logger) Provider {
	if logger == nil {
		return p
	}
	return &LoggingProvider{inner: p, logger: logger}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := l.inner.Generate(ctx, req)

	attrs := []slog.Attr{
		slog.String("purpose", PurposeFrom(ctx)),
		slog.String("model", l.inner.ModelID()),
		slog.Duration("latency", time.Since(start)),
		slog.Int("prompt_chars", promptChars(req)),
	}
	if req.Schema != nil {
		attrs = append(attrs, slog.String("schema", req.Schema.Name))
	}
	if resp != nil {
		attrs = append(attrs,
			slog.String("served_by", resp.Model),
			slog.Int("input_tokens", resp.Usage.InputTokens),
			slog.Int("output_tokens", resp.Usage.OutputTokens),
		)
		if c := LookupCost(resp.Model); c != nil {
			attrs = append(attrs, slog.Float64("cost_usd", c.Cost(resp.Usage.InputTokens, resp.Usage.OutputTokens)))
		}
	}

	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		l.logger.LogAttrs(ctx, slog.LevelWarn, "llm request failed", attrs...)
		return nil, err
	}
	l.logger.LogAttrs(ctx, slog.LevelInfo, "llm request", attrs...)
	return resp, nil
}

func (l *LoggingProvider) ModelID() string { return l.inner.ModelID() }

func promptChars(req Request) int {
	n := len(req.System)
	for _, m := range req.Messages {
		n += len(m.Content)
	}
	return n
}
