/*
Copyright 2026 MindFlow Authors
SPDX-License-Identifier: Apache-2.0
*/

// Package metrics records OpenTelemetry counters for generative-model usage.
package metrics

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// GenAI provides token-usage counters for generation calls, dimensioned by
// model and generation mode.
type GenAI struct {
	promptTokens     metric.Int64Counter
	completionTokens metric.Int64Counter
}

// NewGenAI creates a GenAI metrics instance on the named meter. Degrades
// gracefully: if a counter fails to initialize, a no-op counter stands in
// and a warning is logged.
func NewGenAI(meterName string) *GenAI {
	meter := otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0"))

	promptTokens, err := meter.Int64Counter("genai.token.prompt",
		metric.WithDescription("The number of prompt tokens used"),
		metric.WithUnit("{tokens}"))
	if err != nil {
		slog.Warn("Failed to create prompt tokens counter, metrics will be disabled", "error", err, "meter", meterName)
		promptTokens = noop.Int64Counter{}
	}

	completionTokens, err := meter.Int64Counter("genai.token.completion",
		metric.WithDescription("The number of completion tokens used"),
		metric.WithUnit("{tokens}"))
	if err != nil {
		slog.Warn("Failed to create completion tokens counter, metrics will be disabled", "error", err, "meter", meterName)
		completionTokens = noop.Int64Counter{}
	}

	return &GenAI{
		promptTokens:     promptTokens,
		completionTokens: completionTokens,
	}
}

// RecordTokens records prompt and completion token usage for one call.
func (m *GenAI) RecordTokens(ctx context.Context, model, mode string, promptTokens, completionTokens int64) {
	attrs := metric.WithAttributes(
		attribute.String("model", model),
		attribute.String("mode", mode),
	)
	m.promptTokens.Add(ctx, promptTokens, attrs)
	m.completionTokens.Add(ctx, completionTokens, attrs)
}
