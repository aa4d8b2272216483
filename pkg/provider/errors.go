// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/telekom/netpath/internal/logger"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ErrInvalidDestination is returned for a destination that is neither an
// IP address nor a valid host name.
var ErrInvalidDestination = errors.New("invalid destination")

// TransportFailure is returned when the trace provider cannot be reached,
// answers with a non-success status or sends an explicit error payload.
type TransportFailure struct {
	Destination string
	// StatusCode is 0 if no response was received.
	StatusCode int
	// Message is the error message sent by the provider.
	Message string
	Err     error
}

func (e *TransportFailure) Error() string {
	switch {
	case e.Message != "":
		return fmt.Sprintf("trace provider failed for %q: %s", e.Destination, e.Message)
	case e.StatusCode != 0:
		return fmt.Sprintf("trace provider returned status %d for %q", e.StatusCode, e.Destination)
	default:
		return fmt.Sprintf("trace provider unreachable for %q: %v", e.Destination, e.Err)
	}
}

func (e *TransportFailure) Unwrap() error {
	return e.Err
}

// wrapError logs the error, records it on the span of ctx and wraps it with msg.
func wrapError(ctx context.Context, err error, msg string, args ...any) error {
	if err == nil {
		return nil
	}
	log := logger.FromContext(ctx)
	span := trace.SpanFromContext(ctx)
	caser := cases.Title(language.English)

	text := fmt.Sprintf(msg, args...)
	log.ErrorContext(ctx, caser.String(text), "error", err)
	span.SetStatus(codes.Error, text)
	span.RecordError(err)
	return fmt.Errorf("%s: %w", text, err)
}
