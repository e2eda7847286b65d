package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	goerrors "github.com/goliatone/go-errors"
)

type testMessage struct{}

func (testMessage) Type() string { return "blog.test.message" }

func (testMessage) Validate() error { return nil }

type invalidMessage struct{}

func (invalidMessage) Type() string { return "blog.test.invalid" }

func (invalidMessage) Validate() error {
	return errors.New("invalid")
}

func TestHandlerExecuteSuccess(t *testing.T) {
	called := false
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	if err := h.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !called {
		t.Fatal("expected handler to be invoked")
	}
}

func TestHandlerValidationShortCircuitsExecution(t *testing.T) {
	called := false
	h := NewHandler[invalidMessage](func(ctx context.Context, msg invalidMessage) error {
		called = true
		return nil
	})

	err := h.Execute(context.Background(), invalidMessage{})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when validation fails")
	}
}

func TestHandlerContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		called = true
		return nil
	})

	err := h.Execute(ctx, testMessage{})
	if err == nil {
		t.Fatal("expected context cancellation error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
	if called {
		t.Fatal("expected handler not to run when context is cancelled")
	}
}

func TestHandlerWrapsExecutionError(t *testing.T) {
	execErr := errors.New("boom")
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		return execErr
	})

	err := h.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected wrapped execution error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category, got %v", err)
	}
}

func TestHandlerHonoursTimeoutOption(t *testing.T) {
	h := NewHandler[testMessage](func(ctx context.Context, msg testMessage) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(20 * time.Millisecond):
			return nil
		}
	}, WithTimeout[testMessage](10*time.Millisecond))

	err := h.Execute(context.Background(), testMessage{})
	if err == nil {
		t.Fatal("expected timeout error")
	}
	if !goerrors.IsCategory(err, goerrors.CategoryCommand) {
		t.Fatalf("expected command category for timeout, got %v", err)
	}
}

func TestHandlerEmitsTelemetry(t *testing.T) {
	var captured []TelemetryInfo
	h := NewHandler[testMessage](
		func(ctx context.Context, msg testMessage) error { return nil },
		WithOperation[testMessage]("test.run"),
		WithMessageFields(func(testMessage) map[string]any {
			return map[string]any{"kind": "unit"}
		}),
		WithTelemetry[testMessage](func(ctx context.Context, _ testMessage, info TelemetryInfo) {
			captured = append(captured, info)
		}),
	)

	if err := h.Execute(context.Background(), testMessage{}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if len(captured) != 1 {
		t.Fatalf("expected one telemetry emission, got %d", len(captured))
	}
	info := captured[0]
	if info.Status != TelemetryStatusSuccess {
		t.Errorf("telemetry status = %q", info.Status)
	}
	if info.Command != "blog.test.message" {
		t.Errorf("telemetry command = %q", info.Command)
	}
	if info.Operation != "test.run" {
		t.Errorf("telemetry operation = %q", info.Operation)
	}
	if info.Fields["kind"] != "unit" {
		t.Errorf("telemetry fields = %v", info.Fields)
	}
}

func TestHandlerTelemetryReportsFailures(t *testing.T) {
	execErr := errors.New("boom")
	var status TelemetryStatus
	h := NewHandler[testMessage](
		func(ctx context.Context, msg testMessage) error { return execErr },
		WithTelemetry[testMessage](func(_ context.Context, _ testMessage, info TelemetryInfo) {
			status = info.Status
		}),
	)

	if err := h.Execute(context.Background(), testMessage{}); err == nil {
		t.Fatal("expected execution error")
	}
	if status != TelemetryStatusFailed {
		t.Errorf("telemetry status = %q, want failed", status)
	}
}
