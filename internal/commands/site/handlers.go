package sitecmd

import (
	"context"

	"github.com/goliatone/go-blog/internal/builder"
	"github.com/goliatone/go-blog/internal/commands"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
	command "github.com/goliatone/go-command"
	"github.com/google/uuid"
)

const (
	buildOperation = "site.build"
	cleanOperation = "site.clean"
)

var (
	_ command.Commander[BuildSiteCommand] = (*BuildSiteHandler)(nil)
	_ command.Commander[CleanSiteCommand] = (*CleanSiteHandler)(nil)
)

// BuildSiteHandler runs full site builds via the shared command handler foundation.
type BuildSiteHandler struct {
	inner *commands.Handler[BuildSiteCommand]
}

// NewBuildSiteHandler creates a handler bound to the supplied builder service.
func NewBuildSiteHandler(service builder.Service, logger interfaces.Logger, opts ...commands.HandlerOption[BuildSiteCommand]) *BuildSiteHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg BuildSiteCommand) error {
		result, err := service.Build(ctx, builder.BuildOptions{
			SourceDir: msg.SourceDir,
			OutputDir: msg.OutputDir,
			DryRun:    msg.DryRun,
		})
		if err != nil {
			return err
		}

		logging.WithFields(baseLogger, map[string]any{
			"build_id": result.ID,
			"pages":    result.Pages,
			"articles": result.Articles,
			"dry_run":  result.DryRun,
		}).Info("site.command.build.completed")

		if msg.ResultCallback != nil {
			msg.ResultCallback(ResultEnvelope{
				Result: result,
				Metadata: map[string]any{
					"correlation_id": uuid.NewString(),
					"command":        buildSiteMessageType,
				},
			})
		}
		return nil
	}

	handlerOpts := []commands.HandlerOption[BuildSiteCommand]{
		commands.WithLogger[BuildSiteCommand](baseLogger),
		commands.WithOperation[BuildSiteCommand](buildOperation),
		commands.WithMessageFields(func(msg BuildSiteCommand) map[string]any {
			fields := map[string]any{}
			if msg.SourceDir != "" {
				fields["source_dir"] = msg.SourceDir
			}
			if msg.OutputDir != "" {
				fields["output_dir"] = msg.OutputDir
			}
			if msg.DryRun {
				fields["dry_run"] = true
			}
			return fields
		}),
		commands.WithTelemetry(commands.DefaultTelemetry[BuildSiteCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &BuildSiteHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[BuildSiteCommand].
func (h *BuildSiteHandler) Execute(ctx context.Context, msg BuildSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}

// CleanSiteHandler removes build output via the builder service.
type CleanSiteHandler struct {
	inner *commands.Handler[CleanSiteCommand]
}

// NewCleanSiteHandler creates a handler bound to the supplied builder service.
func NewCleanSiteHandler(service builder.Service, logger interfaces.Logger, opts ...commands.HandlerOption[CleanSiteCommand]) *CleanSiteHandler {
	baseLogger := commands.EnsureLogger(logger)

	exec := func(ctx context.Context, msg CleanSiteCommand) error {
		return service.Clean(ctx)
	}

	handlerOpts := []commands.HandlerOption[CleanSiteCommand]{
		commands.WithLogger[CleanSiteCommand](baseLogger),
		commands.WithOperation[CleanSiteCommand](cleanOperation),
		commands.WithTelemetry(commands.DefaultTelemetry[CleanSiteCommand](baseLogger)),
	}
	handlerOpts = append(handlerOpts, opts...)

	return &CleanSiteHandler{
		inner: commands.NewHandler(exec, handlerOpts...),
	}
}

// Execute satisfies command.Commander[CleanSiteCommand].
func (h *CleanSiteHandler) Execute(ctx context.Context, msg CleanSiteCommand) error {
	return h.inner.Execute(ctx, msg)
}
