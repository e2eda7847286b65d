package logging

import (
	"context"
	"strings"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

const (
	rootModule     = "blog"
	articlesModule = "blog.articles"
	indexModule    = "blog.index"
	feedModule     = "blog.feed"
	builderModule  = "blog.builder"
	markdownModule = "blog.markdown"
)

const (
	fieldDocname = "docname"
	fieldDocPath = "doc_path"
	fieldRefRole = "ref_role"
	fieldRefFrom = "ref_from"
)

// ModuleLogger returns a module-scoped logger, defaulting to a no-op
// implementation when no provider is supplied. The returned logger attaches
// the module identifier as structured context so downstream entries can be
// filtered predictably.
func ModuleLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	if module == "" {
		module = rootModule
	}

	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(module); provided != nil {
			logger = provided
		}
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		return fieldsLogger.WithFields(map[string]any{
			"module": module,
		})
	}

	return WithFields(logger, map[string]any{
		"module": module,
	})
}

// ArticlesLogger returns the logger namespace reserved for the article domain.
func ArticlesLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, articlesModule)
}

// IndexLogger returns the logger namespace reserved for index bookkeeping.
func IndexLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, indexModule)
}

// FeedLogger returns the logger namespace reserved for feed assembly.
func FeedLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, feedModule)
}

// BuilderLogger returns the logger namespace reserved for the build pipeline.
func BuilderLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, builderModule)
}

// MarkdownLogger returns the logger namespace reserved for markdown parsing.
func MarkdownLogger(provider interfaces.LoggerProvider) interfaces.Logger {
	return ModuleLogger(provider, markdownModule)
}

// WithDocumentContext enriches the provided logger with common document fields
// such as docname and source path. Empty values are ignored.
func WithDocumentContext(logger interfaces.Logger, docname, path string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(docname); trimmed != "" {
		fields[fieldDocname] = trimmed
	}
	if trimmed := strings.TrimSpace(path); trimmed != "" {
		fields[fieldDocPath] = trimmed
	}
	return WithFields(logger, fields)
}

// WithReferenceContext enriches the provided logger with cross-reference
// fields (role name and referring document). Empty values are ignored.
func WithReferenceContext(logger interfaces.Logger, role, fromdoc string) interfaces.Logger {
	fields := map[string]any{}
	if trimmed := strings.TrimSpace(role); trimmed != "" {
		fields[fieldRefRole] = trimmed
	}
	if trimmed := strings.TrimSpace(fromdoc); trimmed != "" {
		fields[fieldRefFrom] = trimmed
	}
	return WithFields(logger, fields)
}

// NoOp returns a logger that drops every log entry. It satisfies the Logger
// contract so services can safely operate when logging is disabled.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}
