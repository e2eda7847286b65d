package di_test

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-blog/internal/builder"
	sitecmd "github.com/goliatone/go-blog/internal/commands/site"
	"github.com/goliatone/go-blog/internal/di"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/runtimeconfig"
	"github.com/goliatone/go-blog/internal/storage"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

const postSource = `# Launch Notes

:::article 2021-03-05 08:00
:author: ana

The project is live.

:::
`

func testConfig() runtimeconfig.Config {
	cfg := runtimeconfig.DefaultConfig()
	cfg.Site.Title = "Example Site"
	cfg.Site.BaseURL = "https://example.com"
	return cfg
}

func memoryMarkdown(cfg runtimeconfig.Config) *markdown.Service {
	filesystem := fstest.MapFS{
		"posts/launch.md": &fstest.MapFile{Data: []byte(postSource)},
	}
	return markdown.NewServiceWithFS(markdown.Config{
		Pattern:   cfg.Markdown.Pattern,
		Recursive: cfg.Markdown.Recursive,
	}, filesystem)
}

func TestNewContainerWiresServices(t *testing.T) {
	cfg := testConfig()

	container, err := di.NewContainer(cfg, di.WithMarkdownService(memoryMarkdown(cfg)))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	if container.MarkdownService() == nil {
		t.Fatal("expected markdown service to be wired")
	}
	if container.ArticlesService() == nil {
		t.Fatal("expected articles service to be wired")
	}
	if container.FeedService() == nil {
		t.Fatal("expected feed service to be wired")
	}
	if container.BuilderService() == nil {
		t.Fatal("expected builder service to be wired")
	}
	if container.LoggerProvider() == nil {
		t.Fatal("expected a logger provider fallback")
	}

	handlers := container.CommandHandlers()
	if handlers == nil || handlers.BuildSite == nil || handlers.CleanSite == nil {
		t.Fatalf("expected site command handlers to be wired, got %#v", handlers)
	}
}

func TestNewContainerRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Site.BaseURL = ""

	container, err := di.NewContainer(cfg)
	if !errors.Is(err, runtimeconfig.ErrBaseURLRequired) {
		t.Fatalf("expected ErrBaseURLRequired, got %v", err)
	}
	if container != nil {
		t.Fatal("expected nil container on validation failure")
	}
}

func TestNewContainerSelectsGologgerProvider(t *testing.T) {
	cfg := testConfig()
	cfg.Logging.Provider = "gologger"
	cfg.Logging.Format = "json"

	container, err := di.NewContainer(cfg, di.WithMarkdownService(memoryMarkdown(cfg)))
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}
	if container.LoggerProvider() == nil {
		t.Fatal("expected gologger provider to be constructed")
	}
}

func TestContainerBuildsThroughWiredGraph(t *testing.T) {
	cfg := testConfig()
	writer := storage.NewMemoryWriter()
	rec := newRecordingProvider()
	clock := func() time.Time {
		return time.Date(2021, time.June, 1, 12, 0, 0, 0, time.UTC)
	}

	container, err := di.NewContainer(cfg,
		di.WithMarkdownService(memoryMarkdown(cfg)),
		di.WithWriter(writer),
		di.WithClock(clock),
		di.WithLoggerProvider(rec),
	)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	result, err := container.BuilderService().Build(context.Background(), builder.BuildOptions{})
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if result.Articles != 1 {
		t.Fatalf("expected one article, got %d", result.Articles)
	}

	if _, ok := writer.File("dist/posts/launch.html"); !ok {
		t.Fatalf("expected article page in writer, got %v", writer.Files())
	}
	if _, ok := writer.File("dist/recent.atom"); !ok {
		t.Fatalf("expected feed artifact in writer, got %v", writer.Files())
	}

	entry := rec.find("build finished")
	if entry == nil {
		t.Fatalf("expected build finished log entry, got %#v", rec.entries)
	}
	if got := entry.fields["articles"]; got != 1 {
		t.Fatalf("expected articles field to be 1, got %v", got)
	}
}

func TestContainerCommandHandlersRunBuilds(t *testing.T) {
	cfg := testConfig()
	writer := storage.NewMemoryWriter()

	container, err := di.NewContainer(cfg,
		di.WithMarkdownService(memoryMarkdown(cfg)),
		di.WithWriter(writer),
	)
	if err != nil {
		t.Fatalf("NewContainer returned error: %v", err)
	}

	var envelope *sitecmd.ResultEnvelope
	cmd := sitecmd.BuildSiteCommand{
		DryRun: true,
		ResultCallback: func(result sitecmd.ResultEnvelope) {
			envelope = &result
		},
	}

	if err := container.CommandHandlers().BuildSite.Execute(context.Background(), cmd); err != nil {
		t.Fatalf("BuildSite.Execute returned error: %v", err)
	}
	if envelope == nil {
		t.Fatal("expected build result callback to fire")
	}
	if envelope.Result == nil || envelope.Result.Articles != 1 {
		t.Fatalf("expected one article in result, got %#v", envelope.Result)
	}
	if envelope.Metadata["correlation_id"] == "" {
		t.Fatalf("expected correlation metadata, got %#v", envelope.Metadata)
	}
}

type recordingProvider struct {
	entries []recordedEntry
}

type recordedEntry struct {
	level  string
	msg    string
	fields map[string]any
}

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{entries: []recordedEntry{}}
}

func (p *recordingProvider) GetLogger(name string) interfaces.Logger {
	return &recordingLogger{
		provider: p,
		fields: map[string]any{
			"logger": name,
		},
	}
}

func (p *recordingProvider) record(entry recordedEntry) {
	p.entries = append(p.entries, entry)
}

func (p *recordingProvider) find(msg string) *recordedEntry {
	for i := range p.entries {
		if p.entries[i].msg == msg {
			return &p.entries[i]
		}
	}
	return nil
}

type recordingLogger struct {
	provider *recordingProvider
	fields   map[string]any
}

var _ interfaces.Logger = (*recordingLogger)(nil)

func (l *recordingLogger) Trace(msg string, args ...any) { l.log("TRACE", msg, args...) }
func (l *recordingLogger) Debug(msg string, args ...any) { l.log("DEBUG", msg, args...) }
func (l *recordingLogger) Info(msg string, args ...any)  { l.log("INFO", msg, args...) }
func (l *recordingLogger) Warn(msg string, args ...any)  { l.log("WARN", msg, args...) }
func (l *recordingLogger) Error(msg string, args ...any) { l.log("ERROR", msg, args...) }
func (l *recordingLogger) Fatal(msg string, args ...any) { l.log("FATAL", msg, args...) }

func (l *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	merged := make(map[string]any, len(l.fields)+len(fields))
	for key, value := range l.fields {
		merged[key] = value
	}
	for key, value := range fields {
		merged[key] = value
	}
	return &recordingLogger{
		provider: l.provider,
		fields:   merged,
	}
}

func (l *recordingLogger) WithContext(context.Context) interfaces.Logger {
	return &recordingLogger{
		provider: l.provider,
		fields:   cloneFields(l.fields),
	}
}

func (l *recordingLogger) log(level, msg string, args ...any) {
	fields := cloneFields(l.fields)
	for i := 0; i < len(args); i += 2 {
		if i+1 >= len(args) {
			break
		}
		key, _ := args[i].(string)
		if key == "" {
			continue
		}
		fields[key] = args[i+1]
	}
	l.provider.record(recordedEntry{
		level:  level,
		msg:    msg,
		fields: fields,
	})
}

func cloneFields(fields map[string]any) map[string]any {
	if len(fields) == 0 {
		return map[string]any{}
	}
	copied := make(map[string]any, len(fields))
	for key, value := range fields {
		copied[key] = value
	}
	return copied
}
