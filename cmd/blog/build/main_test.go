package main

import (
	"context"
	"testing"

	blog "github.com/goliatone/go-blog"
	"github.com/goliatone/go-blog/cmd/blog/internal/bootstrap"
	"github.com/goliatone/go-blog/internal/builder"
	sitecmd "github.com/goliatone/go-blog/internal/commands/site"
	"github.com/goliatone/go-blog/internal/logging"
)

type stubBuilderService struct {
	buildCalls int
	buildOpts  builder.BuildOptions
}

func (s *stubBuilderService) Build(_ context.Context, opts builder.BuildOptions) (*builder.BuildResult, error) {
	s.buildCalls++
	s.buildOpts = opts
	return &builder.BuildResult{ID: "build-1", Pages: 3, Articles: 1, DryRun: opts.DryRun}, nil
}

func (s *stubBuilderService) Clean(context.Context) error {
	return nil
}

func TestRunBuildUsesCommandHandler(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	var captured bootstrap.Options
	svc := &stubBuilderService{}
	moduleBuilder = func(opts bootstrap.Options) (*bootstrap.Module, error) {
		captured = opts
		return &bootstrap.Module{
			Handlers: &blog.Commands{
				BuildSite: sitecmd.NewBuildSiteHandler(svc, logging.NoOp()),
			},
			Logger: logging.NoOp(),
		}, nil
	}

	if err := runBuild([]string{
		"-content-dir", "docs",
		"-output-dir", "public",
		"-base-url", "https://example.com",
		"-dry-run",
	}); err != nil {
		t.Fatalf("runBuild returned error: %v", err)
	}

	if captured.ContentDir != "docs" {
		t.Fatalf("expected content dir docs, got %s", captured.ContentDir)
	}
	if captured.OutputDir != "public" {
		t.Fatalf("expected output dir public, got %s", captured.OutputDir)
	}
	if captured.BaseURL != "https://example.com" {
		t.Fatalf("expected base url to pass through, got %s", captured.BaseURL)
	}
	if svc.buildCalls != 1 {
		t.Fatalf("expected one build, got %d", svc.buildCalls)
	}
	if !svc.buildOpts.DryRun {
		t.Fatal("expected dry run to reach the builder")
	}
}

func TestRunBuildRejectsMissingHandler(t *testing.T) {
	original := moduleBuilder
	defer func() { moduleBuilder = original }()

	moduleBuilder = func(bootstrap.Options) (*bootstrap.Module, error) {
		return &bootstrap.Module{}, nil
	}

	if err := runBuild(nil); err == nil {
		t.Fatal("expected error when no handler is configured")
	}
}
