package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	blog "github.com/goliatone/go-blog"
	"github.com/goliatone/go-blog/cmd/blog/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

func main() {
	if err := runBuild(os.Args[1:]); err != nil {
		log.Fatalf("blog build: %v", err)
	}
}

func runBuild(args []string) error {
	fs := flag.NewFlagSet("blog-build", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the markdown content root")
	pattern := fs.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
	outputDir := fs.String("output-dir", "dist", "Directory that receives the rendered site")
	baseURL := fs.String("base-url", "", "Absolute base URL the site will be served from")
	title := fs.String("title", "", "Site title used on the home page and in the feed")
	description := fs.String("description", "", "Site description used as the feed subtitle")
	author := fs.String("author", "", "Default feed author")
	feedFilename := fs.String("feed", "recent.atom", "Feed filename, empty disables the feed")
	cleanBuild := fs.Bool("clean", false, "Remove the output directory before building")
	dryRun := fs.Bool("dry-run", false, "Run the pipeline without writing artifacts")
	logLevel := fs.String("log-level", "", "Minimum log level (trace, debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir:   *contentDir,
		Pattern:      *pattern,
		Recursive:    true,
		OutputDir:    *outputDir,
		BaseURL:      *baseURL,
		Title:        *title,
		Description:  *description,
		Author:       *author,
		FeedFilename: *feedFilename,
		CleanBuild:   *cleanBuild,
		LogLevel:     *logLevel,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Handlers == nil || module.Handlers.BuildSite == nil {
		return fmt.Errorf("build command handler not configured")
	}

	ctx := context.Background()

	var result *blog.BuildResult
	cmd := blog.BuildSiteCommand{
		DryRun: *dryRun,
		ResultCallback: func(envelope blog.BuildResultEnvelope) {
			result = envelope.Result
		},
	}
	if err := module.Handlers.BuildSite.Execute(ctx, cmd); err != nil {
		return fmt.Errorf("execute build command: %w", err)
	}

	if result != nil {
		fmt.Fprintf(os.Stdout, "built %d pages (%d articles) into %s\n",
			result.Pages, result.Articles, result.OutputDir)
	}
	return nil
}
