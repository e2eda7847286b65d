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
	if err := runClean(os.Args[1:]); err != nil {
		log.Fatalf("blog clean: %v", err)
	}
}

func runClean(args []string) error {
	fs := flag.NewFlagSet("blog-clean", flag.ExitOnError)
	contentDir := fs.String("content-dir", "content", "Path to the markdown content root")
	outputDir := fs.String("output-dir", "dist", "Directory that receives the rendered site")
	logLevel := fs.String("log-level", "", "Minimum log level (trace, debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	module, err := moduleBuilder(bootstrap.Options{
		ContentDir: *contentDir,
		Recursive:  true,
		OutputDir:  *outputDir,
		LogLevel:   *logLevel,
	})
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}
	if module == nil || module.Handlers == nil || module.Handlers.CleanSite == nil {
		return fmt.Errorf("clean command handler not configured")
	}

	if err := module.Handlers.CleanSite.Execute(context.Background(), blog.CleanSiteCommand{}); err != nil {
		return fmt.Errorf("execute clean command: %w", err)
	}
	fmt.Fprintln(os.Stdout, "output directory removed")
	return nil
}
