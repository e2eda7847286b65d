package sitecmd

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-blog/internal/builder"
)

const (
	buildSiteMessageType = "blog.site.build"
	cleanSiteMessageType = "blog.site.clean"
)

// BuildSiteCommand requests a full site build. Empty directories fall back
// to the configured content and output locations.
type BuildSiteCommand struct {
	SourceDir string `json:"source_dir,omitempty"`
	OutputDir string `json:"output_dir,omitempty"`
	DryRun    bool   `json:"dry_run,omitempty"`
	// ResultCallback receives the build outcome after a successful run.
	ResultCallback func(ResultEnvelope) `json:"-"`
}

// Type implements command.Message.
func (BuildSiteCommand) Type() string { return buildSiteMessageType }

// Validate rejects directory overrides that are present but blank.
func (cmd BuildSiteCommand) Validate() error {
	return validation.ValidateStruct(&cmd,
		validation.Field(&cmd.SourceDir, validation.By(
			notBlankWhenSet("blog.site.build.source_dir_blank", "source_dir must not be blank"))),
		validation.Field(&cmd.OutputDir, validation.By(
			notBlankWhenSet("blog.site.build.output_dir_blank", "output_dir must not be blank"))),
	)
}

// CleanSiteCommand removes the configured build output directory.
type CleanSiteCommand struct{}

// Type implements command.Message.
func (CleanSiteCommand) Type() string { return cleanSiteMessageType }

// Validate implements command.Message.
func (CleanSiteCommand) Validate() error { return nil }

// ResultEnvelope carries the build outcome delivered to result callbacks.
// Metadata includes a correlation id so hosts can tie the result back to the
// triggering command.
type ResultEnvelope struct {
	Result   *builder.BuildResult
	Metadata map[string]any
}

func notBlankWhenSet(code, message string) validation.RuleFunc {
	return func(value any) error {
		str, _ := value.(string)
		if str != "" && strings.TrimSpace(str) == "" {
			return validation.NewError(code, message)
		}
		return nil
	}
}
