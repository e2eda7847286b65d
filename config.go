package blog

import "github.com/goliatone/go-blog/internal/runtimeconfig"

var (
	ErrTimezoneUnknown        = runtimeconfig.ErrTimezoneUnknown
	ErrBaseURLInvalid         = runtimeconfig.ErrBaseURLInvalid
	ErrBaseURLRequired        = runtimeconfig.ErrBaseURLRequired
	ErrRecentLimitInvalid     = runtimeconfig.ErrRecentLimitInvalid
	ErrContentDirRequired     = runtimeconfig.ErrContentDirRequired
	ErrOutputDirRequired      = runtimeconfig.ErrOutputDirRequired
	ErrFileSuffixInvalid      = runtimeconfig.ErrFileSuffixInvalid
	ErrLoggingProviderUnknown = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid    = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid   = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config               = runtimeconfig.Config
	SiteConfig           = runtimeconfig.SiteConfig
	FeedConfig           = runtimeconfig.FeedConfig
	MarkdownConfig       = runtimeconfig.MarkdownConfig
	MarkdownParserConfig = runtimeconfig.MarkdownParserConfig
	BuilderConfig        = runtimeconfig.BuilderConfig
	LoggingConfig        = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
