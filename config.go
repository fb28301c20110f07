package pagetree

import "github.com/goliatone/go-pagetree/internal/runtimeconfig"

var (
	ErrRenderMaxDepthInvalid   = runtimeconfig.ErrRenderMaxDepthInvalid
	ErrHTMLClassPrefixRequired = runtimeconfig.ErrHTMLClassPrefixRequired
	ErrHTMLImageProxyInvalid   = runtimeconfig.ErrHTMLImageProxyInvalid
	ErrHTMLSchemesRequired     = runtimeconfig.ErrHTMLSchemesRequired
	ErrMarkdownFeatureRequired = runtimeconfig.ErrMarkdownFeatureRequired
	ErrFetchFeatureRequired    = runtimeconfig.ErrFetchFeatureRequired
	ErrFetchEndpointRequired   = runtimeconfig.ErrFetchEndpointRequired
	ErrFetchEndpointInvalid    = runtimeconfig.ErrFetchEndpointInvalid
	ErrFetchLimitInvalid       = runtimeconfig.ErrFetchLimitInvalid
	ErrFetchTimeoutInvalid     = runtimeconfig.ErrFetchTimeoutInvalid
	ErrCommandsFeatureRequired = runtimeconfig.ErrCommandsFeatureRequired
	ErrCommandsTimeoutInvalid  = runtimeconfig.ErrCommandsTimeoutInvalid
	ErrLoggingProviderRequired = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown  = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid     = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid    = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config               = runtimeconfig.Config
	DecoderConfig        = runtimeconfig.DecoderConfig
	RenderConfig         = runtimeconfig.RenderConfig
	HTMLConfig           = runtimeconfig.HTMLConfig
	MarkdownConfig       = runtimeconfig.MarkdownConfig
	MarkdownParserConfig = runtimeconfig.MarkdownParserConfig
	FetchConfig          = runtimeconfig.FetchConfig
	CommandsConfig       = runtimeconfig.CommandsConfig
	Features             = runtimeconfig.Features
	LoggingConfig        = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}

// LoadConfig reads a YAML file and overlays it on DefaultConfig.
func LoadConfig(path string) (Config, error) {
	return runtimeconfig.Load(path)
}
