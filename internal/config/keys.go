package config

const (
	KeySource       = "source"
	KeyBaseURL      = "base_url"
	KeyDataDir      = "data_dir"
	KeySeed         = "seed"
	KeySeriesWindow = "series_window"
	KeyLogLimit     = "log_limit"
	KeyHTTPTimeout  = "http_timeout"
	KeyLogLevel     = "log_level"
	KeyVerbose      = "verbose"
)

// Data sources accepted by KeySource.
const (
	SourceSample = "sample"
	SourceFile   = "file"
	SourceHTTP   = "http"
)
