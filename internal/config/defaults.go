package config

const (
	defaultCatalogPath     = "~/.local/share/rymgap/movie_list.csv"
	defaultReportPath      = "~/.local/share/rymgap/non_rym.csv"
	defaultOMDbBaseURL     = "https://www.omdbapi.com"
	defaultRYMBaseURL      = "https://rateyourmusic.com/"
	defaultNavigateTimeout = 30
	defaultRequestDelay    = 90
	defaultUnpacedSpan     = 1000
	defaultLogFormat       = ""
	defaultLogLevel        = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Catalog: Catalog{
			Path:       defaultCatalogPath,
			ReportPath: defaultReportPath,
		},
		OMDb: OMDb{
			BaseURL: defaultOMDbBaseURL,
		},
		RYM: RYM{
			BaseURL:         defaultRYMBaseURL,
			Headless:        true,
			NavigateTimeout: defaultNavigateTimeout,
		},
		Pacing: Pacing{
			RequestDelay: defaultRequestDelay,
			UnpacedSpan:  defaultUnpacedSpan,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
