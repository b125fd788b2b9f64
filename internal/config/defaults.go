package config

const (
	defaultDataDir = "~/.local/share/corfetch/data"
	defaultLogDir  = "~/.local/share/corfetch/logs"

	defaultMirrorTimeoutSeconds = 30

	defaultSearchBaseURL        = "https://search.sunbiz.org/Inquiry/CorporationSearch/SearchResults"
	defaultSearchDelayMS        = 750
	defaultSearchTimeoutSeconds = 20
	defaultSearchUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

	defaultSyntheticCount = 250

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			DataDir: defaultDataDir,
			LogDir:  defaultLogDir,
		},
		Mirror: Mirror{
			URLs: []string{
				"https://sftp.floridados.gov/Public/doc/cor/cordata.zip",
				"https://dos.fl.gov/sunbiz/data/cordata.zip",
				"https://dos.fl.gov/sunbiz/data/cordata.csv",
			},
			TimeoutSeconds: defaultMirrorTimeoutSeconds,
		},
		Search: Search{
			BaseURL: defaultSearchBaseURL,
			Regions: []string{
				"COLLIER", "LEE", "CHARLOTTE", "SARASOTA",
				"MANATEE", "HILLSBOROUGH", "MIAMI-DADE",
			},
			Keywords: []string{
				"ASSOCIATION", "CONDOMINIUM", "HOMEOWNERS", "COMMUNITY",
			},
			DelayMS:        defaultSearchDelayMS,
			TimeoutSeconds: defaultSearchTimeoutSeconds,
			UserAgent:      defaultSearchUserAgent,
		},
		Synthetic: Synthetic{
			Count: defaultSyntheticCount,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
