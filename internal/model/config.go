package model

import "time"

// Config is the full runtime configuration, assembled from defaults,
// the config file, environment variables and flags.
type Config struct {
	API         APIConfig         `yaml:"api"`
	HTTP        HTTPConfig        `yaml:"http"`
	Fetch       FetchConfig       `yaml:"fetch"`
	Filter      FilterConfig      `yaml:"filter"`
	Paths       PathsConfig       `yaml:"paths"`
	Cache       CacheConfig       `yaml:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency"`
	Output      OutputConfig      `yaml:"output"`
}

// APIConfig configures access to the congress.gov REST API.
type APIConfig struct {
	BaseURL string `yaml:"base_url"`
	Key     string `yaml:"key"`
}

// HTTPConfig holds transport settings shared by all stages.
type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout"`
	UserAgent string        `yaml:"user_agent"`
}

// FetchConfig holds article-pull policy settings.
type FetchConfig struct {
	Delay       time.Duration `yaml:"delay"`
	CheckRobots bool          `yaml:"check_robots"`
}

// FilterConfig configures the procedural-article scope filter.
type FilterConfig struct {
	ProceduralTerms []string `yaml:"procedural_terms"`
}

// PathsConfig defines where each stage reads and writes its data.
type PathsConfig struct {
	Database    string `yaml:"database"`
	ArticlesDir string `yaml:"articles_dir"`
	ParsedDir   string `yaml:"parsed_dir"`
	MembersCSV  string `yaml:"members_csv"`
}

// CacheConfig configures the API page cache.
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled"`
	Dir       string        `yaml:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl"`
}

// ConcurrencyConfig bounds the parse stage worker pool.
type ConcurrencyConfig struct {
	ParseWorkers int `yaml:"parse_workers"`
}

// OutputConfig controls progress reporting.
type OutputConfig struct {
	Verbose bool `yaml:"verbose"`
}

// DefaultConfig returns the built-in defaults. The API key has no
// default and must come from the config file, CONGREC_API_KEY, or a
// flag.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: "https://api.congress.gov/v3",
		},
		HTTP: HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: "congrec/0.1 (congressional record pipeline)",
		},
		Fetch: FetchConfig{
			Delay:       3 * time.Second,
			CheckRobots: true,
		},
		Filter: FilterConfig{
			ProceduralTerms: []string{
				"prayer",
				"pledge of allegiance",
				"adjournment",
				"designation of speaker pro tempore",
				"designation of acting president pro tempore",
				"communication from",
				"executive communication",
				"message from the house",
				"message from the senate",
				"additional sponsors",
				"additional cosponsors",
				"leave of absence",
				"enrolled bill",
				"order of business",
				"order of procedure",
				"recess",
			},
		},
		Paths: PathsConfig{
			Database:    "records_info.db",
			ArticlesDir: "scraped_articles",
			ParsedDir:   "parsed_records",
			MembersCSV:  "congressional_members.csv",
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".congrec-cache",
			MemoryTTL: 15 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			ParseWorkers: 4,
		},
		Output: OutputConfig{},
	}
}
