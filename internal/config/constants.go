package config

const (
	// DefaultAPIBaseURL is the public Quran content API endpoint.
	DefaultAPIBaseURL = "https://api.alquran.cloud/v1"

	// DefaultDatabaseFile is the fallback snapshot database location when
	// the platform data directory cannot be resolved.
	DefaultDatabaseFile = "./mushaf.db"
)
