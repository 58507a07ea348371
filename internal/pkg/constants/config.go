package constants

// Viper configuration keys. Values come from environment variables or the
// optional config file loaded at startup.
const (
	ViperListenAddr  = "listen_addr"
	ViperDatabaseDSN = "database_dsn"

	ViperOSRMBaseURL      = "osrm_base_url"
	ViperOverpassBaseURL  = "overpass_base_url"
	ViperNominatimBaseURL = "nominatim_base_url"

	ViperRoutingTimeout  = "routing_timeout"
	ViperOverpassTimeout = "overpass_timeout"
	ViperGeocodeTimeout  = "geocode_timeout"

	ViperDistanceCacheTTL = "distance_cache_ttl"
	ViperFacilityCacheTTL = "facility_cache_ttl"

	ViperCORSOrigins = "cors_origins"
)
