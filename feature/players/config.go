package players

// Config holds the pipeline settings.
type Config struct {
	// JoinMode is the default identifier join: inner or left.
	JoinMode string `mapstructure:"join_mode" default:"inner"`
	// BatchSize is the number of rows per sink upsert.
	BatchSize int `mapstructure:"batch_size" default:"25"`
	// RegistryObject is the bucket key of the registry document.
	RegistryObject string `mapstructure:"registry_object" default:"registry/players.json"`
	// RegistryURL, when set, is used instead of RegistryObject.
	RegistryURL string `mapstructure:"registry_url" default:""`
	// Formats lists the ranking formats merged, in order.
	Formats []string `mapstructure:"formats" default:"superflex,one_qb_dynasty,redraft"`
}
