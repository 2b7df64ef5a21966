package valuation

// Config holds the valuation API settings.
type Config struct {
	// BaseURL is the API root without the path.
	BaseURL string `mapstructure:"base_url" default:"https://api.fantasycalc.com"`
	// Dynasty selects dynasty values instead of redraft.
	Dynasty bool `mapstructure:"dynasty" default:"true"`
	// NumQBs is 1 for one-QB leagues and 2 for superflex.
	NumQBs int `mapstructure:"num_qbs" default:"2"`
	// PPR is the points per reception of the league.
	PPR float64 `mapstructure:"ppr" default:"1"`
	// NumTeams is the league size.
	NumTeams int `mapstructure:"num_teams" default:"12"`
	// TimeoutSeconds bounds one fetch.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}
