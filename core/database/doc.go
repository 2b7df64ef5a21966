// Package database opens the sink database and inspects its schema.
//
// Connect wraps GORM and supports two drivers: mysql for deployments and
// sqlite for local runs and tests (use Name ":memory:" for a throwaway
// database). Connection setup, I/O and the initial ping are bounded by
// Config.TimeoutSeconds.
//
// GetTableColumns lists the columns of a table through SHOW COLUMNS or
// PRAGMA table_info, which the sink schema integrity check compares against
// the GORM model.
//
//	db, err := database.Connect(cfg.Database)
//	columns, err := database.GetTableColumns(db, "player_values")
package database
