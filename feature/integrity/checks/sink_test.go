package checks

import (
	"testing"

	"player-enricher/core/database"
	"player-enricher/feature/players/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func TestCheckSinkSchema_Nil(t *testing.T) {
	_, err := CheckSinkSchema(nil)
	assert.Error(t, err)
}

func TestCheckSinkSchema_MySQL(t *testing.T) {
	t.Run("Matched", func(t *testing.T) {
		db, mock := setupMockDB(t)
		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
		rows.AddRow("sleeper_id", "varchar(32)", "NO", "PRI", nil, "")
		rows.AddRow("full_name", "varchar(128)", "YES", "", nil, "")
		rows.AddRow("position", "varchar(16)", "YES", "", nil, "")
		rows.AddRow("team", "varchar(16)", "YES", "", nil, "")
		rows.AddRow("document", "text", "YES", "", nil, "")
		rows.AddRow("last_updated", "datetime(3)", "YES", "", nil, "")
		mock.ExpectQuery("SHOW COLUMNS FROM `player_values`").WillReturnRows(rows)

		report, err := CheckSinkSchema(db)
		require.NoError(t, err)
		assert.True(t, report.Matched)
		assert.Equal(t, "mysql", report.Driver)
		assert.Equal(t, "ok", report.Tables["player_values"].Status)
	})

	t.Run("Missing And Mismatched", func(t *testing.T) {
		db, mock := setupMockDB(t)
		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
		rows.AddRow("sleeper_id", "int(11)", "NO", "PRI", nil, "")
		rows.AddRow("full_name", "varchar(128)", "YES", "", nil, "")
		mock.ExpectQuery("SHOW COLUMNS FROM `player_values`").WillReturnRows(rows)

		report, err := CheckSinkSchema(db)
		require.NoError(t, err)
		assert.False(t, report.Matched)

		tbl := report.Tables["player_values"]
		assert.Equal(t, "error", tbl.Status)
		assert.ElementsMatch(t, []string{"position", "team", "document", "last_updated"}, tbl.MissingColumns)
		require.Len(t, tbl.TypeMismatches, 1)
		assert.Contains(t, tbl.TypeMismatches[0], "sleeper_id: expected varchar(32), got int(11)")
	})

	t.Run("Inspect Failure", func(t *testing.T) {
		db, mock := setupMockDB(t)
		mock.ExpectQuery("SHOW COLUMNS FROM `player_values`").WillReturnError(assert.AnError)

		report, err := CheckSinkSchema(db)
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.Len(t, report.Errors, 1)
	})
}

func TestCheckSinkSchema_SQLite(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)

	report, err := CheckSinkSchema(db)
	require.NoError(t, err)
	assert.False(t, report.Matched, "table not migrated yet")
	assert.Contains(t, report.Errors[0], "does not exist")

	require.NoError(t, db.AutoMigrate(&models.PlayerValue{}))

	report, err = CheckSinkSchema(db)
	require.NoError(t, err)
	assert.True(t, report.Matched, "%+v", report.Tables)
}

func TestParseGormTags(t *testing.T) {
	tag := "column:sleeper_id;primaryKey;type:varchar(32)"
	assert.Equal(t, "sleeper_id", parseGormColumn(tag))
	assert.Equal(t, "varchar(32)", parseGormType(tag))
	assert.Equal(t, "", parseGormType("column:x"))
}
