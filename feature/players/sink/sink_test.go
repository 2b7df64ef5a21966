package sink

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"testing"
	"time"

	"player-enricher/core/database"
	"player-enricher/core/reconcile"
	"player-enricher/feature/players/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func setupSQLite(t *testing.T) *Repository {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: database.DriverSQLite, Name: ":memory:"})
	require.NoError(t, err)
	repo := NewRepository(db)
	require.NoError(t, repo.Migrate())
	return repo
}

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)
	return gormDB, mock
}

func masterOf(rows ...reconcile.Record) *reconcile.Relation {
	rel := reconcile.NewRelation("master", reconcile.FieldPlayerID, "full_name", "position", "team", "fantasy_calc_value", "tier")
	for _, r := range rows {
		rel.Append(r)
	}
	return rel
}

func TestToModels(t *testing.T) {
	now := time.Date(2026, 2, 26, 12, 0, 0, 0, time.FixedZone("EST", -5*3600))
	master := masterOf(reconcile.Record{
		reconcile.FieldPlayerID: reconcile.String("4984"),
		"full_name":             reconcile.String("Josh Allen"),
		"position":              reconcile.String("QB"),
		"fantasy_calc_value":    reconcile.Number("10250.75"),
	})

	rows, err := ToModels(master, now)
	require.NoError(t, err)
	require.Len(t, rows, 1)

	assert.Equal(t, "4984", rows[0].SleeperID)
	assert.Equal(t, "Josh Allen", rows[0].FullName)
	assert.Equal(t, "", rows[0].Team)
	assert.Equal(t, time.UTC, rows[0].LastUpdated.Location())
	assert.JSONEq(t, `{"player_id":"4984","full_name":"Josh Allen","position":"QB","fantasy_calc_value":10250.75}`, rows[0].Document)

	_, err = ToModels(masterOf(reconcile.Record{"full_name": reconcile.String("No Id")}), now)
	assert.ErrorIs(t, err, reconcile.ErrMissingKey)
}

func TestRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := setupSQLite(t)
	now := time.Now()

	rows, err := ToModels(masterOf(
		reconcile.Record{reconcile.FieldPlayerID: reconcile.String("1"), "full_name": reconcile.String("A"), "tier": reconcile.Number("1")},
		reconcile.Record{reconcile.FieldPlayerID: reconcile.String("2"), "full_name": reconcile.String("B")},
		reconcile.Record{reconcile.FieldPlayerID: reconcile.String("3"), "full_name": reconcile.String("C")},
	), now)
	require.NoError(t, err)

	report := repo.Write(ctx, rows, 2)
	require.NoError(t, report.Err())
	assert.Equal(t, WriteReport{Rows: 3, Chunks: 2, Written: 3}, report)

	t.Run("Upsert Replaces", func(t *testing.T) {
		again, err := ToModels(masterOf(
			reconcile.Record{reconcile.FieldPlayerID: reconcile.String("1"), "full_name": reconcile.String("A"), "tier": reconcile.Number("2")},
		), now.Add(time.Hour))
		require.NoError(t, err)
		require.NoError(t, repo.Write(ctx, again, 0).Err())

		got, err := repo.Get(ctx, "1")
		require.NoError(t, err)
		player, err := got.ToPlayer()
		require.NoError(t, err)
		assert.Equal(t, json.Number("2"), player["tier"])

		_, total, err := repo.List(ctx, 10, 0)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
	})

	t.Run("Get Missing", func(t *testing.T) {
		_, err := repo.Get(ctx, "404")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("GetMany", func(t *testing.T) {
		got, err := repo.GetMany(ctx, []string{"3", "nope", "1", "3", " "})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "3", got[0].SleeperID)
		assert.Equal(t, "1", got[1].SleeperID)

		none, err := repo.GetMany(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("List Pages", func(t *testing.T) {
		page, total, err := repo.List(ctx, 2, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(3), total)
		require.Len(t, page, 2)
		assert.Equal(t, "2", page[0].SleeperID)
		assert.Equal(t, "3", page[1].SleeperID)
	})
}

func TestRepository_PartialWrite(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewRepository(db)

	rows := []models.PlayerValue{{SleeperID: "1"}, {SleeperID: "2"}, {SleeperID: "3"}}
	insert := regexp.QuoteMeta("INSERT INTO `player_values`")

	mock.ExpectBegin()
	mock.ExpectExec(insert).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec(insert).WillReturnError(errors.New("deadlock found"))
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectExec(insert).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	report := repo.Write(context.Background(), rows, 1)

	assert.Equal(t, 3, report.Chunks)
	assert.Equal(t, 2, report.Written)
	require.Len(t, report.Failed, 1)
	assert.Equal(t, 1, report.Failed[0].Index)
	assert.Equal(t, []string{"2"}, report.Failed[0].IDs)
	assert.Contains(t, report.Failed[0].Error, "deadlock")
	assert.ErrorIs(t, report.Err(), ErrPartialWrite)
	assert.NoError(t, mock.ExpectationsWereMet())
}
