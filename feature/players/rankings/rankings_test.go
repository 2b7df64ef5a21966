package rankings

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"player-enricher/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func listing(objects ...minio.ObjectInfo) <-chan minio.ObjectInfo {
	ch := make(chan minio.ObjectInfo, len(objects))
	for _, o := range objects {
		ch <- o
	}
	close(ch)
	return ch
}

func TestProfiles(t *testing.T) {
	p, ok := ProfileByName(" Redraft ")
	require.True(t, ok)
	assert.Equal(t, "uploads/1QB/redraft/", p.Prefix)
	assert.Equal(t, []string{"redraft_overall_rank", "redraft_pos_rank", "redraft_tier", "redraft_auction_value"}, p.Spec.Fields())

	_, ok = ProfileByName("ppr")
	assert.False(t, ok)

	assert.Equal(t, []string{"superflex", "one_qb_dynasty", "redraft"}, Names())
}

func TestEnabled(t *testing.T) {
	all, err := Enabled(nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	some, err := Enabled([]string{"redraft", "superflex", "superflex"})
	require.NoError(t, err)
	require.Len(t, some, 2)
	assert.Equal(t, "superflex", some[0].Format, "merge order is kept")
	assert.Equal(t, "redraft", some[1].Format)

	_, err = Enabled([]string{"half_ppr"})
	assert.ErrorContains(t, err, "half_ppr")
}

func TestLatestObject(t *testing.T) {
	ctx := context.Background()
	base := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

	t.Run("Picks Newest Spreadsheet", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "player-data", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
			return opts.Prefix == "uploads/superflex/" && opts.Recursive
		})).Return(listing(
			minio.ObjectInfo{Key: "uploads/superflex/a.xlsx", LastModified: base},
			minio.ObjectInfo{Key: "uploads/superflex/notes.txt", LastModified: base.Add(time.Hour)},
			minio.ObjectInfo{Key: "uploads/superflex/b.CSV", LastModified: base.Add(time.Minute)},
			minio.ObjectInfo{Key: "uploads/superflex/c.xlsx", LastModified: base.Add(time.Minute)},
		))

		obj, err := LatestObject(ctx, client, "player-data", "uploads/superflex/")
		require.NoError(t, err)
		assert.Equal(t, "uploads/superflex/c.xlsx", obj.Key)
	})

	t.Run("Empty", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "player-data", mock.Anything).Return(listing(
			minio.ObjectInfo{Key: "uploads/superflex/readme.md"},
		))

		_, err := LatestObject(ctx, client, "player-data", "uploads/superflex/")
		assert.ErrorIs(t, err, ErrSourceNotFound)
	})

	t.Run("Listing Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "player-data", mock.Anything).Return(listing(
			minio.ObjectInfo{Err: errors.New("access denied")},
		))

		_, err := LatestObject(ctx, client, "player-data", "uploads/superflex/")
		assert.ErrorContains(t, err, "access denied")
		assert.NotErrorIs(t, err, ErrSourceNotFound)
	})
}

func xlsxBytes(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf.Bytes()
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()
	p, _ := ProfileByName("superflex")

	t.Run("XLSX", func(t *testing.T) {
		data := xlsxBytes(t, [][]any{
			{"Dynasty Superflex"},
			{"Player", "Overall", "Positional Rank", "Tier"},
			{"Josh Allen", 1, "QB1", 1},
		})

		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "player-data", mock.Anything).Return(listing(
			minio.ObjectInfo{Key: "uploads/superflex/feb.xlsx"},
		))
		client.On("GetObject", mock.Anything, "player-data", "uploads/superflex/feb.xlsx", mock.Anything).
			Return(io.NopCloser(strings.NewReader(string(data))), nil)

		wb, obj, err := NewLoader(client, "player-data").Load(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, "uploads/superflex/feb.xlsx", obj.Key)
		require.Len(t, wb.Sheets, 1)
		assert.Equal(t, []string{"Josh Allen", "1", "QB1", "1"}, wb.Sheets[0].Rows[2])
	})

	t.Run("CSV", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "player-data", mock.Anything).Return(listing(
			minio.ObjectInfo{Key: "uploads/superflex/feb.csv"},
		))
		client.On("GetObject", mock.Anything, "player-data", "uploads/superflex/feb.csv", mock.Anything).
			Return(io.NopCloser(strings.NewReader("Player,Overall\nJosh Allen,1\n")), nil)

		wb, _, err := NewLoader(client, "player-data").Load(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, "feb", wb.Sheets[0].Name)
	})

	t.Run("Absent", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("ListObjects", mock.Anything, "player-data", mock.Anything).Return(listing())

		wb, _, err := NewLoader(client, "player-data").Load(ctx, p)
		assert.Nil(t, wb)
		assert.ErrorIs(t, err, ErrSourceNotFound)
		client.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUploadKey(t *testing.T) {
	p, _ := ProfileByName("one_qb_dynasty")
	assert.Equal(t, "uploads/1QB/dynasty/20260226T120000Z_rankings.xlsx", UploadKey(p, `C:\Users\me\rankings.xlsx`, "20260226T120000Z"))
}
