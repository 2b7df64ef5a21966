package integrity

import (
	"context"
	"testing"

	"player-enricher/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
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

func TestService_Structure(t *testing.T) {
	mockClient := new(mocks.Client)
	logger := zap.NewNop()
	svc := NewService(mockClient, "test-bucket", logger, nil, "registry/players.json")

	t.Run("CheckStructure", func(t *testing.T) {
		mockClient.On("BucketExists", mock.Anything, "test-bucket").Return(true, nil)

		ch := make(chan minio.ObjectInfo)
		close(ch)
		// checks.CheckStructure calls ListObjects for each required folder
		mockClient.On("ListObjects", mock.Anything, "test-bucket", mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

		missing, err := svc.CheckStructure(context.Background())
		assert.NoError(t, err)
		assert.Contains(t, missing, "registry")
	})

	t.Run("FixStructure", func(t *testing.T) {
		mockClient.On("PutObject", mock.Anything, "test-bucket", "uploads/superflex/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

		err := svc.FixStructure(context.Background(), []string{"uploads/superflex"})
		assert.NoError(t, err)
	})
}

func TestService_Sink(t *testing.T) {
	t.Run("No Database", func(t *testing.T) {
		svc := NewService(new(mocks.Client), "test-bucket", zap.NewNop(), nil, "")
		report, err := svc.CheckSink()
		assert.Error(t, err)
		assert.Nil(t, report)
	})

	t.Run("Mismatch", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		svc := NewService(new(mocks.Client), "test-bucket", zap.NewNop(), db, "")

		rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
		rows.AddRow("sleeper_id", "varchar(32)", "NO", "PRI", nil, "")
		sqlMock.ExpectQuery("SHOW COLUMNS FROM `player_values`").WillReturnRows(rows)

		report, err := svc.CheckSink()
		assert.NoError(t, err)
		assert.False(t, report.Matched)
	})
}
