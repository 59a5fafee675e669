package database

import (
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gewnthar/imagefetch/config"
	"github.com/gewnthar/imagefetch/models"
)

func TestBuildDSN(t *testing.T) {
	dsn := BuildDSN(config.DatabaseConfig{
		Host:     "db.internal",
		Port:     "3307",
		User:     "fetcher",
		Password: "p@ss:word",
		DBName:   "images",
	})

	parsed, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "fetcher", parsed.User)
	assert.Equal(t, "p@ss:word", parsed.Passwd)
	assert.Equal(t, "tcp", parsed.Net)
	assert.Equal(t, "db.internal:3307", parsed.Addr)
	assert.Equal(t, "images", parsed.DBName)
	assert.True(t, parsed.ParseTime)
}

func TestStoreRequiresConnection(t *testing.T) {
	require.Nil(t, DB)

	assert.ErrorIs(t, EnsureSchema(), errNoDB)
	assert.ErrorIs(t, LogImageDownload(models.DownloadResult{Filename: "a.jpg"}), errNoDB)
	assert.ErrorIs(t, HistoryRecorder{}.LogImageDownload(models.DownloadResult{}), errNoDB)

	_, err := GetRecentDownloads(10)
	assert.ErrorIs(t, err, errNoDB)

	CloseDB() // no-op without a connection
}
