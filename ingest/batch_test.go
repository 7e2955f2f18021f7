package ingest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyakarana-io/kosha/internal/testdb"
	"github.com/vyakarana-io/kosha/schema"
)

func TestBatchWriter_FlushesAtThreshold(t *testing.T) {
	db := testdb.New(t)
	tx := db.Session(context.Background())

	writer := NewBatchWriter[schema.Indeclinable](tx, 2)
	require.NoError(t, writer.Add(schema.Indeclinable{Name: "ca"}))
	assert.Equal(t, 1, writer.Buffered())
	assert.Equal(t, 0, writer.Total())

	require.NoError(t, writer.Add(schema.Indeclinable{Name: "na"}))
	assert.Equal(t, 0, writer.Buffered())
	assert.Equal(t, 2, writer.Total())

	var count int64
	require.NoError(t, tx.Table("indeclinables").Count(&count).Error)
	assert.Equal(t, int64(2), count)
}

func TestBatchWriter_FlushDrainsRemainder(t *testing.T) {
	db := testdb.New(t)
	tx := db.Session(context.Background())

	writer := NewBatchWriter[schema.Indeclinable](tx, 10)
	for _, name := range []string{"ca", "na", "iti"} {
		require.NoError(t, writer.Add(schema.Indeclinable{Name: name}))
	}
	assert.Equal(t, 3, writer.Buffered())

	require.NoError(t, writer.Flush())
	assert.Equal(t, 0, writer.Buffered())
	assert.Equal(t, 3, writer.Total())

	var count int64
	require.NoError(t, tx.Table("indeclinables").Count(&count).Error)
	assert.Equal(t, int64(3), count)
}

func TestBatchWriter_FlushEmptyIsNoOp(t *testing.T) {
	db := testdb.New(t)
	writer := NewBatchWriter[schema.Indeclinable](db.Session(context.Background()), 10)

	require.NoError(t, writer.Flush())
	assert.Equal(t, 0, writer.Total())
}

func TestNewBatchWriter_DefaultSize(t *testing.T) {
	writer := NewBatchWriter[schema.Indeclinable](nil, 0)
	assert.Equal(t, DefaultBatchSize, writer.size)
}
