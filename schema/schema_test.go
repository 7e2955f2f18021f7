package schema

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vyakarana-io/kosha/internal/database"
)

func openTestDatabase(t *testing.T) database.Database {
	t.Helper()
	url := "sqlite:///" + filepath.Join(t.TempDir(), "test.db")
	db, err := database.NewDatabase(context.Background(), url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestCreateAll_ReportsNewTables(t *testing.T) {
	db := openTestDatabase(t)

	created, err := CreateAll(db)
	require.NoError(t, err)
	assert.Equal(t, TableNames(), created)

	// A second run finds nothing to create
	created, err = CreateAll(db)
	require.NoError(t, err)
	assert.Empty(t, created)
}

func TestCreateAll_KeepsExistingTables(t *testing.T) {
	db := openTestDatabase(t)

	session := db.Session(context.Background())
	require.NoError(t, session.AutoMigrate(&Root{}))
	require.NoError(t, session.Create(&Root{Name: "gam"}).Error)

	created, err := CreateAll(db)
	require.NoError(t, err)
	assert.NotContains(t, created, "roots")

	var count int64
	require.NoError(t, session.Table("roots").Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestDropAll(t *testing.T) {
	db := openTestDatabase(t)

	_, err := CreateAll(db)
	require.NoError(t, err)
	require.NoError(t, DropAll(db))

	migrator := db.GORM().Migrator()
	for _, model := range AllModels() {
		name := model.(tabler).TableName()
		assert.False(t, migrator.HasTable(model), "table %s should be dropped", name)
	}

	// Dropping an empty store is a no-op
	require.NoError(t, DropAll(db))
}

func TestEnumTables(t *testing.T) {
	tables := EnumTables()
	require.Len(t, tables, 9)

	seenCategory := map[string]bool{}
	seenTable := map[string]bool{}
	for _, tab := range tables {
		assert.False(t, seenCategory[tab.Category], "duplicate category %s", tab.Category)
		assert.False(t, seenTable[tab.Table], "duplicate table %s", tab.Table)
		seenCategory[tab.Category] = true
		seenTable[tab.Table] = true
		assert.NotEmpty(t, tab.Doc)
	}
	assert.True(t, seenCategory[CategoryPerson])
	assert.True(t, seenCategory[CategorySandhiType])
}

func TestTags_StableIDs(t *testing.T) {
	tags := Tags()
	require.Len(t, tags, 8)
	for i, tag := range tags {
		assert.Equal(t, int64(i+1), tag.ID, "tag %s", tag.Name)
	}
	assert.Equal(t, "noun", tags[0].Name)
	assert.Equal(t, "participle", tags[7].Name)
}

func TestEnumRow_GenericTableAccess(t *testing.T) {
	db := openTestDatabase(t)
	_, err := CreateAll(db)
	require.NoError(t, err)

	session := db.Session(context.Background())
	row := EnumRow{Name: "first", Abbr: "1"}
	require.NoError(t, session.Table("persons").Create(&row).Error)
	assert.NotZero(t, row.ID)

	var rows []EnumRow
	require.NoError(t, session.Table("persons").Find(&rows).Error)
	require.Len(t, rows, 1)
	assert.Equal(t, "first", rows[0].Name)
	assert.Equal(t, "1", rows[0].Abbr)
}
