package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeResource(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDecodeFile(t *testing.T) {
	path := writeResource(t, "names.yml", "- ca\n- na\n")

	names, err := decodeFile[[]string](path)
	require.NoError(t, err)
	assert.Equal(t, []string{"ca", "na"}, names)
}

func TestDecodeFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.yml")

	_, err := decodeFile[[]string](path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}

func TestDecodeDocuments(t *testing.T) {
	path := writeResource(t, "roots.yml", "name: gam\nhom: 2\n---\nname: ni\n")

	docs, err := decodeDocuments[rootDoc](path)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "gam", docs[0].Name)
	assert.Equal(t, Hom("2"), docs[0].Hom)
	assert.Equal(t, "ni", docs[1].Name)
	assert.Equal(t, Hom(""), docs[1].Hom)
}

func TestHom_BareAndQuotedScalarsAgree(t *testing.T) {
	bare := writeResource(t, "bare.yml", "name: gam\nhom: 2\n")
	quoted := writeResource(t, "quoted.yml", "name: gam\nhom: \"2\"\n")

	bareDocs, err := decodeDocuments[rootDoc](bare)
	require.NoError(t, err)
	quotedDocs, err := decodeDocuments[rootDoc](quoted)
	require.NoError(t, err)

	assert.Equal(t, Hom("2"), bareDocs[0].Hom)
	assert.Equal(t, bareDocs[0].Hom, quotedDocs[0].Hom)
}

func TestReadRecords(t *testing.T) {
	path := writeResource(t, "verbs.csv", "name,root,hom\ngacchati,gam,\nagacchat,gam,2\n")

	records, err := readRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, map[string]string{"name": "gacchati", "root": "gam", "hom": ""}, records[0])
	assert.Equal(t, "2", records[1]["hom"])
}

func TestReadRecords_ShortRowFillsBlanks(t *testing.T) {
	path := writeResource(t, "gerunds.csv", "name,root,hom\ngatva,gam\n")

	records, err := readRecords(path)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "gatva", records[0]["name"])
	assert.Equal(t, "", records[0]["hom"])
}

func TestReadRecords_HeaderOnly(t *testing.T) {
	path := writeResource(t, "empty.csv", "name,root,hom\n")

	records, err := readRecords(path)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadRecords_EmptyFile(t *testing.T) {
	path := writeResource(t, "none.csv", "")

	records, err := readRecords(path)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestReadRecords_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.csv")

	_, err := readRecords(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), path)
}
