package filing

import (
	"archive/zip"
	"bytes"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildArchive(t *testing.T) {
	d := testDataset()
	document := RenderDocument(d)
	table := RenderTable(d)

	archive, err := BuildArchive(document, table, d.GeneratedAt)
	require.NoError(t, err)

	assert.Equal(t, "SKLADKA_20251210_143005.zip", archive.ArchiveName)
	assert.Equal(t, "SKLADKA_20251210_143005.xml", archive.DocumentName)
	assert.Equal(t, "SKLADKA_20251210_143005.csv", archive.TableName)

	reader, err := zip.NewReader(bytes.NewReader(archive.Bytes), int64(len(archive.Bytes)))
	require.NoError(t, err)
	require.Len(t, reader.File, 2)

	entries := map[string]string{}
	for _, f := range reader.File {
		rc, err := f.Open()
		require.NoError(t, err)
		content, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		entries[f.Name] = string(content)
	}

	assert.Equal(t, document, entries[archive.DocumentName])
	assert.Equal(t, table, entries[archive.TableName])
}

func TestBuildArchiveDeterministic(t *testing.T) {
	d := testDataset()
	document := RenderDocument(d)
	table := RenderTable(d)

	first, err := BuildArchive(document, table, d.GeneratedAt)
	require.NoError(t, err)
	second, err := BuildArchive(document, table, d.GeneratedAt)
	require.NoError(t, err)

	assert.Equal(t, first.Bytes, second.Bytes)
}

func TestArchiveTimestamp(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.Local)
	assert.Equal(t, "20250102_030405", ArchiveTimestamp(ts))
}
