package filing

import (
	"archive/zip"
	"bytes"
	"fmt"
	"time"
)

// archiveBaseName is the shared literal prefix of every entry and of the
// archive itself.
const archiveBaseName = "SKLADKA"

// Archive is the packaged filing: both rendered documents zipped under
// deterministic names.
type Archive struct {
	Bytes        []byte
	DocumentName string
	TableName    string
	ArchiveName  string
}

// ArchiveTimestamp renders the second-resolution timestamp used in entry
// names.
func ArchiveTimestamp(ts time.Time) string {
	return ts.Format("20060102_150405")
}

// BuildArchive packages the rendered document and table into a deflate
// compressed container. Entry names and contents are fully determined by the
// inputs, so the same snapshot and timestamp always produce the same entry
// set.
func BuildArchive(document, table string, ts time.Time) (*Archive, error) {
	stamp := ArchiveTimestamp(ts)
	docName := fmt.Sprintf("%s_%s.xml", archiveBaseName, stamp)
	tableName := fmt.Sprintf("%s_%s.csv", archiveBaseName, stamp)

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	entries := []struct {
		name    string
		content string
	}{
		{docName, document},
		{tableName, table},
	}
	for _, e := range entries {
		f, err := w.CreateHeader(&zip.FileHeader{
			Name:     e.name,
			Method:   zip.Deflate,
			Modified: ts,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create archive entry %s: %w", e.name, err)
		}
		if _, err := f.Write([]byte(e.content)); err != nil {
			return nil, fmt.Errorf("failed to write archive entry %s: %w", e.name, err)
		}
	}

	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize archive: %w", err)
	}

	return &Archive{
		Bytes:        buf.Bytes(),
		DocumentName: docName,
		TableName:    tableName,
		ArchiveName:  fmt.Sprintf("%s_%s.zip", archiveBaseName, stamp),
	}, nil
}
