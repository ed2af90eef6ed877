package manifest_test

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digidem/openrosa-manifest/pkg/manifest"
	"github.com/digidem/openrosa-manifest/pkg/types"
)

func TestAssemble(t *testing.T) {
	doc, err := manifest.Assemble([]types.MediaFile{{
		Filename:    "no.png",
		DownloadURL: "https://example.org/forms/monitoring/no.png",
		Hash:        "md5:abcdef1234567890abcdef1234567890",
	}})
	require.NoError(t, err)

	want := `<?xml version="1.0" encoding="UTF-8"?>
<manifest xmlns="http://openrosa.org/xforms/xformsManifest">
  <mediaFile>
    <filename>no.png</filename>
    <downloadUrl>https://example.org/forms/monitoring/no.png</downloadUrl>
    <hash>md5:abcdef1234567890abcdef1234567890</hash>
  </mediaFile>
</manifest>`
	assert.Equal(t, want, doc)
}

func TestAssemble_RoundTrip(t *testing.T) {
	records := []types.MediaFile{
		{Filename: "a & b.png", DownloadURL: "https://x.org/media?id=1&name=a", Hash: "md5:01"},
		{Filename: "c.png", DownloadURL: "https://x.org/c.png", Hash: "md5:02"},
	}
	doc, err := manifest.Assemble(records)
	require.NoError(t, err)
	assert.Contains(t, doc, "https://x.org/media?id=1&amp;name=a")

	var parsed types.Manifest
	require.NoError(t, xml.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, manifest.Namespace, parsed.XMLName.Space)
	assert.Equal(t, records, parsed.MediaFiles)
}

func TestAssemble_IncompleteRecord(t *testing.T) {
	for name, record := range map[string]types.MediaFile{
		"no filename": {DownloadURL: "https://x.org/a.png", Hash: "md5:01"},
		"no url":      {Filename: "a.png", Hash: "md5:01"},
		"no hash":     {Filename: "a.png", DownloadURL: "https://x.org/a.png"},
	} {
		t.Run(name, func(t *testing.T) {
			doc, err := manifest.Assemble([]types.MediaFile{record})
			assert.ErrorIs(t, err, manifest.ErrIncompleteRecord)
			assert.Empty(t, doc)
		})
	}
}
