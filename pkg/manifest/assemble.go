package manifest

import (
	"encoding/xml"
	"fmt"

	"github.com/digidem/openrosa-manifest/pkg/types"
)

// Assemble renders records as an indented manifest document, in order.
func Assemble(records []types.MediaFile) (string, error) {
	for i, r := range records {
		if r.Filename == "" || r.DownloadURL == "" || r.Hash == "" {
			return "", fmt.Errorf("record %d: %w", i, ErrIncompleteRecord)
		}
	}

	doc := types.Manifest{
		Xmlns:      Namespace,
		MediaFiles: records,
	}
	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}
	return xml.Header + string(out), nil
}
