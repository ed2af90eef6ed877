package types

import "encoding/xml"

// Manifest is the OpenRosa xformsManifest document.
type Manifest struct {
	XMLName xml.Name `xml:"manifest"`

	// Xmlns is the document namespace, rendered as a plain xmlns attribute.
	Xmlns string `xml:"xmlns,attr"`

	// MediaFiles lists every file in the order it was given.
	MediaFiles []MediaFile `xml:"mediaFile"`
}
