package types

// FileDescriptor is a single file to advertise in a manifest.
// It is supplied by the caller and never modified during resolution.
type FileDescriptor struct {
	// URL is where the file can be fetched. Required.
	URL string `yaml:"url" json:"url"`

	// Filename defaults to the last path segment of URL.
	Filename string `yaml:"filename,omitempty" json:"filename,omitempty"`

	// Hash is a precomputed fingerprint, e.g. "md5:<hex>".
	// When set, the file is not fetched and the value is emitted as-is.
	Hash string `yaml:"hash,omitempty" json:"hash,omitempty"`
}

// MediaFile is a resolved FileDescriptor, ready to be listed in a manifest.
type MediaFile struct {
	Filename    string `xml:"filename" json:"filename"`
	DownloadURL string `xml:"downloadUrl" json:"downloadUrl"`
	Hash        string `xml:"hash" json:"hash"`
}
