package manifest

const (
	// Namespace is the OpenRosa form manifest namespace.
	Namespace = "http://openrosa.org/xforms/xformsManifest"

	// ManifestFile is the default file name used by WriteFile.
	ManifestFile = "manifest.xml"

	// DefaultUserAgent identifies the client on every outbound fetch.
	DefaultUserAgent = "openrosa-manifest"

	md5Prefix = "md5:"
)
