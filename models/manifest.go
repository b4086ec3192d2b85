package models

// Manifest is the remote descriptor an addon serves at
// <base-url>/manifest.json. Only the fields the pairing flow needs are
// decoded; the rest of the document is ignored.
type Manifest struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Version     string            `json:"version"`
	Catalogs    []ManifestCatalog `json:"catalogs"`
}

// ManifestCatalog is one catalog entry advertised by an addon manifest.
type ManifestCatalog struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}
