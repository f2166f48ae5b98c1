package mod

// BinRecord is one row of an overlay file.
type BinRecord struct {
	Prefix string `json:"prefix"`
	BinMetadata
}

// BinFeedback is the body accepted by the feedback endpoint.
type BinFeedback struct {
	Type    string `json:"type"`
	Level   string `json:"level"`
	Region  string `json:"region"`
	Bank    string `json:"bank"`
	Country string `json:"country"`
}

// BinQueryResult is what a BIN prefix query answers with.
type BinQueryResult struct {
	Bin            string       `json:"bin"`
	Brand          Brand        `json:"brand"`
	BrandName      string       `json:"brand_name"`
	PossibleBrands []Brand      `json:"possible_brands"`
	Metadata       CardMetadata `json:"metadata"`
	Format         CardFormat   `json:"format"`
}

type BrandInfo struct {
	Brand  Brand      `json:"brand"`
	Name   string     `json:"name"`
	Format CardFormat `json:"format"`
}
