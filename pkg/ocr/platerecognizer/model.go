package platerecognizer

type ReaderResponse struct {
	Results []ReaderResult `json:"results"`
}

type ReaderResult struct {
	Plate string `json:"plate"`

	Region ReaderRegion `json:"region"`
}

type ReaderRegion struct {
	Code string `json:"code"`
}
