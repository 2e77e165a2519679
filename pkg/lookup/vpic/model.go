package vpic

type DecodeResponse struct {
	Count   int    `json:"Count"`
	Message string `json:"Message"`

	Results []map[string]string `json:"Results"`
}
