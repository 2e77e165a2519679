package vision

import (
	"encoding/json"
	"strconv"
)

// Value tolerates the backend returning readings as numbers or strings.
type Value string

func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	switch val := raw.(type) {
	case string:
		*v = Value(val)
	case float64:
		*v = Value(strconv.FormatInt(int64(val), 10))
	default:
		*v = ""
	}

	return nil
}

type PlateResponse struct {
	LicensePlate       string `json:"licensePlate"`
	LicensePlateNumber string `json:"licensePlateNumber"`
	LicenseRegion      string `json:"licenseRegion"`
}

type VinPayload struct {
	VIN Value `json:"vin"`

	Year  Value `json:"year"`
	Make  Value `json:"make"`
	Model Value `json:"model"`
}

type VinResponse struct {
	VinPayload

	Data *VinPayload `json:"data"`
}

type CarrierResponse struct {
	DotOrMc Value `json:"dotOrMc"`
}

type OdometerResponse struct {
	Odometer Value `json:"odometer"`

	CroppedImage string `json:"croppedImage"`
}

type CompanyResponse struct {
	CompanyName string `json:"companyName"`
}
