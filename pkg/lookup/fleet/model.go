package fleet

import (
	"encoding/json"
	"strconv"

	"github.com/glidefleet/intake/pkg/carrier"
	"github.com/glidefleet/intake/pkg/intake"
)

// Value tolerates the backend returning numbers where strings are expected.
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

type findResponse struct {
	Data  *findData `json:"data"`
	Error string    `json:"error"`
}

type findData struct {
	Equipment *equipment `json:"equipment"`
	Customer  *customer  `json:"customer"`
}

type equipment struct {
	Unit string `json:"unit"`

	VIN   string `json:"vin"`
	Year  Value  `json:"year"`
	Make  string `json:"make"`
	Model string `json:"model"`

	LicensePlateNumber string `json:"licensePlateNumber"`
	LicenseRegion      string `json:"licenseRegion"`
}

type customer struct {
	Name string `json:"name"`

	CarrierIDType carrier.IDType `json:"carrierIdType"`
	CarrierIDNum  string         `json:"carrierIdNum"`
}

type submitRequest struct {
	Intake        intake.Record `json:"intake"`
	CreateNewUnit bool          `json:"createNewUnit"`
}

type submitResponse struct {
	Data  *submitData `json:"data"`
	Error string      `json:"error"`
}

type submitData struct {
	NewJob *job `json:"newJob"`

	CustomerMatched  bool `json:"customerMatched"`
	EquipmentMatched bool `json:"equipmentMatched"`
}

type job struct {
	ID string `json:"_id"`
}

type existingUnitResponse struct {
	Data  *existingUnitData `json:"data"`
	Error string            `json:"error"`
}

type existingUnitData struct {
	Exists bool `json:"exists"`
}
