package fleet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/glidefleet/intake/pkg/intake"
	"github.com/glidefleet/intake/pkg/lookup"
)

var (
	_ lookup.Provider  = &Client{}
	_ intake.Submitter = &Client{}
)

// Client talks to the fleet dashboard backend's job-file API: equipment
// lookup during capture and job creation on submission.
type Client struct {
	client *http.Client

	url   string
	token string
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" {
		return nil, errors.New("invalid url")
	}

	c := &Client{
		client: http.DefaultClient,

		url: url,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) post(ctx context.Context, path string, body, result any) error {
	data, err := json.Marshal(body)

	if err != nil {
		return err
	}

	url := strings.TrimRight(c.url, "/") + path

	req, _ := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return convertError(resp)
	}

	return json.NewDecoder(resp.Body).Decode(result)
}

func (c *Client) FindEquipment(ctx context.Context, query lookup.Query) (*lookup.Match, error) {
	body := map[string]string{
		"vin":           strings.TrimSpace(query.VIN),
		"licensePlate":  strings.TrimSpace(query.Plate),
		"licenseRegion": strings.TrimSpace(query.Region),
		"companyName":   strings.TrimSpace(query.Company),
	}

	var response findResponse

	if err := c.post(ctx, "/jobFile/api/job/findEquipmentByVinOrLicense", body, &response); err != nil {
		return nil, err
	}

	if response.Error != "" {
		return nil, errors.New(response.Error)
	}

	if response.Data == nil || response.Data.Equipment == nil {
		return nil, nil
	}

	eq := response.Data.Equipment

	match := &lookup.Match{
		Equipment: &lookup.Equipment{
			Unit: eq.Unit,

			VIN:   eq.VIN,
			Year:  string(eq.Year),
			Make:  eq.Make,
			Model: eq.Model,

			LicensePlate:  eq.LicensePlateNumber,
			LicenseRegion: eq.LicenseRegion,
		},
	}

	if cust := response.Data.Customer; cust != nil {
		match.Customer = &lookup.Customer{
			Name: cust.Name,

			CarrierIDType: cust.CarrierIDType,
			CarrierIDNum:  cust.CarrierIDNum,
		}
	}

	return match, nil
}

func (c *Client) Submit(ctx context.Context, record intake.Record, createNewUnit bool) (*intake.Submission, error) {
	body := submitRequest{
		Intake:        record,
		CreateNewUnit: createNewUnit,
	}

	var response submitResponse

	if err := c.post(ctx, "/jobFile/api/job/intake", body, &response); err != nil {
		return nil, err
	}

	if response.Error != "" {
		return nil, errors.New(response.Error)
	}

	submission := &intake.Submission{}

	if response.Data != nil {
		if response.Data.NewJob != nil {
			submission.JobID = response.Data.NewJob.ID
		}

		submission.CustomerMatched = response.Data.CustomerMatched
		submission.EquipmentMatched = response.Data.EquipmentMatched
	}

	return submission, nil
}

// CheckExistingUnit reports whether a unit number is already on file for the
// given company. Failures are treated as "not found"; the check only feeds a
// confirmation prompt.
func (c *Client) CheckExistingUnit(ctx context.Context, companyName, unitNumber string) bool {
	body := map[string]string{
		"companyName": strings.TrimSpace(companyName),
		"unitNumber":  strings.TrimSpace(unitNumber),
	}

	var response existingUnitResponse

	if err := c.post(ctx, "/jobFile/api/job/checkExistingUnit", body, &response); err != nil {
		return false
	}

	if response.Error != "" || response.Data == nil {
		return false
	}

	return response.Data.Exists
}

func convertError(resp *http.Response) error {
	data, _ := io.ReadAll(resp.Body)

	if len(data) == 0 {
		return errors.New(http.StatusText(resp.StatusCode))
	}

	return errors.New(string(data))
}
