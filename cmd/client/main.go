package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/glidefleet/intake/pkg/client"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:8080", "server url")
	tokenFlag := flag.String("token", "", "server token")
	stateFlag := flag.String("state", "", "session state")
	submitFlag := flag.Bool("submit", false, "submit the reconciled record")

	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: client [flags] kind=photo.jpg ...")
		fmt.Fprintln(os.Stderr, "kinds: license, company, dotmc, vin, unit, odometer")
		os.Exit(2)
	}

	ctx := context.Background()

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	var captures []client.Capture

	for _, arg := range flag.Args() {
		kind, path, ok := strings.Cut(arg, "=")

		if !ok {
			fmt.Fprintln(os.Stderr, "invalid capture argument: "+arg)
			os.Exit(2)
		}

		data, err := os.ReadFile(path)

		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		captures = append(captures, client.Capture{
			Kind: kind,

			Name:        filepath.Base(path),
			Image:       data,
			ContentType: mime.TypeByExtension(filepath.Ext(path)),
		})
	}

	outcome, err := c.Intake.Reconcile(ctx, client.ReconcileRequest{
		State: *stateFlag,

		Captures: captures,
	})

	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	print(outcome)

	if !*submitFlag || outcome.Next != "review" {
		return
	}

	record := outcome.Record

	createNewUnit := true

	if record.CompanyName != "" && record.UnitNumber != "" {
		check, err := c.Intake.CheckUnit(ctx, client.CheckUnitRequest{
			CompanyName: record.CompanyName,
			UnitNumber:  record.UnitNumber,
		})

		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}

		if check.Exists {
			fmt.Fprintln(os.Stderr, "unit "+record.UnitNumber+" is already on file; attaching to it")
			createNewUnit = false
		}
	}

	submission, err := c.Intake.Submit(ctx, client.SubmitRequest{
		Record: client.SubmitRecord{
			CompanyName: record.CompanyName,

			CarrierIDType: string(record.CarrierIDType),
			CarrierIDNum:  record.CarrierIDNum,

			UnitNumber: record.UnitNumber,

			LicensePlate:  record.LicensePlate,
			LicenseRegion: record.LicenseRegion,

			VIN: record.VIN,

			Year:  record.Year,
			Make:  record.Make,
			Model: record.Model,

			Odometer: record.Odometer,
		},

		CreateNewUnit: createNewUnit,
	})

	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	print(submission)
}

func print(v any) {
	data, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(data))
}
