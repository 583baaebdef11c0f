package reporter

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/LerianStudio/lib-commons/commons/log"
	cn "github.com/Rendinex/VTCRendinex/constant"
	libErr "github.com/Rendinex/VTCRendinex/error"
	"github.com/Rendinex/VTCRendinex/model"
	"github.com/Rendinex/VTCRendinex/pkg"
	"github.com/google/uuid"
)

// LicenseSource returns the raw getLicenses() output tuple
//
//go:generate mockgen --destination=source_mock.go --package=reporter . LicenseSource
type LicenseSource interface {
	GetLicenses(ctx context.Context) ([]any, error)
}

// Reporter prints the license records held by the RVTC contract
type Reporter struct {
	endpoint string
	source   LicenseSource
	out      io.Writer
	logger   log.Logger
}

// New creates a new reporter writing to out
func New(endpoint string, source LicenseSource, out io.Writer, logger log.Logger) *Reporter {
	return &Reporter{
		endpoint: endpoint,
		source:   source,
		out:      out,
		logger:   logger,
	}
}

// Run echoes the endpoint, fetches the licenses once and prints them. Every
// failure is logged and returned; Run never panics.
func (r *Reporter) Run(ctx context.Context) (err error) {
	l := r.logger.WithFields("run_id", uuid.NewString())

	defer func() {
		if rec := recover(); rec != nil {
			err = pkg.ValidateInternalError(fmt.Errorf("panic: %v", rec), "Reporter")
			l.Errorf("Error fetching licenses: %v", rec)
		}
	}()

	PrintEndpoint(r.out, r.endpoint)

	values, err := r.source.GetLicenses(ctx)
	if err != nil {
		l.Errorf("Error fetching licenses: %v", err)

		var callErr *libErr.ContractCallError
		if !errors.As(err, &callErr) {
			err = &libErr.ContractCallError{Method: cn.GetLicensesMethod, Err: err}
		}

		return err
	}

	l.Debugf("Raw License Data: %v", values)

	report, err := DecodeReport(values)
	if err != nil {
		l.Errorf("Unexpected result format: %v", values)
		return err
	}

	r.print(report)

	l.Infof("Reported %d licenses", report.Len())

	return nil
}

// PrintEndpoint writes the startup line naming the node endpoint. An unset
// endpoint is shown as "undefined".
func PrintEndpoint(out io.Writer, endpoint string) {
	if endpoint == "" {
		endpoint = cn.UnsetEndpoint
	}

	fmt.Fprintf(out, "Provider URL: %s\n", endpoint)
}

func (r *Reporter) print(report model.LicenseReport) {
	fmt.Fprintln(r.out, "Licenses Information:")

	for i := 0; i < report.Len(); i++ {
		license := report.License(i)

		fmt.Fprintf(r.out, "License ID: %v\n", license.ID)
		fmt.Fprintf(r.out, "Raw Funding Goal: %v\n", license.FundingGoal)
		fmt.Fprintf(r.out, "Raw Funds Raised: %v\n", license.FundsRaised)
		fmt.Fprintf(r.out, "Funding Completed: %t\n", license.FundingCompleted)
	}
}
