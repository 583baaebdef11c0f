package model

import "math/big"

// LicenseReport is the decoded getLicenses() tuple. The four slices are
// aligned by index; IDs defines the number of rows.
type LicenseReport struct {
	IDs              []*big.Int
	FundingGoals     []*big.Int
	FundsRaised      []*big.Int
	FundingCompleted []bool
}

// License is one row of a LicenseReport.
type License struct {
	ID               *big.Int
	FundingGoal      *big.Int
	FundsRaised      *big.Int
	FundingCompleted bool
}

// Len returns the number of licenses in the report.
func (r LicenseReport) Len() int {
	return len(r.IDs)
}

// License returns the row at index i.
func (r LicenseReport) License(i int) License {
	return License{
		ID:               r.IDs[i],
		FundingGoal:      r.FundingGoals[i],
		FundsRaised:      r.FundsRaised[i],
		FundingCompleted: r.FundingCompleted[i],
	}
}
