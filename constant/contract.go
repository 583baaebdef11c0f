package constant

// Deployed RVTC contract queried by the reporter
const (
	// ContractAddress is the fixed address of the deployed RVTC contract
	ContractAddress = "0xdE62bd2Aba018c8e4EE2F8f81c117fE56b9B3A83"
	// DefaultABIPath is where the Foundry build writes the RVTC artifact
	DefaultABIPath = "out/VTCContract.sol/RVTC.json"
	// EmbeddedABISource is the cache key used for the built-in interface
	EmbeddedABISource = "embedded:RVTC"
)

// License listing accessor
const (
	// GetLicensesMethod is the contract accessor returning the license arrays
	GetLicensesMethod = "getLicenses"
	// MinLicenseReportOutputs is the smallest tuple the reporter can print
	MinLicenseReportOutputs = 4
)
