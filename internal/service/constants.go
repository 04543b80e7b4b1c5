package service

const (
	// Coordinate display precision, matching the label under the grid
	CoordinateDecimals = 2

	// Default number of samples drawn in the flight path chart
	DefaultChartSamples = 40
)

// User-facing messages. Raw errors go to the log, never to the screen.
const (
	MsgInvalidInput   = "Please enter valid numerical values"
	MsgMissingFields  = "Please fill all the fields before saving."
	MsgSaveFailed     = "Could not save the profile. See the log for details."
	MsgNoProfiles     = "No profiles available"
	MsgProfileSaved   = "Profile saved"
	MsgProfileMissing = "Profile not found"
)
