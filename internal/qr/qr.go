package qr

// Result contains the decoded payloads of all QR symbols found in an image.
type Result struct {
	// Count is the number of distinct decoded payloads.
	Count int `json:"count"`

	// Data holds the decoded strings in first-seen order, without
	// duplicates or empty entries.
	Data []string `json:"data"`
}

// Status describes the availability of the QR detection capability.
type Status struct {
	// Available reports whether QR detection can be performed.
	Available bool

	// Reason explains why the capability is unavailable. Empty when
	// Available is true.
	Reason string
}
