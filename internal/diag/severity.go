package diag

// Severity orders diagnostics. Only SevError blocks emission of a tree.
type Severity uint8

const (
	SevInfo Severity = iota
	// SevWarning marks valid output that may still surprise, such as
	// identifiers that are not in NFC.
	SevWarning
	SevError
)

var severityNames = [...]string{
	SevInfo:    "INFO",
	SevWarning: "WARNING",
	SevError:   "ERROR",
}

func (s Severity) String() string {
	if int(s) < len(severityNames) {
		return severityNames[s]
	}
	return "UNKNOWN"
}
