package types

// GroupName represents a credential group name in the password database
type GroupName string

// String returns the string representation
func (n GroupName) String() string {
	return string(n)
}

// OutputFormat represents the report output format
type OutputFormat string

const (
	// FormatText renders the report as aligned fixed-width text
	FormatText OutputFormat = "text"
	// FormatCSV renders the report as semicolon-delimited records
	FormatCSV OutputFormat = "csv"
)

// IsValid checks if the output format is valid
func (f OutputFormat) IsValid() bool {
	switch f {
	case FormatText, FormatCSV:
		return true
	default:
		return false
	}
}

// String returns the string representation
func (f OutputFormat) String() string {
	return string(f)
}
