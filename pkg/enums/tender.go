package enums

import "fmt"

// TenderStatus represents the canonical tender_status enum in Postgres.
// Accepted tenders count as realized revenue.
type TenderStatus string

const (
	TenderStatusPending  TenderStatus = "pending"
	TenderStatusAccepted TenderStatus = "accepted"
	TenderStatusRejected TenderStatus = "rejected"
)

var validTenderStatuses = []TenderStatus{
	TenderStatusPending,
	TenderStatusAccepted,
	TenderStatusRejected,
}

// String implements fmt.Stringer.
func (s TenderStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known TenderStatus.
func (s TenderStatus) IsValid() bool {
	for _, candidate := range validTenderStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseTenderStatus converts raw input into a TenderStatus.
func ParseTenderStatus(value string) (TenderStatus, error) {
	for _, candidate := range validTenderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid tender status %q", value)
}
