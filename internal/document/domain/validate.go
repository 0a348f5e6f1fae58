package domain

import "strings"

// ValidateDraft checks the fields every billable document draft requires:
// both party names and at least one line item.
func ValidateDraft(business, client Party, items []LineItem) error {
	var missing []string
	if strings.TrimSpace(business.Name) == "" {
		missing = append(missing, "businessInfo.name")
	}
	if strings.TrimSpace(client.Name) == "" {
		missing = append(missing, "clientInfo.name")
	}
	if len(items) == 0 {
		missing = append(missing, "items")
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}
	return nil
}
