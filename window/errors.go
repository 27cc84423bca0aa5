package window

import "fmt"

// RegistrationError reports a duplicate or cross-owned registration: a
// plot registered twice, a plot whose axis belongs to another tab, or a
// second tab with an identity already taken on the window.
type RegistrationError struct {
	Subject string
	Reason  string
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("window: cannot register %s: %s", e.Subject, e.Reason)
}

// LayoutError reports a subplot grid request that conflicts with axes
// already placed on the tab.
type LayoutError struct {
	Tab    string
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("window: tab %q: %s", e.Tab, e.Reason)
}
