package domain

// Severity classifies a single Notification.
type Severity int

const (
	SeverityNone Severity = iota
	SeverityError
	SeverityWarning
)

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	}
	return "none"
}

// Notification is an immutable record of one detected condition.
// The description is held by value, so copies never share state and a
// Notification compares with ==. Error and warning notifications carry a
// non-empty code.
type Notification struct {
	Severity Severity
	Code     string

	description    string
	hasDescription bool
}

// NoNotification is the sentinel for a pure success. It is never stored
// in an Outcome.
var NoNotification = Notification{Severity: SeverityNone}

// NewError returns an error notification. code must not be empty.
func NewError(code, description string) Notification {
	return Notification{Severity: SeverityError, Code: code, description: description, hasDescription: true}
}

// NewWarning returns a warning notification. code must not be empty.
func NewWarning(code, description string) Notification {
	return Notification{Severity: SeverityWarning, Code: code, description: description, hasDescription: true}
}

// Description returns the description and whether one was set.
func (n Notification) Description() (string, bool) {
	return n.description, n.hasDescription
}

// Equal reports whether both notifications carry the same severity, code,
// and description.
func (n Notification) Equal(other Notification) bool {
	return n == other
}
