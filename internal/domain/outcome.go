package domain

import "fmt"

// Outcome aggregates the notifications produced by one operation.
// It is a success exactly when it holds no error notifications.
//
// Outcomes are only built through Success, SuccessWith, Notify and NotifyAll;
// once returned they cannot be changed. Errors and Warnings hand out copies.
type Outcome struct {
	errors   []Notification
	warnings []Notification
}

// Success returns an Outcome with no notifications.
func Success() Outcome {
	return Outcome{}
}

// SuccessWith returns a successful Outcome carrying the warnings in ns, in
// order. It rejects any error-severity notification with ErrInvalidArgument:
// a failing Outcome can only be built through Notify or NotifyAll.
func SuccessWith(ns ...Notification) (Outcome, error) {
	for i, n := range ns {
		if n.Severity == SeverityError {
			return Outcome{}, fmt.Errorf("%w: error notification %q at index %d passed to success", ErrInvalidArgument, n.Code, i)
		}
	}
	var o Outcome
	o.addAll(ns)
	return o, nil
}

// Notify returns an Outcome holding n, routed by its severity.
func Notify(n Notification) Outcome {
	var o Outcome
	o.add(n)
	return o
}

// NotifyAll routes every notification in order. Mixed severities are
// accepted; warnings alone still yield a successful Outcome.
func NotifyAll(ns ...Notification) Outcome {
	var o Outcome
	o.addAll(ns)
	return o
}

func (o *Outcome) add(n Notification) {
	switch n.Severity {
	case SeverityError:
		o.errors = append(o.errors, n)
	case SeverityWarning:
		o.warnings = append(o.warnings, n)
	}
}

func (o *Outcome) addAll(ns []Notification) {
	for _, n := range ns {
		o.add(n)
	}
}

func (o Outcome) IsSuccess() bool { return len(o.errors) == 0 }

func (o Outcome) IsFailure() bool { return !o.IsSuccess() }

// Errors returns the error notifications in detection order.
func (o Outcome) Errors() []Notification {
	return append([]Notification(nil), o.errors...)
}

// Warnings returns the warning notifications in detection order.
func (o Outcome) Warnings() []Notification {
	return append([]Notification(nil), o.warnings...)
}

// Notifications returns errors followed by warnings.
func (o Outcome) Notifications() []Notification {
	all := make([]Notification, 0, len(o.errors)+len(o.warnings))
	all = append(all, o.errors...)
	return append(all, o.warnings...)
}
