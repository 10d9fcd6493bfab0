package response

import (
	"fmt"
	"net/http"

	"github.com/ricirt/notification-pattern/internal/domain"
)

const (
	SuccessTitle    = "Success"
	BadRequestTitle = "Bad Request"
	BadRequestType  = "https://tools.ietf.org/html/rfc7231#section-6.5.1"

	ErrorsExtension   = "errors"
	WarningsExtension = "warnings"
)

// ToResponse maps a finished Outcome to a problem body when it failed and
// to a success body otherwise. HTTP layers should call this.
func ToResponse(o domain.Outcome) Details {
	if o.IsFailure() {
		return problem(o)
	}
	return success(o)
}

// ToSuccess maps a successful Outcome. Warnings are attached only when
// there are some.
func ToSuccess(o domain.Outcome) (Details, error) {
	if o.IsFailure() {
		return Details{}, fmt.Errorf("%w: can't convert problem result to success", domain.ErrInvalidState)
	}
	return success(o), nil
}

// ToProblem maps a failed Outcome. Both the errors and the warnings
// extensions are always present.
func ToProblem(o domain.Outcome) (Details, error) {
	if o.IsSuccess() {
		return Details{}, fmt.Errorf("%w: can't convert success result to problem", domain.ErrInvalidState)
	}
	return problem(o), nil
}

// StatusProblem builds a problem without extensions for failures raised by the HTTP
// layer itself rather than by an operation.
func StatusProblem(status int, title, typ string) Details {
	return Details{Type: typ, Title: title, Status: status}
}

func success(o domain.Outcome) Details {
	d := Details{Title: SuccessTitle, Status: http.StatusOK}
	if warnings := o.Warnings(); len(warnings) != 0 {
		d.Extensions = []Extension{{Name: WarningsExtension, Items: entries(warnings)}}
	}
	return d
}

func problem(o domain.Outcome) Details {
	return Details{
		Type:   BadRequestType,
		Title:  BadRequestTitle,
		Status: http.StatusBadRequest,
		Extensions: []Extension{
			{Name: ErrorsExtension, Items: entries(o.Errors())},
			{Name: WarningsExtension, Items: entries(o.Warnings())},
		},
	}
}

func entries(ns []domain.Notification) []Entry {
	out := make([]Entry, len(ns))
	for i, n := range ns {
		out[i] = Entry{Code: n.Code}
		if desc, ok := n.Description(); ok {
			out[i].Description = &desc
		}
	}
	return out
}
