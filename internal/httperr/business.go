package httperr

import "errors"

// BusinessError is a recoverable business-rule violation. Handlers map the
// code to an HTTP status; anything else propagates as an internal error.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func BusinessCode(err error) (string, bool) {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code, true
	}
	return "", false
}

// Codes shared between the booking usecases and handlers.
const (
	CodeShopNotFound      = "shop_not_found"
	CodeNotConfigured     = "not_configured"
	CodeBookingNotFound   = "booking_not_found"
	CodeServiceNotFound   = "service_not_found"
	CodeInvalidTransition = "invalid_transition"
	CodeInvalidStatus     = "invalid_status"
	CodeInvalidSchedule   = "invalid_schedule_config"
)
