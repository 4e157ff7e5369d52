package checkout

import (
	"blane-checkout/internal/domain/deal"
	"blane-checkout/internal/domain/draft"
	"blane-checkout/internal/pkg/phone"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateDraft runs the full isSubmittable contract and returns the
// per-field error map. Submission always re-validates; a stale snapshot of
// this result is never trusted.
func (c *controllerImpl) validateDraft(d *deal.Deal, dr *draft.Draft) draft.FieldErrors {
	fieldErrors := draft.FieldErrors{}

	if dr.Name() == "" {
		fieldErrors.Add("name", "name is required")
	}
	if err := validate.Var(dr.Email(), "required,email"); err != nil {
		fieldErrors.Add("email", "a valid email is required")
	}
	if err := phone.Validate(dr.PhoneDial(), dr.PhoneNumber(), c.defaultPhoneRegion); err != nil {
		fieldErrors.Add("phone", "a valid phone number for the selected country is required")
	}

	if !dr.Method().IsValid() {
		fieldErrors.Add("payment_method", "a payment method is required")
	} else if !d.MethodEnabled(dr.Method()) {
		fieldErrors.Add("payment_method", "payment method not available for this deal")
	}

	for field, messages := range selectionErrors(d, dr) {
		for _, message := range messages {
			fieldErrors.Add(field, message)
		}
	}

	if d.Kind() == deal.KindOrder && !d.IsDigital() {
		if dr.Address() == "" {
			fieldErrors.Add("delivery_address", "a delivery address is required")
		}
		if dr.City() == "" {
			fieldErrors.Add("city", "a delivery city is required")
		}
	}

	if dr.Quantity() < 1 {
		fieldErrors.Add("quantity", "no remaining capacity for the selected quantity")
	}

	return fieldErrors
}

// selectionErrors reports the slot/period fields a reservation still needs.
// Checked before the ceiling is resolved, since there is nothing to resolve
// against without a selection.
func selectionErrors(d *deal.Deal, dr *draft.Draft) draft.FieldErrors {
	fieldErrors := draft.FieldErrors{}
	if d.Kind() != deal.KindReservation {
		return fieldErrors
	}

	switch d.TimeModel() {
	case deal.TimeModelSlots:
		if dr.Date() == nil {
			fieldErrors.Add("date", "a date is required")
		}
		if dr.TimeLabel() == "" {
			fieldErrors.Add("time", "a time is required")
		}
	case deal.TimeModelPeriods:
		if dr.Period() == nil {
			fieldErrors.Add("period", "a period is required")
		}
	}
	return fieldErrors
}
