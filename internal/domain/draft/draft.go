// Package draft owns the mutable in-progress checkout form: contact fields,
// quantity under an availability ceiling, slot/period selection, and the
// submission state machine.
package draft

import (
	"errors"
	"strings"
	"sync/atomic"
	"time"

	"blane-checkout/internal/domain/deal"
)

var ErrSubmissionInFlight = errors.New("submission already in flight")

// Draft is one customer's in-progress transaction form. Quantity keeps the
// user's last explicit choice; the effective quantity is clamped by the
// availability ceiling, down but never up.
type Draft struct {
	name        string
	email       string
	phoneDial   string
	phoneNumber string

	quantity    int
	maxQuantity int

	date      *time.Time
	timeLabel string
	period    *deal.Period

	address string
	city    string
	comment string

	method deal.PaymentMethod

	fieldErrors FieldErrors
	submitting  atomic.Bool
}

func New() *Draft {
	return &Draft{
		quantity:    1,
		maxQuantity: 1,
		fieldErrors: FieldErrors{},
	}
}

func (d *Draft) SetContact(name, email, phoneDial, phoneNumber string) {
	d.name = strings.TrimSpace(name)
	d.email = strings.TrimSpace(email)
	d.phoneDial = strings.TrimSpace(phoneDial)
	d.phoneNumber = strings.TrimSpace(phoneNumber)
}

func (d *Draft) SetDelivery(address, city string) {
	d.address = strings.TrimSpace(address)
	d.city = strings.TrimSpace(city)
}

func (d *Draft) SetComment(comment string) {
	d.comment = strings.TrimSpace(comment)
}

func (d *Draft) SetMethod(m deal.PaymentMethod) {
	d.method = m
}

func (d *Draft) SetDate(date time.Time, timeLabel string) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	d.date = &day
	d.timeLabel = strings.TrimSpace(timeLabel)
	d.period = nil
}

func (d *Draft) SetPeriod(p deal.Period) {
	d.period = &p
	d.date = nil
	d.timeLabel = ""
}

// SetQuantity records the user's explicit choice with a floor of 1. Clamping
// against the ceiling happens on read so the choice can be restored when the
// ceiling rises again.
func (d *Draft) SetQuantity(q int) {
	if q < 1 {
		q = 1
	}
	d.quantity = q
}

// SetMaxQuantity installs a new availability ceiling. The effective quantity
// is clamped down immediately and never silently increased.
func (d *Draft) SetMaxQuantity(maxQty int) {
	if maxQty < 0 {
		maxQty = 0
	}
	d.maxQuantity = maxQty
}

// Quantity is the effective quantity: the explicit choice bounded by the
// current ceiling. A ceiling of zero blocks submission entirely.
func (d *Draft) Quantity() int {
	if d.quantity > d.maxQuantity {
		return d.maxQuantity
	}
	return d.quantity
}

func (d *Draft) RequestedQuantity() int { return d.quantity }
func (d *Draft) MaxQuantity() int       { return d.maxQuantity }

func (d *Draft) Name() string               { return d.name }
func (d *Draft) Email() string              { return d.email }
func (d *Draft) PhoneDial() string          { return d.phoneDial }
func (d *Draft) PhoneNumber() string        { return d.phoneNumber }
func (d *Draft) Date() *time.Time           { return d.date }
func (d *Draft) TimeLabel() string          { return d.timeLabel }
func (d *Draft) Period() *deal.Period       { return d.period }
func (d *Draft) Address() string            { return d.address }
func (d *Draft) City() string               { return d.city }
func (d *Draft) Comment() string            { return d.comment }
func (d *Draft) Method() deal.PaymentMethod { return d.method }

func (d *Draft) Errors() FieldErrors {
	return d.fieldErrors
}

func (d *Draft) SetErrors(errs FieldErrors) {
	if errs == nil {
		errs = FieldErrors{}
	}
	d.fieldErrors = errs
}

func (d *Draft) ClearErrors() {
	d.fieldErrors = FieldErrors{}
}

// BeginSubmit reserves the draft's single submission slot. A second submit
// attempt while one is pending fails locally before any network call.
func (d *Draft) BeginSubmit() error {
	if !d.submitting.CompareAndSwap(false, true) {
		return ErrSubmissionInFlight
	}
	return nil
}

func (d *Draft) EndSubmit() {
	d.submitting.Store(false)
}
