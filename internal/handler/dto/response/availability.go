package response

import "blane-checkout/internal/domain/deal"

type SlotView struct {
	Time                string `json:"time"`
	Available           bool   `json:"available"`
	MaxCapacity         int    `json:"max_capacity"`
	CurrentReservations int    `json:"current_reservations"`
	RemainingCapacity   int    `json:"remaining_capacity"`
}

type AvailabilityResponse struct {
	Date  string     `json:"date"`
	Slots []SlotView `json:"slots"`
}

func NewAvailabilityResponse(date string, slots []deal.TimeSlot) AvailabilityResponse {
	views := make([]SlotView, 0, len(slots))
	for _, slot := range slots {
		views = append(views, SlotView{
			Time:                slot.Label(),
			Available:           slot.Available(),
			MaxCapacity:         slot.MaxCapacity(),
			CurrentReservations: slot.CurrentReservations(),
			RemainingCapacity:   slot.RemainingCapacity(),
		})
	}
	return AvailabilityResponse{Date: date, Slots: views}
}
