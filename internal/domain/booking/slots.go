package booking

import (
	"time"

	"github.com/shearbook/barbershop-api/internal/httperr"
	"github.com/shearbook/barbershop-api/internal/models"
)

const timeLayout = "15:04"

// Slot is one bookable time of day with its remaining capacity.
type Slot struct {
	Time           string `json:"time"`
	RemainingSlots int    `json:"remaining_slots"`
}

// GenerateSlots walks the shop's operating window from start to end in
// slot-period steps and joins each candidate time against the occupancy
// counts for the day. A slot landing exactly on the end time is included.
//
// A zero or negative period would never advance, so it is rejected up front
// instead of looping forever.
func GenerateSlots(settings *models.ShopSettings, occupancy map[string]int) ([]Slot, error) {
	if settings.SlotPeriodMinutes <= 0 {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidSchedule)
	}

	start, err := time.Parse(timeLayout, settings.StartTime)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidSchedule)
	}
	end, err := time.Parse(timeLayout, settings.EndTime)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidSchedule)
	}
	if !start.Before(end) {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidSchedule)
	}

	period := time.Duration(settings.SlotPeriodMinutes) * time.Minute

	var slots []Slot
	for cur := start; !cur.After(end); cur = cur.Add(period) {
		key := cur.Format(timeLayout)

		remaining := settings.MaxBookingsPerSlot - occupancy[key]
		if remaining < 0 {
			remaining = 0
		}

		slots = append(slots, Slot{
			Time:           key,
			RemainingSlots: remaining,
		})
	}

	return slots, nil
}

// ValidSlotTime reports whether raw parses as HH:MM.
func ValidSlotTime(raw string) bool {
	_, err := time.Parse(timeLayout, raw)
	return err == nil
}

// ValidDate reports whether raw parses as YYYY-MM-DD.
func ValidDate(raw string) bool {
	_, err := time.Parse("2006-01-02", raw)
	return err == nil
}
