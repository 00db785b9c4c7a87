package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	domain "github.com/shearbook/barbershop-api/internal/domain/booking"
	"github.com/shearbook/barbershop-api/internal/httperr"
	"github.com/shearbook/barbershop-api/internal/httpresp"
	"github.com/shearbook/barbershop-api/internal/metrics"
	ucBooking "github.com/shearbook/barbershop-api/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	slotsUC    *ucBooking.GetAvailableSlots
	createUC   *ucBooking.CreateBooking
	statusUC   *ucBooking.UpdateBookingStatus
	listUC     *ucBooking.ListBookings
	disableUC  *ucBooking.DisableSlot
	earningsUC *ucBooking.GetEarnings
	metrics    *metrics.Metrics
}

func NewBookingHandler(
	slotsUC *ucBooking.GetAvailableSlots,
	createUC *ucBooking.CreateBooking,
	statusUC *ucBooking.UpdateBookingStatus,
	listUC *ucBooking.ListBookings,
	disableUC *ucBooking.DisableSlot,
	earningsUC *ucBooking.GetEarnings,
	m *metrics.Metrics,
) *BookingHandler {
	return &BookingHandler{
		slotsUC:    slotsUC,
		createUC:   createUC,
		statusUC:   statusUC,
		listUC:     listUC,
		disableUC:  disableUC,
		earningsUC: earningsUC,
		metrics:    m,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	Date       string   `json:"date" binding:"required"`
	Time       string   `json:"time" binding:"required"`
	UserID     string   `json:"user_id" binding:"required"`
	ServiceIDs []string `json:"service_ids" binding:"required,min=1"`
	TotalPrice float64  `json:"total_price"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type DisableSlotRequest struct {
	Time string `json:"time" binding:"required"`
	Date string `json:"date"`
}

// ======================================================
// AVAILABLE SLOTS
// ======================================================

func (h *BookingHandler) GetAvailableSlots(c *gin.Context) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}

	date := c.Query("date")
	if !domain.ValidDate(date) {
		httperr.BadRequest(c, "invalid_date", "Date is required in YYYY-MM-DD format.")
		return
	}

	slots, err := h.slotsUC.Execute(c.Request.Context(), shopID, date)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":  date,
		"slots": slots,
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	if !domain.ValidDate(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}
	if !domain.ValidSlotTime(req.Time) {
		httperr.BadRequest(c, "invalid_time", "Time must be HH:MM.")
		return
	}

	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		httperr.BadRequest(c, "invalid_user_id", "User id must be a UUID.")
		return
	}

	serviceIDs := make([]uuid.UUID, 0, len(req.ServiceIDs))
	for _, raw := range req.ServiceIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			httperr.BadRequest(c, "invalid_service_id", "Service ids must be UUIDs.")
			return
		}
		serviceIDs = append(serviceIDs, id)
	}

	result, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		ShopID:     shopID,
		UserID:     userID,
		Date:       req.Date,
		Time:       req.Time,
		ServiceIDs: serviceIDs,
		TotalPrice: req.TotalPrice,
	})
	if err != nil {
		h.metrics.BookingOutcomes.WithLabelValues("rejected").Inc()
		writeBookingError(c, err)
		return
	}

	if result.Outcome == ucBooking.OutcomeNoCapacity {
		h.metrics.BookingOutcomes.WithLabelValues("no_capacity").Inc()
		httpresp.OK(c, gin.H{
			"status":  result.Outcome,
			"message": "No slots available for the selected time.",
		})
		return
	}

	h.metrics.BookingOutcomes.WithLabelValues("confirmed").Inc()
	httpresp.Created(c, gin.H{
		"status":     result.Outcome,
		"booking_id": result.BookingID,
		"message":    "Booking confirmed.",
	})
}

// ======================================================
// UPDATE STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	bookingID, err := uuid.Parse(c.Param("booking_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Booking id must be a UUID.")
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Status is required.")
		return
	}

	b, err := h.statusUC.Execute(c.Request.Context(), bookingID, req.Status)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"booking_id": b.ID,
		"status":     b.Status,
	})
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}

	status := c.Query("status")
	if status == "" {
		httperr.BadRequest(c, "missing_status", "A booking status filter is required.")
		return
	}

	date := c.Query("date")
	if date != "" && !domain.ValidDate(date) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	bookings, err := h.listUC.Execute(c.Request.Context(), shopID, date, status)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.List(c, bookings)
}

// ======================================================
// DISABLE SLOT
// ======================================================

func (h *BookingHandler) DisableSlot(c *gin.Context) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}

	var req DisableSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Time is required.")
		return
	}

	if !domain.ValidSlotTime(req.Time) {
		httperr.BadRequest(c, "invalid_time", "Time must be HH:MM.")
		return
	}
	if req.Date != "" && !domain.ValidDate(req.Date) {
		httperr.BadRequest(c, "invalid_date", "Date must be YYYY-MM-DD.")
		return
	}

	if err := h.disableUC.Execute(c.Request.Context(), shopID, req.Time, req.Date); err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"message": "Time slot disabled successfully."})
}

// ======================================================
// EARNINGS
// ======================================================

func (h *BookingHandler) Earnings(c *gin.Context) {
	shopID, ok := shopIDParam(c)
	if !ok {
		return
	}

	startDate := c.Query("start_date")
	endDate := c.Query("end_date")

	if startDate != "" && !domain.ValidDate(startDate) {
		httperr.BadRequest(c, "invalid_date", "start_date must be YYYY-MM-DD.")
		return
	}
	if endDate != "" && !domain.ValidDate(endDate) {
		httperr.BadRequest(c, "invalid_date", "end_date must be YYYY-MM-DD.")
		return
	}

	result, err := h.earningsUC.Execute(c.Request.Context(), shopID, startDate, endDate)
	if err != nil {
		writeBookingError(c, err)
		return
	}

	httpresp.OK(c, result)
}

// ======================================================
// HELPERS
// ======================================================

func shopIDParam(c *gin.Context) (uuid.UUID, bool) {
	shopID, err := uuid.Parse(c.Param("shop_id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_shop_id", "Shop id must be a UUID.")
		return uuid.Nil, false
	}
	return shopID, true
}

func writeBookingError(c *gin.Context, err error) {
	code, ok := httperr.BusinessCode(err)
	if !ok {
		httperr.Internal(c, "internal_error", "Something went wrong.")
		return
	}

	switch code {
	case httperr.CodeShopNotFound:
		httperr.NotFound(c, code, "Shop profile not found.")
	case httperr.CodeBookingNotFound:
		httperr.NotFound(c, code, "Booking not found.")
	case httperr.CodeNotConfigured:
		httperr.BadRequest(c, code, "Booking settings not configured for this shop.")
	case httperr.CodeServiceNotFound:
		httperr.BadRequest(c, code, "One of the services does not belong to this shop.")
	case httperr.CodeInvalidTransition:
		httperr.BadRequest(c, code, "Booking status can only be updated while it is booked.")
	case httperr.CodeInvalidStatus:
		httperr.BadRequest(c, code, "Invalid booking status value.")
	case httperr.CodeInvalidSchedule:
		httperr.Internal(c, code, "Shop schedule configuration is invalid.")
	default:
		httperr.BadRequest(c, code, "Request rejected.")
	}
}
