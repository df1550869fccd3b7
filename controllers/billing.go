package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunalsharma05/garagehub/models"
	"github.com/kunalsharma05/garagehub/services"
	"github.com/kunalsharma05/garagehub/utils"
)

type BillingController struct {
	billing *services.BillingService
}

func NewBillingController(billing *services.BillingService) *BillingController {
	return &BillingController{billing: billing}
}

// GetByUser handles GET /api/billing/users/:userId
func (ctl *BillingController) GetByUser(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID < 1 {
		return utils.SendError(c, utils.InvalidInputf("invalid user id"))
	}
	billings, err := ctl.billing.GetByUser(c.Context(), uint(userID))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(billings)
}

// GetByProvider handles GET /api/billing/provider/:providerName
func (ctl *BillingController) GetByProvider(c *fiber.Ctx) error {
	billings, err := ctl.billing.GetByProviderName(c.Context(), c.Params("providerName"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(billings)
}

// GetByAppointment handles GET /api/billing/appointment/:appointmentId.
// Synthesizes a billing record when the appointment is completed and none
// exists yet; an unknown appointment yields an empty list.
func (ctl *BillingController) GetByAppointment(c *fiber.Ctx) error {
	appointmentID, err := c.ParamsInt("appointmentId")
	if err != nil || appointmentID < 1 {
		return utils.SendError(c, utils.InvalidInputf("invalid appointment id"))
	}
	billings, err := ctl.billing.GetOrCreateByAppointment(c.Context(), uint(appointmentID))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(billings)
}

// Create handles POST /api/billing/create
func (ctl *BillingController) Create(c *fiber.Ctx) error {
	var billing models.Billing
	if err := c.BodyParser(&billing); err != nil {
		return utils.SendError(c, utils.InvalidInputf("cannot parse request body"))
	}
	saved, err := ctl.billing.Create(c.Context(), &billing)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// CreateFromAppointment handles POST /api/billing/create-from-appointment/:appointmentId
func (ctl *BillingController) CreateFromAppointment(c *fiber.Ctx) error {
	appointmentID, err := c.ParamsInt("appointmentId")
	if err != nil || appointmentID < 1 {
		return utils.SendError(c, utils.InvalidInputf("invalid appointment id"))
	}
	billing, err := ctl.billing.CreateFromAppointment(c.Context(), uint(appointmentID))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(billing)
}

// Pay handles PUT /api/billing/:id/pay
func (ctl *BillingController) Pay(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.SendError(c, utils.InvalidInputf("invalid billing id"))
	}

	var body struct {
		PaymentStatus string `json:"paymentStatus"`
		PaymentMethod string `json:"paymentMethod"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.SendError(c, utils.InvalidInputf("cannot parse request body"))
	}

	billing, err := ctl.billing.RecordPayment(c.Context(), uint(id), body.PaymentStatus, body.PaymentMethod)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(billing)
}

// UpdateStatus handles PUT /api/billing/:id/status
func (ctl *BillingController) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.SendError(c, utils.InvalidInputf("invalid billing id"))
	}

	var body struct {
		PaymentStatus string `json:"paymentStatus"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.SendError(c, utils.InvalidInputf("cannot parse request body"))
	}

	billing, err := ctl.billing.UpdatePaymentStatus(c.Context(), uint(id), body.PaymentStatus)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(billing)
}

// GetPaid handles GET /api/billing/paid
func (ctl *BillingController) GetPaid(c *fiber.Ctx) error {
	billings, err := ctl.billing.GetByPaymentStatus(c.Context(), string(models.PaymentPaid))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(billings)
}

// GetByStatus handles GET /api/billing/status/:paymentStatus
func (ctl *BillingController) GetByStatus(c *fiber.Ctx) error {
	billings, err := ctl.billing.GetByPaymentStatus(c.Context(), c.Params("paymentStatus"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(billings)
}

// RepairLinks handles POST /api/billing/fix-appointment-ids, the one-shot
// maintenance pass over billing rows that lost their appointment reference.
func (ctl *BillingController) RepairLinks(c *fiber.Ctx) error {
	summary, err := ctl.billing.RepairMissingAppointmentLinks(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(summary)
}
