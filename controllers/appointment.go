package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kunalsharma05/garagehub/models"
	"github.com/kunalsharma05/garagehub/services"
	"github.com/kunalsharma05/garagehub/utils"
)

type AppointmentController struct {
	appointments *services.AppointmentService
	providers    *services.ProviderService
}

func NewAppointmentController(appointments *services.AppointmentService, providers *services.ProviderService) *AppointmentController {
	return &AppointmentController{appointments: appointments, providers: providers}
}

// BookAppointmentRequest is the booking payload. Date and time arrive as
// strings and are validated here, before anything touches the store.
type BookAppointmentRequest struct {
	Username      string `json:"username"`
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	VehicleName   string `json:"vehicleName"`
	VehicleNumber string `json:"vehicleNumber"`
	ServiceType   string `json:"serviceType"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Status        string `json:"status"`
	ProviderID    *uint  `json:"provider_id"`
}

// AppointmentResponse flattens the user and provider snapshots for the client.
type AppointmentResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Phone          string `json:"phone"`
	VehicleName    string `json:"vehicleName"`
	VehicleNumber  string `json:"vehicleNumber"`
	ServiceType    string `json:"serviceType"`
	Date           string `json:"date"`
	Time           string `json:"time"`
	Status         string `json:"status"`
	UserName       string `json:"userName,omitempty"`
	Username       string `json:"username,omitempty"`
	GarageName     string `json:"garageName,omitempty"`
	OwnerName      string `json:"ownerName,omitempty"`
	ProviderID     *uint  `json:"providerId,omitempty"`
	CreatedAt      string `json:"createdAt"`
}

func toAppointmentResponse(a *models.Appointment) AppointmentResponse {
	resp := AppointmentResponse{
		ID:            a.ID,
		Name:          a.Name,
		Phone:         a.Phone,
		VehicleName:   a.VehicleName,
		VehicleNumber: a.VehicleNumber,
		ServiceType:   a.ServiceType,
		Date:          a.DateString(),
		Time:          a.Time,
		Status:        string(a.Status),
		CreatedAt:     a.CreatedAt.Format(time.RFC3339),
	}
	if resp.Status == "" {
		resp.Status = string(models.StatusPending)
	}
	if a.User != nil {
		resp.UserName = a.User.Name
		resp.Username = a.User.Username
	}
	if a.Provider != nil {
		resp.GarageName = a.Provider.GarageName
		resp.OwnerName = a.Provider.OwnerName
		resp.ProviderID = &a.Provider.ID
	}
	return resp
}

func toAppointmentResponses(appointments []models.Appointment) []AppointmentResponse {
	responses := make([]AppointmentResponse, 0, len(appointments))
	for i := range appointments {
		responses = append(responses, toAppointmentResponse(&appointments[i]))
	}
	return responses
}

// Book handles POST /appointment/book
func (ctl *AppointmentController) Book(c *fiber.Ctx) error {
	var req BookAppointmentRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, utils.InvalidInputf("cannot parse request body"))
	}
	if req.Username == "" {
		return utils.SendError(c, utils.InvalidInputf("username is required"))
	}

	appointment := models.Appointment{
		Name:          req.Name,
		Phone:         req.Phone,
		VehicleName:   req.VehicleName,
		VehicleNumber: req.VehicleNumber,
		ServiceType:   req.ServiceType,
		Status:        models.AppointmentStatus(req.Status),
		ProviderID:    req.ProviderID,
	}

	if req.Date != "" {
		date, err := utils.ParseAppointmentDate("date", req.Date)
		if err != nil {
			return utils.SendError(c, err)
		}
		appointment.Date = date
	}
	if req.Time != "" {
		t, err := utils.ParseAppointmentTime("time", req.Time)
		if err != nil {
			return utils.SendError(c, err)
		}
		appointment.Time = t
	}

	saved, err := ctl.appointments.Book(c.Context(), &appointment, req.Username)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(toAppointmentResponse(saved))
}

// GetAll handles GET /appointment/all
func (ctl *AppointmentController) GetAll(c *fiber.Ctx) error {
	appointments, err := ctl.appointments.GetAll(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(toAppointmentResponses(appointments))
}

// GetByOwner handles GET /appointment/owner/:ownerName
func (ctl *AppointmentController) GetByOwner(c *fiber.Ctx) error {
	appointments, err := ctl.appointments.GetByOwnerName(c.Context(), c.Params("ownerName"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(toAppointmentResponses(appointments))
}

// GetByProvider handles GET /appointment/provider/:providerId
func (ctl *AppointmentController) GetByProvider(c *fiber.Ctx) error {
	providerID, err := c.ParamsInt("providerId")
	if err != nil || providerID < 1 {
		return utils.SendError(c, utils.InvalidInputf("invalid provider id"))
	}
	appointments, err := ctl.appointments.GetByProviderID(c.Context(), uint(providerID))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(toAppointmentResponses(appointments))
}

// ListProviders handles GET /appointment/providers, the booking-form dropdown.
func (ctl *AppointmentController) ListProviders(c *fiber.Ctx) error {
	providers, err := ctl.providers.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(providers)
}

// UpdateStatus handles PATCH /appointment/:id/status
func (ctl *AppointmentController) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.SendError(c, utils.InvalidInputf("invalid appointment id"))
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.SendError(c, utils.InvalidInputf("cannot parse request body"))
	}

	appointment, err := ctl.appointments.UpdateStatus(c.Context(), uint(id), body.Status)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(toAppointmentResponse(appointment))
}
