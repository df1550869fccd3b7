package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kunalsharma05/garagehub/models"
	"github.com/kunalsharma05/garagehub/services"
	"github.com/kunalsharma05/garagehub/utils"
)

type ProviderController struct {
	providers *services.ProviderService
}

func NewProviderController(providers *services.ProviderService) *ProviderController {
	return &ProviderController{providers: providers}
}

// List handles GET /provider/providerList
func (ctl *ProviderController) List(c *fiber.Ctx) error {
	providers, err := ctl.providers.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(providers)
}

// Register handles POST /provider/register (multipart form).
func (ctl *ProviderController) Register(c *fiber.Ctx) error {
	provider := models.Provider{
		GarageName:        c.FormValue("garagename"),
		OwnerName:         c.FormValue("ownername"),
		GarageAddress:     c.FormValue("garageaddress"),
		Password:          c.FormValue("password"),
		Email:             c.FormValue("email"),
		PhoneNo:           c.FormValue("phoneno"),
		Specializations:   c.FormValue("specializations"),
		AvailableServices: c.FormValue("availableservices"),
	}

	name, ctype, data, err := readImageFile(c, "image")
	if err != nil {
		return utils.SendError(c, err)
	}
	provider.ImageName, provider.ImageType, provider.ImageData = name, ctype, data

	saved, err := ctl.providers.Register(c.Context(), &provider)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// Login handles POST /provider/login
func (ctl *ProviderController) Login(c *fiber.Ctx) error {
	var body struct {
		OwnerName string `json:"ownername"`
		Password  string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.SendError(c, utils.InvalidInputf("cannot parse request body"))
	}

	provider, err := ctl.providers.Login(c.Context(), body.OwnerName, body.Password)
	if err != nil {
		if utils.IsKind(err, utils.KindNotFound) || utils.IsKind(err, utils.KindUnauthorized) {
			return utils.SendError(c, utils.Unauthorizedf("invalid credentials"))
		}
		return utils.SendError(c, err)
	}
	return c.JSON(provider)
}

// ForgotPassword handles PUT /provider/forgot-password
func (ctl *ProviderController) ForgotPassword(c *fiber.Ctx) error {
	var body struct {
		OwnerName   string `json:"ownername"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.SendError(c, utils.InvalidInputf("cannot parse request body"))
	}

	if err := ctl.providers.ResetPassword(c.Context(), body.OwnerName, body.NewPassword); err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Password reset successful"})
}

// GetByID handles GET /provider/:id
func (ctl *ProviderController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.SendError(c, utils.InvalidInputf("invalid provider id"))
	}
	provider, err := ctl.providers.GetByID(c.Context(), uint(id))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(provider)
}

// GetImage handles GET /provider/images/:id
func (ctl *ProviderController) GetImage(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.SendError(c, utils.InvalidInputf("invalid provider id"))
	}
	provider, err := ctl.providers.GetImage(c.Context(), uint(id))
	if err != nil {
		return utils.SendError(c, err)
	}
	if provider.ImageType != "" {
		c.Set(fiber.HeaderContentType, provider.ImageType)
	}
	return c.Send(provider.ImageData)
}

// UpdateProfile handles PUT /provider/update/:id (multipart form, partial).
func (ctl *ProviderController) UpdateProfile(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return utils.SendError(c, utils.InvalidInputf("invalid provider id"))
	}

	update := models.Provider{
		GarageName:        c.FormValue("garagename"),
		OwnerName:         c.FormValue("ownername"),
		GarageAddress:     c.FormValue("garageaddress"),
		Email:             c.FormValue("email"),
		PhoneNo:           c.FormValue("phoneno"),
		Specializations:   c.FormValue("specializations"),
		AvailableServices: c.FormValue("availableservices"),
	}

	name, ctype, data, err := readImageFile(c, "image")
	if err != nil {
		return utils.SendError(c, err)
	}
	update.ImageName, update.ImageType, update.ImageData = name, ctype, data

	provider, err := ctl.providers.UpdateProfile(c.Context(), uint(id), &update)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(provider)
}
