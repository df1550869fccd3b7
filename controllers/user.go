package controllers

import (
	"io"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kunalsharma05/garagehub/models"
	"github.com/kunalsharma05/garagehub/services"
	"github.com/kunalsharma05/garagehub/utils"
)

// dobLayout is the day-first format the registration form sends.
const dobLayout = "02-01-2006"

type UserController struct {
	accounts *services.AccountService
}

func NewUserController(accounts *services.AccountService) *UserController {
	return &UserController{accounts: accounts}
}

// readImageFile pulls an optional uploaded image from a multipart form and
// returns its (filename, content type, bytes) tuple. A missing file is not an
// error; all three return values are zero.
func readImageFile(c *fiber.Ctx, field string) (string, string, []byte, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil || fileHeader == nil {
		return "", "", nil, nil
	}
	file, err := fileHeader.Open()
	if err != nil {
		return "", "", nil, utils.InvalidInputf("cannot read uploaded file %q", field)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", "", nil, utils.InvalidInputf("cannot read uploaded file %q", field)
	}
	return fileHeader.Filename, fileHeader.Header.Get("Content-Type"), data, nil
}

// Register handles POST /api/register (multipart form).
func (ctl *UserController) Register(c *fiber.Ctx) error {
	user := models.User{
		Name:         c.FormValue("name"),
		Username:     c.FormValue("username"),
		Password:     c.FormValue("password"),
		Email:        c.FormValue("email"),
		Phone:        c.FormValue("phone"),
		Address:      c.FormValue("address"),
		VehicleType:  c.FormValue("vehicletype"),
		VehicleModel: c.FormValue("vehiclemodel"),
		RegNo:        c.FormValue("regno"),
	}

	if v := c.FormValue("yearofmanufacture"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return utils.SendError(c, utils.InvalidInputf("invalid yearofmanufacture %q: expected a number", v))
		}
		user.YearOfManufacture = year
	}
	if v := c.FormValue("dateofbirth"); v != "" {
		dob, err := time.Parse(dobLayout, v)
		if err != nil {
			return utils.SendError(c, utils.InvalidInputf("invalid dateofbirth %q: expected DD-MM-YYYY format", v))
		}
		user.DateOfBirth = &dob
	}

	name, ctype, data, err := readImageFile(c, "image")
	if err != nil {
		return utils.SendError(c, err)
	}
	user.ImageName, user.ImageType, user.ImageData = name, ctype, data

	saved, err := ctl.accounts.Register(c.Context(), &user)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(saved)
}

// Login handles POST /api/login. Unknown usernames and wrong passwords get the
// same response so the endpoint does not reveal which accounts exist.
func (ctl *UserController) Login(c *fiber.Ctx) error {
	var body struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.SendError(c, utils.InvalidInputf("cannot parse request body"))
	}

	user, err := ctl.accounts.Login(c.Context(), body.Username, body.Password)
	if err != nil {
		if utils.IsKind(err, utils.KindNotFound) || utils.IsKind(err, utils.KindUnauthorized) {
			return utils.SendError(c, utils.Unauthorizedf("invalid credentials"))
		}
		return utils.SendError(c, err)
	}
	return c.JSON(user)
}

// ForgotPassword handles PUT /api/users/forgot-password
func (ctl *UserController) ForgotPassword(c *fiber.Ctx) error {
	var body struct {
		Username    string `json:"username"`
		NewPassword string `json:"newPassword"`
	}
	if err := c.BodyParser(&body); err != nil {
		return utils.SendError(c, utils.InvalidInputf("cannot parse request body"))
	}

	if err := ctl.accounts.ResetPassword(c.Context(), body.Username, body.NewPassword); err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Password reset successful!"})
}

// GetByUsername handles GET /api/users/:username
func (ctl *UserController) GetByUsername(c *fiber.Ctx) error {
	user, err := ctl.accounts.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(user)
}

// UpdateProfile handles PUT /api/users/:username (multipart form, partial).
func (ctl *UserController) UpdateProfile(c *fiber.Ctx) error {
	update := models.User{
		Name:         c.FormValue("name"),
		Email:        c.FormValue("email"),
		Phone:        c.FormValue("phone"),
		Address:      c.FormValue("address"),
		VehicleType:  c.FormValue("vehicletype"),
		VehicleModel: c.FormValue("vehiclemodel"),
		RegNo:        c.FormValue("regno"),
	}

	if v := c.FormValue("yearofmanufacture"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			return utils.SendError(c, utils.InvalidInputf("invalid yearofmanufacture %q: expected a number", v))
		}
		update.YearOfManufacture = year
	}
	if v := c.FormValue("dateofbirth"); v != "" {
		dob, err := time.Parse(dobLayout, v)
		if err != nil {
			return utils.SendError(c, utils.InvalidInputf("invalid dateofbirth %q: expected DD-MM-YYYY format", v))
		}
		update.DateOfBirth = &dob
	}

	name, ctype, data, err := readImageFile(c, "image")
	if err != nil {
		return utils.SendError(c, err)
	}
	update.ImageName, update.ImageType, update.ImageData = name, ctype, data

	user, err := ctl.accounts.UpdateProfile(c.Context(), c.Params("username"), &update)
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(user)
}

// GetImage handles GET /api/users/:username/image
func (ctl *UserController) GetImage(c *fiber.Ctx) error {
	user, err := ctl.accounts.GetImage(c.Context(), c.Params("username"))
	if err != nil {
		return utils.SendError(c, err)
	}
	if user.ImageType != "" {
		c.Set(fiber.HeaderContentType, user.ImageType)
	}
	return c.Send(user.ImageData)
}
