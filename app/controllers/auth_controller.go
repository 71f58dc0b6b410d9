package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sujit-baniya/flash"

	"github.com/GBDev13/catalify-sub001/app/models"
	"github.com/GBDev13/catalify-sub001/app/repository"
	"github.com/GBDev13/catalify-sub001/internal/pkg/database"
	"github.com/GBDev13/catalify-sub001/internal/pkg/env"
	"github.com/GBDev13/catalify-sub001/internal/pkg/mail"
	"github.com/GBDev13/catalify-sub001/internal/pkg/session"
)

func HandleAuthLogin(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		var (
			user models.User
			err  error
		)
		fm := fiber.Map{
			"type": "error",
		}

		// notice: in production you should not inform the user
		// with detailed messages about login failures
		result := database.GetDB().Where("email = ?", c.FormValue("email")).First(&user)
		if result.Error != nil {
			fm["message"] = "There is a problem with the login process"

			return flash.WithError(c, fm).Redirect("/login")
		}

		if !models.CheckPasswordHash(c.FormValue("password"), user.Password) {
			fm["message"] = "There is a problem with the login process"

			return flash.WithError(c, fm).Redirect("/login")
		}

		if !user.IsActive() {
			fm["message"] = "Please activate your account first"

			return flash.WithError(c, fm).Redirect("/login")
		}

		sess, err := session.GetSessionStore().Get(c)
		if err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect("/login")
		}

		sess.Set(AUTH_KEY, true)
		sess.Set(USER_ID, user.ID)
		sess.Set(USER_NAME, user.FullName())
		sess.Set(USER_IS_ADMIN, user.Role == models.ROLE_ADMIN)

		err = sess.Save()
		if err != nil {
			fm["message"] = fmt.Sprintf("something went wrong: %s", err)

			return flash.WithError(c, fm).Redirect("/login")
		}

		database.GetDB().Model(&user).Update("last_login_at", time.Now())

		return c.Redirect("/dashboard")
	}

	return c.Render("login", fiber.Map{
		"Flash": flash.Get(c),
	})
}

func HandleAuthRegister(c *fiber.Ctx) error {
	if c.Method() == fiber.MethodPost {
		fm := fiber.Map{
			"type": "error",
		}

		user, err := models.CreateUser(
			c.FormValue("first_name"),
			c.FormValue("last_name"),
			c.FormValue("email"),
			c.FormValue("password"),
		)
		if err != nil {
			fm["message"] = fmt.Sprintf("registration failed: %s", err)

			return flash.WithError(c, fm).Redirect("/register")
		}

		if err := user.GenerateActivationToken(); err != nil {
			fm["message"] = "registration failed, please try again"

			return flash.WithError(c, fm).Redirect("/register")
		}

		repo := repository.GetGlobalFactory().GetUserRepository()
		if err := repo.Create(user); err != nil {
			fm["message"] = "registration failed, email may already be in use"

			return flash.WithError(c, fm).Redirect("/register")
		}

		base := env.GetEnv("PUBLIC_DOMAIN", "http://localhost:"+env.GetEnv("APP_PORT", "4000"))
		activationURL := fmt.Sprintf("%s/activate/%s", base, user.ActivationToken)
		go mail.SendActivationMail(user.Email, user.FirstName, activationURL)

		fm = fiber.Map{
			"type":    "success",
			"message": "Account created! Check your inbox for the activation link.",
		}

		return flash.WithSuccess(c, fm).Redirect("/login")
	}

	return c.Render("register", fiber.Map{
		"Flash": flash.Get(c),
	})
}

func HandleAuthActivate(c *fiber.Ctx) error {
	token := c.Params("token")
	fm := fiber.Map{
		"type": "error",
	}

	repo := repository.GetGlobalFactory().GetUserRepository()
	user, err := repo.GetByActivationToken(token)
	if err != nil {
		fm["message"] = "Invalid or expired activation link"

		return flash.WithError(c, fm).Redirect("/login")
	}

	user.Status = models.STATUS_ACTIVE
	user.ActivationToken = ""
	if err := repo.Update(user); err != nil {
		fm["message"] = "Activation failed, please try again"

		return flash.WithError(c, fm).Redirect("/login")
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "Account activated! You can log in now.",
	}

	return flash.WithSuccess(c, fm).Redirect("/login")
}

func HandleAuthLogout(c *fiber.Ctx) error {
	fm := fiber.Map{
		"type": "error",
	}

	sess, err := session.GetSessionStore().Get(c)
	if err != nil {
		fm["message"] = "logged out (no sess)"

		return flash.WithError(c, fm).Redirect("/login")
	}

	err = sess.Destroy()
	if err != nil {
		fm["message"] = fmt.Sprintf("something went wrong: %s", err)

		return flash.WithError(c, fm).Redirect("/login")
	}

	fm = fiber.Map{
		"type":    "success",
		"message": "See you soon!",
	}

	return flash.WithSuccess(c, fm).Redirect("/login")
}
