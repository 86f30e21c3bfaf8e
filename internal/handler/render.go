package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const flashCookie = "clinic_flash"

// Flash stores a one-time notice shown on the next rendered page. It
// rides a short-lived cookie so anonymous visitors get flashes too.
func Flash(c *gin.Context, message string) {
	c.SetCookie(flashCookie, url.QueryEscape(message), 60, "/", "", false, true)
}

// PopFlash returns the pending flash message, clearing it so it renders
// exactly once.
func PopFlash(c *gin.Context) string {
	value, err := c.Cookie(flashCookie)
	if err != nil || value == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)

	message, err := url.QueryUnescape(value)
	if err != nil {
		return ""
	}
	return message
}

// Render draws the named page with any pending flash merged in.
func Render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Flash"]; !ok {
		if message := PopFlash(c); message != "" {
			data["Flash"] = message
		}
	}
	c.HTML(status, name, data)
}

// NotFoundPage renders the dedicated 404 page.
func NotFoundPage(c *gin.Context) {
	c.HTML(http.StatusNotFound, "404.html", gin.H{})
}

// ServerErrorPage renders the dedicated 500 page.
func ServerErrorPage(c *gin.Context) {
	c.HTML(http.StatusInternalServerError, "500.html", gin.H{})
}

// FormErrorMessage flattens a form binding error into a user-facing
// message without leaking internals.
func FormErrorMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		field := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			return fmt.Sprintf("%s is required", field)
		case "email":
			return fmt.Sprintf("%s must be a valid email address", field)
		case "eqfield":
			return "passwords must match"
		}
		return fmt.Sprintf("%s is invalid", field)
	}
	return "form contains invalid values"
}
