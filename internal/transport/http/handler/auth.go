package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"kosovai-backend/internal/app"
)

// loginFailedMessage is shown for every failed attempt. Unknown user,
// wrong password and backend trouble are indistinguishable on purpose.
const loginFailedMessage = "Invalid username or password."

type AuthHandler struct {
	authService *app.AuthService
	cookieName  string
}

func NewAuthHandler(authService *app.AuthService, cookieName string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookieName:  cookieName,
	}
}

func (h *AuthHandler) IndexPage(c *gin.Context) {
	username := ""
	if token, err := c.Cookie(h.cookieName); err == nil && token != "" {
		if subject, err := h.authService.VerifyToken(token); err == nil {
			username = subject
		}
	}
	c.HTML(http.StatusOK, "index.html", gin.H{"Username": username})
}

func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

func (h *AuthHandler) Login(c *gin.Context) {
	input := app.LoginInput{
		Username:   c.PostForm("username"),
		Password:   c.PostForm("password"),
		RemoteAddr: c.ClientIP(),
	}

	result, err := h.authService.Login(c.Request.Context(), input)
	if err != nil {
		if !errors.Is(err, app.ErrInvalidCredential) {
			log.Printf("login failed: %v", err)
		}
		c.HTML(http.StatusOK, "login.html", gin.H{"Error": loginFailedMessage})
		return
	}

	maxAge := int(h.authService.TokenExpiration().Seconds())
	c.SetCookie(h.cookieName, result.Token, maxAge, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}

// Logout clears the session cookie whether or not the request carried
// a valid token. There is no server-side session to revoke.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/login")
}
