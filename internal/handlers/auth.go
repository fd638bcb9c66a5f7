package handlers

import (
	"net/http"
	"strings"

	"haccp-ledger/internal/middleware"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Credentials is the single operator account.
type Credentials struct {
	Username     string
	PasswordHash []byte
}

func NewCredentials(username, password string) (Credentials, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Credentials{}, err
	}
	return Credentials{Username: username, PasswordHash: hash}, nil
}

type loginForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

func (h *Handler) Login(c *gin.Context) {
	var form loginForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed credentials"})
		return
	}

	username := strings.TrimSpace(form.Username)
	if !strings.EqualFold(username, h.creds.Username) ||
		bcrypt.CompareHashAndPassword(h.creds.PasswordHash, []byte(form.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	sess := sessions.Default(c)
	sess.Set(middleware.SessionUserKey, h.creds.Username)
	if err := sess.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not start session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": h.creds.Username})
}

func (h *Handler) Logout(c *gin.Context) {
	sess := sessions.Default(c)
	sess.Clear()
	_ = sess.Save()
	c.Status(http.StatusNoContent)
}
