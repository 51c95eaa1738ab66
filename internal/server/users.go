package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samuelerdtman/la-palabra-del-dia/internal/models"
	"go.uber.org/zap"
)

type signupRequest struct {
	Email string `json:"email" binding:"required,email"`
}

type signupResponse struct {
	User    models.User `json:"user"`
	Existed bool        `json:"existed"`
}

type settingsRequest struct {
	Email       string `json:"email" binding:"required,email"`
	PushoverID  string `json:"pushover_id"`
	WordsPerDay int    `json:"words_per_day" binding:"min=0"`
}

// signup resolves or creates the account for an email and mails the account
// link. A failed email is reported in the response but does not undo the
// signup.
func (s *Server) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, existed, err := s.users.Signup(c.Request.Context(), req.Email)
	if err != nil {
		s.log.Error("signup failed", zap.String("email", req.Email), zap.Error(err))
		c.JSON(status(err), gin.H{"error": "signup failed"})
		return
	}

	link := fmt.Sprintf("%s/users/%s", s.baseURL, user.ID.Hex())
	if err := s.mailer.SendAccountLink(user.Email, link); err != nil {
		s.log.Error("failed to send account email", zap.String("email", user.Email), zap.Error(err))
	}

	code := http.StatusCreated
	if existed {
		code = http.StatusOK
	}
	c.JSON(code, signupResponse{User: user, Existed: existed})
}

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.users.Users(c.Request.Context())
	if err != nil {
		s.log.Error("failed to list users", zap.Error(err))
		c.JSON(status(err), gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// overview is the account landing data: the user plus its known/unknown
// word counts.
func (s *Server) overview(c *gin.Context) {
	user := currentUser(c)

	unknown, err := s.words.CountWords(c.Request.Context(), user.ID, false)
	if err != nil {
		c.JSON(status(err), gin.H{"error": "failed to count words"})
		return
	}
	known, err := s.words.CountWords(c.Request.Context(), user.ID, true)
	if err != nil {
		c.JSON(status(err), gin.H{"error": "failed to count words"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":          user,
		"known_words":   known,
		"unknown_words": unknown,
	})
}

func (s *Server) updateSettings(c *gin.Context) {
	var req settingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := currentUser(c)
	user.Email = req.Email
	user.PushoverID = req.PushoverID
	user.WordsPerDay = req.WordsPerDay

	updated, err := s.users.UpdateSettings(c.Request.Context(), user)
	if err != nil {
		c.JSON(status(err), gin.H{"error": "failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
