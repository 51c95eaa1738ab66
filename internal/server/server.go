package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samuelerdtman/la-palabra-del-dia/internal/models"
	"github.com/samuelerdtman/la-palabra-del-dia/internal/repository"
	"github.com/samuelerdtman/la-palabra-del-dia/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type WordSI interface {
	AddWord(ctx context.Context, owner primitive.ObjectID, word, translation string) (models.Word, error)
	Words(ctx context.Context, owner primitive.ObjectID, known bool) ([]models.Word, error)
	CountWords(ctx context.Context, owner primitive.ObjectID, known bool) (int, error)
	Word(ctx context.Context, id, owner primitive.ObjectID) (models.Word, error)
	Practice(ctx context.Context, owner primitive.ObjectID) (models.Word, error)
	Answer(ctx context.Context, owner, wordID primitive.ObjectID, submission string) (bool, models.Word, error)
	DeleteWord(ctx context.Context, id, owner primitive.ObjectID) error
}

type UserSI interface {
	Signup(ctx context.Context, email string) (models.User, bool, error)
	User(ctx context.Context, id primitive.ObjectID) (models.User, error)
	Users(ctx context.Context) ([]models.User, error)
	UpdateSettings(ctx context.Context, user models.User) (models.User, error)
}

type AdminSI interface {
	Reset(ctx context.Context) error
}

type MailerI interface {
	SendAccountLink(to, link string) error
}

// Server is the JSON surface over the learning engine. Rendering, sessions
// and flash messaging belong to whatever sits in front of it.
type Server struct {
	words   WordSI
	users   UserSI
	admin   AdminSI
	mailer  MailerI
	baseURL string
	log     *zap.Logger
}

func New(words WordSI, users UserSI, admin AdminSI, mailer MailerI, baseURL string, log *zap.Logger) *Server {
	return &Server{
		words:   words,
		users:   users,
		admin:   admin,
		mailer:  mailer,
		baseURL: baseURL,
		log:     log,
	}
}

func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.POST("/reset", s.reset)

	users := r.Group("/users")
	users.POST("", s.signup)
	users.GET("", s.listUsers)

	account := users.Group("/:id", s.withUser)
	account.GET("", s.overview)
	account.GET("/badge", s.badge)
	account.PUT("/settings", s.updateSettings)
	account.GET("/practice", s.practice)
	account.POST("/words", s.addWord)
	account.GET("/words", s.listWords)
	account.GET("/words/:wordID", s.getWord)
	account.POST("/words/:wordID", s.answer)
	account.DELETE("/words/:wordID", s.deleteWord)

	return r
}

// withUser resolves the account behind the :id path segment and aborts the
// request when it does not exist.
func (s *Server) withUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid account id"})
		return
	}

	user, err := s.users.User(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "unknown account"})
			return
		}
		s.log.Error("failed to load account", zap.String("id", id.Hex()), zap.Error(err))
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to load account"})
		return
	}

	c.Set("user", user)
	c.Next()
}

func currentUser(c *gin.Context) models.User {
	return c.MustGet("user").(models.User)
}

func (s *Server) reset(c *gin.Context) {
	if err := s.admin.Reset(c.Request.Context()); err != nil {
		s.log.Error("reset failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "clean"})
}

// status maps engine errors to response codes; domain conditions are not
// server failures.
func status(err error) int {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, service.ErrNoWords):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
