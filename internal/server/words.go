package server

import (
	"encoding/xml"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type addWordRequest struct {
	Word        string `json:"word" binding:"required"`
	Translation string `json:"translation" binding:"required"`
}

type answerRequest struct {
	Translation string `json:"translation" binding:"required"`
}

// badge is the feed-reader badge payload, kept XML for compatibility.
type badge struct {
	XMLName xml.Name `xml:"badge"`
	Value   int      `xml:"value,attr"`
}

func (s *Server) addWord(c *gin.Context) {
	var req addWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := currentUser(c)
	word, err := s.words.AddWord(c.Request.Context(), user.ID, req.Word, req.Translation)
	if err != nil {
		c.JSON(status(err), gin.H{"error": "failed to add word"})
		return
	}
	c.JSON(http.StatusCreated, word)
}

// listWords returns the unknown set by default; ?known=true flips it.
func (s *Server) listWords(c *gin.Context) {
	known, err := strconv.ParseBool(c.DefaultQuery("known", "false"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "known must be a boolean"})
		return
	}

	user := currentUser(c)
	words, err := s.words.Words(c.Request.Context(), user.ID, known)
	if err != nil {
		c.JSON(status(err), gin.H{"error": "failed to list words"})
		return
	}
	c.JSON(http.StatusOK, words)
}

func (s *Server) getWord(c *gin.Context) {
	wordID, err := primitive.ObjectIDFromHex(c.Param("wordID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid word id"})
		return
	}

	user := currentUser(c)
	word, err := s.words.Word(c.Request.Context(), wordID, user.ID)
	if err != nil {
		c.JSON(status(err), gin.H{"error": "word not found"})
		return
	}
	c.JSON(http.StatusOK, word)
}

func (s *Server) practice(c *gin.Context) {
	user := currentUser(c)

	word, err := s.words.Practice(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, word)
}

func (s *Server) answer(c *gin.Context) {
	wordID, err := primitive.ObjectIDFromHex(c.Param("wordID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid word id"})
		return
	}

	var req answerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := currentUser(c)
	correct, word, err := s.words.Answer(c.Request.Context(), user.ID, wordID, req.Translation)
	if err != nil {
		s.log.Error("failed to grade answer",
			zap.String("word_id", wordID.Hex()), zap.Error(err))
		c.JSON(status(err), gin.H{"error": "failed to grade answer"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"correct": correct,
		"word":    word,
	})
}

func (s *Server) deleteWord(c *gin.Context) {
	wordID, err := primitive.ObjectIDFromHex(c.Param("wordID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid word id"})
		return
	}

	user := currentUser(c)
	if err := s.words.DeleteWord(c.Request.Context(), wordID, user.ID); err != nil {
		c.JSON(status(err), gin.H{"error": "failed to delete word"})
		return
	}
	c.Status(http.StatusNoContent)
}

// badge mirrors the historical XML counter endpoint.
func (s *Server) badge(c *gin.Context) {
	user := currentUser(c)

	unknown, err := s.words.CountWords(c.Request.Context(), user.ID, false)
	if err != nil {
		c.JSON(status(err), gin.H{"error": "failed to count words"})
		return
	}
	c.XML(http.StatusOK, badge{Value: unknown})
}
