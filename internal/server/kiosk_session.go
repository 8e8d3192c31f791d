package server

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	obscontext "github.com/smallbiznis/lockerdocs/internal/observability/context"
	"github.com/smallbiznis/lockerdocs/internal/session"
)

type openSessionRequest struct {
	KioskID  string `json:"kiosk_id"`
	MemberID string `json:"member_id"`
}

// @Summary      Open Kiosk Session
// @Description  Issue a short-lived kiosk session cookie
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request body openSessionRequest true "Open Session Request"
// @Success      200  {object}  map[string]string
// @Router       /kiosk/session [post]
func (s *Server) OpenKioskSession(c *gin.Context) {
	var req openSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}
	kioskID := strings.TrimSpace(req.KioskID)
	if kioskID == "" {
		AbortWithError(c, newValidationError("kiosk_id", "required", "kiosk_id is required"))
		return
	}

	id, err := s.sessions.Issue(c.Writer, session.Record{
		KioskID:  kioskID,
		MemberID: strings.TrimSpace(req.MemberID),
		IssuedAt: s.clock.Now(),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"session_id": id})
}

// @Summary      Close Kiosk Session
// @Description  Drop the kiosk session and expire its cookie
// @Tags         sessions
// @Success      204
// @Router       /kiosk/session [delete]
func (s *Server) CloseKioskSession(c *gin.Context) {
	s.sessions.Clear(c.Writer, c.Request)
	c.Status(http.StatusNoContent)
}

// KioskSession restores the session record, if present, into the request
// context so downstream logging carries the kiosk identity. Requests without
// a session pass through untouched.
func (s *Server) KioskSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if rec, ok := s.sessions.Read(c.Request); ok {
			ctx := obscontext.WithKioskID(c.Request.Context(), rec.KioskID)
			ctx = obscontext.WithMemberID(ctx, rec.MemberID)
			c.Request = c.Request.WithContext(ctx)
			c.Set("kiosk_id", rec.KioskID)
		}
		c.Next()
	}
}
