package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ANSH5252/LivePulse/internal/broadcast"
	"github.com/ANSH5252/LivePulse/internal/entity"
	"github.com/ANSH5252/LivePulse/internal/middleware"
	"github.com/ANSH5252/LivePulse/internal/services"
	"github.com/gin-gonic/gin"
)

type VotingHandler struct {
	votingService *services.LiveVoting
	hub           *broadcast.Hub
}

func NewVotingHandler(votingService *services.LiveVoting, hub *broadcast.Hub) *VotingHandler {
	return &VotingHandler{votingService: votingService, hub: hub}
}

type CheckInRequest struct {
	PollID int64  `json:"poll_id" binding:"required"`
	Badge  string `json:"badge" binding:"required"`
}

type VerifyCodeRequest struct {
	PollID int64  `json:"poll_id" binding:"required"`
	Code   string `json:"code" binding:"required"`
}

type CastVoteRequest struct {
	PollID   int64 `json:"poll_id" binding:"required"`
	OptionID int64 `json:"option_id" binding:"required"`
}

type CreatePollRequest struct {
	Title   string   `json:"title" binding:"required"`
	Options []string `json:"options" binding:"required,min=1"`
}

type RecordScoreRequest struct {
	PollID int64  `json:"poll_id" binding:"required"`
	Label  string `json:"label" binding:"required"`
	Delta  int64  `json:"delta"`
}

func (v *VotingHandler) CheckIn(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	caller, ok := principalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := v.votingService.CheckIn(c.Request.Context(), caller, req.PollID, req.Badge); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "checked in"})
}

func (v *VotingHandler) DispatchCodes(c *gin.Context) {
	pollID, ok := pollIDParam(c)
	if !ok {
		return
	}

	caller, ok := principalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	count, err := v.votingService.DispatchCodes(c.Request.Context(), caller, pollID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"issued": count})
}

func (v *VotingHandler) VerifyCode(c *gin.Context) {
	var req VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	caller, ok := principalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := v.votingService.VerifyCode(c.Request.Context(), caller, req.PollID, req.Code); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "verified"})
}

func (v *VotingHandler) CastVote(c *gin.Context) {
	var req CastVoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	caller, ok := principalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := v.votingService.CastVote(c.Request.Context(), caller, req.PollID, req.OptionID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (v *VotingHandler) CreatePoll(c *gin.Context) {
	var req CreatePollRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	caller, ok := principalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	pollID, err := v.votingService.CreatePoll(c.Request.Context(), caller, req.Title, req.Options)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"poll_id": pollID})
}

func (v *VotingHandler) ClosePoll(c *gin.Context) {
	pollID, ok := pollIDParam(c)
	if !ok {
		return
	}

	caller, ok := principalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := v.votingService.ClosePoll(c.Request.Context(), caller, pollID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "closed"})
}

func (v *VotingHandler) RebuildScores(c *gin.Context) {
	pollID, ok := pollIDParam(c)
	if !ok {
		return
	}

	caller, ok := principalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := v.votingService.RebuildScores(c.Request.Context(), caller, pollID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "rebuilt"})
}

func (v *VotingHandler) RecordScore(c *gin.Context) {
	var req RecordScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}
	if req.Delta == 0 {
		req.Delta = 1
	}

	caller, ok := principalFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	if err := v.votingService.RecordScore(c.Request.Context(), caller, req.PollID, req.Label, req.Delta); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

func (v *VotingHandler) GetPolls(c *gin.Context) {
	polls, err := v.votingService.Polls(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"polls": polls})
}

func (v *VotingHandler) GetPollByID(c *gin.Context) {
	pollID, ok := pollIDParam(c)
	if !ok {
		return
	}

	details, err := v.votingService.Poll(c.Request.Context(), pollID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pollDetailsResponse(details))
}

func (v *VotingHandler) GetActivePoll(c *gin.Context) {
	details, err := v.votingService.ActivePoll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pollDetailsResponse(details))
}

// ServeWS hands the connection to the fanout hub. The principal, if any, is
// what join claims are checked against.
func (v *VotingHandler) ServeWS(c *gin.Context) {
	var authUserID int64
	if raw, exists := c.Get(middleware.CtxUserID); exists {
		if id, ok := raw.(int64); ok {
			authUserID = id
		}
	}

	broadcast.ServeWS(v.hub, c.Writer, c.Request, authUserID)
}

func pollDetailsResponse(details entity.PollDetails) gin.H {
	return gin.H{
		"poll":    details.Poll,
		"options": details.Options,
		"scores":  details.Scores,
	}
}

func pollIDParam(c *gin.Context) (int64, bool) {
	pollID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid poll id"})
		return 0, false
	}
	return pollID, true
}

func principalFromContext(c *gin.Context) (entity.Principal, bool) {
	userIDValue, exists := c.Get(middleware.CtxUserID)
	if !exists {
		return entity.Principal{}, false
	}
	userID, ok := userIDValue.(int64)
	if !ok {
		return entity.Principal{}, false
	}

	roleValue, exists := c.Get(middleware.CtxRole)
	if !exists {
		return entity.Principal{}, false
	}
	role, ok := roleValue.(string)
	if !ok {
		return entity.Principal{}, false
	}

	return entity.Principal{UserID: userID, Role: entity.Role(role)}, true
}

// respondError maps the service taxonomy to HTTP statuses. Every rejected
// transition gets a distinct, stable error string.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
	case errors.Is(err, services.ErrInvalidBadge), errors.Is(err, services.ErrMissingData):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrPollNotFound),
		errors.Is(err, services.ErrOptionNotFound),
		errors.Is(err, services.ErrCodeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrPollNotActive),
		errors.Is(err, services.ErrAlreadyCheckedIn),
		errors.Is(err, services.ErrCodesAlreadyIssued),
		errors.Is(err, services.ErrNoAttendees),
		errors.Is(err, services.ErrCodeAlreadyUsed),
		errors.Is(err, services.ErrNotVerified),
		errors.Is(err, services.ErrDuplicateVote):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
