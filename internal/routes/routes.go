package routes

import (
	"github.com/ANSH5252/LivePulse/internal/handlers"
	"github.com/gin-gonic/gin"
)

func RegisterPublicRoutes(rg *gin.RouterGroup, handler *handlers.VotingHandler) {
	{
		rg.GET("/polls", handler.GetPolls)
		rg.GET("/polls/:id", handler.GetPollByID)
		rg.GET("/active", handler.GetActivePoll)
	}
}

// The websocket endpoint sits outside both groups: anonymous dashboards may
// subscribe, but a principal is resolved when offered so private channels
// can be joined.
func RegisterRealtimeRoutes(rg *gin.RouterGroup, handler *handlers.VotingHandler, optionalAuth gin.HandlerFunc) {
	rg.GET("/ws", optionalAuth, handler.ServeWS)
}

func RegisterPrivateRoutes(rg *gin.RouterGroup, handler *handlers.VotingHandler) {
	{
		rg.POST("/checkin", handler.CheckIn)
		rg.POST("/polls/:id/dispatch", handler.DispatchCodes)
		rg.POST("/verify", handler.VerifyCode)
		rg.POST("/vote", handler.CastVote)

		rg.POST("/polls", handler.CreatePoll)
		rg.POST("/polls/:id/close", handler.ClosePoll)
		rg.POST("/polls/:id/rebuild", handler.RebuildScores)
		rg.POST("/score", handler.RecordScore)
	}
}
