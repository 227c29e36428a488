package controllers

import (
	"net/http"
	"strconv"

	"brazyl/apperrors"

	"github.com/gin-gonic/gin"
)

type CreateFollowInput struct {
	PoliticianID int64 `json:"politician_id" form:"politician_id"`
}

// POST /api/follows?user_id=N
// A checagem de quota do plano acontece dentro do service, atômica com o
// insert. 403 (QuotaExceeded) é distinto de 409 (já segue) para o bot poder
// oferecer upgrade.
func CreateFollow(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Query("user_id"), 10, 64)
	if err != nil || userID <= 0 {
		RespondError(c, apperrors.Validation("user_id é obrigatório na query string"))
		return
	}

	var in CreateFollowInput
	if err := c.Bind(&in); err != nil {
		RespondError(c, apperrors.Validation("%s", err.Error()))
		return
	}
	if in.PoliticianID <= 0 {
		RespondError(c, apperrors.Validation("politician_id é obrigatório"))
		return
	}

	follow, err := followSvc.Create(userID, in.PoliticianID)
	if err != nil {
		RespondError(c, err)
		return
	}

	RespondCreated(c, gin.H{"follow": follow})
}

// DELETE /api/follows/:id
func DeleteFollow(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	if err := followSvc.Delete(id); err != nil {
		RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GET /api/follows/users/:userId
func ListFollows(c *gin.Context) {
	userID, ok := ParamID(c, "userId")
	if !ok {
		return
	}

	limit, offset, ok := PaginationParams(c)
	if !ok {
		return
	}

	items, total, err := followSvc.ListByUser(userID, limit, offset)
	if err != nil {
		RespondError(c, err)
		return
	}

	RespondList(c, items, limit, offset, total)
}

// GET /api/follows/stats/:userId
func FollowStats(c *gin.Context) {
	userID, ok := ParamID(c, "userId")
	if !ok {
		return
	}

	stats, err := followSvc.Stats(userID)
	if err != nil {
		RespondError(c, err)
		return
	}

	RespondSuccess(c, stats)
}
