package controllers

import (
	"strconv"

	"brazyl/apperrors"

	"github.com/gin-gonic/gin"
)

func ParamID(c *gin.Context, name string) (int64, bool) {
	v := c.Param(name)
	if v == "" {
		RespondError(c, apperrors.Validation("%s é obrigatório", name))
		return 0, false
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		RespondError(c, apperrors.Validation("%s inválido", name))
		return 0, false
	}
	return id, true
}

const DEFAULT_PAGE_LIMIT = 20
const MAX_PAGE_LIMIT = 100

// PaginationParams lê e valida limit/offset da query string.
// limit em [1,100] (padrão 20), offset >= 0.
func PaginationParams(c *gin.Context) (limit, offset int, ok bool) {
	limit = DEFAULT_PAGE_LIMIT
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > MAX_PAGE_LIMIT {
			RespondError(c, apperrors.Validation("limit deve estar entre 1 e %d", MAX_PAGE_LIMIT))
			return 0, 0, false
		}
		limit = n
	}
	if v := c.Query("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			RespondError(c, apperrors.Validation("offset deve ser maior ou igual a 0"))
			return 0, 0, false
		}
		offset = n
	}
	return limit, offset, true
}
