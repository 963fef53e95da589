package ledger

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	balances := r.Group("/balances")
	{
		balances.GET("/:employeeID", handler.Balances)
		balances.POST("/:employeeID/credit", handler.Credit)
	}
}
