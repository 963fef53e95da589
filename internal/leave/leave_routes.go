package leave

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leaves := r.Group("/leaves")
	{
		leaves.GET("", handler.GetAll)
		leaves.GET("/:id", handler.GetById)
		leaves.POST("", handler.Submit)
		leaves.POST("/:id/approve", handler.Approve)
		leaves.POST("/:id/reject", handler.Reject)
		leaves.POST("/:id/cancel", handler.Cancel)
	}
}
