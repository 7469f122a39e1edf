package controllers

import (
	"errors"
	"net/http"

	"sentinel-vault-service/models"
	"sentinel-vault-service/services"
	"sentinel-vault-service/services/container"

	"github.com/gin-gonic/gin"
)

// AllocationController 处理资源分配相关的请求
type AllocationController struct {
	BaseControllerImpl
}

// NewAllocationController 创建一个新的分配控制器
func (f *ControllerFactory) NewAllocationController(ctx *gin.Context) *AllocationController {
	return &AllocationController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// AllocateRequest 表示分配提交参数
type AllocateRequest struct {
	Allocations []services.AllocationLine `json:"allocations" binding:"required"`
}

// HandleAllocationFunc 返回一个处理分配请求的Gin处理函数
func HandleAllocationFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)
	return func(ctx *gin.Context) {
		controller := factory.NewAllocationController(ctx)

		switch method {
		case "allocate":
			controller.Allocate()
		case "listAllocations":
			controller.ListAllocations()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// Allocate 将一组物资分配给指定请求
// @Summary      Allocate Resources
// @Description  Commit a set of inventory line items against a victim request; the whole set succeeds or nothing is deducted
// @Tags         Allocation
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Request ID (e.g. REQ-101)"
// @Param        request body AllocateRequest true "Allocation line items"
// @Success      200  {object}  map[string]interface{}  "Resources allocated successfully"
// @Failure      404  {object}  map[string]interface{}  "Request or item not found"
// @Failure      409  {object}  map[string]interface{}  "Stock changed"
// @Router       /requests/{id}/allocate [post]
func (c *AllocationController) Allocate() {
	requestID := c.Context.Param("id")

	var req AllocateRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	allocationService := c.Container.GetAllocationService()
	batchID, err := allocationService.Allocate(requestID, req.Allocations)
	if err != nil {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, services.ErrRequestNotFound), errors.Is(err, services.ErrItemNotFound):
			status = http.StatusNotFound
		case errors.Is(err, services.ErrQuantityInvalid):
			status = http.StatusBadRequest
		case errors.Is(err, services.ErrStockConflict):
			// 提交与草稿打开之间库存发生变化，整组回滚，由操作员修正后重试
			status = http.StatusConflict
		}
		c.Context.JSON(status, gin.H{
			"code":    status,
			"message": err.Error(),
			"data":    nil,
		})
		return
	}

	c.Context.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "Resources allocated successfully",
		"data": gin.H{
			"batch_id":   batchID,
			"request_id": requestID,
		},
	})
}

// ListAllocations 分页获取分配记录
// @Summary      List Allocation Records
// @Tags         Allocation
// @Produce      json
// @Security     BearerAuth
// @Param        pageNum query int false "Page number"
// @Param        pageSize query int false "Page size"
// @Success      200  {object}  map[string]interface{}
// @Router       /allocations [get]
func (c *AllocationController) ListAllocations() {
	var query models.PaginationQuery
	if err := c.Context.ShouldBindQuery(&query); err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的分页参数: " + err.Error(),
			"data":    nil,
		})
		return
	}
	query.Normalize()

	allocationService := c.Container.GetAllocationService()
	records, total, err := allocationService.ListAllocations(query.PageNum, query.PageSize)
	if err != nil {
		c.Context.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "获取分配记录失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Context.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data": gin.H{
			"records":    records,
			"pagination": models.NewPaginationResult(int(total), query.PageNum, query.PageSize),
		},
	})
}
