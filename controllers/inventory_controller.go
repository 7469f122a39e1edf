package controllers

import (
	"errors"
	"net/http"

	"sentinel-vault-service/models"
	"sentinel-vault-service/services"
	"sentinel-vault-service/services/container"

	"github.com/gin-gonic/gin"
)

// InventoryController 处理库存台账相关的请求
type InventoryController struct {
	BaseControllerImpl
}

// NewInventoryController 创建一个新的库存控制器
func (f *ControllerFactory) NewInventoryController(ctx *gin.Context) *InventoryController {
	return &InventoryController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// RestockRequest 表示补给请求参数
type RestockRequest struct {
	Name     string `json:"name" binding:"required" example:"Boats"`
	Quantity int    `json:"quantity" binding:"required" example:"10"`
}

// HealthInventoryResponse 表示医疗物资响应条目，shortage为计算字段
type HealthInventoryResponse struct {
	Name      string `json:"name"`
	Available int    `json:"available"`
	Needed    int    `json:"needed"`
	Unit      string `json:"unit"`
	Shortage  bool   `json:"shortage"`
}

// HandleInventoryFunc 返回一个处理库存请求的Gin处理函数
func HandleInventoryFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)
	return func(ctx *gin.Context) {
		controller := factory.NewInventoryController(ctx)

		switch method {
		case "listInventory":
			controller.ListInventory()
		case "restock":
			controller.Restock()
		case "listHealthInventory":
			controller.ListHealthInventory()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// ListInventory 获取通用物资库存
// @Summary      List Inventory
// @Description  Return the current general rescue inventory ledger
// @Tags         Inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /inventory [get]
func (c *InventoryController) ListInventory() {
	inventoryService := c.Container.GetInventoryService()
	items, err := inventoryService.ListInventory()
	if err != nil {
		c.Context.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "获取库存失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Context.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    items,
	})
}

// Restock 补充库存
// @Summary      Restock Inventory
// @Description  Add stock to an existing inventory item (positive delta only)
// @Tags         Inventory
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body RestockRequest true "Restock parameters"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /inventory/restock [post]
func (c *InventoryController) Restock() {
	var req RestockRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	inventoryService := c.Container.GetInventoryService()
	item, err := inventoryService.Restock(req.Name, req.Quantity)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrRestockInvalid) {
			status = http.StatusBadRequest
		} else if errors.Is(err, services.ErrItemNotFound) {
			status = http.StatusNotFound
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
		"message": "success",
		"data":    item,
	})
}

// ListHealthInventory 获取医疗物资清单
// @Summary      List Health Inventory
// @Description  Return medical supplies with the computed shortage flag; read-only
// @Tags         Inventory
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /health-inventory [get]
func (c *InventoryController) ListHealthInventory() {
	inventoryService := c.Container.GetInventoryService()
	items, err := inventoryService.ListHealthInventory()
	if err != nil {
		c.Context.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "获取医疗物资失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	responses := make([]HealthInventoryResponse, 0, len(items))
	for i := range items {
		responses = append(responses, toHealthInventoryResponse(&items[i]))
	}

	c.Context.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    responses,
	})
}

func toHealthInventoryResponse(item *models.HealthInventoryItem) HealthInventoryResponse {
	return HealthInventoryResponse{
		Name:      item.Name,
		Available: item.Available,
		Needed:    item.Needed,
		Unit:      item.Unit,
		Shortage:  item.Shortage(),
	}
}
