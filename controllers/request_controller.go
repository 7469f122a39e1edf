package controllers

import (
	"errors"
	"net/http"
	"time"

	"sentinel-vault-service/models"
	"sentinel-vault-service/services"
	"sentinel-vault-service/services/container"

	"github.com/gin-gonic/gin"
)

// RequestController 处理救援请求信息流相关的请求
type RequestController struct {
	BaseControllerImpl
}

// NewRequestController 创建一个新的救援请求控制器
func (f *ControllerFactory) NewRequestController(ctx *gin.Context) *RequestController {
	return &RequestController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// CreateRequestRequest 表示现场上报的请求参数
type CreateRequestRequest struct {
	RequestID   string `json:"id" example:"REQ-101"` // 可选，未提供时自动生成
	Status      string `json:"status" binding:"required" example:"CRITICAL"`
	Needs       string `json:"needs" binding:"required" example:"Rescue, Medical"`
	PeopleCount string `json:"peopleCount" example:"6-10"`
	Location    string `json:"loc" binding:"required" example:"23.2156,72.6369"`
}

// UpdateStatusRequest 表示处置状态更新参数
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required" example:"SAFE"`
}

// HandleRequestFunc 返回一个处理救援请求的Gin处理函数
func HandleRequestFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)
	return func(ctx *gin.Context) {
		controller := factory.NewRequestController(ctx)

		switch method {
		case "listRequests":
			controller.ListRequests()
		case "getRequest":
			controller.GetRequest()
		case "createRequest":
			controller.CreateRequest()
		case "updateStatus":
			controller.UpdateStatus()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// ListRequests 获取全部活跃请求
// @Summary      List Victim Requests
// @Description  Return the full snapshot of active victim requests in arrival order
// @Tags         Requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  map[string]interface{}
// @Router       /requests [get]
func (c *RequestController) ListRequests() {
	requestService := c.Container.GetRequestService()
	requests, err := requestService.ListRequests()
	if err != nil {
		c.Context.JSON(http.StatusInternalServerError, gin.H{
			"code":    500,
			"message": "获取请求列表失败: " + err.Error(),
			"data":    nil,
		})
		return
	}

	c.Context.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    requests,
	})
}

// GetRequest 根据编号获取单条请求
// @Summary      Get Victim Request
// @Tags         Requests
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Request ID (e.g. REQ-101)"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /requests/{id} [get]
func (c *RequestController) GetRequest() {
	requestID := c.Context.Param("id")

	requestService := c.Container.GetRequestService()
	request, err := requestService.GetRequestByRequestID(requestID)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrRequestNotFound) {
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
		"data":    request,
	})
}

// CreateRequest 登记一条现场上报的请求
// @Summary      Create Victim Request
// @Description  Register a field report; the external id is immutable once created
// @Tags         Requests
// @Accept       json
// @Produce      json
// @Param        request body CreateRequestRequest true "Field report parameters"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /requests [post]
func (c *RequestController) CreateRequest() {
	var req CreateRequestRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	request := &models.VictimRequest{
		RequestID:   req.RequestID,
		Status:      models.RequestStatus(req.Status),
		Needs:       req.Needs,
		PeopleCount: req.PeopleCount,
		Location:    req.Location,
		Timestamp:   time.Now(),
	}

	requestService := c.Container.GetRequestService()
	if err := requestService.CreateRequest(request); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrInvalidStatus) || errors.Is(err, services.ErrRequestIDTaken) {
			status = http.StatusBadRequest
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
		"data":    request,
	})
}

// UpdateStatus 更新请求的处置状态
// @Summary      Update Request Status
// @Tags         Requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Request ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Router       /requests/{id}/status [put]
func (c *RequestController) UpdateStatus() {
	requestID := c.Context.Param("id")

	var req UpdateStatusRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	requestService := c.Container.GetRequestService()
	request, err := requestService.UpdateRequestStatus(requestID, req.Status)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrRequestNotFound) {
			status = http.StatusNotFound
		} else if errors.Is(err, services.ErrInvalidStatus) {
			status = http.StatusBadRequest
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
		"data":    request,
	})
}
