package controllers

import (
	"errors"
	"net/http"

	"sentinel-vault-service/models"
	"sentinel-vault-service/services"
	"sentinel-vault-service/services/container"

	"github.com/gin-gonic/gin"
)

// ChatController 处理协调频道相关的请求
type ChatController struct {
	BaseControllerImpl
}

// NewChatController 创建一个新的协调频道控制器
func (f *ControllerFactory) NewChatController(ctx *gin.Context) *ChatController {
	return &ChatController{
		BaseControllerImpl: BaseControllerImpl{
			Container: f.Container,
			Context:   ctx,
		},
	}
}

// PostMessageRequest 表示发送消息参数，发送者角色取自会话而非请求体
type PostMessageRequest struct {
	Channel string `json:"channel" binding:"required" example:"police"`
	Text    string `json:"text" binding:"required" example:"Need 2 boats near Sector 21 bridge."`
}

// HandleChatFunc 返回一个处理协调频道请求的Gin处理函数
func HandleChatFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	factory := NewControllerFactory(container)
	return func(ctx *gin.Context) {
		controller := factory.NewChatController(ctx)

		switch method {
		case "listMessages":
			controller.ListMessages()
		case "postMessage":
			controller.PostMessage()
		default:
			ctx.JSON(http.StatusBadRequest, gin.H{
				"code":    400,
				"message": "无效的方法",
				"data":    nil,
			})
		}
	}
}

// ListMessages 按时间顺序获取指定频道的消息
// @Summary      List Channel Messages
// @Tags         Chat
// @Produce      json
// @Security     BearerAuth
// @Param        channel query string true "Channel name (e.g. police)"
// @Success      200  {object}  map[string]interface{}
// @Router       /chat [get]
func (c *ChatController) ListMessages() {
	channel := c.Context.Query("channel")

	chatService := c.Container.GetChatService()
	messages, err := chatService.ListMessages(channel)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrEmptyChannel) {
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
		"data":    messages,
	})
}

// PostMessage 向指定频道追加一条消息
// @Summary      Post Channel Message
// @Description  Append a message to a coordination channel; the sender role is taken from the session
// @Tags         Chat
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body PostMessageRequest true "Message parameters"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /chat [post]
func (c *ChatController) PostMessage() {
	var req PostMessageRequest
	if err := c.Context.ShouldBindJSON(&req); err != nil {
		c.Context.JSON(http.StatusBadRequest, gin.H{
			"code":    400,
			"message": "无效的请求参数: " + err.Error(),
			"data":    nil,
		})
		return
	}

	// 发送者角色以会话身份为准
	sender := models.UserRole(c.Context.GetString("role"))

	chatService := c.Container.GetChatService()
	message, err := chatService.PostMessage(req.Channel, sender, req.Text)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, services.ErrEmptyChannel) || errors.Is(err, services.ErrEmptyMessage) {
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
		"data":    message,
	})
}
