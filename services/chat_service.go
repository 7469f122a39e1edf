package services

import (
	"sentinel-vault-service/config"
	"sentinel-vault-service/models"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InterfaceChatService 定义协调频道服务接口
type InterfaceChatService interface {
	PostMessage(channel string, sender models.UserRole, text string) (*models.ChatMessage, error)
	ListMessages(channel string) ([]models.ChatMessage, error)
}

// ChatService 提供协调频道的消息服务，消息只追加不修改
type ChatService struct {
	DB     *gorm.DB
	Config *config.Config
	MQTT   InterfaceMQTTService // 可为空，仅用于尽力而为的现场广播
}

// NewChatService 创建一个新的协调频道服务
func NewChatService(db *gorm.DB, cfg *config.Config, mqttService InterfaceMQTTService) InterfaceChatService {
	return &ChatService{
		DB:     db,
		Config: cfg,
		MQTT:   mqttService,
	}
}

// PostMessage 向指定频道追加一条消息
func (s *ChatService) PostMessage(channel string, sender models.UserRole, text string) (*models.ChatMessage, error) {
	if strings.TrimSpace(channel) == "" {
		return nil, ErrEmptyChannel
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyMessage
	}

	message := &models.ChatMessage{
		MessageID: uuid.New().String(),
		Channel:   channel,
		Sender:    sender,
		Text:      text,
		Timestamp: time.Now(),
	}

	if err := s.DB.Create(message).Error; err != nil {
		return nil, err
	}

	// 聊天以轮询为权威更新机制，MQTT广播失败不影响消息写入
	if s.MQTT != nil {
		if err := s.MQTT.PublishChatMessage(message); err != nil {
			config.Warning("广播频道消息失败: %v", err)
		}
	}

	return message, nil
}

// ListMessages 按时间顺序返回指定频道的全部消息
func (s *ChatService) ListMessages(channel string) ([]models.ChatMessage, error) {
	if strings.TrimSpace(channel) == "" {
		return nil, ErrEmptyChannel
	}

	var messages []models.ChatMessage
	if err := s.DB.Where("channel = ?", channel).Order("timestamp ASC, id ASC").Find(&messages).Error; err != nil {
		return nil, err
	}
	return messages, nil
}
