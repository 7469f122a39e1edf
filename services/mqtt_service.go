package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sentinel-vault-service/config"
	"sentinel-vault-service/models"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
)

// 主题常量
const (
	// 请求事件主题
	TopicRequests = "sentinel/requests"

	// 频道消息主题前缀，完整主题为 sentinel/chat/<channel>
	TopicChatPrefix = "sentinel/chat/"
)

// InterfaceMQTTService 定义现场广播服务接口。
// 广播只是对轮询的补充，所有发布都是尽力而为。
type InterfaceMQTTService interface {
	Connect() error
	Disconnect()
	PublishRequestEvent(event string, request *models.VictimRequest) error
	PublishChatMessage(message *models.ChatMessage) error
}

// MQTTMessage MQTT消息基础结构
type MQTTMessage struct {
	Type      string         `json:"type"`
	Timestamp int64          `json:"timestamp"`
	Payload   map[string]any `json:"payload"`
}

// MQTTService 基于MQTT向现场设备广播请求与频道消息
type MQTTService struct {
	Config         *config.Config
	Client         mqtt.Client
	IsConnected    bool
	connectedMutex sync.RWMutex // 保护IsConnected字段的读写
	PublishMutex   sync.Mutex   // 用于保护MQTT消息发布
}

// NewMQTTService 创建一个新的现场广播服务
func NewMQTTService(cfg *config.Config) InterfaceMQTTService {
	service := &MQTTService{
		Config:      cfg,
		IsConnected: false,
	}

	service.setupMQTTClient()
	return service
}

// setupMQTTClient 设置MQTT客户端
func (s *MQTTService) setupMQTTClient() {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(s.Config.MQTTBrokerURL)
	// 使用唯一的客户端ID，避免同一服务多实例冲突
	opts.SetClientID(fmt.Sprintf("%s-%s", s.Config.MQTTClientID, uuid.New().String()[:8]))
	opts.SetAutoReconnect(true)
	opts.SetMaxReconnectInterval(time.Second * 30)
	opts.SetKeepAlive(time.Second * 60)
	opts.SetPingTimeout(time.Second * 10)
	opts.SetCleanSession(true)

	// 添加用户名和密码
	if s.Config.MQTTUsername != "" {
		opts.SetUsername(s.Config.MQTTUsername)
		opts.SetPassword(s.Config.MQTTPassword)
	}

	// 设置连接丢失回调
	opts.SetConnectionLostHandler(func(client mqtt.Client, err error) {
		log.Printf("[MQTT] 连接丢失: %v", err)
		s.connectedMutex.Lock()
		s.IsConnected = false
		s.connectedMutex.Unlock()
	})

	// 设置连接建立回调
	opts.SetOnConnectHandler(func(client mqtt.Client) {
		log.Println("[MQTT] 成功连接到", s.Config.MQTTBrokerURL)
		s.connectedMutex.Lock()
		s.IsConnected = true
		s.connectedMutex.Unlock()
	})

	s.Client = mqtt.NewClient(opts)
}

// Connect 连接到MQTT服务器
func (s *MQTTService) Connect() error {
	log.Printf("[MQTT] 正在连接到 %s...", s.Config.MQTTBrokerURL)

	s.connectedMutex.RLock()
	isConnected := s.IsConnected && s.Client.IsConnected()
	s.connectedMutex.RUnlock()

	if isConnected {
		return nil
	}

	token := s.Client.Connect()
	if token.WaitTimeout(5*time.Second) && token.Error() == nil {
		s.connectedMutex.Lock()
		s.IsConnected = true
		s.connectedMutex.Unlock()
		return nil
	}

	return fmt.Errorf("[MQTT] 连接失败: %v", token.Error())
}

// Disconnect 断开与MQTT服务器的连接
func (s *MQTTService) Disconnect() {
	if s.Client != nil && s.Client.IsConnected() {
		s.Client.Disconnect(250)
	}
}

// PublishRequestEvent 广播请求事件（created / status_changed）
func (s *MQTTService) PublishRequestEvent(event string, request *models.VictimRequest) error {
	message := MQTTMessage{
		Type:      event,
		Timestamp: time.Now().Unix(),
		Payload: map[string]any{
			"id":     request.RequestID,
			"status": request.Status,
			"needs":  request.Needs,
			"loc":    request.Location,
		},
	}
	return s.publishMessage(TopicRequests, message)
}

// PublishChatMessage 广播频道消息
func (s *MQTTService) PublishChatMessage(msg *models.ChatMessage) error {
	message := MQTTMessage{
		Type:      "chat_message",
		Timestamp: msg.Timestamp.Unix(),
		Payload: map[string]any{
			"message_id": msg.MessageID,
			"channel":    msg.Channel,
			"from":       msg.Sender,
			"text":       msg.Text,
		},
	}
	return s.publishMessage(TopicChatPrefix+msg.Channel, message)
}

// publishMessage 序列化并发布消息，QoS 1确保至少传递一次
func (s *MQTTService) publishMessage(topic string, payload interface{}) error {
	// 加锁保护发布过程，避免并发发布冲突
	s.PublishMutex.Lock()
	defer s.PublishMutex.Unlock()

	s.connectedMutex.RLock()
	isConnected := s.IsConnected && s.Client.IsConnected()
	s.connectedMutex.RUnlock()

	if !isConnected {
		return fmt.Errorf("MQTT客户端未连接")
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("序列化消息失败: %v", err)
	}

	token := s.Client.Publish(topic, 1, false, jsonData)

	// 设置超时时间，避免无限等待
	if !token.WaitTimeout(3 * time.Second) {
		return fmt.Errorf("发布消息超时")
	}
	if token.Error() != nil {
		return fmt.Errorf("发布消息失败: %v", token.Error())
	}

	return nil
}
