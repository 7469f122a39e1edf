package services

import (
	"errors"
	"sentinel-vault-service/config"
	"sentinel-vault-service/models"
	"sentinel-vault-service/utils"
	"time"

	"gorm.io/gorm"
)

// InterfaceRequestService 定义救援请求服务接口
type InterfaceRequestService interface {
	ListRequests() ([]models.VictimRequest, error)
	GetRequestByRequestID(requestID string) (*models.VictimRequest, error)
	CreateRequest(req *models.VictimRequest) error
	UpdateRequestStatus(requestID, status string) (*models.VictimRequest, error)
}

// RequestService 提供救援请求信息流服务
type RequestService struct {
	DB     *gorm.DB
	Config *config.Config
	MQTT   InterfaceMQTTService // 可为空，仅用于尽力而为的现场广播
}

// NewRequestService 创建一个新的救援请求服务
func NewRequestService(db *gorm.DB, cfg *config.Config, mqttService InterfaceMQTTService) InterfaceRequestService {
	return &RequestService{
		DB:     db,
		Config: cfg,
		MQTT:   mqttService,
	}
}

// ListRequests 获取全部活跃请求，按接收顺序返回，消费方以整体快照替换本地副本
func (s *RequestService) ListRequests() ([]models.VictimRequest, error) {
	var requests []models.VictimRequest
	if err := s.DB.Order("id ASC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// GetRequestByRequestID 根据对外编号获取请求
func (s *RequestService) GetRequestByRequestID(requestID string) (*models.VictimRequest, error) {
	var request models.VictimRequest
	if err := s.DB.Where("request_id = ?", requestID).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

// CreateRequest 登记一条现场上报的请求，编号一经创建不可变
func (s *RequestService) CreateRequest(req *models.VictimRequest) error {
	if !models.ValidRequestStatus(string(req.Status)) {
		return ErrInvalidStatus
	}
	if req.Timestamp.IsZero() {
		req.Timestamp = time.Now()
	}

	// 未提供编号时生成一个，碰撞则重试
	if req.RequestID == "" {
		for i := 0; i < 5; i++ {
			candidate := utils.RandomRequestID()
			var count int64
			if err := s.DB.Model(&models.VictimRequest{}).Where("request_id = ?", candidate).Count(&count).Error; err != nil {
				return err
			}
			if count == 0 {
				req.RequestID = candidate
				break
			}
		}
		if req.RequestID == "" {
			return errors.New("生成请求编号失败")
		}
	} else {
		var count int64
		if err := s.DB.Model(&models.VictimRequest{}).Where("request_id = ?", req.RequestID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrRequestIDTaken
		}
	}

	if err := s.DB.Create(req).Error; err != nil {
		return err
	}

	s.broadcast("created", req)
	return nil
}

// UpdateRequestStatus 更新请求的处置状态
func (s *RequestService) UpdateRequestStatus(requestID, status string) (*models.VictimRequest, error) {
	if !models.ValidRequestStatus(status) {
		return nil, ErrInvalidStatus
	}

	request, err := s.GetRequestByRequestID(requestID)
	if err != nil {
		return nil, err
	}

	if err := s.DB.Model(request).Update("status", status).Error; err != nil {
		return nil, err
	}

	s.broadcast("status_changed", request)
	return request, nil
}

// broadcast 尽力而为地向现场设备广播请求事件，失败只记录日志
func (s *RequestService) broadcast(event string, req *models.VictimRequest) {
	if s.MQTT == nil {
		return
	}
	if err := s.MQTT.PublishRequestEvent(event, req); err != nil {
		config.Warning("广播请求事件失败: %v", err)
	}
}
