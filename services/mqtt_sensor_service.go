package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"gorm.io/gorm"

	"github.com/kyuhunjo/backun-farm-backend/config"
	"github.com/kyuhunjo/backun-farm-backend/models"
)

// 센서 토픽: farm/sensor/<구역>/<종류>
const TopicSensorReadings = "farm/sensor/+/+"

// InterfaceMQTTSensorService MQTT 센서 수집 서비스 인터페이스
type InterfaceMQTTSensorService interface {
	Connect() error
	Disconnect()
	IsConnected() bool
}

// MQTTSensorService 농장 센서의 MQTT 측정값 수신을 처리
type MQTTSensorService struct {
	DB            *gorm.DB
	Config        *config.Config
	SensorService InterfaceSensorService
	Client        mqtt.Client

	connected      bool
	connectedMutex sync.RWMutex
}

// sensorPayload 센서가 발행하는 메시지 본문
type sensorPayload struct {
	Value     float64 `json:"value"`
	Timestamp int64   `json:"timestamp"` // Unix 초, 없으면 수신 시각 사용
}

// NewMQTTSensorService 새 MQTT 센서 서비스 생성
func NewMQTTSensorService(db *gorm.DB, cfg *config.Config, sensorService InterfaceSensorService) InterfaceMQTTSensorService {
	return &MQTTSensorService{
		DB:            db,
		Config:        cfg,
		SensorService: sensorService,
	}
}

// Connect 브로커에 접속하고 센서 토픽을 구독한다
func (s *MQTTSensorService) Connect() error {
	opts := mqtt.NewClientOptions().
		AddBroker(s.Config.MQTTBrokerURL).
		SetClientID(s.Config.MQTTClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second).
		SetOnConnectHandler(func(client mqtt.Client) {
			s.setConnected(true)
			if token := client.Subscribe(TopicSensorReadings, 1, s.handleSensorMessage); token.Wait() && token.Error() != nil {
				config.Error("센서 토픽 구독 실패: %v", token.Error())
			}
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			s.setConnected(false)
			config.Warning("MQTT 연결 끊김: %v", err)
		})

	s.Client = mqtt.NewClient(opts)
	if token := s.Client.Connect(); token.Wait() && token.Error() != nil {
		return fmt.Errorf("MQTT 브로커 연결 실패: %w", token.Error())
	}
	return nil
}

// Disconnect 브로커 연결 종료
func (s *MQTTSensorService) Disconnect() {
	if s.Client != nil && s.Client.IsConnected() {
		s.Client.Disconnect(250)
	}
	s.setConnected(false)
}

// IsConnected 브로커 연결 상태 확인
func (s *MQTTSensorService) IsConnected() bool {
	s.connectedMutex.RLock()
	defer s.connectedMutex.RUnlock()
	return s.connected
}

func (s *MQTTSensorService) setConnected(connected bool) {
	s.connectedMutex.Lock()
	defer s.connectedMutex.Unlock()
	s.connected = connected
}

// handleSensorMessage 수신한 측정값을 파싱해 저장한다. 토픽에서
// 구역과 종류를 읽으므로 본문에는 값만 있으면 된다.
func (s *MQTTSensorService) handleSensorMessage(_ mqtt.Client, msg mqtt.Message) {
	parts := strings.Split(msg.Topic(), "/")
	if len(parts) != 4 {
		config.Warning("잘못된 센서 토픽: %s", msg.Topic())
		return
	}
	location, sensorType := parts[2], parts[3]

	var payload sensorPayload
	if err := json.Unmarshal(msg.Payload(), &payload); err != nil {
		config.Warning("센서 메시지 파싱 실패 (%s): %v", msg.Topic(), err)
		return
	}

	reading := &models.SensorData{
		Location: location,
		Type:     sensorType,
		Value:    payload.Value,
	}
	if payload.Timestamp > 0 {
		reading.Timestamp = time.Unix(payload.Timestamp, 0)
	}

	if err := s.SensorService.SaveReading(reading); err != nil {
		config.Error("센서 측정값 저장 실패: %v", err)
	}
}
