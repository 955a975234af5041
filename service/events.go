package service

import (
	"context"
	"encoding/json"
	"time"

	"IdeaHub/config"
	"IdeaHub/pkg/log"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"go.uber.org/zap"
)

// 互动事件 tag, 供下游的统计与通知消费
const (
	EventIdeaSubmitted = "idea.submitted"
	EventIdeaViewed    = "idea.viewed"
	EventIdeaReacted   = "idea.reacted"
	EventIdeaCommented = "idea.commented"
	EventIdeaReported  = "idea.reported"
	EventIdeaHidden    = "idea.hidden"
)

var _ IEventService = (*EventService)(nil)

type IEventService interface {
	PublishIdeaEvent(ctx context.Context, tag string, ideaID uint64, userID uint64)
}

type EventService struct {
	Config     *config.Config
	MqProducer rocketmq.Producer
}

type ideaEvent struct {
	IdeaID    uint64    `json:"idea_id,string"`
	UserID    uint64    `json:"user_id,string"`
	Tag       string    `json:"tag"`
	Timestamp time.Time `json:"timestamp"`
}

// PublishIdeaEvent 发送互动事件, 失败只记日志不影响主流程
func (s *EventService) PublishIdeaEvent(ctx context.Context, tag string, ideaID uint64, userID uint64) {
	if s.MqProducer == nil {
		return
	}

	body, err := json.Marshal(ideaEvent{
		IdeaID:    ideaID,
		UserID:    userID,
		Tag:       tag,
		Timestamp: time.Now(),
	})
	if err != nil {
		return
	}

	msg := primitive.NewMessage(s.Config.RocketMQ.Producer.Topic, body)
	msg.WithTag(tag)

	if _, err := s.MqProducer.SendSync(ctx, msg); err != nil {
		log.L.Warn("publish idea event failed",
			zap.String("tag", tag),
			zap.Uint64("idea_id", ideaID),
			zap.Error(err),
		)
	}
}
