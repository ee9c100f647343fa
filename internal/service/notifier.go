package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"net/http"
	"time"

	"log/slog"

	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/config"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/internal/domain"
	"github.com/hetpatoliya0206/ZeroWaste-Connect/pkg/e"
)

// NotificationConsumer is the queue side the sender drains.
type NotificationConsumer interface {
	BRPop(ctx context.Context, timeout time.Duration) (domain.NotificationPayload, error)
}

// NotificationSender drains the queue and delivers WhatsApp messages to the
// matched NGO. It runs strictly outside the donation transaction; failures
// are logged and dropped after bounded retries.
type NotificationSender struct {
	logger *slog.Logger
	cfg    config.WhatsAppConfig
	queue  NotificationConsumer
	http   *http.Client
}

func NewNotificationSender(logger *slog.Logger, cfg config.WhatsAppConfig, queue NotificationConsumer) *NotificationSender {
	return &NotificationSender{
		logger: logger,
		cfg:    cfg,
		queue:  queue,
		http:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *NotificationSender) Run(ctx context.Context) {
	if s.cfg.Disabled {
		s.logger.Info("notificationSender DISABLED")
		return
	}

	s.logger.Info("notificationSender STARTED",
		slog.String("api_url", s.cfg.APIURL),
		slog.Int("workers", s.cfg.Workers),
	)

	var wg sync.WaitGroup
	for i := 0; i < s.cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.worker(ctx)
		}()
	}
	wg.Wait()

	s.logger.Info("notificationSender STOPPED")
}

func (s *NotificationSender) worker(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		payload, err := s.queue.BRPop(ctx, 5*time.Second)
		if err != nil {
			if errors.Is(err, e.ErrQueueEmpty) {
				continue
			}
			if ctx.Err() != nil {
				return
			}
			s.logger.Error("BRPop failed", slog.Any("error", err))
			time.Sleep(500 * time.Millisecond)
			continue
		}

		s.logger.Info("sending notification", slog.String("ngo", payload.NGOName))
		s.sendWithRetry(ctx, payload)
	}
}

func (s *NotificationSender) sendWithRetry(ctx context.Context, p domain.NotificationPayload) {
	const maxRetries = 3

	body, err := json.Marshal(whatsAppMessage(p))
	if err != nil {
		s.logger.Error("marshal notification failed", slog.String("error", err.Error()))
		return
	}

	url := fmt.Sprintf("%s/%s/messages", s.cfg.APIURL, s.cfg.PhoneID)

	for attempt := 1; attempt <= maxRetries; attempt++ {
		if ctx.Err() != nil {
			s.logger.Info("stop retries due to context cancel")
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			s.logger.Error("create notification request failed", slog.String("error", err.Error()))
			return
		}

		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", "Bearer "+s.cfg.Token)

		resp, err := s.http.Do(req)
		if err == nil && resp.StatusCode >= 200 && resp.StatusCode < 300 {
			_ = resp.Body.Close()
			return
		}
		if resp != nil {
			_ = resp.Body.Close()
		}

		reason := "unknown"
		if err != nil {
			reason = err.Error()
		} else if resp != nil {
			reason = resp.Status
		}

		s.logger.Warn("notification failed",
			slog.Int("attempt", attempt),
			slog.String("ngo", p.NGOName),
			slog.String("reason", reason),
		)

		time.Sleep(time.Duration(attempt) * time.Second)
	}
}

type textMessage struct {
	MessagingProduct string `json:"messaging_product"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		Body string `json:"body"`
	} `json:"text"`
}

func whatsAppMessage(p domain.NotificationPayload) textMessage {
	msg := textMessage{
		MessagingProduct: "whatsapp",
		To:               p.NGOPhone,
		Type:             "text",
	}
	msg.Text.Body = fmt.Sprintf(
		"*New Food Donation Alert!*\n\n"+
			"Hello *%s*,\n\n"+
			"A surplus food donation has been matched to you:\n\n"+
			"*From:* %s\n"+
			"*Food:* %s\n"+
			"*Quantity:* %d units\n"+
			"*Expires in:* %d hours\n"+
			"*Distance:* %.2f KM away\n\n"+
			"Please arrange collection soon!\n\n— ZeroWaste Connect",
		p.NGOName, p.DonorName, p.FoodName, p.Quantity, p.ExpiryHours, p.DistanceKM,
	)
	return msg
}
