package notification

import (
	"context"
	"fmt"

	userRepo "reabilitepro/database/repository/user"

	"firebase.google.com/go/v4/messaging"
	"go.uber.org/zap"
)

// Service defines methods for sending FCM pushes.
type Service interface {
	SendPush(ctx context.Context, userID, title, body string, data map[string]string) error
}

// FCMNotificationService is the production implementation. It resolves the
// recipient's FCM token from the identity record and delivers through
// Firebase Cloud Messaging.
type FCMNotificationService struct {
	Users  userRepo.Repository
	Client *messaging.Client
}

func NewFCMNotificationService(users userRepo.Repository, client *messaging.Client) (*FCMNotificationService, error) {
	if users == nil || client == nil {
		return nil, fmt.Errorf("notification service initialization error: user repository or FCM client is nil")
	}
	return &FCMNotificationService{Users: users, Client: client}, nil
}

// SendPush looks up the user's FCM token and sends a push.
func (s *FCMNotificationService) SendPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	u, err := s.Users.GetByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("SendPush: could not find user %s: %w", userID, err)
	}
	if u.FCMToken == "" {
		return fmt.Errorf("SendPush: user %s has no FCM token", userID)
	}

	msg := &messaging.Message{
		Token: u.FCMToken,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}
	if _, err := s.Client.Send(ctx, msg); err != nil {
		return fmt.Errorf("SendPush: failed to deliver to user %s: %w", userID, err)
	}
	return nil
}

// NoopService is used when FCM credentials are not configured; pushes are
// logged and dropped.
type NoopService struct{}

func (NoopService) SendPush(ctx context.Context, userID, title, body string, data map[string]string) error {
	zap.L().Debug("push notification skipped (FCM not configured)",
		zap.String("userID", userID), zap.String("title", title))
	return nil
}
