package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/hotelio/frontdesk/internal/service"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "stepup:"

// StepUpStore keeps single-use authorization tokens in Redis. Consume uses
// GETDEL, so redeeming is atomic even across multiple API instances.
type StepUpStore struct {
	client *redis.Client
}

func NewStepUpStore(client *redis.Client) *StepUpStore {
	return &StepUpStore{client: client}
}

func (s *StepUpStore) Issue(ctx context.Context, token service.StepUpToken, ttl time.Duration) (string, error) {
	body, err := json.Marshal(token)
	if err != nil {
		return "", err
	}
	key := uuid.NewString()
	if err := s.client.Set(ctx, keyPrefix+key, body, ttl).Err(); err != nil {
		return "", fmt.Errorf("store step-up token: %w", err)
	}
	return key, nil
}

func (s *StepUpStore) Consume(ctx context.Context, key string) (*service.StepUpToken, error) {
	body, err := s.client.GetDel(ctx, keyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, service.ErrStepUpInvalid
	}
	if err != nil {
		return nil, fmt.Errorf("redeem step-up token: %w", err)
	}
	var token service.StepUpToken
	if err := json.Unmarshal(body, &token); err != nil {
		return nil, service.ErrStepUpInvalid
	}
	return &token, nil
}
