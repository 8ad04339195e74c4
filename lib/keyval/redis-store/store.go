package rediskvstore

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"resume-flow-backend/lib/keyval"
)

func NewInstance(client *redis.Client) keyval.Provider {
	return &impl{
		client: client,
	}
}

type impl struct {
	client *redis.Client
}

func (i impl) Load(key string, out interface{}) (bool, error) {
	raw, err := i.client.Get(context.Background(), key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, errors.Wrapf(err, "读取集合失败 %v", key)
	}
	if err = json.Unmarshal([]byte(raw), out); err != nil {
		return false, errors.Wrapf(err, "解析集合失败 %v", key)
	}
	return true, nil
}

func (i impl) Save(key string, value interface{}) error {
	body, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "序列化集合失败 %v", key)
	}
	err = i.client.Set(context.Background(), key, body, 0).Err()
	if err != nil {
		return errors.Wrapf(err, "保存集合失败 %v", key)
	}
	return nil
}
