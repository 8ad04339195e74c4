package memkvstore

import (
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"resume-flow-backend/lib/keyval"
)

// NewInstance returns an in-memory backend. Values are stored as marshalled
// JSON so a Load after Save goes through the same round-trip as the real
// backends.
func NewInstance() keyval.Provider {
	return &impl{
		data: map[string][]byte{},
	}
}

type impl struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func (i *impl) Load(key string, out interface{}) (bool, error) {
	i.mu.RLock()
	raw, exist := i.data[key]
	i.mu.RUnlock()
	if !exist {
		return false, nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return false, errors.Wrapf(err, "解析集合失败 %v", key)
	}
	return true, nil
}

func (i *impl) Save(key string, value interface{}) error {
	body, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "序列化集合失败 %v", key)
	}
	i.mu.Lock()
	i.data[key] = body
	i.mu.Unlock()
	return nil
}
