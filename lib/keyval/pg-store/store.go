package pgkvstore

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"resume-flow-backend/lib/keyval"
)

// KvRecord is the single table behind the postgres backend: one row per
// collection key, the whole collection as a jsonb document.
type KvRecord struct {
	Key   string         `gorm:"primaryKey;type:varchar(64)"`
	Value datatypes.JSON `gorm:"type:jsonb"`
}

func (KvRecord) TableName() string {
	return "kv_records"
}

func NewInstance(DB *gorm.DB) keyval.Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Load(key string, out interface{}) (bool, error) {
	rec := KvRecord{}
	err := i.db.
		Where("key = ?", key).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, errors.Wrapf(err, "读取集合失败 %v", key)
	}
	if err = json.Unmarshal(rec.Value, out); err != nil {
		return false, errors.Wrapf(err, "解析集合失败 %v", key)
	}
	return true, nil
}

func (i impl) Save(key string, value interface{}) error {
	body, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "序列化集合失败 %v", key)
	}
	rec := KvRecord{
		Key:   key,
		Value: datatypes.JSON(body),
	}
	err = i.db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&rec).
		Error
	if err != nil {
		return errors.Wrapf(err, "保存集合失败 %v", key)
	}
	return nil
}
