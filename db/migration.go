package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	pgkvstore "resume-flow-backend/lib/keyval/pg-store"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("开始迁移")
	if err := DB.AutoMigrate(&pgkvstore.KvRecord{}); err != nil {
		return errors.Wrap(err, "创建 KvRecord 表结构失败")
	}
	log.Info("迁移完成")
	return nil
}
