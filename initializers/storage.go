package initializers

import (
	"resume-flow-backend/config"
	"resume-flow-backend/db"
	"resume-flow-backend/lib/dataset"
	"resume-flow-backend/lib/keyval"
	memkvstore "resume-flow-backend/lib/keyval/mem-store"
	pgkvstore "resume-flow-backend/lib/keyval/pg-store"
	rediskvstore "resume-flow-backend/lib/keyval/redis-store"

	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
)

func InitStorage() {
	var kv keyval.Provider
	switch config.Conf.Storage.Driver {
	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     config.Conf.Redis.Addr,
			Password: config.Conf.Redis.Password,
			DB:       config.Conf.Redis.DB,
		})
		kv = rediskvstore.NewInstance(client)
		log.Info("存储驱动: redis")
	case "memory":
		kv = memkvstore.NewInstance()
		log.Info("存储驱动: in-memory")
	default:
		InitDBConnection()
		kv = pgkvstore.NewInstance(db.DB)
		log.Info("存储驱动: postgres")
	}
	err := dataset.NewHandler(kv)
	if err != nil {
		panic(err.Error())
	}
}
