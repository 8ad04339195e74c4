package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	// Storage 选择集合持久化后端: postgres / redis / memory
	Storage struct {
		Driver string `default:"postgres" env:"STORAGE_DRIVER"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"resume-flow" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Redis struct {
		Addr     string `default:"127.0.0.1:6379" env:"REDIS_ADDR"`
		Password string `default:"" env:"REDIS_PASSWORD"`
		DB       int    `default:"0" env:"REDIS_DB"`
	}
	Smtp struct {
		User          string `default:"" env:"SMTP_USER"`
		Password      string `default:"" env:"SMTP_PASSWORD"`
		Host          string `default:"" env:"SMTP_HOST"`
		Port          string `default:"" env:"SMTP_PORT"`
		TLSEnabled    *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		NotifyByEmail *bool  `default:"false" env:"SMTP_NOTIFY_BY_EMAIL"`
	}
	Auth struct {
		JWTSecret             string `default:"resume-flow-secret" env:"JWT_SECRET"`
		JWTExpireInSec        int    `default:"3600" env:"JWT_EXPIRE_IN_SEC"`
		JWTRefreshExpireInSec int    `default:"86400" env:"JWT_REFRESH_EXPIRE_IN_SEC"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"resume-flow" env:"S3_BUCKET_NAME"`
	}
	Sla struct {
		IdentifyHours      int   `default:"24" env:"SLA_IDENTIFY_HOURS"`
		ConnectionHours    int   `default:"24" env:"SLA_CONNECTION_HOURS"`
		FeedbackHours      int   `default:"120" env:"SLA_FEEDBACK_HOURS"`
		CheckIntervalInMin int   `default:"30" env:"SLA_CHECK_INTERVAL_IN_MIN"`
		WorkerEnabled      *bool `default:"true" env:"SLA_WORKER_ENABLED"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
