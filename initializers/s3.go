package initializers

import (
	"context"
	s3client "resume-flow-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3() {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("S3 客户端初始化失败")
		return
	}

	s3client.Client = minioClient
	err = s3client.MakeBucket(context.Background(), minioClient)
	if err != nil {
		log.WithError(err).Error("S3 存储桶检查失败")
		return
	}
	log.Info("S3 客户端初始化成功")
}
