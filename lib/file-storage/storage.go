package filestorage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"

	"resume-flow-backend/config"
	s3client "resume-flow-backend/s3"
)

type Provider interface {
	// UploadResumeFile stores the original resume document and returns the
	// object path recorded on the resume.
	UploadResumeFile(ctx context.Context, resumeID, fileName string, file []byte) (objectPath string, err error)
	GetResumeFile(ctx context.Context, objectPath string) ([]byte, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		s3client: s3client.Client,
	}
}

func NewInstance(s3client *minio.Client) Provider {
	return &impl{
		s3client: s3client,
	}
}

type impl struct {
	s3client *minio.Client
}

func (i *impl) UploadResumeFile(ctx context.Context, resumeID, fileName string, file []byte) (string, error) {
	if i.s3client == nil {
		return "", errors.New("文件存储未配置")
	}
	objectPath := fmt.Sprintf("resumes/%s/%s", resumeID, path.Base(fileName))
	_, err := i.s3client.PutObject(ctx, config.Conf.S3.BucketName, objectPath,
		bytes.NewReader(file), int64(len(file)),
		minio.PutObjectOptions{ContentType: "application/octet-stream"})
	if err != nil {
		return "", errors.Wrap(err, "简历文件上传失败")
	}
	return objectPath, nil
}

func (i *impl) GetResumeFile(ctx context.Context, objectPath string) ([]byte, error) {
	if i.s3client == nil {
		return nil, errors.New("文件存储未配置")
	}
	object, err := i.s3client.GetObject(ctx, config.Conf.S3.BucketName, objectPath, minio.GetObjectOptions{})
	if err != nil {
		return nil, errors.Wrap(err, "简历文件读取失败")
	}
	defer object.Close()
	data, err := io.ReadAll(object)
	if err != nil {
		return nil, errors.Wrap(err, "简历文件读取失败")
	}
	return data, nil
}
