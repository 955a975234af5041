package service

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"
	"net/http"
	"path"
	"strings"
	"time"

	"IdeaHub/config"
	"IdeaHub/pkg/snowflake"

	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss"
	"github.com/aliyun/alibabacloud-oss-go-sdk-v2/oss/credentials"
	_ "golang.org/x/image/webp"
)

var _ IOssService = (*OssService)(nil)

type IOssService interface {
	// UploadDocument 上传创意附件, 返回 objectKey 和公开访问 URL
	UploadDocument(ctx context.Context, ideaID uint64, header *multipart.FileHeader) (string, string, error)

	// UploadReader 上传流
	UploadReader(ctx context.Context, reader io.Reader, objectKey string) error

	// DownloadReader 下载为流
	DownloadReader(ctx context.Context, objectKey string) (io.ReadCloser, error)

	// Delete 删除对象
	Delete(ctx context.Context, objectKey string) error

	// SignURL 生成临时访问 URL(秒)
	SignURL(ctx context.Context, objectKey string, expireSeconds int64) (string, error)
}

type OssService struct {
	Client     *oss.Client
	BucketName string
	Endpoint   string
}

func NewOssService(cfg *config.OssConfig) IOssService {
	ossCfg := oss.LoadDefaultConfig().
		WithEndpoint(cfg.Endpoint).
		WithRegion(cfg.Region).
		WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				cfg.AccessKeyID,
				cfg.AccessKeySecret,
			),
		)

	client := oss.NewClient(ossCfg)

	return &OssService{
		Client:     client,
		BucketName: cfg.Bucket,
		Endpoint:   cfg.Endpoint,
	}
}

// 允许的附件类型
var allowedDocMime = map[string]bool{
	"application/pdf": true,
	"application/zip": true,
	"text/plain; charset=utf-8": true,
	"image/jpeg":                true,
	"image/png":                 true,
	"image/webp":                true,
	"application/msword":        true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       true,
	"application/octet-stream": true,
}

func (s *OssService) UploadDocument(ctx context.Context, ideaID uint64, header *multipart.FileHeader) (string, string, error) {
	const maxSize int64 = 20 << 20 // 20MB

	if header == nil {
		return "", "", fmt.Errorf("missing file")
	}
	if header.Size <= 0 || header.Size > maxSize {
		return "", "", fmt.Errorf("file size invalid")
	}

	f, err := header.Open()
	if err != nil {
		return "", "", err
	}
	defer f.Close()

	seeker, ok := f.(io.ReadSeeker)
	if !ok {
		return "", "", fmt.Errorf("uploaded file is not seekable")
	}

	// MIME 校验(读取前 512 bytes)
	head := make([]byte, 512)
	n, _ := seeker.Read(head)
	contentType := http.DetectContentType(head[:n])
	if !allowedDocMime[contentType] {
		return "", "", fmt.Errorf("unsupported file type: %s", contentType)
	}
	_, _ = seeker.Seek(0, io.SeekStart)

	// 图片附件额外校验能否解码出尺寸
	if strings.HasPrefix(contentType, "image/") {
		if _, _, err := image.DecodeConfig(seeker); err != nil {
			return "", "", fmt.Errorf("invalid image: %w", err)
		}
		_, _ = seeker.Seek(0, io.SeekStart)
	}

	objectKey := fmt.Sprintf("idea/%d/%s/%d%s",
		ideaID,
		time.Now().Format("2006/01/02"),
		snowflake.GenID(),
		path.Ext(header.Filename),
	)

	limited := io.LimitReader(seeker, maxSize+1)
	if _, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   limited,
	}); err != nil {
		return "", "", err
	}

	url := fmt.Sprintf("https://%s.%s/%s", s.BucketName, s.Endpoint, objectKey)
	return objectKey, url, nil
}

// UploadReader 上传 Reader
func (s *OssService) UploadReader(ctx context.Context, reader io.Reader, objectKey string) error {
	_, err := s.Client.PutObject(ctx, &oss.PutObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
		Body:   reader,
	})
	return err
}

// DownloadReader 下载为流
func (s *OssService) DownloadReader(ctx context.Context, objectKey string) (io.ReadCloser, error) {
	out, err := s.Client.GetObject(ctx, &oss.GetObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	})
	if err != nil {
		return nil, err
	}
	return out.Body, nil
}

// Delete 删除对象
func (s *OssService) Delete(ctx context.Context, objectKey string) error {
	_, err := s.Client.DeleteObject(ctx, &oss.DeleteObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	})
	return err
}

// SignURL 生成临时访问 URL
func (s *OssService) SignURL(ctx context.Context, objectKey string, expireSeconds int64) (string, error) {
	result, err := s.Client.Presign(ctx, &oss.GetObjectRequest{
		Bucket: oss.Ptr(s.BucketName),
		Key:    oss.Ptr(objectKey),
	}, oss.PresignExpires(time.Duration(expireSeconds)*time.Second))
	if err != nil {
		return "", err
	}

	return result.URL, nil
}
