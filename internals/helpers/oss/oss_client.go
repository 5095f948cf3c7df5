package oss

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"strings"

	aliyunoss "github.com/aliyun/aliyun-oss-go-sdk/oss"
	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// Dimensi & kualitas untuk foto selfie presensi.
const (
	selfieMaxDim      = 1280
	selfieWebPQuality = 80
)

type OSSService struct {
	Client     *aliyunoss.Client
	Bucket     *aliyunoss.Bucket
	BucketName string
	Endpoint   string
}

// NewOSSServiceFromEnv membuat service dari ENV:
// ALI_OSS_ENDPOINT, ALI_OSS_ACCESS_KEY, ALI_OSS_SECRET_KEY, ALI_OSS_BUCKET.
func NewOSSServiceFromEnv() (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("konfigurasi OSS belum lengkap (endpoint/ak/sk/bucket)")
	}

	client, err := aliyunoss.New(endpoint, ak, sk)
	if err != nil {
		return nil, fmt.Errorf("init OSS client: %w", err)
	}
	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("open bucket: %w", err)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		BucketName: bucketName,
		Endpoint:   endpoint,
	}, nil
}

func (s *OSSService) publicURL(key string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, host, key)
}

// putObject mengunggah bytes apa adanya.
func (s *OSSService) putObject(key string, r *bytes.Reader, contentType string) error {
	opts := []aliyunoss.Option{
		aliyunoss.ContentType(contentType),
		aliyunoss.ContentDisposition("inline"),
	}
	return s.Bucket.PutObject(key, r, opts...)
}

// UploadFile mengunggah file multipart mentah (dokumen pendaftaran) ke key
// yang sudah ditentukan caller.
func (s *OSSService) UploadFile(ctx context.Context, key string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("file kosong")
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(src); err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	ct := fh.Header.Get("Content-Type")
	if ct == "" {
		ct = "application/octet-stream"
	}
	if err := s.putObject(key, bytes.NewReader(buf.Bytes()), ct); err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return s.publicURL(key), nil
}

// UploadImageWebP men-decode PNG/JPEG, resize bila kebesaran, lalu simpan
// sebagai WebP di bawah keyPrefix. Dipakai untuk foto selfie presensi.
func (s *OSSService) UploadImageWebP(ctx context.Context, key string, fh *multipart.FileHeader) (string, error) {
	if fh == nil {
		return "", fmt.Errorf("file kosong")
	}
	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	if b := img.Bounds(); b.Dx() > selfieMaxDim || b.Dy() > selfieMaxDim {
		img = imaging.Fit(img, selfieMaxDim, selfieMaxDim, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: selfieWebPQuality}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	if err := s.putObject(key, bytes.NewReader(buf.Bytes()), "image/webp"); err != nil {
		return "", fmt.Errorf("put object: %w", err)
	}
	return s.publicURL(key), nil
}
