package oss

import (
	"context"
	"fmt"
	"mime/multipart"
	"sync"
)

/*
BlobService adalah facade upload yang seragam untuk controller/service.
Implementasi produksi memakai Aliyun OSS; MockBlobService dipakai di test.
*/
type BlobService interface {
	// UploadFile menyimpan file multipart apa adanya pada key tersebut,
	// mengembalikan public URL.
	UploadFile(ctx context.Context, key string, fh *multipart.FileHeader) (publicURL string, err error)
	// UploadImageWebP menyimpan gambar PNG/JPEG sebagai WebP.
	UploadImageWebP(ctx context.Context, key string, fh *multipart.FileHeader) (publicURL string, err error)
}

// --------------------------------------------------
// Mock untuk test (tanpa jaringan)
// --------------------------------------------------

type MockBlobService struct {
	mu       sync.Mutex
	Uploaded []string // key yang pernah diupload, urut
	FailNext bool     // paksa error pada upload berikutnya
}

func (m *MockBlobService) record(key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailNext {
		m.FailNext = false
		return "", fmt.Errorf("mock upload gagal")
	}
	m.Uploaded = append(m.Uploaded, key)
	return "https://mock.local/" + key, nil
}

func (m *MockBlobService) UploadFile(ctx context.Context, key string, fh *multipart.FileHeader) (string, error) {
	return m.record(key)
}

func (m *MockBlobService) UploadImageWebP(ctx context.Context, key string, fh *multipart.FileHeader) (string, error) {
	return m.record(key)
}
