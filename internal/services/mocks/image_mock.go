// filepath: internal/services/mocks/image_mock.go
package mocks

import (
	"io"
	"itemhub/internal/services"

	"github.com/stretchr/testify/mock"
)

// MockImageService is a testify mock of services.ImageService.
type MockImageService struct {
	mock.Mock
}

var _ services.ImageService = (*MockImageService)(nil)

func (m *MockImageService) Put(data []byte) (string, error) {
	args := m.Called(data)
	return args.String(0), args.Error(1)
}

func (m *MockImageService) Open(name string) (io.ReadCloser, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(io.ReadCloser), args.Error(1)
}
