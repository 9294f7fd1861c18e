package service_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"match-go/internal/model"
	"match-go/internal/repository"
	"match-go/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeStorage 内存照片存储，可注入失败
type fakeStorage struct {
	objects    map[string][]byte
	failUpload bool
	failRemove bool
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (s *fakeStorage) Upload(_ context.Context, objectName string, reader io.Reader, _ int64, _ string) (string, error) {
	if s.failUpload {
		return "", errors.New("storage unavailable")
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", err
	}
	s.objects[objectName] = data
	return fmt.Sprintf("http://storage.local/%s", objectName), nil
}

func (s *fakeStorage) Remove(_ context.Context, objectName string) error {
	if s.failRemove {
		return errors.New("storage unavailable")
	}
	delete(s.objects, objectName)
	return nil
}

func newPhotoService(t *testing.T) (*service.PhotoService, *gorm.DB, *fakeStorage) {
	t.Helper()
	db := newTestDB(t)
	storage := newFakeStorage()
	svc := service.NewPhotoService(repository.NewPhotoRepository(db), storage, nil)
	return svc, db, storage
}

func addTestPhoto(t *testing.T, svc *service.PhotoService, userID int64, name string) int64 {
	t.Helper()
	info, err := svc.AddPhoto(context.Background(), userID, name, strings.NewReader("img-bytes"), 9)
	require.NoError(t, err)
	return info.ID
}

func TestAddPhotoFirstBecomesMain(t *testing.T) {
	svc, db, storage := newPhotoService(t)
	ctx := context.Background()

	alice := newTestUser(t, db, "alice", model.GenderFemale, 25)

	info, err := svc.AddPhoto(ctx, alice.ID, "selfie.jpg", strings.NewReader("img-bytes"), 9)
	require.NoError(t, err)
	assert.True(t, info.IsMain)
	assert.Contains(t, info.URL, "http://storage.local/")
	assert.Len(t, storage.objects, 1)

	second, err := svc.AddPhoto(ctx, alice.ID, "beach.png", strings.NewReader("img-bytes"), 9)
	require.NoError(t, err)
	assert.False(t, second.IsMain)
}

func TestAddPhotoUnsupportedFormat(t *testing.T) {
	svc, db, storage := newPhotoService(t)
	ctx := context.Background()

	alice := newTestUser(t, db, "alice", model.GenderFemale, 25)

	_, err := svc.AddPhoto(ctx, alice.ID, "document.pdf", strings.NewReader("data"), 4)
	assert.ErrorIs(t, err, service.ErrUnsupportedPhotoFormat)
	assert.Empty(t, storage.objects)
}

func TestAddPhotoStorageFailureNoRecord(t *testing.T) {
	svc, db, storage := newPhotoService(t)
	ctx := context.Background()

	alice := newTestUser(t, db, "alice", model.GenderFemale, 25)
	storage.failUpload = true

	_, err := svc.AddPhoto(ctx, alice.ID, "selfie.jpg", strings.NewReader("img-bytes"), 9)
	assert.ErrorIs(t, err, service.ErrPhotoStorage)

	// 存储失败不落库
	var count int64
	require.NoError(t, db.Model(&model.Photo{}).Where("user_id = ?", alice.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)
}

func TestSetMainPhoto(t *testing.T) {
	svc, db, _ := newPhotoService(t)
	ctx := context.Background()

	alice := newTestUser(t, db, "alice", model.GenderFemale, 25)
	addTestPhoto(t, svc, alice.ID, "p1.jpg")
	second := addTestPhoto(t, svc, alice.ID, "p2.jpg")

	require.NoError(t, svc.SetMainPhoto(ctx, alice.ID, second))

	// 已是主照片
	assert.ErrorIs(t, svc.SetMainPhoto(ctx, alice.ID, second), service.ErrPhotoAlreadyMain)
	// 不存在的照片
	assert.ErrorIs(t, svc.SetMainPhoto(ctx, alice.ID, 99999), service.ErrPhotoNotFound)

	photos, err := svc.ListPhotos(alice.ID)
	require.NoError(t, err)
	require.Len(t, photos, 2)
	for _, p := range photos {
		assert.Equal(t, p.ID == second, p.IsMain)
	}
}

func TestRemovePhoto(t *testing.T) {
	svc, db, storage := newPhotoService(t)
	ctx := context.Background()

	alice := newTestUser(t, db, "alice", model.GenderFemale, 25)
	main := addTestPhoto(t, svc, alice.ID, "p1.jpg")
	extra := addTestPhoto(t, svc, alice.ID, "p2.jpg")

	// 主照片不可删除
	assert.ErrorIs(t, svc.RemovePhoto(ctx, alice.ID, main), service.ErrCannotDeleteMainPhoto)

	require.NoError(t, svc.RemovePhoto(ctx, alice.ID, extra))
	assert.Len(t, storage.objects, 1)

	photos, err := svc.ListPhotos(alice.ID)
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, main, photos[0].ID)
}

func TestRemovePhotoStorageFailureKeepsRecord(t *testing.T) {
	svc, db, storage := newPhotoService(t)
	ctx := context.Background()

	alice := newTestUser(t, db, "alice", model.GenderFemale, 25)
	addTestPhoto(t, svc, alice.ID, "p1.jpg")
	extra := addTestPhoto(t, svc, alice.ID, "p2.jpg")

	storage.failRemove = true
	assert.ErrorIs(t, svc.RemovePhoto(ctx, alice.ID, extra), service.ErrPhotoStorage)

	// 存储删除失败时照片记录保持不变
	photos, err := svc.ListPhotos(alice.ID)
	require.NoError(t, err)
	assert.Len(t, photos, 2)
}
