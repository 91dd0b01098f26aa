// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/mock"
	"github.com/MKhiriev/go-storefront/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func uploadFile(name string, data string) models.UploadFile {
	return models.UploadFile{
		Name: name,
		Size: int64(len(data)),
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(strings.NewReader(data)), nil
		},
	}
}

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name string
		file models.UploadFile
		want error
	}{
		{name: "image", file: models.UploadFile{Name: "a.PNG", Size: 10}},
		{name: "video at the ceiling", file: models.UploadFile{Name: "a.mov", Size: models.MaxUploadSize}},
		{name: "document", file: models.UploadFile{Name: "a.pdf", Size: 10}, want: ErrUnsupportedExtension},
		{name: "no extension", file: models.UploadFile{Name: "README", Size: 10}, want: ErrUnsupportedExtension},
		{name: "too large", file: models.UploadFile{Name: "a.jpg", Size: models.MaxUploadSize + 1}, want: ErrFileTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUpload(tt.file)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestEditorService_Upload_Batch(t *testing.T) {
	store := newMemoryStore()
	editor := newTestEditor(store)
	editor.now = fixedClock(1718000000000)

	var opened bool
	oversized := models.UploadFile{
		Name: "big.jpg",
		Size: models.MaxUploadSize + 1,
		Open: func() (io.ReadCloser, error) {
			opened = true
			return nil, errors.New("must not be opened")
		},
	}
	custom := uploadFile("photo.JPG", "jpeg bytes")
	custom.CustomName = "Drill Set #2"

	report, err := editor.Upload(context.Background(), []models.UploadFile{
		uploadFile("a.png", "png bytes"),
		uploadFile("notes.txt", "text"),
		oversized,
		custom,
		uploadFile("clip.mp4", "mp4 bytes"),
	}, nil)
	require.NoError(t, err)

	assert.False(t, opened)
	assert.False(t, report.Cancelled)
	assert.Equal(t, 3, report.Uploaded)
	assert.Equal(t, 2, report.Failed)
	require.Len(t, report.Results, 5)

	assert.Equal(t, "product_1718000000000.png", report.Results[0].StoredAs)
	assert.ErrorIs(t, report.Results[1].Err, ErrUnsupportedExtension)
	assert.ErrorIs(t, report.Results[2].Err, ErrFileTooLarge)
	assert.Equal(t, "Drill_Set__2_1718000000001.jpg", report.Results[3].StoredAs)
	assert.Equal(t, "product_1718000000002.mp4", report.Results[4].StoredAs)

	assert.True(t, store.has("media/.gitkeep"))
	assert.True(t, store.has("media/product_1718000000000.png"))
	assert.True(t, store.has("media/Drill_Set__2_1718000000001.jpg"))
	assert.True(t, store.has("media/product_1718000000002.mp4"))
}

func TestEditorService_Upload_NamesIncreaseWithClock(t *testing.T) {
	editor := newTestEditor(newMemoryStore())

	editor.now = fixedClock(2000)
	first := editor.uploadName(models.UploadFile{Name: "a.jpg"})
	editor.now = fixedClock(1000)
	second := editor.uploadName(models.UploadFile{Name: "a.jpg"})
	editor.now = fixedClock(5000)
	third := editor.uploadName(models.UploadFile{Name: "a.jpg"})

	assert.Equal(t, "product_2000.jpg", first)
	assert.Equal(t, "product_2001.jpg", second)
	assert.Equal(t, "product_5000.jpg", third)
}

func TestEditorService_Upload_CancelStopsRemainingFiles(t *testing.T) {
	store := newMemoryStore()
	editor := newTestEditor(store)

	control := &UploadControl{}
	var progress []int
	control.Progress = func(done, total int, _ models.UploadResult) {
		progress = append(progress, done)
		assert.Equal(t, 3, total)
		if done == 1 {
			control.Cancel()
		}
	}

	report, err := editor.Upload(context.Background(), []models.UploadFile{
		uploadFile("a.jpg", "a"),
		uploadFile("b.jpg", "b"),
		uploadFile("c.jpg", "c"),
	}, control)
	require.NoError(t, err)

	assert.True(t, report.Cancelled)
	assert.Equal(t, 1, report.Uploaded)
	assert.Len(t, report.Results, 1)
	assert.Equal(t, []int{1}, progress)

	files, err := store.List(context.Background(), "media")
	require.NoError(t, err)
	assert.Len(t, files, 1, "uploaded files are kept")
}

func TestEditorService_Upload_ExistingFolderNotRecreated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock.NewMockContentStore(ctrl)
	store.EXPECT().Token().Return("secret").AnyTimes()
	store.EXPECT().FolderExists(gomock.Any(), "media").Return(true, nil)
	store.EXPECT().Put(gomock.Any(), "media/product_42.gif", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req models.PutRequest) (string, error) {
			assert.Equal(t, "Add product: product_42.gif", req.Message)
			assert.Empty(t, req.SHA)
			raw, err := base64.StdEncoding.DecodeString(req.Content)
			require.NoError(t, err)
			assert.Equal(t, []byte("GIF89a"), raw)
			return "new-sha", nil
		})

	editor := newTestEditor(store)
	editor.now = fixedClock(42)

	report, err := editor.Upload(context.Background(), []models.UploadFile{uploadFile("x.gif", "GIF89a")}, nil)
	require.NoError(t, err)
	require.Len(t, report.Results, 1)
	assert.Equal(t, "new-sha", report.Results[0].SHA)
}

func TestEditorService_Upload_FailureDoesNotAbortBatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock.NewMockContentStore(ctrl)
	store.EXPECT().Token().Return("secret").AnyTimes()
	store.EXPECT().FolderExists(gomock.Any(), "media").Return(true, nil)
	gomock.InOrder(
		store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return("", adapter.ErrBadGateway),
		store.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Return("sha", nil),
	)

	report, err := newTestEditor(store).Upload(context.Background(), []models.UploadFile{
		uploadFile("a.jpg", "a"),
		uploadFile("b.jpg", "b"),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Uploaded)
	assert.ErrorIs(t, report.Results[0].Err, adapter.ErrBadGateway)
}

func TestEditorService_Upload_OnlyInvalidFilesMakeNoCalls(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mock.NewMockContentStore(ctrl)
	store.EXPECT().Token().Return("secret").AnyTimes()

	report, err := newTestEditor(store).Upload(context.Background(), []models.UploadFile{
		{Name: "a.exe", Size: 1},
		{Name: "b.jpg", Size: models.MaxUploadSize * 2},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, report.Failed)
}

func TestEditorService_Upload_FileGrewAfterValidation(t *testing.T) {
	store := newMemoryStore()
	grown := models.UploadFile{
		Name: "a.jpg",
		Size: 1,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(make([]byte, models.MaxUploadSize+1))), nil
		},
	}

	report, err := newTestEditor(store).Upload(context.Background(), []models.UploadFile{grown}, nil)
	require.NoError(t, err)
	assert.ErrorIs(t, report.Results[0].Err, ErrFileTooLarge)
}

func TestEditorService_Upload_PacesPuts(t *testing.T) {
	store := newMemoryStore()
	editor := newTestEditor(store)
	editor.workers.UploadInterval = 30 * time.Millisecond

	start := time.Now()
	report, err := editor.Upload(context.Background(), []models.UploadFile{
		uploadFile("a.jpg", "a"),
		uploadFile("b.jpg", "b"),
		uploadFile("c.jpg", "c"),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, report.Uploaded)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestEditorService_Upload_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := newTestEditor(newMemoryStore()).Upload(ctx, []models.UploadFile{uploadFile("a.jpg", "a")}, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, report.Cancelled)
}
