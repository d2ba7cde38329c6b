package service

import (
	"cloudvault/internal/config"
	"cloudvault/internal/entity"
	"cloudvault/internal/model"
	"cloudvault/internal/storage"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type fakeCache struct {
	entries     map[string][]byte
	invalidated int
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	data, ok := c.entries[key]
	return data, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key string, data []byte) error {
	c.entries[key] = data
	return nil
}

func (c *fakeCache) Invalidate(context.Context) error {
	c.invalidated++
	c.entries = map[string][]byte{}
	return nil
}

type failingStorage struct{}

func (failingStorage) Save(context.Context, []byte, storage.SaveOptions) (string, error) {
	return "", errors.New("bucket unavailable")
}

func (failingStorage) Delete(context.Context, string) error {
	return nil
}

func newTestRepository(t *testing.T) model.Repository {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	repo, err := model.InitRepository(config.DBConfig{
		Type: model.DBTypeSQLite,
		DSN:  fmt.Sprintf("file:svc_%s?mode=memory&cache=shared", name),
	})
	if err != nil {
		t.Fatalf("failed to init repository: %v", err)
	}
	return repo
}

func newLocalStorage(t *testing.T) (*storage.LocalStorage, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("failed to create storage: %v", err)
	}
	return store, dir
}

func TestSummaryWithoutRepositoryUsesSample(t *testing.T) {
	svc := NewDashboardService(nil, nil, DashboardOptions{})

	summary, err := svc.Summary(context.Background(), "grid", "doc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !summary.Sample || summary.Overview.Percent != 75 {
		t.Errorf("expected sample summary, got %+v", summary.Overview)
	}
	if summary.View != "grid" || summary.Filter != entity.FileTypeDoc {
		t.Errorf("unexpected view/filter %q/%q", summary.View, summary.Filter)
	}

	if _, err := svc.Notifications(context.Background()); !errors.Is(err, ErrRepositoryUnavailable) {
		t.Errorf("expected ErrRepositoryUnavailable, got %v", err)
	}
}

func TestUploadUpdatesSummaryAndInvalidatesCache(t *testing.T) {
	repo := newTestRepository(t)
	store, dir := newLocalStorage(t)
	cache := newFakeCache()
	ctx := context.Background()

	dash := NewDashboardService(repo, cache, DashboardOptions{QuotaBytes: 1000, PublicBaseURL: "/files"})
	files := NewFileService(repo, store, dash, 100, "/files")

	before, err := dash.Summary(ctx, "list", "all")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if before.Sample || before.Overview.UsedBytes != 0 {
		t.Fatalf("expected empty live summary, got %+v", before.Overview)
	}
	if len(cache.entries) != 1 {
		t.Fatalf("expected summary to be cached, got %d entries", len(cache.entries))
	}

	item, err := files.Upload(ctx, "Foto Praia.PNG", []byte(strings.Repeat("x", 50)))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if item.Type != entity.FileTypeImage || item.Name != "Foto Praia.PNG" {
		t.Errorf("unexpected item %+v", item)
	}
	if !strings.HasPrefix(item.URL, "/files/files/") || !strings.HasSuffix(item.URL, ".png") {
		t.Errorf("unexpected url %q", item.URL)
	}
	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(item.URL, "/files/")))); err != nil {
		t.Errorf("expected stored object: %v", err)
	}
	if cache.invalidated != 1 {
		t.Errorf("expected one invalidation, got %d", cache.invalidated)
	}

	after, err := dash.Summary(ctx, "list", "image")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if after.Overview.UsedBytes != 50 || after.Overview.Percent != 5 {
		t.Errorf("unexpected overview %+v", after.Overview)
	}
	if len(after.Files) != 1 || len(after.Distribution) != 1 || after.Distribution[0].Percent != 100 {
		t.Errorf("unexpected files/distribution %+v / %+v", after.Files, after.Distribution)
	}
}

func TestCachedSummaryRecomputesNotificationAge(t *testing.T) {
	repo := newTestRepository(t)
	cache := newFakeCache()
	ctx := context.Background()

	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	if err := repo.CreateNotification(ctx, &entity.DbNotification{
		CreatedAt: created,
		Kind:      "share",
		Message:   "Arquivo compartilhado",
	}); err != nil {
		t.Fatalf("create notification: %v", err)
	}

	dash := NewDashboardService(repo, cache, DashboardOptions{})
	dash.now = func() time.Time { return created.Add(5 * time.Minute) }

	first, err := dash.Summary(ctx, "list", "all")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(first.Notifications) != 1 || first.Notifications[0].Age != "5min atrás" {
		t.Fatalf("unexpected notifications %+v", first.Notifications)
	}
	if len(cache.entries) != 1 {
		t.Fatalf("expected summary to be cached, got %d entries", len(cache.entries))
	}

	dash.now = func() time.Time { return created.Add(3 * time.Hour) }
	second, err := dash.Summary(ctx, "list", "all")
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if len(second.Notifications) != 1 || second.Notifications[0].Age != "3h atrás" {
		t.Errorf("expected age from cached creation time, got %+v", second.Notifications)
	}
	if !second.Notifications[0].CreatedAt.Equal(created) {
		t.Errorf("expected cached creation time %v, got %v", created, second.Notifications[0].CreatedAt)
	}
}

func TestUploadRejectsInvalidPayloads(t *testing.T) {
	repo := newTestRepository(t)
	store, _ := newLocalStorage(t)
	files := NewFileService(repo, store, nil, 10, "/files")

	if _, err := files.Upload(context.Background(), "a.txt", nil); !errors.Is(err, ErrEmptyFile) {
		t.Errorf("expected ErrEmptyFile, got %v", err)
	}
	if _, err := files.Upload(context.Background(), "a.txt", make([]byte, 11)); !errors.Is(err, ErrFileTooLarge) {
		t.Errorf("expected ErrFileTooLarge, got %v", err)
	}
	if _, err := NewFileService(nil, store, nil, 0, "").Upload(context.Background(), "a.txt", []byte("x")); !errors.Is(err, ErrRepositoryUnavailable) {
		t.Errorf("expected ErrRepositoryUnavailable, got %v", err)
	}
}

func TestDeleteFileRemovesObject(t *testing.T) {
	repo := newTestRepository(t)
	store, dir := newLocalStorage(t)
	ctx := context.Background()
	files := NewFileService(repo, store, nil, 0, "")

	item, err := files.Upload(ctx, "notes.txt", []byte("hello"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	stored, err := repo.GetFile(ctx, item.ID)
	if err != nil {
		t.Fatalf("get file: %v", err)
	}

	if err := files.Delete(ctx, item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(stored.ObjectKey))); !os.IsNotExist(err) {
		t.Errorf("expected object to be removed, got %v", err)
	}
	if err := files.Delete(ctx, item.ID); err == nil {
		t.Error("expected error deleting a missing file")
	}
}

func TestBackupWritesManifestAndNotification(t *testing.T) {
	repo := newTestRepository(t)
	store, dir := newLocalStorage(t)
	cache := newFakeCache()
	ctx := context.Background()

	dash := NewDashboardService(repo, cache, DashboardOptions{})
	files := NewFileService(repo, store, dash, 0, "/files")
	backups := NewBackupService(repo, store, dash, "/files")

	for _, name := range []string{"a.pdf", "b.mp4"} {
		if _, err := files.Upload(ctx, name, []byte("data")); err != nil {
			t.Fatalf("upload %s: %v", name, err)
		}
	}

	item, err := backups.Create(ctx)
	if err != nil {
		t.Fatalf("backup: %v", err)
	}
	if item.Status != entity.BackupStatusCompleted || item.FileCount != 2 || item.SizeBytes != 8 {
		t.Errorf("unexpected backup %+v", item)
	}

	raw, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(strings.TrimPrefix(item.ManifestURL, "/files/"))))
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}
	var manifest entity.BackupManifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		t.Fatalf("decode manifest: %v", err)
	}
	if manifest.BackupID != item.ID || len(manifest.Files) != 2 {
		t.Errorf("unexpected manifest %+v", manifest)
	}

	notifications, err := dash.Notifications(ctx)
	if err != nil {
		t.Fatalf("notifications: %v", err)
	}
	if len(notifications.Notifications) != 1 || notifications.Notifications[0].Kind != "backup" {
		t.Errorf("expected one backup notification, got %+v", notifications.Notifications)
	}
}

func TestBackupStorageFailureRecordsAlert(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()
	dash := NewDashboardService(repo, nil, DashboardOptions{})
	backups := NewBackupService(repo, failingStorage{}, dash, "")
	backups.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }

	item, err := backups.Create(ctx)
	if !errors.Is(err, ErrBackupFailed) {
		t.Fatalf("expected ErrBackupFailed, got %v", err)
	}
	if item == nil || item.Status != entity.BackupStatusFailed || item.ErrorMessage != "bucket unavailable" {
		t.Fatalf("unexpected backup %+v", item)
	}

	list, err := dash.Backups(ctx)
	if err != nil {
		t.Fatalf("backups: %v", err)
	}
	if len(list.Backups) != 1 || list.Backups[0].Status != entity.BackupStatusFailed {
		t.Errorf("expected failed backup to be recorded, got %+v", list.Backups)
	}

	notifications, err := dash.Notifications(ctx)
	if err != nil {
		t.Fatalf("notifications: %v", err)
	}
	if len(notifications.Notifications) != 1 || notifications.Notifications[0].Icon != "alert" {
		t.Errorf("expected one alert notification, got %+v", notifications.Notifications)
	}
}

func TestObjectBaseName(t *testing.T) {
	first := objectBaseName("Relatório Anual")
	second := objectBaseName("Relatório Anual")
	if first == second {
		t.Error("expected unique base names")
	}
	if !strings.HasPrefix(first, "relatrio-anual-") {
		t.Errorf("unexpected base name %q", first)
	}
	if got := objectBaseName("***"); len(got) != 8 {
		t.Errorf("expected bare suffix, got %q", got)
	}
}
