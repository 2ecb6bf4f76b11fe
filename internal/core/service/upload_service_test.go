package service

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/longrunpc/calmato-be/internal/core/ports"
)

type stubBlobStore struct {
	objects map[string]string
}

func newStubBlobStore() *stubBlobStore {
	return &stubBlobStore{objects: make(map[string]string)}
}

func (s *stubBlobStore) Put(_ context.Context, key, _ string, _ int64, body io.Reader) (string, error) {
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	s.objects[key] = string(b)
	return "https://bucket.example.com/" + key, nil
}

func (s *stubBlobStore) Delete(_ context.Context, key string) error {
	delete(s.objects, key)
	return nil
}

func (s *stubBlobStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := s.objects[key]
	return ok, nil
}

func (s *stubBlobStore) KeyFromURL(url string) (string, bool) {
	key, found := strings.CutPrefix(url, "https://bucket.example.com/")
	if !found || key == "" {
		return "", false
	}
	return key, true
}

func TestUploadService_Upload_KeyLayout(t *testing.T) {
	store := newStubBlobStore()
	svc := NewUploadService(store)

	result, err := svc.Upload(context.Background(), ports.UploadInput{
		Type:        "asmrImage",
		UserID:      7,
		Filename:    "Cover.PNG",
		ContentType: "image/png",
		Size:        4,
		Body:        strings.NewReader("data"),
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	parts := strings.Split(result.Key, "/")
	if len(parts) != 3 {
		t.Fatalf("unexpected key layout: %s", result.Key)
	}
	if parts[0] != "asmrImage" || parts[1] != "7" {
		t.Fatalf("unexpected key prefix: %s", result.Key)
	}
	if !strings.HasSuffix(parts[2], ".png") {
		t.Fatalf("extension not lowercased: %s", parts[2])
	}
	if result.URL != "https://bucket.example.com/"+result.Key {
		t.Fatalf("unexpected url: %s", result.URL)
	}
	if store.objects[result.Key] != "data" {
		t.Fatalf("body not stored")
	}
}

func TestUploadService_Upload_Validation(t *testing.T) {
	svc := NewUploadService(newStubBlobStore())

	if _, err := svc.Upload(context.Background(), ports.UploadInput{Type: "asmrImage"}); err != ErrFileRequired {
		t.Fatalf("expected ErrFileRequired, got %v", err)
	}

	if _, err := svc.Upload(context.Background(), ports.UploadInput{
		Type: "virus", Body: strings.NewReader("x"),
	}); err != ErrInvalidUploadType {
		t.Fatalf("expected ErrInvalidUploadType, got %v", err)
	}
}

func TestUploadService_Remove(t *testing.T) {
	store := newStubBlobStore()
	svc := NewUploadService(store)

	result, err := svc.Upload(context.Background(), ports.UploadInput{
		Type: "postImage", UserID: 1, Filename: "a.jpg", Body: strings.NewReader("x"),
	})
	if err != nil {
		t.Fatalf("upload failed: %v", err)
	}

	if err := svc.Remove(context.Background(), result.URL); err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if _, ok := store.objects[result.Key]; ok {
		t.Fatalf("object not deleted")
	}

	if err := svc.Remove(context.Background(), "https://elsewhere.example.com/foo"); err != ErrUnknownFileURL {
		t.Fatalf("expected ErrUnknownFileURL, got %v", err)
	}

	// In-bucket URL with no object behind it.
	if err := svc.Remove(context.Background(), "https://bucket.example.com/postImage/1/ghost.jpg"); err != ErrUnknownFileURL {
		t.Fatalf("expected ErrUnknownFileURL for missing object, got %v", err)
	}
}
