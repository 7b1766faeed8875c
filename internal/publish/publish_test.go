package publish

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// fakePutter records PutObject calls.
type fakePutter struct {
	keys         []string
	contentTypes []string
	deployIDs    []string
	failOn       string
}

func (f *fakePutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	key := *params.Key
	if f.failOn != "" && strings.HasSuffix(key, f.failOn) {
		return nil, errors.New("simulated upload failure")
	}
	f.keys = append(f.keys, key)
	f.contentTypes = append(f.contentTypes, *params.ContentType)
	f.deployIDs = append(f.deployIDs, params.Metadata["deploy-id"])
	return &s3.PutObjectOutput{}, nil
}

func writeSite(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestPublishUploadsAllFiles(t *testing.T) {
	dir := writeSite(t, map[string]string{
		"index.html":         "<p>home</p>\n",
		"main.css":           "body {}",
		"reports/daily.html": "<p>daily</p>\n",
	})

	putter := &fakePutter{}
	p := New(putter, "my-bucket", "prod")

	deployID, count, err := p.Publish(context.Background(), dir)
	if err != nil {
		t.Fatalf("Publish failed: %v", err)
	}
	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if deployID == "" {
		t.Error("empty deploy ID")
	}

	// Keys are prefixed and sorted.
	want := []string{"prod/index.html", "prod/main.css", "prod/reports/daily.html"}
	if len(putter.keys) != len(want) {
		t.Fatalf("got %d keys, want %d", len(putter.keys), len(want))
	}
	for i, w := range want {
		if putter.keys[i] != w {
			t.Errorf("keys[%d] = %q, want %q", i, putter.keys[i], w)
		}
	}

	// All objects of one deploy share the same ID.
	for _, id := range putter.deployIDs {
		if id != deployID {
			t.Errorf("deploy-id metadata = %q, want %q", id, deployID)
		}
	}
}

func TestPublishContentTypes(t *testing.T) {
	dir := writeSite(t, map[string]string{
		"index.html": "<p/>\n",
		"data.bin":   "\x00\x01",
	})

	putter := &fakePutter{}
	if _, _, err := New(putter, "b", "").Publish(context.Background(), dir); err != nil {
		t.Fatalf("Publish failed: %v", err)
	}

	for i, key := range putter.keys {
		switch {
		case strings.HasSuffix(key, ".html"):
			if !strings.HasPrefix(putter.contentTypes[i], "text/html") {
				t.Errorf("%s content type = %q", key, putter.contentTypes[i])
			}
		case strings.HasSuffix(key, ".bin"):
			if putter.contentTypes[i] != "application/octet-stream" {
				t.Errorf("%s content type = %q", key, putter.contentTypes[i])
			}
		}
	}
}

func TestPublishEmptyDir(t *testing.T) {
	_, _, err := New(&fakePutter{}, "b", "").Publish(context.Background(), t.TempDir())
	if !errors.Is(err, ErrEmptyDir) {
		t.Errorf("err = %v, want ErrEmptyDir", err)
	}
}

func TestPublishUploadFailure(t *testing.T) {
	dir := writeSite(t, map[string]string{"index.html": "<p/>\n"})

	putter := &fakePutter{failOn: "index.html"}
	_, _, err := New(putter, "b", "").Publish(context.Background(), dir)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "index.html") {
		t.Errorf("error does not name the failed key: %v", err)
	}
}

func TestPrefixNormalization(t *testing.T) {
	dir := writeSite(t, map[string]string{"a.html": "x"})

	putter := &fakePutter{}
	if _, _, err := New(putter, "b", "v1/").Publish(context.Background(), dir); err != nil {
		t.Fatal(err)
	}
	if putter.keys[0] != "v1/a.html" {
		t.Errorf("key = %q, want v1/a.html", putter.keys[0])
	}
}
