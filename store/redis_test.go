package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
)

// fakeRedis answers with the go-redis test result constructors
type fakeRedis struct {
	values map[string]string
	err    error
}

func (f *fakeRedis) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	if f.err != nil {
		return redis.NewIntResult(0, f.err)
	}
	var n int64
	for _, k := range keys {
		if _, ok := f.values[k]; ok {
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := f.values[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	if f.err != nil {
		return redis.NewStatusResult("", f.err)
	}
	f.values[key] = string(value.([]byte))
	return redis.NewStatusResult("OK", nil)
}

func TestRedisBlob(t *testing.T) {
	ctx := context.Background()
	fake := &fakeRedis{values: map[string]string{}}
	blob := NewRedisBlob(fake, "lunch:data")

	exists, err := blob.Exists(ctx)
	if err != nil || exists {
		t.Fatalf("Expected missing key, got exists=%v err=%v", exists, err)
	}
	if _, err := blob.Read(ctx); !errors.Is(err, ErrBlobNotFound) {
		t.Fatalf("Expected ErrBlobNotFound, got %v", err)
	}

	if err := blob.Write(ctx, []byte(`{"restaurants":{}}`)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	exists, _ = blob.Exists(ctx)
	if !exists {
		t.Error("Expected key to exist")
	}
	got, err := blob.Read(ctx)
	if err != nil || string(got) != `{"restaurants":{}}` {
		t.Errorf("Unexpected read: %s (%v)", got, err)
	}
}

func TestRedisBlob_Errors(t *testing.T) {
	boom := errors.New("connection refused")
	blob := NewRedisBlob(&fakeRedis{values: map[string]string{}, err: boom}, "k")

	if _, err := blob.Exists(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Expected exists error, got %v", err)
	}
	if err := blob.Write(context.Background(), []byte("{}")); !errors.Is(err, boom) {
		t.Errorf("Expected write error, got %v", err)
	}
}
