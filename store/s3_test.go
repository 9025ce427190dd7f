package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// fakeS3 keeps objects in a map keyed by bucket/key
type fakeS3 struct {
	objects map[string][]byte
	putErr  error
}

func (f *fakeS3) HeadObject(ctx context.Context, in *s3.HeadObjectInput, _ ...func(*s3.Options)) (*s3.HeadObjectOutput, error) {
	if _, ok := f.objects[*in.Bucket+"/"+*in.Key]; !ok {
		return nil, &types.NotFound{}
	}
	return &s3.HeadObjectOutput{}, nil
}

func (f *fakeS3) GetObject(ctx context.Context, in *s3.GetObjectInput, _ ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	data, ok := f.objects[*in.Bucket+"/"+*in.Key]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3.GetObjectOutput{Body: io.NopCloser(bytes.NewReader(data))}, nil
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.putErr != nil {
		return nil, f.putErr
	}
	data, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*in.Bucket+"/"+*in.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func TestS3Blob(t *testing.T) {
	ctx := context.Background()
	fake := &fakeS3{objects: map[string][]byte{}}
	blob := &S3Blob{client: fake, bucket: "labs-lunch-bot", key: "data.json"}

	exists, err := blob.Exists(ctx)
	if err != nil || exists {
		t.Fatalf("Expected missing object, got exists=%v err=%v", exists, err)
	}
	if _, err := blob.Read(ctx); !errors.Is(err, ErrBlobNotFound) {
		t.Fatalf("Expected ErrBlobNotFound, got %v", err)
	}

	if err := blob.Write(ctx, []byte(`{"restaurants":{}}`)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if _, ok := fake.objects["labs-lunch-bot/data.json"]; !ok {
		t.Fatal("Expected object under bucket/key")
	}

	exists, _ = blob.Exists(ctx)
	if !exists {
		t.Error("Expected object to exist")
	}
	got, err := blob.Read(ctx)
	if err != nil || string(got) != `{"restaurants":{}}` {
		t.Errorf("Unexpected read: %s (%v)", got, err)
	}
}

func TestS3Blob_WriteError(t *testing.T) {
	boom := errors.New("access denied")
	blob := &S3Blob{client: &fakeS3{objects: map[string][]byte{}, putErr: boom}, bucket: "b", key: "k"}

	if err := blob.Write(context.Background(), []byte("{}")); !errors.Is(err, boom) {
		t.Errorf("Expected put error, got %v", err)
	}
}
