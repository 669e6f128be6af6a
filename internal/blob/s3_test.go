package blob

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	objects map[string][]byte
	deleted []string
}

func newFakeS3() *fakeS3 {
	return &fakeS3{objects: make(map[string][]byte)}
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.objects[*params.Key] = data
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, *params.Key)
	delete(f.objects, *params.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestS3StoreUploadAndDelete(t *testing.T) {
	fake := newFakeS3()
	st := NewS3WithClient(fake, "festival-assets", "https://festival-assets.s3.eu-west-3.amazonaws.com/")
	ctx := context.Background()

	url, err := st.Upload(ctx, []byte("jpegdata"), "image/jpeg", "wallet.jpg")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "https://festival-assets.s3.eu-west-3.amazonaws.com/"))
	assert.True(t, strings.HasSuffix(url, "-wallet.jpg"))

	key := strings.TrimPrefix(url, "https://festival-assets.s3.eu-west-3.amazonaws.com/")
	assert.Equal(t, []byte("jpegdata"), fake.objects[key])

	require.NoError(t, st.Delete(ctx, url))
	assert.Equal(t, []string{key}, fake.deleted)
	assert.Empty(t, fake.objects)
}

func TestS3StoreDeleteRejectsForeignURL(t *testing.T) {
	st := NewS3WithClient(newFakeS3(), "festival-assets", "https://festival-assets.s3.eu-west-3.amazonaws.com/")
	err := st.Delete(context.Background(), "https://elsewhere.example.com/key")
	assert.Error(t, err)
}
