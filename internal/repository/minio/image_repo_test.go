package minio

import (
	"context"
	"net/url"
	"testing"
	"time"

	"github.com/DRSN-tech/go-storefront/internal/cfg"
	"github.com/DRSN-tech/go-storefront/internal/domain"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageRepo_PresignedURL(t *testing.T) {
	// С явным регионом подпись считается локально, без запроса к серверу.
	mc, err := minio.New("localhost:9000", &minio.Options{
		Creds:  credentials.NewStaticV4("minio", "minio123", ""),
		Region: "us-east-1",
	})
	require.NoError(t, err)

	repo := NewImageRepo(mc, &cfg.MinIOCfg{BucketName: "product-images", URLTTL: 15 * time.Minute})

	raw, err := repo.PresignedURL(context.Background(), domain.NewImage("", "cameras/hikvision.jpg"))
	require.NoError(t, err)

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "/product-images/cameras/hikvision.jpg", u.Path)
	assert.Equal(t, "900", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}
