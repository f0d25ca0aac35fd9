package clients

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/go-storefront/internal/cfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisClient_PingUnreachable(t *testing.T) {
	c := NewRedisClient(&cfg.RedisCfg{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
		Timeout:     100 * time.Millisecond,
	})
	t.Cleanup(func() { _ = c.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.Error(t, c.Ping(ctx))
}

func TestNewMinIOClient(t *testing.T) {
	mc, err := NewMinIOClient(&cfg.MinIOCfg{
		MinioEndpoint:     "localhost:9000",
		MinioRootUser:     "minio",
		MinioRootPassword: "minio123",
	})
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", mc.EndpointURL().Host)

	_, err = NewMinIOClient(&cfg.MinIOCfg{MinioEndpoint: "http://localhost:9000"})
	assert.Error(t, err, "endpoint must not carry a scheme")
}
