package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithHeader(value string) *gin.Context {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/classes", nil)
	if value != "" {
		c.Request.Header.Set(TimezoneHeader, value)
	}
	return c
}

func TestClientLocation(t *testing.T) {
	c := contextWithHeader("Asia/Kolkata")
	loc := ClientLocation(c, time.UTC)
	require.NotNil(t, loc)
	assert.Equal(t, "Asia/Kolkata", loc.String())
}

func TestClientLocationMissingHeader(t *testing.T) {
	fallback := time.FixedZone("IST", 5*3600+1800)
	c := contextWithHeader("")
	assert.Equal(t, fallback, ClientLocation(c, fallback))
}

func TestClientLocationUnknownZone(t *testing.T) {
	c := contextWithHeader("Not/AZone")
	assert.Equal(t, time.UTC, ClientLocation(c, time.UTC))
}

func TestLoadDefaultLocation(t *testing.T) {
	loc := LoadDefaultLocation("Asia/Kolkata")
	assert.Equal(t, "Asia/Kolkata", loc.String())

	assert.Equal(t, time.UTC, LoadDefaultLocation("nope"))
}
