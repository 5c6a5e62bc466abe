package api

import (
	"time"

	"github.com/gin-gonic/gin"
)

// TimezoneHeader carries an IANA timezone name from the client. When
// present, response timestamps are rendered in that zone; otherwise the
// configured default zone is used.
const TimezoneHeader = "X-Timezone"

func ClientLocation(c *gin.Context, fallback *time.Location) *time.Location {
	name := c.GetHeader(TimezoneHeader)
	if name == "" {
		return fallback
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return fallback
	}
	return loc
}

// LoadDefaultLocation resolves the configured default timezone, falling
// back to UTC if the name is unknown.
func LoadDefaultLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}
