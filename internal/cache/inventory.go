package cache

import (
	"fmt"
	"time"
)

const (
	indexPagePrefix = "posts:index:page:%d"
	indexPageGlob   = "posts:index:page:*"
	userKeyPrefix   = "user:%d"
)

const (
	// IndexTTL bounds how stale a cached index page can get when no write
	// invalidates it.
	IndexTTL = 20 * time.Second
	UserTTL  = 5 * time.Minute
)

// IndexPageKey returns the cache key for one page of the index listing.
func IndexPageKey(page int) string {
	return fmt.Sprintf(indexPagePrefix, page)
}

// UserKey returns the cache key for a user profile.
func UserKey(userID uint) string {
	return fmt.Sprintf(userKeyPrefix, userID)
}
