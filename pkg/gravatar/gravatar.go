package gravatar

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// URL returns the gravatar image URL for an email address: size 200,
// PG rating, mystery-man default for addresses without a gravatar.
func URL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	hash := md5.Sum([]byte(normalized))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=200&r=pg&d=mm", hash)
}
