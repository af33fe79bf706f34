package gravatar_test

import (
	"regexp"
	"testing"

	"go-devconnect-backend/pkg/gravatar"

	"github.com/stretchr/testify/assert"
)

func TestURLShape(t *testing.T) {
	url := gravatar.URL("alice@example.com")
	assert.Regexp(t, regexp.MustCompile(`^https://www\.gravatar\.com/avatar/[0-9a-f]{32}\?s=200&r=pg&d=mm$`), url)
}

func TestURLNormalizesEmail(t *testing.T) {
	assert.Equal(t, gravatar.URL("alice@example.com"), gravatar.URL("  Alice@Example.COM "))
}

func TestURLDistinctEmails(t *testing.T) {
	assert.NotEqual(t, gravatar.URL("alice@example.com"), gravatar.URL("bob@example.com"))
}
