package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContactMessageText(t *testing.T) {
	got := ContactMessageText(42, "Ada", "ada@example.com", "Let's talk")
	assert.Equal(t, "*New contact message* #42\n*From:* Ada <ada@example.com>\n>Let's talk", got)
}
