package browser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFindFirstExecutable_NoneFound(t *testing.T) {
	assert.Empty(t, findFirstExecutable("definitely-not-a-browser-binary"))
}

func TestAllocatorOptions(t *testing.T) {
	f := &Fetcher{timeout: time.Second}
	base := len(f.allocatorOptions())

	f.execPath = "/usr/bin/chromium"
	assert.Len(t, f.allocatorOptions(), base+1, "exec path adds one option")
}
