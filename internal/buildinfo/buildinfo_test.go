package buildinfo

import (
    "testing"

    "github.com/stretchr/testify/assert"
)

func TestInfo(t *testing.T) {
    info := Info()
    assert.Equal(t, Version, info["version"])
    assert.NotEmpty(t, info["goVersion"])
    assert.Contains(t, info, "commit")
}
