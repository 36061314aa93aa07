package ptr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPtr(t *testing.T) {
	req := require.New(t)
	req.Equal("0xabc", *String("0xabc"))
	req.Equal(42, *Int(42))
	req.Equal(int32(7), *Int32(7))
	req.Equal(int64(250), *Int64(250))
	req.Equal(1.5, *Float64(1.5))
	req.Equal(true, *Bool(true))
	now := time.Now()
	req.Equal(now, *Time(now))
}
