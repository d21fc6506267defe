package videourl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	valid := []string{
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"http://youtube.com/watch?v=dQw4w9WgXcQ",
		"youtube.com/watch?v=dQw4w9WgXcQ",
		"https://youtu.be/dQw4w9WgXcQ",
		"youtu.be/dQw4w9WgXcQ",
		"HTTPS://WWW.YOUTUBE.COM/watch?v=dQw4w9WgXcQ",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
		"https://youtu.be/dQw4w9WgXcQ?t=42",
		"https://youtu.be/dQw4w9WgXcQ#start",
		"  https://youtu.be/dQw4w9WgXcQ  ",
	}
	for _, url := range valid {
		assert.True(t, IsValid(url), url)
	}

	invalid := []string{
		"",
		"not a url",
		"https://vimeo.com/12345",
		"https://youtu.be/short",
		"https://youtu.be/waytoolongvideoid",
		"https://youtube.com/watch?v=bad!chars!!",
		"https://youtube.com/playlist?list=PL123",
	}
	for _, url := range invalid {
		assert.False(t, IsValid(url), url)
	}
}

func TestExtractID(t *testing.T) {
	assert.Equal(t, "dQw4w9WgXcQ", ExtractID("https://youtu.be/dQw4w9WgXcQ?t=42"))
	assert.Equal(t, "dQw4w9WgXcQ", ExtractID("youtube.com/watch?v=dQw4w9WgXcQ"))
	assert.Equal(t, "", ExtractID("not a url"))
}
