package backend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSelect(t *testing.T) {
	signed := Environment{IsBundle: true, IsSignedBundle: true}
	unsigned := Environment{IsBundle: true}

	tests := []struct {
		name    string
		goos    string
		version string
		env     Environment
		want    Kind
	}{
		{"linux", "linux", "", Environment{}, KindDBus},
		{"linux ignores version", "linux", "3.2", Environment{}, KindDBus},
		{"darwin signed bundle", "darwin", "14.2.1", signed, KindCocoa},
		{"darwin at threshold", "darwin", "10.14", signed, KindCocoa},
		{"darwin below threshold", "darwin", "10.13.6", signed, KindNoop},
		{"darwin unsigned bundle", "darwin", "14.2.1", unsigned, KindNoop},
		{"darwin outside bundle", "darwin", "14.2.1", Environment{}, KindNoop},
		{"darwin unknown version", "darwin", "", signed, KindNoop},
		{"windows 11", "windows", "10.0.22631", Environment{}, KindToast},
		{"windows at threshold", "windows", "10.0.10240", Environment{}, KindToast},
		{"windows 8", "windows", "6.3.9600", Environment{}, KindNoop},
		{"freebsd", "freebsd", "", Environment{}, KindNoop},
		{"js", "js", "", Environment{}, KindNoop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Select(tt.goos, tt.version, tt.env))
		})
	}
}

func TestSelect_Deterministic(t *testing.T) {
	env := Environment{IsBundle: true, IsSignedBundle: true}
	first := Select("darwin", "13.0", env)
	for i := 0; i < 100; i++ {
		assert.Equal(t, first, Select("darwin", "13.0", env))
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"10.14", "10.14", 0},
		{"10.14.6", "10.14", 1},
		{"10.13", "10.14", -1},
		{"10.0.10240", "10.0.10240", 0},
		{"10.0.22631", "10.0.10240", 1},
		{"6.3.9600", "10.0.10240", -1},
		{"11", "10.14", 1},
		{"", "10.14", -1},
		{"garbage", "10.14", -1},
		{"10", "10.0.0", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CompareVersions(tt.a, tt.b), "CompareVersions(%q, %q)", tt.a, tt.b)
	}
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "dbus", KindDBus.String())
	assert.Equal(t, "toast", KindToast.String())
	assert.Equal(t, "cocoa", KindCocoa.String())
	assert.Equal(t, "noop", KindNoop.String())
}
