package launcher

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestParseKind_ValidatesInput tests launcher name parsing with various inputs
func TestParseKind_ValidatesInput(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    Kind
		expectError bool
	}{
		{name: "Alfred_ShouldSucceed", input: "alfred", expected: KindAlfred},
		{name: "Hain_ShouldSucceed", input: "hain", expected: KindHain},
		{name: "Albert_ShouldSucceed", input: "albert", expected: KindAlbert},
		{name: "MixedCase_ShouldSucceed", input: "Alfred", expected: KindAlfred},
		{name: "Whitespace_ShouldSucceed", input: "  hain ", expected: KindHain},
		{name: "Empty_ShouldFail", input: "", expectError: true},
		{name: "Unknown_ShouldFail", input: "rofi", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := ParseKind(tt.input)

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrUnknownLauncher))
				assert.False(t, kind.Valid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, kind)
		})
	}
}

// TestParseKind_Property_RoundTripsAnyCase tests that every kind parses back from its name in any case
func TestParseKind_Property_RoundTripsAnyCase(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		kind := rapid.SampledFrom(Kinds()).Draw(t, "kind")
		upper := rapid.SliceOfN(rapid.Bool(), len(kind.String()), len(kind.String())).Draw(t, "upper")

		var b strings.Builder
		for i, r := range kind.String() {
			if upper[i] {
				b.WriteString(strings.ToUpper(string(r)))
			} else {
				b.WriteRune(r)
			}
		}

		parsed, err := ParseKind(b.String())
		if err != nil {
			t.Fatalf("ParseKind(%q) failed: %v", b.String(), err)
		}
		if parsed != kind {
			t.Fatalf("ParseKind(%q) = %v, want %v", b.String(), parsed, kind)
		}
	})
}

func TestKind_StringAndTitle(t *testing.T) {
	assert.Equal(t, []string{"alfred", "hain", "albert"}, KindNames())
	assert.Equal(t, "Alfred", KindAlfred.Title())
	assert.Equal(t, "Hain", KindHain.Title())
	assert.Equal(t, "Albert", KindAlbert.Title())
	assert.Equal(t, "kind(0)", Kind(0).String())
	assert.False(t, Kind(42).Valid())
}

func TestStage_NextIsOrderedAndTerminal(t *testing.T) {
	order := []Stage{StageInit, StageChecked, StageGenerated, StageDeployed, StageCompleted}
	for i := 0; i < len(order)-1; i++ {
		assert.Equal(t, order[i+1], order[i].Next(), "stage after %s", order[i])
	}
	assert.Equal(t, StageCompleted, StageCompleted.Next())
	assert.Equal(t, "generated", StageGenerated.String())
}

func TestArtifact_FileName(t *testing.T) {
	tests := []struct {
		name        string
		path        string
		expected    string
		expectError bool
	}{
		{name: "nested path", path: "target/launcher/index.js", expected: "index.js"},
		{name: "bare file", path: "icon.png", expected: "icon.png"},
		{name: "empty path", path: "", expectError: true},
		{name: "dot", path: ".", expectError: true},
		{name: "parent", path: "target/..", expectError: true},
		{name: "root", path: "/", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, err := NewArtifact(tt.path).FileName()
			if tt.expectError {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrNotFound)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, name)
		})
	}
}

func TestPlatform_DisplayName(t *testing.T) {
	assert.Equal(t, "macOS", PlatformMacOS.DisplayName())
	assert.Equal(t, "Linux", PlatformLinux.DisplayName())
	assert.Equal(t, "Windows", PlatformWindows.DisplayName())
	assert.Equal(t, "freebsd", Platform("freebsd").DisplayName())
	assert.Equal(t, "unknown", Platform("").DisplayName())
}
