package templates

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRenderVerification(t *testing.T) {
	t.Parallel()

	text, html, err := RenderVerification("482913", time.Now().Add(15*time.Minute))
	require.NoError(t, err)

	for _, body := range []string{text, html} {
		if !strings.Contains(body, "482913") {
			t.Fatalf("body does not contain the code: %q", body)
		}
		if !strings.Contains(body, "15 minutes") {
			t.Fatalf("body does not mention the validity window: %q", body)
		}
	}
}

func TestFormatValidity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		d    time.Duration
		want string
	}{
		{-time.Minute, "0 minutes"},
		{30 * time.Second, "1 minute"},
		{time.Minute, "1 minute"},
		{15 * time.Minute, "15 minutes"},
	}
	for _, tc := range cases {
		if got := formatValidity(tc.d); got != tc.want {
			t.Errorf("formatValidity(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}
