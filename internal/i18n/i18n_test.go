package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", LocaleTH},
		{"th", LocaleTH},
		{"th-TH", LocaleTH},
		{"TH-th", LocaleTH},
		{"en", LocaleEN},
		{"en-GB", LocaleEN},
		{"ja-JP", LocaleTH},
	}
	for _, tc := range cases {
		if got := Normalize(tc.in); got != tc.want {
			t.Fatalf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestResolveLocaleQueryBeatsHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?lang=en", nil)
	c.Request.Header.Set("Accept-Language", "th-TH,th;q=0.9")

	if got := ResolveLocale(c); got != LocaleEN {
		t.Fatalf("expected query lang to win, got %q", got)
	}
}

func TestResolveLocaleAcceptLanguage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Accept-Language", "ja-JP,en-US;q=0.8")

	if got := ResolveLocale(c); got != LocaleEN {
		t.Fatalf("expected first supported header tag, got %q", got)
	}
}

func TestTFallback(t *testing.T) {
	if got := T(LocaleTH, "no.such.key"); got != "no.such.key" {
		t.Fatalf("expected key returned for missing message, got %q", got)
	}
	th := T(LocaleTH, "error.invalid_request")
	en := T(LocaleEN, "error.invalid_request")
	if th == "" || en == "" {
		t.Fatalf("expected message present in both catalogs")
	}
	if th == "error.invalid_request" || en == "error.invalid_request" {
		t.Fatalf("expected translated message, got key back")
	}
}
