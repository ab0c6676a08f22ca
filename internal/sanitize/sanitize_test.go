package sanitize

import (
	"strings"
	"testing"
)

func TestString(t *testing.T) {
	cases := map[string]string{
		"<b>Production</b>":                      "Production",
		"  Default  ":                            "Default",
		"Tom & Jerry":                            "Tom & Jerry",
		"Tom &amp; Jerry":                        "Tom & Jerry",
		`<a href="x">Web</a> App`:                "Web App",
		"&lt;b&gt;Web&lt;/b&gt;":                 "Web",
		"&amp;lt;i&amp;gt;Ops&amp;lt;/i&amp;gt;": "Ops",
		"plain":                                  "plain",
	}
	for in, want := range cases {
		if got := String(in); got != want {
			t.Errorf("String(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestString_EncodedMarkupDoesNotSurvive(t *testing.T) {
	for _, in := range []string{
		"&lt;script&gt;alert(1)&lt;/script&gt;",
		"&#60;img src=x onerror=alert(1)&#62;",
		"<<b>script>alert(1)<</b>/script>",
	} {
		got := String(in)
		if strings.Contains(got, "<script") || strings.Contains(got, "<img") || strings.Contains(got, "<b>") {
			t.Errorf("String(%q) = %q still contains markup", in, got)
		}
	}
}

func TestNames(t *testing.T) {
	s, p, e := Names("<i>Default</i>", "Web", " Production ")
	if s != "Default" || p != "Web" || e != "Production" {
		t.Fatalf("unexpected names %q %q %q", s, p, e)
	}
}
