package translit

import (
	"testing"
	"unicode"
)

func FuzzConvert(f *testing.F) {
	f.Add("hello world")
	f.Add("café naïve résumé")
	f.Add("“Hello” — world…")
	f.Add("€100 £5 ¥200 99¢")
	f.Add("25°C × 2")
	f.Add("©2024 Brand® Corp™")
	f.Add("中文 Привет مرحبا")
	f.Add("a   b\tc")
	f.Add("one\r\ntwo  \r\nthree")
	f.Add("")
	f.Add("   ")
	f.Add("ééé")
	f.Add("  ")
	f.Add("\xff\xfe")
	f.Add("\x00")

	f.Fuzz(func(t *testing.T, s string) {
		out := Convert(s)

		// Every rune in the output is ASCII.
		for _, r := range out {
			if r > unicode.MaxASCII {
				t.Fatalf("Convert(%q) = %q contains non-ASCII rune U+%04X", s, out, r)
			}
		}

		// The output is a fixed point of the pipeline.
		if again := Convert(out); again != out {
			t.Errorf("not idempotent:\ninput:  %q\nfirst:  %q\nsecond: %q", s, out, again)
		}

		// Stats agree with the text and with each other.
		res := ConvertWithStats(s)
		if res.ASCII != out {
			t.Errorf("ConvertWithStats(%q).ASCII = %q, Convert = %q", s, res.ASCII, out)
		}
		if res.Stats.Removed != res.Stats.InChars-res.Stats.OutChars {
			t.Errorf("inconsistent stats for %q: %+v", s, res.Stats)
		}
	})
}

func FuzzApplyStage(f *testing.F) {
	f.Add(0, "café")
	f.Add(3, "“q” — €5")
	f.Add(6, "  中文  ")
	f.Add(-1, "x")
	f.Add(99, "x")

	f.Fuzz(func(t *testing.T, ordinal int, s string) {
		res := ApplyStage(ordinal, s)
		if res.Description == "" {
			t.Errorf("ApplyStage(%d, %q) returned an empty description", ordinal, s)
		}

		// The final stage always matches the engine.
		if got, want := ApplyStage(6, s).Text, Convert(s); got != want {
			t.Errorf("stage 6 for %q = %q, Convert = %q", s, got, want)
		}
	})
}
