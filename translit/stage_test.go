package translit

import "testing"

// sampleText exercises every stage: leading/trailing whitespace, accents,
// typographic punctuation, expanding substitutions, tab runs, CRLF line
// endings, and scripts that drop outright.
const sampleText = "  \u201cD\u00e9j\u00e0 vu\u201d \u2014 it\u2019s caf\u00e9 time\u2026\r\n25\u00b0 \u00d7 3 \u2022 \u20ac100\t中文 Привет  "

// The rule order is load-bearing: substitution before the catch-all drop,
// decomposition before the mark strip. Guard it by name.
func TestPipelineOrder(t *testing.T) {
	t.Parallel()

	want := []string{
		"decompose",
		"substitute",
		"strip-marks",
		"strip-non-ascii",
		"normalize-whitespace",
		"trim",
	}
	if len(pipeline) != len(want) {
		t.Fatalf("pipeline has %d rules, want %d", len(pipeline), len(want))
	}
	for i, r := range pipeline {
		if r.name != want[i] {
			t.Errorf("pipeline[%d] = %q, want %q", i, r.name, want[i])
		}
	}
}

func TestStagesShape(t *testing.T) {
	t.Parallel()

	sts := Stages()
	if len(sts) != 7 {
		t.Fatalf("Stages() returned %d stages, want 7", len(sts))
	}
	for i, st := range sts {
		if st.Ordinal != i {
			t.Errorf("stage %d has Ordinal %d", i, st.Ordinal)
		}
		if st.Label == "" || st.Description == "" {
			t.Errorf("stage %d has empty label or description", i)
		}
	}
}

func TestStagesReturnsCopy(t *testing.T) {
	t.Parallel()

	sts := Stages()
	sts[0].Label = "mutated"
	if got := Stages()[0].Label; got == "mutated" {
		t.Error("mutating the returned slice affected the package stages")
	}
}

func TestApplyStageIdentity(t *testing.T) {
	t.Parallel()

	res := ApplyStage(0, sampleText)
	if res.Text != sampleText {
		t.Errorf("stage 0 text = %q, want the sample unchanged", res.Text)
	}
	if res.Description != stages[0].Description {
		t.Errorf("stage 0 description = %q, want %q", res.Description, stages[0].Description)
	}
}

func TestApplyStageFinal(t *testing.T) {
	t.Parallel()

	samples := []string{
		sampleText,
		"",
		"plain ascii",
		"caf\u00e9 \u20ac100 中文",
	}
	for _, s := range samples {
		if got, want := ApplyStage(6, s).Text, Convert(s); got != want {
			t.Errorf("stage 6 text for %q = %q, Convert = %q", s, got, want)
		}
	}
}

// The last two stages differ only in label and description text.
func TestFinalStagesIdenticalText(t *testing.T) {
	t.Parallel()

	five := ApplyStage(5, sampleText)
	six := ApplyStage(6, sampleText)
	if five.Text != six.Text {
		t.Errorf("stage 5 text %q != stage 6 text %q", five.Text, six.Text)
	}
	if five.Description == six.Description {
		t.Error("stage 5 and 6 should carry distinct descriptions")
	}
}

// The sample carries leading and trailing whitespace, so the global trim
// stage must be observable on it.
func TestTrimStageObservable(t *testing.T) {
	t.Parallel()

	if ApplyStage(4, sampleText).Text == ApplyStage(5, sampleText).Text {
		t.Error("stage 4 and stage 5 agree on the sample; the sample no longer exercises the trim stage")
	}
}

// Each stage is the previous stage's output with the next rule groups
// applied: replaying the pipeline suffix over an earlier stage's text must
// land exactly on the later stage's text.
func TestStageMonotonicRefinement(t *testing.T) {
	t.Parallel()

	samples := []string{sampleText, "", "caf\u00e9\r\n \u20ac5\u2026  "}

	for _, sample := range samples {
		for i := 0; i < len(stages); i++ {
			for j := i + 1; j < len(stages); j++ {
				earlier := stages[i].Transform(sample)
				want := stages[j].Transform(sample)
				got := applyRules(earlier, pipeline[stages[i].steps:stages[j].steps])
				if got != want {
					t.Errorf("stage %d -> %d not a refinement for %q:\nreplayed: %q\ndirect:   %q",
						i, j, sample, got, want)
				}
			}
		}
	}
}

func TestApplyStageClampsOrdinal(t *testing.T) {
	t.Parallel()

	if got, want := ApplyStage(-1, sampleText), ApplyStage(0, sampleText); got != want {
		t.Errorf("ApplyStage(-1) = %+v, want stage 0 result %+v", got, want)
	}
	if got, want := ApplyStage(99, sampleText), ApplyStage(6, sampleText); got != want {
		t.Errorf("ApplyStage(99) = %+v, want stage 6 result %+v", got, want)
	}
}
