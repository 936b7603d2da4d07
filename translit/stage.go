package translit

// Stage is one step of the conversion explainer. A Stage applies a fixed
// prefix of the conversion pipeline, so every stage's output is the
// previous stage's output with the next rule group applied — later stages
// never reorder or skip a rule.
type Stage struct {
	Ordinal     int
	Label       string
	Description string

	steps int // pipeline prefix length this stage applies
}

// StepResult is the outcome of applying one Stage to a sample.
type StepResult struct {
	Text        string
	Description string
}

// stages is built once and never mutated. Stage 4 bundles the catch-all
// drop with whitespace and line normalization, matching how the explainer
// presents the cleanup. Stages 5 and 6 produce identical text: the last
// stage exists so the finished result can be shown under its own heading.
var stages = [7]Stage{
	{Ordinal: 0, steps: 0, Label: "Original",
		Description: "The input text, untouched."},
	{Ordinal: 1, steps: 1, Label: "Decompose",
		Description: "Accented characters are split into a base letter plus combining marks (Unicode NFD)."},
	{Ordinal: 2, steps: 2, Label: "Replace symbols",
		Description: "Typographic punctuation, currency signs and other symbols are replaced with ASCII equivalents from a fixed table."},
	{Ordinal: 3, steps: 3, Label: "Strip accents",
		Description: "Combining marks left over from decomposition are removed; the base letters stay."},
	{Ordinal: 4, steps: 5, Label: "Drop the rest",
		Description: "Every remaining character above U+007F is removed, runs of spaces and tabs collapse to one space, line endings become plain line feeds, and trailing whitespace is trimmed from each line."},
	{Ordinal: 5, steps: 6, Label: "Trim",
		Description: "Leading and trailing whitespace around the whole text is removed. The text is now fully converted."},
	{Ordinal: 6, steps: 6, Label: "Result",
		Description: "The final ASCII-only text."},
}

// Transform applies the stage's pipeline prefix to sample. Stage 0 is the
// identity; the last stage is equivalent to Convert.
func (st Stage) Transform(sample string) string {
	return applyRules(sample, pipeline[:st.steps])
}

// Stages returns the ordered explainer stages. The returned slice is a
// fresh copy on every call.
func Stages() []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages[:])
	return out
}

// ApplyStage applies the stage with the given ordinal to sample and
// returns its text together with the stage description. Ordinals outside
// [0,6] clamp to the nearest valid stage, keeping the function total.
func ApplyStage(ordinal int, sample string) StepResult {
	if ordinal < 0 {
		ordinal = 0
	}
	if ordinal >= len(stages) {
		ordinal = len(stages) - 1
	}
	st := stages[ordinal]
	return StepResult{Text: st.Transform(sample), Description: st.Description}
}
