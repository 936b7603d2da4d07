//go:build ignore

// e2e_pipeline exercises the full conversion pipeline, the stage API and
// the embedded sample in a single run and writes structured results to
// data/e2e_pipeline.log.
// Run from the project root:
//
//	go run e2e/e2e_pipeline.go
package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
	"unicode"

	"github.com/az-ai-labs/asciify/data"
	"github.com/az-ai-labs/asciify/translit"
)

// ---------- constants ----------

const (
	logPath      = "data/e2e_pipeline.log"
	maxDetailLen = 200
	concWorkers  = 8
	concIter     = 100
	separator    = "=========================================================="
	suiteCount   = 5
)

// ---------- test corpus ----------

const textTypographic = `“Smart quotes”, ‘apostrophes’ — and dashes… plus a bullet • here.`

const textCurrency = `Prices: €100, £250, ¥9000 and 99¢ — tax © 2024 Shop™.`

const textAccented = `Le café côtier sert des crêpes à la crème fraîche. Süß, naïve, jalapeño.`

const textCJK = `中文本文 ここに日本語 한국어 텍스트`

const textCyrillic = `Москва является столицей Российской Федерации.`

const textMessy = "line one   with\t\truns  \r\nline two\r\rline four\t \r\n\r\n  indented start"

const textMixed = `Résumé № 5 — “done” at 25°C 中文 for €9…`

// ---------- types ----------

type testResult struct {
	name     string
	module   string
	passed   bool
	duration time.Duration
	detail   string
}

type moduleReport struct {
	name     string
	tests    int
	passed   int
	failed   int
	duration time.Duration
}

// ---------- helpers ----------

func pass(module, name string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: true, duration: time.Since(start)}
}

func fail(module, name, detail string, start time.Time) testResult {
	return testResult{name: name, module: module, passed: false, duration: time.Since(start), detail: truncate(detail, maxDetailLen)}
}

func truncate(s string, maxRunes int) string {
	n := 0
	for i := range s {
		n++
		if n > maxRunes {
			return s[:i] + "..."
		}
	}
	return s
}

func safeRun(module, name string, fn func() testResult) (r testResult) {
	defer func() {
		if p := recover(); p != nil {
			r = fail(module, name, fmt.Sprintf("PANIC: %v", p), time.Now())
		}
	}()
	return fn()
}

func isASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return false
		}
	}
	return true
}

func allInputs() []string {
	return []string{
		textTypographic, textCurrency, textAccented, textCJK,
		textCyrillic, textMessy, textMixed, data.Sample, "",
	}
}

// ---------- suites ----------

func testConvert() []testResult {
	const mod = "convert"
	var results []testResult

	results = append(results, safeRun(mod, "ascii_only_output", func() testResult {
		start := time.Now()
		for _, in := range allInputs() {
			if out := translit.Convert(in); !isASCII(out) {
				return fail(mod, "ascii_only_output", fmt.Sprintf("non-ASCII in output for %s", truncate(in, 40)), start)
			}
		}
		return pass(mod, "ascii_only_output", start)
	}))

	results = append(results, safeRun(mod, "idempotent", func() testResult {
		start := time.Now()
		for _, in := range allInputs() {
			once := translit.Convert(in)
			if twice := translit.Convert(once); twice != once {
				return fail(mod, "idempotent", fmt.Sprintf("first %q second %q", truncate(once, 60), truncate(twice, 60)), start)
			}
		}
		return pass(mod, "idempotent", start)
	}))

	results = append(results, safeRun(mod, "typographic_substitutions", func() testResult {
		start := time.Now()
		out := translit.Convert(textTypographic)
		for _, want := range []string{`"Smart quotes"`, `'apostrophes'`, "- and dashes...", "* here."} {
			if !strings.Contains(out, want) {
				return fail(mod, "typographic_substitutions", fmt.Sprintf("output %q missing %q", out, want), start)
			}
		}
		return pass(mod, "typographic_substitutions", start)
	}))

	results = append(results, safeRun(mod, "currency_codes", func() testResult {
		start := time.Now()
		out := translit.Convert(textCurrency)
		for _, want := range []string{"EUR100", "GBP250", "JPY9000", "99c", "(c) 2024", "Shop(TM)"} {
			if !strings.Contains(out, want) {
				return fail(mod, "currency_codes", fmt.Sprintf("output %q missing %q", out, want), start)
			}
		}
		return pass(mod, "currency_codes", start)
	}))

	results = append(results, safeRun(mod, "accents_stripped", func() testResult {
		start := time.Now()
		out := translit.Convert(textAccented)
		for _, want := range []string{"cafe cotier", "crepes", "creme fraiche", "naive", "jalapeno"} {
			if !strings.Contains(out, want) {
				return fail(mod, "accents_stripped", fmt.Sprintf("output %q missing %q", out, want), start)
			}
		}
		return pass(mod, "accents_stripped", start)
	}))

	results = append(results, safeRun(mod, "unmapped_scripts_dropped", func() testResult {
		start := time.Now()
		if out := translit.Convert(textCJK); out != "" {
			return fail(mod, "unmapped_scripts_dropped", fmt.Sprintf("CJK input left %q", out), start)
		}
		if out := translit.Convert(textCyrillic); out != "." {
			return fail(mod, "unmapped_scripts_dropped", fmt.Sprintf("Cyrillic input left %q", out), start)
		}
		return pass(mod, "unmapped_scripts_dropped", start)
	}))

	results = append(results, safeRun(mod, "whitespace_normalized", func() testResult {
		start := time.Now()
		out := translit.Convert(textMessy)
		if strings.Contains(out, "  ") || strings.Contains(out, "\t") || strings.Contains(out, "\r") {
			return fail(mod, "whitespace_normalized", fmt.Sprintf("raw whitespace survives in %q", out), start)
		}
		if got, want := strings.Count(out, "\n"), 5; got != want {
			return fail(mod, "whitespace_normalized", fmt.Sprintf("%d line feeds, want %d in %q", got, want, out), start)
		}
		return pass(mod, "whitespace_normalized", start)
	}))

	return results
}

func testStats() []testResult {
	const mod = "stats"
	var results []testResult

	results = append(results, safeRun(mod, "delta_arithmetic", func() testResult {
		start := time.Now()
		for _, in := range allInputs() {
			res := translit.ConvertWithStats(in)
			if res.Stats.Removed != res.Stats.InChars-res.Stats.OutChars {
				return fail(mod, "delta_arithmetic", fmt.Sprintf("stats %+v inconsistent", res.Stats), start)
			}
		}
		return pass(mod, "delta_arithmetic", start)
	}))

	results = append(results, safeRun(mod, "negative_delta_preserved", func() testResult {
		start := time.Now()
		res := translit.ConvertWithStats("€€€")
		if res.Stats.Removed >= 0 {
			return fail(mod, "negative_delta_preserved", fmt.Sprintf("Removed = %d, want negative", res.Stats.Removed), start)
		}
		return pass(mod, "negative_delta_preserved", start)
	}))

	results = append(results, safeRun(mod, "agrees_with_convert", func() testResult {
		start := time.Now()
		for _, in := range allInputs() {
			if translit.ConvertWithStats(in).ASCII != translit.Convert(in) {
				return fail(mod, "agrees_with_convert", truncate(in, 60), start)
			}
		}
		return pass(mod, "agrees_with_convert", start)
	}))

	return results
}

func testStages() []testResult {
	const mod = "stages"
	var results []testResult

	results = append(results, safeRun(mod, "seven_ordered_stages", func() testResult {
		start := time.Now()
		sts := translit.Stages()
		if len(sts) != 7 {
			return fail(mod, "seven_ordered_stages", fmt.Sprintf("%d stages", len(sts)), start)
		}
		for i, st := range sts {
			if st.Ordinal != i || st.Label == "" {
				return fail(mod, "seven_ordered_stages", fmt.Sprintf("stage %d malformed: %+v", i, st), start)
			}
		}
		return pass(mod, "seven_ordered_stages", start)
	}))

	results = append(results, safeRun(mod, "identity_and_final", func() testResult {
		start := time.Now()
		for _, in := range allInputs() {
			if translit.ApplyStage(0, in).Text != in {
				return fail(mod, "identity_and_final", "stage 0 is not the identity", start)
			}
			if translit.ApplyStage(6, in).Text != translit.Convert(in) {
				return fail(mod, "identity_and_final", "stage 6 disagrees with Convert", start)
			}
		}
		return pass(mod, "identity_and_final", start)
	}))

	results = append(results, safeRun(mod, "monotonic_refinement", func() testResult {
		start := time.Now()
		for _, in := range allInputs() {
			prevASCII := false
			for i := 0; i <= 6; i++ {
				text := translit.ApplyStage(i, in).Text
				ascii := isASCII(text)
				if prevASCII && !ascii {
					return fail(mod, "monotonic_refinement", fmt.Sprintf("stage %d reintroduced non-ASCII", i), start)
				}
				prevASCII = ascii
			}
		}
		return pass(mod, "monotonic_refinement", start)
	}))

	return results
}

func testSample() []testResult {
	const mod = "sample"
	var results []testResult

	results = append(results, safeRun(mod, "sample_exercises_stages", func() testResult {
		start := time.Now()
		seen := make(map[string]bool)
		distinct := 0
		for i := 0; i <= 6; i++ {
			text := translit.ApplyStage(i, data.Sample).Text
			if !seen[text] {
				seen[text] = true
				distinct++
			}
		}
		// Stages 5 and 6 coincide; every other stage must be visible.
		if distinct < 6 {
			return fail(mod, "sample_exercises_stages", fmt.Sprintf("only %d distinct stage outputs", distinct), start)
		}
		return pass(mod, "sample_exercises_stages", start)
	}))

	results = append(results, safeRun(mod, "sample_fully_converts", func() testResult {
		start := time.Now()
		out := translit.Convert(data.Sample)
		if out == "" || !isASCII(out) {
			return fail(mod, "sample_fully_converts", fmt.Sprintf("got %q", out), start)
		}
		return pass(mod, "sample_fully_converts", start)
	}))

	return results
}

func testConcurrent() []testResult {
	const mod = "concurrent"
	start := time.Now()

	want := translit.Convert(textMixed)
	wantStage := translit.ApplyStage(3, textMixed).Text

	var wg sync.WaitGroup
	mismatch := make(chan string, concWorkers)

	for w := 0; w < concWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < concIter; i++ {
				if got := translit.Convert(textMixed); got != want {
					select {
					case mismatch <- fmt.Sprintf("Convert = %q, want %q", got, want):
					default:
					}
					return
				}
				if got := translit.ApplyStage(3, textMixed).Text; got != wantStage {
					select {
					case mismatch <- fmt.Sprintf("stage 3 = %q, want %q", got, wantStage):
					default:
					}
					return
				}
			}
		}()
	}
	wg.Wait()
	close(mismatch)

	if detail, ok := <-mismatch; ok {
		return []testResult{fail(mod, "parallel_convert_stable", detail, start)}
	}
	return []testResult{pass(mod, "parallel_convert_stable", start)}
}

// ---------- runner ----------

func runAllSuites() []testResult {
	suites := []func() []testResult{
		testConvert,
		testStats,
		testStages,
		testSample,
		testConcurrent,
	}

	var all []testResult
	for _, suite := range suites {
		all = append(all, suite()...)
	}
	return all
}

func buildReports(results []testResult) []moduleReport {
	order := make(map[string]int)
	var reports []moduleReport

	for _, r := range results {
		idx, exists := order[r.module]
		if !exists {
			idx = len(reports)
			order[r.module] = idx
			reports = append(reports, moduleReport{name: r.module})
		}
		reports[idx].tests++
		reports[idx].duration += r.duration
		if r.passed {
			reports[idx].passed++
		} else {
			reports[idx].failed++
		}
	}
	return reports
}

func printSummary(results []testResult) {
	reports := buildReports(results)
	totalPassed := 0
	totalFailed := 0
	var totalDuration time.Duration

	for _, rep := range reports {
		totalPassed += rep.passed
		totalFailed += rep.failed
		totalDuration += rep.duration

		status := "OK"
		if rep.failed > 0 {
			status = "FAIL"
		}
		log.Printf("  %-12s %d/%d %s", rep.name, rep.passed, rep.tests, status)
	}

	log.Printf("")
	log.Printf("  %d tests | %d passed | %d failed | %s",
		len(results), totalPassed, totalFailed, totalDuration.Round(time.Microsecond))

	for _, r := range results {
		if !r.passed {
			log.Printf("  FAIL [%s] %s: %s", r.module, r.name, r.detail)
		}
	}
}

func writeLog(path string, results []testResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(f)

	now := time.Now().UTC().Format(time.RFC3339)
	goVer := runtime.Version()
	platform := runtime.GOOS + "/" + runtime.GOARCH

	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw, "  asciify E2E Pipeline Test")
	fmt.Fprintf(bw, "  Timestamp: %s\n", now)
	fmt.Fprintf(bw, "  Go: %s  OS: %s\n", goVer, platform)
	fmt.Fprintf(bw, "  Suites: %d\n", suiteCount)
	fmt.Fprintln(bw, separator)
	fmt.Fprintln(bw)

	reports := buildReports(results)
	for _, rep := range reports {
		fmt.Fprintf(bw, "[%s] %d tests | %d passed | %d failed | %s\n",
			rep.name, rep.tests, rep.passed, rep.failed, rep.duration.Round(time.Microsecond))
		for _, r := range results {
			if r.module != rep.name {
				continue
			}
			status := "PASS"
			if !r.passed {
				status = "FAIL"
			}
			fmt.Fprintf(bw, "  %-6s %-45s %s\n", status, r.name, r.duration.Round(time.Microsecond))
		}
		fmt.Fprintln(bw)
	}

	var failures []testResult
	for _, r := range results {
		if !r.passed {
			failures = append(failures, r)
		}
	}
	if len(failures) > 0 {
		fmt.Fprintln(bw, "--- FAILURES ---")
		for _, r := range failures {
			fmt.Fprintf(bw, "  FAIL  [%s] %-40s %s\n", r.module, r.name, r.duration.Round(time.Microsecond))
			if r.detail != "" {
				for _, line := range strings.Split(r.detail, "\n") {
					fmt.Fprintf(bw, "        %s\n", line)
				}
			}
		}
		fmt.Fprintln(bw)
	}

	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("[e2e] ")

	log.Printf("starting E2E pipeline test (%d suites)", suiteCount)
	totalStart := time.Now()

	results := runAllSuites()

	log.Printf("completed in %s", time.Since(totalStart).Round(time.Microsecond))
	log.Printf("")

	printSummary(results)

	if err := writeLog(logPath, results); err != nil {
		log.Fatalf("cannot write log: %v", err)
	}
	log.Printf("log written to %s", logPath)

	for _, r := range results {
		if !r.passed {
			os.Exit(1)
		}
	}
}
