// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ik5/riffwave/internal/audiotest"
)

func writeFixture(t *testing.T, name string, data []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	return path
}

func canonical(channels, bits uint16, payload []byte) []byte {
	h := audiotest.PCMHeader(channels, 8000, bits)
	h.DataSize = true

	return audiotest.WAVE(h, payload)
}

func TestRunNoFiles(t *testing.T) {
	var out, errOut bytes.Buffer

	if code := run(nil, &out, &errOut); code != 0 {
		t.Fatalf("run() = %d, want 0; stderr:\n%s", code, errOut.String())
	}

	if out.Len() != 0 {
		t.Errorf("unexpected output:\n%s", out.String())
	}
}

func TestRunPrintsSummary(t *testing.T) {
	path := writeFixture(t, "stereo.wav", canonical(2, 8, []byte{1, 2, 3, 4, 5, 6}))

	var out, errOut bytes.Buffer
	if code := run([]string{path}, &out, &errOut); code != 0 {
		t.Fatalf("run() = %d, want 0; stderr:\n%s", code, errOut.String())
	}

	checks := []string{
		path,
		"PCM (0x0001)",
		"8000 Hz",
		"16000 B/s",
		"RIFF 42, fmt 16, data 6",
		"[1 3 5] (channel 0)",
	}

	for _, c := range checks {
		if !strings.Contains(out.String(), c) {
			t.Errorf("expected output to contain %q\nfull output:\n%s", c, out.String())
		}
	}
}

func TestRunPreviewLimit(t *testing.T) {
	path := writeFixture(t, "mono.wav", canonical(1, 16, audiotest.PCM16(1, 2, 3, 4)))

	var out, errOut bytes.Buffer
	if code := run([]string{"--preview", "2", path}, &out, &errOut); code != 0 {
		t.Fatalf("run() = %d, want 0; stderr:\n%s", code, errOut.String())
	}

	if !strings.Contains(out.String(), "[1 2 ...]") {
		t.Errorf("expected truncated preview\nfull output:\n%s", out.String())
	}
}

func TestRunContinuesAfterFailure(t *testing.T) {
	bad := writeFixture(t, "bad.wav", []byte("RIFX\x00\x00\x00\x00WAVE"))
	good := writeFixture(t, "good.wav", canonical(1, 8, []byte{9, 8, 7}))

	var out, errOut bytes.Buffer
	if code := run([]string{bad, good}, &out, &errOut); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}

	if !strings.Contains(errOut.String(), bad) || !strings.Contains(errOut.String(), `found "RIFX"`) {
		t.Errorf("expected error for %s\nstderr:\n%s", bad, errOut.String())
	}

	if !strings.Contains(out.String(), good) || !strings.Contains(out.String(), "[9 8 7]") {
		t.Errorf("expected summary for %s\nstdout:\n%s", good, out.String())
	}
}

func TestRunMissingFile(t *testing.T) {
	var out, errOut bytes.Buffer

	if code := run([]string{"/nonexistent/path.wav"}, &out, &errOut); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}

	if !strings.Contains(errOut.String(), "truncated WAVE input") {
		t.Errorf("stderr:\n%s", errOut.String())
	}
}

func TestRunVerify(t *testing.T) {
	path := writeFixture(t, "verify.wav", canonical(2, 16, audiotest.PCM16(1, -1, 2, -2)))

	var out, errOut bytes.Buffer
	if code := run([]string{"--verify", path}, &out, &errOut); code != 0 {
		t.Fatalf("run() = %d, want 0; stderr:\n%s", code, errOut.String())
	}

	if !strings.Contains(out.String(), "matches go-audio/wav") {
		t.Errorf("stdout:\n%s", out.String())
	}
}

func TestRunVerifyWithoutDataSize(t *testing.T) {
	path := writeFixture(t, "verify.wav", canonical(1, 16, audiotest.PCM16(5, 6)))

	var out, errOut bytes.Buffer
	if code := run([]string{"--verify", "--no-data-size", path}, &out, &errOut); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}

	if !strings.Contains(errOut.String(), "Warning:") || !strings.Contains(errOut.String(), "go-audio/wav") {
		t.Errorf("stderr:\n%s", errOut.String())
	}
}

func TestRunVersion(t *testing.T) {
	var out, errOut bytes.Buffer

	if code := run([]string{"--version"}, &out, &errOut); code != 0 {
		t.Fatalf("run() = %d, want 0", code)
	}

	if !strings.Contains(out.String(), "Version:") || !strings.Contains(out.String(), version) {
		t.Errorf("stdout:\n%s", out.String())
	}
}

func TestRunBadFlag(t *testing.T) {
	var out, errOut bytes.Buffer

	if code := run([]string{"--preview", "many"}, &out, &errOut); code != 2 {
		t.Fatalf("run() = %d, want 2", code)
	}
}
