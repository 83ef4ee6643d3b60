package profile_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/knnakr/careeragent/profile"
)

func TestLoad_ReadsCV(t *testing.T) {
	p := profile.Load("Alex", "testdata/cv.txt", "testdata/does-not-exist.pdf")

	if p.Name != "Alex" {
		t.Errorf("name = %q", p.Name)
	}
	if !strings.Contains(p.CV, "Senior backend engineer") {
		t.Errorf("CV not loaded: %q", p.CV)
	}
	if strings.HasSuffix(p.CV, "\n") {
		t.Error("CV should be trimmed")
	}
}

func TestLoad_MissingFilesDegradeToPlaceholders(t *testing.T) {
	dir := t.TempDir()
	p := profile.Load("Alex", filepath.Join(dir, "missing-cv.txt"), filepath.Join(dir, "missing.pdf"))

	if p.CV != "CV file not found. Using basic profile." {
		t.Errorf("CV placeholder = %q", p.CV)
	}
	if p.LinkedIn != "LinkedIn profile not available." {
		t.Errorf("LinkedIn placeholder = %q", p.LinkedIn)
	}
}

func TestLoad_CorruptPDFDegradesToPlaceholder(t *testing.T) {
	// A text file is not a valid PDF; extraction must fail softly.
	p := profile.Load("Alex", "testdata/cv.txt", "testdata/cv.txt")

	if p.LinkedIn != "LinkedIn profile not available." {
		t.Errorf("LinkedIn = %q, want placeholder for unreadable PDF", p.LinkedIn)
	}
}

func TestContext_RendersBothSections(t *testing.T) {
	p := &profile.Profile{
		Name:     "Alex",
		CV:       "cv text",
		LinkedIn: "linkedin text",
	}

	got := p.Context()
	if !strings.Contains(got, "## CV Summary:\ncv text") {
		t.Errorf("missing CV section: %q", got)
	}
	if !strings.Contains(got, "## LinkedIn Profile:\nlinkedin text") {
		t.Errorf("missing LinkedIn section: %q", got)
	}
}
