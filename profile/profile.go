// Package profile loads the candidate's CV and LinkedIn profile used as
// context for response generation.
package profile

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/ledongthuc/pdf"
)

const (
	missingCV       = "CV file not found. Using basic profile."
	missingLinkedIn = "LinkedIn profile not available."
)

type Profile struct {
	Name     string
	CV       string
	LinkedIn string
}

// Load reads the CV text file and extracts text from the LinkedIn PDF.
// Missing or unreadable files degrade to placeholder text rather than
// failing: the assistant still works with a partial profile.
func Load(name, cvPath, linkedinPath string) *Profile {
	p := &Profile{Name: name}

	cv, err := os.ReadFile(cvPath)
	if err != nil {
		p.CV = missingCV
	} else {
		p.CV = strings.TrimSpace(string(cv))
	}

	linkedin, err := extractPDFText(linkedinPath)
	if err != nil || strings.TrimSpace(linkedin) == "" {
		p.LinkedIn = missingLinkedIn
	} else {
		p.LinkedIn = strings.TrimSpace(linkedin)
	}

	return p
}

// Context renders the profile sections embedded in the system prompt.
func (p *Profile) Context() string {
	var sb strings.Builder
	sb.WriteString("## CV Summary:\n")
	sb.WriteString(p.CV)
	sb.WriteString("\n\n## LinkedIn Profile:\n")
	sb.WriteString(p.LinkedIn)
	return sb.String()
}

func extractPDFText(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return buf.String(), nil
}
