package mail

import (
	"errors"
	"strings"
	"testing"

	"github.com/silverspace/go-silverspace/core"
)

func testConfig() Config {
	return Config{
		Host:         "smtp.example.com",
		Port:         587,
		Sender:       "team@example.com",
		SenderName:   "SilverSpace",
		SupportInbox: "support@example.com",
	}
}

func TestValidateAddress(t *testing.T) {
	valid := []string{
		"user@example.com",
		"first.last+tag@sub.example.co",
		"UPPER_case%ok@example.org",
	}
	for _, addr := range valid {
		if err := ValidateAddress(addr); err != nil {
			t.Errorf("ValidateAddress(%q) = %v, want nil", addr, err)
		}
	}

	invalid := []string{
		"",
		"plainaddress",
		"@no-local.com",
		"user@no-tld",
		"user@.com",
		"user @example.com",
	}
	for _, addr := range invalid {
		err := ValidateAddress(addr)
		if !errors.Is(err, core.ErrInvalidAddress) {
			t.Errorf("ValidateAddress(%q) = %v, want ErrInvalidAddress", addr, err)
		}
	}
}

func TestBuildRecommendationsMessage(t *testing.T) {
	titles := []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon"}
	msg := string(buildRecommendationsMessage(testConfig(), "user@example.com", titles))

	for _, want := range []string{
		"From: SilverSpace <team@example.com>\r\n",
		"To: user@example.com\r\n",
		"Subject: " + recommendationsSubject + "\r\n",
		"1. Alpha\r\n",
		"5. Epsilon\r\n",
		"SilverSpace Community Team",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestBuildBugReportMessagePlain(t *testing.T) {
	report := core.BugReport{
		FullName:    "Jo Reporter",
		Email:       "jo@example.com",
		Page:        "Home",
		BugType:     "General Bug/Error",
		Description: "The recommend button does nothing.",
	}

	msg, err := buildBugReportMessage(testConfig(), report)
	if err != nil {
		t.Fatalf("buildBugReportMessage: %v", err)
	}
	got := string(msg)

	for _, want := range []string{
		"To: support@example.com\r\n",
		"Reply-To: jo@example.com\r\n",
		"Subject: Bug Report: General Bug/Error (Home)\r\n",
		"Content-Type: text/plain",
		"The recommend button does nothing.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("message missing %q", want)
		}
	}
	if strings.Contains(got, "multipart/mixed") {
		t.Error("plain report must not be multipart")
	}
}

func TestBuildBugReportMessageWithAttachments(t *testing.T) {
	report := core.BugReport{
		FullName:    "Jo Reporter",
		Email:       "jo@example.com",
		Page:        "Home",
		BugType:     "Memory Corruption",
		Description: "See attached screenshot.",
		Attachments: []core.Attachment{
			{Filename: "screenshot.png", Data: []byte("fake-png-bytes")},
		},
	}

	msg, err := buildBugReportMessage(testConfig(), report)
	if err != nil {
		t.Fatalf("buildBugReportMessage: %v", err)
	}
	got := string(msg)

	for _, want := range []string{
		"multipart/mixed",
		`Content-Disposition: attachment; filename="screenshot.png"`,
		"Content-Transfer-Encoding: base64",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("message missing %q", want)
		}
	}
}

func TestBuildBugReportMessageBadAttachment(t *testing.T) {
	report := core.BugReport{
		Email:       "jo@example.com",
		Description: "x",
		Attachments: []core.Attachment{{Filename: "", Data: nil}},
	}

	if _, err := buildBugReportMessage(testConfig(), report); err == nil {
		t.Error("buildBugReportMessage = nil, want error for empty attachment")
	}
}

func TestWrapBase64(t *testing.T) {
	long := strings.Repeat("A", 200)
	wrapped := wrapBase64(long)
	for _, line := range strings.Split(strings.TrimRight(wrapped, "\r\n"), "\r\n") {
		if len(line) > 76 {
			t.Errorf("line length %d exceeds 76", len(line))
		}
	}
}
