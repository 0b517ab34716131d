package mail

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/silverspace/go-silverspace/core"
)

const recommendationsSubject = "Howdy, your recommendations are here!"

// buildRecommendationsMessage assembles the plain-text recommendation
// mail: a greeting, the numbered title list, and a sign-off.
func buildRecommendationsMessage(cfg Config, recipient string, titles []string) []byte {
	var msg strings.Builder

	writeHeader(&msg, cfg, recipient, recommendationsSubject)
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")

	msg.WriteString("Greetings,\r\n\r\n")
	msg.WriteString("We hope this email finds you well. Please find below the movie recommendations as per your selection.\r\n\r\n")
	for i, title := range titles {
		fmt.Fprintf(&msg, "%d. %s\r\n", i+1, title)
	}
	msg.WriteString("\r\nWe have taken great care to ensure the accuracy of the recommendations, and we hope you will have a great time watching these flicks.\r\n\r\n")
	msg.WriteString("Best regards,\r\nSilverSpace Community Team\r\n")

	return []byte(msg.String())
}

// buildBugReportMessage assembles the bug report mail. Attachments make it
// a multipart/mixed message with base64 parts; without them it stays plain
// text.
func buildBugReportMessage(cfg Config, report core.BugReport) ([]byte, error) {
	var msg strings.Builder

	subject := fmt.Sprintf("Bug Report: %s (%s)", report.BugType, report.Page)
	writeHeader(&msg, cfg, cfg.SupportInbox, subject)
	if report.Email != "" {
		fmt.Fprintf(&msg, "Reply-To: %s\r\n", report.Email)
	}

	body := bugReportBody(report)

	if len(report.Attachments) == 0 {
		msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
		msg.WriteString("\r\n")
		msg.WriteString(body)
		return []byte(msg.String()), nil
	}

	boundary := fmt.Sprintf("boundary_%d", time.Now().UnixNano())
	fmt.Fprintf(&msg, "Content-Type: multipart/mixed; boundary=%q\r\n", boundary)
	msg.WriteString("\r\n")

	fmt.Fprintf(&msg, "--%s\r\n", boundary)
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)
	msg.WriteString("\r\n")

	for _, att := range report.Attachments {
		if att.Filename == "" || len(att.Data) == 0 {
			return nil, fmt.Errorf("attachment missing name or data")
		}
		fmt.Fprintf(&msg, "--%s\r\n", boundary)
		msg.WriteString("Content-Type: application/octet-stream\r\n")
		msg.WriteString("Content-Transfer-Encoding: base64\r\n")
		fmt.Fprintf(&msg, "Content-Disposition: attachment; filename=%q\r\n", att.Filename)
		msg.WriteString("\r\n")
		msg.WriteString(wrapBase64(base64.StdEncoding.EncodeToString(att.Data)))
		msg.WriteString("\r\n")
	}
	fmt.Fprintf(&msg, "--%s--\r\n", boundary)

	return []byte(msg.String()), nil
}

func bugReportBody(report core.BugReport) string {
	var b strings.Builder
	b.WriteString("A new bug report has been submitted.\r\n\r\n")
	fmt.Fprintf(&b, "Reported by: %s <%s>\r\n", report.FullName, report.Email)
	fmt.Fprintf(&b, "Page: %s\r\n", report.Page)
	fmt.Fprintf(&b, "Bug type: %s\r\n", report.BugType)
	b.WriteString("\r\nDescription:\r\n")
	b.WriteString(report.Description)
	b.WriteString("\r\n")
	return b.String()
}

func writeHeader(msg *strings.Builder, cfg Config, recipient, subject string) {
	fromName := cfg.SenderName
	if fromName == "" {
		fromName = "SilverSpace"
	}
	fmt.Fprintf(msg, "From: %s <%s>\r\n", fromName, cfg.Sender)
	fmt.Fprintf(msg, "To: %s\r\n", recipient)
	fmt.Fprintf(msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
}

// wrapBase64 folds encoded attachment data at 76 columns per RFC 2045.
func wrapBase64(s string) string {
	const lineLen = 76
	var b strings.Builder
	for len(s) > lineLen {
		b.WriteString(s[:lineLen])
		b.WriteString("\r\n")
		s = s[lineLen:]
	}
	b.WriteString(s)
	b.WriteString("\r\n")
	return b.String()
}
