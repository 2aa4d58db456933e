package progress

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Certificate is the display artifact issued after a passing exam. The ID is
// a presentation serial, not a verifiable credential.
type Certificate struct {
	CourseTitle      string
	CertificateTitle string
	LearnerName      string
	Percentage       int
	CompletedAt      time.Time
	ID               string
}

// IssueCertificate mints a certificate for the learner. Requires a submitted
// passing exam and a non-empty trimmed name; returns nil otherwise. Calling
// it again replaces the certificate (the score cannot have changed without a
// retry, so this is effectively idempotent).
func (t *Tracker) IssueCertificate(learnerName string) *Certificate {
	name := strings.TrimSpace(learnerName)
	if name == "" || !t.ExamPassed() {
		return nil
	}
	title := t.course.CertificateTitle
	if title == "" {
		title = t.course.Title
	}
	t.certificate = &Certificate{
		CourseTitle:      t.course.Title,
		CertificateTitle: title,
		LearnerName:      name,
		Percentage:       t.exam.percentage,
		CompletedAt:      time.Now(),
		ID:               newCertificateID(),
	}
	return t.certificate
}

// newCertificateID builds a CLX9-XXXX-XXXX-1QZ8 style serial from a UUID.
func newCertificateID() string {
	hex := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return fmt.Sprintf("CLX9-%s-%s-1QZ8", hex[:4], hex[4:8])
}
