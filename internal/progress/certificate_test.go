package progress

import (
	"strings"
	"testing"
)

func passedTracker(t *testing.T) *Tracker {
	t.Helper()
	tr := readyTracker(5)
	tr.SelectFinalExam()
	answerAll(tr, 5)
	tr.SubmitExam()
	if !tr.ExamPassed() {
		t.Fatal("setup: exam should be passed")
	}
	return tr
}

func TestIssueCertificate_Success(t *testing.T) {
	tr := passedTracker(t)

	cert := tr.IssueCertificate("  Jane Doe  ")

	if cert == nil {
		t.Fatal("expected certificate")
	}
	if cert.LearnerName != "Jane Doe" {
		t.Errorf("LearnerName = %q, want trimmed %q", cert.LearnerName, "Jane Doe")
	}
	if cert.Percentage != 100 {
		t.Errorf("Percentage = %d, want 100", cert.Percentage)
	}
	if cert.CompletedAt.IsZero() {
		t.Error("CompletedAt should be set")
	}
	if tr.Certificate() != cert {
		t.Error("tracker should retain the issued certificate")
	}
}

func TestIssueCertificate_BlankNameRefused(t *testing.T) {
	tr := passedTracker(t)

	for _, name := range []string{"", "   ", "\t\n"} {
		if cert := tr.IssueCertificate(name); cert != nil {
			t.Errorf("IssueCertificate(%q) = %+v, want nil", name, cert)
		}
	}
}

func TestIssueCertificate_FailedExamRefused(t *testing.T) {
	tr := readyTracker(5)
	tr.SelectFinalExam()
	answerAll(tr, 2)
	tr.SubmitExam()

	if cert := tr.IssueCertificate("Jane Doe"); cert != nil {
		t.Error("certificate must be refused on a failed exam")
	}
}

func TestIssueCertificate_UnsubmittedExamRefused(t *testing.T) {
	tr := readyTracker(5)
	tr.SelectFinalExam()
	answerAll(tr, 5)

	if cert := tr.IssueCertificate("Jane Doe"); cert != nil {
		t.Error("certificate must be refused before submission")
	}
}

func TestCertificateID_Format(t *testing.T) {
	id := newCertificateID()

	parts := strings.Split(id, "-")
	if len(parts) != 4 {
		t.Fatalf("ID %q should have 4 segments", id)
	}
	if parts[0] != "CLX9" || parts[3] != "1QZ8" {
		t.Errorf("ID %q has wrong frame segments", id)
	}
	if len(parts[1]) != 4 || len(parts[2]) != 4 {
		t.Errorf("ID %q middle segments should be 4 chars", id)
	}

	if newCertificateID() == id {
		t.Error("consecutive IDs should differ")
	}
}
