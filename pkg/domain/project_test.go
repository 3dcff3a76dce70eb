package domain_test

import (
	"testing"

	"github.com/docstokg/docstokg-web/pkg/domain"
)

func TestAsProjectStatus(t *testing.T) {
	for _, status := range domain.ProjectStatuses() {
		actual, err := domain.AsProjectStatus(string(status))
		if err != nil {
			t.Fatal(err)
		}
		if actual != status {
			t.Errorf("unmatch: %s != %s", actual, status)
		}
	}

	for _, unknown := range []string{"", "archived", "Completed"} {
		if _, err := domain.AsProjectStatus(unknown); err == nil {
			t.Errorf("unknown status is accepted: %q", unknown)
		}
	}
}
