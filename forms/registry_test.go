package forms_test

import (
	"testing"
	"time"

	"github.com/kgnconstruction/kgnbackend/forms"
)

func TestRegistryScopesInstances(t *testing.T) {
	reg := forms.NewRegistry(&fakeClient{}, time.Minute)
	defer reg.Close()

	a := reg.Get("session-a", forms.QuoteForm)
	if again := reg.Get("session-a", forms.QuoteForm); again != a {
		t.Fatalf("same session and form should share an instance")
	}
	if other := reg.Get("session-b", forms.QuoteForm); other == a {
		t.Fatalf("sessions must not share instances")
	}
	if contact := reg.Get("session-a", forms.ContactForm); contact.Form == a.Form {
		t.Fatalf("forms must not share instances")
	}
	if reg.Len() != 3 {
		t.Fatalf("expected 3 instances, got %d", reg.Len())
	}

	if err := a.SetField("fullName", "Asha"); err != nil {
		t.Fatalf("SetField: %v", err)
	}
	if got := reg.Get("session-b", forms.QuoteForm).Snapshot().Values["fullName"]; got != "" {
		t.Fatalf("state leaked across sessions: %q", got)
	}
}

func TestRegistryExpiresIdleInstances(t *testing.T) {
	reg := forms.NewRegistry(&fakeClient{}, 20*time.Millisecond)
	defer reg.Close()

	first := reg.Get("session-a", forms.QuoteForm)
	time.Sleep(60 * time.Millisecond)

	if again := reg.Get("session-a", forms.QuoteForm); again == first {
		t.Fatalf("expected a fresh instance after the ttl")
	}
}

func TestRegistryUseExtendsExpiry(t *testing.T) {
	reg := forms.NewRegistry(&fakeClient{}, 300*time.Millisecond)
	defer reg.Close()

	first := reg.Get("session-a", forms.QuoteForm)
	for range 3 {
		time.Sleep(150 * time.Millisecond)
		if again := reg.Get("session-a", forms.QuoteForm); again != first {
			t.Fatalf("an instance in use should not expire")
		}
	}
}
