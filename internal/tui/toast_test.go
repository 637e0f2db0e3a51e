package tui

import (
	"strings"
	"testing"
)

func TestToastExpiryIgnoresOlderMessages(t *testing.T) {
	var tst toast

	if cmd := tst.show(toastInfo, "Saved"); cmd == nil {
		t.Fatal("show should schedule an expiry tick")
	}
	first := tst.seq
	tst.show(toastError, "Fetch failed")

	// The first toast's expiry lands after the second toast is showing and
	// must not clear it.
	tst.expire(toastExpiredMsg{seq: first})
	if tst.text != "Fetch failed" {
		t.Fatalf("stale expiry cleared the newer toast, text = %q", tst.text)
	}

	tst.expire(toastExpiredMsg{seq: tst.seq})
	if tst.text != "" {
		t.Fatalf("matching expiry should clear the toast, text = %q", tst.text)
	}
}

func TestToastView(t *testing.T) {
	var tst toast
	if tst.view() != "" {
		t.Error("empty toast should render nothing")
	}

	tst.show(toastInfo, "Saved")
	if !strings.Contains(tst.view(), "Saved") {
		t.Errorf("view missing text: %q", tst.view())
	}

	tst.show(toastError, "boom")
	if !strings.Contains(tst.view(), "boom") {
		t.Errorf("view missing text: %q", tst.view())
	}
}
