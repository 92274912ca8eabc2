package state

import (
	"testing"

	"github.com/atomicstack/servarr-tui/internal/intent"
)

func TestPromptToggle(t *testing.T) {
	var p Prompt
	p.Toggle()
	if !p.Confirmed() {
		t.Fatalf("expected toggle to confirm")
	}
	p.Toggle()
	if p.Confirmed() {
		t.Fatalf("expected second toggle to decline")
	}
}

func TestConfirmAndCloseRecordsOnlyWhenConfirmed(t *testing.T) {
	var p Prompt
	del := intent.Intent{Kind: intent.DeleteDownload, ID: 4}
	if !p.ConfirmAndClose(del) {
		t.Fatalf("expected declined prompt to close")
	}
	if _, ok := p.Pending(); ok {
		t.Fatalf("expected no intent when declined")
	}

	p.SetConfirm(true)
	if !p.ConfirmAndClose(del) {
		t.Fatalf("expected confirmed prompt to close")
	}
	got, ok := p.Take()
	if !ok || got != del {
		t.Fatalf("expected recorded intent, got %+v ok=%v", got, ok)
	}
	if _, ok := p.Take(); ok {
		t.Fatalf("expected take to consume the intent")
	}
	if p.Confirmed() {
		t.Fatalf("expected confirmation reset after close")
	}
}

func TestAcceptRecordsImmediately(t *testing.T) {
	var p Prompt
	p.Accept(intent.Intent{Kind: intent.ClearBlocklist})
	got, ok := p.Take()
	if !ok || got.Kind != intent.ClearBlocklist {
		t.Fatalf("expected clear blocklist intent, got %+v", got)
	}
}
