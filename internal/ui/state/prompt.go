package state

import "github.com/atomicstack/servarr-tui/internal/intent"

// Prompt tracks a yes/no confirmation and the intent it produced.
type Prompt struct {
	confirm bool
	action  *intent.Intent
}

// Confirmed reports whether "yes" is highlighted.
func (p *Prompt) Confirmed() bool {
	return p.confirm
}

// SetConfirm sets the highlighted answer.
func (p *Prompt) SetConfirm(confirm bool) {
	p.confirm = confirm
}

// Toggle flips between yes and no.
func (p *Prompt) Toggle() {
	p.confirm = !p.confirm
}

// ConfirmAndClose records i when the prompt is confirmed and always returns
// true: the caller pops the prompt either way.
func (p *Prompt) ConfirmAndClose(i intent.Intent) bool {
	if p.confirm {
		p.record(i)
	}
	p.confirm = false
	return true
}

// Accept handles the dedicated confirm key: the prompt is answered yes, i is
// recorded and the caller pops the prompt.
func (p *Prompt) Accept(i intent.Intent) bool {
	p.confirm = true
	return p.ConfirmAndClose(i)
}

// Record stores i without asking, for actions that need no confirmation.
func (p *Prompt) Record(i intent.Intent) {
	p.record(i)
}

func (p *Prompt) record(i intent.Intent) {
	dup := i
	p.action = &dup
}

// Pending returns the recorded intent without consuming it.
func (p *Prompt) Pending() (intent.Intent, bool) {
	if p.action == nil {
		return intent.Intent{}, false
	}
	return *p.action, true
}

// Take returns the recorded intent and clears it.
func (p *Prompt) Take() (intent.Intent, bool) {
	i, ok := p.Pending()
	p.action = nil
	return i, ok
}

// Reset clears the confirmation flag.
func (p *Prompt) Reset() {
	p.confirm = false
}
