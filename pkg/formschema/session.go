package formschema

// SessionState is the render session's lifecycle position.
type SessionState int

const (
	StateLoading SessionState = iota
	StateReady
	StateSubmitting
)

// SessionError covers misuse of the session state machine.
type SessionError string

func (e SessionError) Error() string { return string(e) }

const (
	ErrSubmitInFlight  SessionError = "a submission is already in flight"
	ErrNothingToSubmit SessionError = "template has no fields, nothing to submit"
	ErrSessionNotReady SessionError = "session is not ready"
)

// Session is one rendering session over a loaded template: it owns the live
// flat value map, the single open autocomplete dropdown, and the
// Ready/Submitting transitions that block duplicate submits. It is the
// client-agnostic core of the form renderer; transport lives elsewhere.
type Session struct {
	tpl            Template
	values         FlatValues
	state          SessionState
	activeDropdown string // field name of the open dropdown, "" when closed
}

// NewSession starts a session over a loaded template in the Ready state.
func NewSession(tpl Template) *Session {
	return &Session{tpl: tpl, values: FlatValues{}, state: StateReady}
}

func (s *Session) State() SessionState { return s.state }
func (s *Session) Template() Template  { return s.tpl }

// Values returns the live value map. Callers must treat it as read-only.
func (s *Session) Values() FlatValues { return s.values }

// SetValue records a field value.
func (s *Session) SetValue(fieldName string, v Value) {
	s.values[fieldName] = v
}

// ToggleOption adds opt to a checkbox group's list value, or removes it when
// already present. The list is updated, never replaced wholesale.
func (s *Session) ToggleOption(fieldName, opt string) {
	current := s.values[fieldName].List()
	for i, existing := range current {
		if existing == opt {
			s.values[fieldName] = ListValue(append(append([]string(nil), current[:i]...), current[i+1:]...))
			return
		}
	}
	s.values[fieldName] = ListValue(append(append([]string(nil), current...), opt))
}

// OpenDropdown marks fieldName's autocomplete dropdown as the single open
// one, closing any other.
func (s *Session) OpenDropdown(fieldName string) { s.activeDropdown = fieldName }

// CloseDropdown closes whatever dropdown is open.
func (s *Session) CloseDropdown() { s.activeDropdown = "" }

// ActiveDropdown returns the field name of the open dropdown, "" when none.
func (s *Session) ActiveDropdown() string { return s.activeDropdown }

// SelectCustomer applies an autocomplete selection: the triggering field and
// its _display twin get the entry's label, and every recognized
// customer-attribute field is overwritten from the entry. The dropdown
// closes.
func (s *Session) SelectCustomer(fieldName string, c CustomerEntry) {
	s.values[fieldName] = StringValue(c.DisplayLabel())
	s.values[fieldName+"_display"] = StringValue(c.DisplayLabel())
	FillFromCustomer(s.tpl, s.values, c)
	s.CloseDropdown()
}

// SelectEngine is the engine twin of SelectCustomer.
func (s *Session) SelectEngine(fieldName string, e EngineEntry) {
	s.values[fieldName] = StringValue(e.DisplayLabel())
	s.values[fieldName+"_display"] = StringValue(e.DisplayLabel())
	FillFromEngine(s.tpl, s.values, e)
	s.CloseDropdown()
}

// CanSubmit reports whether the session accepts a submit: Ready state and a
// template with at least one field (empty templates suppress submission
// entirely).
func (s *Session) CanSubmit() bool {
	return s.state == StateReady && len(s.tpl.Fields) > 0
}

// BeginSubmit transitions to Submitting and returns the grouped payload.
// Duplicate calls fail until FinishSubmit resolves the in-flight attempt.
func (s *Session) BeginSubmit() (SubmissionData, error) {
	if s.state == StateSubmitting {
		return nil, ErrSubmitInFlight
	}
	if s.state != StateReady {
		return nil, ErrSessionNotReady
	}
	if len(s.tpl.Fields) == 0 {
		return nil, ErrNothingToSubmit
	}
	s.state = StateSubmitting
	return GroupValues(s.tpl, s.values), nil
}

// FinishSubmit resolves the in-flight attempt. Success clears the value map
// (the SubmittedReset transition); failure keeps it so the user can retry.
// Either way the session returns to Ready.
func (s *Session) FinishSubmit(ok bool) {
	if s.state != StateSubmitting {
		return
	}
	if ok {
		s.values = FlatValues{}
	}
	s.state = StateReady
}

// Reset clears the value map without persisting anything.
func (s *Session) Reset() {
	s.values = FlatValues{}
}

// LoadValues pre-populates the session from an existing record, used by the
// edit flow.
func (s *Session) LoadValues(data SubmissionData) {
	s.values = FlattenData(data)
}
