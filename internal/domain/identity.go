package domain

import "fmt"

// Profile is the public slice of a Farcaster account.
type Profile struct {
	FID          int64
	Username     string
	DisplayName  string
	ProfileImage string
}

// Identity is the authenticated-or-not state of a request, resolved once
// at the cookie boundary instead of re-derived at each call site.
type Identity struct {
	authenticated bool
	profile       Profile
}

// Anonymous returns the unauthenticated identity.
func Anonymous() Identity {
	return Identity{}
}

// Authenticated returns an identity carrying the given profile.
func Authenticated(p Profile) Identity {
	return Identity{authenticated: true, profile: p}
}

// IsAuthenticated reports whether the identity carries a profile.
func (i Identity) IsAuthenticated() bool {
	return i.authenticated
}

// Profile returns the profile and whether one is present.
func (i Identity) Profile() (Profile, bool) {
	return i.profile, i.authenticated
}

// LoginState is a state of the login flow.
type LoginState string

const (
	// StateLoggedOut is the initial state: no flow in progress.
	StateLoggedOut LoginState = "logged_out"

	// StatePendingRedirect means a state nonce has been issued and the
	// client is being redirected to the identity provider.
	StatePendingRedirect LoginState = "pending_redirect"

	// StatePendingCallback means the provider called back and the code
	// exchange plus profile fetch are in flight.
	StatePendingCallback LoginState = "pending_callback"

	// StateLoggedIn means a profile has been resolved and stored.
	StateLoggedIn LoginState = "logged_in"
)

// LoginEvent triggers a login flow transition.
type LoginEvent string

const (
	// EventRedirectIssued fires when the authorize redirect is sent.
	EventRedirectIssued LoginEvent = "redirect_issued"

	// EventCallbackReceived fires when the provider returns a valid code
	// and matching state.
	EventCallbackReceived LoginEvent = "callback_received"

	// EventProfileFetched fires when the token exchange and profile
	// fetch both succeed.
	EventProfileFetched LoginEvent = "profile_fetched"

	// EventLogout fires on logout from any state.
	EventLogout LoginEvent = "logout"
)

// loginTransitions is the legal transition table. Logout is valid from
// every state and always lands in LoggedOut.
var loginTransitions = map[LoginState]map[LoginEvent]LoginState{
	StateLoggedOut: {
		EventRedirectIssued: StatePendingRedirect,
	},
	StatePendingRedirect: {
		EventCallbackReceived: StatePendingCallback,
	},
	StatePendingCallback: {
		EventProfileFetched: StateLoggedIn,
	},
	StateLoggedIn: {},
}

// LoginFlow is an explicit state machine for the identity-provider login,
// replacing implicit reactive recomputation with named transitions.
type LoginFlow struct {
	state LoginState
}

// NewLoginFlow starts a flow in the LoggedOut state.
func NewLoginFlow() *LoginFlow {
	return &LoginFlow{state: StateLoggedOut}
}

// State returns the current state.
func (f *LoginFlow) State() LoginState {
	return f.state
}

// Apply transitions the flow on an event. An event not legal in the
// current state returns a validation error and leaves the state intact.
func (f *LoginFlow) Apply(event LoginEvent) error {
	if event == EventLogout {
		f.state = StateLoggedOut
		return nil
	}

	next, ok := loginTransitions[f.state][event]
	if !ok {
		return NewValidationError("login_flow",
			fmt.Sprintf("event %q not valid in state %q", event, f.state))
	}

	f.state = next

	return nil
}
