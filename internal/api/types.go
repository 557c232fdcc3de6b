package api

// User is the profile record cached at login and returned by /users/profile/.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Nickname string `json:"nickname"`
}

// TokenPair is the credential pair returned by a successful login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// RegisterRequest is the payload for /users/register/.
type RegisterRequest struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	PasswordConfirm string `json:"password_confirm"`
	Nickname        string `json:"nickname"`
}

// RegisterResponse echoes the server's registration payload.
// Registration does not authenticate the session; no tokens are returned.
type RegisterResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user"`
}

// LoginRequest is the payload for /users/login/.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the payload returned by /users/login/.
type LoginResponse struct {
	User   User      `json:"user"`
	Tokens TokenPair `json:"tokens"`
}

// ChatMessage is one entry of the conversation history sent to /ai/ask/.
type ChatMessage struct {
	Role      string `json:"role"` // "user" or "assistant"
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// UserContext carries questionnaire context alongside a chat message.
type UserContext struct {
	PartyType   string            `json:"party_type,omitempty"`
	Preferences map[string]string `json:"preferences,omitempty"`
}

// AskRequest is the payload for /ai/ask/.
type AskRequest struct {
	Message             string        `json:"message"`
	ConversationHistory []ChatMessage `json:"conversation_history,omitempty"`
	UserContext         *UserContext  `json:"user_context,omitempty"`
}

// AskMetadata is the optional metadata block of an /ai/ask/ response.
type AskMetadata struct {
	Intent     string  `json:"intent,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
}

// AskResponse is the payload returned by /ai/ask/.
type AskResponse struct {
	Response       string       `json:"response"`
	ConversationID string       `json:"conversation_id,omitempty"`
	Suggestions    []string     `json:"suggestions,omitempty"`
	Metadata       *AskMetadata `json:"metadata,omitempty"`
}

// PlanRequest is the payload for /ai/party/plan/.
// PartyType is required; the remaining fields carry the collected answers.
type PlanRequest struct {
	PartyType           string `json:"party_type"`
	Attendees           string `json:"attendees,omitempty"`
	Budget              string `json:"budget,omitempty"`
	Location            string `json:"location,omitempty"`
	Date                string `json:"date,omitempty"`
	Mood                string `json:"mood,omitempty"`
	SpecialRequirements string `json:"special_requirements,omitempty"`
}

// PartyPlan is the generated plan inside a /ai/party/plan/ response.
type PartyPlan struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Recommendations []string `json:"recommendations"`
}

// PlanResponse is the payload returned by /ai/party/plan/.
// The server returns either a party_plan or a plain message, never both.
type PlanResponse struct {
	PartyPlan *PartyPlan `json:"party_plan"`
	Message   string     `json:"message"`
}

// HealthStatus is the payload returned by /ai/health/.
type HealthStatus struct {
	Status string `json:"status"`
}
