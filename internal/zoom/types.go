package zoom

import "time"

// Meeting is the provider's representation of a created meeting.
// It is never mutated after creation.
type Meeting struct {
	ID              int64
	Topic           string
	JoinURL         string
	Password        string
	StartTime       time.Time
	DurationMinutes int
	Timezone        string
}

// MeetingParams describes the meeting to schedule.
type MeetingParams struct {
	Topic           string
	StartTime       time.Time
	DurationMinutes int // defaults to 60
	Timezone        string
	Agenda          string
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type meetingSettings struct {
	HostVideo        bool   `json:"host_video"`
	ParticipantVideo bool   `json:"participant_video"`
	JoinBeforeHost   bool   `json:"join_before_host"`
	WaitingRoom      bool   `json:"waiting_room"`
	MuteUponEntry    bool   `json:"mute_upon_entry"`
	AutoRecording    string `json:"auto_recording"`
}

type meetingRequest struct {
	Topic     string          `json:"topic"`
	Type      int             `json:"type"` // 2 = scheduled meeting
	StartTime string          `json:"start_time"`
	Duration  int             `json:"duration"`
	Timezone  string          `json:"timezone"`
	Agenda    string          `json:"agenda,omitempty"`
	Settings  meetingSettings `json:"settings"`
}

type meetingResponse struct {
	ID        int64  `json:"id"`
	Topic     string `json:"topic"`
	JoinURL   string `json:"join_url"`
	Password  string `json:"password"`
	StartTime string `json:"start_time"`
	Duration  int    `json:"duration"`
	Timezone  string `json:"timezone"`
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Reason  string `json:"reason"`
}
