package models

import (
	"strings"
)

// Enums
type StoryType string

const (
	StoryTypeAdventure     StoryType = "adventure"
	StoryTypeAstronautRole StoryType = "astronaut_role"
)

// UserInputs are the validated personalization parameters for one story.
type UserInputs struct {
	Name      string
	Age       int
	Language  string
	Interests []string
	StoryType StoryType
}

// Requests

// GenerateStoryRequest is the body of POST /api/generate-story.
// Age and Interests are nil-able so an absent field can be told apart from a zero value.
type GenerateStoryRequest struct {
	Name      string    `json:"name"`
	Age       *int      `json:"age"`
	Language  string    `json:"language"`
	Interests []string  `json:"interests"`
	StoryType StoryType `json:"story_type"`
}

// Missing returns the required fields that are absent from the request.
// An age of 0 counts as absent; an empty interests array does not.
func (r *GenerateStoryRequest) Missing() []string {
	var missing []string
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, "name")
	}
	if r.Age == nil || *r.Age == 0 {
		missing = append(missing, "age")
	}
	if r.Interests == nil {
		missing = append(missing, "interests")
	}
	if strings.TrimSpace(string(r.StoryType)) == "" {
		missing = append(missing, "story_type")
	}
	return missing
}

// Inputs converts a request that passed Missing into UserInputs.
func (r *GenerateStoryRequest) Inputs() UserInputs {
	inputs := UserInputs{
		Name:      r.Name,
		Language:  r.Language,
		Interests: r.Interests,
		StoryType: r.StoryType,
	}
	if r.Age != nil {
		inputs.Age = *r.Age
	}
	return inputs
}

// GenerateAudioRequest is the body of POST /api/generate-audio.
type GenerateAudioRequest struct {
	Text string `json:"text"`
}

// Responses

type GenerateAudioResponse struct {
	AudioURL string `json:"audioUrl"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// Story documents are produced by the model. The server echoes them verbatim;
// these types describe the shape clients should expect.

type StoryDocument struct {
	StoryTitle string         `json:"story_title"`
	StoryCards []StoryCard    `json:"story_cards"`
	FinalQuiz  []QuizQuestion `json:"final_quiz,omitempty"` // astronaut_role
}

type StoryCard struct {
	CardTitle          string         `json:"card_title"`
	Content            string         `json:"content"`
	Quiz               []QuizQuestion `json:"quiz,omitempty"`                // adventure
	Media              *CardMedia     `json:"media,omitempty"`               // adventure
	InteractiveElement string         `json:"interactive_element,omitempty"` // astronaut_role
}

type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

type CardMedia struct {
	Video string `json:"video"`
	Image string `json:"image"`
}
