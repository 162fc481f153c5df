package services

import (
	"fmt"
	"strings"

	"github.com/bobarin/nova/internal/models"
)

// StorySystemPrompt is sent as the system turn of every story completion.
const StorySystemPrompt = "You are a helpful assistant designed to output JSON."

// Readers at or below this age get the kid tone; older readers get the teen tone.
const kidMaxAge = 12

const (
	kidToneGuidance  = "For kids (<=12): Use simpler words, a playful and wondrous tone. Focus on action and fun facts."
	teenToneGuidance = "For teens (13+): Use a deeper, more inspirational narrative. Connect the story to real-world challenges like climate change, technology, and human collaboration."
)

// AstronautRoleSections are the five story cards of the astronaut role story, in order.
var AstronautRoleSections = []string{
	"Hook/First Scene",
	"Characteristics of an Astronaut",
	"Life of an Astronaut",
	"Impact of an Astronaut",
	"Characteristics Revisited",
}

// BuildPrompt resolves the prompt for one story request.
// astronaut_role selects the five-part role story; anything else gets the NOVA adventure.
func BuildPrompt(inputs models.UserInputs) string {
	if inputs.StoryType == models.StoryTypeAstronautRole {
		return buildAstronautRolePrompt(inputs)
	}
	return buildAdventurePrompt(inputs)
}

// ageToneGuidance picks the tone instruction for the reader's age band.
func ageToneGuidance(age int) string {
	if age <= kidMaxAge {
		return kidToneGuidance
	}
	return teenToneGuidance
}

func buildAdventurePrompt(inputs models.UserInputs) string {
	interests := strings.Join(inputs.Interests, ", ")

	return fmt.Sprintf(`Role: You are an empathetic NASA-inspired storyteller and interactive learning guide. Your name is NOVA.
Goal: Generate a specialized, long, engaging, empathy-focused, and gamified space story for a user.

1. USER PARAMETERS:
- Name: %[1]s
- Age: %[2]d
- Language: %[3]s
- Stated Interests: %[4]s

2. STORYTELLING GUIDELINES:
- Create a completely original story based on the user's interests.
- Write the whole story in %[3]s.
- Empathy-Focused: The story must connect emotionally. Show astronaut struggles, teamwork, and the joy of discovery.
- Age-Specific: %[5]s
- Personalization: Use the user's name, "%[1]s", throughout the story to make them the main character.
- Use Real NASA Resources: Base the story on real missions (ISS, Artemis, Hubble) and real astronaut anecdotes.

3. INTERACTIVITY & GAMIFICATION:
- After EACH story card, create exactly 2 multiple-choice quiz questions related to that card's content.
- Quizzes should be engaging and reinforce learning.

4. MULTIMEDIA ENHANCEMENTS:
- For each story card, suggest a real, publicly available NASA video link for the "video" field.
- For the "image" field, provide a URL to a real, relevant, high-quality space photo from images.nasa.gov.

5. OUTPUT FORMAT:
- Your entire response MUST be a single, valid JSON object.
- Do NOT include any text, explanations, or markdown formatting like `+"```json"+` before or after the JSON object.
- The JSON object must strictly follow this structure:
{
  "story_title": "A creative, engaging title for the whole story",
  "story_cards": [
    {
      "card_title": "Title for the first part of the story",
      "content": "Personalized, age-specific story text for this card, at least 150 words long. Use the name '%[1]s' here.",
      "quiz": [
        {
          "question": "First quiz question for this card?",
          "options": ["Option A", "Option B", "Option C"],
          "correct_answer": "The correct option text"
        },
        {
          "question": "Second quiz question for this card?",
          "options": ["Option X", "Option Y", "Option Z"],
          "correct_answer": "The correct option text"
        }
      ],
      "media": {
        "video": "https://www.nasa.gov/valid-video-link-example",
        "image": "https://images.nasa.gov/details-PIA23701"
      }
    }
  ]
}

Now, generate a story for %[1]s.`,
		inputs.Name, inputs.Age, inputs.Language, interests, ageToneGuidance(inputs.Age))
}

func buildAstronautRolePrompt(inputs models.UserInputs) string {
	interests := strings.Join(inputs.Interests, ", ")

	return fmt.Sprintf(`You are an expert storyteller for children and teenagers, creating a long, immersive, interactive, empathy-focused story about the role of an astronaut.

Your task is to generate the story in a structured JSON format based on the following 5-part flow. Use the user's parameters to personalize the story.

## User Parameters:
- Name: %[1]s
- Age: %[2]d
- Language: %[3]s
- Interests: %[4]s

Write the whole story in %[3]s and keep it appropriate for a %[2]d-year-old.

## Story Structure (Generate one story_card for each section, in this order):
1. %[5]s: Start with an empathy hook. For example: "Hey %[1]s, have you ever wondered what would happen if an astronaut made a mistake during a critical mission? It's a heavy thought! But before we explore that, let's see what their life is really like..."
2. %[6]s: Introduce traits like discipline, teamwork, and curiosity. Narrate a simple game. For example: "Imagine I'm giving you a special, shiny space wrench, %[1]s. Hold onto it for me, it's very important. I might ask you about it later. This is about responsibility, a key astronaut trait!"
3. %[7]s: Describe daily routines. Add an interactive choice. For example: "Suddenly, an alarm blinks! You have two alerts, %[1]s. Do you want to help fix the solar panel outside or check the oxygen system inside first?"
4. %[8]s: Show the impact on Earth if astronauts didn't exist. For example: "Without the work of astronauts on stations like the ISS, we might not have the accurate GPS in your family's car, or the weather forecasts that tell you if you can go outside and play this weekend."
5. %[9]s: Return to the traits. Ask the user a reflective question. For example: "We talked about responsibility with that wrench earlier, %[1]s. Teamwork, staying calm under pressure... after seeing all this, do you think you have what it takes to be an astronaut?"

Each story_card has an "interactive_element": one question or choice that speaks directly to %[1]s and, where it fits, to their interests (%[4]s).

## Final Quiz:
After the 5 story cards, create a final quiz of 3 multiple-choice questions about the story you just told.

## OUTPUT FORMAT:
- Your entire response MUST be a single, valid JSON object.
- Do NOT include any text, explanations, or markdown formatting like `+"```json"+` before or after the JSON object.
- Follow this structure exactly:
{
  "story_title": "What Does It Take to Be an Astronaut?",
  "story_cards": [
    { "card_title": "A Big Question", "content": "...", "interactive_element": "..." },
    { "card_title": "An Astronaut's Qualities", "content": "...", "interactive_element": "..." },
    { "card_title": "A Day in Zero Gravity", "content": "...", "interactive_element": "..." },
    { "card_title": "A World Without Astronauts", "content": "...", "interactive_element": "..." },
    { "card_title": "Could You Be an Astronaut?", "content": "...", "interactive_element": "..." }
  ],
  "final_quiz": [
    { "question": "...", "options": ["...", "...", "..."], "correct_answer": "..." }
  ]
}`,
		inputs.Name, inputs.Age, inputs.Language, interests,
		AstronautRoleSections[0], AstronautRoleSections[1], AstronautRoleSections[2],
		AstronautRoleSections[3], AstronautRoleSections[4])
}
