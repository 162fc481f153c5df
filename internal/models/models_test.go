package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateStoryRequestMissing(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "complete",
			body: `{"name":"Mia","age":9,"language":"English","interests":["robots"],"story_type":"adventure"}`,
			want: nil,
		},
		{
			name: "language is optional",
			body: `{"name":"Mia","age":9,"interests":["robots"],"story_type":"adventure"}`,
			want: nil,
		},
		{
			name: "empty interests array is present",
			body: `{"name":"Mia","age":9,"interests":[],"story_type":"astronaut_role"}`,
			want: nil,
		},
		{
			name: "missing interests",
			body: `{"name":"Mia","age":9,"story_type":"adventure"}`,
			want: []string{"interests"},
		},
		{
			name: "null interests",
			body: `{"name":"Mia","age":9,"interests":null,"story_type":"adventure"}`,
			want: []string{"interests"},
		},
		{
			name: "zero age",
			body: `{"name":"Mia","age":0,"interests":["cats"],"story_type":"adventure"}`,
			want: []string{"age"},
		},
		{
			name: "empty object",
			body: `{}`,
			want: []string{"name", "age", "interests", "story_type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req GenerateStoryRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			assert.Equal(t, tt.want, req.Missing())
		})
	}
}

func TestGenerateStoryRequestInputs(t *testing.T) {
	age := 14
	req := GenerateStoryRequest{
		Name:      "Leo",
		Age:       &age,
		Language:  "Spanish",
		Interests: []string{"football", "music"},
		StoryType: StoryTypeAstronautRole,
	}

	inputs := req.Inputs()
	assert.Equal(t, "Leo", inputs.Name)
	assert.Equal(t, 14, inputs.Age)
	assert.Equal(t, "Spanish", inputs.Language)
	assert.Equal(t, []string{"football", "music"}, inputs.Interests)
	assert.Equal(t, StoryTypeAstronautRole, inputs.StoryType)
}

func TestStoryDocumentDecodesBothVariants(t *testing.T) {
	adventure := `{
		"story_title": "Mia and the Moon",
		"story_cards": [{
			"card_title": "Liftoff",
			"content": "Mia climbs aboard.",
			"quiz": [{"question":"Where?","options":["Moon","Mars"],"correct_answer":"Moon"}],
			"media": {"video":"https://www.nasa.gov/v","image":"https://images.nasa.gov/i"}
		}]
	}`
	var doc StoryDocument
	require.NoError(t, json.Unmarshal([]byte(adventure), &doc))
	require.Len(t, doc.StoryCards, 1)
	assert.Len(t, doc.StoryCards[0].Quiz, 1)
	require.NotNil(t, doc.StoryCards[0].Media)
	assert.Equal(t, "https://images.nasa.gov/i", doc.StoryCards[0].Media.Image)

	role := `{"story_title":"Could You?","story_cards":[{"card_title":"The Big Question","content":"...","interactive_element":"What would you miss?"}]}`
	doc = StoryDocument{}
	require.NoError(t, json.Unmarshal([]byte(role), &doc))
	assert.Equal(t, "What would you miss?", doc.StoryCards[0].InteractiveElement)
	assert.Nil(t, doc.StoryCards[0].Media)
}
