package specialist

import (
	"fmt"
	"strings"
)

// BuildPrompt composes the system instruction and user message for one
// consultation. It is a pure function of its inputs.
//
// The resident block is only added when residentVerified is set; the flag is a
// self-report and never gates access, it only biases the response framing.
func BuildPrompt(sp Specialist, question, location string, residentVerified bool) (systemPrompt, userMessage string) {
	var residentContext string
	if residentVerified {
		residentContext = fmt.Sprintf(`
IMPORTANT: This user is a verified Michigan resident. %s

Provide practical, actionable information that helps them as a Michigan resident. Connect historical knowledge to current opportunities, challenges, and resources available in Michigan.
`, sp.ResidentFocus)
	}

	areas := make([]string, 0, len(sp.KeyAreas))
	for _, area := range sp.KeyAreas {
		areas = append(areas, "- "+area)
	}

	systemPrompt = fmt.Sprintf(`You are %s, %s.

Background: %s

Your expertise areas:
%s

Your personality: %s

%s

Respond as this specialist, providing educational content that helps the user understand Michigan history and its relevance today. Be helpful, knowledgeable, and encouraging. Keep responses to 2-3 paragraphs unless the question requires more detail.`,
		sp.Name, sp.Title, sp.Background, strings.Join(areas, "\n"), sp.Personality, residentContext)

	userMessage = fmt.Sprintf("As a Michigan history specialist, can you help me with this question: %s", question)
	if location != "" {
		userMessage += fmt.Sprintf(" (I'm asking from %s)", location)
	}
	return systemPrompt, userMessage
}
