package gen

import (
	"fmt"
	"strings"
)

// PromptInput carries the user-facing fields that shape the prompt.
// Callers apply defaults before building; UserContext is already trimmed.
type PromptInput struct {
	PostType       string
	InputLanguage  string
	OutputLanguage string
	UserContext    string
	ImageCount     int
}

const promptInstructions = `
Please provide content specifically tailored for each platform below. Aim for the general conventions of each platform regarding length and style. Use clear headings for each section exactly as follows, followed by the generated text.
Also follow 5W1H approach which is what, who, when, where, why and how? in the post by analyzing the given information.
Dont mention 5W1H approach which is what, who, when, where, why and how? in the post directly.  :

### Facebook Post ###
[Generate Facebook content here. It can be a moderate length, suitable for a typical feed post. Include relevant hashtags.]

### X (Twitter) Post ###
[Generate X content here. Be concise, strictly adhere to a character limit appropriate for X (~280 chars including hashtags is a good target). Include relevant hashtags.]

### Instagram Post ###
[Generate Instagram caption here. It should be engaging and can use line breaks for readability, but aim for a concise to moderate length compared to Facebook. Include relevant hashtags.]
`

// BuildPrompt assembles the single prompt sent to the model.
func BuildPrompt(in PromptInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, `Generate social media content based on the following requirements:
- Post Type: %s
- Input Context Language: %s
- Output Language: %s
- User Context/Details: "%s"
`, in.PostType, in.InputLanguage, in.OutputLanguage, in.UserContext)

	if in.ImageCount > 0 {
		fmt.Fprintf(&b, `
- Note: %d image(s) have been provided via URIs. Analyze them along with the text context to generate the post content.
Do NOT explicitly describe the images in the text unless specifically requested in the user context. Focus on generating relevant post text based on the combined visual and text input.`, in.ImageCount)
	} else {
		b.WriteString(`
No images were provided. Generate content solely based on the user context.`)
	}

	b.WriteString(promptInstructions)
	fmt.Fprintf(&b, "\nEnsure the language of the generated content is strictly in %s.\n", in.OutputLanguage)

	return b.String()
}
