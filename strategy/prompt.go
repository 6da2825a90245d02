package strategy

import (
	"fmt"

	"command-center/internal/models"
)

// The prompt is a fixed template; only the source material and its
// label vary per call.
const promptTemplate = `Act as a viral content strategist.

SOURCE MATERIAL (%s):
"%s"

TASK:
Analyze this content and generate a plan to recreate and outperform it.

OUTPUT FORMAT (Markdown):
### 1. The Psychology
* **Why it performs:** (analyze the hook and pacing)
* **The Gap:** (what was missing and how to improve on it)

### 2. Script Outline
* **Hook (0:00-0:30):** [visual + verbal hook]
* **Body:** [3 key value points]
* **Retention Hack:** [mid-video pattern interrupt]
* **CTA:** [specific call to action]

### 3. Thumbnail Concepts
* **Idea 1:** [visual description]
* **Idea 2:** [visual description]

### 4. Alternative Titles
* Give 3 click-worthy alternative titles.
`

func buildPrompt(contextText string, source models.ContextSource) string {
	return fmt.Sprintf(promptTemplate, source, contextText)
}
