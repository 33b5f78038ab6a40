package research

import "fmt"

// BuildIngredientPrompt returns the research prompt for one ingredient name.
func BuildIngredientPrompt(name string) string {
	return fmt.Sprintf(`You are a food science expert. Research the food ingredient %q and describe it.

Return ONLY valid JSON with no markdown formatting, no code fences, and no explanation. The raw JSON object:
{
  "name": "proper display name of the ingredient",
  "description": "one or two sentences on what it is",
  "purpose": "why it is added to food, e.g. preservative, sweetener, colorant",
  "safety_level": "one of: safe, moderate, caution, avoid",
  "natural": true or false,
  "allergen_tags": ["lowercase allergen names, empty if none"],
  "confidence": 0.0 to 1.0, how certain you are this is a real food ingredient you recognize
}

If you do not recognize the ingredient, still return the JSON with your best guess and a low confidence value.`, name)
}
