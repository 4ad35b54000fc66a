package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/fwojciec/recipex"
)

const model = "gemini-2.5-flash"

// Ensure Translator implements recipex.Translator at compile time.
var _ recipex.Translator = (*Translator)(nil)

// Translator implements recipex.Translator using Google Gemini.
type Translator struct {
	client *genai.Client
}

// NewTranslator creates a new Translator.
func NewTranslator(client *genai.Client) *Translator {
	return &Translator{client: client}
}

// Translation is the wire shape the model fills in. Only prose fields
// appear here; amounts and unit tokens never leave the original recipe.
type Translation struct {
	DishName        string   `json:"dish_name"`
	Description     string   `json:"description"`
	IngredientNames []string `json:"ingredient_names"`
	Instructions    string   `json:"instructions"`
	Category        string   `json:"category"`
	Notes           string   `json:"notes"`
	Tags            string   `json:"tags"`
}

// Translate returns a translated copy of the recipe. The input recipe is
// not modified.
func (t *Translator) Translate(ctx context.Context, recipe *recipex.Recipe, targetLang string) (*recipex.Recipe, error) {
	if recipe == nil {
		return nil, recipex.Errorf(recipex.EINVALID, "recipe required")
	}
	if targetLang == "" {
		return nil, recipex.Errorf(recipex.EINVALID, "target language required")
	}

	prompt := BuildUserPrompt(recipe, targetLang)
	config := BuildConfig()

	result, err := t.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		config,
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, recipex.Errorf(recipex.EINTERNAL, "gemini returned nil result")
	}

	var translation Translation
	if err := json.Unmarshal([]byte(result.Text()), &translation); err != nil {
		return nil, recipex.Errorf(recipex.EUNPROCESSABLE, "invalid translation response: %v", err)
	}

	return Merge(recipe, &translation), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a culinary translator. Translate the recipe fields in the provided JSON into the requested language. Keep quantities, measurements, and proper nouns unchanged. Return JSON with the same keys and the same number of ingredient names.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildUserPrompt builds the user prompt containing the recipe fields and
// the target language.
func BuildUserPrompt(recipe *recipex.Recipe, targetLang string) string {
	payload := Translation{
		DishName:     recipe.DishName,
		Description:  recipe.Description,
		Instructions: recipe.Instructions,
		Category:     recipe.Category,
		Notes:        recipe.Notes,
		Tags:         recipe.Tags,
	}
	for _, ing := range recipe.Ingredients {
		payload.IngredientNames = append(payload.IngredientNames, ing.Name)
	}

	b, _ := json.MarshalIndent(payload, "", "  ")

	var sb strings.Builder
	sb.WriteString("<recipe>\n")
	sb.Write(b)
	sb.WriteString("\n</recipe>\n\n")
	fmt.Fprintf(&sb, "Target language: %s", targetLang)
	return sb.String()
}

// Merge applies a translation onto a copy of the recipe. Ingredient
// amounts and units carry over from the original; a translated name is
// only taken when the model returned one for that position.
func Merge(recipe *recipex.Recipe, translation *Translation) *recipex.Recipe {
	out := *recipe
	out.DishName = translation.DishName
	out.Description = translation.Description
	out.Instructions = translation.Instructions
	out.Category = translation.Category
	out.Notes = translation.Notes
	out.Tags = translation.Tags

	out.Ingredients = make([]recipex.Ingredient, len(recipe.Ingredients))
	copy(out.Ingredients, recipe.Ingredients)
	for i := range out.Ingredients {
		if i < len(translation.IngredientNames) && translation.IngredientNames[i] != "" {
			out.Ingredients[i].Name = translation.IngredientNames[i]
		}
	}
	return &out
}
