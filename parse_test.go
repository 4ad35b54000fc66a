package recipex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/recipex"
	"github.com/fwojciec/recipex/locale"
)

func TestParseIngredient_RoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		locale string
		line   string
		want   recipex.Ingredient
	}{
		{
			name:   "italian metric weight",
			locale: "it",
			line:   "250 g di pasta",
			want:   recipex.Ingredient{Name: "pasta", Amount: recipex.AmountOf(250), Units: "g"},
		},
		{
			name:   "italian compound idiom",
			locale: "it",
			line:   "1 cucchiaio e mezzo di zucchero",
			want:   recipex.Ingredient{Name: "zucchero", Amount: recipex.AmountOf(1.5), Units: "cucchiai"},
		},
		{
			name:   "english volumetric",
			locale: "en",
			line:   "2 tablespoons butter",
			want:   recipex.Ingredient{Name: "butter", Amount: recipex.AmountOf(2), Units: "tablespoons"},
		},
		{
			name:   "french fraction with apostrophe name",
			locale: "fr",
			line:   "1/2 tasse de sirop d'érable",
			want:   recipex.Ingredient{Name: "sirop d'érable", Amount: recipex.AmountOf(0.5), Units: "tasse"},
		},
		{
			name:   "swedish abbreviation",
			locale: "sv",
			line:   "2 msk smör",
			want:   recipex.Ingredient{Name: "smör", Amount: recipex.AmountOf(2), Units: "msk"},
		},
		{
			name:   "czech spoon",
			locale: "cs",
			line:   "2 lžíce oleje",
			want:   recipex.Ingredient{Name: "oleje", Amount: recipex.AmountOf(2), Units: "lžíce"},
		},
		{
			name:   "polish half idiom",
			locale: "pl",
			line:   "pół szklanki mleka",
			want:   recipex.Ingredient{Name: "mleka", Amount: recipex.AmountOf(0.5), Units: "szklanki"},
		},
		{
			name:   "korean cup",
			locale: "ko",
			line:   "2컵 설탕",
			want:   recipex.Ingredient{Name: "설탕", Amount: recipex.AmountOf(2), Units: "컵"},
		},
		{
			name:   "german spoon abbreviation",
			locale: "de",
			line:   "3 EL Mehl",
			want:   recipex.Ingredient{Name: "Mehl", Amount: recipex.AmountOf(3), Units: "el"},
		},
		{
			name:   "no quantity at all",
			locale: "it",
			line:   "sale",
			want:   recipex.Ingredient{Name: "sale"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			loc := locale.MustLoad(tt.locale)

			got := recipex.ParseIngredient(tt.line, loc)

			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseIngredient_FractionResolution(t *testing.T) {
	t.Parallel()

	loc := locale.MustLoad("en")

	tests := []struct {
		line string
		want float64
	}{
		{"1/2 cup sugar", 0.5},
		{"1 1/2 cups flour", 1.5},
		{"½ cup milk", 0.5},
		{"1½ cups water", 1.5},
		{"1⁄2 cup milk", 0.5},
		{"1 1⁄2 cups water", 1.5},
		{"2,5 kg potatoes", 2.5},
		{"2.5 kg potatoes", 2.5},
		{"2-3 cloves garlic", 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			got := recipex.ParseIngredient(tt.line, loc)

			require.NotNil(t, got)
			amount, ok := got.Amount.Float64()
			require.True(t, ok, "expected numeric amount")
			assert.InDelta(t, tt.want, amount, 0.001)
		})
	}
}

func TestParseIngredient_LongestUnitMatchPrecedence(t *testing.T) {
	t.Parallel()

	t.Run("litro wins over l in italian", func(t *testing.T) {
		t.Parallel()

		loc := locale.MustLoad("it")

		got := recipex.ParseIngredient("1 litro di latte", loc)

		require.NotNil(t, got)
		assert.Equal(t, "litro", got.Units)
		assert.Equal(t, "latte", got.Name)
	})

	t.Run("l does not shadow linguine", func(t *testing.T) {
		t.Parallel()

		loc := locale.MustLoad("it")

		got := recipex.ParseIngredient("500 g di linguine", loc)

		require.NotNil(t, got)
		assert.Equal(t, "g", got.Units)
		assert.Equal(t, "linguine", got.Name)
	})

	t.Run("lžíce wins over l in czech", func(t *testing.T) {
		t.Parallel()

		loc := locale.MustLoad("cs")

		got := recipex.ParseIngredient("3 lžíce cukru", loc)

		require.NotNil(t, got)
		assert.Equal(t, "lžíce", got.Units)
		assert.Equal(t, "cukru", got.Name)
	})
}

func TestParseIngredient_NullSafety(t *testing.T) {
	t.Parallel()

	loc := locale.MustLoad("it")

	tests := []struct {
		name string
		line string
	}{
		{"empty string", ""},
		{"whitespace only", "   \t  "},
		{"section header", "Ingredienti:"},
		{"single character residue", "g"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Nil(t, recipex.ParseIngredient(tt.line, loc))
		})
	}
}

func TestParseIngredient_GracefulDegradation(t *testing.T) {
	t.Parallel()

	t.Run("bare name yields record without amount or units", func(t *testing.T) {
		t.Parallel()

		loc := locale.MustLoad("en")

		got := recipex.ParseIngredient("salt", loc)

		require.NotNil(t, got)
		assert.Equal(t, "salt", got.Name)
		assert.True(t, got.Amount.IsZero())
		assert.Empty(t, got.Units)
	})

	t.Run("unrecognized unit stays part of the name", func(t *testing.T) {
		t.Parallel()

		loc := locale.MustLoad("en")

		got := recipex.ParseIngredient("2 glugs olive oil", loc)

		require.NotNil(t, got)
		assert.Equal(t, "glugs olive oil", got.Name)
		amount, ok := got.Amount.Float64()
		require.True(t, ok)
		assert.Equal(t, 2.0, amount)
		assert.Empty(t, got.Units)
	})

	t.Run("composite ingredient stays one record", func(t *testing.T) {
		t.Parallel()

		loc := locale.MustLoad("it")

		got := recipex.ParseIngredient("sale e pepe", loc)

		require.NotNil(t, got)
		assert.Equal(t, "sale e pepe", got.Name)
	})
}

func TestParseIngredient_QualifierPolicy(t *testing.T) {
	t.Parallel()

	t.Run("trailing qualifier becomes units when nothing else is set", func(t *testing.T) {
		t.Parallel()

		loc := locale.MustLoad("en")

		got := recipex.ParseIngredient("salt to taste", loc)

		require.NotNil(t, got)
		assert.Equal(t, "salt", got.Name)
		assert.True(t, got.Amount.IsZero())
		assert.Equal(t, "to taste", got.Units)
	})

	t.Run("qualifier is dropped when a real unit exists", func(t *testing.T) {
		t.Parallel()

		loc := locale.MustLoad("en")

		got := recipex.ParseIngredient("2 tbsp parsley, for garnish", loc)

		require.NotNil(t, got)
		assert.Equal(t, "parsley", got.Name)
		assert.Equal(t, "tbsp", got.Units)
	})

	t.Run("italian q.b. convention", func(t *testing.T) {
		t.Parallel()

		loc := locale.MustLoad("it")

		got := recipex.ParseIngredient("olio extravergine q.b.", loc)

		require.NotNil(t, got)
		assert.Equal(t, "olio extravergine", got.Name)
		assert.Equal(t, "q.b.", got.Units)
	})
}

func TestParseIngredient_QualitativeQuantity(t *testing.T) {
	t.Parallel()

	loc := locale.MustLoad("it")

	got := recipex.ParseIngredient("una manciata di prezzemolo", loc)

	require.NotNil(t, got)
	assert.Equal(t, "prezzemolo", got.Name)
	text, ok := got.Amount.Text()
	require.True(t, ok, "expected qualitative amount")
	assert.Equal(t, "una manciata", text)
	assert.Empty(t, got.Units)
}

func TestParseIngredient_StripsParentheticals(t *testing.T) {
	t.Parallel()

	loc := locale.MustLoad("en")

	got := recipex.ParseIngredient("1 cup oats (Quaker)", loc)

	require.NotNil(t, got)
	assert.Equal(t, "oats", got.Name)
	assert.Equal(t, "cup", got.Units)
}

func TestCleanName_Idempotent(t *testing.T) {
	t.Parallel()

	loc := locale.MustLoad("it")

	inputs := []string{
		"di pasta (fresca), a piacere",
		"zucchero  semolato ;",
		"d'aglio",
		"prezzemolo",
	}

	for _, in := range inputs {
		once := recipex.CleanName(in, loc)
		twice := recipex.CleanName(once, loc)

		assert.Equal(t, once, twice, "cleanup of %q is not idempotent", in)
	}
}
