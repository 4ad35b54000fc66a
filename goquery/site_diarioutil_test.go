package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/recipex"
	"github.com/fwojciec/recipex/goquery"
	"github.com/fwojciec/recipex/locale"
)

func TestDiarioUtilExtractor(t *testing.T) {
	t.Parallel()

	extractor := goquery.NewDiarioUtilExtractor(locale.MustLoad("it"))

	t.Run("reports its site", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "blog_diarioutil_com", extractor.Site())
	})

	t.Run("extracts heading-marked sections from the article body", func(t *testing.T) {
		t.Parallel()

		html := `<html lang="it"><head>
			<meta name="description" content="Una torta di mele soffice e profumata.">
			<meta property="og:image" content="https://example.com/cover.jpg">
			<script type="application/ld+json">
			{"@context":"https://schema.org","@type":"BlogPosting","articleSection":"Dolci","keywords":["torta","mele"],"image":"https://example.com/torta.jpg"}
			</script>
		</head><body>
			<h1>Torta di mele soffice</h1>
			<div itemprop="articleBody">
				<p>Il tempo di preparazione: 20 minuti e la cottura: 40 minuti.</p>
				<h2>Ingredienti</h2>
				<ul>
					<li>250 g di farina</li>
					<li>2 uova</li>
					<li>Per la copertura:</li>
				</ul>
				<h2>Come preparare la torta di mele</h2>
				<p>Montate le uova con lo zucchero.</p>
				<p>Aggiungete la farina e infornate.</p>
				<h2>Consigli utili</h2>
				<p>Servitela fredda con una spolverata di zucchero a velo.</p>
			</div>
		</body></html>`

		recipe, err := extractor.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "Torta di mele soffice", recipe.DishName)
		assert.Equal(t, "Una torta di mele soffice e profumata.", recipe.Description)
		assert.Equal(t, []recipex.Ingredient{
			{Name: "farina", Amount: recipex.AmountOf(250), Units: "g"},
			{Name: "uova", Amount: recipex.AmountOf(2)},
		}, recipe.Ingredients)
		assert.Equal(t, "Montate le uova con lo zucchero.\nAggiungete la farina e infornate.", recipe.Instructions)
		assert.Equal(t, "Servitela fredda con una spolverata di zucchero a velo.", recipe.Notes)
		assert.Equal(t, "20 minutes", recipe.PrepTime)
		assert.Equal(t, "40 minutes", recipe.CookTime)
		assert.Empty(t, recipe.TotalTime)
		assert.Equal(t, "Dolci", recipe.Category)
		assert.Equal(t, "torta, mele", recipe.Tags)
		assert.Equal(t, "https://example.com/cover.jpg,https://example.com/torta.jpg", recipe.ImageURLs)
	})

	t.Run("reads times from running-text phrases", func(t *testing.T) {
		t.Parallel()

		html := `<html lang="it"><body>
			<h1>Pesto veloce</h1>
			<nav aria-label="Breadcrumbs"><a href="/salse/">Salse</a></nav>
			<div itemprop="articleBody">
				<p>Per questa ricetta ci vogliono meno di 15 minuti.
				Lasciare riposare il pesto per almeno 30 minuti prima di servire.</p>
			</div>
		</body></html>`

		recipe, err := extractor.Extract(html)

		require.NoError(t, err)
		assert.Equal(t, "15 minutes", recipe.PrepTime)
		assert.Empty(t, recipe.CookTime)
		assert.Equal(t, "30 minutes", recipe.TotalTime)
		assert.Equal(t, "Salse", recipe.Category)
	})
}
