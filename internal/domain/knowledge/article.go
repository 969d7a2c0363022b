// Package knowledge defines the knowledge-base article hit.
package knowledge

// Article is a single scored knowledge-base search hit.
type Article struct {
	id      string
	title   string
	score   float64
	source  string
	excerpt string
}

// New creates an article hit.
func New(id, title string, score float64, source, excerpt string) Article {
	return Article{id: id, title: title, score: score, source: source, excerpt: excerpt}
}

// ID returns the article identifier.
func (a *Article) ID() string { return a.id }

// Title returns the article title.
func (a *Article) Title() string { return a.title }

// Score returns the semantic similarity score.
func (a *Article) Score() float64 { return a.score }

// Source returns where the article came from (drive, wiki, upload).
func (a *Article) Source() string { return a.source }

// Excerpt returns a short body snippet for result rendering.
func (a *Article) Excerpt() string { return a.excerpt }
