package candidate

// Tier identifies the collection a candidate came from, in cascade priority
// order: graduated members first, then enrolled members, then open positions.
type Tier string

// Tier constants.
const (
	Graduated Tier = "graduated"
	Enrolled  Tier = "enrolled"
	Position  Tier = "position"
)

// IsValid checks if the tier is one of the known collections.
func (t Tier) IsValid() bool {
	return t == Graduated || t == Enrolled || t == Position
}

// Candidate is a single scored record retrieved from one tier.
type Candidate struct {
	tier       Tier
	id         string
	title      string
	context    string
	bio        string
	semantic   float64
	lexicalRaw float64
	score      float64
}

// New creates a candidate. score is the blended ranking score; for tiers
// without a lexical signal it equals the semantic score.
func New(tier Tier, id, title, context, bio string, semantic, lexicalRaw, score float64) Candidate {
	return Candidate{
		tier:       tier,
		id:         id,
		title:      title,
		context:    context,
		bio:        bio,
		semantic:   semantic,
		lexicalRaw: lexicalRaw,
		score:      score,
	}
}

// Rescored returns a copy with the final blended score set. Used by the
// blender once the batch-relative lexical normalization is known.
func (c Candidate) Rescored(score float64) Candidate {
	c.score = score
	return c
}

// Tier returns the source collection tag.
func (c *Candidate) Tier() Tier { return c.tier }

// ID returns the record identifier.
func (c *Candidate) ID() string { return c.id }

// Title returns the record headline (current job, position title).
func (c *Candidate) Title() string { return c.title }

// Context returns the record context line (company, org).
func (c *Candidate) Context() string { return c.context }

// Bio returns the untruncated free-text description.
func (c *Candidate) Bio() string { return c.bio }

// Semantic returns the vector-similarity score.
func (c *Candidate) Semantic() float64 { return c.semantic }

// LexicalRaw returns the unnormalized text-relevance score (0 without keyword).
func (c *Candidate) LexicalRaw() float64 { return c.lexicalRaw }

// Score returns the blended ranking score.
func (c *Candidate) Score() float64 { return c.score }
