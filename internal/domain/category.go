package domain

// Category is one of the four fixed profile buckets a test result is classified into.
type Category string

const (
	CategoryDesenganchados Category = "desenganchados"
	CategorySonadores      Category = "soñadores"
	CategoryAficionados    Category = "aficionados"
	CategoryComprometidos  Category = "comprometidos"
)

const (
	// QuestionCount is the number of questions in the quiz.
	QuestionCount = 37
	// MinAnswerValue and MaxAnswerValue bound a Likert answer.
	MinAnswerValue = 1
	MaxAnswerValue = 4
)

// categoryRange is the contiguous block of question ids owned by a category.
type categoryRange struct {
	first, last int
}

// Categories lists every category in tie-break order.
var Categories = []Category{
	CategoryDesenganchados,
	CategorySonadores,
	CategoryAficionados,
	CategoryComprometidos,
}

func (c Category) questionRange() (categoryRange, bool) {
	switch c {
	case CategoryDesenganchados:
		return categoryRange{1, 9}, true
	case CategorySonadores:
		return categoryRange{10, 18}, true
	case CategoryAficionados:
		return categoryRange{19, 27}, true
	case CategoryComprometidos:
		return categoryRange{28, 37}, true
	default:
		return categoryRange{}, false
	}
}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	_, ok := c.questionRange()
	return ok
}

// Order is the tie-break rank, 1 for desenganchados through 4 for comprometidos.
// Unknown categories rank last.
func (c Category) Order() int {
	switch c {
	case CategoryDesenganchados:
		return 1
	case CategorySonadores:
		return 2
	case CategoryAficionados:
		return 3
	case CategoryComprometidos:
		return 4
	default:
		return len(Categories) + 1
	}
}

// QuestionCount returns how many questions feed this category.
func (c Category) QuestionCount() int {
	r, ok := c.questionRange()
	if !ok {
		return 0
	}
	return r.last - r.first + 1
}

// MaxScore is the highest total the category can reach (36 or 40).
func (c Category) MaxScore() int {
	return c.QuestionCount() * MaxAnswerValue
}

// Title is the singular display name used in reports and the dashboard.
func (c Category) Title() string {
	switch c {
	case CategoryDesenganchados:
		return "Desenganchado"
	case CategorySonadores:
		return "Soñador"
	case CategoryAficionados:
		return "Aficionado"
	case CategoryComprometidos:
		return "Comprometido"
	default:
		return "Resultado"
	}
}

// Color is the accent colour of the category in reports.
func (c Category) Color() string {
	switch c {
	case CategoryDesenganchados:
		return "#EF4444"
	case CategorySonadores:
		return "#EAB308"
	case CategoryAficionados:
		return "#22C55E"
	case CategoryComprometidos:
		return "#3B82F6"
	default:
		return "#8B5CF6"
	}
}

func (c Category) String() string {
	return string(c)
}

// ParseCategory converts a stored category name back into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if !c.Valid() {
		return "", NewInvalidCategoryError(s)
	}
	return c, nil
}

// CategoryFor returns the category owning questionID. ok is false outside 1..37.
func CategoryFor(questionID int) (Category, bool) {
	for _, c := range Categories {
		r, _ := c.questionRange()
		if questionID >= r.first && questionID <= r.last {
			return c, true
		}
	}
	return "", false
}

// QuestionIDs returns the question ids owned by c, ascending.
func (c Category) QuestionIDs() []int {
	r, ok := c.questionRange()
	if !ok {
		return nil
	}
	ids := make([]int, 0, r.last-r.first+1)
	for id := r.first; id <= r.last; id++ {
		ids = append(ids, id)
	}
	return ids
}
