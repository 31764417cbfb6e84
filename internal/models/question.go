package models

type QuestionType string

const (
	QuestionMCQ            QuestionType = "mcq"
	QuestionCoding         QuestionType = "coding"
	QuestionProblemSolving QuestionType = "problem_solving"
	QuestionNumerical      QuestionType = "numerical"
	QuestionScenario       QuestionType = "scenario_based"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionMCQ, QuestionCoding, QuestionProblemSolving, QuestionNumerical, QuestionScenario:
		return true
	}
	return false
}

// Question is a generated question held in session state until answered.
// CorrectAnswers and Explanation are never serialized to clients; they stay
// inside the session document until the question is graded.
type Question struct {
	ID             string       `bson:"_id" json:"id"`
	Area           string       `bson:"area" json:"area"`
	Text           string       `bson:"text" json:"text"`
	Type           QuestionType `bson:"type" json:"type"`
	Options        []string     `bson:"options,omitempty" json:"options,omitempty"`
	CorrectAnswers []string     `bson:"correct_answers" json:"-"`
	Explanation    string       `bson:"explanation" json:"-"`
	Difficulty     int          `bson:"difficulty" json:"difficulty"`
}
