package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"assessment-service/internal/engine"
	"assessment-service/internal/generator"
	"assessment-service/internal/models"
)

// SessionService owns the session lifecycle: start, next-question, answer,
// submit and abandon. Every operation reads the session fresh from the
// store, mutates it, and writes back once through a version-checked update;
// the optional locker additionally serializes writers per session.
type SessionService struct {
	Sessions    SessionStore
	Assessments AssessmentStore
	Results     ResultStore
	Provider    generator.Provider
	Engine      engine.Config
	Selector    *engine.Selector
	Locker      Locker
	Publisher   EventPublisher
}

func NewSessionService(
	sessions SessionStore,
	assessments AssessmentStore,
	results ResultStore,
	provider generator.Provider,
	cfg engine.Config,
	locker Locker,
	publisher EventPublisher,
) *SessionService {
	return &SessionService{
		Sessions:    sessions,
		Assessments: assessments,
		Results:     results,
		Provider:    provider,
		Engine:      cfg,
		Selector:    engine.NewSelector(),
		Locker:      locker,
		Publisher:   publisher,
	}
}

type StartRequest struct {
	AssessmentID   string `json:"assessment_id" binding:"required"`
	CandidateEmail string `json:"candidate_email"`
	CandidateName  string `json:"candidate_name"`
}

type AnswerRequest struct {
	QuestionID       string `json:"question_id" binding:"required"`
	Answer           string `json:"answer"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}

// AnswerResult is the answer-submission contract exposed to the handler
// layer.
type AnswerResult struct {
	Correct               bool   `json:"correct"`
	Explanation           string `json:"explanation"`
	NextQuestionAvailable bool   `json:"next_question_available"`
	QuestionsAnswered     int    `json:"questions_answered"`
	MaxQuestions          int    `json:"max_questions"`
}

// Start creates a session in progress, with every area's difficulty seeded
// from the assessment.
func (s *SessionService) Start(ctx context.Context, tenant string, req StartRequest) (*models.CandidateSession, error) {
	assessment, err := s.Assessments.FindByID(ctx, tenant, req.AssessmentID)
	if err != nil {
		return nil, mapStoreErr(err, "assessment "+req.AssessmentID)
	}
	if !assessment.Active {
		return nil, fmt.Errorf("%w: assessment %s is inactive", ErrValidation, assessment.ID)
	}

	difficulties := make(map[string]int, len(assessment.Areas))
	for _, area := range assessment.Areas {
		difficulties[area.Name] = assessment.InitialDifficulty
	}

	session := &models.CandidateSession{
		ID:             uuid.NewString(),
		TenantID:       tenant,
		AssessmentID:   assessment.ID,
		CandidateEmail: req.CandidateEmail,
		CandidateName:  req.CandidateName,
		Difficulties:   difficulties,
		Responses:      []models.QuestionResponse{},
		Status:         models.StatusInProgress,
		StartedAt:      time.Now().UTC(),
	}
	if err := s.Sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	if s.Publisher != nil {
		_ = s.Publisher.Publish("session.started", map[string]interface{}{
			"tenant_id":     tenant,
			"session_id":    session.ID,
			"assessment_id": assessment.ID,
		})
	}
	return session, nil
}

func (s *SessionService) Get(ctx context.Context, tenant, id string) (*models.CandidateSession, error) {
	session, err := s.Sessions.FindByID(ctx, tenant, id)
	if err != nil {
		return nil, mapStoreErr(err, "session "+id)
	}
	return session, nil
}

// NextQuestion picks the next area, generates a question at the area's
// current difficulty and holds it as the session's pending question until it
// is answered or superseded by the next call.
func (s *SessionService) NextQuestion(ctx context.Context, tenant, id string) (*models.Question, error) {
	session, err := s.Get(ctx, tenant, id)
	if err != nil {
		return nil, err
	}
	if session.Status.Terminal() {
		return nil, fmt.Errorf("%w: session %s is %s", ErrSessionTerminal, id, session.Status)
	}
	assessment, err := s.Assessments.FindByID(ctx, tenant, session.AssessmentID)
	if err != nil {
		return nil, mapStoreErr(err, "assessment "+session.AssessmentID)
	}
	if len(session.Responses) >= assessment.MaxQuestions {
		return nil, fmt.Errorf("%w: question cap of %d reached, submit the session", ErrConflict, assessment.MaxQuestions)
	}

	area := s.Selector.NextArea(assessment.Areas, session.Responses)
	difficulty := session.Difficulties[area]
	if difficulty == 0 {
		difficulty = assessment.InitialDifficulty
	}

	req := generator.Request{
		Area:       area,
		Difficulty: difficulty,
	}
	if cfg := assessment.Area(area); cfg != nil {
		req.Language = cfg.Language
	}
	req.RecentAccuracy, req.HasAccuracy = s.Engine.RecentAccuracy(session.AreaResponses(area))

	question, err := s.generate(ctx, req)
	if err != nil {
		return nil, err
	}

	err = s.Sessions.UpdateVersioned(ctx, tenant, id, session.Version, bson.M{
		"pending_question": question,
	})
	if err != nil {
		return nil, mapStoreErr(err, "session "+id)
	}
	return question, nil
}

// generate calls the provider, retrying exactly once with the strict
// directive when the first attempt was content-filtered.
func (s *SessionService) generate(ctx context.Context, req generator.Request) (*models.Question, error) {
	question, err := s.Provider.Generate(ctx, req)
	if errors.Is(err, generator.ErrContentFiltered) {
		req.Strict = true
		question, err = s.Provider.Generate(ctx, req)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return question, nil
}

// Answer grades the pending question, appends to the log and re-evaluates
// the area's difficulty. A question id may be answered at most once per
// session.
func (s *SessionService) Answer(ctx context.Context, tenant, id string, req AnswerRequest) (*AnswerResult, error) {
	if req.TimeSpentSeconds < 0 {
		return nil, fmt.Errorf("%w: time spent cannot be negative", ErrValidation)
	}

	if s.Locker != nil {
		release, err := s.Locker.Acquire(ctx, tenant, id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		defer release()
	}

	session, err := s.Get(ctx, tenant, id)
	if err != nil {
		return nil, err
	}
	if session.Status.Terminal() {
		return nil, fmt.Errorf("%w: session %s is %s", ErrSessionTerminal, id, session.Status)
	}
	if session.HasAnswered(req.QuestionID) {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateAnswer, req.QuestionID)
	}
	pending := session.Pending
	if pending == nil || pending.ID != req.QuestionID {
		return nil, fmt.Errorf("%w: question %s is not pending for this session", ErrNotFound, req.QuestionID)
	}
	assessment, err := s.Assessments.FindByID(ctx, tenant, session.AssessmentID)
	if err != nil {
		return nil, mapStoreErr(err, "assessment "+session.AssessmentID)
	}

	correct := engine.Grade(pending.CorrectAnswers, req.Answer)
	response := models.QuestionResponse{
		QuestionID:       pending.ID,
		Area:             pending.Area,
		Difficulty:       pending.Difficulty,
		Answer:           req.Answer,
		Correct:          correct,
		TimeSpentSeconds: req.TimeSpentSeconds,
		AnsweredAt:       time.Now().UTC(),
	}
	responses := append(session.Responses, response)

	current := session.Difficulties[pending.Area]
	if current == 0 {
		current = assessment.InitialDifficulty
	}
	next := s.Engine.NextDifficulty(current, areaSubset(responses, pending.Area))
	difficulties := session.Difficulties
	if difficulties == nil {
		difficulties = map[string]int{}
	}
	difficulties[pending.Area] = next

	err = s.Sessions.UpdateVersioned(ctx, tenant, id, session.Version, bson.M{
		"responses":        responses,
		"difficulties":     difficulties,
		"pending_question": nil,
	})
	if err != nil {
		return nil, mapStoreErr(err, "session "+id)
	}

	if s.Publisher != nil {
		_ = s.Publisher.Publish("session.answer.recorded", map[string]interface{}{
			"tenant_id":  tenant,
			"session_id": id,
			"area":       pending.Area,
			"correct":    correct,
		})
	}

	answered := len(responses)
	return &AnswerResult{
		Correct:               correct,
		Explanation:           pending.Explanation,
		NextQuestionAvailable: answered < assessment.MaxQuestions,
		QuestionsAnswered:     answered,
		MaxQuestions:          assessment.MaxQuestions,
	}, nil
}

// Submit scores the session and moves it to its terminal completed state.
// Submitting an already-finished session fails with ErrSessionTerminal,
// which is distinct from an unknown session id.
func (s *SessionService) Submit(ctx context.Context, tenant, id string) (*models.PerformanceMetrics, error) {
	if s.Locker != nil {
		release, err := s.Locker.Acquire(ctx, tenant, id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrConflict, err)
		}
		defer release()
	}

	session, err := s.Get(ctx, tenant, id)
	if err != nil {
		return nil, err
	}
	if session.Status.Terminal() {
		return nil, fmt.Errorf("%w: session %s is %s", ErrSessionTerminal, id, session.Status)
	}
	assessment, err := s.Assessments.FindByID(ctx, tenant, session.AssessmentID)
	if err != nil {
		return nil, mapStoreErr(err, "assessment "+session.AssessmentID)
	}

	metrics := s.Engine.Score(assessment, session.Responses)
	metrics.ID = uuid.NewString()
	metrics.SessionID = session.ID
	metrics.CreatedAt = time.Now().UTC()

	// The versioned transition to completed gates the result insert: a
	// concurrent writer rejects this submit before anything is persisted,
	// so a retried submit can never leave two results for one session.
	now := time.Now().UTC()
	err = s.Sessions.UpdateVersioned(ctx, tenant, id, session.Version, bson.M{
		"status":           models.StatusCompleted,
		"completed_at":     now,
		"pending_question": nil,
	})
	if err != nil {
		return nil, mapStoreErr(err, "session "+id)
	}

	if err := s.Results.Create(ctx, metrics); err != nil {
		return nil, err
	}

	if s.Publisher != nil {
		_ = s.Publisher.Publish("session.completed", map[string]interface{}{
			"tenant_id":  tenant,
			"session_id": id,
			"metrics":    metrics,
		})
	}
	return metrics, nil
}

// Abandon moves an in-progress session to its terminal abandoned state
// without scoring it.
func (s *SessionService) Abandon(ctx context.Context, tenant, id string) error {
	session, err := s.Get(ctx, tenant, id)
	if err != nil {
		return err
	}
	if session.Status.Terminal() {
		return fmt.Errorf("%w: session %s is %s", ErrSessionTerminal, id, session.Status)
	}
	now := time.Now().UTC()
	err = s.Sessions.UpdateVersioned(ctx, tenant, id, session.Version, bson.M{
		"status":           models.StatusAbandoned,
		"completed_at":     now,
		"pending_question": nil,
	})
	if err != nil {
		return mapStoreErr(err, "session "+id)
	}
	if s.Publisher != nil {
		_ = s.Publisher.Publish("session.abandoned", map[string]interface{}{
			"tenant_id":  tenant,
			"session_id": id,
		})
	}
	return nil
}

// Result returns the stored metrics for a completed session.
func (s *SessionService) Result(ctx context.Context, tenant, sessionID string) (*models.PerformanceMetrics, error) {
	m, err := s.Results.FindBySession(ctx, tenant, sessionID)
	if err != nil {
		return nil, mapStoreErr(err, "result for session "+sessionID)
	}
	return m, nil
}

// Assessment loads the config a session runs against, for progress views.
func (s *SessionService) Assessment(ctx context.Context, tenant, id string) (*models.Assessment, error) {
	a, err := s.Assessments.FindByID(ctx, tenant, id)
	if err != nil {
		return nil, mapStoreErr(err, "assessment "+id)
	}
	return a, nil
}

func areaSubset(responses []models.QuestionResponse, area string) []models.QuestionResponse {
	var out []models.QuestionResponse
	for _, r := range responses {
		if r.Area == area {
			out = append(out, r)
		}
	}
	return out
}
