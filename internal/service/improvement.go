package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/errgroup"

	"resume-studio/internal/contextutil"
	"resume-studio/internal/resume"
)

// DefaultImprovementConcurrency bounds parallel LLM calls per run.
const DefaultImprovementConcurrency = 2

// ImprovementService rewrites résumé bullets and skills with the LLM.
type ImprovementService interface {
	// ImproveResume runs one task per experience, project and (when present)
	// the skills section, reporting progress through emit. Task failures are
	// reported as error events; only input validation or an emit failure ends
	// the run with an error.
	ImproveResume(ctx context.Context, r resume.Resume, emit func(ProgressEvent) error) error
}

type improvementService struct {
	llmClient   LLMClient
	concurrency int
	logger      *slog.Logger
}

// NewImprovementService creates a new ImprovementService. A concurrency
// below one falls back to DefaultImprovementConcurrency.
func NewImprovementService(llmClient LLMClient, concurrency int) ImprovementService {
	if concurrency < 1 {
		concurrency = DefaultImprovementConcurrency
	}
	return &improvementService{
		llmClient:   llmClient,
		concurrency: concurrency,
		logger:      slog.Default(),
	}
}

type improvementTask struct {
	pending ProgressEvent
	run     func(ctx context.Context) (ProgressEvent, error)
}

func (s *improvementService) ImproveResume(ctx context.Context, r resume.Resume, emit func(ProgressEvent) error) error {
	logger := contextutil.LoggerFromContextOr(ctx, s.logger)

	if len(r.Experience) == 0 && len(r.Projects) == 0 {
		logger.WarnContext(ctx, "improvement requested for a résumé without experience or projects")
		return &ValidationError{
			Field:   "resume",
			Message: "must have at least one experience or project entry",
		}
	}

	tasks := s.tasks(r)

	var mu sync.Mutex
	send := func(ev ProgressEvent) error {
		mu.Lock()
		defer mu.Unlock()
		return emit(ev)
	}

	for _, task := range tasks {
		if err := send(task.pending); err != nil {
			return WrapError(err, "failed to emit progress")
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, task := range tasks {
		task := task
		g.Go(func() error {
			processing := task.pending
			processing.Status = StatusProcessing
			if err := send(processing); err != nil {
				return err
			}

			done, err := task.run(gctx)
			if err != nil {
				logger.WarnContext(ctx, "improvement task failed",
					slog.String("type", string(task.pending.Type)),
					slog.String("id", task.pending.ID),
					slog.Any("error", err))
				failed := task.pending
				failed.Status = StatusError
				failed.Error = err.Error()
				return send(failed)
			}
			return send(done)
		})
	}
	if err := g.Wait(); err != nil {
		return WrapError(err, "failed to emit progress")
	}

	logger.InfoContext(ctx, "résumé improvement finished",
		slog.Int("experience", len(r.Experience)),
		slog.Int("projects", len(r.Projects)),
		slog.Int("tasks", len(tasks)))
	return nil
}

func (s *improvementService) tasks(r resume.Resume) []improvementTask {
	tasks := make([]improvementTask, 0, len(r.Experience)+len(r.Projects)+1)
	for _, e := range r.Experience {
		e := e.Clone()
		pending := ProgressEvent{Type: EventExperience, ID: e.ID, Status: StatusPending, Title: e.Title, Company: e.Company}
		tasks = append(tasks, improvementTask{
			pending: pending,
			run: func(ctx context.Context) (ProgressEvent, error) {
				bullets, err := s.improveBullets(ctx, experiencePrompt(e), len(e.Bullets))
				if err != nil {
					return ProgressEvent{}, err
				}
				ev := pending
				ev.Status = StatusCompleted
				ev.Bullets = bullets
				return ev, nil
			},
		})
	}
	for _, p := range r.Projects {
		p := p.Clone()
		pending := ProgressEvent{Type: EventProject, ID: p.ID, Status: StatusPending, Name: p.Name}
		tasks = append(tasks, improvementTask{
			pending: pending,
			run: func(ctx context.Context) (ProgressEvent, error) {
				bullets, err := s.improveBullets(ctx, projectPrompt(p), len(p.Bullets))
				if err != nil {
					return ProgressEvent{}, err
				}
				ev := pending
				ev.Status = StatusCompleted
				ev.Bullets = bullets
				return ev, nil
			},
		})
	}
	if len(r.Skills) > 0 {
		skills := r.Skills.Clone()
		pending := ProgressEvent{Type: EventSkills, Status: StatusPending}
		tasks = append(tasks, improvementTask{
			pending: pending,
			run: func(ctx context.Context) (ProgressEvent, error) {
				var reply struct {
					Original resume.Skills `json:"original"`
					Improved resume.Skills `json:"improved"`
					Reason   string        `json:"reason"`
				}
				if err := askJSON(ctx, s.llmClient, improvementGuidelines, skillsPrompt(skills), &reply); err != nil {
					return ProgressEvent{}, err
				}
				if len(reply.Improved) == 0 {
					return ProgressEvent{}, fmt.Errorf("model returned no skill categories")
				}
				ev := pending
				ev.Status = StatusCompleted
				ev.Original = skills
				ev.Improved = reply.Improved
				ev.Reason = reply.Reason
				return ev, nil
			},
		})
	}
	return tasks
}

// improveBullets asks for one rewrite per bullet. A reply with a different
// count is rejected so applying it can never drop or invent bullets.
func (s *improvementService) improveBullets(ctx context.Context, prompt string, want int) ([]resume.BulletImprovement, error) {
	var reply struct {
		Bullets []resume.BulletImprovement `json:"bullets"`
	}
	if err := askJSON(ctx, s.llmClient, improvementGuidelines, prompt, &reply); err != nil {
		return nil, err
	}
	if len(reply.Bullets) != want {
		return nil, fmt.Errorf("model returned %d bullets, want %d", len(reply.Bullets), want)
	}
	return reply.Bullets, nil
}
