package forum

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"forum/internal/config"
	"forum/internal/domain"
	models "forum/internal/domain/models/forum"
	forumRepo "forum/internal/domain/repositories/forum"
	forumSvc "forum/internal/domain/services/forum"
	"forum/internal/service/formatting"
)

// CuriositySlot is the slot the texts are stored under.
const CuriositySlot = "curiosityTexts"

// DefaultCuriosities are restored whenever the slot is empty or unreadable.
var DefaultCuriosities = []string{
	"🤖 **Você sabia?** A primeira IA conversacional foi criada em 1966 e se chamava ELIZA!",
	"🧠 **Curiosidade:** O cérebro humano processa informações a cerca de 20 watts - menos que uma lâmpada!",
	"⚡ **Fato interessante:** GPT-3 tem 175 bilhões de parâmetros, mas ainda não consegue *realmente* entender como você!",
}

const (
	msgCuriosityRequired = "O texto da curiosidade não pode estar vazio"
	msgCuriosityTooLong  = "O texto deve ter no máximo 200 caracteres"
	msgKeepOneCuriosity  = "É necessário manter pelo menos uma curiosidade"
)

// curiosityService implements the CuriosityService interface
type curiosityService struct {
	store  forumRepo.SlotStore
	now    func() time.Time
	logger *slog.Logger

	// Serializes read-modify-write of the slot
	mu sync.Mutex
}

// NewCuriosityService creates a new curiosity service
func NewCuriosityService(store forumRepo.SlotStore, logger *slog.Logger) forumSvc.CuriosityService {
	return &curiosityService{
		store:  store,
		now:    time.Now,
		logger: logger,
	}
}

func (s *curiosityService) List(ctx context.Context) ([]models.RenderedCuriosity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	texts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	rendered := make([]models.RenderedCuriosity, len(texts))
	for i, c := range texts {
		rendered[i] = render(c)
	}
	return rendered, nil
}

func (s *curiosityService) Get(ctx context.Context, id string) (*models.RenderedCuriosity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	texts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	i := indexOf(texts, id)
	if i < 0 {
		return nil, &domain.NotFoundError{ResourceType: "curiosity", ResourceID: id}
	}
	r := render(texts[i])
	return &r, nil
}

// Next returns the text after afterID in stored order, wrapping around
func (s *curiosityService) Next(ctx context.Context, afterID string) (*models.RenderedCuriosity, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	texts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	next := 0
	if i := indexOf(texts, afterID); i >= 0 {
		next = (i + 1) % len(texts)
	}
	r := render(texts[next])
	return &r, nil
}

func (s *curiosityService) Add(ctx context.Context, req *forumSvc.CuriosityRequest) (*models.RenderedCuriosity, error) {
	content, err := validateCuriosity(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	texts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	c := models.Curiosity{ID: generateID(now), Content: content, CreatedAt: now}
	texts = append(texts, c)

	if err := s.save(ctx, texts); err != nil {
		return nil, err
	}

	s.logger.Info("curiosity added", "id", c.ID, "count", len(texts))

	r := render(c)
	return &r, nil
}

func (s *curiosityService) Update(ctx context.Context, id string, req *forumSvc.CuriosityRequest) (*models.RenderedCuriosity, error) {
	content, err := validateCuriosity(req)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	texts, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	i := indexOf(texts, id)
	if i < 0 {
		return nil, &domain.NotFoundError{ResourceType: "curiosity", ResourceID: id}
	}
	texts[i].Content = content

	if err := s.save(ctx, texts); err != nil {
		return nil, err
	}

	s.logger.Info("curiosity updated", "id", id)

	r := render(texts[i])
	return &r, nil
}

// Delete removes a text. The help button always needs something to show,
// so the last one stays.
func (s *curiosityService) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	texts, err := s.load(ctx)
	if err != nil {
		return err
	}

	i := indexOf(texts, id)
	if i < 0 {
		return &domain.NotFoundError{ResourceType: "curiosity", ResourceID: id}
	}
	if len(texts) == 1 {
		return domain.NewValidationError(msgKeepOneCuriosity)
	}

	texts = append(texts[:i], texts[i+1:]...)
	if err := s.save(ctx, texts); err != nil {
		return err
	}

	s.logger.Info("curiosity deleted", "id", id, "count", len(texts))
	return nil
}

func (s *curiosityService) Preview(req *forumSvc.CuriosityRequest) (string, error) {
	content, err := validateCuriosity(req)
	if err != nil {
		return "", err
	}
	return formatting.Render(content), nil
}

// load reads the slot, restoring the defaults when it is empty or corrupt.
// Callers hold s.mu.
func (s *curiosityService) load(ctx context.Context) ([]models.Curiosity, error) {
	data, ok, err := s.store.Load(ctx, CuriositySlot)
	if err != nil {
		return nil, fmt.Errorf("load curiosities: %w", err)
	}

	var texts []models.Curiosity
	if ok {
		if err := json.Unmarshal(data, &texts); err != nil {
			s.logger.Warn("stored curiosities unreadable, restoring defaults", "error", err)
			texts = nil
		}
	}
	if len(texts) > 0 {
		return texts, nil
	}

	texts = s.defaults()
	if err := s.save(ctx, texts); err != nil {
		return nil, err
	}
	s.logger.Info("curiosity defaults seeded", "count", len(texts))
	return texts, nil
}

func (s *curiosityService) save(ctx context.Context, texts []models.Curiosity) error {
	data, err := json.Marshal(texts)
	if err != nil {
		return fmt.Errorf("encode curiosities: %w", err)
	}
	if err := s.store.Save(ctx, CuriositySlot, data); err != nil {
		return fmt.Errorf("save curiosities: %w", err)
	}
	return nil
}

func (s *curiosityService) defaults() []models.Curiosity {
	now := s.now()
	texts := make([]models.Curiosity, len(DefaultCuriosities))
	for i, content := range DefaultCuriosities {
		texts[i] = models.Curiosity{ID: strconv.Itoa(i + 1), Content: content, CreatedAt: now}
	}
	return texts
}

// validateCuriosity returns the trimmed content or a ValidationError with a
// message for the admin panel.
func validateCuriosity(req *forumSvc.CuriosityRequest) (string, error) {
	content := strings.TrimSpace(req.Content)
	err := validation.Validate(content,
		validation.Required.Error(msgCuriosityRequired),
		validation.RuneLength(1, config.MaxCuriosityLength).Error(msgCuriosityTooLong),
	)
	if err != nil {
		return "", domain.NewValidationError(err.Error())
	}
	return content, nil
}

// generateID is a base-36 millisecond timestamp plus a random suffix, so ids
// sort roughly by creation time.
func generateID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 36) + uuid.NewString()[:8]
}

func indexOf(texts []models.Curiosity, id string) int {
	if id == "" {
		return -1
	}
	for i, c := range texts {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func render(c models.Curiosity) models.RenderedCuriosity {
	return models.RenderedCuriosity{Curiosity: c, HTML: formatting.Render(c.Content)}
}
