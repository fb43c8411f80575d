package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/zone_presence_engine/internal/config"
	"github.com/shenikar/zone_presence_engine/internal/dedup"
	"github.com/shenikar/zone_presence_engine/internal/geo"
	"github.com/shenikar/zone_presence_engine/internal/metrics"
	"github.com/shenikar/zone_presence_engine/internal/models"
	"github.com/shenikar/zone_presence_engine/internal/notify"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidSample - наблюдение с отсутствующими или недопустимыми координатами
	ErrInvalidSample = errors.New("invalid location sample")
	// ErrCatalogUnavailable - каталог зон недоступен, оценка прохода невозможна
	ErrCatalogUnavailable = errors.New("zone catalog unavailable")
)

// ZoneRepository определяет контракт для чтения каталога зон пользователя
type ZoneRepository interface {
	GetZonesForUser(ctx context.Context, userID string) ([]*models.ZoneDefinition, error)
	InvalidateZoneCache(ctx context.Context, userID string) error
}

// PresenceRepository определяет контракт для долговременного состояния присутствия
type PresenceRepository interface {
	Load(ctx context.Context, userID string) (*models.PresenceState, error)
	Save(ctx context.Context, state *models.PresenceState) error
	Clear(ctx context.Context, userID string) error
}

// FriendRepository определяет контракт для чтения дружеских связей с общими зонами
type FriendRepository interface {
	GetSharedZoneFriends(ctx context.Context, userID string, zoneID uuid.UUID) ([]*models.FriendLink, error)
}

// RegionMonitor определяет контракт для управления активным набором регионов,
// который устройство зеркалирует в платформенный мониторинг
type RegionMonitor interface {
	RegisterRegions(ctx context.Context, userID string, zones []*models.ZoneDefinition) error
	DeregisterAll(ctx context.Context, userID string) error
	ActiveRegions(ctx context.Context, userID string) ([]uuid.UUID, error)
}

// EvaluationResult - итог одного прохода оценки присутствия
type EvaluationResult struct {
	State      *models.PresenceState
	Arrivals   []models.TransitionEvent
	Departures []models.TransitionEvent
}

// PresenceService определяет контракт движка присутствия
type PresenceService interface {
	ProcessSample(ctx context.Context, userID string, sample models.LocationSample) (*EvaluationResult, error)
	GetPresence(ctx context.Context, userID string) (*models.PresenceState, error)
	MonitoredRegions(ctx context.Context, userID string) ([]*models.ZoneDefinition, error)
	RefreshMonitoredZones(ctx context.Context, userID string) ([]*models.ZoneDefinition, error)
	StopMonitoring(ctx context.Context, userID string) error
	SignOut(ctx context.Context, userID string) error
}

type lastLocation struct {
	lat, lon float64
}

type presenceService struct {
	zoneRepo     ZoneRepository
	presenceRepo PresenceRepository
	friendRepo   FriendRepository
	regions      RegionMonitor
	publisher    notify.IntentPublisher
	dedupCache   dedup.Cache
	logger       *logrus.Logger
	cfg          *config.Config
	metrics      *metrics.Metrics

	// userLocks хранит по мьютексу на пользователя: полный проход
	// evaluate-diff-persist-fanout - критическая секция, чтобы медленный
	// проход не перезаписал результат более свежего устаревшими данными.
	// Между разными пользователями ограничений нет.
	userLocks sync.Map

	// lastKnown - последняя принятая координата пользователя, используется
	// только для выбора активного набора регионов. Не персистентна.
	lastKnown sync.Map
}

// NewPresenceService создает движок присутствия
func NewPresenceService(
	zoneRepo ZoneRepository,
	presenceRepo PresenceRepository,
	friendRepo FriendRepository,
	regions RegionMonitor,
	publisher notify.IntentPublisher,
	dedupCache dedup.Cache,
	logger *logrus.Logger,
	cfg *config.Config,
	m *metrics.Metrics,
) PresenceService {
	return &presenceService{
		zoneRepo:     zoneRepo,
		presenceRepo: presenceRepo,
		friendRepo:   friendRepo,
		regions:      regions,
		publisher:    publisher,
		dedupCache:   dedupCache,
		logger:       logger,
		cfg:          cfg,
		metrics:      m,
	}
}

func (s *presenceService) lockFor(userID string) *sync.Mutex {
	mu, _ := s.userLocks.LoadOrStore(userID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// ProcessSample выполняет полный проход оценки присутствия для одного наблюдения.
// Все три источника (polled-фикс, вход в регион, выход из региона) нормализуются
// к одинаковой оценке против полного каталога зон: одно физическое перемещение
// может пересечь несколько границ сразу, а точность callback-а региона не выше
// точности одновременно доступного фикса.
func (s *presenceService) ProcessSample(ctx context.Context, userID string, sample models.LocationSample) (*EvaluationResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "presence",
		"method":  "ProcessSample",
		"user_id": userID,
		"source":  sample.Source,
	})

	if !geo.ValidCoordinates(sample.Latitude, sample.Longitude) {
		log.WithFields(logrus.Fields{
			"latitude":  sample.Latitude,
			"longitude": sample.Longitude,
		}).Warn("Rejecting sample with invalid coordinates")
		s.metrics.IncSamples(string(sample.Source), metrics.SampleStatusRejected)
		return nil, ErrInvalidSample
	}

	if sample.AccuracyMeters != nil && *sample.AccuracyMeters > s.cfg.DegradedAccuracyMeters {
		// Сознательный компромисс: радиусы зон достаточно велики, чтобы пережить
		// типичную ошибку GPS, поэтому деградировавший фикс все равно оценивается
		log.WithField("accuracy_meters", *sample.AccuracyMeters).Warn("Sample accuracy is degraded, evaluating anyway")
		s.metrics.IncSamples(string(sample.Source), metrics.SampleStatusDegraded)
	}

	if sample.CapturedAt.IsZero() {
		sample.CapturedAt = time.Now().UTC()
	}

	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	start := time.Now()

	zones, err := s.loadCatalog(ctx, userID, log)
	if err != nil {
		s.metrics.IncSamples(string(sample.Source), metrics.SampleStatusFailed)
		return nil, err
	}

	prior, err := s.presenceRepo.Load(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to load presence state")
		s.metrics.IncSamples(string(sample.Source), metrics.SampleStatusFailed)
		return nil, fmt.Errorf("service: could not load presence state: %w", err)
	}
	if prior == nil {
		prior = &models.PresenceState{UserID: userID}
	}

	next := EvaluateMembership(sample, zones, prior, s.cfg.EntryBufferMeters, s.cfg.ExitBufferMeters)
	arrivals, departures := DiffZones(prior.CurrentZones, next)

	newState := &models.PresenceState{
		UserID:       userID,
		CurrentZones: next,
		EvaluatedAt:  sample.CapturedAt,
		Initialized:  true,
	}

	// Запись состояния целиком обязана завершиться до fan-out: уведомлять на основе
	// состояния, которое не переживет рестарт, нельзя
	if err := s.presenceRepo.Save(ctx, newState); err != nil {
		log.WithError(err).Error("Failed to persist presence state, fan-out blocked")
		s.metrics.IncSamples(string(sample.Source), metrics.SampleStatusFailed)
		return nil, fmt.Errorf("service: could not persist presence state: %w", err)
	}

	s.lastKnown.Store(userID, lastLocation{lat: sample.Latitude, lon: sample.Longitude})
	s.metrics.IncTransitions(string(models.DirectionArrival), len(arrivals))
	s.metrics.IncTransitions(string(models.DirectionDeparture), len(departures))

	result := &EvaluationResult{
		State:      newState,
		Arrivals:   transitionEvents(arrivals, models.DirectionArrival, sample.CapturedAt),
		Departures: transitionEvents(departures, models.DirectionDeparture, sample.CapturedAt),
	}

	// Занятые зоны закреплены в активном наборе, поэтому любой переход
	// может изменить выбор регионов для мониторинга
	if len(arrivals) > 0 || len(departures) > 0 {
		if err := s.registerActiveZones(ctx, userID, zones, sample.Latitude, sample.Longitude, next); err != nil {
			log.WithError(err).Warn("Failed to rebuild active region set")
		}
	}

	if prior.Initialized {
		s.fanOutArrivals(ctx, userID, result.Arrivals, zones, log)
	} else if len(arrivals) > 0 {
		// Холодный старт: состояние засеяно, но уведомления о "прибытии" подавлены -
		// пользователь на самом деле не перемещался
		log.WithField("seeded_zones", len(next)).Info("First evaluation after start, arrival notifications suppressed")
	}

	s.metrics.ObserveEvaluation(time.Since(start).Seconds())
	s.metrics.IncSamples(string(sample.Source), metrics.SampleStatusProcessed)

	log.WithFields(logrus.Fields{
		"zones_evaluated": len(zones),
		"current_zones":   len(next),
		"arrivals":        len(arrivals),
		"departures":      len(departures),
	}).Info("Evaluation pass completed")
	return result, nil
}

// loadCatalog читает каталог зон с ограниченным числом повторов и короткой задержкой
func (s *presenceService) loadCatalog(ctx context.Context, userID string, log *logrus.Entry) ([]*models.ZoneDefinition, error) {
	attempts := s.cfg.CatalogRetryCount
	if attempts < 1 {
		attempts = 1
	}
	delay := s.cfg.CatalogRetryBaseDelay

	var lastErr error
	for i := 0; i < attempts; i++ {
		zones, err := s.zoneRepo.GetZonesForUser(ctx, userID)
		if err == nil {
			return zones, nil
		}
		lastErr = err
		log.WithError(err).Warnf("Failed to load zone catalog. Retries left: %d", attempts-1-i)
		if i < attempts-1 {
			time.Sleep(delay)
			delay *= 2 // Экспоненциальная задержка
		}
	}
	return nil, fmt.Errorf("%w after %d attempts: %v", ErrCatalogUnavailable, attempts, lastErr)
}

// fanOutArrivals рассылает уведомления по каждому событию прибытия.
// Рассылка best-effort: сбой на одном друге не прерывает обработку остальных.
func (s *presenceService) fanOutArrivals(ctx context.Context, actorID string, arrivals []models.TransitionEvent, zones []*models.ZoneDefinition, log *logrus.Entry) {
	if len(arrivals) == 0 {
		return
	}

	zoneNames := make(map[uuid.UUID]string, len(zones))
	for _, zone := range zones {
		zoneNames[zone.ID] = zone.Name
	}

	for _, event := range arrivals {
		friends, err := s.friendRepo.GetSharedZoneFriends(ctx, actorID, event.ZoneID)
		if err != nil {
			log.WithError(err).WithField("zone_id", event.ZoneID).Warn("Failed to resolve shared-zone friends, skipping zone fan-out")
			continue
		}

		presentCount := 0
		for _, friend := range friends {
			if !friend.SharesZone(event.ZoneID) {
				continue
			}
			// Взаимное присутствие: друг должен сам находиться в зоне,
			// иначе он лишь делит ее определение, но физически в другом месте
			if !friend.Presence.Contains(event.ZoneID) {
				continue
			}
			presentCount++

			s.emitIntent(ctx, models.NotificationIntent{
				RecipientID: friend.FriendID,
				ActorID:     actorID,
				ZoneID:      event.ZoneID,
				DedupKey:    models.DedupKeyFor(friend.FriendID, actorID, event.ZoneID),
				Message:     fmt.Sprintf("%s is now in %s", actorID, zoneNames[event.ZoneID]),
				TTL:         s.cfg.NotificationTTL,
				CreatedAt:   time.Now().UTC(),
			}, log)
		}

		// Локальное "приветственное" уведомление прибывшему: сколько друзей уже в зоне.
		// Не фильтруется по присутствию получателя - он в зоне по определению.
		if presentCount > 0 {
			s.emitIntent(ctx, models.NotificationIntent{
				RecipientID: actorID,
				ActorID:     actorID,
				ZoneID:      event.ZoneID,
				DedupKey:    models.DedupKeyFor(actorID, actorID, event.ZoneID),
				Message:     fmt.Sprintf("%d of your friends are already in %s", presentCount, zoneNames[event.ZoneID]),
				TTL:         s.cfg.NotificationTTL,
				CreatedAt:   time.Now().UTC(),
			}, log)
		}
	}
}

// emitIntent проверяет намерение против кэша дедупликации и публикует его в очередь
func (s *presenceService) emitIntent(ctx context.Context, intent models.NotificationIntent, log *logrus.Entry) {
	suppress, err := s.dedupCache.ShouldSuppress(ctx, intent.DedupKey)
	if err != nil {
		// Пропущенное уведомление допустимо, дублированное - нет,
		// поэтому при сбое кэша намерение не отправляется
		log.WithError(err).WithField("dedup_key", intent.DedupKey).Warn("Dedup check failed, intent dropped")
		s.metrics.IncIntents(metrics.IntentSuppressed)
		return
	}
	if suppress {
		log.WithField("dedup_key", intent.DedupKey).Debug("Intent suppressed by dedup window")
		s.metrics.IncIntents(metrics.IntentSuppressed)
		return
	}

	if err := s.publisher.Publish(ctx, intent); err != nil {
		log.WithError(err).WithField("dedup_key", intent.DedupKey).Error("Failed to publish notification intent")
		s.metrics.IncIntents(metrics.IntentPublishFailed)
		return
	}
	s.metrics.IncIntents(metrics.IntentEmitted)
}

// registerActiveZones пересобирает активный набор регионов для устройства
func (s *presenceService) registerActiveZones(ctx context.Context, userID string, zones []*models.ZoneDefinition, lat, lon float64, occupied []uuid.UUID) error {
	active := SelectActiveZones(zones, lat, lon, occupied, s.cfg.MaxRegions)

	if err := s.regions.DeregisterAll(ctx, userID); err != nil {
		return fmt.Errorf("service: could not deregister regions: %w", err)
	}
	if err := s.regions.RegisterRegions(ctx, userID, active); err != nil {
		return fmt.Errorf("service: could not register regions: %w", err)
	}
	return nil
}

// GetPresence возвращает текущее состояние присутствия пользователя
func (s *presenceService) GetPresence(ctx context.Context, userID string) (*models.PresenceState, error) {
	state, err := s.presenceRepo.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load presence state: %w", err)
	}
	if state == nil {
		state = &models.PresenceState{UserID: userID, CurrentZones: []uuid.UUID{}}
	}
	return state, nil
}

// MonitoredRegions возвращает активный набор зон, который устройство должно
// зарегистрировать в платформенном мониторинге регионов
func (s *presenceService) MonitoredRegions(ctx context.Context, userID string) ([]*models.ZoneDefinition, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "presence",
		"method":  "MonitoredRegions",
		"user_id": userID,
	})

	// Пересборка набора (deregister + register) не должна чередоваться
	// с пересборкой из прохода оценки того же пользователя
	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	zones, err := s.loadCatalog(ctx, userID, log)
	if err != nil {
		return nil, err
	}

	activeIDs, err := s.regions.ActiveRegions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not read active regions: %w", err)
	}
	if len(activeIDs) == 0 {
		// Набор еще не строился - выбираем и регистрируем сейчас
		return s.rebuildActiveZones(ctx, userID, zones)
	}

	activeSet := make(map[uuid.UUID]struct{}, len(activeIDs))
	for _, id := range activeIDs {
		activeSet[id] = struct{}{}
	}
	active := make([]*models.ZoneDefinition, 0, len(activeIDs))
	for _, zone := range zones {
		if _, ok := activeSet[zone.ID]; ok {
			active = append(active, zone)
		}
	}
	return active, nil
}

// RefreshMonitoredZones обрабатывает изменение каталога (зона создана/вступил/покинул):
// сбрасывает кэш каталога, подрезает состояние присутствия до актуального каталога
// и пересобирает активный набор регионов
func (s *presenceService) RefreshMonitoredZones(ctx context.Context, userID string) ([]*models.ZoneDefinition, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "presence",
		"method":  "RefreshMonitoredZones",
		"user_id": userID,
	})
	log.Info("Zone catalog changed, rebuilding active region set")

	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	if err := s.zoneRepo.InvalidateZoneCache(ctx, userID); err != nil {
		log.WithError(err).Warn("Failed to invalidate zone catalog cache")
	}

	zones, err := s.loadCatalog(ctx, userID, log)
	if err != nil {
		return nil, err
	}

	// Инвариант: currentZones - подмножество актуального каталога
	state, err := s.presenceRepo.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load presence state: %w", err)
	}
	if state != nil {
		catalogSet := make(map[uuid.UUID]struct{}, len(zones))
		for _, zone := range zones {
			catalogSet[zone.ID] = struct{}{}
		}
		pruned := make([]uuid.UUID, 0, len(state.CurrentZones))
		for _, id := range state.CurrentZones {
			if _, ok := catalogSet[id]; ok {
				pruned = append(pruned, id)
			}
		}
		if len(pruned) != len(state.CurrentZones) {
			state.CurrentZones = pruned
			if err := s.presenceRepo.Save(ctx, state); err != nil {
				return nil, fmt.Errorf("service: could not persist pruned presence state: %w", err)
			}
		}
	}

	return s.rebuildActiveZones(ctx, userID, zones)
}

// rebuildActiveZones выбирает активный набор и регистрирует его.
// Без известной последней координаты выбор вырождается в порядок каталога.
func (s *presenceService) rebuildActiveZones(ctx context.Context, userID string, zones []*models.ZoneDefinition) ([]*models.ZoneDefinition, error) {
	// Без состояния присутствия закрепление занятых зон невозможно,
	// поэтому при сбое чтения пересборка не выполняется
	state, err := s.presenceRepo.Load(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: could not load presence state: %w", err)
	}
	var occupied []uuid.UUID
	if state != nil {
		occupied = state.CurrentZones
	}

	var active []*models.ZoneDefinition
	if loc, ok := s.lastKnown.Load(userID); ok {
		known := loc.(lastLocation)
		active = SelectActiveZones(zones, known.lat, known.lon, occupied, s.cfg.MaxRegions)
	} else if len(zones) > s.cfg.MaxRegions && s.cfg.MaxRegions > 0 {
		active = zones[:s.cfg.MaxRegions]
	} else {
		active = zones
	}

	if err := s.regions.DeregisterAll(ctx, userID); err != nil {
		return nil, fmt.Errorf("service: could not deregister regions: %w", err)
	}
	if err := s.regions.RegisterRegions(ctx, userID, active); err != nil {
		return nil, fmt.Errorf("service: could not register regions: %w", err)
	}
	return active, nil
}

// StopMonitoring снимает регистрацию регионов, не трогая состояние присутствия.
// Очистка состояния - отдельная явная операция SignOut.
func (s *presenceService) StopMonitoring(ctx context.Context, userID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "presence",
		"method":  "StopMonitoring",
		"user_id": userID,
	})

	if err := s.regions.DeregisterAll(ctx, userID); err != nil {
		log.WithError(err).Error("Failed to deregister regions")
		return fmt.Errorf("service: could not deregister regions: %w", err)
	}
	log.Info("Monitoring stopped")
	return nil
}

// SignOut снимает мониторинг и очищает долговременное состояние присутствия
func (s *presenceService) SignOut(ctx context.Context, userID string) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "presence",
		"method":  "SignOut",
		"user_id": userID,
	})

	mu := s.lockFor(userID)
	mu.Lock()
	defer mu.Unlock()

	if err := s.regions.DeregisterAll(ctx, userID); err != nil {
		log.WithError(err).Error("Failed to deregister regions")
		return fmt.Errorf("service: could not deregister regions: %w", err)
	}
	if err := s.presenceRepo.Clear(ctx, userID); err != nil {
		log.WithError(err).Error("Failed to clear presence state")
		return fmt.Errorf("service: could not clear presence state: %w", err)
	}
	s.lastKnown.Delete(userID)

	log.Info("User signed out, presence state cleared")
	return nil
}

func transitionEvents(ids []uuid.UUID, direction models.TransitionDirection, observedAt time.Time) []models.TransitionEvent {
	events := make([]models.TransitionEvent, 0, len(ids))
	for _, id := range ids {
		events = append(events, models.TransitionEvent{
			ZoneID:     id,
			Direction:  direction,
			ObservedAt: observedAt,
		})
	}
	return events
}
