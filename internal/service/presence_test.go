package service

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/zone_presence_engine/internal/config"
	dedup_mocks "github.com/shenikar/zone_presence_engine/internal/dedup/mocks"
	"github.com/shenikar/zone_presence_engine/internal/metrics"
	"github.com/shenikar/zone_presence_engine/internal/models"
	notify_mocks "github.com/shenikar/zone_presence_engine/internal/notify/mocks"
	"github.com/shenikar/zone_presence_engine/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type presenceMocks struct {
	zoneRepo     *mocks.MockZoneRepository
	presenceRepo *mocks.MockPresenceRepository
	friendRepo   *mocks.MockFriendRepository
	regions      *mocks.MockRegionMonitor
	publisher    *notify_mocks.MockIntentPublisher
	dedupCache   *dedup_mocks.MockCache
}

// newTestPresenceService - вспомогательная функция для создания инстанса сервиса с моками.
func newTestPresenceService(t *testing.T) (*presenceService, *presenceMocks) {
	ctrl := gomock.NewController(t)
	m := &presenceMocks{
		zoneRepo:     mocks.NewMockZoneRepository(ctrl),
		presenceRepo: mocks.NewMockPresenceRepository(ctrl),
		friendRepo:   mocks.NewMockFriendRepository(ctrl),
		regions:      mocks.NewMockRegionMonitor(ctrl),
		publisher:    notify_mocks.NewMockIntentPublisher(ctrl),
		dedupCache:   dedup_mocks.NewMockCache(ctrl),
	}

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		EntryBufferMeters:      0,
		ExitBufferMeters:       50,
		MaxRegions:             20,
		DegradedAccuracyMeters: 200,
		CatalogRetryCount:      1, // Без повторов, чтобы тесты не спали
		CatalogRetryBaseDelay:  time.Millisecond,
		DedupWindow:            60 * time.Second,
		NotificationTTL:        60 * time.Second,
	}

	service := NewPresenceService(
		m.zoneRepo, m.presenceRepo, m.friendRepo, m.regions,
		m.publisher, m.dedupCache, logger, cfg, metrics.NewMetrics(),
	)
	return service.(*presenceService), m
}

func TestProcessSample_InvalidCoordinates(t *testing.T) {
	// Подготовка
	service, _ := newTestPresenceService(t)
	ctx := context.Background()

	// Действие: широта вне диапазона, до репозиториев дело не доходит
	result, err := service.ProcessSample(ctx, "user-1", models.LocationSample{
		Latitude:  100,
		Longitude: -71.06,
		Source:    models.SourcePolledFix,
	})

	// Проверки
	require.ErrorIs(t, err, ErrInvalidSample)
	assert.Nil(t, result)
}

func TestProcessSample_ColdStart_SeedsStateWithoutNotifications(t *testing.T) {
	// Подготовка: первая оценка после старта - пользователь уже стоит внутри двух зон
	service, m := newTestPresenceService(t)
	ctx := context.Background()
	zoneA := testZone("Cafe", 42.36, -71.06, 300)
	zoneB := testZone("Block", 42.36, -71.06, 500)
	zones := []*models.ZoneDefinition{zoneA, zoneB}

	// Ожидания
	m.zoneRepo.EXPECT().
		GetZonesForUser(ctx, "user-1").
		Return(zones, nil).
		Times(1)
	m.presenceRepo.EXPECT().
		Load(ctx, "user-1").
		Return(nil, nil).
		Times(1)
	m.presenceRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, state *models.PresenceState) error {
			assert.Equal(t, "user-1", state.UserID)
			assert.Equal(t, []uuid.UUID{zoneA.ID, zoneB.ID}, state.CurrentZones)
			assert.True(t, state.Initialized)
			return nil
		}).
		Times(1)
	m.regions.EXPECT().DeregisterAll(ctx, "user-1").Return(nil).Times(1)
	m.regions.EXPECT().RegisterRegions(ctx, "user-1", gomock.Any()).Return(nil).Times(1)
	// Холодный старт: ни поиска друзей, ни публикаций
	m.friendRepo.EXPECT().GetSharedZoneFriends(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.ProcessSample(ctx, "user-1", models.LocationSample{
		Latitude:  42.36,
		Longitude: -71.06,
		Source:    models.SourcePolledFix,
	})

	// Проверки: состояние засеяно, прибытия видны в результате, но рассылки не было
	require.NoError(t, err)
	assert.Len(t, result.Arrivals, 2)
	assert.Empty(t, result.Departures)
	assert.True(t, result.State.Initialized)
}

func TestProcessSample_Arrival_NotifiesPresentFriend(t *testing.T) {
	// Подготовка: пользователь A входит в зону, друг F уже находится в ней
	service, m := newTestPresenceService(t)
	ctx := context.Background()
	zone := testZone("Cafe", 42.36, -71.06, 300)
	zones := []*models.ZoneDefinition{zone}

	friend := &models.FriendLink{
		UserID:      "user-a",
		FriendID:    "user-f",
		SharedZones: []uuid.UUID{zone.ID},
		Presence: &models.PresenceState{
			UserID:       "user-f",
			CurrentZones: []uuid.UUID{zone.ID},
			Initialized:  true,
		},
	}

	// Ожидания
	m.zoneRepo.EXPECT().GetZonesForUser(ctx, "user-a").Return(zones, nil).Times(1)
	m.presenceRepo.EXPECT().
		Load(ctx, "user-a").
		Return(&models.PresenceState{UserID: "user-a", Initialized: true}, nil).
		Times(1)
	m.presenceRepo.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(1)
	m.regions.EXPECT().DeregisterAll(ctx, "user-a").Return(nil).Times(1)
	m.regions.EXPECT().RegisterRegions(ctx, "user-a", gomock.Any()).Return(nil).Times(1)
	m.friendRepo.EXPECT().
		GetSharedZoneFriends(ctx, "user-a", zone.ID).
		Return([]*models.FriendLink{friend}, nil).
		Times(1)

	// Намерение другу и приветственное намерение прибывшему
	m.dedupCache.EXPECT().
		ShouldSuppress(ctx, models.DedupKeyFor("user-f", "user-a", zone.ID)).
		Return(false, nil).
		Times(1)
	m.dedupCache.EXPECT().
		ShouldSuppress(ctx, models.DedupKeyFor("user-a", "user-a", zone.ID)).
		Return(false, nil).
		Times(1)

	published := make([]models.NotificationIntent, 0, 2)
	m.publisher.EXPECT().
		Publish(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, intent models.NotificationIntent) error {
			published = append(published, intent)
			return nil
		}).
		Times(2)

	// Действие
	result, err := service.ProcessSample(ctx, "user-a", models.LocationSample{
		Latitude:  42.36,
		Longitude: -71.06,
		Source:    models.SourceRegionEnter,
	})

	// Проверки
	require.NoError(t, err)
	require.Len(t, result.Arrivals, 1)
	require.Len(t, published, 2)
	assert.Equal(t, "user-f", published[0].RecipientID)
	assert.Equal(t, "user-a", published[0].ActorID)
	assert.Equal(t, zone.ID, published[0].ZoneID)
	assert.Contains(t, published[0].Message, "Cafe")
	assert.Equal(t, "user-a", published[1].RecipientID)
	assert.Contains(t, published[1].Message, "1 of your friends")
}

func TestProcessSample_Arrival_AbsentFriendNotNotified(t *testing.T) {
	// Подготовка: друг делит зону, но физически находится в другом месте
	service, m := newTestPresenceService(t)
	ctx := context.Background()
	zone := testZone("Cafe", 42.36, -71.06, 300)
	elsewhere := uuid.New()

	friend := &models.FriendLink{
		UserID:      "user-a",
		FriendID:    "user-f",
		SharedZones: []uuid.UUID{zone.ID},
		Presence: &models.PresenceState{
			UserID:       "user-f",
			CurrentZones: []uuid.UUID{elsewhere},
			Initialized:  true,
		},
	}

	// Ожидания
	m.zoneRepo.EXPECT().GetZonesForUser(ctx, "user-a").Return([]*models.ZoneDefinition{zone}, nil).Times(1)
	m.presenceRepo.EXPECT().
		Load(ctx, "user-a").
		Return(&models.PresenceState{UserID: "user-a", Initialized: true}, nil).
		Times(1)
	m.presenceRepo.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(1)
	m.regions.EXPECT().DeregisterAll(ctx, "user-a").Return(nil).Times(1)
	m.regions.EXPECT().RegisterRegions(ctx, "user-a", gomock.Any()).Return(nil).Times(1)
	m.friendRepo.EXPECT().
		GetSharedZoneFriends(ctx, "user-a", zone.ID).
		Return([]*models.FriendLink{friend}, nil).
		Times(1)
	// Взаимного присутствия нет - ни одного намерения
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.ProcessSample(ctx, "user-a", models.LocationSample{
		Latitude:  42.36,
		Longitude: -71.06,
		Source:    models.SourcePolledFix,
	})

	// Проверки
	require.NoError(t, err)
}

func TestProcessSample_DedupSuppressesIntent(t *testing.T) {
	// Подготовка: ключ дедупликации уже встречался внутри окна
	service, m := newTestPresenceService(t)
	ctx := context.Background()
	zone := testZone("Cafe", 42.36, -71.06, 300)

	friend := &models.FriendLink{
		UserID:      "user-a",
		FriendID:    "user-f",
		SharedZones: []uuid.UUID{zone.ID},
		Presence: &models.PresenceState{
			UserID:       "user-f",
			CurrentZones: []uuid.UUID{zone.ID},
			Initialized:  true,
		},
	}

	// Ожидания
	m.zoneRepo.EXPECT().GetZonesForUser(ctx, "user-a").Return([]*models.ZoneDefinition{zone}, nil).Times(1)
	m.presenceRepo.EXPECT().
		Load(ctx, "user-a").
		Return(&models.PresenceState{UserID: "user-a", Initialized: true}, nil).
		Times(1)
	m.presenceRepo.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(1)
	m.regions.EXPECT().DeregisterAll(ctx, "user-a").Return(nil).Times(1)
	m.regions.EXPECT().RegisterRegions(ctx, "user-a", gomock.Any()).Return(nil).Times(1)
	m.friendRepo.EXPECT().
		GetSharedZoneFriends(ctx, "user-a", zone.ID).
		Return([]*models.FriendLink{friend}, nil).
		Times(1)
	m.dedupCache.EXPECT().ShouldSuppress(ctx, gomock.Any()).Return(true, nil).Times(2)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.ProcessSample(ctx, "user-a", models.LocationSample{
		Latitude:  42.36,
		Longitude: -71.06,
		Source:    models.SourcePolledFix,
	})

	// Проверки
	require.NoError(t, err)
}

func TestProcessSample_DedupErrorDropsIntent(t *testing.T) {
	// Подготовка: кэш дедупликации недоступен - намерение не публикуется,
	// пропущенное уведомление допустимо, дублированное нет
	service, m := newTestPresenceService(t)
	ctx := context.Background()
	zone := testZone("Cafe", 42.36, -71.06, 300)

	friend := &models.FriendLink{
		UserID:      "user-a",
		FriendID:    "user-f",
		SharedZones: []uuid.UUID{zone.ID},
		Presence: &models.PresenceState{
			UserID:       "user-f",
			CurrentZones: []uuid.UUID{zone.ID},
			Initialized:  true,
		},
	}

	// Ожидания
	m.zoneRepo.EXPECT().GetZonesForUser(ctx, "user-a").Return([]*models.ZoneDefinition{zone}, nil).Times(1)
	m.presenceRepo.EXPECT().
		Load(ctx, "user-a").
		Return(&models.PresenceState{UserID: "user-a", Initialized: true}, nil).
		Times(1)
	m.presenceRepo.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(1)
	m.regions.EXPECT().DeregisterAll(ctx, "user-a").Return(nil).Times(1)
	m.regions.EXPECT().RegisterRegions(ctx, "user-a", gomock.Any()).Return(nil).Times(1)
	m.friendRepo.EXPECT().
		GetSharedZoneFriends(ctx, "user-a", zone.ID).
		Return([]*models.FriendLink{friend}, nil).
		Times(1)
	m.dedupCache.EXPECT().
		ShouldSuppress(ctx, gomock.Any()).
		Return(false, errors.New("redis: connection refused")).
		Times(2)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := service.ProcessSample(ctx, "user-a", models.LocationSample{
		Latitude:  42.36,
		Longitude: -71.06,
		Source:    models.SourcePolledFix,
	})

	// Проверки: сбой кэша не валит проход оценки
	require.NoError(t, err)
}

func TestProcessSample_PersistFailureBlocksFanOut(t *testing.T) {
	// Подготовка: запись состояния падает - рассылка не должна состояться
	service, m := newTestPresenceService(t)
	ctx := context.Background()
	zone := testZone("Cafe", 42.36, -71.06, 300)

	// Ожидания
	m.zoneRepo.EXPECT().GetZonesForUser(ctx, "user-a").Return([]*models.ZoneDefinition{zone}, nil).Times(1)
	m.presenceRepo.EXPECT().
		Load(ctx, "user-a").
		Return(&models.PresenceState{UserID: "user-a", Initialized: true}, nil).
		Times(1)
	m.presenceRepo.EXPECT().
		Save(ctx, gomock.Any()).
		Return(errors.New("pgx: connection closed")).
		Times(1)
	m.friendRepo.EXPECT().GetSharedZoneFriends(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.ProcessSample(ctx, "user-a", models.LocationSample{
		Latitude:  42.36,
		Longitude: -71.06,
		Source:    models.SourcePolledFix,
	})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, result)
}

func TestProcessSample_CatalogUnavailable(t *testing.T) {
	// Подготовка: каталог зон не читается даже после повторов
	service, m := newTestPresenceService(t)
	ctx := context.Background()

	// Ожидания
	m.zoneRepo.EXPECT().
		GetZonesForUser(ctx, "user-1").
		Return(nil, errors.New("pgx: connection closed")).
		Times(1)
	m.presenceRepo.EXPECT().Load(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.ProcessSample(ctx, "user-1", models.LocationSample{
		Latitude:  42.36,
		Longitude: -71.06,
		Source:    models.SourcePolledFix,
	})

	// Проверки
	require.ErrorIs(t, err, ErrCatalogUnavailable)
	assert.Nil(t, result)
}

func TestProcessSample_HysteresisHoldsState_NoTransitions(t *testing.T) {
	// Подготовка: точка в полосе гистерезиса - состояние не меняется,
	// активный набор регионов не пересобирается
	service, m := newTestPresenceService(t)
	ctx := context.Background()
	home := testZone("Home", 42.36, -71.06, 400)
	lat, lon := pointNorthOf(42.36, -71.06, 430)

	// Ожидания
	m.zoneRepo.EXPECT().GetZonesForUser(ctx, "user-1").Return([]*models.ZoneDefinition{home}, nil).Times(1)
	m.presenceRepo.EXPECT().
		Load(ctx, "user-1").
		Return(&models.PresenceState{
			UserID:       "user-1",
			CurrentZones: []uuid.UUID{home.ID},
			Initialized:  true,
		}, nil).
		Times(1)
	m.presenceRepo.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(1)
	m.regions.EXPECT().DeregisterAll(gomock.Any(), gomock.Any()).Times(0)
	m.regions.EXPECT().RegisterRegions(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.ProcessSample(ctx, "user-1", models.LocationSample{
		Latitude:  lat,
		Longitude: lon,
		Source:    models.SourcePolledFix,
	})

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, result.Arrivals)
	assert.Empty(t, result.Departures)
	assert.Equal(t, []uuid.UUID{home.ID}, result.State.CurrentZones)
}

func TestProcessSample_DepartureWithoutFanOut(t *testing.T) {
	// Подготовка: выход за границу с запасом - событие убытия без уведомлений
	service, m := newTestPresenceService(t)
	ctx := context.Background()
	home := testZone("Home", 42.36, -71.06, 400)
	lat, lon := pointNorthOf(42.36, -71.06, 470)

	// Ожидания
	m.zoneRepo.EXPECT().GetZonesForUser(ctx, "user-1").Return([]*models.ZoneDefinition{home}, nil).Times(1)
	m.presenceRepo.EXPECT().
		Load(ctx, "user-1").
		Return(&models.PresenceState{
			UserID:       "user-1",
			CurrentZones: []uuid.UUID{home.ID},
			Initialized:  true,
		}, nil).
		Times(1)
	m.presenceRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, state *models.PresenceState) error {
			assert.Empty(t, state.CurrentZones)
			return nil
		}).
		Times(1)
	m.regions.EXPECT().DeregisterAll(ctx, "user-1").Return(nil).Times(1)
	m.regions.EXPECT().RegisterRegions(ctx, "user-1", gomock.Any()).Return(nil).Times(1)
	m.friendRepo.EXPECT().GetSharedZoneFriends(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	result, err := service.ProcessSample(ctx, "user-1", models.LocationSample{
		Latitude:  lat,
		Longitude: lon,
		Source:    models.SourceRegionExit,
	})

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, result.Arrivals)
	require.Len(t, result.Departures, 1)
	assert.Equal(t, home.ID, result.Departures[0].ZoneID)
	assert.Equal(t, models.DirectionDeparture, result.Departures[0].Direction)
}

func TestGetPresence_NoState_ReturnsEmpty(t *testing.T) {
	// Подготовка
	service, m := newTestPresenceService(t)
	ctx := context.Background()

	// Ожидания
	m.presenceRepo.EXPECT().Load(ctx, "user-1").Return(nil, nil).Times(1)

	// Действие
	state, err := service.GetPresence(ctx, "user-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "user-1", state.UserID)
	assert.Empty(t, state.CurrentZones)
	assert.False(t, state.Initialized)
}

func TestRefreshMonitoredZones_PrunesRemovedZone(t *testing.T) {
	// Подготовка: зона B удалена из каталога, но осталась в состоянии присутствия
	service, m := newTestPresenceService(t)
	ctx := context.Background()
	zoneA := testZone("Cafe", 42.36, -71.06, 300)
	removed := uuid.New()

	state := &models.PresenceState{
		UserID:       "user-1",
		CurrentZones: []uuid.UUID{zoneA.ID, removed},
		Initialized:  true,
	}

	// Ожидания
	m.zoneRepo.EXPECT().InvalidateZoneCache(ctx, "user-1").Return(nil).Times(1)
	m.zoneRepo.EXPECT().GetZonesForUser(ctx, "user-1").Return([]*models.ZoneDefinition{zoneA}, nil).Times(1)
	m.presenceRepo.EXPECT().Load(ctx, "user-1").Return(state, nil).AnyTimes()
	m.presenceRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, saved *models.PresenceState) error {
			assert.Equal(t, []uuid.UUID{zoneA.ID}, saved.CurrentZones)
			return nil
		}).
		Times(1)
	m.regions.EXPECT().DeregisterAll(ctx, "user-1").Return(nil).Times(1)
	m.regions.EXPECT().RegisterRegions(ctx, "user-1", []*models.ZoneDefinition{zoneA}).Return(nil).Times(1)

	// Действие
	active, err := service.RefreshMonitoredZones(ctx, "user-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []*models.ZoneDefinition{zoneA}, active)
}

func TestMonitoredRegions_FiltersCatalogByActiveSet(t *testing.T) {
	// Подготовка: зарегистрирована только одна из двух зон каталога
	service, m := newTestPresenceService(t)
	ctx := context.Background()
	zoneA := testZone("Cafe", 42.36, -71.06, 300)
	zoneB := testZone("Office", 43.0, -71.06, 200)

	// Ожидания
	m.zoneRepo.EXPECT().
		GetZonesForUser(ctx, "user-1").
		Return([]*models.ZoneDefinition{zoneA, zoneB}, nil).
		Times(1)
	m.regions.EXPECT().ActiveRegions(ctx, "user-1").Return([]uuid.UUID{zoneB.ID}, nil).Times(1)

	// Действие
	active, err := service.MonitoredRegions(ctx, "user-1")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, []*models.ZoneDefinition{zoneB}, active)
}

func TestMonitoredRegions_StateLoadFailureSkipsRebuild(t *testing.T) {
	// Подготовка: активный набор пуст, пересборка требует состояния присутствия
	service, m := newTestPresenceService(t)
	ctx := context.Background()
	zone := testZone("Cafe", 42.36, -71.06, 300)

	// Ожидания: без состояния закрепление занятых зон невозможно,
	// поэтому зарегистрированный набор не трогаем
	m.zoneRepo.EXPECT().
		GetZonesForUser(ctx, "user-1").
		Return([]*models.ZoneDefinition{zone}, nil).
		Times(1)
	m.regions.EXPECT().ActiveRegions(ctx, "user-1").Return(nil, nil).Times(1)
	m.presenceRepo.EXPECT().
		Load(ctx, "user-1").
		Return(nil, errors.New("pgx: connection closed")).
		Times(1)
	m.regions.EXPECT().DeregisterAll(gomock.Any(), gomock.Any()).Times(0)
	m.regions.EXPECT().RegisterRegions(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	active, err := service.MonitoredRegions(ctx, "user-1")

	// Проверки
	require.Error(t, err)
	assert.Nil(t, active)
}

func TestMonitoredRegions_WaitsForUserCriticalSection(t *testing.T) {
	// Подготовка
	service, m := newTestPresenceService(t)
	ctx := context.Background()
	zone := testZone("Cafe", 42.36, -71.06, 300)

	// Ожидания
	m.zoneRepo.EXPECT().
		GetZonesForUser(ctx, "user-1").
		Return([]*models.ZoneDefinition{zone}, nil).
		AnyTimes()
	m.regions.EXPECT().ActiveRegions(ctx, "user-1").Return([]uuid.UUID{zone.ID}, nil).AnyTimes()

	// Действие: критическая секция пользователя занята проходом оценки
	mu := service.lockFor("user-1")
	mu.Lock()

	done := make(chan struct{})
	go func() {
		_, _ = service.MonitoredRegions(ctx, "user-1")
		close(done)
	}()

	// Проверки: чтение набора ждет освобождения секции
	select {
	case <-done:
		t.Fatal("MonitoredRegions completed while the user critical section was held")
	case <-time.After(50 * time.Millisecond):
	}

	mu.Unlock()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("MonitoredRegions did not complete after the critical section was released")
	}
}

func TestStopMonitoring_KeepsPresenceState(t *testing.T) {
	// Подготовка
	service, m := newTestPresenceService(t)
	ctx := context.Background()

	// Ожидания: регистрация снимается, состояние не трогается
	m.regions.EXPECT().DeregisterAll(ctx, "user-1").Return(nil).Times(1)
	m.presenceRepo.EXPECT().Clear(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.StopMonitoring(ctx, "user-1")

	// Проверки
	require.NoError(t, err)
}

func TestSignOut_ClearsPresenceState(t *testing.T) {
	// Подготовка
	service, m := newTestPresenceService(t)
	ctx := context.Background()

	// Ожидания
	m.regions.EXPECT().DeregisterAll(ctx, "user-1").Return(nil).Times(1)
	m.presenceRepo.EXPECT().Clear(ctx, "user-1").Return(nil).Times(1)

	// Действие
	err := service.SignOut(ctx, "user-1")

	// Проверки
	require.NoError(t, err)
}
