package availability

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/config"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/contracts"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/app/models"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/constvars"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/dto/requests"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/dto/responses"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/exceptions"
	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/utils"
)

type availabilityUsecase struct {
	AvailabilityRepository contracts.AvailabilityRepository
	StudioRepository       contracts.StudioRepository
	RedisRepository        contracts.RedisRepository
	LockerService          contracts.LockerService
	SessionService         contracts.SessionService
	ChangeEventPublisher   contracts.ChangeEventPublisher
	InternalConfig         *config.InternalConfig
	Log                    *zap.Logger
}

var (
	availabilityUsecaseInstance contracts.AvailabilityUsecase
	onceAvailabilityUsecase     sync.Once
)

func NewAvailabilityUsecase(
	availabilityRepository contracts.AvailabilityRepository,
	studioRepository contracts.StudioRepository,
	redisRepository contracts.RedisRepository,
	lockerService contracts.LockerService,
	sessionService contracts.SessionService,
	changeEventPublisher contracts.ChangeEventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AvailabilityUsecase {
	onceAvailabilityUsecase.Do(func() {
		instance := &availabilityUsecase{
			AvailabilityRepository: availabilityRepository,
			StudioRepository:       studioRepository,
			RedisRepository:        redisRepository,
			LockerService:          lockerService,
			SessionService:         sessionService,
			ChangeEventPublisher:   changeEventPublisher,
			InternalConfig:         internalConfig,
			Log:                    logger,
		}
		availabilityUsecaseInstance = instance
	})
	return availabilityUsecaseInstance
}

func (uc *availabilityUsecase) GetAvailabilityForDate(ctx context.Context, request *requests.GetAvailabilityForDate) (*responses.DateAvailability, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.GetAvailabilityForDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudioIDKey, request.StudioID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	if _, err := utils.ParseCalendarDate(request.Date); err != nil {
		return nil, exceptions.ErrCannotParseDate(err)
	}

	studio, err := uc.StudioRepository.FindByID(ctx, request.StudioID)
	if err != nil {
		uc.Log.Error("availabilityUsecase.GetAvailabilityForDate error finding studio",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if studio == nil {
		return nil, exceptions.ErrStudioNotFound(nil)
	}

	windows, err := uc.AvailabilityRepository.FindByStudioAndDate(ctx, request.StudioID, request.Date)
	if err != nil {
		uc.Log.Error("availabilityUsecase.GetAvailabilityForDate error finding windows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	response := &responses.DateAvailability{
		StudioID: request.StudioID,
		Date:     request.Date,
		Windows:  toWindowResponses(windows, studio.HourlyRate),
	}

	uc.Log.Info("availabilityUsecase.GetAvailabilityForDate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingWindowCountKey, len(windows)),
	)
	return response, nil
}

// SelectEditorDate loads the date's persisted windows into the staging
// list, replacing whatever the editor held before. Selecting a date is the
// only way to discard uncommitted staged entries.
func (uc *availabilityUsecase) SelectEditorDate(ctx context.Context, request *requests.SelectEditorDate) (*responses.EditorState, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.SelectEditorDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudioIDKey, request.StudioID),
		zap.String(constvars.LoggingDateKey, request.Date),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if err := authorizeStudioOwner(session, request.StudioID); err != nil {
		uc.Log.Warn("availabilityUsecase.SelectEditorDate rejected for non-owner",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStudioIDKey, request.StudioID),
		)
		return nil, err
	}

	windows, err := uc.AvailabilityRepository.FindByStudioAndDate(ctx, request.StudioID, request.Date)
	if err != nil {
		uc.Log.Error("availabilityUsecase.SelectEditorDate error finding windows",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	editor, err := uc.loadEditor(ctx, session.SessionID, request.StudioID)
	if err != nil {
		return nil, err
	}
	editor.SelectDate(request.Date, windows)
	if err := uc.saveEditor(ctx, editor); err != nil {
		return nil, err
	}

	uc.Log.Info("availabilityUsecase.SelectEditorDate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.Int(constvars.LoggingWindowCountKey, len(windows)),
	)
	return toEditorStateResponse(editor), nil
}

// StageWindow appends a pending entry to the staging list. Nothing is
// persisted until commit, and a rejected range leaves the list untouched.
func (uc *availabilityUsecase) StageWindow(ctx context.Context, request *requests.StageAvailability) (*responses.EditorState, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.StageWindow called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudioIDKey, request.StudioID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if err := authorizeStudioOwner(session, request.StudioID); err != nil {
		return nil, err
	}

	editor, err := uc.loadEditor(ctx, session.SessionID, request.StudioID)
	if err != nil {
		return nil, err
	}
	if !editor.HasDateSelected() {
		return nil, exceptions.ErrEditorNoDateSelected(nil)
	}

	if !utils.IsClockOrdered(request.StartTime, request.EndTime) {
		uc.Log.Warn("availabilityUsecase.StageWindow rejected unordered clock range",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKey, editor.SelectedDate),
		)
		return nil, exceptions.ErrInvalidTimeRange(nil)
	}

	priceOverride, err := parsePriceOverride(request.PriceOverride)
	if err != nil {
		return nil, err
	}
	isAvailable := true
	if request.IsAvailable != nil {
		isAvailable = *request.IsAvailable
	}

	editor.Stage(request.StartTime, request.EndTime, priceOverride, isAvailable)
	if err := uc.saveEditor(ctx, editor); err != nil {
		return nil, err
	}

	uc.Log.Info("availabilityUsecase.StageWindow succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, editor.SelectedDate),
		zap.Int(constvars.LoggingWindowCountKey, len(editor.Staged)),
	)
	return toEditorStateResponse(editor), nil
}

// CommitWindow persists the oldest pending staged entry under the studio's
// day lock, then reconciles the staging list from store truth whether the
// insert succeeded or collided. The overlap verdict belongs to the store
// constraint, never to the staging list.
func (uc *availabilityUsecase) CommitWindow(ctx context.Context, request *requests.CommitAvailability) (*responses.EditorState, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.CommitWindow called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudioIDKey, request.StudioID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if err := authorizeStudioOwner(session, request.StudioID); err != nil {
		return nil, err
	}

	editor, err := uc.loadEditor(ctx, session.SessionID, request.StudioID)
	if err != nil {
		return nil, err
	}
	if !editor.HasDateSelected() {
		return nil, exceptions.ErrEditorNoDateSelected(nil)
	}

	pendingIndex := editor.FirstPending()
	if pendingIndex < 0 {
		uc.Log.Info("availabilityUsecase.CommitWindow nothing pending",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKey, editor.SelectedDate),
		)
		return toEditorStateResponse(editor), nil
	}

	lockKey := constvars.RedisKeyPrefixDayLock + request.StudioID + ":" + editor.SelectedDate
	lockTTL := time.Duration(uc.InternalConfig.Editor.DayLockTTLInSeconds) * time.Second
	acquired, lockValue, err := uc.LockerService.TryLock(ctx, lockKey, lockTTL)
	if err != nil {
		uc.Log.Error("availabilityUsecase.CommitWindow error acquiring day lock",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingRedisKey, lockKey),
			zap.Error(err),
		)
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrEditorBusy(nil)
	}
	defer func() {
		if err := uc.LockerService.Unlock(ctx, lockKey, lockValue); err != nil {
			uc.Log.Error("availabilityUsecase.CommitWindow error releasing day lock",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingRedisKey, lockKey),
				zap.Error(err),
			)
		}
	}()

	editor.State = constvars.EditorStateCommitting
	window := editor.Staged[pendingIndex].Window(request.StudioID)
	window.ID = uuid.NewString()

	created, commitErr := uc.AvailabilityRepository.CreateWindow(ctx, window)
	if commitErr != nil {
		uc.Log.Warn("availabilityUsecase.CommitWindow insert rejected",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDateKey, editor.SelectedDate),
			zap.Error(commitErr),
		)
	}

	// Staging mirrors the store after every commit attempt. A conflicting
	// entry disappears from the list here instead of being rolled back.
	windows, err := uc.AvailabilityRepository.FindByStudioAndDate(ctx, request.StudioID, editor.SelectedDate)
	if err != nil {
		uc.Log.Error("availabilityUsecase.CommitWindow error reconciling staging",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if commitErr != nil {
			return nil, commitErr
		}
		return nil, err
	}
	editor.Reconcile(windows)
	if err := uc.saveEditor(ctx, editor); err != nil {
		return nil, err
	}

	if commitErr != nil {
		return nil, commitErr
	}

	uc.publishAvailabilityChanged(ctx, requestID, request.StudioID, created.Date)

	uc.Log.Info("availabilityUsecase.CommitWindow succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWindowIDKey, created.ID),
		zap.String(constvars.LoggingDateKey, created.Date),
	)
	return toEditorStateResponse(editor), nil
}

// RemoveStagedWindow drops one staging entry. Pending entries vanish
// locally; persisted entries are deleted from the store first and the list
// is reconciled, so a failed delete leaves staging untouched.
func (uc *availabilityUsecase) RemoveStagedWindow(ctx context.Context, request *requests.RemoveStagedWindow) (*responses.EditorState, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.RemoveStagedWindow called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudioIDKey, request.StudioID),
		zap.Int("staged_index", request.StagedIndex),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if err := authorizeStudioOwner(session, request.StudioID); err != nil {
		return nil, err
	}

	editor, err := uc.loadEditor(ctx, session.SessionID, request.StudioID)
	if err != nil {
		return nil, err
	}
	if !editor.HasDateSelected() {
		return nil, exceptions.ErrEditorNoDateSelected(nil)
	}
	if request.StagedIndex < 0 || request.StagedIndex >= len(editor.Staged) {
		return nil, exceptions.ErrWindowNotFound(nil)
	}

	entry := editor.Staged[request.StagedIndex]
	if entry.Persisted {
		if err := uc.AvailabilityRepository.DeleteWindow(ctx, entry.WindowID); err != nil {
			uc.Log.Error("availabilityUsecase.RemoveStagedWindow error deleting window",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingWindowIDKey, entry.WindowID),
				zap.Error(err),
			)
			return nil, err
		}
		windows, err := uc.AvailabilityRepository.FindByStudioAndDate(ctx, request.StudioID, editor.SelectedDate)
		if err != nil {
			uc.Log.Error("availabilityUsecase.RemoveStagedWindow error reconciling staging",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, err
		}
		editor.Reconcile(windows)
		uc.publishAvailabilityChanged(ctx, requestID, request.StudioID, editor.SelectedDate)
	} else {
		editor.RemoveAt(request.StagedIndex)
	}

	if err := uc.saveEditor(ctx, editor); err != nil {
		return nil, err
	}

	uc.Log.Info("availabilityUsecase.RemoveStagedWindow succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingWindowCountKey, len(editor.Staged)),
	)
	return toEditorStateResponse(editor), nil
}

func (uc *availabilityUsecase) GetEditorState(ctx context.Context, request *requests.GetEditorState) (*responses.EditorState, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.GetEditorState called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudioIDKey, request.StudioID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return nil, err
	}
	if err := authorizeStudioOwner(session, request.StudioID); err != nil {
		return nil, err
	}

	editor, err := uc.loadEditor(ctx, session.SessionID, request.StudioID)
	if err != nil {
		return nil, err
	}
	return toEditorStateResponse(editor), nil
}

// RemoveWindow deletes a persisted window outside the staging flow. If this
// session's editor has the window's date selected its staging list is
// reconciled too.
func (uc *availabilityUsecase) RemoveWindow(ctx context.Context, request *requests.RemoveAvailability) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("availabilityUsecase.RemoveWindow called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStudioIDKey, request.StudioID),
		zap.String(constvars.LoggingWindowIDKey, request.WindowID),
	)

	session, err := uc.SessionService.ParseSessionData(ctx, request.SessionData)
	if err != nil {
		return err
	}
	if err := authorizeStudioOwner(session, request.StudioID); err != nil {
		return err
	}

	window, err := uc.AvailabilityRepository.FindByID(ctx, request.WindowID)
	if err != nil {
		uc.Log.Error("availabilityUsecase.RemoveWindow error finding window",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if window == nil || window.StudioID != request.StudioID {
		return exceptions.ErrWindowNotFound(nil)
	}

	if err := uc.AvailabilityRepository.DeleteWindow(ctx, request.WindowID); err != nil {
		uc.Log.Error("availabilityUsecase.RemoveWindow error deleting window",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWindowIDKey, request.WindowID),
			zap.Error(err),
		)
		return err
	}

	editor, err := uc.loadEditor(ctx, session.SessionID, request.StudioID)
	if err == nil && editor.HasDateSelected() && editor.SelectedDate == window.Date {
		windows, findErr := uc.AvailabilityRepository.FindByStudioAndDate(ctx, request.StudioID, window.Date)
		if findErr == nil {
			editor.Reconcile(windows)
			if saveErr := uc.saveEditor(ctx, editor); saveErr != nil {
				uc.Log.Error("availabilityUsecase.RemoveWindow error saving reconciled staging",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(saveErr),
				)
			}
		}
	}

	uc.publishAvailabilityChanged(ctx, requestID, request.StudioID, window.Date)

	uc.Log.Info("availabilityUsecase.RemoveWindow succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWindowIDKey, request.WindowID),
	)
	return nil
}

func (uc *availabilityUsecase) loadEditor(ctx context.Context, sessionID, studioID string) (*models.AvailabilityEditor, error) {
	key := editorStagingKey(sessionID, studioID)
	raw, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return models.NewAvailabilityEditor(sessionID, studioID), nil
	}

	editor := new(models.AvailabilityEditor)
	if err := json.Unmarshal([]byte(raw), editor); err != nil {
		// Corrupt staging state is recoverable; start over instead of
		// locking the owner out of the editor.
		uc.Log.Warn("availabilityUsecase.loadEditor resetting unreadable staging state",
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return models.NewAvailabilityEditor(sessionID, studioID), nil
	}
	return editor, nil
}

func (uc *availabilityUsecase) saveEditor(ctx context.Context, editor *models.AvailabilityEditor) error {
	editor.UpdatedAt = time.Now()
	key := editorStagingKey(editor.SessionID, editor.StudioID)
	ttl := time.Duration(uc.InternalConfig.Editor.StagingTTLInMinutes) * time.Minute
	return uc.RedisRepository.Set(ctx, key, editor, ttl)
}

func (uc *availabilityUsecase) publishAvailabilityChanged(ctx context.Context, requestID, studioID, date string) {
	if err := uc.ChangeEventPublisher.PublishAvailabilityChanged(ctx, studioID, date); err != nil {
		uc.Log.Error("availabilityUsecase error publishing availability change",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStudioIDKey, studioID),
			zap.String(constvars.LoggingDateKey, date),
			zap.Error(err),
		)
	}
}

func editorStagingKey(sessionID, studioID string) string {
	return constvars.RedisKeyPrefixEditorStaging + sessionID + ":" + studioID
}

func authorizeStudioOwner(session *models.Session, studioID string) error {
	if session.IsNotStudioOwner() || session.StudioID != studioID {
		return exceptions.ErrNotAuthorizedAction(nil)
	}
	return nil
}

func parsePriceOverride(raw *string) (decimal.NullDecimal, error) {
	if raw == nil {
		return decimal.NullDecimal{}, nil
	}
	value, err := decimal.NewFromString(*raw)
	if err != nil {
		return decimal.NullDecimal{}, exceptions.ErrInvalidFormat(err, "price_override")
	}
	return decimal.NullDecimal{Decimal: value, Valid: true}, nil
}

func toWindowResponses(windows []models.AvailabilityWindow, hourlyRate decimal.Decimal) []responses.AvailabilityWindow {
	mapped := make([]responses.AvailabilityWindow, 0, len(windows))
	for _, window := range windows {
		mapped = append(mapped, responses.AvailabilityWindow{
			WindowID:       window.ID,
			StudioID:       window.StudioID,
			Date:           window.Date,
			StartTime:      window.StartTime,
			EndTime:        window.EndTime,
			PriceOverride:  window.PriceOverride,
			EffectivePrice: window.EffectivePrice(hourlyRate),
			IsAvailable:    window.IsAvailable,
		})
	}
	return mapped
}

func toEditorStateResponse(editor *models.AvailabilityEditor) *responses.EditorState {
	staged := make([]responses.StagedWindow, 0, len(editor.Staged))
	for _, entry := range editor.Staged {
		staged = append(staged, responses.StagedWindow{
			WindowID:      entry.WindowID,
			Date:          entry.Date,
			StartTime:     entry.StartTime,
			EndTime:       entry.EndTime,
			PriceOverride: entry.PriceOverride,
			IsAvailable:   entry.IsAvailable,
			Persisted:     entry.Persisted,
		})
	}
	return &responses.EditorState{
		StudioID:     editor.StudioID,
		State:        editor.State,
		SelectedDate: editor.SelectedDate,
		Staged:       staged,
	}
}
