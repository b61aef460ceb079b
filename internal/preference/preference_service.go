package preference

import (
	"context"
	"net/http"
	"time"

	"github.com/vbasilioo/workly-web/internal/shared/apperror"
	"github.com/vbasilioo/workly-web/internal/shared/contextutil"

	"go.uber.org/zap"
)

var ErrPreferenceStore = apperror.New(apperror.CodeInternalError, "Preferences are unavailable", http.StatusInternalServerError)

//go:generate mockgen -source=preference_service.go -destination=mock/preference_service_mock.go -package=mock
type Service interface {
	Get(ctx context.Context) (Preference, error)
	Update(ctx context.Context, req UpdatePreferenceRequest) (Preference, error)
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("preference.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("preference.service")
	}
	return &service{repo: repo, now: time.Now, logger: l}
}

func (s *service) userID(ctx context.Context) (string, error) {
	uid := contextutil.GetUserID(ctx)
	if uid == "" {
		return "", apperror.ErrUnauthorized
	}
	return uid, nil
}

func (s *service) Get(ctx context.Context) (Preference, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	uid, err := s.userID(ctx)
	if err != nil {
		return Preference{}, err
	}

	pref, err := s.repo.FindByUserID(ctx, uid)
	if err != nil {
		log.Error("load preferences failed", zap.String("user_id", uid), zap.Error(err))
		return Preference{}, ErrPreferenceStore.WithDetail(ErrPreferenceStore.Message, err)
	}
	if pref == nil {
		return Default(uid), nil
	}
	return *pref, nil
}

func (s *service) Update(ctx context.Context, req UpdatePreferenceRequest) (Preference, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	uid, err := s.userID(ctx)
	if err != nil {
		return Preference{}, err
	}
	if err := req.Validate(); err != nil {
		return Preference{}, err
	}

	pref := Preference{
		UserID:           uid,
		SidebarCollapsed: *req.SidebarCollapsed,
		UpdatedAt:        s.now().UTC(),
	}
	if err := s.repo.Upsert(ctx, &pref); err != nil {
		log.Error("save preferences failed", zap.String("user_id", uid), zap.Error(err))
		return Preference{}, ErrPreferenceStore.WithDetail(ErrPreferenceStore.Message, err)
	}

	log.Debug("preferences saved", zap.String("user_id", uid), zap.Bool("sidebar_collapsed", pref.SidebarCollapsed))
	return pref, nil
}
