package services

import (
	"time"

	"github.com/astrenrest/storefront/models"
)

// bannerPolicy decides visibility and records dismissal for one
// frequency setting. The two implementations differ only in where the
// dismissal signal lives: the session or the durable store.
type bannerPolicy interface {
	ShouldShow(sess *Session) bool
	Dismiss(sess *Session)
}

// sessionPolicy backs frequencyMinutes == 0: one dismissal silences the
// banner for the rest of the session and a new session sees it again.
type sessionPolicy struct{}

func (sessionPolicy) ShouldShow(sess *Session) bool {
	return !sess.BannerDismissed()
}

func (sessionPolicy) Dismiss(sess *Session) {
	sess.SetBannerDismissed()
}

// windowPolicy backs frequencyMinutes > 0: the banner reappears once
// the configured window has passed since the durably recorded
// dismissal, across sessions.
type windowPolicy struct {
	storage   *StorageService
	frequency time.Duration
	now       func() time.Time
}

func (p windowPolicy) ShouldShow(_ *Session) bool {
	last, ok := p.storage.LastDismissed()
	if !ok {
		return true
	}
	return p.now().Sub(last) > p.frequency
}

func (p windowPolicy) Dismiss(_ *Session) {
	p.storage.SetLastDismissed(p.now())
}

// NotificationService evaluates the banner policy against the current
// notification settings. It is consulted on demand, there is no
// re-arming timer.
type NotificationService struct {
	store   *AppStore
	storage *StorageService
	now     func() time.Time
}

func NewNotificationService(store *AppStore, storage *StorageService) *NotificationService {
	return &NotificationService{store: store, storage: storage, now: time.Now}
}

func (n *NotificationService) policy(settings models.NotificationSettings) bannerPolicy {
	if settings.FrequencyMinutes == 0 {
		return sessionPolicy{}
	}
	return windowPolicy{
		storage:   n.storage,
		frequency: time.Duration(settings.FrequencyMinutes) * time.Minute,
		now:       n.now,
	}
}

// Banner returns the current settings and whether the banner should be
// visible for this session. A disabled banner is hidden regardless of
// any dismissal state.
func (n *NotificationService) Banner(sess *Session) (models.NotificationSettings, bool) {
	settings := n.store.NotificationSettings()
	if !settings.Enabled {
		return settings, false
	}
	return settings, n.policy(settings).ShouldShow(sess)
}

// Dismiss records the dismissal in the scope the current settings
// select: the session flag for frequency 0, the durable timestamp
// otherwise.
func (n *NotificationService) Dismiss(sess *Session) {
	settings := n.store.NotificationSettings()
	n.policy(settings).Dismiss(sess)
}
