package access

import (
	"time"

	"github.com/shobhanapappu/groweasytracker/internal/models"
)

// Kind — вид сессии. Гостевой режим представлен явным вариантом входного
// домена политики, а не отдельным флагом у каждого вызывающего: решение
// "может ли эта сессия менять данные" принимается в одном месте.
type Kind string

const (
	// KindUser — аутентифицированный пользователь.
	KindUser Kind = "user"
	// KindGuest — гостевой предпросмотр с синтетическими данными.
	KindGuest Kind = "guest"
)

// Session описывает субъекта запроса для оценки политики доступа.
type Session struct {
	Kind    Kind
	UserUID string
}

// CanMutate сообщает, разрешено ли сессии создавать, изменять и удалять
// записи. Гость всегда только читает.
func CanMutate(s Session) bool {
	return s.Kind == KindUser
}

// CanUsePremium сообщает, доступны ли сессии premium-функции.
// Для гостя всегда false независимо от подписки.
func CanUsePremium(s Session, sub *models.Subscription, now time.Time) bool {
	if s.Kind != KindUser {
		return false
	}
	return HasPremiumAccess(sub, now)
}
