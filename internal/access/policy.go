// Package access реализует политику доступа к premium-функциям.
//
// Все функции пакета — чистые и тотальные: определены для любого входа,
// включая nil-подписку, и не имеют побочных эффектов. Момент времени "сейчас"
// передаётся явным аргументом и должен читаться вызывающей стороной один раз
// на логическую оценку, чтобы производные значения не расходились между собой.
package access

import (
	"math"
	"time"

	"github.com/shobhanapappu/groweasytracker/internal/models"
)

// TrialLength — длительность пробного периода. В хранилище есть только дата
// окончания; дата начала, оставшиеся дни и признак окончания выводятся из неё
// через эту константу.
const TrialLength = 7 * 24 * time.Hour

// HasPremiumAccess сообщает, доступны ли пользователю premium-функции.
//
// Доступ есть тогда и только тогда, когда подписка существует и либо
// (план premium и статус active), либо (план free, статус active и "сейчас"
// не позже даты окончания пробного периода, граница включительно).
// Отсутствующая или некорректная подписка означает отказ в доступе.
func HasPremiumAccess(sub *models.Subscription, now time.Time) bool {
	if sub == nil {
		return false
	}
	if sub.Plan == models.PlanPremium && sub.Status == models.StatusActive {
		return true
	}
	if sub.Plan == models.PlanFree && sub.Status == models.StatusActive && sub.TrialEndDate != nil {
		return !now.After(*sub.TrialEndDate)
	}
	return false
}

// IsTrialEnded сообщает, истёк ли пробный период. Для premium-планов
// пробный период по определению не считается истёкшим.
func IsTrialEnded(sub *models.Subscription, now time.Time) bool {
	if sub == nil || sub.Plan == models.PlanPremium {
		return false
	}
	if sub.TrialEndDate == nil {
		return false
	}
	return now.After(*sub.TrialEndDate)
}

// TrialDaysRemaining возвращает число оставшихся дней пробного периода:
// ceil((end - now) / 24h), не меньше нуля. Для premium-плана или
// отсутствующей даты окончания возвращает 0.
func TrialDaysRemaining(sub *models.Subscription, now time.Time) int {
	if sub == nil || sub.TrialEndDate == nil || sub.Plan == models.PlanPremium {
		return 0
	}
	diff := sub.TrialEndDate.Sub(now)
	days := int(math.Ceil(diff.Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// IsInTrialPeriod сообщает, находится ли "сейчас" внутри пробного окна
// [end - TrialLength, end], границы включительно. Применимо только к
// free-плану.
func IsInTrialPeriod(sub *models.Subscription, now time.Time) bool {
	if sub == nil || sub.Plan == models.PlanPremium {
		return false
	}
	if sub.TrialEndDate == nil {
		return false
	}
	start := sub.TrialEndDate.Add(-TrialLength)
	return !now.Before(start) && !now.After(*sub.TrialEndDate)
}

// TrialStart возвращает производную дату начала пробного периода
// (end - TrialLength) и признак того, что дата окончания задана.
func TrialStart(sub *models.Subscription) (time.Time, bool) {
	if sub == nil || sub.TrialEndDate == nil {
		return time.Time{}, false
	}
	return sub.TrialEndDate.Add(-TrialLength), true
}
