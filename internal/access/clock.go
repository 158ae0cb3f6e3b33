package access

import (
	"time"

	"github.com/shobhanapappu/groweasytracker/internal/models"
)

// trialDateLayout — формат дат пробного периода в ответах клиенту.
const trialDateLayout = "January 2, 2006"

// FormatTrialEnd возвращает дату окончания пробного периода в читаемом виде
// или пустую строку, если дата не задана.
func FormatTrialEnd(sub *models.Subscription) string {
	if sub == nil || sub.TrialEndDate == nil {
		return ""
	}
	return sub.TrialEndDate.Format(trialDateLayout)
}

// FormatTrialStart возвращает производную дату начала пробного периода
// в читаемом виде или пустую строку, если дата окончания не задана.
func FormatTrialStart(sub *models.Subscription) string {
	start, ok := TrialStart(sub)
	if !ok {
		return ""
	}
	return start.Format(trialDateLayout)
}

// View собирает представление подписки для клиента. Все производные значения
// вычисляются от одного переданного момента времени.
func View(sub *models.Subscription, now time.Time) models.SubscriptionView {
	view := models.SubscriptionView{
		IsPremium:          HasPremiumAccess(sub, now),
		IsTrialEnded:       IsTrialEnded(sub, now),
		IsInTrialPeriod:    IsInTrialPeriod(sub, now),
		TrialDaysRemaining: TrialDaysRemaining(sub, now),
		TrialStartDate:     FormatTrialStart(sub),
		TrialEndDate:       FormatTrialEnd(sub),
	}
	if sub != nil {
		view.Plan = sub.Plan
		view.Status = sub.Status
	}
	return view
}
