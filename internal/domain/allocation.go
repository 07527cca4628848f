package domain

import "sort"

const MaxGuestsPerRequest = 10

func SplitRequest(available, requested int) (toConfirm, toWaitlist int) {
	if available < 0 {
		available = 0
	}
	toConfirm = requested
	if toConfirm > available {
		toConfirm = available
	}
	return toConfirm, requested - toConfirm
}

type Conversion struct {
	Entry                  WaitlistEntry
	Units                  int
	Remaining              int
	PromotedRegistrationID string
}

type PromotionReport struct {
	Promoted    int
	Conversions []Conversion
}

// PlanPromotion раздаёт освободившиеся места строго по порядку создания
// (при равенстве created_at — по id). Частично заполненная заявка
// остаётся в голове очереди, дальше никто не рассматривается.
func PlanPromotion(available int, entries []WaitlistEntry) PromotionReport {
	sorted := make([]WaitlistEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].ID < sorted[j].ID
		}
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	var report PromotionReport
	for _, e := range sorted {
		if available <= 0 {
			break
		}
		units := e.Requested
		if units > available {
			units = available
		}
		report.Conversions = append(report.Conversions, Conversion{
			Entry:     e,
			Units:     units,
			Remaining: e.Requested - units,
		})
		report.Promoted += units
		available -= units
		if units < e.Requested {
			break
		}
	}
	return report
}
