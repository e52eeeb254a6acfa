package deposit

import "time"

const giftLifetimeDays = 365

// rule は種別ごとの有効期限ルールです。
type rule interface {
	// lastActiveDay は預入日に対して残高へ算入される最終日を返します。
	lastActiveDay(depositDate time.Time) time.Time
	// lapsedWindow は day に失効する預入の預入日範囲を返します。
	lapsedWindow(day time.Time) (from, to time.Time, ok bool)
}

var rules = map[Type]rule{
	TypeGift: giftRule{},
	TypeMeal: mealRule{},
}

// giftRule: 預入日から 365 日後まで有効。
type giftRule struct{}

func (giftRule) lastActiveDay(depositDate time.Time) time.Time {
	return Day(depositDate).AddDate(0, 0, giftLifetimeDays)
}

func (giftRule) lapsedWindow(day time.Time) (time.Time, time.Time, bool) {
	issued := Day(day).AddDate(0, 0, -1-giftLifetimeDays)
	return issued, issued, true
}

// mealRule: 預入年の翌年 2 月末日まで有効。
type mealRule struct{}

func (mealRule) lastActiveDay(depositDate time.Time) time.Time {
	d := Day(depositDate)
	return time.Date(d.Year()+1, time.March, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, -1)
}

func (mealRule) lapsedWindow(day time.Time) (time.Time, time.Time, bool) {
	d := Day(day)
	if d.Month() != time.March || d.Day() != 1 {
		return time.Time{}, time.Time{}, false
	}
	year := d.Year() - 1
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
	return from, to, true
}

// LastActiveDay は預入が残高へ算入される最終日 (当日を含む) を返します。
// 未知の種別の場合は ok=false です。
func LastActiveDay(t Type, depositDate time.Time) (time.Time, bool) {
	r, ok := rules[t]
	if !ok {
		return time.Time{}, false
	}
	return r.lastActiveDay(depositDate), true
}

// IsActive は referenceDate 時点で預入が有効かどうかを判定します。
// 未知の種別は常に無効として扱い、エラーにはしません。
func IsActive(t Type, depositDate, referenceDate time.Time) bool {
	last, ok := LastActiveDay(t, depositDate)
	if !ok {
		return false
	}
	return !Day(referenceDate).After(last)
}

// LapsedOn は day に初めて無効となる種別 t の預入について、その預入日の範囲 [from, to] を返します。
// day に失効する預入が存在し得ない場合は ok=false です。
func LapsedOn(t Type, day time.Time) (from, to time.Time, ok bool) {
	r, found := rules[t]
	if !found {
		return time.Time{}, time.Time{}, false
	}
	return r.lapsedWindow(day)
}
