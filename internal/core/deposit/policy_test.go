package deposit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRules_CoverEveryType(t *testing.T) {
	t.Parallel()

	for _, typ := range Types() {
		_, ok := rules[typ]
		assert.Truef(t, ok, "deposit type %s has no expiration rule", typ)
		assert.True(t, typ.Valid())
	}
	assert.Len(t, rules, len(Types()))
}

func TestParseType(t *testing.T) {
	t.Parallel()

	cases := map[string]Type{
		"GIFT":    TypeGift,
		"gift":    TypeGift,
		" Gifts ": TypeGift,
		"MEAL":    TypeMeal,
		"meals":   TypeMeal,
	}
	for raw, want := range cases {
		got, err := ParseType(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseType("TRAVEL")
	assert.ErrorIs(t, err, ErrInvalidType)
	_, err = ParseType("")
	assert.ErrorIs(t, err, ErrInvalidType)
}

func TestIsActive_Gift(t *testing.T) {
	t.Parallel()

	deposited := date(2024, time.January, 10)
	last := deposited.AddDate(0, 0, 365)

	for ref := deposited; !ref.After(last); ref = ref.AddDate(0, 0, 1) {
		if !IsActive(TypeGift, deposited, ref) {
			t.Fatalf("gift deposit should be active on %s", ref.Format("2006-01-02"))
		}
	}

	assert.False(t, IsActive(TypeGift, deposited, last.AddDate(0, 0, 1)))
	assert.False(t, IsActive(TypeGift, deposited, deposited.AddDate(0, 0, 400)))
}

func TestIsActive_GiftIgnoresTimeOfDay(t *testing.T) {
	t.Parallel()

	deposited := time.Date(2024, time.March, 1, 23, 59, 0, 0, time.UTC)
	ref := time.Date(2025, time.March, 1, 23, 59, 59, 0, time.UTC)

	assert.True(t, IsActive(TypeGift, deposited, ref))
	assert.False(t, IsActive(TypeGift, deposited, ref.Add(time.Second)))
}

func TestIsActive_Meal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		deposited time.Time
		lastDay   time.Time
	}{
		{name: "mid year", deposited: date(2024, time.June, 15), lastDay: date(2025, time.February, 28)},
		{name: "january", deposited: date(2024, time.January, 1), lastDay: date(2025, time.February, 28)},
		{name: "end of month", deposited: date(2024, time.January, 31), lastDay: date(2025, time.February, 28)},
		{name: "leap following year", deposited: date(2023, time.December, 31), lastDay: date(2024, time.February, 29)},
		{name: "leap day deposit", deposited: date(2024, time.February, 29), lastDay: date(2025, time.February, 28)},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			last, ok := LastActiveDay(TypeMeal, tc.deposited)
			require.True(t, ok)
			assert.Equal(t, tc.lastDay, last)

			assert.True(t, IsActive(TypeMeal, tc.deposited, tc.deposited))
			assert.True(t, IsActive(TypeMeal, tc.deposited, tc.lastDay))
			assert.False(t, IsActive(TypeMeal, tc.deposited, date(tc.lastDay.Year(), time.March, 1)))
		})
	}
}

func TestIsActive_UnknownTypeNeverCounts(t *testing.T) {
	t.Parallel()

	deposited := date(2024, time.May, 1)
	assert.False(t, IsActive(Type("TRAVEL"), deposited, deposited))

	_, ok := LastActiveDay(Type("TRAVEL"), deposited)
	assert.False(t, ok)
}

func TestIsActive_MonotonicInReferenceDate(t *testing.T) {
	t.Parallel()

	deposits := []struct {
		typ  Type
		date time.Time
	}{
		{TypeGift, date(2023, time.February, 28)},
		{TypeGift, date(2024, time.December, 31)},
		{TypeMeal, date(2023, time.March, 1)},
		{TypeMeal, date(2024, time.December, 31)},
	}

	for _, d := range deposits {
		expired := false
		for ref := date(2023, time.January, 1); ref.Before(date(2027, time.January, 1)); ref = ref.AddDate(0, 0, 1) {
			active := IsActive(d.typ, d.date, ref)
			if expired && active {
				t.Fatalf("%s deposit of %s re-activated on %s", d.typ, d.date.Format("2006-01-02"), ref.Format("2006-01-02"))
			}
			if !active && !ref.Before(d.date) {
				expired = true
			}
		}
		assert.True(t, expired)
	}
}

func TestLapsedOn_Gift(t *testing.T) {
	t.Parallel()

	day := date(2025, time.January, 10)
	from, to, ok := LapsedOn(TypeGift, day)
	require.True(t, ok)
	assert.Equal(t, date(2024, time.January, 10), from)
	assert.Equal(t, from, to)

	last, _ := LastActiveDay(TypeGift, from)
	assert.Equal(t, day.AddDate(0, 0, -1), last)
	assert.True(t, IsActive(TypeGift, from, day.AddDate(0, 0, -1)))
	assert.False(t, IsActive(TypeGift, from, day))
}

func TestLapsedOn_Meal(t *testing.T) {
	t.Parallel()

	from, to, ok := LapsedOn(TypeMeal, date(2025, time.March, 1))
	require.True(t, ok)
	assert.Equal(t, date(2024, time.January, 1), from)
	assert.Equal(t, date(2024, time.December, 31), to)

	_, _, ok = LapsedOn(TypeMeal, date(2025, time.February, 28))
	assert.False(t, ok)

	_, _, ok = LapsedOn(Type("TRAVEL"), date(2025, time.March, 1))
	assert.False(t, ok)
}

func TestNewLapsedEvent(t *testing.T) {
	t.Parallel()

	d := &Deposit{ID: "dep-1", EmployeeID: "emp-1", Type: TypeMeal, Date: date(2024, time.May, 5)}
	ev := NewLapsedEvent(d, date(2025, time.March, 1))

	assert.Equal(t, EventLapsed, ev.Name())
	assert.Equal(t, "emp-1", ev.Key())
	assert.Equal(t, "2025-02-28", ev.LastActiveDay)
	assert.Equal(t, "2025-03-01", ev.LapsedOn)
	assert.Equal(t, "2024-05-05", ev.DepositDate)
}
