package post

import "strings"

// ExchangeType says where an exchange happens.
type ExchangeType string

const (
	ExchangeOnline  ExchangeType = "ONLINE"
	ExchangeOffline ExchangeType = "OFFLINE"
	ExchangeAny     ExchangeType = "ANY"
)

// ExchangePeriod says how long an exchange is expected to run.
type ExchangePeriod string

const (
	PeriodOneDay      ExchangePeriod = "ONE_DAY"
	PeriodWithinWeek  ExchangePeriod = "WITHIN_WEEK"
	PeriodWithinMonth ExchangePeriod = "WITHIN_MONTH"
	PeriodLongTerm    ExchangePeriod = "LONG_TERM"
	PeriodNegotiable  ExchangePeriod = "NEGOTIABLE"
)

// ExchangeTime says when the participants are available.
type ExchangeTime string

const (
	TimeWeekdayDay   ExchangeTime = "WEEKDAY_DAY"
	TimeWeekdayNight ExchangeTime = "WEEKDAY_NIGHT"
	TimeWeekend      ExchangeTime = "WEEKEND"
	TimeAnytime      ExchangeTime = "ANYTIME"
	TimeNegotiable   ExchangeTime = "NEGOTIABLE"
)

var exchangeTypes = []ExchangeType{ExchangeOnline, ExchangeOffline, ExchangeAny}

var exchangeTypeMessages = map[ExchangeType]string{
	ExchangeOnline:  "Online",
	ExchangeOffline: "Offline",
	ExchangeAny:     "Online or offline",
}

var exchangePeriods = []ExchangePeriod{PeriodOneDay, PeriodWithinWeek, PeriodWithinMonth, PeriodLongTerm, PeriodNegotiable}

var exchangePeriodMessages = map[ExchangePeriod]string{
	PeriodOneDay:      "One day",
	PeriodWithinWeek:  "Within a week",
	PeriodWithinMonth: "Within a month",
	PeriodLongTerm:    "More than a month",
	PeriodNegotiable:  "Negotiable",
}

var exchangeTimes = []ExchangeTime{TimeWeekdayDay, TimeWeekdayNight, TimeWeekend, TimeAnytime, TimeNegotiable}

var exchangeTimeMessages = map[ExchangeTime]string{
	TimeWeekdayDay:   "Weekday daytime",
	TimeWeekdayNight: "Weekday evening",
	TimeWeekend:      "Weekend",
	TimeAnytime:      "Anytime",
	TimeNegotiable:   "Negotiable",
}

func AllExchangeTypes() []ExchangeType {
	return append([]ExchangeType(nil), exchangeTypes...)
}

func AllExchangePeriods() []ExchangePeriod {
	return append([]ExchangePeriod(nil), exchangePeriods...)
}

func AllExchangeTimes() []ExchangeTime {
	return append([]ExchangeTime(nil), exchangeTimes...)
}

func (t ExchangeType) Valid() bool     { _, ok := exchangeTypeMessages[t]; return ok }
func (t ExchangeType) Message() string { return exchangeTypeMessages[t] }

func (p ExchangePeriod) Valid() bool     { _, ok := exchangePeriodMessages[p]; return ok }
func (p ExchangePeriod) Message() string { return exchangePeriodMessages[p] }

func (t ExchangeTime) Valid() bool     { _, ok := exchangeTimeMessages[t]; return ok }
func (t ExchangeTime) Message() string { return exchangeTimeMessages[t] }

// ParseExchangeType accepts the machine name in any case.
func ParseExchangeType(raw string) (ExchangeType, bool) {
	t := ExchangeType(strings.ToUpper(strings.TrimSpace(raw)))
	return t, t.Valid()
}

func ParseExchangePeriod(raw string) (ExchangePeriod, bool) {
	p := ExchangePeriod(strings.ToUpper(strings.TrimSpace(raw)))
	return p, p.Valid()
}

func ParseExchangeTime(raw string) (ExchangeTime, bool) {
	t := ExchangeTime(strings.ToUpper(strings.TrimSpace(raw)))
	return t, t.Valid()
}
